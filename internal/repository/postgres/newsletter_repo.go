package postgres

import (
	"context"
	"errors"

	"knk-builders-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres unique_violation, the code Supabase surfaces on duplicate inserts
const uniqueViolationCode = "23505"

type newsletterRepository struct {
	db *pgxpool.Pool
}

func NewNewsletterRepository(db *pgxpool.Pool) domain.NewsletterRepository {
	return &newsletterRepository{db: db}
}

// Insert adds a subscriber. The unique constraint on email maps to
// domain.ErrAlreadySubscribed.
func (r *newsletterRepository) Insert(ctx context.Context, email string) error {
	query := `INSERT INTO newsletter_subscribers (email, created_at) VALUES ($1, NOW())`

	_, err := r.db.Exec(ctx, query, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}
