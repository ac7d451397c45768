package postgres

import (
	"context"

	"knk-builders-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type quoteRepository struct {
	db *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) domain.QuoteRepository {
	return &quoteRepository{db: db}
}

// Create appends an accepted quote request. The id and timestamp are
// assigned by the database.
func (r *quoteRepository) Create(ctx context.Context, rec *domain.QuoteRecord) error {
	query := `
		INSERT INTO quote_requests (name, email, phone, project_details, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		rec.Name, rec.Email, rec.Phone, rec.ProjectDetails,
	).Scan(&rec.ID, &rec.CreatedAt)
}
