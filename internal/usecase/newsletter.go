package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"knk-builders-backend/internal/domain"
	"knk-builders-backend/pkg/validation"
)

type newsletterUsecase struct {
	subscriberRepo domain.NewsletterRepository
}

// NewNewsletterUsecase creates a new newsletter usecase
func NewNewsletterUsecase(subscriberRepo domain.NewsletterRepository) domain.NewsletterUsecase {
	return &newsletterUsecase{
		subscriberRepo: subscriberRepo,
	}
}

// Subscribe inserts the email into the subscriber store. A duplicate
// surfaces as domain.ErrAlreadySubscribed so the caller can report it
// as an outcome rather than a failure.
func (uc *newsletterUsecase) Subscribe(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if !validation.ValidEmailAddress(emailAddr) {
		return &validation.Error{Message: "Please enter a valid email address"}
	}

	if err := uc.subscriberRepo.Insert(ctx, emailAddr); err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			return err
		}
		return fmt.Errorf("failed to store subscriber: %w", err)
	}

	return nil
}
