package domain

import (
	"context"
	"errors"
)

// NewsletterSignup represents a newsletter subscription submission
type NewsletterSignup struct {
	Email string `json:"email" binding:"required,form_email"`
}

// ErrAlreadySubscribed is reported when the subscriber store rejects a
// duplicate email. It is a distinguishable outcome, not a failure.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// NewsletterUsecase defines the interface for newsletter operations
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, email string) error
}

// NewsletterRepository persists newsletter subscribers.
// The store enforces uniqueness on email.
type NewsletterRepository interface {
	Insert(ctx context.Context, email string) error
}
