package domain

import (
	"context"
	"time"
)

// QuoteRequest represents a quote form submission. Honeypot is a hidden
// field that legitimate users never fill; any value marks the request
// as automated.
type QuoteRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProjectDetails string `json:"projectDetails"`
	Honeypot       string `json:"honeypot"`
}

// QuoteRecord is the durable copy of an accepted quote request.
// Records are append-only; nothing in this system updates or deletes them.
type QuoteRecord struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ProjectDetails string    `json:"project_details"`
	CreatedAt      time.Time `json:"created_at"`
}

// QuoteUsecase defines the interface for quote form operations
type QuoteUsecase interface {
	// SubmitQuote validates the request, dispatches the email and
	// persists a record of the accepted submission
	SubmitQuote(ctx context.Context, req *QuoteRequest) error
}

// QuoteRepository persists accepted quote requests
type QuoteRepository interface {
	Create(ctx context.Context, rec *QuoteRecord) error
}
