package usecase

import (
	"context"
	"fmt"
	"strings"

	"knk-builders-backend/internal/domain"
	"knk-builders-backend/pkg/email"
	"knk-builders-backend/pkg/logger"
	"knk-builders-backend/pkg/validation"
)

type quoteUsecase struct {
	emailSender email.Sender
	quoteRepo   domain.QuoteRepository
}

// NewQuoteUsecase creates a new quote usecase
func NewQuoteUsecase(emailSender email.Sender, quoteRepo domain.QuoteRepository) domain.QuoteUsecase {
	return &quoteUsecase{
		emailSender: emailSender,
		quoteRepo:   quoteRepo,
	}
}

// SubmitQuote runs the full submission pipeline: honeypot check, field
// validation, email dispatch, then the durable record write. The record
// write happens only after the provider accepts the email; the two are
// not transactional, and a record-write failure is logged rather than
// surfaced because the submitter's quote has already reached the inbox.
func (uc *quoteUsecase) SubmitQuote(ctx context.Context, req *domain.QuoteRequest) error {
	if req.Honeypot != "" {
		return validation.ErrBotSubmission
	}

	if vErr := validation.ValidateQuote(req.Name, req.Email, req.Phone, req.ProjectDetails); vErr != nil {
		return vErr
	}

	data := email.QuoteEmailData{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		ProjectDetails: strings.TrimSpace(req.ProjectDetails),
	}

	if err := uc.emailSender.SendQuoteEmail(ctx, data); err != nil {
		return fmt.Errorf("failed to send quote email: %w", err)
	}

	rec := &domain.QuoteRecord{
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		ProjectDetails: data.ProjectDetails,
	}
	if err := uc.quoteRepo.Create(ctx, rec); err != nil {
		// The email went out, so the submitter still gets a success.
		// Logged at error level so the lost record can be alerted on
		// and recovered from the inbox.
		logger.Log.Error("quote record write failed after successful email dispatch",
			"email", data.Email, "error", err)
	}

	return nil
}
