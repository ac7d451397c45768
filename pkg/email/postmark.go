package email

import (
	"context"
	"fmt"
	"knk-builders-backend/config"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers quote emails through Postmark's transactional API
type PostmarkSender struct {
	client      *postmark.Client
	serverToken string
	fromEmail   string
	toEmail     string
}

// NewPostmarkSender creates the API strategy from configuration
func NewPostmarkSender(cfg *config.Config) *PostmarkSender {
	return &PostmarkSender{
		client:      postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		serverToken: cfg.PostmarkServerToken,
		fromEmail:   cfg.QuoteEmailFrom,
		toEmail:     cfg.QuoteEmailTo,
	}
}

// SendQuoteEmail sends the quote request via the Postmark API with the
// requester's address as Reply-To.
func (s *PostmarkSender) SendQuoteEmail(ctx context.Context, data QuoteEmailData) error {
	if s.serverToken == "" || s.fromEmail == "" || s.toEmail == "" {
		return ErrNotConfigured
	}

	subject, body, err := buildQuoteEmail(data)
	if err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.fromEmail,
		To:       s.toEmail,
		ReplyTo:  data.Email,
		Subject:  subject,
		TextBody: body,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("email provider rejected message: %s (code %d)", resp.Message, resp.ErrorCode)
	}

	return nil
}
