package email

import (
	"context"
	"knk-builders-backend/config"
)

// Service selects a delivery strategy per send: the Postmark API when a
// server token is configured, otherwise the SMTP relay. The presence
// check runs fresh on every call; exactly one strategy handles a given
// request and there is no fallback between them.
type Service struct {
	cfg  *config.Config
	api  Sender
	smtp Sender
}

// NewService builds both strategies up front so selection is a pure
// predicate at send time.
func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:  cfg,
		api:  NewPostmarkSender(cfg),
		smtp: NewSMTPSender(cfg),
	}
}

// SendQuoteEmail dispatches via the selected strategy. The strategy
// re-checks its own configuration and returns ErrNotConfigured when
// incomplete.
func (s *Service) SendQuoteEmail(ctx context.Context, data QuoteEmailData) error {
	if s.cfg.PostmarkServerToken != "" {
		return s.api.SendQuoteEmail(ctx, data)
	}
	return s.smtp.SendQuoteEmail(ctx, data)
}

// IsConfigured reports whether at least one strategy can send.
func (s *Service) IsConfigured() bool {
	if s.cfg.PostmarkServerToken != "" {
		return true
	}
	return s.cfg.SMTPHost != "" && s.cfg.SMTPPort != "" && s.cfg.SMTPUsername != "" && s.cfg.SMTPPassword != ""
}
