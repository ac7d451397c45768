package email

import (
	"context"
	"fmt"
	"knk-builders-backend/config"
	"net/smtp"
)

// SMTPSender delivers quote emails through an SMTP relay (Brevo)
type SMTPSender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// NewSMTPSender creates the SMTP relay strategy from configuration
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.QuoteEmailFrom,
		toEmail:   cfg.QuoteEmailTo,
	}
}

// SendQuoteEmail sends the quote request to the configured business inbox.
// The requester's address goes into Reply-To so the team can answer directly.
func (s *SMTPSender) SendQuoteEmail(_ context.Context, data QuoteEmailData) error {
	if !s.isConfigured() {
		return ErrNotConfigured
	}

	subject, body, err := buildQuoteEmail(data)
	if err != nil {
		return err
	}

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		data.Email,
		subject,
		body,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// isConfigured checks if the relay has valid SMTP configuration
func (s *SMTPSender) isConfigured() bool {
	return s.host != "" && s.port != "" && s.username != "" && s.password != ""
}
