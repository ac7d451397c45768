package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"
)

// QuoteEmailData holds the data for quote request emails
type QuoteEmailData struct {
	Name           string
	Email          string
	Phone          string
	ProjectDetails string
}

// Sender delivers a quote request email to the business inbox.
type Sender interface {
	SendQuoteEmail(ctx context.Context, data QuoteEmailData) error
}

// ErrNotConfigured means the selected delivery strategy is missing
// required configuration. The caller maps it to a distinct response so
// operators can tell config gaps apart from provider failures.
var ErrNotConfigured = errors.New("email service not configured")

// quoteEmailTemplate is the plain-text body for quote request emails
const quoteEmailTemplate = `New Quote Request from KNK Builders Website

Customer Information:
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}

Project Details:
{{.ProjectDetails}}

---
This is an automated email from your website form.`

// buildQuoteEmail renders the subject and plain-text body for a quote
// request. Both strategies send the same content.
func buildQuoteEmail(data QuoteEmailData) (subject, body string, err error) {
	tmpl, err := template.New("quote").Parse(quoteEmailTemplate)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return fmt.Sprintf("New Quote Request from %s", data.Name), buf.String(), nil
}
