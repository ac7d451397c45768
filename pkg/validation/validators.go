package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Simple local@domain.tld shape; intentionally looser than full RFC 5322
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits, spaces and common separators, 7 characters minimum
	phoneRegex = regexp.MustCompile(`^[\d\s\-+()]{7,}$`)
)

// Error is a user-facing form validation failure; the message is shown
// to the submitter verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrBotSubmission is returned when the hidden honeypot field carries a
// value, which only automated submissions ever do.
var ErrBotSubmission = &Error{Message: "Invalid form submission"}

// ValidateQuote checks the quote form fields in order and returns the
// first failure, or nil when all rules pass. It has no side effects.
func ValidateQuote(name, email, phone, projectDetails string) *Error {
	if len(strings.TrimSpace(name)) < 3 {
		return &Error{Message: "Name must be at least 3 characters"}
	}
	if !emailRegex.MatchString(email) {
		return &Error{Message: "Please enter a valid email address"}
	}
	if !phoneRegex.MatchString(phone) {
		return &Error{Message: "Please enter a valid phone number"}
	}
	if len(strings.TrimSpace(projectDetails)) < 10 {
		return &Error{Message: "Project details must be at least 10 characters/words"}
	}
	return nil
}

// ValidEmailAddress reports whether the string has the form email shape.
func ValidEmailAddress(email string) bool {
	return emailRegex.MatchString(email)
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("form_email", FormEmail)
	_ = v.RegisterValidation("form_phone", FormPhone)
}

// FormEmail validates an email against the form's email shape
func FormEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// FormPhone validates a phone number structure
func FormPhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}
