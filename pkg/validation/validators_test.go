package validation_test

import (
	"testing"

	"knk-builders-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuote(t *testing.T) {
	valid := struct {
		name, email, phone, details string
	}{"Thabo M", "t@x.com", "0825551234", "Need 50 bags of cement"}

	t.Run("accepts a valid submission", func(t *testing.T) {
		err := validation.ValidateQuote(valid.name, valid.email, valid.phone, valid.details)
		assert.Nil(t, err)
	})

	tests := []struct {
		testName string
		name     string
		email    string
		phone    string
		details  string
		wantMsg  string
	}{
		{"short name", "Jo", valid.email, valid.phone, valid.details, "Name must be at least 3 characters"},
		{"whitespace-padded short name", "  J  ", valid.email, valid.phone, valid.details, "Name must be at least 3 characters"},
		{"empty name", "", valid.email, valid.phone, valid.details, "Name must be at least 3 characters"},
		{"email without domain", valid.name, "thabo@", valid.phone, valid.details, "Please enter a valid email address"},
		{"email without tld", valid.name, "thabo@example", valid.phone, valid.details, "Please enter a valid email address"},
		{"email with spaces", valid.name, "thabo m@example.com", valid.phone, valid.details, "Please enter a valid email address"},
		{"empty email", valid.name, "", valid.phone, valid.details, "Please enter a valid email address"},
		{"short phone", valid.name, valid.email, "082555", valid.details, "Please enter a valid phone number"},
		{"phone with letters", valid.name, valid.email, "082call555", valid.details, "Please enter a valid phone number"},
		{"empty phone", valid.name, valid.email, "", valid.details, "Please enter a valid phone number"},
		{"short project details", valid.name, valid.email, valid.phone, "cement", "Project details must be at least 10 characters/words"},
		{"whitespace-only details", valid.name, valid.email, valid.phone, "            ", "Project details must be at least 10 characters/words"},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			err := validation.ValidateQuote(tt.name, tt.email, tt.phone, tt.details)
			if assert.NotNil(t, err) {
				assert.Equal(t, tt.wantMsg, err.Message)
			}
		})
	}

	t.Run("first failure wins when multiple fields are invalid", func(t *testing.T) {
		err := validation.ValidateQuote("J", "bad", "1", "short")
		if assert.NotNil(t, err) {
			assert.Equal(t, "Name must be at least 3 characters", err.Message)
		}
	})

	t.Run("accepts phone with allowed separators", func(t *testing.T) {
		err := validation.ValidateQuote(valid.name, valid.email, "+27 (082) 555-1234", valid.details)
		assert.Nil(t, err)
	})
}

func TestValidEmailAddress(t *testing.T) {
	assert.True(t, validation.ValidEmailAddress("builder@example.co.za"))
	assert.False(t, validation.ValidEmailAddress("builder@example"))
	assert.False(t, validation.ValidEmailAddress("@example.com"))
	assert.False(t, validation.ValidEmailAddress(""))
}
