package usecase_test

import (
	"context"
	"errors"
	"testing"

	"knk-builders-backend/internal/domain"
	"knk-builders-backend/internal/usecase"
	"knk-builders-backend/pkg/email"
	"knk-builders-backend/pkg/logger"
	"knk-builders-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init()
}

// Mock collaborators

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendQuoteEmail(ctx context.Context, data email.QuoteEmailData) error {
	return m.Called(ctx, data).Error(0)
}

type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, rec *domain.QuoteRecord) error {
	return m.Called(ctx, rec).Error(0)
}

type MockNewsletterRepo struct {
	mock.Mock
}

func (m *MockNewsletterRepo) Insert(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func validQuote() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		Name:           "Thabo M",
		Email:          "t@x.com",
		Phone:          "0825551234",
		ProjectDetails: "Need 50 bags of cement",
	}
}

func TestSubmitQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches and records a valid submission", func(t *testing.T) {
		sender := new(MockEmailSender)
		repo := new(MockQuoteRepo)
		sender.On("SendQuoteEmail", ctx, mock.AnythingOfType("email.QuoteEmailData")).Return(nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.QuoteRecord")).Return(nil).Run(func(args mock.Arguments) {
			rec := args.Get(1).(*domain.QuoteRecord)
			assert.Equal(t, "t@x.com", rec.Email)
			assert.Equal(t, "Need 50 bags of cement", rec.ProjectDetails)
		})

		uc := usecase.NewQuoteUsecase(sender, repo)
		err := uc.SubmitQuote(ctx, validQuote())

		assert.NoError(t, err)
		sender.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("rejects honeypot submissions before any dispatch", func(t *testing.T) {
		sender := new(MockEmailSender)
		repo := new(MockQuoteRepo)

		req := validQuote()
		req.Honeypot = "spam"

		uc := usecase.NewQuoteUsecase(sender, repo)
		err := uc.SubmitQuote(ctx, req)

		var vErr *validation.Error
		if assert.ErrorAs(t, err, &vErr) {
			assert.Equal(t, "Invalid form submission", vErr.Message)
		}
		sender.AssertNotCalled(t, "SendQuoteEmail", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid fields before any dispatch", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*domain.QuoteRequest)
			wantMsg string
		}{
			{"short name", func(q *domain.QuoteRequest) { q.Name = "Jo" }, "Name must be at least 3 characters"},
			{"bad email", func(q *domain.QuoteRequest) { q.Email = "not-an-email" }, "Please enter a valid email address"},
			{"bad phone", func(q *domain.QuoteRequest) { q.Phone = "12" }, "Please enter a valid phone number"},
			{"thin details", func(q *domain.QuoteRequest) { q.ProjectDetails = "cement" }, "Project details must be at least 10 characters/words"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				sender := new(MockEmailSender)
				repo := new(MockQuoteRepo)

				req := validQuote()
				tt.mutate(req)

				uc := usecase.NewQuoteUsecase(sender, repo)
				err := uc.SubmitQuote(ctx, req)

				var vErr *validation.Error
				if assert.ErrorAs(t, err, &vErr) {
					assert.Equal(t, tt.wantMsg, vErr.Message)
				}
				sender.AssertNotCalled(t, "SendQuoteEmail", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("no record is written when dispatch fails", func(t *testing.T) {
		sender := new(MockEmailSender)
		repo := new(MockQuoteRepo)
		sender.On("SendQuoteEmail", ctx, mock.Anything).Return(errors.New("relay returned non-ok"))

		uc := usecase.NewQuoteUsecase(sender, repo)
		err := uc.SubmitQuote(ctx, validQuote())

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("surfaces missing email configuration", func(t *testing.T) {
		sender := new(MockEmailSender)
		repo := new(MockQuoteRepo)
		sender.On("SendQuoteEmail", ctx, mock.Anything).Return(email.ErrNotConfigured)

		uc := usecase.NewQuoteUsecase(sender, repo)
		err := uc.SubmitQuote(ctx, validQuote())

		assert.ErrorIs(t, err, email.ErrNotConfigured)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("record write failure after a sent email is not surfaced", func(t *testing.T) {
		sender := new(MockEmailSender)
		repo := new(MockQuoteRepo)
		sender.On("SendQuoteEmail", ctx, mock.Anything).Return(nil)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

		uc := usecase.NewQuoteUsecase(sender, repo)
		err := uc.SubmitQuote(ctx, validQuote())

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a new subscriber lowercased", func(t *testing.T) {
		repo := new(MockNewsletterRepo)
		repo.On("Insert", ctx, "reader@example.com").Return(nil)

		uc := usecase.NewNewsletterUsecase(repo)
		err := uc.Subscribe(ctx, "  Reader@Example.com ")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("maps duplicate inserts to ErrAlreadySubscribed", func(t *testing.T) {
		repo := new(MockNewsletterRepo)
		repo.On("Insert", ctx, "already@subscribed.com").Return(domain.ErrAlreadySubscribed)

		uc := usecase.NewNewsletterUsecase(repo)
		err := uc.Subscribe(ctx, "already@subscribed.com")

		assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	})

	t.Run("rejects malformed emails without touching the store", func(t *testing.T) {
		repo := new(MockNewsletterRepo)

		uc := usecase.NewNewsletterUsecase(repo)
		err := uc.Subscribe(ctx, "not-an-email")

		var vErr *validation.Error
		assert.ErrorAs(t, err, &vErr)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("wraps other store failures", func(t *testing.T) {
		repo := new(MockNewsletterRepo)
		repo.On("Insert", ctx, "reader@example.com").Return(errors.New("connection reset"))

		uc := usecase.NewNewsletterUsecase(repo)
		err := uc.Subscribe(ctx, "reader@example.com")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrAlreadySubscribed)
	})
}
