package v1

import (
	"errors"
	"net/http"

	"knk-builders-backend/internal/delivery/http/response"
	"knk-builders-backend/internal/domain"
	"knk-builders-backend/pkg/apperror"
	"knk-builders-backend/pkg/email"
	"knk-builders-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteUC domain.QuoteUsecase
}

// NewQuoteHandler registers the quote routes (public, sits behind the
// bearer and rate-limit middleware on the group)
func NewQuoteHandler(public *gin.RouterGroup, quoteUC domain.QuoteUsecase) {
	handler := &QuoteHandler{
		quoteUC: quoteUC,
	}

	public.POST("/quote", handler.SubmitQuote)
}

// SubmitQuote godoc
// @Summary      Submit Quote Request
// @Description  Validate a quote request, dispatch it by email and persist a record.
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.QuoteRequest  true  "Quote Form Data"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /quote [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed body is not a field validation failure; it gets the
		// generic answer, same as any other unexpected fault
		c.Error(apperror.New(http.StatusInternalServerError, "An error occurred. Please try again later.", err))
		return
	}

	if err := h.quoteUC.SubmitQuote(c.Request.Context(), &req); err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			c.Error(apperror.BadRequest(vErr.Message))
		case errors.Is(err, email.ErrNotConfigured):
			c.Error(apperror.New(http.StatusInternalServerError, "Email service not configured", err))
		default:
			c.Error(apperror.New(http.StatusInternalServerError, "Failed to send email. Please try again later.", err))
		}
		return
	}

	response.Success(c, http.StatusOK, "Thank you, your quote request has been sent. We'll contact you shortly.", nil)
}
