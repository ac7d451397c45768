package v1

import (
	"errors"
	"net/http"

	"knk-builders-backend/internal/delivery/http/response"
	"knk-builders-backend/internal/domain"
	"knk-builders-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUC domain.NewsletterUsecase
}

// NewNewsletterHandler registers the newsletter routes
func NewNewsletterHandler(public *gin.RouterGroup, newsletterUC domain.NewsletterUsecase) {
	handler := &NewsletterHandler{
		newsletterUC: newsletterUC,
	}

	public.POST("/newsletter", handler.Subscribe)
}

// Subscribe godoc
// @Summary      Subscribe to Newsletter
// @Description  Add an email address to the newsletter subscriber list.
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.NewsletterSignup  true  "Subscriber Email"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req domain.NewsletterSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please enter a valid email address"))
		return
	}

	if err := h.newsletterUC.Subscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			c.Error(apperror.Conflict("This email is already subscribed."))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Error subscribing. Please try again.", err))
		return
	}

	response.Success(c, http.StatusOK, "Thank you for subscribing!", nil)
}
