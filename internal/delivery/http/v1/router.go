package v1

import (
	"net/http"
	"time"

	"knk-builders-backend/config"
	"knk-builders-backend/internal/delivery/http/middleware"
	"knk-builders-backend/internal/delivery/http/response"
	"knk-builders-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	QuoteUC      domain.QuoteUsecase
	NewsletterUC domain.NewsletterUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	// Panics still answer with the standard JSON envelope
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.Error(c, http.StatusInternalServerError, "An error occurred. Please try again later.", nil)
		c.Abort()
	}))
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Form routes: bearer-checked and rate-limited, no user auth
	forms := v1.Group("")
	forms.Use(middleware.AuthMiddleware(deps.Config))
	forms.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitFormThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:form:",
	}))
	{
		NewQuoteHandler(forms, deps.QuoteUC)
		NewNewsletterHandler(forms, deps.NewsletterUC)
	}

	return r
}
