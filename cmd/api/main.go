package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"knk-builders-backend/config"
	_ "knk-builders-backend/docs" // Important for Swagger
	v1 "knk-builders-backend/internal/delivery/http/v1"
	"knk-builders-backend/internal/repository/postgres"
	"knk-builders-backend/internal/usecase"
	"knk-builders-backend/pkg/database"
	"knk-builders-backend/pkg/email"
	"knk-builders-backend/pkg/logger"
	"knk-builders-backend/pkg/redis"
	"knk-builders-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           KNK Builders Backend API
// @version         1.0
// @description     Lead-capture backend for the KNK Builders website: quote requests and newsletter signups.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting KNK Builders backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	quoteRepo := postgres.NewQuoteRepository(dbPool)
	newsletterRepo := postgres.NewNewsletterRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - quote dispatch will be unavailable")
	}

	// 7. Register custom binding validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 8. Setup UseCases
	quoteUC := usecase.NewQuoteUsecase(emailService, quoteRepo)
	newsletterUC := usecase.NewNewsletterUsecase(newsletterRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		QuoteUC:      quoteUC,
		NewsletterUC: newsletterUC,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
