package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Optional HS256 secret for verifying the bearer token on the public
	// form endpoints. Empty disables the check (local development).
	APIJWTSecret string
	// Email API (Postmark) Configuration
	PostmarkServerToken  string
	PostmarkAccountToken string
	// SMTP Relay Configuration (Brevo)
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Quote email addressing
	QuoteEmailFrom string // Verified sender address
	QuoteEmailTo   string // Fixed destination (the business inbox)
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitFormThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Supabase anon keys are HS256 JWTs, so the project JWT secret works here too
		APIJWTSecret: getEnv("API_JWT_SECRET", getEnv("SUPABASE_JWT_SECRET", "")),
		// Email API Configuration
		PostmarkServerToken:  getEnv("POSTMARK_SERVER_TOKEN", ""),
		PostmarkAccountToken: getEnv("POSTMARK_ACCOUNT_TOKEN", ""),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		// Quote email addressing
		QuoteEmailFrom: getEnv("QUOTE_EMAIL_FROM", "noreply@knkbuilders.co.za"), // Must be a verified sender
		QuoteEmailTo:   getEnv("QUOTE_EMAIL_TO", "knkbuildersmarketing@gmail.com"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		RateLimitFormThreshold: getEnvInt("RATE_LIMIT_FORM_THRESHOLD", 10), // 10 form posts per window per IP
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	// Log Redis configuration status (helpful for debugging)
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
