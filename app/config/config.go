package config

import (
	"log"
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	ListenAddr string
	Logs       LogConfig
	DB         PostgresConfig
	OpenAI     OpenAIConfig
	Stripe     StripeConfig
	Limits     RateLimitConfig
	QueueURL   string
}

type LogConfig struct {
	Style string // "console" or "json"
	Level string
}

type PostgresConfig struct {
	Username string
	Password string
	URL      string
	Port     string
	Name     string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	FrontendURL   string
}

// RateLimitConfig holds per-minute request ceilings per user.
type RateLimitConfig struct {
	GeneratePerMinute    int
	ValidatePerMinute    int
	CheckDomainPerMinute int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		ListenAddr: envOr("LISTEN_ADDR", "0.0.0.0:8080"),
		QueueURL:   os.Getenv("QUEUE_URL"),
		Logs: LogConfig{
			Style: envOr("LOG_STYLE", "console"),
			Level: envOr("LOG_LEVEL", "info"),
		},
		DB: PostgresConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PWD"),
			URL:      os.Getenv("POSTGRES_URL"),
			Port:     os.Getenv("POSTGRES_PORT"),
			Name:     envOr("POSTGRES_DB", "saasname"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  envOr("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
			FrontendURL:   os.Getenv("FRONTEND_URL"),
		},
		Limits: RateLimitConfig{
			GeneratePerMinute:    envInt("RATE_LIMIT_GENERATE", 5),
			ValidatePerMinute:    envInt("RATE_LIMIT_VALIDATE", 10),
			CheckDomainPerMinute: envInt("RATE_LIMIT_CHECK_DOMAIN", 10),
		},
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Error converting string to int: %s: %v", key, err)
	}
	return n
}
