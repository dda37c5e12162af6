package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Identity  IdentityConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=law_firm"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type IdentityConfig struct {
	BaseURL string `env:"IDENTITY_URL"`
	APIKey  string `env:"IDENTITY_API_KEY"`
}

type MailConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
	NotifyTo string `env:"NOTIFICATION_EMAIL"`
}

type RateLimitConfig struct {
	// Store selects the counter backend: "memory" (single instance) or
	// "redis" (shared across instances).
	Store string `env:"RATELIMIT_STORE, default=memory"`

	DefaultMax      int `env:"RATELIMIT_MAX,          default=100"`
	DefaultWindowMs int `env:"RATELIMIT_WINDOW_MS,    default=60000"`
	FormMax         int `env:"RATELIMIT_FORM_MAX,     default=10"`
	FormWindowMs    int `env:"RATELIMIT_FORM_WINDOW_MS, default=60000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
