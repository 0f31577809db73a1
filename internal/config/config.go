// Package config loads the process configuration from environment variables,
// optionally seeded from a .env file. Required values are validated once at
// startup; a missing database DSN or signing secret is a fatal condition.
package config

import (
	"fmt"
	"log/slog"
	"time"

	env "github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the full configuration surface of the service.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	Env            string        `env:"ENV" envDefault:"development"`
	DatabaseDSN    string        `env:"DATABASE_DSN" validate:"required"`
	JWTSecret      string        `env:"JWT_SECRET" validate:"required"`
	TokenExpiry    time.Duration `env:"TOKEN_EXPIRY" envDefault:"168h"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
