// Package config loads runtime settings from the environment and holds
// the application constants.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// AppName is the public name of the application.
	AppName = "La Liga de los Muertos"

	// AppVersion is reported by the health endpoint.
	AppVersion = "v0.1.0"

	// APIVersion prefixes every route.
	APIVersion = "v1"

	// DefaultPort is used when PORT is unset.
	DefaultPort = 4000

	// MaxRequestSize caps request bodies at 1 MiB.
	MaxRequestSize = 1 << 20

	// RequestTimeout bounds how long a single request may take to read.
	RequestTimeout = 30 * time.Second

	// DBConnectTimeout bounds the initial datastore connection.
	DBConnectTimeout = 10 * time.Second
)

// Config holds the runtime settings read at startup.
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	DatabaseURL string `validate:"required"`
	LogLevel    string
}

// Load reads .env when present, then the process environment, and
// validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        DefaultPort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
