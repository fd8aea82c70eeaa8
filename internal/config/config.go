package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains runtime configuration required by the service.
type Config struct {
	DBURL    string
	HTTPAddr string
	LogLevel zerolog.Level
}

// Load reads required values from environment variables.
func Load() (Config, error) {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DB_URL required")
	}

	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = ":8080"
	}

	levelRaw := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if levelRaw == "" {
		levelRaw = "info"
	}
	level, err := zerolog.ParseLevel(levelRaw)
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return Config{
		DBURL:    dbURL,
		HTTPAddr: addr,
		LogLevel: level,
	}, nil
}
