package writer

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds the tunables shared by the API-backed writers.
// Values load from environment variables with fallback to defaults.
type Config struct {
	// Model is the backend model identifier. Empty selects a per-backend
	// default.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	// A 400-word HTML article plus metadata fits comfortably in 2048.
	MaxTokens int

	// Timeout is the maximum duration for a single generation API call.
	Timeout time.Duration
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadConfig loads writer configuration from environment variables.
// Invalid values fall back to the default with a warning log.
//
// Environment variables:
//   - WRITER_MODEL: model identifier (default: per-backend)
//   - WRITER_MAX_TOKENS: integer (default: 2048)
//   - WRITER_TIMEOUT: duration string, e.g. "60s" (default: 60s)
func LoadConfig() Config {
	cfg := Config{
		Model:     os.Getenv("WRITER_MODEL"),
		MaxTokens: 2048,
		Timeout:   60 * time.Second,
	}

	if val := os.Getenv("WRITER_MAX_TOKENS"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed <= 0 {
			slog.Warn("invalid WRITER_MAX_TOKENS, using default",
				slog.String("value", val),
				slog.Int("default", cfg.MaxTokens))
		} else {
			cfg.MaxTokens = parsed
		}
	}

	if val := os.Getenv("WRITER_TIMEOUT"); val != "" {
		parsed, err := time.ParseDuration(val)
		if err != nil || parsed <= 0 {
			slog.Warn("invalid WRITER_TIMEOUT, using default",
				slog.String("value", val),
				slog.Duration("default", cfg.Timeout))
		} else {
			cfg.Timeout = parsed
		}
	}

	return cfg
}
