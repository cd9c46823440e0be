// Package config provides fail-open environment loaders shared by the API
// server and the batch worker. A bad value never aborts startup: the loader
// reports it as a warning and the caller runs on the default instead.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ConfigLoadResult is what every loader returns. Value holds the effective
// setting (the parsed env value, or the default when the variable was unset
// or rejected). FallbackApplied is true only for a rejected value; an unset
// variable is normal operation and produces no warning.
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

func accepted(value interface{}) ConfigLoadResult {
	return ConfigLoadResult{Value: value}
}

func rejected(envKey, raw string, defaultValue interface{}, reason error) ConfigLoadResult {
	return ConfigLoadResult{
		Value:           defaultValue,
		Warnings:        []string{fmt.Sprintf("%s=%q rejected: %v; using default %v", envKey, raw, reason, defaultValue)},
		FallbackApplied: true,
	}
}

// LoadEnvWithFallback reads a string setting. A nil validator accepts any
// non-empty value.
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return accepted(defaultValue)
	}
	if validator != nil {
		if err := validator(raw); err != nil {
			return rejected(envKey, raw, defaultValue, err)
		}
	}
	return accepted(raw)
}

// LoadEnvDuration reads a Go duration string ("45s", "10m", "1h30m").
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return accepted(defaultValue)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return rejected(envKey, raw, defaultValue, err)
	}
	if validator != nil {
		if err := validator(parsed); err != nil {
			return rejected(envKey, raw, defaultValue, err)
		}
	}
	return accepted(parsed)
}

// LoadEnvInt reads a base-10 integer setting.
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return accepted(defaultValue)
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return rejected(envKey, raw, defaultValue, fmt.Errorf("not an integer"))
	}
	if validator != nil {
		if err := validator(parsed); err != nil {
			return rejected(envKey, raw, defaultValue, err)
		}
	}
	return accepted(parsed)
}

// LoadEnvBool reads a boolean setting. Accepted spellings are the ones
// strconv.ParseBool takes: 1/0, t/f, true/false in any common casing.
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return accepted(defaultValue)
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return rejected(envKey, raw, defaultValue, fmt.Errorf("not a boolean"))
	}
	return accepted(parsed)
}
