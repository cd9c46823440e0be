// Package worker runs the scheduled generation batch: configuration loading,
// health endpoints, and Prometheus metrics for the cron process.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"newsradar/internal/pkg/config"
)

// WorkerConfig holds the configuration for the batch worker process.
//
// All fields have defaults and validation rules; loading is fail-open, so
// the worker can start even when individual values are invalid or missing.
type WorkerConfig struct {
	// CronSchedule is the cron expression for the daily generation batch.
	// Format: "minute hour day month weekday". Default: "30 5 * * *".
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	// Default: "UTC".
	Timezone string

	// GenerateTimeout bounds one full batch run across all categories.
	// Default: 10 minutes.
	GenerateTimeout time.Duration

	// HealthPort is the port for the liveness/readiness HTTP server.
	// Range: 1024-65535. Default: 9091.
	HealthPort int

	// RunOnStart triggers one batch run immediately at startup, before the
	// first scheduled tick. Default: false.
	RunOnStart bool
}

// DefaultConfig returns a WorkerConfig with production defaults: a daily
// run at 05:30 UTC with a 10-minute batch timeout.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule:    "30 5 * * *",
		Timezone:        "UTC",
		GenerateTimeout: 10 * time.Minute,
		HealthPort:      9091,
		RunOnStart:      false,
	}
}

// Validate checks every field and returns the collected errors, if any.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.GenerateTimeout); err != nil {
		errs = append(errs, fmt.Errorf("generate timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables
// with validation and fallback to defaults on failure.
//
// The strategy is fail-open: an invalid value logs a warning, bumps the
// fallback metrics, and the default is used instead. The returned config is
// always valid and the error is always nil.
//
// Environment variables:
//   - CRON_SCHEDULE: cron expression (default "30 5 * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default "UTC")
//   - GENERATE_TIMEOUT: duration string, 1m-2h (default 10m)
//   - WORKER_HEALTH_PORT: integer 1024-65535 (default 9091)
//   - RUN_ON_START: boolean (default false)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()
	fallbackApplied := false

	applyFallback := func(field string, result config.ConfigLoadResult) {
		if !result.FallbackApplied {
			return
		}
		fallbackApplied = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field)
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", field),
				slog.String("warning", warning))
		}
	}

	result := config.LoadEnvWithFallback("CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = result.Value.(string)
	applyFallback("cron_schedule", result)

	result = config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = result.Value.(string)
	applyFallback("timezone", result)

	result = config.LoadEnvDuration("GENERATE_TIMEOUT", cfg.GenerateTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 1*time.Minute, 2*time.Hour)
	})
	cfg.GenerateTimeout = result.Value.(time.Duration)
	applyFallback("generate_timeout", result)

	result = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	applyFallback("health_port", result)

	result = config.LoadEnvBool("RUN_ON_START", cfg.RunOnStart)
	cfg.RunOnStart = result.Value.(bool)
	applyFallback("run_on_start", result)

	metrics.SetFallbackActive(fallbackApplied)
	metrics.RecordLoadTimestamp()

	return &cfg, nil
}
