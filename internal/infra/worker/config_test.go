package worker

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Metrics register with the default Prometheus registry; share one instance
// across all tests in the package.
var (
	sharedMetrics     *WorkerMetrics
	sharedMetricsOnce sync.Once
)

func testMetrics() *WorkerMetrics {
	sharedMetricsOnce.Do(func() {
		sharedMetrics = NewWorkerMetrics()
	})
	return sharedMetrics
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "30 5 * * *", cfg.CronSchedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 10*time.Minute, cfg.GenerateTimeout)
	assert.Equal(t, 9091, cfg.HealthPort)
	assert.False(t, cfg.RunOnStart)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WorkerConfig)
		wantErr string
	}{
		{
			name:    "invalid cron expression",
			mutate:  func(c *WorkerConfig) { c.CronSchedule = "not a cron" },
			wantErr: "cron schedule",
		},
		{
			name:    "unknown timezone",
			mutate:  func(c *WorkerConfig) { c.Timezone = "Mars/Olympus" },
			wantErr: "timezone",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *WorkerConfig) { c.GenerateTimeout = 0 },
			wantErr: "generate timeout",
		},
		{
			name:    "privileged health port",
			mutate:  func(c *WorkerConfig) { c.HealthPort = 80 },
			wantErr: "health port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CRON_SCHEDULE", "0 */6 * * *")
		t.Setenv("WORKER_TIMEZONE", "America/New_York")
		t.Setenv("GENERATE_TIMEOUT", "30m")
		t.Setenv("WORKER_HEALTH_PORT", "9191")
		t.Setenv("RUN_ON_START", "true")

		cfg, err := LoadConfigFromEnv(logger, testMetrics())
		require.NoError(t, err)

		assert.Equal(t, "0 */6 * * *", cfg.CronSchedule)
		assert.Equal(t, "America/New_York", cfg.Timezone)
		assert.Equal(t, 30*time.Minute, cfg.GenerateTimeout)
		assert.Equal(t, 9191, cfg.HealthPort)
		assert.True(t, cfg.RunOnStart)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		var buf bytes.Buffer
		warnLogger := slog.New(slog.NewJSONHandler(&buf, nil))

		t.Setenv("CRON_SCHEDULE", "every day at dawn")
		t.Setenv("GENERATE_TIMEOUT", "5s") // below the 1m floor

		cfg, err := LoadConfigFromEnv(warnLogger, testMetrics())
		require.NoError(t, err)

		assert.Equal(t, "30 5 * * *", cfg.CronSchedule)
		assert.Equal(t, 10*time.Minute, cfg.GenerateTimeout)
		assert.True(t, strings.Contains(buf.String(), "Configuration fallback applied"))
	})

	t.Run("empty environment yields defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromEnv(logger, testMetrics())
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), *cfg)
	})
}
