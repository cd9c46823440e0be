package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvWithFallback(t *testing.T) {
	t.Run("unset variable uses default silently", func(t *testing.T) {
		result := LoadEnvWithFallback("NEWSRADAR_TEST_SCHEDULE", "30 5 * * *", ValidateCronSchedule)

		assert.Equal(t, "30 5 * * *", result.Value)
		assert.False(t, result.FallbackApplied)
		assert.Empty(t, result.Warnings)
	})

	t.Run("valid value wins over default", func(t *testing.T) {
		t.Setenv("NEWSRADAR_TEST_SCHEDULE", "0 */6 * * *")

		result := LoadEnvWithFallback("NEWSRADAR_TEST_SCHEDULE", "30 5 * * *", ValidateCronSchedule)

		assert.Equal(t, "0 */6 * * *", result.Value)
		assert.False(t, result.FallbackApplied)
	})

	t.Run("rejected value falls back with warning", func(t *testing.T) {
		t.Setenv("NEWSRADAR_TEST_SCHEDULE", "every morning")

		result := LoadEnvWithFallback("NEWSRADAR_TEST_SCHEDULE", "30 5 * * *", ValidateCronSchedule)

		assert.Equal(t, "30 5 * * *", result.Value)
		assert.True(t, result.FallbackApplied)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "NEWSRADAR_TEST_SCHEDULE")
	})

	t.Run("nil validator accepts anything", func(t *testing.T) {
		t.Setenv("NEWSRADAR_TEST_FREEFORM", "whatever")

		result := LoadEnvWithFallback("NEWSRADAR_TEST_FREEFORM", "default", nil)

		assert.Equal(t, "whatever", result.Value)
	})
}

func TestLoadEnvDuration(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      time.Duration
		wantFall  bool
		validator func(time.Duration) error
	}{
		{name: "unset uses default", raw: "", want: 10 * time.Minute},
		{name: "compound duration", raw: "1h30m", want: 90 * time.Minute},
		{name: "unparseable falls back", raw: "ten minutes", want: 10 * time.Minute, wantFall: true},
		{name: "validator rejection falls back", raw: "-5m", want: 10 * time.Minute, wantFall: true,
			validator: ValidatePositiveDuration},
		{name: "out of range falls back", raw: "3h", want: 10 * time.Minute, wantFall: true,
			validator: func(d time.Duration) error { return ValidateDuration(d, time.Minute, 2*time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.raw != "" {
				t.Setenv("NEWSRADAR_TEST_TIMEOUT", tt.raw)
			}

			result := LoadEnvDuration("NEWSRADAR_TEST_TIMEOUT", 10*time.Minute, tt.validator)

			assert.Equal(t, tt.want, result.Value)
			assert.Equal(t, tt.wantFall, result.FallbackApplied)
		})
	}
}

func TestLoadEnvInt(t *testing.T) {
	portRange := func(v int) error { return ValidateIntRange(v, 1024, 65535) }

	tests := []struct {
		name     string
		raw      string
		want     int
		wantFall bool
	}{
		{name: "unset uses default", raw: "", want: 9091},
		{name: "valid port", raw: "8085", want: 8085},
		{name: "not a number falls back", raw: "eighty", want: 9091, wantFall: true},
		{name: "decimal falls back", raw: "80.5", want: 9091, wantFall: true},
		{name: "privileged port falls back", raw: "80", want: 9091, wantFall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.raw != "" {
				t.Setenv("NEWSRADAR_TEST_PORT", tt.raw)
			}

			result := LoadEnvInt("NEWSRADAR_TEST_PORT", 9091, portRange)

			assert.Equal(t, tt.want, result.Value)
			assert.Equal(t, tt.wantFall, result.FallbackApplied)
		})
	}
}

func TestLoadEnvBool(t *testing.T) {
	for _, raw := range []string{"1", "t", "true", "TRUE", "True"} {
		t.Run("true spelling "+raw, func(t *testing.T) {
			t.Setenv("NEWSRADAR_TEST_FLAG", raw)
			assert.Equal(t, true, LoadEnvBool("NEWSRADAR_TEST_FLAG", false).Value)
		})
	}

	t.Run("false spelling", func(t *testing.T) {
		t.Setenv("NEWSRADAR_TEST_FLAG", "0")
		assert.Equal(t, false, LoadEnvBool("NEWSRADAR_TEST_FLAG", true).Value)
	})

	t.Run("garbage falls back", func(t *testing.T) {
		t.Setenv("NEWSRADAR_TEST_FLAG", "yes please")

		result := LoadEnvBool("NEWSRADAR_TEST_FLAG", true)

		assert.Equal(t, true, result.Value)
		assert.True(t, result.FallbackApplied)
	})

	t.Run("unset uses default", func(t *testing.T) {
		result := LoadEnvBool("NEWSRADAR_TEST_FLAG", false)

		assert.Equal(t, false, result.Value)
		assert.False(t, result.FallbackApplied)
	})
}
