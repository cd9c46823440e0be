package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripFastConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 0.5,
		MinRequests:      2,
	}
}

func TestExecutePassesResultThrough(t *testing.T) {
	cb := New(tripFastConfig("passthrough"))

	result, err := cb.Execute(func() (interface{}, error) {
		return "draft text", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "draft text", result)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestExecutePropagatesError(t *testing.T) {
	cb := New(tripFastConfig("propagate"))
	upstream := errors.New("api down")

	_, err := cb.Execute(func() (interface{}, error) {
		return nil, upstream
	})

	assert.ErrorIs(t, err, upstream)
}

func TestTripsAfterFailureRatio(t *testing.T) {
	cb := New(tripFastConfig("trips"))

	for i := 0; i < 3; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, errors.New("api down")
		})
	}

	require.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() (interface{}, error) {
		t.Fatal("open circuit must not call through")
		return nil, nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestRecoversThroughHalfOpen(t *testing.T) {
	cb := New(tripFastConfig("recovers"))

	for i := 0; i < 3; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, errors.New("api down")
		})
	}
	require.Equal(t, gobreaker.StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	_, err := cb.Execute(func() (interface{}, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestStaysClosedBelowMinRequests(t *testing.T) {
	cb := New(tripFastConfig("warmup"))

	_, _ = cb.Execute(func() (interface{}, error) {
		return nil, errors.New("api down")
	})

	assert.Equal(t, gobreaker.StateClosed, cb.State(), "one failure is not enough history to trip")
}

func TestBackendConfigNames(t *testing.T) {
	assert.Equal(t, "claude-api", New(ClaudeAPIConfig()).Name())
	assert.Equal(t, "openai-api", New(OpenAIAPIConfig()).Name())
}
