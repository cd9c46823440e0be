package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCronSchedule(t *testing.T) {
	valid := []string{
		"30 5 * * *",
		"0 */6 * * *",
		"30 9 * * 1-5",
		"*/15 * * * *",
	}
	for _, schedule := range valid {
		assert.NoError(t, ValidateCronSchedule(schedule), schedule)
	}

	invalid := []string{
		"",
		"every morning",
		"30 5 * *",
		"61 5 * * *",
	}
	for _, schedule := range invalid {
		assert.Error(t, ValidateCronSchedule(schedule), schedule)
	}
}

func TestValidateTimezone(t *testing.T) {
	assert.NoError(t, ValidateTimezone("UTC"))
	assert.NoError(t, ValidateTimezone("America/New_York"))
	assert.NoError(t, ValidateTimezone("Asia/Tokyo"))

	assert.Error(t, ValidateTimezone(""))
	assert.Error(t, ValidateTimezone("Mars/Olympus"))
	assert.Error(t, ValidateTimezone("+09:00"))
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, ValidateDuration(10*time.Minute, time.Minute, 2*time.Hour))
	assert.NoError(t, ValidateDuration(time.Minute, time.Minute, 2*time.Hour), "bounds are inclusive")
	assert.NoError(t, ValidateDuration(2*time.Hour, time.Minute, 2*time.Hour), "bounds are inclusive")

	assert.Error(t, ValidateDuration(time.Second, time.Minute, 2*time.Hour))
	assert.Error(t, ValidateDuration(3*time.Hour, time.Minute, 2*time.Hour))
	assert.Error(t, ValidateDuration(time.Minute, time.Hour, time.Minute), "inverted bounds")
}

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, ValidateIntRange(9091, 1024, 65535))
	assert.NoError(t, ValidateIntRange(1024, 1024, 65535))
	assert.NoError(t, ValidateIntRange(65535, 1024, 65535))

	assert.Error(t, ValidateIntRange(80, 1024, 65535))
	assert.Error(t, ValidateIntRange(70000, 1024, 65535))
	assert.Error(t, ValidateIntRange(5, 10, 1), "inverted bounds")
}

func TestValidatePositiveDuration(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Nanosecond))
	assert.NoError(t, ValidatePositiveDuration(time.Hour))

	assert.Error(t, ValidatePositiveDuration(0))
	assert.Error(t, ValidatePositiveDuration(-time.Second))
}
