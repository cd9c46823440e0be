package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ValidateCronSchedule checks a five-field cron expression with the same
// parser the worker scheduler uses, so anything accepted here is guaranteed
// to schedule.
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("cron schedule must not be empty")
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", schedule, err)
	}
	return nil
}

// ValidateTimezone checks an IANA zone name against the system tzdata.
// A valid name still fails on images shipped without tzdata.
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("timezone must not be empty")
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", timezone, err)
	}
	return nil
}

// ValidateDuration checks that d falls inside [min, max].
func ValidateDuration(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("bad bounds: min %v > max %v", min, max)
	}
	if d < min || d > max {
		return fmt.Errorf("duration %v must be between %v and %v", d, min, max)
	}
	return nil
}

// ValidateIntRange checks that value falls inside [min, max].
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("bad bounds: min %d > max %d", min, max)
	}
	if value < min || value > max {
		return fmt.Errorf("value %d must be between %d and %d", value, min, max)
	}
	return nil
}

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}
