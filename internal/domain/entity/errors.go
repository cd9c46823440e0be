package entity

import (
	"errors"
	"fmt"
)

// Domain sentinel errors.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError reports which field failed validation and why. It unwraps
// to ErrValidationFailed so callers can match the whole class with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }
