package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent the failure taxonomy of the adapter.
// Every error surfaced to a tool caller wraps one of these sentinels
// so adapters can classify failures with errors.Is.
var (
	// ErrInvalidInput indicates malformed or invalid caller input.
	// No network call is made for requests that fail validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConnection indicates the upstream SearXNG instance is
	// unreachable or answered with a non-2xx status.
	ErrConnection = errors.New("connection error")

	// ErrTimeout indicates the upstream request exceeded the
	// configured timeout.
	ErrTimeout = errors.New("timeout")

	// ErrMalformedResponse indicates the upstream payload was not
	// valid JSON or was missing the expected results array.
	ErrMalformedResponse = errors.New("malformed response")
)

// ValidationError reports a single rejected request field.
// It wraps ErrInvalidInput so errors.Is(err, ErrInvalidInput) holds.
type ValidationError struct {
	// Field is the name of the offending parameter.
	Field string

	// Reason describes the constraint, including the accepted set
	// for enum fields.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes the error match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
