// Package config builds the canonical, validated Configuration record
// from the raw answers collected by the wizard or supplied as flags.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration building.
var (
	// ErrInvalidAppName indicates the app name is empty, contains
	// whitespace, or contains characters outside [A-Za-z0-9_-].
	ErrInvalidAppName = errors.New("config: invalid app name, must match ^[A-Za-z0-9_-]+$")

	// ErrUnknownFont indicates a font name outside the supported set.
	// Build never returns it; it is surfaced only by strict font parsing.
	ErrUnknownFont = errors.New("config: unknown font")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}
