// Package services provides thin domain services over the Ent client, one per
// entity family. All state transitions of jobs, sessions, and API definitions
// go through this package.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when creating a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrTerminal is returned when mutating a job in a terminal state.
	ErrTerminal = errors.New("job is in a terminal state")

	// ErrNotCancelable is returned when canceling a job that already started.
	ErrNotCancelable = errors.New("job is not in a cancelable state")

	// ErrNotResumable is returned when resuming or resolving a job that is
	// not paused or errored.
	ErrNotResumable = errors.New("job is not in a resumable state")

	// ErrNotOwner is returned when renewing a lease the caller does not own.
	ErrNotOwner = errors.New("lease is not owned by caller")

	// ErrNoJobsAvailable is returned by ClaimNext when nothing is claimable.
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// ValidationError wraps field-specific validation errors; the API layer maps
// it to HTTP 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
