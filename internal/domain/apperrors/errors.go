// Package apperrors holds the sentinel errors shared by every domain package.
// Callers wrap them with fmt.Errorf("...: %w", err) and the transport layer
// maps them to status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the write collides with existing state,
	// e.g. a document already signed by the same profile.
	ErrConflict = errors.New("conflict")

	// ErrForbidden indicates the caller lacks the role required for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition indicates the profile is not at the onboarding stage
	// the operation requires.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("validation failed")
)
