// Package common defines shared constants and sentinel errors used across
// client and server layers of infrakeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors: a required field is missing or malformed.
	ErrorValidation = errors.New("validation error")

	// ErrAssociationMismatch is returned when a record exists but is attached
	// to a different (kind, id) pair than the caller's scope.
	ErrAssociationMismatch = errors.New("association mismatch")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
