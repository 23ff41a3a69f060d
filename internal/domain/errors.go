package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// person does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a field
// rule (length bound, malformed or future birth date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by the repo when an insert violates the nickname
// uniqueness constraint. Any other constraint violation is not a conflict.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnavailable is returned when the connection pool cannot supply a
// connection to the store.
// Handlers should map this to HTTP 503.
var ErrUnavailable = errors.New("store unavailable")

// ValidationError reports the first field that failed validation.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	// Field is the JSON name of the offending field, e.g. "birth_date".
	Field string
	// Message is the human-readable rule, e.g. "must be at most 32 characters".
	Message string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Detail()
}

// Detail returns the client-facing message, field name first.
func (e *ValidationError) Detail() string {
	return e.Field + " " + e.Message
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
