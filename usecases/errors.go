package usecases

import "errors"

// Failure kinds surfaced to the handler layer, which maps them to HTTP
// status codes. Wrap with fmt.Errorf("...: %w", Err...) to attach context.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)
