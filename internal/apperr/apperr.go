// Package apperr holds the error vocabulary shared by controllers and
// handlers: validation failures carrying per-field messages, and the
// not-found sentinel the HTTP layer maps to 404.
package apperr

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("resource not found")

// FieldErrors maps a request field to the messages explaining why it was
// rejected.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

// ValidationError carries every field failure from one request so the client
// sees them all at once.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, field+": "+strings.Join(messages, ", "))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func NewValidation(fields FieldErrors) error {
	return &ValidationError{Fields: fields}
}

// AsValidation unwraps a ValidationError when err carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
