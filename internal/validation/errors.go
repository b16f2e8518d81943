// Package validation runs ordered request checks and carries the errors they produce.
package validation

import (
	"fmt"
	"net/http"
)

// Error is a request failure reported to the caller with its HTTP status.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Invalid returns a 400 error for a missing or malformed field.
func Invalid(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a 404 error for an unknown identifier.
func NotFound(format string, args ...any) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}
