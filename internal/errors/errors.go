// Package errors provides structured error handling with a fixed taxonomy and
// mapping to both GraphQL error entries and HTTP status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"sentimock/internal/domain"
)

// ErrorType represents the category of error for metrics and response formatting.
type ErrorType string

const (
	// TypeValidation indicates invalid input (empty or oversized text).
	TypeValidation ErrorType = "validation"
	// TypeAuthentication indicates bad credentials.
	TypeAuthentication ErrorType = "authentication"
	// TypeConflict indicates a duplicate registration.
	TypeConflict ErrorType = "conflict"
	// TypeNotFound indicates a missing resource.
	TypeNotFound ErrorType = "not_found"
	// TypeInternal indicates a server-side error.
	TypeInternal ErrorType = "internal"
)

// Error is a structured error with type, message, and optional cause.
// Message is the exact text sent to clients; it never changes between calls
// that fail the same precondition.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ToGraphQL converts the error into a single GraphQL error entry whose path
// is the resolved field of the failing operation.
func (e *Error) ToGraphQL(path ...string) domain.GraphQLError {
	return domain.GraphQLError{Message: e.Message, Path: path}
}

// HTTPStatus returns the status code for this error type when it escapes the
// GraphQL envelope (transport-level failures only; GraphQL operation errors
// ride on HTTP 200).
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeConflict:
		return http.StatusConflict
	case TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError creates a new validation error.
func ValidationError(message string) *Error {
	return &Error{Type: TypeValidation, Message: message}
}

// AuthenticationError creates a new bad-credentials error.
func AuthenticationError(message string) *Error {
	return &Error{Type: TypeAuthentication, Message: message}
}

// ConflictError creates a new conflict error.
func ConflictError(message string) *Error {
	return &Error{Type: TypeConflict, Message: message}
}

// NotFoundError creates a new not-found error.
func NotFoundError(message string) *Error {
	return &Error{Type: TypeNotFound, Message: message}
}

// InternalError creates a new internal error wrapping its cause.
func InternalError(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause}
}

// AsStructuredError converts any error into a structured Error. If err is
// already an *Error it is returned unchanged; otherwise it is wrapped as an
// internal error with a generic client-facing message.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError("internal server error", err)
}
