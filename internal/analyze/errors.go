package analyze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes analyze client errors.
type ErrorType string

const (
	// ErrTypeValidation indicates a file rejected before any network call.
	ErrTypeValidation ErrorType = "validation"

	// ErrTypeRequest indicates a non-2xx response from the analyze service.
	ErrTypeRequest ErrorType = "request"

	// ErrTypeTransport indicates a network failure or an unreadable response
	// body (including malformed JSON).
	ErrTypeTransport ErrorType = "transport"

	// ErrTypeSchema indicates a 2xx response whose body does not carry the
	// expected result structure.
	ErrTypeSchema ErrorType = "schema"
)

// ClientError is the error type returned by the analyze client.
//
// Message is the user-facing text: for request errors it is the service's
// own error string verbatim, for transport errors a best-effort description
// of the underlying failure.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("type=%s", e.Type))
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	parts = append(parts, e.Message)
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches on error type so callers can use errors.Is with a prototype.
func (e *ClientError) Is(target error) bool {
	if ce, ok := target.(*ClientError); ok {
		return e.Type == ce.Type
	}
	return false
}

// NewClientError creates a client error.
func NewClientError(errType ErrorType, message string) *ClientError {
	return &ClientError{Type: errType, Message: message}
}

// NewClientErrorWithCause creates a client error wrapping an underlying cause.
func NewClientErrorWithCause(errType ErrorType, message string, cause error) *ClientError {
	return &ClientError{Type: errType, Message: message, Cause: cause}
}

// FailureMessage extracts the text to surface to the user for err. Typed
// client errors contribute their Message; anything else falls back to the
// error's own text.
func FailureMessage(err error) string {
	var ce *ClientError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return err.Error()
}
