package apperror

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// StatusError is an error that carries the HTTP status code the boundary
// adapter should answer with. It supports wrapping via Unwrap so errors.As
// finds it anywhere in a chain.
type StatusError struct {
	status  int
	message string
	cause   error
}

func (e *StatusError) Error() string {
	if e.cause == nil {
		return e.message
	}
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}

func (e *StatusError) Unwrap() error { return e.cause }

// Status returns the HTTP status code.
func (e *StatusError) Status() int { return e.status }

// Message returns the client-facing message without the wrapped cause.
func (e *StatusError) Message() string { return e.message }

func New(status int, message string) error {
	return &StatusError{status: normalize(status), message: message}
}

func Newf(status int, format string, args ...any) error {
	return &StatusError{status: normalize(status), message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a status and a client-facing message to cause.
func Wrap(status int, message string, cause error) error {
	if cause == nil {
		return New(status, message)
	}
	return &StatusError{status: normalize(status), message: message, cause: cause}
}

// StatusOf extracts the status code from any error, defaulting to 500.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.status
	}
	return http.StatusInternalServerError
}

// As returns the first StatusError in err's chain.
func As(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func normalize(status int) int {
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
