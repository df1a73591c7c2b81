// Package domainerrors carries the error codes services return and the HTTP
// layer translates into status codes.
//
// Stores return plain or sentinel errors; services wrap them with a Code so the
// transport layer never inspects driver errors directly.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies an error for translation to a client response.
type Code string

const (
	// CodeBadRequest covers caller-supplied values out of the allowed range.
	CodeBadRequest Code = "bad_request"
	// CodeNotFound covers pages beyond the last page and detail lookups with no match.
	CodeNotFound Code = "not_found"
	// CodeUnauthorized covers unknown or inactive credentials.
	CodeUnauthorized Code = "unauthorized"
	// CodeForbidden covers requests without any credential.
	CodeForbidden Code = "forbidden"
	// CodeTooManyRequests covers an exhausted quota tier.
	CodeTooManyRequests Code = "too_many_requests"
	// CodeUpstream covers an external collaborator returning an unexpected shape.
	CodeUpstream Code = "upstream_error"
	// CodeInternal covers programming defects such as an unordered paginated query.
	CodeInternal Code = "internal_error"
)

// Error is a coded error with a client-safe message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a coded error without a cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and client-safe message to err.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// As extracts the outermost coded error, if any.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
