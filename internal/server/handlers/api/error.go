// Package api defines the error envelope every vaultd endpoint speaks
// and the typed error the handlers hand to the rendering middleware.
package api

import (
	"fmt"
	"net/http"
)

// Error is an API failure with everything the error-handling middleware
// needs to render it: the wire code, a client-safe message, the HTTP
// status and the internal cause for logs.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"error"`

	Status   int   `json:"-"`
	Internal error `json:"-"`
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// New builds an Error with an explicit message. The taxonomy
// constructors below cover the common cases.
func New(code string, message string, status int, internal error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Status:   status,
		Internal: internal,
	}
}

// InvalidRequest flags a request body or query that failed validation.
func InvalidRequest(err error) *Error {
	return New(CodeInvalidRequest, err.Error(), http.StatusBadRequest, err)
}

// InvalidPath flags a client path rejected by the vault sandbox.
func InvalidPath(err error) *Error {
	return New(CodeInvalidPath, err.Error(), http.StatusBadRequest, err)
}

// NotFound flags an operation on a file that does not exist.
func NotFound(err error) *Error {
	return New(CodeNotFound, err.Error(), http.StatusNotFound, err)
}

// AlreadyExists flags a create aimed at an existing file.
func AlreadyExists(err error) *Error {
	return New(CodeAlreadyExists, err.Error(), http.StatusConflict, err)
}

// EmptyInput flags missing content or an empty delta.
func EmptyInput(err error) *Error {
	return New(CodeEmptyInput, err.Error(), http.StatusBadRequest, err)
}

// MalformedDelta flags a delta that failed to parse or apply. The
// underlying reason is part of the message so clients can fix their
// payloads.
func MalformedDelta(err error) *Error {
	return New(CodeMalformedDelta, err.Error(), http.StatusBadRequest, err)
}

// Conflict flags a fingerprint precondition failure. The client should
// re-fetch and retry.
func Conflict(err error) *Error {
	return New(CodeConflict, err.Error(), http.StatusConflict, err)
}

// RateLimited flags a request dropped by the rate limiter.
func RateLimited() *Error {
	return New(CodeRateLimited, "rate limit exceeded", http.StatusTooManyRequests, nil)
}

// Internal wraps an unexpected failure. The cause goes to the logs, not
// to the client.
func Internal(err error) *Error {
	return New(CodeInternalError, "internal server error", http.StatusInternalServerError, err)
}
