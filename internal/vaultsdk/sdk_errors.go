package vaultsdk

import (
	"errors"
	"fmt"

	"github.com/imroc/req/v3"
)

var (
	// sdk common
	ErrNoServerURL = errors.New("sdk: server url missing")
	ErrEmptyPath   = errors.New("sdk: file path missing")
	ErrEmptyQuery  = errors.New("sdk: search query missing")
	ErrEmptyDelta  = errors.New("sdk: patch delta missing")
)

// Error codes returned in the API error envelope.
const (
	CodeInvalidRequest = "E_INVALID_REQUEST"
	CodeRateLimited    = "E_RATE_LIMITED"
	CodeInternalError  = "E_INTERNAL_ERROR"
	CodeInvalidPath    = "E_INVALID_PATH"
	CodeNotFound       = "E_NOT_FOUND"
	CodeAlreadyExists  = "E_ALREADY_EXISTS"
	CodeEmptyInput     = "E_EMPTY_INPUT"
	CodeMalformedDelta = "E_MALFORMED_DELTA"
	CodeConflict       = "E_CONFLICT"
)

type SDKError interface {
	error
	ErrorCode() string
	ErrorMessage() string
}

// APIError is the decoded {code, error} envelope of a failed API call.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) ErrorCode() string    { return e.Code }
func (e *APIError) ErrorMessage() string { return e.Message }

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s - %s", e.Code, e.Message)
}

var _ SDKError = (*APIError)(nil)

// IsConflict reports whether err is a fingerprint mismatch rejection.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == CodeConflict
}

// handleAPIError folds transport errors and API error envelopes into one error.
func handleAPIError(resp *req.Response, requestErr error, operation string) error {
	if requestErr != nil {
		return fmt.Errorf("http request error: %s %w", operation, requestErr)
	}

	// got a response, but api returned an error
	if resp.IsErrorState() {
		if err, ok := resp.ErrorResult().(*APIError); ok {
			return fmt.Errorf("%s %w", operation, err)
		}

		return fmt.Errorf("api error: %s %s", operation, resp.Status)
	}

	return nil
}
