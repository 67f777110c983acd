package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the two failure classes of the transport: the request
// never produced a response, or the backend answered with a rejection.
var (
	// ErrUnavailable indicates a transport-level failure (connection refused,
	// DNS, interrupted body). The backend was never reached or never answered.
	ErrUnavailable = errors.New("rest: backend unavailable")

	// ErrInvalidResponse indicates a response body that could not be decoded
	ErrInvalidResponse = errors.New("rest: invalid response payload")
)

// APIError represents a request the backend received and rejected
// (validation, auth, not-found, conflict)
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("rest: server rejected request: %d %s (%s)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("rest: server rejected request: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 rejection
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 rejection
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
