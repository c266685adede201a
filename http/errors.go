package http

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for tracker clients.
var (
	// ErrTransport indicates the request never produced a response.
	ErrTransport = errors.New("transport failure")

	// ErrDecode indicates a response body could not be decoded.
	ErrDecode = errors.New("malformed response")

	// ErrUnauthorized indicates invalid or missing authentication.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an error status from an external API.
type APIError struct {
	// Service is the name of the backend (e.g., "azure-devops").
	Service string

	// StatusCode is the HTTP status code returned.
	StatusCode int

	// Message is the error message from the API.
	Message string

	// Endpoint is the API endpoint that was called.
	Endpoint string

	// RequestID is the request ID for debugging (if available).
	RequestID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s API error (%d) at %s [%s]: %s",
			e.Service, e.StatusCode, e.Endpoint, e.RequestID, e.Message)
	}
	return fmt.Sprintf("%s API error (%d) at %s: %s",
		e.Service, e.StatusCode, e.Endpoint, e.Message)
}

// Unwrap returns the underlying sentinel error based on status code.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNonAuthoritativeInfo:
		// Azure DevOps serves its sign-in page with 203 instead of a 401.
		return ErrUnauthorized
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return nil
	}
}

// IsUnauthorized reports whether the error indicates authentication failed.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimited reports whether the API refused the request for exceeding its rate limit.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTransport reports whether the request failed before a response arrived.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
