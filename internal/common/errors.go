package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the machine-readable failure category surfaced to clients.
type Kind string

const (
	KindMissingInput        Kind = "MISSING_INPUT"
	KindUnsupportedMedia    Kind = "UNSUPPORTED_MEDIA_TYPE"
	KindExtractionEmpty     Kind = "EXTRACTION_EMPTY"
	KindUpstreamAuth        Kind = "UPSTREAM_AUTH_FAILURE"
	KindUpstreamRateLimited Kind = "UPSTREAM_RATE_LIMITED"
	KindUpstreamUnavailable Kind = "UPSTREAM_UNAVAILABLE"
	KindUnknown             Kind = "UNKNOWN"
)

// APIError represents application-specific errors with a fixed HTTP mapping.
type APIError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status code surfaced for this error kind.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindMissingInput, KindUnsupportedMedia:
		return http.StatusBadRequest
	case KindUpstreamAuth:
		return http.StatusUnauthorized
	case KindUpstreamRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func NewAPIError(kind Kind, message string, cause error) *APIError {
	return &APIError{Kind: kind, Message: message, Cause: cause}
}

func MissingInput(message string) *APIError {
	return &APIError{Kind: KindMissingInput, Message: message}
}

func UnsupportedMedia(message string) *APIError {
	return &APIError{Kind: KindUnsupportedMedia, Message: message}
}

func ExtractionEmpty(message string) *APIError {
	return &APIError{Kind: KindExtractionEmpty, Message: message}
}

func UpstreamAuth(message string, cause error) *APIError {
	return &APIError{Kind: KindUpstreamAuth, Message: message, Cause: cause}
}

func UpstreamRateLimited(message string, cause error) *APIError {
	return &APIError{Kind: KindUpstreamRateLimited, Message: message, Cause: cause}
}

func UpstreamUnavailable(message string, cause error) *APIError {
	return &APIError{Kind: KindUpstreamUnavailable, Message: message, Cause: cause}
}

// FromError returns err's APIError if it carries one, or wraps it as UNKNOWN.
// The wrapped message stays generic; the cause is for server-side logs only.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Kind: KindUnknown, Message: "internal error", Cause: err}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
