package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatusPerKind(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindMissingInput, http.StatusBadRequest},
		{KindUnsupportedMedia, http.StatusBadRequest},
		{KindUpstreamAuth, http.StatusUnauthorized},
		{KindUpstreamRateLimited, http.StatusTooManyRequests},
		{KindExtractionEmpty, http.StatusInternalServerError},
		{KindUpstreamUnavailable, http.StatusInternalServerError},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			e := &APIError{Kind: tt.kind, Message: "x"}
			require.Equal(t, tt.want, e.HTTPStatus())
		})
	}
}

func TestFromErrorUnwrapsAPIError(t *testing.T) {
	orig := MissingInput("file is required")
	wrapped := fmt.Errorf("handling request: %w", orig)

	got := FromError(wrapped)
	require.Equal(t, KindMissingInput, got.Kind)
	require.Equal(t, "file is required", got.Message)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("boom")
	got := FromError(cause)

	require.Equal(t, KindUnknown, got.Kind)
	// raw cause must not surface in the client-facing message
	require.Equal(t, "internal error", got.Message)
	require.ErrorIs(t, got, cause)
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("upstream said no")
	e := UpstreamAuth("Invalid OpenAI API key", cause)
	require.ErrorIs(t, e, cause)
	require.Contains(t, e.Error(), "UPSTREAM_AUTH_FAILURE")
}
