package openai

import (
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/Blockify0/collabnotes-ai/internal/common"
)

// mapError translates upstream SDK failures into the API error taxonomy.
// Auth rejections and throttling must stay distinguishable for the caller;
// everything else is an upstream-unavailable 500. No retries happen here.
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return mapStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return mapStatus(reqErr.HTTPStatusCode, err)
	}
	return common.UpstreamUnavailable("upstream request failed", err)
}

func mapStatus(status int, cause error) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.UpstreamAuth("Invalid OpenAI API key", cause)
	case http.StatusTooManyRequests:
		return common.UpstreamRateLimited("OpenAI API rate limit exceeded", cause)
	default:
		return common.UpstreamUnavailable("upstream request failed", cause)
	}
}
