package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Blockify0/collabnotes-ai/internal/common"
)

// errorBody is the uniform failure envelope. Kind is the machine-readable
// category; Error is the human-readable message the page displays.
type errorBody struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response failed", "error", err)
	}
}

// writeError translates any error into the taxonomy and serializes the
// failure envelope. The underlying cause is surfaced as Details on server
// errors only; client errors carry just the message.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	apiErr := common.FromError(err)
	status := apiErr.HTTPStatus()
	logger.Error("request failed",
		"kind", string(apiErr.Kind),
		"status", status,
		"message", apiErr.Message,
		"cause", apiErr.Cause,
	)
	body := errorBody{
		Error: apiErr.Message,
		Kind:  string(apiErr.Kind),
	}
	if status >= http.StatusInternalServerError && apiErr.Cause != nil {
		body.Details = apiErr.Cause.Error()
	}
	writeJSON(w, logger, status, body)
}
