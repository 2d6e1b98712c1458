package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Blockify0/collabnotes-ai/internal/common"
	"github.com/Blockify0/collabnotes-ai/internal/llm"
)

// fake OpenAI backend; handler is swapped per test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeChatCompletion(w http.ResponseWriter, content string) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-3.5-turbo",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
}

func writeUpstreamError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    "invalid_request_error",
		},
	})
}

func TestSummarizeSendsFixedPrompts(t *testing.T) {
	var captured struct {
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		writeChatCompletion(w, "  A concise summary.  ")
	})

	res, err := c.Summarize(context.Background(), llm.SummaryRequest{SourceText: "meeting notes"})
	require.NoError(t, err)
	require.Equal(t, "A concise summary.", res.Summary)
	require.Equal(t, "gpt-3.5-turbo", res.Model)

	require.Equal(t, "gpt-3.5-turbo", captured.Model)
	require.InDelta(t, 0.7, captured.Temperature, 0.001)
	require.Equal(t, 150, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	require.Equal(t, "system", captured.Messages[0].Role)
	require.Equal(t, llm.SummarySystemPrompt, captured.Messages[0].Content)
	require.Equal(t, "user", captured.Messages[1].Role)
	require.Equal(t, "Please summarize the following text:\n\nmeeting notes", captured.Messages[1].Content)
}

func TestSummarizeRejectsEmptyCompletion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeChatCompletion(w, "   ")
	})

	_, err := c.Summarize(context.Background(), llm.SummaryRequest{SourceText: "some text"})
	require.Error(t, err)

	var apiErr *common.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, common.KindUnknown, apiErr.Kind)
	require.Equal(t, "no summary generated", apiErr.Message)
}

func TestSummarizeMapsUpstreamStatuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind common.Kind
		wantMsg  string
	}{
		{"bad key", http.StatusUnauthorized, common.KindUpstreamAuth, "Invalid OpenAI API key"},
		{"forbidden", http.StatusForbidden, common.KindUpstreamAuth, "Invalid OpenAI API key"},
		{"rate limited", http.StatusTooManyRequests, common.KindUpstreamRateLimited, "OpenAI API rate limit exceeded"},
		{"upstream down", http.StatusInternalServerError, common.KindUpstreamUnavailable, "upstream request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeUpstreamError(w, tt.status, "upstream says no")
			})

			_, err := c.Summarize(context.Background(), llm.SummaryRequest{SourceText: "some text"})
			require.Error(t, err)

			var apiErr *common.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tt.wantKind, apiErr.Kind)
			require.Equal(t, tt.wantMsg, apiErr.Message)
			require.Error(t, apiErr.Cause)
		})
	}
}

func TestTranscribeReturnsTrimmedText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "whisper-1", r.FormValue("model"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "standup.mp3", hdr.Filename)
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, []byte("fake mp3 bytes"), body)

		_ = json.NewEncoder(w).Encode(map[string]any{"text": "  we shipped the feature  "})
	})

	got, err := c.Transcribe(context.Background(), "standup.mp3", []byte("fake mp3 bytes"))
	require.NoError(t, err)
	require.Equal(t, "we shipped the feature", got)
}

func TestTranscribeRejectsEmptyText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": ""})
	})

	_, err := c.Transcribe(context.Background(), "silence.wav", []byte("wav bytes"))
	require.Error(t, err)

	var apiErr *common.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, common.KindUnknown, apiErr.Kind)
	require.Equal(t, "no transcription generated", apiErr.Message)
}

func TestTranscribeMapsRateLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeUpstreamError(w, http.StatusTooManyRequests, "slow down")
	})

	_, err := c.Transcribe(context.Background(), "talk.m4a", []byte("m4a bytes"))
	require.Error(t, err)

	var apiErr *common.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, common.KindUpstreamRateLimited, apiErr.Kind)
}
