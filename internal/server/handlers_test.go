package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Blockify0/collabnotes-ai/internal/common"
	"github.com/Blockify0/collabnotes-ai/internal/extract"
	"github.com/Blockify0/collabnotes-ai/internal/llm"
)

type fakeExtractor struct {
	calls int
	text  string
	err   error
}

func (f *fakeExtractor) Extract(_ context.Context, _ extract.Upload) (extract.Result, error) {
	f.calls++
	if f.err != nil {
		return extract.Result{}, f.err
	}
	return extract.Result{Text: f.text, Units: 1, Method: "fake"}, nil
}

type fakeSummarizer struct {
	calls   int
	lastReq llm.SummaryRequest
	summary string
	err     error
}

func (f *fakeSummarizer) Summarize(_ context.Context, req llm.SummaryRequest) (llm.SummaryResult, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return llm.SummaryResult{}, f.err
	}
	return llm.SummaryResult{Summary: f.summary, Model: "gpt-3.5-turbo"}, nil
}

type testEnv struct {
	mux        *http.ServeMux
	pdf        *fakeExtractor
	audio      *fakeExtractor
	summarizer *fakeSummarizer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &common.Config{}
	cfg.Upload.MaxUploadBytes = 25 << 20
	cfg.LLM.MaxTokens = 150
	cfg.LLM.Temperature = 0.7

	env := &testEnv{
		pdf:        &fakeExtractor{text: "extracted text"},
		audio:      &fakeExtractor{text: "transcribed text"},
		summarizer: &fakeSummarizer{summary: "a short summary"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := extract.NewDispatcher(env.pdf, env.audio, logger)
	h := NewHandler(cfg, d, env.summarizer, nil, logger)
	env.mux = NewRouter(h)
	return env
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

// multipartUpload builds a request body with one "file" part carrying an
// explicit Content-Type, the way browsers send uploads.
func multipartUpload(t *testing.T, filename, contentType string, data []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func postUpload(t *testing.T, path, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	body, formType := multipartUpload(t, filename, contentType, data)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", formType)
	return req
}

func TestExtractPDFMissingFile(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/extract-pdf", strings.NewReader("not multipart"))
	rec, body := env.do(t, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "PDF file is required", body["error"])
	require.Equal(t, "MISSING_INPUT", body["kind"])
	require.Zero(t, env.pdf.calls)
	require.Zero(t, env.audio.calls)
}

func TestExtractPDFEmptyFile(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, postUpload(t, "/api/extract-pdf", "empty.pdf", "application/pdf", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "PDF file is required", body["error"])
	require.Zero(t, env.pdf.calls)
}

func TestExtractPDFSuccess(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, postUpload(t, "/api/extract-pdf", "notes.pdf", "application/pdf", []byte("%PDF-1.4 bytes")))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, map[string]string{"text": "extracted text"}, body)
	require.Equal(t, 1, env.pdf.calls)
	require.Zero(t, env.audio.calls)
}

func TestExtractPDFUnsupportedMedia(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, postUpload(t, "/api/extract-pdf", "photo.png", "image/png", []byte{1, 2, 3}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "UNSUPPORTED_MEDIA_TYPE", body["kind"])
	require.Zero(t, env.pdf.calls)
	require.Zero(t, env.audio.calls)
}

func TestExtractPDFEmptyExtraction(t *testing.T) {
	env := newTestEnv(t)
	env.pdf.err = common.ExtractionEmpty("no text could be extracted")

	rec, body := env.do(t, postUpload(t, "/api/extract-pdf", "scan.pdf", "application/pdf", []byte("scanned")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "no text could be extracted", body["error"])
	require.Equal(t, "EXTRACTION_EMPTY", body["kind"])
}

func TestTranscribeSuccess(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, postUpload(t, "/api/transcribe", "standup.mp3", "audio/mpeg", []byte("mp3 bytes")))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]string{"transcription": "transcribed text"}, body)
	require.Equal(t, 1, env.audio.calls)
	require.Zero(t, env.pdf.calls)
}

func TestTranscribeMissingFile(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", nil)
	rec, body := env.do(t, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Audio file is required", body["error"])
	require.Zero(t, env.audio.calls)
}

func TestUpstreamFailuresStayDistinguishable(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantError  string
	}{
		{
			"auth failure",
			common.UpstreamAuth("Invalid OpenAI API key", nil),
			http.StatusUnauthorized,
			"UPSTREAM_AUTH_FAILURE",
			"Invalid OpenAI API key",
		},
		{
			"rate limited",
			common.UpstreamRateLimited("OpenAI API rate limit exceeded", nil),
			http.StatusTooManyRequests,
			"UPSTREAM_RATE_LIMITED",
			"OpenAI API rate limit exceeded",
		},
		{
			"unavailable",
			common.UpstreamUnavailable("upstream request failed", nil),
			http.StatusInternalServerError,
			"UPSTREAM_UNAVAILABLE",
			"upstream request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.audio.err = tt.err

			rec, body := env.do(t, postUpload(t, "/api/transcribe", "talk.wav", "audio/wav", []byte("wav bytes")))

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantKind, body["kind"])
			require.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestServerErrorsCarryDetails(t *testing.T) {
	env := newTestEnv(t)
	env.pdf.err = common.UpstreamUnavailable("upstream request failed", errors.New("connection refused"))

	rec, body := env.do(t, postUpload(t, "/api/extract-pdf", "notes.pdf", "application/pdf", []byte("%PDF-1.4 bytes")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "upstream request failed", body["error"])
	require.Equal(t, "connection refused", body["details"])
}

func TestClientErrorsOmitDetails(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/extract-pdf", nil)
	rec, body := env.do(t, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotContains(t, body, "details")
}

func TestSummarizeSuccess(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"text":"long meeting notes"}`))
	req.Header.Set("Content-Type", "application/json")
	rec, body := env.do(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]string{"summary": "a short summary"}, body)
	require.Equal(t, 1, env.summarizer.calls)
	require.Equal(t, "long meeting notes", env.summarizer.lastReq.SourceText)
	require.Equal(t, 150, env.summarizer.lastReq.MaxTokens)
}

func TestSummarizeMissingText(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "plain text"},
		{"missing field", `{}`},
		{"whitespace only", `{"text":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(tt.body))
			rec, body := env.do(t, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "Text is required", body["error"])
			require.Equal(t, "MISSING_INPUT", body["kind"])
			require.Zero(t, env.summarizer.calls)
		})
	}
}

func TestSummarizeUpstreamError(t *testing.T) {
	env := newTestEnv(t)
	env.summarizer.err = common.UpstreamRateLimited("OpenAI API rate limit exceeded", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"text":"notes"}`))
	rec, body := env.do(t, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "OpenAI API rate limit exceeded", body["error"])
}

func TestListJobsEmptyLedger(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"jobs":[]}`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec, body := env.do(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", body["status"])
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/extract-pdf", "/api/transcribe", "/api/summarize"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		env.mux.ServeHTTP(rec, req)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
