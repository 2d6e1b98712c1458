package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Blockify0/collabnotes-ai/constants"
	"github.com/Blockify0/collabnotes-ai/internal/common"
	"github.com/Blockify0/collabnotes-ai/internal/entity"
	"github.com/Blockify0/collabnotes-ai/internal/export"
	"github.com/Blockify0/collabnotes-ai/internal/extract"
	"github.com/Blockify0/collabnotes-ai/internal/llm"
	"github.com/Blockify0/collabnotes-ai/internal/repository"
)

// Handler wires the linear per-request pipeline:
// intake -> dispatch -> normalize -> (summarize) -> envelope.
// All upstream clients are injected so tests can substitute fakes.
type Handler struct {
	cfg        *common.Config
	log        *slog.Logger
	dispatcher *extract.Dispatcher
	summarizer llm.Summarizer
	jobs       repository.IngestJobRepository
	export     *export.Service
}

func NewHandler(cfg *common.Config, dispatcher *extract.Dispatcher, summarizer llm.Summarizer, jobs repository.IngestJobRepository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if jobs == nil {
		jobs = repository.NewNopIngestJobRepository()
	}
	return &Handler{
		cfg:        cfg,
		log:        logger,
		dispatcher: dispatcher,
		summarizer: summarizer,
		jobs:       jobs,
		export:     export.NewService(jobs, logger),
	}
}

// ExtractPDF handles POST /api/extract-pdf.
func (h *Handler) ExtractPDF(w http.ResponseWriter, r *http.Request) {
	rid := uuid.New().String()
	ctx := common.WithRequestID(r.Context(), rid)
	log := h.log.With("req_id", rid, "route", "/api/extract-pdf")

	up, err := h.readUpload(w, r, "PDF file is required", "application/pdf")
	if err != nil {
		writeError(w, log, err)
		return
	}

	start := time.Now()
	jobID, _ := h.jobs.Start(ctx, constants.JobKindExtractPDF, up.MediaType, int64(len(up.Data)), rid)

	res, err := h.dispatcher.Extract(ctx, up)
	if err != nil {
		h.finishFailure(ctx, jobID, err, time.Since(start))
		writeError(w, log, err)
		return
	}
	h.finishSuccess(ctx, jobID, res.Units, time.Since(start))

	writeJSON(w, log, http.StatusOK, map[string]string{"text": res.Text})
}

// Transcribe handles POST /api/transcribe.
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	rid := uuid.New().String()
	ctx := common.WithRequestID(r.Context(), rid)
	log := h.log.With("req_id", rid, "route", "/api/transcribe")

	up, err := h.readUpload(w, r, "Audio file is required", "audio/mpeg")
	if err != nil {
		writeError(w, log, err)
		return
	}

	start := time.Now()
	jobID, _ := h.jobs.Start(ctx, constants.JobKindTranscribe, up.MediaType, int64(len(up.Data)), rid)

	res, err := h.dispatcher.Extract(ctx, up)
	if err != nil {
		h.finishFailure(ctx, jobID, err, time.Since(start))
		writeError(w, log, err)
		return
	}
	h.finishSuccess(ctx, jobID, res.Units, time.Since(start))

	writeJSON(w, log, http.StatusOK, map[string]string{"transcription": res.Text})
}

// Summarize handles POST /api/summarize.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	rid := uuid.New().String()
	ctx := common.WithRequestID(r.Context(), rid)
	log := h.log.With("req_id", rid, "route", "/api/summarize")

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		writeError(w, log, common.MissingInput("Text is required"))
		return
	}

	start := time.Now()
	jobID, _ := h.jobs.Start(ctx, constants.JobKindSummarize, "text/plain", int64(len(body.Text)), rid)

	res, err := h.summarizer.Summarize(ctx, llm.SummaryRequest{
		SourceText:  body.Text,
		MaxTokens:   h.cfg.LLM.MaxTokens,
		Temperature: h.cfg.LLM.Temperature,
	})
	if err != nil {
		h.finishFailure(ctx, jobID, err, time.Since(start))
		writeError(w, log, err)
		return
	}
	h.finishSuccess(ctx, jobID, 1, time.Since(start))

	writeJSON(w, log, http.StatusOK, map[string]string{"summary": res.Summary})
}

// ListJobs handles GET /api/jobs.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	jobs, err := h.jobs.List(r.Context(), limit)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if jobs == nil {
		jobs = []*entity.IngestJob{}
	}
	writeJSON(w, h.log, http.StatusOK, map[string]any{"jobs": jobs})
}

// ExportJobs handles GET /api/jobs/export.
func (h *Handler) ExportJobs(w http.ResponseWriter, r *http.Request) {
	limit := 1000
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	data, err := h.export.ExportJobsXLSX(r.Context(), limit)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=jobs.xlsx")
	if _, err := w.Write(data); err != nil {
		h.log.Error("write export failed", "error", err)
	}
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, http.StatusOK, map[string]string{"status": "ok"})
}

// readUpload pulls the single "file" field out of a multipart request.
// A missing, empty, or unreadable file fails before any upstream call.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request, missingMsg, fallbackType string) (extract.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxUploadBytes)

	if err := r.ParseMultipartForm(h.cfg.Upload.MaxUploadBytes); err != nil {
		return extract.Upload{}, common.MissingInput(missingMsg)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return extract.Upload{}, common.MissingInput(missingMsg)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return extract.Upload{}, common.WrapError(err, "reading upload")
	}
	if len(data) == 0 {
		return extract.Upload{}, common.MissingInput(missingMsg)
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}
	if mediaType == "" {
		mediaType = fallbackType
	}

	return extract.Upload{
		Filename:  header.Filename,
		MediaType: mediaType,
		Data:      data,
	}, nil
}

// Ledger writes are best-effort: a failing ledger never fails the request.
func (h *Handler) finishSuccess(ctx context.Context, jobID uuid.UUID, units int, elapsed time.Duration) {
	if jobID == uuid.Nil {
		return
	}
	_ = h.jobs.FinishSuccess(ctx, jobID, units, elapsed)
}

func (h *Handler) finishFailure(ctx context.Context, jobID uuid.UUID, err error, elapsed time.Duration) {
	if jobID == uuid.Nil {
		return
	}
	apiErr := common.FromError(err)
	_ = h.jobs.FinishFailure(ctx, jobID, string(apiErr.Kind), apiErr.Message, elapsed)
}
