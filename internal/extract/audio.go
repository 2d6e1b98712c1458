package extract

import (
	"context"
	"log/slog"
	"time"
)

// AudioExtractor adapts a Transcriber to the TextExtractor contract. The raw
// file bytes are forwarded whole; the transcript comes back as one segment.
type AudioExtractor struct {
	tr  Transcriber
	log *slog.Logger
}

func NewAudioExtractor(tr Transcriber, logger *slog.Logger) *AudioExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &AudioExtractor{tr: tr, log: logger}
}

func (a *AudioExtractor) Extract(ctx context.Context, up Upload) (Result, error) {
	start := time.Now()

	transcript, err := a.tr.Transcribe(ctx, up.Filename, up.Data)
	if err != nil {
		a.log.Error("extract.audio.failed", "filename", up.Filename, "bytes", len(up.Data), "error", err)
		return Result{}, err
	}

	text, err := Normalize([]string{transcript})
	if err != nil {
		a.log.Warn("extract.audio.empty", "filename", up.Filename, "bytes", len(up.Data))
		return Result{}, err
	}

	a.log.Info("extract.audio.ok",
		"filename", up.Filename,
		"bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Text:     text,
		Units:    1,
		Method:   "whisper",
		Duration: time.Since(start),
	}, nil
}
