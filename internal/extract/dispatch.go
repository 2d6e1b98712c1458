package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Blockify0/collabnotes-ai/constants"
	"github.com/Blockify0/collabnotes-ai/internal/common"
)

// Dispatcher routes an upload to the extractor for its declared media kind.
type Dispatcher struct {
	pdf   TextExtractor
	audio TextExtractor
	log   *slog.Logger
}

func NewDispatcher(pdf, audio TextExtractor, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{pdf: pdf, audio: audio, log: logger}
}

func (d *Dispatcher) Extract(ctx context.Context, up Upload) (Result, error) {
	kind := constants.DetectMedia(up.MediaType)
	d.log.Info("extract.dispatch",
		"filename", up.Filename,
		"media_type", up.MediaType,
		"kind", string(kind),
		"bytes", len(up.Data),
	)

	switch kind {
	case constants.MediaPDF:
		return d.pdf.Extract(ctx, up)
	case constants.MediaAudio:
		return d.audio.Extract(ctx, up)
	default:
		return Result{}, common.UnsupportedMedia(fmt.Sprintf("unsupported media type %q", up.MediaType))
	}
}
