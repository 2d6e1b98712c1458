package extract

import (
	"context"
	"time"
)

// Upload is a single request-scoped file received at intake.
type Upload struct {
	Filename  string
	MediaType string // declared MIME type; dispatch branches on this
	Data      []byte
}

// TextExtractor is Stage 1: uploaded bytes -> text.
type TextExtractor interface {
	Extract(ctx context.Context, up Upload) (Result, error)
}

type Result struct {
	Text     string
	Units    int    // pages for PDF, segments for audio
	Method   string // "pdf-text" | "whisper"
	Duration time.Duration
	Warnings []string
}

// Transcriber converts a whole audio file into a single transcript string.
// Chunking, if any, is the upstream capability's responsibility.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, data []byte) (string, error)
}
