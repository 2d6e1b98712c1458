package openai

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"github.com/Blockify0/collabnotes-ai/internal/common"
)

// Transcribe implements extract.Transcriber via audio/transcriptions. The
// whole file goes up in one request; Whisper handles any internal chunking.
func (c *Client) Transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.transcribe.start",
		"req_id", rid,
		"model", c.cfg.TranscribeModel,
		"filename", filename,
		"bytes", len(data),
	)

	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.cfg.TranscribeModel,
		FilePath: filename, // name hint only; bytes come from Reader
		Reader:   bytes.NewReader(data),
	})
	if err != nil {
		c.log.Error("llm.transcribe.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", mapError(err)
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		c.log.Error("llm.transcribe.no_content",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAPIError(common.KindUnknown, "no transcription generated", nil)
	}

	c.log.Info("llm.transcribe.ok",
		"req_id", rid,
		"transcript_len", len(transcript),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return transcript, nil
}
