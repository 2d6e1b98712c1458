package openai

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"github.com/Blockify0/collabnotes-ai/internal/common"
	"github.com/Blockify0/collabnotes-ai/internal/llm"
)

// Summarize implements llm.Summarizer via chat/completions. The system and
// user instructions are fixed; only the source text varies per request.
func (c *Client) Summarize(ctx context.Context, req llm.SummaryRequest) (llm.SummaryResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = c.cfg.Temperature
	}

	c.log.Info("llm.summarize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", temperature,
		"max_tokens", maxTokens,
		"text_len", len(req.SourceText),
	)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: llm.SummarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: llm.BuildSummaryPrompt(req.SourceText)},
		},
	})
	if err != nil {
		c.log.Error("llm.summarize.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SummaryResult{}, mapError(err)
	}

	// Upstream 200 with no content is an application-level failure,
	// never an empty success.
	var summary string
	if len(resp.Choices) > 0 {
		summary = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if summary == "" {
		c.log.Error("llm.summarize.no_content",
			"req_id", rid, "choices", len(resp.Choices),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SummaryResult{}, common.NewAPIError(common.KindUnknown, "no summary generated", nil)
	}

	c.log.Info("llm.summarize.ok",
		"req_id", rid,
		"summary_len", len(summary),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.SummaryResult{
		Summary:  summary,
		Model:    c.cfg.Model,
		Duration: time.Since(start),
	}, nil
}
