package llm

import (
	"context"
	"time"
)

// Summarizer is Stage 2: normalized text -> short summary.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (SummaryResult, error)
}

type SummaryRequest struct {
	SourceText  string
	MaxTokens   int     // bounds output length to keep summaries short and cost-bounded
	Temperature float32 // fixed per deployment, not user-configurable
}

type SummaryResult struct {
	Summary  string
	Model    string
	Duration time.Duration
}
