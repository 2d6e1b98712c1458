package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Blockify0/collabnotes-ai/internal/common"
	"github.com/Blockify0/collabnotes-ai/internal/llm"
	llmopenai "github.com/Blockify0/collabnotes-ai/internal/llm/openai"
)

// Summarizes a text file (or stdin) through the configured completion
// upstream, for poking at the summarizer without the server.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	var (
		data []byte
		err  error
	)
	switch len(os.Args) {
	case 1:
		data, err = io.ReadAll(os.Stdin)
	case 2:
		data, err = os.ReadFile(os.Args[1])
	default:
		logger.Error("usage", "cmd", "summarize [path-to-text-file]")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("reading input", "error", err)
		os.Exit(1)
	}
	if len(data) == 0 {
		logger.Error("empty input")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	client := llmopenai.NewClient(llmopenai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout)
	defer cancel()

	res, err := client.Summarize(ctx, llm.SummaryRequest{SourceText: string(data)})
	if err != nil {
		logger.Error("summarize failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(res.Summary)
}
