package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Config for the OpenAI client.
type Config struct {
	APIKey          string  // if empty, falls back to env OPENAI_API_KEY
	BaseURL         string  // default https://api.openai.com/v1
	Model           string  // completion model, e.g. "gpt-3.5-turbo"
	TranscribeModel string  // speech-to-text model, e.g. "whisper-1"
	Temperature     float32 // 0..2
	MaxTokens       int     // summary output bound
	Timeout         time.Duration
}

type Client struct {
	cfg Config
	api *openai.Client
	log *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT3Dot5Turbo
	}
	if cfg.TranscribeModel == "" {
		cfg.TranscribeModel = openai.Whisper1
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 150
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		cfg: cfg,
		api: openai.NewClientWithConfig(cc),
		log: logger,
	}
}
