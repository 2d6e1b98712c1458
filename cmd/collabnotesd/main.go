package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Blockify0/collabnotes-ai/gen/ent"
	"github.com/Blockify0/collabnotes-ai/internal/common"
	"github.com/Blockify0/collabnotes-ai/internal/extract"
	llmopenai "github.com/Blockify0/collabnotes-ai/internal/llm/openai"
	repo "github.com/Blockify0/collabnotes-ai/internal/repository"
	"github.com/Blockify0/collabnotes-ai/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Job ledger is optional: Postgres via DB_URL, SQLite via DB_PATH,
	// neither -> no-op ledger, fully stateless service.
	jobs := repo.NewNopIngestJobRepository()
	var entc *ent.Client
	switch {
	case cfg.Database.DSN != "":
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(client, pool, logger)
		entc = client
	case cfg.Database.Path != "":
		client, err := repo.OpenSQLite(cfg.Database.Path, logger)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(client, nil, logger)
		entc = client
	default:
		logger.Info("job ledger disabled (no DB_URL or DB_PATH)")
	}
	if entc != nil {
		if err := repo.Migrate(ctx, entc); err != nil {
			logger.Error("failed to migrate schema", "error", err)
			os.Exit(1)
		}
		jobs = repo.NewIngestJobRepository(entc, logger)
	}

	aiClient := llmopenai.NewClient(llmopenai.Config{
		APIKey:          cfg.LLM.APIKey,
		BaseURL:         cfg.LLM.BaseURL,
		Model:           cfg.LLM.Model,
		TranscribeModel: cfg.LLM.TranscribeModel,
		Temperature:     cfg.LLM.Temperature,
		MaxTokens:       cfg.LLM.MaxTokens,
		Timeout:         cfg.LLM.Timeout,
	}, logger)

	dispatcher := extract.NewDispatcher(
		extract.NewPDFExtractor(extract.PDFConfig{}, logger),
		extract.NewAudioExtractor(aiClient, logger),
		logger,
	)

	handler := server.NewHandler(cfg, dispatcher, aiClient, jobs, logger)
	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: server.NewRouter(handler),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr, "model", cfg.LLM.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
