package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeSquared-Agency/wisdom/internal/anthropic"
	"github.com/MikeSquared-Agency/wisdom/internal/api"
	"github.com/MikeSquared-Agency/wisdom/internal/config"
	"github.com/MikeSquared-Agency/wisdom/internal/guard"
	"github.com/MikeSquared-Agency/wisdom/internal/hermes"
	"github.com/MikeSquared-Agency/wisdom/internal/llm"
	"github.com/MikeSquared-Agency/wisdom/internal/openai"
	"github.com/MikeSquared-Agency/wisdom/internal/store"
	"github.com/MikeSquared-Agency/wisdom/internal/wisdom"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("wisdom starting", "port", cfg.Port, "provider", cfg.LLMProvider)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// LLM provider
	var invoker llm.Invoker
	switch cfg.LLMProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			slog.Error("ANTHROPIC_API_KEY is required")
			os.Exit(1)
		}
		invoker = anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		slog.Info("anthropic client ready", "model", cfg.AnthropicModel)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			slog.Error("OPENAI_API_KEY is required")
			os.Exit(1)
		}
		invoker = openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		slog.Info("openai client ready", "model", cfg.OpenAIModel, "base_url", cfg.OpenAIBaseURL)
	default:
		slog.Error("unknown LLM_PROVIDER", "provider", cfg.LLMProvider)
		os.Exit(1)
	}

	gen := wisdom.New(guard.New(invoker, slog.Default()), cfg.LanguageRetries, slog.Default())
	deps := api.Deps{Reflector: gen, Logger: slog.Default()}

	// Database (optional, reflections are served but not stored without it)
	if cfg.DatabaseURL != "" {
		db, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
		deps.Store = db
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set, running without persistence")
	}

	// NATS/Hermes (optional)
	if cfg.NatsURL != "" {
		hermesClient, err := hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer hermesClient.Close()
		deps.Events = hermesClient
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, deps)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	slog.Info("wisdom ready", "port", cfg.Port, "language_retries", cfg.LanguageRetries)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	slog.Info("shutting down")
	cancel()
	slog.Info("wisdom stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
