// Command server runs the screenshot-to-code backend: an HTTP API that
// streams generated code from OpenAI, Anthropic, and Gemini models, with
// screenshot uploads, session tracking, and analytics exports.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kwen-qodo/screenshot-to-code/internal/analytics"
	"github.com/kwen-qodo/screenshot-to-code/internal/config"
	"github.com/kwen-qodo/screenshot-to-code/internal/httpapi"
	"github.com/kwen-qodo/screenshot-to-code/internal/session"
	"github.com/kwen-qodo/screenshot-to-code/internal/upload"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai/anthropic"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai/gemini"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai/openai"
)

const maintenanceInterval = time.Hour

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	registry := ai.NewRegistry()
	if cfg.ModelsConfigPath != "" {
		if err := registry.LoadOverlay(cfg.ModelsConfigPath); err != nil {
			return fmt.Errorf("load model catalog overlay: %w", err)
		}
		slog.Info("applied model catalog overlay", "path", cfg.ModelsConfigPath)
	}

	dispatcher := ai.NewDispatcher(registry)
	dispatcher.Register(ai.FamilyOpenAI, openai.New())
	dispatcher.Register(ai.FamilyAnthropic, anthropic.New())
	dispatcher.Register(ai.FamilyGemini, gemini.New())

	sessions, err := buildSessionStore(ctx, cfg)
	if err != nil {
		return err
	}

	events, err := analytics.Open(cfg.AnalyticsDBPath)
	if err != nil {
		return fmt.Errorf("open analytics: %w", err)
	}
	defer events.Close()

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("open upload store: %w", err)
	}
	go runUploadCleanup(ctx, uploads)

	server, err := httpapi.New(cfg, registry, dispatcher, sessions, events, uploads)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}
	return server.Run(ctx)
}

// buildSessionStore picks Redis when configured, otherwise an in-memory store
// with a background sweep of expired sessions.
func buildSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	if cfg.RedisURL != "" {
		store, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			return nil, fmt.Errorf("build redis session store: %w", err)
		}
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis unreachable: %w", err)
		}
		slog.Info("using redis session store")
		return store, nil
	}

	store := session.NewMemoryStore(cfg.SessionTTL)
	go func() {
		ticker := time.NewTicker(maintenanceInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := store.Sweep(); removed > 0 {
					slog.Debug("swept expired sessions", "count", removed)
				}
			}
		}
	}()
	slog.Info("using in-memory session store")
	return store, nil
}

func runUploadCleanup(ctx context.Context, uploads *upload.Store) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := uploads.Cleanup()
			if err != nil {
				slog.Warn("upload cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Debug("removed stale uploads", "count", removed)
			}
		}
	}
}
