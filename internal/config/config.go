// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":7001"
	defaultUploadDir  = "uploads"
	defaultDBPath     = "analytics.db"
	defaultSessionTTL = 24 * time.Hour
)

// Config holds every runtime setting of the service. Provider API keys act as
// server-side fallbacks for requests that do not carry their own key; they are
// held in memory only and must never be logged.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// OpenAIAPIKey, AnthropicAPIKey, GeminiAPIKey are fallback credentials
	// used when a generation request carries no key of its own.
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string

	// ModelsConfigPath optionally points at a YAML catalog overlay.
	ModelsConfigPath string

	// UploadDir is the directory for user-uploaded screenshots.
	UploadDir string

	// AnalyticsDBPath is the SQLite file for the event log.
	AnalyticsDBPath string

	// RedisURL enables the Redis session backend when non-empty; otherwise
	// sessions live in memory.
	RedisURL string

	// SessionTTL is how long an idle session survives.
	SessionTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; a missing .env is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		slog.Debug("no .env file found, using environment only")
	}

	cfg := &Config{
		Addr:             envOr("ADDR", defaultAddr),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		ModelsConfigPath: os.Getenv("MODELS_CONFIG"),
		UploadDir:        envOr("UPLOAD_DIR", defaultUploadDir),
		AnalyticsDBPath:  envOr("ANALYTICS_DB", defaultDBPath),
		RedisURL:         os.Getenv("REDIS_URL"),
		SessionTTL:       defaultSessionTTL,
	}

	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL_HOURS %q", raw)
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}

	return cfg, nil
}

// FallbackKey returns the server-side credential for a provider family name,
// or empty when none is configured.
func (c *Config) FallbackKey(family string) string {
	switch family {
	case "openai":
		return c.OpenAIAPIKey
	case "anthropic":
		return c.AnthropicAPIKey
	case "gemini":
		return c.GeminiAPIKey
	}
	return ""
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
