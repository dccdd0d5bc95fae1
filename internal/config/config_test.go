package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("ANALYTICS_DB", "")
	t.Setenv("SESSION_TTL_HOURS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":7001" {
		t.Errorf("unexpected default addr %q", cfg.Addr)
	}
	if cfg.UploadDir != "uploads" || cfg.AnalyticsDBPath != "analytics.db" {
		t.Errorf("unexpected defaults: %q %q", cfg.UploadDir, cfg.AnalyticsDBPath)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("unexpected default session ttl %v", cfg.SessionTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("OPENAI_API_KEY", "sk-env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("unexpected session ttl %v", cfg.SessionTTL)
	}
	if cfg.OpenAIAPIKey != "sk-env-key" {
		t.Error("expected OPENAI_API_KEY to be picked up")
	}
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	for _, raw := range []string{"zero", "0", "-3"} {
		t.Setenv("SESSION_TTL_HOURS", raw)
		if _, err := Load(); err == nil {
			t.Errorf("expected error for SESSION_TTL_HOURS=%q", raw)
		}
	}
}

func TestFallbackKey(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-a", AnthropicAPIKey: "sk-b"}

	if got := cfg.FallbackKey("openai"); got != "sk-a" {
		t.Errorf("unexpected openai key %q", got)
	}
	if got := cfg.FallbackKey("anthropic"); got != "sk-b" {
		t.Errorf("unexpected anthropic key %q", got)
	}
	if got := cfg.FallbackKey("gemini"); got != "" {
		t.Errorf("expected empty gemini key, got %q", got)
	}
	if got := cfg.FallbackKey("unknown"); got != "" {
		t.Errorf("expected empty key for unknown family, got %q", got)
	}
}
