package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("model = %q, want default", cfg.GeminiModel)
	}
	if cfg.GenerationTimeout != 30*time.Second {
		t.Fatalf("timeout = %v, want 30s", cfg.GenerationTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ARC_DB_PATH", "/tmp/arc-test.db")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("ARC_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("ARC_GENERATION_TIMEOUT", "5s")
	t.Setenv("ARC_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/arc-test.db" || cfg.GeminiAPIKey != "k" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Fatalf("model = %q", cfg.GeminiModel)
	}
	if cfg.GenerationTimeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.GenerationTimeout)
	}
	if !cfg.Debug {
		t.Fatalf("debug not parsed")
	}
}
