package config

import (
	"testing"
	"time"
)

// TestLoadDefaults checks the fallbacks used when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("DRAFT_TTL_MINUTES", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("default port = %q", cfg.Port)
	}
	if cfg.MongoDB != "tourmuse" {
		t.Fatalf("default mongo db = %q", cfg.MongoDB)
	}
	if cfg.DraftTTL != 30*time.Minute {
		t.Fatalf("default draft TTL = %v", cfg.DraftTTL)
	}
}

// TestLoadOverrides checks that set variables win over the fallbacks.
func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("DRAFT_TTL_MINUTES", "5")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.AIProvider != "gemini" {
		t.Fatalf("provider = %q", cfg.AIProvider)
	}
	if cfg.DraftTTL != 5*time.Minute {
		t.Fatalf("draft TTL = %v", cfg.DraftTTL)
	}
}

// TestDurationEnvBadValue checks that garbage falls back rather than failing.
func TestDurationEnvBadValue(t *testing.T) {
	t.Setenv("DRAFT_TTL_MINUTES", "soon")
	if got := getDurationEnv("DRAFT_TTL_MINUTES", 30); got != 30 {
		t.Fatalf("getDurationEnv() = %v, want 30", got)
	}
	t.Setenv("DRAFT_TTL_MINUTES", "-2")
	if got := getDurationEnv("DRAFT_TTL_MINUTES", 30); got != 30 {
		t.Fatalf("negative minutes accepted: %v", got)
	}
}
