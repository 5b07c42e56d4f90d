package config_test

import (
	"testing"
	"time"

	"github.com/gardianmky/listings/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// Clear any values the host environment might carry.
	for _, key := range []string{
		"GARDIAN_ADDR", "GARDIAN_DB", "GARDIAN_AUTH_TOKEN", "GARDIAN_PAGE_SIZE",
		"RENET_BASE_URL", "RENET_API_TOKEN",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "GARDIAN_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DBPath != "gardian.db" {
		t.Errorf("DBPath = %q, want gardian.db", cfg.DBPath)
	}
	if cfg.PageSize != 12 {
		t.Errorf("PageSize = %d, want 12", cfg.PageSize)
	}
	if cfg.RenetBaseURL != "https://api.renet.app/Website" {
		t.Errorf("RenetBaseURL = %q", cfg.RenetBaseURL)
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Errorf("CacheTTL = %v, want 15m", cfg.CacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GARDIAN_ADDR", ":9999")
	t.Setenv("GARDIAN_PAGE_SIZE", "9")
	t.Setenv("GARDIAN_CACHE_TTL", "1h")
	t.Setenv("RENET_API_TOKEN", "tok-abc")

	cfg := config.Load()

	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.PageSize != 9 {
		t.Errorf("PageSize = %d, want 9", cfg.PageSize)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.RenetToken != "tok-abc" {
		t.Errorf("RenetToken = %q", cfg.RenetToken)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("GARDIAN_PAGE_SIZE", "dozen")
	t.Setenv("GARDIAN_CACHE_TTL", "soon")

	cfg := config.Load()

	if cfg.PageSize != 12 {
		t.Errorf("PageSize = %d, want default 12", cfg.PageSize)
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Errorf("CacheTTL = %v, want default 15m", cfg.CacheTTL)
	}
}
