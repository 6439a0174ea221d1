package config

import (
	"testing"
	"time"
)

func TestLoadDoesNotInjectWeakAuthDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	cfg := Load()
	if cfg.AuthSecret != "" {
		t.Fatalf("expected empty AUTH_SECRET when unset, got %q", cfg.AuthSecret)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ALLOWED_ORIGIN", "API_BASE_URL", "API_TIMEOUT_SECONDS", "CACHE_TTL_SECONDS", "DATA_SOURCE", "DATABASE_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Address() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Address())
	}
	if cfg.AllowedOrigin != "http://localhost:5173" {
		t.Fatalf("unexpected allowed origin %q", cfg.AllowedOrigin)
	}
	if cfg.APITimeout != 30*time.Second || cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected durations: timeout=%s ttl=%s", cfg.APITimeout, cfg.CacheTTL)
	}
	if cfg.DataSource != SourceRemote {
		t.Fatalf("expected remote source by default, got %q", cfg.DataSource)
	}
	if cfg.LogLevel != "INFO" {
		t.Fatalf("expected INFO, got %q", cfg.LogLevel)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("CACHE_TTL_SECONDS", "0")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_SOURCE", "")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 5*time.Second || cfg.CacheTTL != 0 {
		t.Fatalf("unexpected durations: timeout=%s ttl=%s", cfg.APITimeout, cfg.CacheTTL)
	}
	if cfg.RedisDB != 3 || cfg.LogLevel != "DEBUG" {
		t.Fatalf("unexpected redis db %d or level %q", cfg.RedisDB, cfg.LogLevel)
	}
}

func TestDataSourceDerivation(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/precificapro")

	if got := Load().DataSource; got != SourcePostgres {
		t.Fatalf("expected postgres when DATABASE_URL is set, got %q", got)
	}

	t.Setenv("DATA_SOURCE", " Memory ")
	if got := Load().DataSource; got != SourceMemory {
		t.Fatalf("expected explicit source to win, got %q", got)
	}
}
