package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT", "EMAIL_PROVIDER", "SES_REGION"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Env != "development" || !cfg.IsDev() {
		t.Fatalf("expected development env, got %q", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBPath != "./dev.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.LogFormat != "console" {
		t.Fatalf("expected console log format in dev, got %q", cfg.LogFormat)
	}
	if cfg.EmailProvider != "none" {
		t.Fatalf("expected notifications disabled by default, got %q", cfg.EmailProvider)
	}
}

func TestLoadProductionDefaultsToJSONLogs(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_FORMAT", "")

	cfg := Load()

	if cfg.IsDev() {
		t.Fatal("expected non-dev environment")
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json log format in production, got %q", cfg.LogFormat)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a@example.com, b@example.com ,,c@example.com")
	want := []string{"a@example.com", "b@example.com", "c@example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitList = %v, want %v", got, want)
	}

	if splitList("") != nil {
		t.Fatal("expected nil for empty input")
	}
}
