package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOURCE_BASE_URL", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.SourceBaseURL != "" {
		t.Errorf("expected empty source base URL, got %q", cfg.SourceBaseURL)
	}

	if cfg.OutputDir != defaultOutputDir {
		t.Errorf("expected default output dir %q, got %q", defaultOutputDir, cfg.OutputDir)
	}

	if cfg.ServerPort != defaultServerPort {
		t.Errorf("expected default server port %d, got %d", defaultServerPort, cfg.ServerPort)
	}

	if cfg.LogLevel != defaultLogLevel {
		t.Errorf("expected default log level %q, got %q", defaultLogLevel, cfg.LogLevel)
	}

	if cfg.Environment != defaultEnvironment {
		t.Errorf("expected default environment %q, got %q", defaultEnvironment, cfg.Environment)
	}

	if cfg.ShutdownGrace != defaultShutdownGrace {
		t.Errorf("expected shutdown grace %s, got %s", defaultShutdownGrace, cfg.ShutdownGrace)
	}

	if cfg.SentryDSN != "" {
		t.Errorf("expected empty Sentry DSN, got %q", cfg.SentryDSN)
	}
}

func TestLoadWithExplicitValues(t *testing.T) {
	t.Setenv("SOURCE_BASE_URL", "http://localhost:9090/posts")
	t.Setenv("OUTPUT_DIR", "/tmp/site-out")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example/1")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.SourceBaseURL != "http://localhost:9090/posts" {
		t.Errorf("unexpected source base URL %q", cfg.SourceBaseURL)
	}

	if cfg.OutputDir != "/tmp/site-out" {
		t.Errorf("unexpected output dir %q", cfg.OutputDir)
	}

	if cfg.ServerPort != 3000 {
		t.Errorf("unexpected server port %d", cfg.ServerPort)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("unexpected log level %q", cfg.LogLevel)
	}

	if cfg.SentryDSN != "https://key@sentry.example/1" {
		t.Errorf("unexpected Sentry DSN %q", cfg.SentryDSN)
	}

	if cfg.Environment != "production" {
		t.Errorf("unexpected environment %q", cfg.Environment)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid SERVER_PORT, got nil")
	}
}
