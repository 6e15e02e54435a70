package config

import (
	"path/filepath"
	"testing"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "abc123")
	t.Setenv("CINEMA_DATA_DIR", "/tmp/cinema-test")

	cfg := Load()
	if cfg.OMDbAPIKey != "abc123" {
		t.Fatalf("OMDbAPIKey = %q", cfg.OMDbAPIKey)
	}
	if cfg.DataDir != "/tmp/cinema-test" {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if got := cfg.BookingsPath(); got != filepath.Join("/tmp/cinema-test", "bookings.json") {
		t.Fatalf("BookingsPath = %q", got)
	}
}

func TestLoadDefaultsDataDir(t *testing.T) {
	t.Setenv("CINEMA_DATA_DIR", "")

	cfg := Load()
	if cfg.DataDir == "" {
		t.Fatal("DataDir not defaulted")
	}
	if filepath.Base(filepath.Dir(cfg.BookingsPath())) != appName && cfg.DataDir != "." {
		t.Fatalf("unexpected default data dir %q", cfg.DataDir)
	}
}
