package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath == "" {
		t.Fatalf("db path not defaulted")
	}
	if cfg.NotifyInterval != 15*time.Minute {
		t.Fatalf("interval %s, want 15m", cfg.NotifyInterval)
	}
	if cfg.Verbose {
		t.Fatalf("verbose on by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LIFEBOARD_DB", "/tmp/custom.db")
	t.Setenv("LIFEBOARD_NOTIFY_INTERVAL", "1h")
	t.Setenv("LIFEBOARD_VERBOSE", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("db path %q", cfg.DBPath)
	}
	if cfg.NotifyInterval != time.Hour {
		t.Fatalf("interval %s", cfg.NotifyInterval)
	}
	if !cfg.Verbose {
		t.Fatalf("verbose not picked up")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeboard.yaml")
	body := "db_path: /tmp/from-yaml.db\nnotify_interval: 30m\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/from-yaml.db" {
		t.Fatalf("db path %q", cfg.DBPath)
	}
	if cfg.NotifyInterval != 30*time.Minute {
		t.Fatalf("interval %s", cfg.NotifyInterval)
	}
}

func TestMissingFileFallsBackToEnv(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath == "" {
		t.Fatalf("db path not defaulted")
	}
}
