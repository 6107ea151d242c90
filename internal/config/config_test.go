package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAltScreen, "")
	t.Setenv(EnvDebugLog, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AltScreen {
		t.Fatalf("AltScreen = true, want false")
	}
	if cfg.DebugLogPath != "" {
		t.Fatalf("DebugLogPath = %q, want empty", cfg.DebugLogPath)
	}
}

func TestLoadHonorsAltScreen(t *testing.T) {
	t.Setenv(EnvAltScreen, " true ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.AltScreen {
		t.Fatalf("AltScreen = false, want true")
	}
}

func TestLoadRejectsInvalidAltScreen(t *testing.T) {
	t.Setenv(EnvAltScreen, "sometimes")

	if _, err := Load(); err == nil {
		t.Fatalf("Load() error = nil, want parse error")
	}
}

func TestLoadExpandsDebugLogTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDebugLog, "~/logs/restoran.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := filepath.Join(home, "logs", "restoran.log")
	if cfg.DebugLogPath != want {
		t.Fatalf("DebugLogPath = %q, want %q", cfg.DebugLogPath, want)
	}
}

func TestExpandPathLeavesAbsolutePaths(t *testing.T) {
	got, err := ExpandPath("/tmp/restoran.log")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != "/tmp/restoran.log" {
		t.Fatalf("ExpandPath() = %q", got)
	}
}
