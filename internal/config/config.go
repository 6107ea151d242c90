package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// EnvAltScreen toggles the full-screen TUI buffer.
	EnvAltScreen = "RESTORAN_ALT_SCREEN"
	// EnvDebugLog names a file that receives debug logs while the TUI runs.
	EnvDebugLog = "RESTORAN_DEBUG_LOG"
)

// Config carries runtime switches for the TUI.
type Config struct {
	AltScreen    bool
	DebugLogPath string
}

// Load reads Config from the environment. Unset or blank variables keep their defaults.
func Load() (Config, error) {
	var cfg Config

	if raw, ok := lookup(EnvAltScreen); ok {
		alt, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvAltScreen, err)
		}
		cfg.AltScreen = alt
	}

	if raw, ok := lookup(EnvDebugLog); ok {
		path, err := ExpandPath(raw)
		if err != nil {
			return Config{}, fmt.Errorf("resolve %s: %w", EnvDebugLog, err)
		}
		cfg.DebugLogPath = path
	}

	return cfg, nil
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}

func lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
