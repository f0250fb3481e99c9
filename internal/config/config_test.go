package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Practice.Seconds != nil {
		t.Fatalf("expected empty config")
	}
	if len(cfg.Sounds()) != len(DefaultSounds) {
		t.Fatalf("expected default sounds")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[practice]
seconds = 45

[game]
seconds = 90

[articulation]
sounds = ["La", "Sha"]
words-file = "/tmp/words.txt"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Practice.Seconds == nil || *cfg.Practice.Seconds != 45 {
		t.Fatalf("unexpected practice seconds: %v", cfg.Practice.Seconds)
	}
	if cfg.Game.Seconds == nil || *cfg.Game.Seconds != 90 {
		t.Fatalf("unexpected game seconds: %v", cfg.Game.Seconds)
	}
	if sounds := cfg.Sounds(); len(sounds) != 2 || sounds[1] != "Sha" {
		t.Fatalf("unexpected sounds: %v", sounds)
	}
	if cfg.Articulation.WordsFile == nil || *cfg.Articulation.WordsFile != "/tmp/words.txt" {
		t.Fatalf("unexpected words file")
	}
	if lvl := (Env{}).ResolveLogLevel(cfg); lvl != "debug" {
		t.Fatalf("expected debug level, got %q", lvl)
	}
	if lvl := (Env{LogLevel: "warn"}).ResolveLogLevel(cfg); lvl != "warn" {
		t.Fatalf("expected env to win, got %q", lvl)
	}
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("SPEECHDRILL_DB", "/custom/roster.db")
	t.Setenv("SPEECHDRILL_LOG_LEVEL", "error")
	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	paths := e.ResolvePaths()
	if paths.DB != "/custom/roster.db" {
		t.Fatalf("expected db override, got %q", paths.DB)
	}
	if e.LogLevel != "error" {
		t.Fatalf("expected log level override, got %q", e.LogLevel)
	}

	t.Setenv("SPEECHDRILL_DB", "")
	e, err = ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if got := e.ResolvePaths().DB; got != filepath.Join("/data", "speechdrill", "speechdrill.db") {
		t.Fatalf("expected xdg default, got %q", got)
	}
}
