package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment overrides. Empty values fall back to XDG defaults.
type Env struct {
	ConfigPath string `env:"CONFIG"`
	DBPath     string `env:"DB"`
	LogFile    string `env:"LOG_FILE"`
	LogLevel   string `env:"LOG_LEVEL"`
}

// ParseEnv reads SPEECHDRILL_* variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Prefix: "SPEECHDRILL_"}); err != nil {
		return Env{}, fmt.Errorf("failed to parse env: %w", err)
	}
	return e, nil
}

// Paths are the resolved file locations.
type Paths struct {
	Config string
	DB     string
	Log    string
}

// ResolvePaths applies env overrides to the XDG defaults.
func (e Env) ResolvePaths() Paths {
	p := Paths{
		Config: DefaultConfigPath(),
		DB:     DefaultDBPath(),
		Log:    DefaultLogPath(),
	}
	if e.ConfigPath != "" {
		p.Config = e.ConfigPath
	}
	if e.DBPath != "" {
		p.DB = e.DBPath
	}
	if e.LogFile != "" {
		p.Log = e.LogFile
	}
	return p
}

// ResolveLogLevel picks the env level, then the file level, then "info".
func (e Env) ResolveLogLevel(file FileConfig) string {
	if e.LogLevel != "" {
		return e.LogLevel
	}
	if file.Log.Level != nil && *file.Log.Level != "" {
		return *file.Log.Level
	}
	return "info"
}
