// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultSounds are the articulation sounds offered when the config sets none.
var DefaultSounds = []string{"La", "Ra", "Sa", "Cha", "Tha", "Ka", "Ga", "Ta", "Da", "Na", "Ma", "Pa", "Ba"}

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice     DrillConfig        `toml:"practice"`
	Game         DrillConfig        `toml:"game"`
	Articulation ArticulationConfig `toml:"articulation"`
	Log          LogConfig          `toml:"log"`
}

// DrillConfig maps drill timing settings. Drills apply their own floor.
type DrillConfig struct {
	Seconds *int `toml:"seconds"`
}

// ArticulationConfig maps articulation sound settings.
type ArticulationConfig struct {
	Sounds    []string `toml:"sounds"`
	WordsFile *string  `toml:"words-file"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Sounds returns the configured sounds, or DefaultSounds.
func (c FileConfig) Sounds() []string {
	if len(c.Articulation.Sounds) == 0 {
		return append([]string(nil), DefaultSounds...)
	}
	return append([]string(nil), c.Articulation.Sounds...)
}
