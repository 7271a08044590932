// Package config loads the dsh user configuration from TOML or YAML files,
// with the format picked by file extension. A missing configuration file is
// not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the dsh user configuration.
type Config struct {
	History    History    `toml:"history" yaml:"history"`
	Completion Completion `toml:"completion" yaml:"completion"`
	Colors     Colors     `toml:"colors" yaml:"colors"`
	Prompt     Prompt     `toml:"prompt" yaml:"prompt"`
	Log        Log        `toml:"log" yaml:"log"`
}

// History configures persisted command history.
type History struct {
	// File is the history file path; empty uses the default location.
	File string `toml:"file" yaml:"file"`
}

// Completion configures path completion.
type Completion struct {
	// MaxCandidates caps the number of completion candidates offered for
	// one keystroke; 0 uses the default.
	MaxCandidates int `toml:"max_candidates" yaml:"max_candidates"`
}

// Colors configures entry colors by node kind. Values are terminal color
// strings (ANSI number or hex); empty keeps the built-in color.
type Colors struct {
	Group     string `toml:"group" yaml:"group"`
	Dataset   string `toml:"dataset" yaml:"dataset"`
	Attribute string `toml:"attribute" yaml:"attribute"`
	Link      string `toml:"link" yaml:"link"`
}

// Prompt configures the prompt rendering.
type Prompt struct {
	// Sigil is the trailing prompt character.
	Sigil string `toml:"sigil" yaml:"sigil"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// DefaultMaxCandidates caps completion candidates when not configured.
const DefaultMaxCandidates = 200

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Completion: Completion{MaxCandidates: DefaultMaxCandidates},
		Prompt:     Prompt{Sigil: "$"},
		Log:        Log{Level: "warn", Format: "text"},
	}
}

// Load reads a configuration file, merging it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Completion.MaxCandidates <= 0 {
		cfg.Completion.MaxCandidates = DefaultMaxCandidates
	}
	if cfg.Prompt.Sigil == "" {
		cfg.Prompt.Sigil = "$"
	}
	return cfg, nil
}

// LoadDefault loads the configuration from the user config directory,
// trying config.toml then config.yaml. Missing files fall back to defaults.
func LoadDefault() Config {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default()
	}
	for _, name := range []string{"config.toml", "config.yaml"} {
		path := filepath.Join(dir, "dsh", name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		if err != nil {
			continue
		}
		return cfg
	}
	return Default()
}

// HistoryFile returns the configured history file path, defaulting to
// history in the user config directory.
func (c Config) HistoryFile() string {
	if c.History.File != "" {
		return c.History.File
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dsh", "history")
}
