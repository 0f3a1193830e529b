// Package config loads the optional iamlisp configuration file used by the
// REPL. The file is YAML; a missing file yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds the user-adjustable REPL settings.
type Config struct {
	// Prompt is the string printed before each input line.
	Prompt string `yaml:"prompt"`
	// History is the path of the REPL history file. An empty value
	// disables persistence.
	History string `yaml:"history"`
	// Prelude lists script files evaluated into the root environment when
	// the REPL starts.
	Prelude []string `yaml:"prelude"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Prompt: ">> "}
}

// Load reads a configuration file. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	return cfg, nil
}

// LoadDefault loads the configuration from the user's config directory
// (iamlisp/config.yaml). A missing file is not an error.
func LoadDefault() (Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(dir, "iamlisp", "config.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
