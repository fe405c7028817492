// Package config loads the optional tool configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFile = ".oxur-ast.yaml"

// Config holds tool-level settings. Flags override file values.
type Config struct {
	// Indent is the printer indent width in spaces.
	Indent int `yaml:"indent"`
	// Color enables colored diagnostics.
	Color bool `yaml:"color"`
	// RequireSchema is a semver constraint the schema version must
	// satisfy before building, e.g. ">= 0.1.0, < 1.0.0".
	RequireSchema string `yaml:"require-schema"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Indent: 2,
		Color:  true,
	}
}

// Load reads a YAML config file on top of the defaults. A missing file
// at the default location is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultFile {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Indent <= 0 {
		return nil, fmt.Errorf("config %s: indent must be positive, got %d", path, cfg.Indent)
	}
	return cfg, nil
}
