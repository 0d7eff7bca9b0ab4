// Package config loads the CLI's optional .ledgerparse.yaml, grounded on
// the teacher pack's yaml.v3-based config loader
// (vippsas-sqlcode/cli/cmd/config.go): read the file if present, unmarshal
// into a small typed struct, return zero-value defaults if it's absent.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file the CLI looks for in the working directory.
const FileName = ".ledgerparse.yaml"

// Config holds the CLI's optional settings. No command-line flag overrides
// these fields; the values are used exactly as loaded.
type Config struct {
	// PreserveTrailingNewline is loaded from the file, but no command reads
	// it: `fmt` always prints the reconstructed text unchanged.
	PreserveTrailingNewline bool `yaml:"preserveTrailingNewline"`

	// FailOn lists diagnostic kind names (e.g. "UNEXPECTED_TOKEN") that
	// make `lint` exit non-zero. Empty means "any diagnostic fails."
	FailOn []string `yaml:"failOn"`

	// Color is loaded from the file, but no command reads it: diagnostic
	// output is always printed without ANSI color.
	Color bool `yaml:"color"`
}

// Load reads path if it exists, or FileName in the working directory if
// path is empty. A missing file is not an error: Load returns the zero
// Config.
func Load(path string) (Config, error) {
	if path == "" {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ShouldFailOn reports whether a diagnostic kind name should cause `lint`
// to exit non-zero under this configuration.
func (c Config) ShouldFailOn(kindName string) bool {
	if len(c.FailOn) == 0 {
		return true
	}
	for _, k := range c.FailOn {
		if k == kindName {
			return true
		}
	}
	return false
}

// AbsFileName returns path's absolute form for display purposes, falling
// back to path itself if it cannot be resolved.
func AbsFileName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
