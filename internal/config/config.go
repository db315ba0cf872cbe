// Package config loads snakedoc CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nshkrdotcom/snakedoc/internal/fileutil"
	"github.com/nshkrdotcom/snakedoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for docstring conversion.
type Config struct {
	Style      string            `yaml:"style"`      // Forced dialect (empty = auto-detect)
	Output     OutputConfig      `yaml:"output"`     // Output options
	Types      map[string]string `yaml:"types"`      // Type table overlay
	Exceptions map[string]string `yaml:"exceptions"` // Exception table overlay
}

// OutputConfig defines output options.
type OutputConfig struct {
	HTML bool `yaml:"html"` // Also write an HTML preview per input
}

// DefaultConfig returns a neutral configuration: auto-detected style,
// Markdown output only, no table overlays.
func DefaultConfig() *Config {
	return &Config{}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// SearchPaths returns the candidate file locations for a config name, in
// the order Load tries them: current directory then <user config dir>/snakedoc/,
// with extensions .yaml then .yml at each location.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "snakedoc", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in the SearchPaths
// locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %v", ErrConfigNotFound, tried)
}
