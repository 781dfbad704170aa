// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for csvrelay with support
// for multiple configuration sources and a well-defined precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. Per-field override
// blocks let deployments rename, reorder, drop, or custom-convert fields
// without touching the input stream.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	relayerrors "github.com/sirseerhq/csvrelay/internal/errors"
)

// DefaultConfig returns the built-in defaults: comma delimiter, no header,
// no field overrides.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Delimiter: ",",
			Header:    false,
		},
	}
}

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .csvrelay.yaml (current directory)
//   - .csvrelay.yml (current directory)
//   - ~/.csvrelay/config.yaml
//   - ~/.csvrelay/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. Returns an error if the specified config file cannot be
// loaded, but succeeds with defaults if no file is found in the standard
// locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".csvrelay.yaml",
			".csvrelay.yml",
			filepath.Join(os.Getenv("HOME"), ".csvrelay", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".csvrelay", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if delim := os.Getenv("CSVRELAY_DELIMITER"); delim != "" {
		cfg.Output.Delimiter = delim
	}
	if header := os.Getenv("CSVRELAY_HEADER"); header != "" {
		cfg.Output.Header = parseBool(header)
	}
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// Validate checks that the configuration contains usable values: the
// delimiter must be exactly one rune and must not collide with the quote
// character or line breaks, and field overrides must name a field.
func (c *Config) Validate() error {
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	for i, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("fields[%d]: override is missing a field name", i)
		}
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune. Escaped tab
// ("\t" or "tab") is accepted for shell convenience.
func (c *Config) DelimiterRune() (rune, error) {
	s := c.Output.Delimiter
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", relayerrors.ErrInvalidDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch r {
	case '"', '\n', '\r':
		return 0, fmt.Errorf("%w: %q", relayerrors.ErrInvalidDelimiter, s)
	}
	return r, nil
}
