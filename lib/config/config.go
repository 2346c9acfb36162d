// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML defaults loading for the hardback CLI.
//
// Configuration is loaded from a single file specified by either the
// HARDBACK_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There are no fallbacks, no ~/.config
// discovery, and no automatic file search: configuration must be
// deterministic and auditable, with no hidden overrides. Command-line
// flags override config values; config values override the built-in
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/asaddi/hardback/lib/chunk"
	"github.com/asaddi/hardback/lib/digest"
	"github.com/asaddi/hardback/lib/filter"
)

// Config holds the CLI's default settings.
type Config struct {
	// Width is the number of payload symbols per armor line. Must be
	// a positive multiple of 8; each line carries Width*5/8 raw
	// bytes.
	Width int `yaml:"width"`

	// Digest selects the trailer digest algorithm: sha256 (default),
	// blake3, or blake2b.
	Digest string `yaml:"digest"`

	// Filter selects the pre-armor compression filter: none
	// (default), lz4, or zstd.
	Filter string `yaml:"filter"`

	// Verify makes decode check the declared length and digest
	// trailers against the decoded output.
	Verify bool `yaml:"verify"`
}

// Default returns the built-in defaults: 64-symbol lines (40 raw
// bytes per line), SHA-256 trailer digest, no filter, no trailer
// verification.
func Default() Config {
	return Config{
		Width:  64,
		Digest: "sha256",
		Filter: "none",
	}
}

// Load returns the configuration from the file named by the
// HARDBACK_CONFIG environment variable, or [Default] when the
// variable is unset.
func Load() (Config, error) {
	path := os.Getenv("HARDBACK_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the configuration file at path. Fields
// absent from the file keep their [Default] values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	configuration := Default()
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := configuration.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return configuration, nil
}

// Validate checks every field against its domain so bad settings
// surface at load time rather than halfway through an encode.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Width%chunk.EncodedSymbols != 0 {
		return fmt.Errorf("width %d is not a positive multiple of %d", c.Width, chunk.EncodedSymbols)
	}
	if _, err := digest.Parse(c.Digest); err != nil {
		return err
	}
	if _, err := filter.Parse(c.Filter); err != nil {
		return err
	}
	return nil
}
