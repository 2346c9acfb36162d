// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hardback.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	configuration := Default()
	if err := configuration.Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
	if configuration.Width != 64 {
		t.Errorf("default width = %d, want 64", configuration.Width)
	}
	if configuration.Digest != "sha256" {
		t.Errorf("default digest = %q, want sha256", configuration.Digest)
	}
	if configuration.Filter != "none" {
		t.Errorf("default filter = %q, want none", configuration.Filter)
	}
	if configuration.Verify {
		t.Error("verify should default to false")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "width: 80\ndigest: blake3\nfilter: zstd\nverify: true\n")

	configuration, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := Config{Width: 80, Digest: "blake3", Filter: "zstd", Verify: true}
	if configuration != want {
		t.Errorf("LoadFile = %+v, want %+v", configuration, want)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "width: 96\n")

	configuration, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if configuration.Width != 96 {
		t.Errorf("width = %d, want 96", configuration.Width)
	}
	if configuration.Digest != "sha256" || configuration.Filter != "none" {
		t.Errorf("absent fields lost their defaults: %+v", configuration)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"width not multiple of 8", "width: 60\n"},
		{"width zero", "width: 0\n"},
		{"width negative", "width: -8\n"},
		{"unknown digest", "digest: md5\n"},
		{"unknown filter", "filter: gzip\n"},
		{"not yaml", "width: [\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeConfig(t, test.content)
			if _, err := LoadFile(path); err == nil {
				t.Errorf("LoadFile(%q) should fail", test.content)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := writeConfig(t, "width: 72\n")
	t.Setenv("HARDBACK_CONFIG", path)

	configuration, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if configuration.Width != 72 {
		t.Errorf("width = %d, want 72", configuration.Width)
	}
}

func TestLoadWithoutEnvironment(t *testing.T) {
	t.Setenv("HARDBACK_CONFIG", "")

	configuration, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if configuration != Default() {
		t.Errorf("Load without HARDBACK_CONFIG = %+v, want defaults", configuration)
	}
}
