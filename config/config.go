/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for theme conversion.
package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the themeport configuration.
type Config struct {
	// Files specifies theme files to convert (paths or globs).
	Files []FileSpec `yaml:"files" json:"files" validate:"dive"`

	// Skip lists file base names that are never converted.
	Skip []string `yaml:"skip" json:"skip"`

	// OutDir receives converted files under their original base names.
	OutDir string `yaml:"outDir" json:"outDir" validate:"excluded_with=InPlace"`

	// InPlace overwrites each input file with its converted document.
	InPlace bool `yaml:"inPlace" json:"inPlace"`

	// Indent is the number of spaces per JSON indentation level; 0 selects
	// the default of 2.
	Indent int `yaml:"indent" json:"indent" validate:"min=0,max=8"`

	// Jobs is the number of files converted concurrently.
	Jobs int `yaml:"jobs" json:"jobs" validate:"min=0,max=64"`

	// Force converts files that are already in the target schema.
	Force bool `yaml:"force" json:"force"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"logLevel" json:"logLevel" validate:"omitempty,oneof=debug info warn error"`
}

// FileSpec represents a theme file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path" validate:"required"`

	// Output writes this file's converted document to a companion path
	// instead of following OutDir/InPlace. Ignored for globs.
	Output string `yaml:"output" json:"output"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Indent:   2,
		Jobs:     1,
		LogLevel: "info",
	}
}

// IsSkipped reports whether the base name of path is on the skip list.
func (c *Config) IsSkipped(path string) bool {
	base := filepath.Base(path)
	for _, name := range c.Skip {
		if name == base {
			return true
		}
	}
	return false
}

// OutputFor returns the companion output path configured for path, or "".
// Relative spec paths and outputs are resolved against rootDir.
func (c *Config) OutputFor(rootDir, path string) string {
	for _, spec := range c.Files {
		if spec.Output == "" {
			continue
		}
		if resolve(rootDir, spec.Path) == filepath.Clean(path) {
			return resolve(rootDir, spec.Output)
		}
	}
	return ""
}

func resolve(rootDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(rootDir, path)
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}

// SetDefaults registers the config values as viper defaults, so command-line
// flags and THEMEPORT_* environment variables take precedence over the file.
func (c *Config) SetDefaults(v *viper.Viper) {
	v.SetDefault("skip", c.Skip)
	v.SetDefault("out-dir", c.OutDir)
	v.SetDefault("in-place", c.InPlace)
	v.SetDefault("indent", c.Indent)
	v.SetDefault("jobs", c.Jobs)
	v.SetDefault("force", c.Force)
	v.SetDefault("log-level", c.LogLevel)
}
