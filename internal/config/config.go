package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Copyright contains the copyright holder details stamped into headers.
// Empty fields are inferred from project metadata or filled with defaults.
type Copyright struct {
	Year  string `toml:"year"`
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Scan controls which files batch operations visit.
type Scan struct {
	Extensions []string `toml:"extensions"`
	IgnoreDirs []string `toml:"ignore_dirs"`
}

// Data locates the SPDX license data file and its remote update source.
type Data struct {
	File          string `toml:"file"`
	UpdateURL     string `toml:"update_url"`
	UpdateTimeout int    `toml:"update_timeout"`
}

// Format contains text formatting settings for extracted license files.
type Format struct {
	Width int `toml:"width"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Show contains settings for the temporary license preview.
type Show struct {
	CleanupDelaySeconds int `toml:"cleanup_delay_seconds"`
}

// Config encapsulates all configuration values for spdxer.
//
// Configuration sections by subsystem:
//   - Copyright: holder name, email, and year used when rendering headers
//   - Scan: file extensions to process and directory names to skip
//   - Data: license data file location and remote update settings
//   - Format: wrap width for extracted license text
//   - Logging: log format and level
//   - Show: preview temp-file cleanup delay
type Config struct {
	Copyright Copyright `toml:"copyright"`
	Scan      Scan      `toml:"scan"`
	Data      Data      `toml:"data"`
	Format    Format    `toml:"format"`
	Logging   Logging   `toml:"logging"`
	Show      Show      `toml:"show"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/spdxer/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return value
// is the resolved config path; the third reports whether it existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("spdxer.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// SampleConfig returns the embedded sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

// ExpandPath expands a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}
