package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// normalize trims user input, lowercases extensions, and expands paths so the
// rest of the program can rely on canonical values.
func (c *Config) normalize() error {
	c.Copyright.Year = strings.TrimSpace(c.Copyright.Year)
	c.Copyright.Name = strings.TrimSpace(c.Copyright.Name)
	c.Copyright.Email = strings.TrimSpace(c.Copyright.Email)

	exts := make([]string, 0, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Scan.Extensions = exts

	dirs := make([]string, 0, len(c.Scan.IgnoreDirs))
	for _, dir := range c.Scan.IgnoreDirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	c.Scan.IgnoreDirs = dirs

	dataFile, err := expandPath(strings.TrimSpace(c.Data.File))
	if err != nil {
		return fmt.Errorf("expand data file path: %w", err)
	}
	c.Data.File = dataFile

	c.Data.UpdateURL = strings.TrimSpace(c.Data.UpdateURL)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}
