package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateFormat(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Show.CleanupDelaySeconds < 0 {
		return errors.New("show.cleanup_delay_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateScan() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must list at least one file extension")
	}
	for _, ext := range c.Scan.Extensions {
		if ext == "." {
			return errors.New("scan.extensions entries must name an extension after the dot")
		}
		if strings.ContainsAny(ext, "/\\") {
			return fmt.Errorf("scan.extensions entry %q must not contain path separators", ext)
		}
	}
	return nil
}

func (c *Config) validateData() error {
	if c.Data.File == "" {
		return errors.New("data.file must be set")
	}
	if c.Data.UpdateURL == "" {
		return errors.New("data.update_url must be set")
	}
	if !strings.HasPrefix(c.Data.UpdateURL, "http://") && !strings.HasPrefix(c.Data.UpdateURL, "https://") {
		return fmt.Errorf("data.update_url must be an http(s) URL, got %q", c.Data.UpdateURL)
	}
	if c.Data.UpdateTimeout <= 0 {
		return errors.New("data.update_timeout must be positive")
	}
	return nil
}

func (c *Config) validateFormat() error {
	if c.Format.Width < 20 {
		return fmt.Errorf("format.width must be at least 20, got %d", c.Format.Width)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
