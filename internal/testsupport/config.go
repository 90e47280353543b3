package testsupport

import (
	"path/filepath"
	"testing"

	"spdxer/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose data file lives in a unique temp
// directory per test. It defaults the holder fields and applies any provided
// options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Copyright.Year = "2025"
	cfg.Copyright.Name = "Jane Doe"
	cfg.Copyright.Email = "jane@example.com"
	cfg.Data.File = filepath.Join(t.TempDir(), "spdx_license_data.json")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithHolder overrides the copyright holder on the test config.
func WithHolder(year, name, email string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Copyright.Year = year
		cfg.Copyright.Name = name
		cfg.Copyright.Email = email
	}
}

// WithExtensions overrides the scanned extensions on the test config.
func WithExtensions(exts ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scan.Extensions = exts
	}
}
