package config

const (
	defaultDataFile      = "~/.local/share/spdxer/spdx_license_data.json"
	defaultUpdateURL     = "https://raw.githubusercontent.com/spdx/license-list-data/main/json/licenses.json"
	defaultUpdateTimeout = 30
	defaultWrapWidth     = 79
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultCleanupDelay  = 30
)

func defaultExtensions() []string {
	return []string{".py"}
}

func defaultIgnoreDirs() []string {
	return []string{
		".git",
		".hg",
		".svn",
		".tox",
		".venv",
		"__pycache__",
		"build",
		"dist",
		"node_modules",
		"vendor",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions: defaultExtensions(),
			IgnoreDirs: defaultIgnoreDirs(),
		},
		Data: Data{
			File:          defaultDataFile,
			UpdateURL:     defaultUpdateURL,
			UpdateTimeout: defaultUpdateTimeout,
		},
		Format: Format{
			Width: defaultWrapWidth,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Show: Show{
			CleanupDelaySeconds: defaultCleanupDelay,
		},
	}
}
