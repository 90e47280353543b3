package operations

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"spdxer/internal/license"
	"spdxer/internal/logging"
	"spdxer/internal/textwrap"
)

// Opener launches the system viewer for a file.
type Opener func(path string) error

// ShowOptions configures a license preview.
type ShowOptions struct {
	// Open overrides the platform opener, mainly for tests.
	Open Opener
	// CleanupDelay schedules best-effort removal of the temp file after the
	// viewer has had a chance to read it. Zero disables cleanup.
	CleanupDelay time.Duration
	Width        int
}

// Show writes the license text to a temporary file and opens it with the
// system viewer. Cleanup of the temp file is fire-and-forget; the file lives
// in the OS temp directory either way.
func Show(reg *license.Registry, licenseKey string, opts ShowOptions, logger *slog.Logger) (string, error) {
	entry, err := reg.Lookup(licenseKey)
	if err != nil {
		return "", err
	}

	text := entry.Text
	if text == "" {
		text = placeholderText(licenseKey, entry.Name)
	}
	if opts.Width > 0 {
		text = textwrap.Wrap(text, opts.Width)
	}

	f, err := os.CreateTemp("", "spdxer-"+licenseKey+"-*.txt")
	if err != nil {
		return "", fmt.Errorf("create preview file: %w", err)
	}
	path := f.Name()
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write preview file: %w", err)
	}

	open := opts.Open
	if open == nil {
		open = systemOpener
	}
	if err := open(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("open preview: %w", err)
	}

	if opts.CleanupDelay > 0 {
		time.AfterFunc(opts.CleanupDelay, func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				logger.Debug("preview cleanup failed", logging.Error(err))
			}
		})
	}
	return path, nil
}

// systemOpener picks the platform's default file opener.
func systemOpener(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Run()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Run()
	default:
		for _, candidate := range []string{"xdg-open", "gio", "wslview"} {
			if opener, err := exec.LookPath(candidate); err == nil {
				if candidate == "gio" {
					return exec.Command(opener, "open", path).Run()
				}
				return exec.Command(opener, path).Run()
			}
		}
		return fmt.Errorf("no file opener available on this system")
	}
}
