package operations

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"spdxer/internal/fileutil"
	"spdxer/internal/license"
	"spdxer/internal/textwrap"
)

// ExtractResult describes where Extract wrote the license file and whether a
// placeholder had to stand in for the real text.
type ExtractResult struct {
	Path        string
	Placeholder bool
	DryRun      bool
}

// Extract writes the license text for licenseKey into dir, wrapped to width.
// The file is named LICENSE, or LICENSE-<key> when LICENSE already exists.
// When the registry has no stored text a placeholder pointing at the official
// SPDX listing is written instead.
func Extract(reg *license.Registry, licenseKey, dir string, width int, dryRun bool) (*ExtractResult, error) {
	entry, err := reg.Lookup(licenseKey)
	if err != nil {
		return nil, err
	}

	target := filepath.Join(dir, "LICENSE")
	if _, err := os.Stat(target); err == nil {
		target = filepath.Join(dir, "LICENSE-"+licenseKey)
	}

	result := &ExtractResult{Path: target, DryRun: dryRun}
	text := entry.Text
	if text == "" {
		result.Placeholder = true
		text = placeholderText(licenseKey, entry.Name)
	}
	if dryRun {
		return result, nil
	}

	if err := fileutil.WriteAtomic(target, []byte(textwrap.Wrap(text, width)), 0o644); err != nil {
		return nil, fmt.Errorf("write license file: %w", err)
	}
	return result, nil
}

func placeholderText(licenseKey, name string) string {
	if name == "" {
		name = licenseKey
	}
	return fmt.Sprintf("%s (%s)\n\n"+
		"The full license text is not bundled with this tool.\n"+
		"Refer to the official SPDX listing for the authoritative text:\n"+
		"https://spdx.org/licenses/%s.html\n",
		name, licenseKey, url.QueryEscape(licenseKey))
}
