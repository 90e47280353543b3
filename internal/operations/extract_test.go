package operations

import (
	"path/filepath"
	"strings"
	"testing"

	"spdxer/internal/license"
	"spdxer/internal/testsupport"
)

func extractRegistry(t *testing.T) *license.Registry {
	t.Helper()
	reg, err := license.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return reg
}

func TestExtractWritesWrappedText(t *testing.T) {
	dir := t.TempDir()
	result, err := Extract(extractRegistry(t), "MIT", dir, 79, false)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Placeholder {
		t.Error("MIT has stored text, should not be a placeholder")
	}
	if result.Path != filepath.Join(dir, "LICENSE") {
		t.Errorf("Path = %q", result.Path)
	}

	content := testsupport.ReadFile(t, result.Path)
	if !strings.Contains(content, "MIT License") {
		t.Errorf("content missing title: %q", content[:60])
	}
	for i, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > 79 {
			t.Errorf("line %d exceeds width: %q", i+1, line)
		}
	}
}

func TestExtractSuffixesWhenLicenseExists(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "LICENSE"), "existing\n")

	result, err := Extract(extractRegistry(t), "MIT", dir, 79, false)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Path != filepath.Join(dir, "LICENSE-MIT") {
		t.Errorf("Path = %q, want suffixed name", result.Path)
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "LICENSE")); got != "existing\n" {
		t.Errorf("existing LICENSE overwritten: %q", got)
	}
}

func TestExtractReplacesExistingTargetCleanly(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "LICENSE"), "existing\n")
	testsupport.WriteFile(t, filepath.Join(dir, "LICENSE-MIT"), "stale\n")

	result, err := Extract(extractRegistry(t), "MIT", dir, 79, false)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	content := testsupport.ReadFile(t, result.Path)
	if !strings.Contains(content, "MIT License") {
		t.Errorf("LICENSE-MIT not replaced: %q", content)
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestExtractPlaceholderWhenTextMissing(t *testing.T) {
	dir := t.TempDir()
	result, err := Extract(extractRegistry(t), "MPL-2.0", dir, 79, false)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !result.Placeholder {
		t.Error("MPL-2.0 has no stored text, expected a placeholder")
	}
	content := testsupport.ReadFile(t, result.Path)
	if !strings.Contains(content, "https://spdx.org/licenses/MPL-2.0.html") {
		t.Errorf("placeholder missing SPDX link: %q", content)
	}
}

func TestExtractDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	result, err := Extract(extractRegistry(t), "MIT", dir, 79, true)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !result.DryRun {
		t.Error("DryRun flag lost")
	}
	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run created files: %v", entries)
	}
}

func TestExtractUnknownLicense(t *testing.T) {
	if _, err := Extract(extractRegistry(t), "nope", t.TempDir(), 79, false); err == nil {
		t.Fatal("expected lookup failure")
	}
}
