package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spdxer/internal/testsupport"
)

type cliTestEnv struct {
	repoDir    string
	configPath string
}

// setupCLITestEnv isolates HOME so config/data resolution never touches the
// real user directories, and writes a config pinning the copyright holder.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	configPath := filepath.Join(homeDir, ".config", "spdxer", "config.toml")
	testsupport.WriteFile(t, configPath, `
[copyright]
year = "2025"
name = "Jane Doe"
email = "jane@example.com"

[scan]
extensions = [".py"]
`)

	repoDir := filepath.Join(base, "repo")
	if err := os.MkdirAll(repoDir, 0o755); err != nil {
		t.Fatalf("mkdir repo: %v", err)
	}
	return &cliTestEnv{repoDir: repoDir, configPath: configPath}
}

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output %q does not contain %q", haystack, needle)
	}
}
