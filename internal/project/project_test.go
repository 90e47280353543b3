package project

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"spdxer/internal/config"
	"spdxer/internal/logging"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCopyrightInfoDefaults(t *testing.T) {
	info := CopyrightInfo(t.TempDir(), nil, logging.NewNop())
	if info.Year != strconv.Itoa(time.Now().Year()) {
		t.Errorf("year = %q", info.Year)
	}
	if info.Name != "John Doe" || info.Email != "jdoe@geocities.com" {
		t.Errorf("holder = %q <%q>, want placeholder defaults", info.Name, info.Email)
	}
}

func TestCopyrightInfoFromPyproject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), `
[project]
name = "widget"
authors = [
  {name = "Jane Doe", email = "jane@example.com"},
  {name = "Second Author", email = "second@example.com"},
]
`)
	info := CopyrightInfo(root, nil, logging.NewNop())
	if info.Name != "Jane Doe" {
		t.Errorf("name = %q, want first author", info.Name)
	}
	if info.Email != "jane@example.com" {
		t.Errorf("email = %q", info.Email)
	}
}

func TestCopyrightInfoConfigOverridesPyproject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), `
[project]
authors = [{name = "Jane Doe", email = "jane@example.com"}]
`)
	cfg := config.Default()
	cfg.Copyright.Year = "2001"
	cfg.Copyright.Name = "Acme Corp"
	info := CopyrightInfo(root, &cfg, logging.NewNop())
	if info.Year != "2001" || info.Name != "Acme Corp" {
		t.Errorf("config overrides lost: %+v", info)
	}
	if info.Email != "jane@example.com" {
		t.Errorf("email = %q, want pyproject value when config leaves it empty", info.Email)
	}
}

func TestCopyrightInfoMalformedPyprojectIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), "not [valid toml")
	info := CopyrightInfo(root, nil, logging.NewNop())
	if info.Name != "John Doe" {
		t.Errorf("name = %q, want default after parse failure", info.Name)
	}
}

func TestFindSourceDirPrefersSrc(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "pkg", "mod.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "lib", "other.py"), "y = 2\n")
	if got := FindSourceDir(root, []string{".py"}); got != filepath.Join(root, "src") {
		t.Errorf("FindSourceDir = %q, want src", got)
	}
}

func TestFindSourceDirFallsBackToLib(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "README.md"), "docs only\n")
	writeFile(t, filepath.Join(root, "lib", "mod.py"), "x = 1\n")
	if got := FindSourceDir(root, []string{".py"}); got != filepath.Join(root, "lib") {
		t.Errorf("FindSourceDir = %q, want lib", got)
	}
}

func TestFindSourceDirFallsBackToRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mod.py"), "x = 1\n")
	if got := FindSourceDir(root, []string{".py"}); got != root {
		t.Errorf("FindSourceDir = %q, want root", got)
	}
}

func TestFindSourceDirEmptyTreeReturnsRoot(t *testing.T) {
	root := t.TempDir()
	if got := FindSourceDir(root, []string{".py"}); got != root {
		t.Errorf("FindSourceDir = %q, want root", got)
	}
}
