package project

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"spdxer/internal/config"
	"spdxer/internal/license"
	"spdxer/internal/logging"
)

// Placeholder holder used when neither config nor project metadata names one.
const (
	defaultHolderName  = "John Doe"
	defaultHolderEmail = "jdoe@geocities.com"
)

// pyproject models the slice of pyproject.toml we read.
type pyproject struct {
	Project struct {
		Authors []struct {
			Name  string `toml:"name"`
			Email string `toml:"email"`
		} `toml:"authors"`
	} `toml:"project"`
}

// CopyrightInfo resolves the copyright holder for the repository at root.
// Precedence: config overrides, then the first author in pyproject.toml,
// then placeholder defaults with the current year.
func CopyrightInfo(root string, cfg *config.Config, logger *slog.Logger) license.Info {
	info := license.Info{
		Year:  strconv.Itoa(time.Now().Year()),
		Name:  defaultHolderName,
		Email: defaultHolderEmail,
	}

	if name, email, ok := readAuthor(filepath.Join(root, "pyproject.toml"), logger); ok {
		if name != "" {
			info.Name = name
		}
		if email != "" {
			info.Email = email
		}
	}

	if cfg != nil {
		if cfg.Copyright.Year != "" {
			info.Year = cfg.Copyright.Year
		}
		if cfg.Copyright.Name != "" {
			info.Name = cfg.Copyright.Name
		}
		if cfg.Copyright.Email != "" {
			info.Email = cfg.Copyright.Email
		}
	}
	return info
}

// readAuthor returns the first project author, if any. Unreadable or
// malformed files are logged and otherwise ignored.
func readAuthor(path string, logger *slog.Logger) (name, email string, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read pyproject.toml", logging.Error(err))
		}
		return "", "", false
	}
	var pp pyproject
	if err := toml.Unmarshal(data, &pp); err != nil {
		logger.Warn("could not parse pyproject.toml", logging.Error(err))
		return "", "", false
	}
	if len(pp.Project.Authors) == 0 {
		return "", "", false
	}
	author := pp.Project.Authors[0]
	return strings.TrimSpace(author.Name), strings.TrimSpace(author.Email), true
}

// FindSourceDir picks the directory to scan: root/src, then root/lib, then
// root itself, taking the first that contains at least one file with a
// scanned extension anywhere below it.
func FindSourceDir(root string, extensions []string) string {
	for _, candidate := range []string{filepath.Join(root, "src"), filepath.Join(root, "lib"), root} {
		if containsSource(candidate, extensions) {
			return candidate
		}
	}
	return root
}

func containsSource(dir string, extensions []string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	found := false
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.EqualFold(filepath.Ext(path), ext) {
				found = true
				return filepath.SkipAll
			}
		}
		return nil
	})
	return found
}
