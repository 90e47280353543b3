package operations

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindSourceFiles walks root and returns every regular file whose extension
// is in extensions, skipping directories named in ignoreDirs. Results come
// back in lexical walk order so batch runs are deterministic.
func FindSourceFiles(root string, extensions, ignoreDirs []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		if matchesExtension(root, extensions) {
			return []string{root}, nil
		}
		return nil, nil
	}

	ignored := make(map[string]bool, len(ignoreDirs))
	for _, dir := range ignoreDirs {
		ignored[dir] = true
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && ignored[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return files, nil
}

func matchesExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
