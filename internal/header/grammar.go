package header

import (
	"path/filepath"
	"strings"
)

// markerByExtension maps file extensions to their line comment marker.
var markerByExtension = map[string]string{
	".bash":  "#",
	".c":     "//",
	".cc":    "//",
	".cfg":   "#",
	".cpp":   "//",
	".cs":    "//",
	".go":    "//",
	".h":     "//",
	".hpp":   "//",
	".java":  "//",
	".js":    "//",
	".jsx":   "//",
	".kt":    "//",
	".nix":   "#",
	".pl":    "#",
	".py":    "#",
	".r":     "#",
	".rb":    "#",
	".rs":    "//",
	".scala": "//",
	".sh":    "#",
	".swift": "//",
	".toml":  "#",
	".ts":    "//",
	".tsx":   "//",
	".yaml":  "#",
	".yml":   "#",
}

// Marker returns the line comment marker for the given path. Unknown
// extensions fall back to "#".
func Marker(path string) string {
	if marker, ok := markerByExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return marker
	}
	return "#"
}

// SplitLines splits content into lines, each retaining its trailing newline
// if it had one. Returns nil for empty content.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	var lines []string
	for {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			lines = append(lines, content)
			return lines
		}
		lines = append(lines, content[:idx+1])
		content = content[idx+1:]
		if content == "" {
			return lines
		}
	}
}

func isShebang(line string) bool {
	return strings.HasPrefix(line, "#!")
}

func isComment(line, marker string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), marker)
}

func hasSPDXMarker(line string) bool {
	return strings.Contains(line, "SPDX")
}

// partition splits lines into shebang, header, and body per the grammar.
// The header run opens at the first SPDX-marked comment after the optional
// shebang and extends through blank and comment lines until the first line
// that is neither. A blank or SPDX-free comment before any marker means the
// file has no header and everything scanned is body.
func partition(lines []string, marker string) (shebang string, header, body []string) {
	idx := 0
	if len(lines) > 0 && isShebang(lines[0]) {
		shebang = lines[0]
		idx = 1
	}

	var run []string
	spdxSeen := false

scan:
	for i := idx; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.TrimSpace(line) == "":
			if !spdxSeen {
				break scan
			}
			run = append(run, line)
		case isComment(line, marker):
			if hasSPDXMarker(line) {
				spdxSeen = true
			} else if !spdxSeen {
				break scan
			}
			run = append(run, line)
		default:
			break scan
		}
	}

	if !spdxSeen {
		return shebang, nil, lines[idx:]
	}
	return shebang, run, lines[idx+len(run):]
}
