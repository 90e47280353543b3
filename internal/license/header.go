package license

import (
	"fmt"
	"regexp"
	"strings"
)

// Info carries the copyright holder details substituted into headers.
type Info struct {
	Year  string
	Name  string
	Email string
}

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// RenderHeader produces the comment block to insert at the top of a file,
// ending with one blank separator line. Entries whose template embeds an
// SPDX-License-Identifier line are rendered from the template; everything
// else gets the standard two-line SPDX header.
func RenderHeader(key string, entry Entry, info Info, marker string) string {
	if strings.Contains(entry.HeaderTemplate, "SPDX-License-Identifier") {
		if rendered, ok := renderTemplate(key, entry, info, marker); ok {
			return rendered
		}
	}
	return fmt.Sprintf("%s SPDX-FileCopyrightText: %s %s <%s>\n%s SPDX-License-Identifier: %s\n\n",
		marker, info.Year, info.Name, info.Email, marker, key)
}

// renderTemplate substitutes the known placeholders and comments out the
// result. Templates with placeholders we cannot resolve are rejected so the
// caller falls back to the standard header.
func renderTemplate(key string, entry Entry, info Info, marker string) (string, bool) {
	replacer := strings.NewReplacer(
		"{year}", info.Year,
		"{name}", info.Name,
		"{email}", info.Email,
		"{license_name}", strings.TrimSpace(entry.Name),
		"{license_key}", key,
	)
	rendered := replacer.Replace(entry.HeaderTemplate)
	if placeholderPattern.MatchString(rendered) {
		return "", false
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		switch {
		case strings.TrimSpace(line) == "":
			b.WriteString(marker)
		case strings.HasPrefix(strings.TrimSpace(line), marker):
			b.WriteString(line)
		default:
			b.WriteString(marker + " " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String(), true
}
