// Package textwrap reflows license prose to a fixed maximum line width.
//
// Unlike a naive word wrapper it preserves the structural cues of legal text:
// blank lines keep their role as paragraph breaks, bullet and numbered-list
// markers keep continuation lines aligned under their content, and a
// paragraph's leading indentation is carried onto every wrapped line. Words
// are never broken or hyphenated.
package textwrap

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var bulletPattern = regexp.MustCompile(`^([-*•]|[0-9]+\.)[ \t]+`)

// Wrap reflows text to the given width. CRLF line endings are normalized to
// LF first. The output ends with a newline iff the input did.
func Wrap(text string, width int) string {
	hasTrailingNewline := strings.HasSuffix(text, "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var out []string
	var paragraph []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			out = append(out, flushParagraph(paragraph, width)...)
			paragraph = nil
			out = append(out, "")
			continue
		}
		paragraph = append(paragraph, line)
	}
	out = append(out, flushParagraph(paragraph, width)...)

	result := strings.Join(out, "\n")
	if hasTrailingNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}

// flushParagraph joins buffered lines into one logical paragraph and wraps
// it. The first line's leading whitespace becomes the wrap prefix; a bullet
// or numbered-list marker becomes the initial prefix with a matching-width
// space prefix for continuation lines.
func flushParagraph(buffer []string, width int) []string {
	if len(buffer) == 0 {
		return nil
	}

	first := buffer[0]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]

	stripped := make([]string, len(buffer))
	for i, line := range buffer {
		stripped[i] = strings.TrimSpace(line)
	}
	paragraph := strings.Join(stripped, " ")

	initial, subsequent := indent, indent
	if marker := bulletPattern.FindString(strings.TrimLeft(first, " \t")); marker != "" {
		initial = indent + marker
		subsequent = indent + strings.Repeat(" ", utf8.RuneCountInString(marker))
		// The joined paragraph is built from trimmed lines, so a marker
		// followed only by whitespace leaves nothing after it.
		if len(paragraph) < len(marker) {
			return []string{strings.TrimRight(initial, " \t")}
		}
		paragraph = strings.TrimLeft(paragraph[len(marker):], " ")
		if paragraph == "" {
			return []string{strings.TrimRight(initial, " \t")}
		}
	}

	return fill(paragraph, width, initial, subsequent)
}

// fill greedily packs words into lines. A word longer than the width gets a
// line of its own rather than being broken.
func fill(text string, width int, initial, subsequent string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var b strings.Builder
	b.WriteString(initial)
	lineLen := utf8.RuneCountInString(initial)
	wordsOnLine := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if wordsOnLine > 0 && lineLen+1+wordLen > width {
			lines = append(lines, b.String())
			b.Reset()
			b.WriteString(subsequent)
			lineLen = utf8.RuneCountInString(subsequent)
			wordsOnLine = 0
		}
		if wordsOnLine > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += wordLen
		wordsOnLine++
	}
	lines = append(lines, b.String())
	return lines
}
