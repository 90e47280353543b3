// Package charset picks a text encoding for raw file bytes and converts
// content between that encoding and UTF-8 strings.
//
// Detection is a fixed fallback chain rather than statistical guessing:
// UTF-8 with BOM, plain UTF-8, Windows-1252, then Latin-1. Files containing
// NUL bytes are treated as binary and rejected.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Encoding identifies one supported text encoding.
type Encoding struct {
	name string
	impl encoding.Encoding
}

var (
	UTF8        = Encoding{"utf-8", unicode.UTF8}
	UTF8BOM     = Encoding{"utf-8-bom", unicode.UTF8BOM}
	Windows1252 = Encoding{"windows-1252", charmap.Windows1252}
	Latin1      = Encoding{"latin-1", charmap.ISO8859_1}
)

// Name returns the canonical encoding name.
func (e Encoding) Name() string { return e.name }

// Error reports content that no attempted encoding could decode.
type Error struct {
	Attempted []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("unable to decode content with encodings: %s", strings.Join(e.Attempted, ", "))
}

// Detect picks the encoding to use for the given raw bytes. The zero-length
// input detects as UTF-8.
func Detect(data []byte) (Encoding, error) {
	if bytes.IndexByte(data, 0) >= 0 {
		// NUL bytes mean binary content, not a legacy text encoding.
		return Encoding{}, &Error{Attempted: []string{UTF8.name, UTF8BOM.name, Windows1252.name, Latin1.name}}
	}
	if bytes.HasPrefix(data, utf8BOM) {
		return UTF8BOM, nil
	}
	if utf8.Valid(data) {
		return UTF8, nil
	}

	decoded, err := Windows1252.Decode(data)
	if err == nil && !strings.ContainsRune(decoded, utf8.RuneError) {
		return Windows1252, nil
	}
	return Latin1, nil
}

// Decode converts raw bytes in this encoding to a UTF-8 string.
func (e Encoding) Decode(data []byte) (string, error) {
	out, err := e.impl.NewDecoder().Bytes(data)
	if err != nil {
		return "", &Error{Attempted: []string{e.name}}
	}
	return string(out), nil
}

// Encode converts a UTF-8 string back to raw bytes in this encoding.
func (e Encoding) Encode(s string) ([]byte, error) {
	out, err := e.impl.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &Error{Attempted: []string{e.name}}
	}
	return out, nil
}
