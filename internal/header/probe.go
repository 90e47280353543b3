package header

import (
	"bufio"
	"io"
	"os"
	"regexp"
)

// ProbeWindow bounds how many leading bytes the fast header probe inspects.
// An SPDX declaration past this offset is deliberately not detected.
const ProbeWindow = 2048

var identifierPattern = regexp.MustCompile(`(?i)SPDX-License-Identifier:[ \t]*([\w.+/:-]+)`)

// Probe reports whether the file carries a detectable SPDX header within the
// first ProbeWindow bytes. Unreadable files probe as false; callers that care
// about the distinction should use a Processor instead.
func Probe(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, ProbeWindow))
	if err != nil {
		return false
	}
	return ProbeBytes(data)
}

// ProbeBytes applies the probe to an in-memory prefix.
func ProbeBytes(data []byte) bool {
	if len(data) > ProbeWindow {
		data = data[:ProbeWindow]
	}
	return identifierPattern.Match(data)
}

// Identifier returns the first SPDX license identifier declared in the file,
// scanning the full content line by line.
func Identifier(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if m := identifierPattern.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], true
		}
	}
	return "", false
}
