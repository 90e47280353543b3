package operations

import (
	"sort"

	"spdxer/internal/header"
)

// Detected pairs a file with the SPDX identifier it declares.
type Detected struct {
	Path       string
	Identifier string
}

// Report is the outcome of a verify or check run.
type Report struct {
	Missing  []string
	Detected []Detected
}

// OK reports whether every scanned file carries a detectable header.
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

// Identifiers returns the distinct identifiers seen across the tree, sorted.
func (r *Report) Identifiers() []string {
	seen := make(map[string]bool)
	for _, d := range r.Detected {
		seen[d.Identifier] = true
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Verify probes every file and reports which are missing headers and which
// identifiers the rest declare.
func Verify(files []string) *Report {
	report := &Report{}
	for _, path := range files {
		if !header.Probe(path) {
			report.Missing = append(report.Missing, path)
			continue
		}
		if id, ok := header.Identifier(path); ok {
			report.Detected = append(report.Detected, Detected{Path: path, Identifier: id})
		}
	}
	return report
}
