package license

import (
	"fmt"
	"sort"
	"strings"

	"spdxer/internal/textutil"
)

// Entry describes a single license in the dataset.
type Entry struct {
	Name           string `json:"name"`
	Deprecated     bool   `json:"deprecated"`
	OSIApproved    bool   `json:"osi_approved"`
	FSFLibre       bool   `json:"fsf_libre"`
	HeaderTemplate string `json:"header_template"`
	Text           string `json:"license_text,omitempty"`
}

// Metadata describes the dataset itself.
type Metadata struct {
	SPDXVersion  string `json:"spdx_version"`
	GeneratedAt  string `json:"generated_at"`
	LicenseCount int    `json:"license_count"`
}

// Registry is an immutable lookup table of SPDX licenses keyed by identifier.
type Registry struct {
	meta    Metadata
	entries map[string]Entry
}

// NewRegistry builds a registry over a copy of entries.
func NewRegistry(meta Metadata, entries map[string]Entry) *Registry {
	copied := make(map[string]Entry, len(entries))
	for key, entry := range entries {
		copied[key] = entry
	}
	return &Registry{meta: meta, entries: copied}
}

// Metadata returns the dataset metadata.
func (r *Registry) Metadata() Metadata {
	return r.meta
}

// Len reports how many licenses the registry holds.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Keys returns every license identifier in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Contains reports whether key names a known license.
func (r *Registry) Contains(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Lookup resolves key to its entry. Unknown keys produce an
// *UnknownLicenseError carrying close-match suggestions.
func (r *Registry) Lookup(key string) (Entry, error) {
	if entry, ok := r.entries[key]; ok {
		return entry, nil
	}
	return Entry{}, &UnknownLicenseError{
		Key:         key,
		Suggestions: textutil.CloseMatches(key, r.Keys(), 3, 0.4),
	}
}

// Keyed pairs a license identifier with its entry for listing.
type Keyed struct {
	Key   string
	Entry Entry
}

// Filter returns entries whose identifier or name contains keyword,
// case-insensitively, sorted by identifier. An empty keyword matches
// everything.
func (r *Registry) Filter(keyword string) []Keyed {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	matched := make([]Keyed, 0, len(r.entries))
	for key, entry := range r.entries {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(key), keyword) &&
			!strings.Contains(strings.ToLower(entry.Name), keyword) {
			continue
		}
		matched = append(matched, Keyed{Key: key, Entry: entry})
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Key < matched[j].Key })
	return matched
}

// UnknownLicenseError reports a lookup for an identifier the dataset does not
// contain.
type UnknownLicenseError struct {
	Key         string
	Suggestions []string
}

func (e *UnknownLicenseError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("license %q not found in the SPDX data (did you mean %s?)", e.Key, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("license %q not found in the SPDX data", e.Key)
}
