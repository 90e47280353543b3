package textutil

import (
	"math"
	"sort"
	"strings"
)

// Fingerprint represents a character-bigram frequency vector.
type Fingerprint struct {
	grams map[string]float64
	norm  float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil for empty input.
func NewFingerprint(text string) *Fingerprint {
	runes := []rune(strings.ToLower(strings.TrimSpace(text)))
	if len(runes) == 0 {
		return nil
	}

	// Pad so single characters and word boundaries contribute grams.
	padded := make([]rune, 0, len(runes)+2)
	padded = append(padded, ' ')
	padded = append(padded, runes...)
	padded = append(padded, ' ')

	grams := make(map[string]float64, len(padded))
	for i := 0; i+1 < len(padded); i++ {
		grams[string(padded[i:i+2])]++
	}

	var norm float64
	for _, count := range grams {
		norm += count * count
	}
	return &Fingerprint{grams: grams, norm: math.Sqrt(norm)}
}

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for gram, count := range a.grams {
		if other, ok := b.grams[gram]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Similarity compares two strings directly.
func Similarity(a, b string) float64 {
	return CosineSimilarity(NewFingerprint(a), NewFingerprint(b))
}

// CloseMatches returns up to limit candidates whose similarity to target is
// at least cutoff, best matches first. Ties break lexicographically so the
// result is deterministic.
func CloseMatches(target string, candidates []string, limit int, cutoff float64) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	targetFP := NewFingerprint(target)
	if targetFP == nil {
		return nil
	}

	type scored struct {
		value string
		score float64
	}
	matches := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		score := CosineSimilarity(targetFP, NewFingerprint(candidate))
		if score >= cutoff {
			matches = append(matches, scored{value: candidate, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].value < matches[j].value
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.value
	}
	return result
}
