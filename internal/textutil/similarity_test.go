package textutil

import "testing"

func TestSimilarityIdentical(t *testing.T) {
	score := Similarity("Apache-2.0", "Apache-2.0")
	if score < 0.999 {
		t.Errorf("identical strings should score ~1.0, got %f", score)
	}
}

func TestSimilarityCaseInsensitive(t *testing.T) {
	if Similarity("MIT", "mit") < 0.999 {
		t.Error("comparison should ignore case")
	}
}

func TestSimilarityUnrelated(t *testing.T) {
	score := Similarity("MIT", "zlib")
	if score > 0.3 {
		t.Errorf("unrelated identifiers should score low, got %f", score)
	}
}

func TestNewFingerprintEmpty(t *testing.T) {
	if NewFingerprint("   ") != nil {
		t.Error("blank input should produce nil fingerprint")
	}
	if CosineSimilarity(nil, NewFingerprint("x")) != 0 {
		t.Error("nil fingerprint should score 0")
	}
}

func TestCloseMatchesFindsTypo(t *testing.T) {
	candidates := []string{"MIT", "Apache-2.0", "GPL-3.0-only", "BSD-3-Clause", "MPL-2.0"}
	matches := CloseMatches("apache", candidates, 3, 0.3)
	if len(matches) == 0 {
		t.Fatal("expected at least one match for 'apache'")
	}
	if matches[0] != "Apache-2.0" {
		t.Errorf("best match = %q, want Apache-2.0", matches[0])
	}
}

func TestCloseMatchesRespectsLimitAndCutoff(t *testing.T) {
	candidates := []string{"GPL-2.0-only", "GPL-2.0-or-later", "GPL-3.0-only", "GPL-3.0-or-later"}
	matches := CloseMatches("GPL-3.0", candidates, 2, 0.3)
	if len(matches) > 2 {
		t.Errorf("limit ignored, got %d matches", len(matches))
	}

	if got := CloseMatches("GPL-3.0", candidates, 5, 1.01); len(got) != 0 {
		t.Errorf("impossible cutoff should match nothing, got %v", got)
	}
}

func TestCloseMatchesDeterministicTies(t *testing.T) {
	candidates := []string{"b-same", "a-same"}
	first := CloseMatches("same", candidates, 2, 0.1)
	second := CloseMatches("same", candidates, 2, 0.1)
	if len(first) != len(second) {
		t.Fatal("runs disagree")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("order differs at %d: %q vs %q", i, first[i], second[i])
		}
	}
}
