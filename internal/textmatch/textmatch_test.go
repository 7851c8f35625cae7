package textmatch

import (
	"math"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("  Abstract, ART! (oil) ")
	want := []string{"abstract", "art", "oil"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abstract art", "abstract art", 1},
		{"disjoint", "abstract art", "bronze sculpture", 0},
		{"partial", "abstract art", "abstract composition", 1.0 / 3.0},
		{"both empty", "", "", 0},
		{"one empty", "abstract", "", 0},
		{"punctuation only", "?!", "...", 0},
		{"case insensitive", "Abstract ART", "abstract art", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Jaccard(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Jaccard(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abstract", "", 8},
		{"", "art", 3},
		{"kitten", "sitting", 3},
		{"monet", "manet", 1},
		{"impressionism", "impressionism", 0},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("monet", "manet"); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Similarity(monet, manet) = %v, want 0.8", got)
	}
	if got := Similarity("", ""); got != 1 {
		t.Errorf("Similarity of empty strings = %v, want 1", got)
	}
	// Fuzzy matching threshold used by the analyzer.
	if got := Similarity("landscap", "landscape"); got < 0.7 {
		t.Errorf("expected near-miss to clear 0.7, got %v", got)
	}
}
