package similar

import (
	"fmt"
	"math"
	"testing"

	"github.com/galleria-cloud/galleria/internal/domain"
)

func TestPairwise_FullMatch(t *testing.T) {
	a := &domain.Artwork{ID: "a", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1000, Year: 2020}
	b := &domain.Artwork{ID: "b", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1300, Year: 2022}

	if got := Pairwise(a, b); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("pairwise = %v, want 1.0", got)
	}
	if got := Pairwise(b, a); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("pairwise should be symmetric, got %v", got)
	}
}

func TestPairwise_PartialMatch(t *testing.T) {
	a := &domain.Artwork{ID: "a", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1000, Year: 1980}
	b := &domain.Artwork{ID: "b", Medium: "Watercolor", Genre: "Landscape", Price: 5000, Year: 2022}

	// Shared genre only.
	if got := Pairwise(a, b); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("pairwise = %v, want 0.3", got)
	}
}

func TestPairwise_PriceRatioBoundary(t *testing.T) {
	a := &domain.Artwork{ID: "a", Price: 500}
	b := &domain.Artwork{ID: "b", Price: 1000}
	// Exactly 50% difference does not qualify.
	if got := Pairwise(a, b); got != 0 {
		t.Errorf("pairwise = %v, want 0 at exact 50%% price gap", got)
	}
}

func TestTopSimilar_ExcludesSelfAndCaps(t *testing.T) {
	subject := domain.Artwork{ID: "subject", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1000, Year: 2020}

	candidates := []domain.Artwork{subject} // self must be skipped
	for i := 0; i < 8; i++ {
		candidates = append(candidates, domain.Artwork{
			ID:     fmt.Sprintf("cand-%d", i),
			Medium: "Oil on Canvas",
			Genre:  "Landscape",
			Price:  1000 + float64(i)*50,
			Year:   2020,
		})
	}

	got := TopSimilar(&subject, candidates)
	if len(got) != MaxSimilar {
		t.Fatalf("expected %d similars, got %d", MaxSimilar, len(got))
	}
	for _, id := range got {
		if id == subject.ID {
			t.Error("similar list contains the subject itself")
		}
	}
}

func TestTopSimilar_ThresholdExcludesWeakPairs(t *testing.T) {
	subject := domain.Artwork{ID: "subject", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1000, Year: 2020}
	candidates := []domain.Artwork{
		// Same genre + close year: 0.5, not > 0.5.
		{ID: "weak", Medium: "Bronze", Genre: "Landscape", Price: 90000, Year: 2021},
		// Same medium + genre: 0.6, qualifies.
		{ID: "strong", Medium: "Oil on Canvas", Genre: "Landscape", Price: 90000, Year: 1900},
	}

	got := TopSimilar(&subject, candidates)
	if len(got) != 1 || got[0] != "strong" {
		t.Errorf("expected only the strong pair, got %v", got)
	}
}

func TestTopSimilar_OrderedByScore(t *testing.T) {
	subject := domain.Artwork{ID: "s", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1000, Year: 2020}
	candidates := []domain.Artwork{
		{ID: "good", Medium: "Oil on Canvas", Genre: "Landscape", Price: 90000, Year: 1900}, // 0.6
		{ID: "best", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1100, Year: 2021},  // 1.0
	}

	got := TopSimilar(&subject, candidates)
	if len(got) != 2 || got[0] != "best" || got[1] != "good" {
		t.Errorf("expected [best good], got %v", got)
	}
}
