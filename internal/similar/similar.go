// Package similar builds pairwise artwork similarity for "more like this"
// recommendations.
package similar

import (
	"math"
	"sort"
	"strings"

	"github.com/galleria-cloud/galleria/internal/domain"
)

// Pairwise feature weights.
const (
	mediumWeight = 0.3
	genreWeight  = 0.3
	priceWeight  = 0.2
	yearWeight   = 0.2
)

// qualifyThreshold is the minimum pairwise score to count as similar.
const qualifyThreshold = 0.5

// MaxSimilar bounds the recommendation list per artwork.
const MaxSimilar = 5

// Pairwise scores two artworks on shared medium, genre, price bracket, and
// era. Range [0, 1].
func Pairwise(a, b *domain.Artwork) float64 {
	var score float64
	if a.Medium != "" && strings.EqualFold(a.Medium, b.Medium) {
		score += mediumWeight
	}
	if a.Genre != "" && strings.EqualFold(a.Genre, b.Genre) {
		score += genreWeight
	}
	if priceComparable(a.Price, b.Price) {
		score += priceWeight
	}
	if a.Year != 0 && b.Year != 0 && abs(a.Year-b.Year) <= 10 {
		score += yearWeight
	}
	return score
}

// TopSimilar returns up to MaxSimilar candidate ids whose pairwise score
// with subject exceeds the qualifying threshold, best first. The subject's
// own id never appears.
func TopSimilar(subject *domain.Artwork, candidates []domain.Artwork) []string {
	type scored struct {
		id    string
		score float64
	}

	var qualified []scored
	for i := range candidates {
		c := &candidates[i]
		if c.ID == subject.ID {
			continue
		}
		if s := Pairwise(subject, c); s > qualifyThreshold {
			qualified = append(qualified, scored{id: c.ID, score: s})
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].score > qualified[j].score
	})

	if len(qualified) > MaxSimilar {
		qualified = qualified[:MaxSimilar]
	}
	out := make([]string, len(qualified))
	for i, q := range qualified {
		out[i] = q.id
	}
	return out
}

// priceComparable reports whether the relative price difference is under 50%.
func priceComparable(p1, p2 float64) bool {
	if p1 <= 0 || p2 <= 0 {
		return false
	}
	larger := math.Max(p1, p2)
	return math.Abs(p1-p2)/larger < 0.5
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
