// Package scorer computes the primary relevance signal combining text
// similarity, concept coverage, and caller context.
package scorer

import (
	"strings"

	"github.com/galleria-cloud/galleria/internal/domain"
	"github.com/galleria-cloud/galleria/internal/textmatch"
)

// MinRelevance is the exclusion threshold: results scoring at or below it
// are dropped.
const MinRelevance = 0.1

// Field weights for the base score.
const (
	weightTitle       = 0.30
	weightDescription = 0.20
	weightMedium      = 0.15
	weightGenre       = 0.15
	weightArtist      = 0.10
	weightConcepts    = 0.10
)

// giftPriceCeiling is the price at or below which gift intent boosts a score.
const giftPriceCeiling = 1000

// Scored is a relevance score with its explanation breakdown.
type Scored struct {
	Relevance  float64
	Matches    []domain.Match
	Conceptual float64
	Emotional  float64
	Visual     float64
}

// Scorer ranks candidate artworks against a semantic query.
type Scorer struct{}

// New creates a scorer.
func New() *Scorer {
	return &Scorer{}
}

// Score computes the clamped relevance of one candidate, with per-field
// match explanations. Context adjustments are multiplicative and applied
// after the weighted base.
func (s *Scorer) Score(q *domain.SemanticQuery, a *domain.Artwork, sctx *domain.SearchContext) Scored {
	raw := q.Original

	fields := []struct {
		name   string
		value  string
		weight float64
	}{
		{"title", a.Title, weightTitle},
		{"description", a.Description, weightDescription},
		{"medium", a.Medium, weightMedium},
		{"genre", a.Genre, weightGenre},
		{"artist", a.ArtistName, weightArtist},
	}

	var score float64
	var matches []domain.Match
	for _, f := range fields {
		sim := textmatch.Jaccard(raw, f.value)
		score += f.weight * sim
		if sim > 0 {
			matches = append(matches, domain.Match{
				Field: f.name,
				Score: sim,
				Terms: overlap(raw, f.value),
			})
		}
	}

	text := strings.ToLower(a.SearchableText())
	conceptual := coverage(q.Concepts, text)
	score += weightConcepts * conceptual
	if conceptual > 0 {
		matches = append(matches, domain.Match{
			Field: "concept",
			Score: conceptual,
			Terms: found(q.Concepts, text),
		})
	}

	score = s.adjustForContext(score, q, a, sctx)

	return Scored{
		Relevance:  domain.Clamp01(score),
		Matches:    matches,
		Conceptual: conceptual,
		Emotional:  coverage(q.Emotions, text),
		Visual:     coverage(q.VisualElements, text),
	}
}

// adjustForContext applies the multiplicative preference, budget, and intent
// adjustments, in that order.
func (s *Scorer) adjustForContext(score float64, q *domain.SemanticQuery, a *domain.Artwork, sctx *domain.SearchContext) float64 {
	if sctx == nil {
		return score
	}
	if sctx.FavorsMedium(a.Medium) || sctx.FavorsGenre(a.Genre) {
		score *= 1.2
	}
	if b := sctx.BudgetRange; b != nil && b.Max > 0 {
		switch {
		case a.Price >= b.Min && a.Price <= b.Max:
			score *= 1.1
		case a.Price > b.Max:
			score *= 0.8
		}
	}
	intent := sctx.Intent
	if intent == "" {
		intent = q.Intent
	}
	if intent == domain.IntentInvestment && a.AppreciationRate > 0 {
		score *= 1.3
	}
	if intent == domain.IntentGift && a.Price <= giftPriceCeiling {
		score *= 1.2
	}
	return score
}

// coverage is the fraction of terms found in text; 0 when terms is empty.
func coverage(terms []string, text string) float64 {
	if len(terms) == 0 {
		return 0
	}
	hits := 0
	for _, term := range terms {
		if strings.Contains(text, strings.ToLower(term)) {
			hits++
		}
	}
	return float64(hits) / float64(len(terms))
}

func found(terms []string, text string) []string {
	var out []string
	for _, term := range terms {
		if strings.Contains(text, strings.ToLower(term)) {
			out = append(out, term)
		}
	}
	return out
}

// overlap returns the tokens two texts share.
func overlap(a, b string) []string {
	bs := textmatch.TokenSet(b)
	var out []string
	seen := make(map[string]bool)
	for _, tok := range textmatch.Tokenize(a) {
		if bs[tok] && !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}
