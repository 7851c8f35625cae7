package domain

// Match explains which artwork field matched and how strongly.
type Match struct {
	Field string  // title, description, medium, genre, artist, concept
	Score float64 // [0, 1]
	Terms []string
}

// Result is one scored artwork in a ranked result list.
// Computed fresh per request; never persisted.
type Result struct {
	Artwork        Artwork
	RelevanceScore float64 // (0.1, 1]

	SemanticMatches []Match
	// SimilarArtworks holds up to 5 ids, never including the artwork itself.
	SimilarArtworks []string
	Market          MarketContext

	VisualScore     float64 // [0, 1]
	ConceptualScore float64 // [0, 1]
	EmotionalScore  float64 // [0, 1]

	CulturalContext []string
}

// Clamp01 bounds v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampSigned bounds v to [-1, 1].
func ClampSigned(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
