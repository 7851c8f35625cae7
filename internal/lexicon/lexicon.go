// Package lexicon holds the static vocabularies behind query analysis.
// A Lexicon is built once at process start and injected into consumers;
// nothing mutates it after load.
package lexicon

// Category is one named vocabulary entry with its match terms.
type Category struct {
	Name     string
	Keywords []string
	Synonyms []string
	Weight   float64
}

// Terms returns keywords and synonyms as one slice.
func (c *Category) Terms() []string {
	out := make([]string, 0, len(c.Keywords)+len(c.Synonyms))
	out = append(out, c.Keywords...)
	out = append(out, c.Synonyms...)
	return out
}

// Lexicon is the immutable vocabulary set for the query analyzer.
type Lexicon struct {
	Concepts []Category
	Emotions []Category
	Styles   []Category
	Cultural []Category
	Temporal []Category

	// Sentiment maps a word to its weight in [-1, 1].
	Sentiment map[string]float64
	// Intensifiers multiply the weight of the following sentiment word.
	Intensifiers map[string]float64
	// Negations flip the sign of the following sentiment word.
	Negations map[string]bool

	// IntentCues maps intent labels to their trigger words.
	IntentCues map[string][]string
	// ImplicitConcepts maps cue words to derived concept names.
	ImplicitConcepts map[string]string

	SpecificIndicators []string
	VagueIndicators    []string

	// ArtTerms are domain words that slightly boost sentiment confidence.
	ArtTerms map[string]bool

	StopWords map[string]bool

	// DefaultTrending is served when no recent engagement data exists.
	DefaultTrending []string
}

// Default builds the standard lexicon.
func Default() *Lexicon {
	return &Lexicon{
		Concepts:           conceptCategories,
		Emotions:           emotionCategories,
		Styles:             styleCategories,
		Cultural:           culturalCategories,
		Temporal:           temporalCategories,
		Sentiment:          sentimentWeights,
		Intensifiers:       intensifierWeights,
		Negations:          negationWords,
		IntentCues:         intentCues,
		ImplicitConcepts:   implicitConceptCues,
		SpecificIndicators: specificIndicators,
		VagueIndicators:    vagueIndicators,
		ArtTerms:           artTerms,
		StopWords:          stopWords,
		DefaultTrending:    defaultTrending,
	}
}
