// Package analyzer turns free-text queries into structured semantic queries.
// All understanding is deterministic lexicon and heuristic matching; there is
// no model behind it.
package analyzer

import (
	"strings"

	"github.com/galleria-cloud/galleria/internal/domain"
	"github.com/galleria-cloud/galleria/internal/lexicon"
	"github.com/galleria-cloud/galleria/internal/textmatch"
)

// fuzzyThreshold is the minimum Levenshtein similarity for a fuzzy
// lexicon-word match.
const fuzzyThreshold = 0.7

// Analyzer builds SemanticQuery values from raw text.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New creates an analyzer over the given lexicon.
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze interprets a raw query. An empty query yields empty extraction
// lists and the browse intent.
func (a *Analyzer) Analyze(text string) domain.SemanticQuery {
	lowered := strings.ToLower(strings.TrimSpace(text))
	tokens := textmatch.Tokenize(lowered)

	q := domain.SemanticQuery{
		Original: text,
		Intent:   domain.IntentBrowse,
	}
	if lowered == "" {
		q.Specificity = 0.5
		q.Complexity = clampUnit(q.Specificity)
		return q
	}

	q.Concepts = a.matchCategories(lowered, tokens, a.lex.Concepts)
	q.Concepts = dedup(append(q.Concepts, a.implicitConcepts(tokens)...))
	q.Emotions = a.matchCategories(lowered, tokens, a.lex.Emotions)
	q.Styles = a.matchCategories(lowered, tokens, a.lex.Styles)
	q.CulturalContext = a.matchCategories(lowered, tokens, a.lex.Cultural)
	q.TemporalContext = a.matchCategories(lowered, tokens, a.lex.Temporal)
	q.VisualElements = a.visualElements(tokens)
	q.Keywords = a.keywords(tokens)
	q.Entities = extractEntities(text)
	q.Intent = a.detectIntent(lowered)
	q.Sentiment = a.sentiment(text, tokens)
	q.Specificity = a.specificity(lowered, tokens)
	q.Complexity = clampUnit(
		float64(len(tokens))/20 + float64(len(q.Concepts))/10 + q.Specificity,
	)

	return q
}

// matchCategories checks (a) direct substring containment of a keyword or
// synonym and (b) per-word fuzzy similarity against lexicon terms.
// Results are deduplicated in lexicon order.
func (a *Analyzer) matchCategories(lowered string, tokens []string, cats []lexicon.Category) []string {
	var matched []string
	for i := range cats {
		if a.categoryMatches(lowered, tokens, &cats[i]) {
			matched = append(matched, cats[i].Name)
		}
	}
	return matched
}

func (a *Analyzer) categoryMatches(lowered string, tokens []string, cat *lexicon.Category) bool {
	for _, term := range cat.Terms() {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	// Fuzzy pass over single-word terms only.
	for _, term := range cat.Terms() {
		if strings.ContainsRune(term, ' ') {
			continue
		}
		for _, tok := range tokens {
			if textmatch.Similarity(tok, term) >= fuzzyThreshold {
				return true
			}
		}
	}
	return false
}

// implicitConcepts derives focus concepts from formal-element cue words.
func (a *Analyzer) implicitConcepts(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if concept, ok := a.lex.ImplicitConcepts[tok]; ok {
			out = append(out, concept)
		}
	}
	return dedup(out)
}

// visualElements surfaces the raw cue words themselves for visual matching.
func (a *Analyzer) visualElements(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if _, ok := a.lex.ImplicitConcepts[tok]; ok {
			out = append(out, tok)
		}
	}
	return dedup(out)
}

// keywords returns deduplicated non-stop-word tokens.
func (a *Analyzer) keywords(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if !a.lex.StopWords[tok] {
			out = append(out, tok)
		}
	}
	return dedup(out)
}

// detectIntent is a single-label lookup; the first matching cue wins,
// checked in priority order with browse as the fallback.
func (a *Analyzer) detectIntent(lowered string) domain.Intent {
	ordered := []domain.Intent{
		domain.IntentInvestment,
		domain.IntentPurchase,
		domain.IntentGift,
		domain.IntentResearch,
		domain.IntentBrowse,
	}
	for _, intent := range ordered {
		for _, cue := range a.lex.IntentCues[string(intent)] {
			if strings.Contains(lowered, cue) {
				return intent
			}
		}
	}
	return domain.IntentBrowse
}

// specificity starts at 0.5, +0.2 per specific indicator, -0.2 per vague
// indicator, clamped to [0, 1].
func (a *Analyzer) specificity(lowered string, _ []string) float64 {
	s := 0.5
	for _, ind := range a.lex.SpecificIndicators {
		if strings.Contains(lowered, ind) {
			s += 0.2
		}
	}
	for _, ind := range a.lex.VagueIndicators {
		if strings.Contains(lowered, ind) {
			s -= 0.2
		}
	}
	return clampUnit(s)
}

func clampUnit(v float64) float64 { return domain.Clamp01(v) }

func dedup(in []string) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
