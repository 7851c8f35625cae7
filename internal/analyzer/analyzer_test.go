package analyzer

import (
	"math"
	"testing"

	"github.com/galleria-cloud/galleria/internal/domain"
	"github.com/galleria-cloud/galleria/internal/lexicon"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return New(lexicon.Default())
}

func contains(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}

func TestAnalyze_ConceptExtraction(t *testing.T) {
	a := newTestAnalyzer(t)

	q := a.Analyze("abstract art")
	if !contains(q.Concepts, "abstract") {
		t.Errorf("expected concept abstract, got %v", q.Concepts)
	}
}

func TestAnalyze_FuzzyConceptMatch(t *testing.T) {
	a := newTestAnalyzer(t)

	// One dropped letter still clears the 0.7 similarity threshold.
	q := a.Analyze("landscap with mountains")
	if !contains(q.Concepts, "landscape") {
		t.Errorf("expected fuzzy match on landscape, got %v", q.Concepts)
	}
}

func TestAnalyze_ImplicitConcepts(t *testing.T) {
	a := newTestAnalyzer(t)

	q := a.Analyze("something with strong color and light")
	if !contains(q.Concepts, "color_focused") {
		t.Errorf("expected color_focused, got %v", q.Concepts)
	}
	if !contains(q.Concepts, "light_focused") {
		t.Errorf("expected light_focused, got %v", q.Concepts)
	}
	if !contains(q.VisualElements, "color") {
		t.Errorf("expected visual element color, got %v", q.VisualElements)
	}
}

func TestAnalyze_Intent(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		query string
		want  domain.Intent
	}{
		{"I want to buy an oil painting", domain.IntentPurchase},
		{"good investment pieces under 10k", domain.IntentInvestment},
		{"a gift for my mother", domain.IntentGift},
		{"history of Impressionism", domain.IntentResearch},
		{"colorful landscapes", domain.IntentBrowse},
		{"", domain.IntentBrowse},
	}
	for _, tt := range tests {
		if got := a.Analyze(tt.query).Intent; got != tt.want {
			t.Errorf("intent(%q) = %s, want %s", tt.query, got, tt.want)
		}
	}
}

func TestAnalyze_Entities(t *testing.T) {
	a := newTestAnalyzer(t)

	q := a.Analyze("paintings by Claude Monet from Paris, early Impressionism")
	if !contains(q.Entities, "Claude Monet") {
		t.Errorf("expected artist entity, got %v", q.Entities)
	}
	if !contains(q.Entities, "Paris") {
		t.Errorf("expected location entity, got %v", q.Entities)
	}
	if !contains(q.Entities, "Impressionism") {
		t.Errorf("expected movement entity, got %v", q.Entities)
	}
}

func TestAnalyze_SentimentIntensifier(t *testing.T) {
	a := newTestAnalyzer(t)

	// happy (0.6) intensified by very (x1.5); "vibrant" is not a
	// sentiment word, so the average covers one matched word.
	got := a.Analyze("very happy and vibrant").Sentiment
	if math.Abs(got-0.9) > 1e-9 {
		t.Errorf("sentiment = %v, want 0.9", got)
	}
}

func TestAnalyze_SentimentNegation(t *testing.T) {
	a := newTestAnalyzer(t)

	pos := a.Analyze("I love this piece").Sentiment
	neg := a.Analyze("I do not love this piece").Sentiment
	if pos <= neg {
		t.Errorf("expected sentiment antisymmetry: pos=%v neg=%v", pos, neg)
	}
	if neg >= 0 {
		t.Errorf("negated sentiment should be negative, got %v", neg)
	}
}

func TestAnalyze_SentimentContextMultipliers(t *testing.T) {
	a := newTestAnalyzer(t)

	plain := a.Analyze("beautiful landscape").Sentiment
	question := a.Analyze("beautiful landscape?").Sentiment
	exclaim := a.Analyze("beautiful landscape!").Sentiment

	if question >= plain {
		t.Errorf("question should soften sentiment: %v >= %v", question, plain)
	}
	if exclaim <= plain {
		t.Errorf("exclamation should amplify sentiment: %v <= %v", exclaim, plain)
	}

	conditional := a.Analyze("it would be beautiful").Sentiment
	if conditional >= plain {
		t.Errorf("conditional should hedge sentiment: %v >= %v", conditional, plain)
	}
}

func TestAnalyze_SentimentClamped(t *testing.T) {
	a := newTestAnalyzer(t)

	got := a.Analyze("extremely breathtaking!").Sentiment
	if got != 1 {
		t.Errorf("expected clamp to 1, got %v", got)
	}
}

func TestAnalyze_Specificity(t *testing.T) {
	a := newTestAnalyzer(t)

	vague := a.Analyze("something nice").Specificity
	specific := a.Analyze("signed original edition titled works").Specificity
	if vague >= 0.5 {
		t.Errorf("vague query specificity = %v, want < 0.5", vague)
	}
	if specific <= 0.5 {
		t.Errorf("specific query specificity = %v, want > 0.5", specific)
	}
}

func TestAnalyze_EmptyQuery(t *testing.T) {
	a := newTestAnalyzer(t)

	q := a.Analyze("")
	if len(q.Concepts) != 0 || len(q.Emotions) != 0 || len(q.Styles) != 0 ||
		len(q.Keywords) != 0 || len(q.Entities) != 0 {
		t.Errorf("expected empty extraction lists, got %+v", q)
	}
	if q.Intent != domain.IntentBrowse {
		t.Errorf("expected browse intent, got %s", q.Intent)
	}
	if q.Sentiment != 0 {
		t.Errorf("expected zero sentiment, got %v", q.Sentiment)
	}
}

func TestAnalyze_ComplexityBounds(t *testing.T) {
	a := newTestAnalyzer(t)

	long := "a very long and specific query about abstract expressionist landscape " +
		"paintings with vibrant color and dramatic light by named artists from the " +
		"postwar period signed and dated with provenance"
	q := a.Analyze(long)
	if q.Complexity < 0 || q.Complexity > 1 {
		t.Errorf("complexity out of range: %v", q.Complexity)
	}
	if q.Complexity != 1 {
		t.Errorf("expected saturated complexity for long query, got %v", q.Complexity)
	}
}

func TestAnalyze_Deduplication(t *testing.T) {
	a := newTestAnalyzer(t)

	q := a.Analyze("abstract abstract abstract")
	count := 0
	for _, c := range q.Concepts {
		if c == "abstract" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected deduplicated concepts, got %v", q.Concepts)
	}
}
