package analyzer

import (
	"strings"

	"github.com/galleria-cloud/galleria/internal/domain"
)

// sentiment computes the weighted lexicon sentiment of a query.
// Per matched word: the previous word may intensify the weight or flip its
// sign. The per-word average is then adjusted by contextual multipliers and
// clamped to [-1, 1].
func (a *Analyzer) sentiment(original string, tokens []string) float64 {
	var sum float64
	matched := 0

	for i, tok := range tokens {
		weight, ok := a.lex.Sentiment[tok]
		if !ok {
			continue
		}
		if i > 0 {
			prev := tokens[i-1]
			if mult, ok := a.lex.Intensifiers[prev]; ok {
				weight *= mult
			}
			if a.lex.Negations[prev] {
				weight = -weight
			}
		}
		sum += weight
		matched++
	}

	if matched == 0 {
		return 0
	}
	score := sum / float64(matched)
	score *= a.contextMultiplier(original, tokens)
	return domain.ClampSigned(score)
}

// contextMultiplier applies the phrasing adjustments: questions soften,
// exclamations amplify, comparative and conditional framing hedge, art-domain
// vocabulary slightly boosts confidence, long queries dilute.
func (a *Analyzer) contextMultiplier(original string, tokens []string) float64 {
	mult := 1.0
	if strings.Contains(original, "?") {
		mult *= 0.7
	}
	if strings.Contains(original, "!") {
		mult *= 1.3
	}
	if isComparative(tokens) {
		mult *= 0.8
	}
	if isConditional(tokens) {
		mult *= 0.6
	}
	if a.hasArtTerm(tokens) {
		mult *= 1.1
	}
	if len(tokens) > 20 {
		mult *= 0.9
	}
	return mult
}

func isComparative(tokens []string) bool {
	for _, tok := range tokens {
		switch tok {
		case "than", "versus", "vs", "compared":
			return true
		}
	}
	return false
}

func isConditional(tokens []string) bool {
	for _, tok := range tokens {
		switch tok {
		case "if", "would", "could", "unless", "might":
			return true
		}
	}
	return false
}

func (a *Analyzer) hasArtTerm(tokens []string) bool {
	for _, tok := range tokens {
		if a.lex.ArtTerms[tok] {
			return true
		}
	}
	return false
}
