package search

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/galleria-cloud/galleria/internal/domain"
	"github.com/galleria-cloud/galleria/internal/textmatch"
)

const (
	defaultTrendingLimit = 10
	trendingFetchLimit   = 100

	// Source-field weights for extracted terms.
	titleWeight      = 0.8
	descWeight       = 0.6
	structuredWeight = 0.7

	maxGramWords = 3
	minGramChars = 3
	maxGramChars = 40

	recencyHalfLifeDays = 30
)

// GetTrendingSearches derives the currently popular search terms from recent
// artwork engagement. Falls back to the fixed default list when no recent
// data exists or the store is unreachable.
func (s *Service) GetTrendingSearches(ctx context.Context, limit int) []string {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	recent, err := s.arts.FetchRecent(ctx, trendingFetchLimit)
	if err != nil {
		s.degrade("trending", "fetch recent", err)
		return s.defaultTrending(limit)
	}
	if len(recent) == 0 {
		return s.defaultTrending(limit)
	}

	scores := make(map[string]float64)
	now := time.Now()
	for i := range recent {
		c := &recent[i]
		weight := engagementRecency(c, now)
		if weight <= 0 {
			continue
		}
		s.accumulateGrams(scores, c.Title, weight*titleWeight)
		s.accumulateGrams(scores, c.Description, weight*descWeight)
		for _, field := range []string{c.Genre, c.Medium, c.Subject} {
			s.accumulateGrams(scores, field, weight*structuredWeight)
		}
	}
	if len(scores) == 0 {
		return s.defaultTrending(limit)
	}

	terms := make([]string, 0, len(scores))
	for term := range scores {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if scores[terms[i]] != scores[terms[j]] {
			return scores[terms[i]] > scores[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

// accumulateGrams adds weighted 1..3-word n-grams of text into scores,
// skipping stop words and out-of-bound lengths.
func (s *Service) accumulateGrams(scores map[string]float64, text string, weight float64) {
	tokens := textmatch.Tokenize(text)
	for n := 1; n <= maxGramWords; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := tokens[i : i+n]
			if !s.gramUsable(gram) {
				continue
			}
			term := strings.Join(gram, " ")
			if len(term) < minGramChars || len(term) > maxGramChars {
				continue
			}
			scores[term] += weight
		}
	}
}

func (s *Service) gramUsable(gram []string) bool {
	for _, word := range gram {
		if len(word) < 3 || s.lex.StopWords[word] {
			return false
		}
	}
	return true
}

// engagementRecency weights a candidate by raw engagement decayed by age.
func engagementRecency(c *domain.TrendingCandidate, now time.Time) float64 {
	engagement := float64(c.Views + 2*c.Likes)
	if engagement <= 0 {
		return 0
	}
	days := now.Sub(c.CreatedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return engagement * math.Exp(-days/recencyHalfLifeDays)
}

func (s *Service) defaultTrending(limit int) []string {
	defaults := s.lex.DefaultTrending
	if len(defaults) > limit {
		defaults = defaults[:limit]
	}
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}
