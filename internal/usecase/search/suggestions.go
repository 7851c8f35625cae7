package search

import "context"

const defaultSuggestionLimit = 10

// GetSearchSuggestions expands the extracted vocabulary of a partial query
// into complete suggested searches.
func (s *Service) GetSearchSuggestions(_ context.Context, query string, limit int) []string {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	q := s.analyzer.Analyze(query)

	var out []string
	seen := make(map[string]bool)
	add := func(suggestion string) {
		if !seen[suggestion] && len(out) < limit {
			seen[suggestion] = true
			out = append(out, suggestion)
		}
	}
	for _, c := range q.Concepts {
		add(c + " art")
	}
	for _, st := range q.Styles {
		add(st + " painting")
	}
	for _, e := range q.Emotions {
		add("artwork that feels " + e)
	}
	return out
}
