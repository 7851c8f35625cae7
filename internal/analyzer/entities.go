package analyzer

import "regexp"

// Entity capture patterns. These run against the original (cased) query so
// that proper-noun capitalization carries signal.
var (
	// "by Claude Monet", "artist Frida Kahlo", including lowercase
	// name particles (van, de, der, ...).
	artistPattern = regexp.MustCompile(
		`\b(?:by|artist)\s+([A-Z][a-zA-Z'\-]+(?:\s+(?:van|von|de|da|del|der|le|la)\s+[A-Z][a-zA-Z'\-]+|\s+[A-Z][a-zA-Z'\-]+)*)`,
	)

	// "from Paris", "in New York".
	locationPattern = regexp.MustCompile(
		`\b(?:from|in)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`,
	)

	// Capitalized movement names: "Impressionism", "Cubism".
	movementPattern = regexp.MustCompile(`\b([A-Z][a-z]+ism)\b`)
)

// extractEntities captures artist names, locations, and movement names.
func extractEntities(text string) []string {
	var out []string
	for _, pat := range []*regexp.Regexp{artistPattern, locationPattern, movementPattern} {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			if len(m) > 1 && m[1] != "" {
				out = append(out, m[1])
			}
		}
	}
	return dedup(out)
}
