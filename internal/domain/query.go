package domain

// Intent classifies what the user is trying to accomplish with a search.
type Intent string

// Recognized search intents. IntentBrowse is the default.
const (
	IntentBrowse     Intent = "browse"
	IntentResearch   Intent = "research"
	IntentPurchase   Intent = "purchase"
	IntentGift       Intent = "gift"
	IntentInvestment Intent = "investment"
)

// SemanticQuery is the structured interpretation of a raw query.
// Built once per request by the analyzer; immutable afterwards.
type SemanticQuery struct {
	Original        string
	Concepts        []string
	Emotions        []string
	Styles          []string
	VisualElements  []string
	CulturalContext []string
	TemporalContext []string
	Keywords        []string
	Entities        []string
	Intent          Intent

	Sentiment   float64 // [-1, 1]
	Complexity  float64 // [0, 1]
	Specificity float64 // [0, 1]
}
