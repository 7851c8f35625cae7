package apiclient

// Range bounds a numeric filter on the wire. Zero bounds mean unbounded.
type Range struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

// Filters narrow the candidate set before ranking.
type Filters struct {
	Price *Range `json:"price,omitempty"`
	Year  *Range `json:"year,omitempty"`
	Size  *Range `json:"size_cm,omitempty"`

	Mediums    []string `json:"mediums,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Artists    []string `json:"artists,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Moods      []string `json:"moods,omitempty"`
	Styles     []string `json:"styles,omitempty"`
	Techniques []string `json:"techniques,omitempty"`
	Subjects   []string `json:"subjects,omitempty"`
	Periods    []string `json:"periods,omitempty"`
	Movements  []string `json:"movements,omitempty"`

	Availability string `json:"availability,omitempty"`
	RarityTier   string `json:"rarity_tier,omitempty"`
}

// Preferences are a user's stored favorites.
type Preferences struct {
	FavoriteMediums []string `json:"favorite_mediums,omitempty"`
	FavoriteGenres  []string `json:"favorite_genres,omitempty"`
	FavoriteStyles  []string `json:"favorite_styles,omitempty"`
	FavoriteColors  []string `json:"favorite_colors,omitempty"`
}

// SearchContext carries caller identity and taste signals into scoring.
type SearchContext struct {
	UserID        string       `json:"user_id,omitempty"`
	Preferences   *Preferences `json:"preferences,omitempty"`
	BudgetRange   *Range       `json:"budget_range,omitempty"`
	Intent        string       `json:"intent,omitempty"`
	CurrentTrends []string     `json:"current_trends,omitempty"`
	CollectionIDs []string     `json:"collection_ids,omitempty"`
}

// SearchRequest is a text search query.
type SearchRequest struct {
	Query   string         `json:"query"`
	Filters *Filters       `json:"filters,omitempty"`
	Context *SearchContext `json:"context,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

// ImageSearchRequest is a visual similarity query.
type ImageSearchRequest struct {
	ImageURL string         `json:"image_url"`
	Filters  *Filters       `json:"filters,omitempty"`
	Context  *SearchContext `json:"context,omitempty"`
}

// MoodSearchRequest is a mood-templated query.
type MoodSearchRequest struct {
	Mood    string         `json:"mood"`
	Filters *Filters       `json:"filters,omitempty"`
	Context *SearchContext `json:"context,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

// ColorSearchRequest is a color-templated query.
type ColorSearchRequest struct {
	Color   string         `json:"color"`
	Filters *Filters       `json:"filters,omitempty"`
	Context *SearchContext `json:"context,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

// StyleSearchRequest is a style-templated query.
type StyleSearchRequest struct {
	Style   string         `json:"style"`
	Filters *Filters       `json:"filters,omitempty"`
	Context *SearchContext `json:"context,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

// Match explains which artwork field matched and how strongly.
type Match struct {
	Field string   `json:"field"`
	Score float64  `json:"score"`
	Terms []string `json:"terms,omitempty"`
}

// Market summarizes market conditions for one result.
type Market struct {
	TrendScore           float64 `json:"trend_score"`
	Demand               string  `json:"demand"`
	PriceCompetitiveness string  `json:"price_competitiveness"`
	RarityScore          float64 `json:"rarity_score"`
}

// Artwork is a catalog entry as returned in results.
type Artwork struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Medium       string  `json:"medium,omitempty"`
	Genre        string  `json:"genre,omitempty"`
	Style        string  `json:"style,omitempty"`
	Subject      string  `json:"subject,omitempty"`
	Price        float64 `json:"price,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	Year         int     `json:"year,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	Availability string  `json:"availability,omitempty"`
	ArtistID     string  `json:"artist_id,omitempty"`
	ArtistName   string  `json:"artist_name,omitempty"`
}

// Result is one scored artwork in a ranked result list.
type Result struct {
	Artwork         Artwork  `json:"artwork"`
	RelevanceScore  float64  `json:"relevance_score"`
	SemanticMatches []Match  `json:"semantic_matches,omitempty"`
	SimilarArtworks []string `json:"similar_artworks,omitempty"`
	Market          Market   `json:"market"`
	VisualScore     float64  `json:"visual_score"`
	ConceptualScore float64  `json:"conceptual_score"`
	EmotionalScore  float64  `json:"emotional_score"`
	CulturalContext []string `json:"cultural_context,omitempty"`
}

// ResultList is a ranked page of results.
type ResultList struct {
	Items []Result `json:"items"`
	Total int      `json:"total"`
}

type termList struct {
	Items []string `json:"items"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
