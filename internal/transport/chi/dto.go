package chi

import (
	"github.com/galleria-cloud/galleria/internal/domain"
)

// rangeDTO is a numeric range in a request body. Zero bounds mean unbounded.
type rangeDTO struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

// filtersDTO mirrors domain.Filters on the wire. Absent fields stay nil and
// are simply not applied.
type filtersDTO struct {
	Price *rangeDTO `json:"price,omitempty"`
	Year  *rangeDTO `json:"year,omitempty"`
	Size  *rangeDTO `json:"size_cm,omitempty"`

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

// contextDTO mirrors domain.SearchContext on the wire.
type contextDTO struct {
	UserID        string          `json:"user_id,omitempty"`
	Preferences   *preferencesDTO `json:"preferences,omitempty"`
	BudgetRange   *rangeDTO       `json:"budget_range,omitempty"`
	Intent        string          `json:"intent,omitempty"`
	CurrentTrends []string        `json:"current_trends,omitempty"`
	CollectionIDs []string        `json:"collection_ids,omitempty"`
}

type preferencesDTO struct {
	FavoriteMediums []string `json:"favorite_mediums,omitempty"`
	FavoriteGenres  []string `json:"favorite_genres,omitempty"`
	FavoriteStyles  []string `json:"favorite_styles,omitempty"`
	FavoriteColors  []string `json:"favorite_colors,omitempty"`
}

type searchRequest struct {
	Query   string      `json:"query"`
	Filters *filtersDTO `json:"filters,omitempty"`
	Context *contextDTO `json:"context,omitempty"`
	Limit   int         `json:"limit,omitempty"`
}

type imageSearchRequest struct {
	ImageURL string      `json:"image_url"`
	Filters  *filtersDTO `json:"filters,omitempty"`
	Context  *contextDTO `json:"context,omitempty"`
}

type templatedSearchRequest struct {
	Mood    string      `json:"mood,omitempty"`
	Color   string      `json:"color,omitempty"`
	Style   string      `json:"style,omitempty"`
	Filters *filtersDTO `json:"filters,omitempty"`
	Context *contextDTO `json:"context,omitempty"`
	Limit   int         `json:"limit,omitempty"`
}

type matchDTO struct {
	Field string   `json:"field"`
	Score float64  `json:"score"`
	Terms []string `json:"terms,omitempty"`
}

type marketDTO struct {
	TrendScore           float64 `json:"trend_score"`
	Demand               string  `json:"demand"`
	PriceCompetitiveness string  `json:"price_competitiveness"`
	RarityScore          float64 `json:"rarity_score"`
}

type artworkDTO struct {
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

type resultDTO struct {
	Artwork         artworkDTO `json:"artwork"`
	RelevanceScore  float64    `json:"relevance_score"`
	SemanticMatches []matchDTO `json:"semantic_matches,omitempty"`
	SimilarArtworks []string   `json:"similar_artworks,omitempty"`
	Market          marketDTO  `json:"market"`
	VisualScore     float64    `json:"visual_score"`
	ConceptualScore float64    `json:"conceptual_score"`
	EmotionalScore  float64    `json:"emotional_score"`
	CulturalContext []string   `json:"cultural_context,omitempty"`
}

type resultListResponse struct {
	Items []resultDTO `json:"items"`
	Total int         `json:"total"`
}

type termListResponse struct {
	Items []string `json:"items"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func filtersFromDTO(f *filtersDTO) *domain.Filters {
	if f == nil {
		return nil
	}
	out := &domain.Filters{
		Mediums:      f.Mediums,
		Genres:       f.Genres,
		Artists:      f.Artists,
		Colors:       f.Colors,
		Moods:        f.Moods,
		Styles:       f.Styles,
		Techniques:   f.Techniques,
		Subjects:     f.Subjects,
		Periods:      f.Periods,
		Movements:    f.Movements,
		Availability: f.Availability,
		RarityTier:   f.RarityTier,
	}
	if f.Price != nil {
		out.Price = &domain.PriceRange{Min: f.Price.Min, Max: f.Price.Max}
	}
	if f.Year != nil {
		out.Year = &domain.YearRange{Min: int(f.Year.Min), Max: int(f.Year.Max)}
	}
	if f.Size != nil {
		out.Size = &domain.SizeRange{MinCM: f.Size.Min, MaxCM: f.Size.Max}
	}
	return out
}

func contextFromDTO(c *contextDTO) *domain.SearchContext {
	if c == nil {
		return nil
	}
	out := &domain.SearchContext{
		UserID:        c.UserID,
		Intent:        domain.Intent(c.Intent),
		CurrentTrends: c.CurrentTrends,
		CollectionIDs: c.CollectionIDs,
	}
	if c.Preferences != nil {
		out.Preferences = &domain.Preferences{
			FavoriteMediums: c.Preferences.FavoriteMediums,
			FavoriteGenres:  c.Preferences.FavoriteGenres,
			FavoriteStyles:  c.Preferences.FavoriteStyles,
			FavoriteColors:  c.Preferences.FavoriteColors,
		}
	}
	if c.BudgetRange != nil {
		out.BudgetRange = &domain.BudgetRange{Min: c.BudgetRange.Min, Max: c.BudgetRange.Max}
	}
	return out
}

func resultToDTO(r *domain.Result) resultDTO {
	matches := make([]matchDTO, len(r.SemanticMatches))
	for i, m := range r.SemanticMatches {
		matches[i] = matchDTO{Field: m.Field, Score: m.Score, Terms: m.Terms}
	}
	return resultDTO{
		Artwork: artworkDTO{
			ID:           r.Artwork.ID,
			Title:        r.Artwork.Title,
			Description:  r.Artwork.Description,
			Medium:       r.Artwork.Medium,
			Genre:        r.Artwork.Genre,
			Style:        r.Artwork.Style,
			Subject:      r.Artwork.Subject,
			Price:        r.Artwork.Price,
			Currency:     r.Artwork.Currency,
			Year:         r.Artwork.Year,
			ImageURL:     r.Artwork.ImageURL,
			Availability: r.Artwork.Availability,
			ArtistID:     r.Artwork.ArtistID,
			ArtistName:   r.Artwork.ArtistName,
		},
		RelevanceScore:  r.RelevanceScore,
		SemanticMatches: matches,
		SimilarArtworks: r.SimilarArtworks,
		Market: marketDTO{
			TrendScore:           r.Market.TrendScore,
			Demand:               string(r.Market.Demand),
			PriceCompetitiveness: string(r.Market.PriceCompetitiveness),
			RarityScore:          r.Market.RarityScore,
		},
		VisualScore:     r.VisualScore,
		ConceptualScore: r.ConceptualScore,
		EmotionalScore:  r.EmotionalScore,
		CulturalContext: r.CulturalContext,
	}
}

func resultsToResponse(results []domain.Result) resultListResponse {
	items := make([]resultDTO, len(results))
	for i := range results {
		items[i] = resultToDTO(&results[i])
	}
	return resultListResponse{Items: items, Total: len(items)}
}
