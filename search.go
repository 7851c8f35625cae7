package galleria

import (
	"context"

	"github.com/galleria-cloud/galleria/internal/domain"
	searchuc "github.com/galleria-cloud/galleria/internal/usecase/search"
)

// SearchService executes search queries against the artwork store.
type SearchService struct {
	svc *searchuc.Service
}

// Range bounds a numeric filter. Zero Max means unbounded.
type Range struct {
	Min float64
	Max float64
}

// Filters narrow the candidate set before ranking. Empty fields are not
// applied.
type Filters struct {
	Price *Range
	Year  *Range
	Size  *Range // longest dimension, centimeters

	Mediums    []string
	Genres     []string
	Artists    []string
	Colors     []string
	Moods      []string
	Styles     []string
	Techniques []string
	Subjects   []string
	Periods    []string
	Movements  []string

	Availability string
	RarityTier   string
}

// Preferences are a user's stored favorites.
type Preferences struct {
	FavoriteMediums []string
	FavoriteGenres  []string
	FavoriteStyles  []string
	FavoriteColors  []string
}

// Context carries caller identity and taste signals into scoring.
type Context struct {
	UserID        string
	Preferences   *Preferences
	Budget        *Range
	Intent        string // browse, research, purchase, gift, investment
	CurrentTrends []string
	CollectionIDs []string
}

// SearchOptions configures a search query.
type SearchOptions struct {
	Filters *Filters
	Context *Context
	Limit   int
}

// Match explains which artwork field matched and how strongly.
type Match struct {
	Field string
	Score float64
	Terms []string
}

// Market summarizes market conditions for one result.
type Market struct {
	TrendScore           float64
	Demand               string
	PriceCompetitiveness string
	RarityScore          float64
}

// Result is one scored artwork in a ranked result list.
type Result struct {
	Artwork         Artwork
	RelevanceScore  float64
	SemanticMatches []Match
	SimilarArtworks []string
	Market          Market
	VisualScore     float64
	ConceptualScore float64
	EmotionalScore  float64
	CulturalContext []string
}

// Query executes a text search and returns ranked results, best first.
func (s *SearchService) Query(ctx context.Context, query string, opts *SearchOptions) []Result {
	if opts == nil {
		opts = &SearchOptions{}
	}
	results := s.svc.Search(ctx, query, toInternalFilters(opts.Filters), toInternalContext(opts.Context), opts.Limit)
	return fromResults(results)
}

// ByImage finds artworks visually similar to the image at imageURL.
func (s *SearchService) ByImage(ctx context.Context, imageURL string, opts *SearchOptions) []Result {
	if opts == nil {
		opts = &SearchOptions{}
	}
	results := s.svc.SearchByImage(ctx, imageURL, toInternalFilters(opts.Filters), toInternalContext(opts.Context))
	return fromResults(results)
}

// ByMood searches for artworks matching an emotional mood.
func (s *SearchService) ByMood(ctx context.Context, mood string, opts *SearchOptions) []Result {
	if opts == nil {
		opts = &SearchOptions{}
	}
	results := s.svc.SearchByMood(ctx, mood, toInternalFilters(opts.Filters), toInternalContext(opts.Context), opts.Limit)
	return fromResults(results)
}

// ByColor searches for artworks in a dominant color.
func (s *SearchService) ByColor(ctx context.Context, color string, opts *SearchOptions) []Result {
	if opts == nil {
		opts = &SearchOptions{}
	}
	results := s.svc.SearchByColor(ctx, color, toInternalFilters(opts.Filters), toInternalContext(opts.Context), opts.Limit)
	return fromResults(results)
}

// ByStyle searches for artworks in an artistic style.
func (s *SearchService) ByStyle(ctx context.Context, style string, opts *SearchOptions) []Result {
	if opts == nil {
		opts = &SearchOptions{}
	}
	results := s.svc.SearchByStyle(ctx, style, toInternalFilters(opts.Filters), toInternalContext(opts.Context), opts.Limit)
	return fromResults(results)
}

// Suggestions expands a partial query into related search terms.
func (s *SearchService) Suggestions(ctx context.Context, query string, limit int) []string {
	return s.svc.GetSearchSuggestions(ctx, query, limit)
}

// Trending returns the currently trending search terms.
func (s *SearchService) Trending(ctx context.Context, limit int) []string {
	return s.svc.GetTrendingSearches(ctx, limit)
}

func toInternalFilters(f *Filters) *domain.Filters {
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

func toInternalContext(c *Context) *domain.SearchContext {
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
	if c.Budget != nil {
		out.BudgetRange = &domain.BudgetRange{Min: c.Budget.Min, Max: c.Budget.Max}
	}
	return out
}

func fromResults(results []domain.Result) []Result {
	out := make([]Result, len(results))
	for i := range results {
		r := &results[i]
		matches := make([]Match, len(r.SemanticMatches))
		for j, m := range r.SemanticMatches {
			matches[j] = Match{Field: m.Field, Score: m.Score, Terms: m.Terms}
		}
		out[i] = Result{
			Artwork:         fromInternalArtwork(&r.Artwork),
			RelevanceScore:  r.RelevanceScore,
			SemanticMatches: matches,
			SimilarArtworks: r.SimilarArtworks,
			Market: Market{
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
	return out
}
