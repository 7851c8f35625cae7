package search

import (
	"context"

	"github.com/galleria-cloud/galleria/internal/domain"
	"github.com/galleria-cloud/galleria/internal/vision"
)

// ArtworkSource defines the artwork store contract for search operations.
type ArtworkSource interface {
	FetchCandidates(ctx context.Context, filters *domain.Filters, limit int) ([]domain.Artwork, error)
	FetchAllPublicWithImage(ctx context.Context) ([]domain.Artwork, error)
	FetchRecent(ctx context.Context, limit int) ([]domain.TrendingCandidate, error)
}

// PreferenceSource resolves stored taste profiles for scoring adjustments.
type PreferenceSource interface {
	GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error)
}

// ResultCache memoizes full result sets per request signature.
type ResultCache interface {
	Get(query string, filters *domain.Filters, sctx *domain.SearchContext) ([]domain.Result, bool)
	Put(query string, filters *domain.Filters, sctx *domain.SearchContext, results []domain.Result)
}

// MarketAnalyzer derives per-artwork market signals.
type MarketAnalyzer interface {
	Analyze(ctx context.Context, a *domain.Artwork) domain.MarketContext
}

// FeatureExtractor turns an artwork image into visual features.
type FeatureExtractor interface {
	Extract(ctx context.Context, imageURL string) (*vision.Features, error)
}
