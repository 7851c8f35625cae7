package search

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/galleria-cloud/galleria/internal/analyzer"
	"github.com/galleria-cloud/galleria/internal/cache"
	"github.com/galleria-cloud/galleria/internal/config"
	"github.com/galleria-cloud/galleria/internal/domain"
	"github.com/galleria-cloud/galleria/internal/lexicon"
	"github.com/galleria-cloud/galleria/internal/scorer"
	"github.com/galleria-cloud/galleria/internal/vision"
)

// mockArts implements ArtworkSource for tests.
type mockArts struct {
	candidatesFn func(ctx context.Context, filters *domain.Filters, limit int) ([]domain.Artwork, error)
	withImageFn  func(ctx context.Context) ([]domain.Artwork, error)
	recentFn     func(ctx context.Context, limit int) ([]domain.TrendingCandidate, error)
}

func (m *mockArts) FetchCandidates(ctx context.Context, filters *domain.Filters, limit int) ([]domain.Artwork, error) {
	if m.candidatesFn != nil {
		return m.candidatesFn(ctx, filters, limit)
	}
	return nil, nil
}

func (m *mockArts) FetchAllPublicWithImage(ctx context.Context) ([]domain.Artwork, error) {
	if m.withImageFn != nil {
		return m.withImageFn(ctx)
	}
	return nil, nil
}

func (m *mockArts) FetchRecent(ctx context.Context, limit int) ([]domain.TrendingCandidate, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, limit)
	}
	return nil, nil
}

// mockPrefs implements PreferenceSource.
type mockPrefs struct {
	getFn func(ctx context.Context, userID string) (*domain.Preferences, error)
}

func (m *mockPrefs) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

// mockMarket implements MarketAnalyzer with a fixed answer.
type mockMarket struct{}

func (mockMarket) Analyze(context.Context, *domain.Artwork) domain.MarketContext {
	return domain.MarketContext{
		TrendScore:           0.4,
		Demand:               domain.DemandMedium,
		PriceCompetitiveness: domain.PriceAtMarket,
		RarityScore:          0.5,
	}
}

// mockVision implements FeatureExtractor.
type mockVision struct {
	extractFn func(ctx context.Context, imageURL string) (*vision.Features, error)
}

func (m *mockVision) Extract(ctx context.Context, imageURL string) (*vision.Features, error) {
	if m.extractFn != nil {
		return m.extractFn(ctx, imageURL)
	}
	return &vision.Features{}, nil
}

type testDeps struct {
	arts   *mockArts
	prefs  *mockPrefs
	vision *mockVision
	cache  *cache.ResultCache
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()
	lex := lexicon.Default()
	deps := &testDeps{
		arts:   &mockArts{},
		prefs:  &mockPrefs{},
		vision: &mockVision{},
		cache:  cache.New(time.Minute, nil),
	}
	cfg := config.SearchConfig{}
	wrapper := config.Config{Search: cfg, HTTP: config.HTTPConfig{Port: 8080}, Database: config.DatabaseConfig{Addrs: []string{"x"}}}
	wrapper.ApplyDefaults()

	svc, err := New(
		analyzer.New(lex), scorer.New(), lex,
		mockMarket{}, deps.vision, deps.arts, deps.prefs, deps.cache,
		wrapper.Search, zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc, deps
}

// abstractCorpus returns candidates where art-1 and art-2 match an
// "abstract art" query strongly and art-3 not at all.
func abstractCorpus() []domain.Artwork {
	return []domain.Artwork{
		{
			ID:          "art-1",
			Title:       "Abstract Composition",
			Description: "bold abstract art with geometric shapes",
			Medium:      "oil",
			Genre:       "abstract",
			Price:       1000,
			Year:        2020,
			CreatedAt:   time.Now().Add(-48 * time.Hour),
		},
		{
			ID:          "art-2",
			Title:       "Abstract Study in Blue",
			Description: "non-representational abstract art",
			Medium:      "oil",
			Genre:       "abstract",
			Price:       1300,
			Year:        2022,
			CreatedAt:   time.Now().Add(-96 * time.Hour),
		},
		{
			ID:          "art-3",
			Title:       "Portrait of a Violinist",
			Description: "classical realist portrait",
			Medium:      "charcoal",
			Genre:       "portrait",
			Price:       5000,
			Year:        1998,
			CreatedAt:   time.Now().Add(-2000 * time.Hour),
		},
	}
}
