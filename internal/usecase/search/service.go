// Package search is the orchestrator composing query analysis, candidate
// fetch, scoring, enrichment, and the result cache into the public search API.
package search

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/galleria-cloud/galleria/internal/analyzer"
	"github.com/galleria-cloud/galleria/internal/config"
	"github.com/galleria-cloud/galleria/internal/domain"
	"github.com/galleria-cloud/galleria/internal/lexicon"
	"github.com/galleria-cloud/galleria/internal/metrics"
	"github.com/galleria-cloud/galleria/internal/scorer"
	"github.com/galleria-cloud/galleria/internal/similar"
)

// visualThreshold is the minimum visual-vocabulary match for image search.
const visualThreshold = 0.3

// Service orchestrates semantic artwork search.
//
// Upstream failures never surface to callers: every operation degrades to an
// empty list and logs the cause, so an empty result is indistinguishable from
// "no matches" by design of the public contract.
type Service struct {
	analyzer *analyzer.Analyzer
	scorer   *scorer.Scorer
	lex      *lexicon.Lexicon
	market   MarketAnalyzer
	vision   FeatureExtractor
	arts     ArtworkSource
	prefs    PreferenceSource
	cache    ResultCache

	pool *ants.Pool
	log  *zap.Logger
	cfg  config.SearchConfig
}

// New creates the search service and its enrichment worker pool.
func New(
	an *analyzer.Analyzer,
	sc *scorer.Scorer,
	lex *lexicon.Lexicon,
	market MarketAnalyzer,
	extractor FeatureExtractor,
	arts ArtworkSource,
	prefs PreferenceSource,
	cache ResultCache,
	cfg config.SearchConfig,
	log *zap.Logger,
) (*Service, error) {
	pool, err := ants.NewPool(cfg.EnrichWorkers)
	if err != nil {
		return nil, fmt.Errorf("create enrich pool: %w", err)
	}
	return &Service{
		analyzer: an,
		scorer:   sc,
		lex:      lex,
		market:   market,
		vision:   extractor,
		arts:     arts,
		prefs:    prefs,
		cache:    cache,
		pool:     pool,
		log:      log,
		cfg:      cfg,
	}, nil
}

// Close releases the enrichment worker pool.
func (s *Service) Close() {
	s.pool.Release()
}

// Search runs the full text-search pipeline and returns up to limit results,
// best first.
func (s *Service) Search(ctx context.Context, query string, filters *domain.Filters, sctx *domain.SearchContext, limit int) []domain.Result {
	defer s.observe("text", time.Now())
	limit = s.clampLimit(limit)

	sctx = s.resolvePreferences(ctx, sctx)

	if cached, ok := s.cache.Get(query, filters, sctx); ok {
		metrics.SearchResultsReturned.WithLabelValues("text").Observe(float64(len(cached)))
		metrics.SearchRequestsTotal.WithLabelValues("text", "ok").Inc()
		return capResults(cached, limit)
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	q := s.analyzer.Analyze(query)

	candidates, err := s.arts.FetchCandidates(ctx, filters, limit*s.cfg.CandidateMultiplier)
	if err != nil {
		s.degrade("text", "fetch candidates", err)
		return nil
	}

	results := s.rank(ctx, &q, candidates, sctx)

	s.cache.Put(query, filters, sctx, results)
	metrics.SearchResultsReturned.WithLabelValues("text").Observe(float64(len(results)))
	metrics.SearchRequestsTotal.WithLabelValues("text", "ok").Inc()
	return capResults(results, limit)
}

// SearchByImage matches the corpus against the visual vocabulary of one
// image. Full scan of artworks carrying images; results are uncached and
// unlimited, ordered by visual similarity.
func (s *Service) SearchByImage(ctx context.Context, imageURL string, filters *domain.Filters, sctx *domain.SearchContext) []domain.Result {
	defer s.observe("image", time.Now())

	sctx = s.resolvePreferences(ctx, sctx)

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	feats, err := s.vision.Extract(ctx, imageURL)
	if err != nil {
		metrics.ImageFetchErrorsTotal.Inc()
		s.degrade("image", "extract features", err)
		return nil
	}

	q := s.analyzer.Analyze(feats.Vocabulary().QueryTerms())

	candidates, err := s.arts.FetchAllPublicWithImage(ctx)
	if err != nil {
		s.degrade("image", "fetch candidates", err)
		return nil
	}

	var results []domain.Result
	var matched []domain.Artwork
	for i := range candidates {
		if !filters.Match(&candidates[i]) {
			continue
		}
		scored := s.scorer.Score(&q, &candidates[i], sctx)
		if scored.Relevance <= visualThreshold {
			continue
		}
		r := s.buildResult(&q, &candidates[i], scored)
		// The query itself is the visual vocabulary, so its relevance is the
		// visual similarity.
		r.VisualScore = scored.Relevance
		results = append(results, r)
		matched = append(matched, candidates[i])
	}
	s.enrich(ctx, results, matched)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].VisualScore > results[j].VisualScore
	})
	metrics.SearchResultsReturned.WithLabelValues("image").Observe(float64(len(results)))
	metrics.SearchRequestsTotal.WithLabelValues("image", "ok").Inc()
	return results
}

// SearchByMood delegates to Search with a mood-templated query.
func (s *Service) SearchByMood(ctx context.Context, mood string, filters *domain.Filters, sctx *domain.SearchContext, limit int) []domain.Result {
	return s.Search(ctx, "artwork that feels "+mood, filters, sctx, limit)
}

// SearchByColor delegates to Search with a color-templated query.
func (s *Service) SearchByColor(ctx context.Context, color string, filters *domain.Filters, sctx *domain.SearchContext, limit int) []domain.Result {
	return s.Search(ctx, color+" artwork", filters, sctx, limit)
}

// SearchByStyle delegates to Search with a style-templated query.
func (s *Service) SearchByStyle(ctx context.Context, style string, filters *domain.Filters, sctx *domain.SearchContext, limit int) []domain.Result {
	return s.Search(ctx, style+" style art", filters, sctx, limit)
}

// rank scores candidates, drops everything at or under the relevance floor,
// enriches survivors, and sorts best first.
func (s *Service) rank(ctx context.Context, q *domain.SemanticQuery, candidates []domain.Artwork, sctx *domain.SearchContext) []domain.Result {
	var results []domain.Result
	for i := range candidates {
		scored := s.scorer.Score(q, &candidates[i], sctx)
		if scored.Relevance <= scorer.MinRelevance {
			continue
		}
		results = append(results, s.buildResult(q, &candidates[i], scored))
	}

	s.enrich(ctx, results, candidates)

	// Parallel enrichment finishes in arbitrary order; the sort restores a
	// deterministic ranking.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}

func (s *Service) buildResult(q *domain.SemanticQuery, a *domain.Artwork, scored scorer.Scored) domain.Result {
	return domain.Result{
		Artwork:         *a,
		RelevanceScore:  scored.Relevance,
		SemanticMatches: scored.Matches,
		ConceptualScore: scored.Conceptual,
		EmotionalScore:  scored.Emotional,
		VisualScore:     scored.Visual,
		CulturalContext: q.CulturalContext,
	}
}

// enrich attaches market context and similar-artwork ids to every result,
// fanned out over the worker pool. Each task writes only its own slot.
func (s *Service) enrich(ctx context.Context, results []domain.Result, candidates []domain.Artwork) {
	var wg sync.WaitGroup
	for i := range results {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			r := &results[i]
			r.Market = s.market.Analyze(ctx, &r.Artwork)
			r.SimilarArtworks = similar.TopSimilar(&r.Artwork, candidates)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool saturated or released; fall back to inline execution.
			task()
		}
	}
	wg.Wait()
}

// resolvePreferences fills in the stored profile for identified callers that
// did not supply one. The caller's context value is never mutated.
func (s *Service) resolvePreferences(ctx context.Context, sctx *domain.SearchContext) *domain.SearchContext {
	if sctx == nil || sctx.UserID == "" || sctx.Preferences != nil {
		return sctx
	}
	prefs, err := s.prefs.GetPreferences(ctx, sctx.UserID)
	if err != nil {
		s.log.Warn("preference lookup failed", zap.String("user_id", sctx.UserID), zap.Error(err))
		return sctx
	}
	if prefs == nil {
		return sctx
	}
	resolved := *sctx
	resolved.Preferences = prefs
	return &resolved
}

func (s *Service) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(s.cfg.RequestTimeoutSec)*time.Second)
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return limit
}

func (s *Service) degrade(kind, op string, err error) {
	s.log.Warn("search degraded to empty result",
		zap.String("kind", kind), zap.String("op", op), zap.Error(err))
	metrics.SearchRequestsTotal.WithLabelValues(kind, "degraded").Inc()
}

func (s *Service) observe(kind string, start time.Time) {
	metrics.SearchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// capResults returns at most limit results as an independent copy. The source
// may be the cached entry's backing array, which callers must not be able to
// mutate through the returned slice.
func capResults(results []domain.Result, limit int) []domain.Result {
	if len(results) > limit {
		results = results[:limit]
	}
	if len(results) == 0 {
		return nil
	}
	out := make([]domain.Result, len(results))
	copy(out, results)
	return out
}
