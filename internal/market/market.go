// Package market derives heuristic market signals for artworks: trend,
// demand, price competitiveness, and rarity. The formulas are deterministic
// and hand-tuned; there is no model behind them.
package market

import (
	"context"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/galleria-cloud/galleria/internal/domain"
)

// Trend weights and decay.
const (
	engagementWeight = 0.7
	recencyWeight    = 0.3
	recencyHalfLife  = 30.0 // days
)

// Demand thresholds on the inquiry rate.
const (
	highDemandRate   = 0.10
	mediumDemandRate = 0.05
)

// Price deviation thresholds against the comparable mean.
const priceDeviationBand = 0.20

// comparableSimThreshold keeps only sufficiently similar comparables.
const comparableSimThreshold = 0.3

// ComparableSource fetches the price baseline set for an artwork.
type ComparableSource interface {
	FetchComparable(ctx context.Context, medium, genre, style string, limit int) ([]domain.Comparable, error)
}

// Analyzer computes per-artwork market context.
type Analyzer struct {
	comparables     ComparableSource
	comparableLimit int
	logger          *zap.Logger
	now             func() time.Time
}

// New creates a market analyzer. comparableLimit bounds the secondary fetch.
func New(comparables ComparableSource, comparableLimit int, logger *zap.Logger) *Analyzer {
	if comparableLimit <= 0 {
		comparableLimit = 50
	}
	return &Analyzer{
		comparables:     comparables,
		comparableLimit: comparableLimit,
		logger:          logger,
		now:             time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (m *Analyzer) WithClock(now func() time.Time) *Analyzer {
	m.now = now
	return m
}

// Analyze computes the full market context for one artwork. A failed
// comparable fetch degrades to the fixed price thresholds.
func (m *Analyzer) Analyze(ctx context.Context, a *domain.Artwork) domain.MarketContext {
	return domain.MarketContext{
		TrendScore:           m.TrendScore(a),
		Demand:               DemandLevel(a),
		PriceCompetitiveness: m.priceCompetitiveness(ctx, a),
		RarityScore:          RarityScore(a),
	}
}

// TrendScore blends engagement rate with exponential recency decay.
func (m *Analyzer) TrendScore(a *domain.Artwork) float64 {
	views := a.Views
	if views < 1 {
		views = 1
	}
	engagement := float64(a.Likes+a.Inquiries) / float64(views)
	days := m.now().Sub(a.CreatedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	recency := math.Exp(-days / recencyHalfLife)
	return domain.Clamp01(engagementWeight*engagement + recencyWeight*recency)
}

// DemandLevel buckets the inquiry rate.
func DemandLevel(a *domain.Artwork) domain.DemandLevel {
	if a.Views <= 0 {
		return domain.DemandLow
	}
	rate := float64(a.Inquiries) / float64(a.Views)
	switch {
	case rate > highDemandRate:
		return domain.DemandHigh
	case rate > mediumDemandRate:
		return domain.DemandMedium
	default:
		return domain.DemandLow
	}
}

// priceCompetitiveness compares the price against the comparable-set mean,
// falling back to fixed thresholds when no comparables exist.
func (m *Analyzer) priceCompetitiveness(ctx context.Context, a *domain.Artwork) domain.PriceCompetitiveness {
	comparables, err := m.comparables.FetchComparable(ctx, a.Medium, a.Genre, a.Style, m.comparableLimit)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("Comparable fetch failed, using fixed price thresholds",
				zap.String("artwork_id", a.ID), zap.Error(err))
		}
		return fixedPriceBucket(a.Price)
	}

	var sum float64
	count := 0
	for i := range comparables {
		c := &comparables[i]
		if c.ID == a.ID || c.Price <= 0 {
			continue
		}
		if comparableSimilarity(a, c) < comparableSimThreshold {
			continue
		}
		sum += c.Price
		count++
	}
	if count == 0 {
		return fixedPriceBucket(a.Price)
	}

	mean := sum / float64(count)
	deviation := (a.Price - mean) / mean
	switch {
	case deviation < -priceDeviationBand:
		return domain.PriceBelowMarket
	case deviation > priceDeviationBand:
		return domain.PriceAboveMarket
	default:
		return domain.PriceAtMarket
	}
}

// comparableSimilarity weighs shared medium, genre, and style.
func comparableSimilarity(a *domain.Artwork, c *domain.Comparable) float64 {
	var sim float64
	if strings.EqualFold(a.Medium, c.Medium) {
		sim += 0.4
	}
	if strings.EqualFold(a.Genre, c.Genre) {
		sim += 0.4
	}
	if strings.EqualFold(a.Style, c.Style) {
		sim += 0.2
	}
	return sim
}

func fixedPriceBucket(price float64) domain.PriceCompetitiveness {
	switch {
	case price < 1000:
		return domain.PriceBelowMarket
	case price < 10000:
		return domain.PriceAtMarket
	default:
		return domain.PriceAboveMarket
	}
}

// rarityMediums carry an inherent scarcity bump.
var rarityMediums = []string{"sculpture", "installation", "mixed media", "digital"}

// RarityScore starts at 0.5, bumped by scarce mediums and limited editions.
func RarityScore(a *domain.Artwork) float64 {
	score := 0.5
	medium := strings.ToLower(a.Medium)
	for _, m := range rarityMediums {
		if strings.Contains(medium, m) {
			score += 0.2
			break
		}
	}
	if a.LimitedEdition {
		score += 0.3
	}
	return domain.Clamp01(score)
}
