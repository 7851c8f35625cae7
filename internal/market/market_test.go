package market

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/galleria-cloud/galleria/internal/domain"
)

type mockComparables struct {
	comparables []domain.Comparable
	err         error
	lastLimit   int
}

func (m *mockComparables) FetchComparable(_ context.Context, _, _, _ string, limit int) ([]domain.Comparable, error) {
	m.lastLimit = limit
	return m.comparables, m.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTrendScore_LowEngagement(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	m := New(&mockComparables{}, 50, nil).WithClock(fixedClock(now))

	a := &domain.Artwork{
		Views:     1000,
		Likes:     5,
		Inquiries: 2,
		CreatedAt: now.Add(-48 * time.Hour),
	}

	got := m.TrendScore(a)
	want := 0.7*0.007 + 0.3*math.Exp(-2.0/30.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("trend score = %v, want %v", got, want)
	}
	if math.Abs(got-0.3) > 0.02 {
		t.Errorf("trend score = %v, expected about 0.3", got)
	}
}

func TestTrendScore_ZeroViews(t *testing.T) {
	now := time.Now()
	m := New(&mockComparables{}, 50, nil).WithClock(fixedClock(now))

	a := &domain.Artwork{Views: 0, Likes: 2, Inquiries: 1, CreatedAt: now}
	got := m.TrendScore(a)
	if got < 0 || got > 1 {
		t.Errorf("trend score out of range with zero views: %v", got)
	}
}

func TestDemandLevel(t *testing.T) {
	tests := []struct {
		name      string
		views     int
		inquiries int
		want      domain.DemandLevel
	}{
		{"low rate", 1000, 2, domain.DemandLow},
		{"boundary medium", 100, 6, domain.DemandMedium},
		{"high rate", 100, 11, domain.DemandHigh},
		{"no views", 0, 5, domain.DemandLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &domain.Artwork{Views: tt.views, Inquiries: tt.inquiries}
			if got := DemandLevel(a); got != tt.want {
				t.Errorf("demand = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAnalyze_PriceAgainstComparables(t *testing.T) {
	comparables := []domain.Comparable{
		{ID: "c1", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1000},
		{ID: "c2", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1200},
		{ID: "c3", Medium: "Oil on Canvas", Genre: "Landscape", Price: 1100},
	}
	src := &mockComparables{comparables: comparables}
	m := New(src, 50, nil)

	a := &domain.Artwork{ID: "a1", Medium: "Oil on Canvas", Genre: "Landscape", Price: 500}
	got := m.Analyze(context.Background(), a)
	if got.PriceCompetitiveness != domain.PriceBelowMarket {
		t.Errorf("price = %s, want below (mean 1100, deviation -55%%)", got.PriceCompetitiveness)
	}
	if src.lastLimit != 50 {
		t.Errorf("comparable fetch limit = %d, want 50", src.lastLimit)
	}

	a.Price = 1100
	if got := m.Analyze(context.Background(), a); got.PriceCompetitiveness != domain.PriceAtMarket {
		t.Errorf("price = %s, want average", got.PriceCompetitiveness)
	}

	a.Price = 2000
	if got := m.Analyze(context.Background(), a); got.PriceCompetitiveness != domain.PriceAboveMarket {
		t.Errorf("price = %s, want above", got.PriceCompetitiveness)
	}
}

func TestAnalyze_DissimilarComparablesExcluded(t *testing.T) {
	// Only style matches: similarity 0.2 < 0.3, so the comparable set is
	// effectively empty and fixed thresholds apply.
	src := &mockComparables{comparables: []domain.Comparable{
		{ID: "c1", Medium: "Bronze", Genre: "Sculpture", Style: "modern", Price: 99999},
	}}
	m := New(src, 50, nil)

	a := &domain.Artwork{ID: "a1", Medium: "Oil on Canvas", Genre: "Landscape", Style: "modern", Price: 500}
	got := m.Analyze(context.Background(), a)
	if got.PriceCompetitiveness != domain.PriceBelowMarket {
		t.Errorf("price = %s, want below via fixed threshold", got.PriceCompetitiveness)
	}
}

func TestAnalyze_FallbackWhenFetchFails(t *testing.T) {
	src := &mockComparables{err: errors.New("store unreachable")}
	m := New(src, 50, nil)

	tests := []struct {
		price float64
		want  domain.PriceCompetitiveness
	}{
		{500, domain.PriceBelowMarket},
		{5000, domain.PriceAtMarket},
		{50000, domain.PriceAboveMarket},
	}
	for _, tt := range tests {
		a := &domain.Artwork{Price: tt.price}
		if got := m.Analyze(context.Background(), a); got.PriceCompetitiveness != tt.want {
			t.Errorf("price(%v) = %s, want %s", tt.price, got.PriceCompetitiveness, tt.want)
		}
	}
}

func TestRarityScore(t *testing.T) {
	tests := []struct {
		name    string
		artwork domain.Artwork
		want    float64
	}{
		{"baseline", domain.Artwork{Medium: "Oil on Canvas"}, 0.5},
		{"scarce medium", domain.Artwork{Medium: "Bronze Sculpture"}, 0.7},
		{"limited edition", domain.Artwork{Medium: "Oil on Canvas", LimitedEdition: true}, 0.8},
		{"both clamped", domain.Artwork{Medium: "Digital", LimitedEdition: true}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RarityScore(&tt.artwork); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("rarity = %v, want %v", got, tt.want)
			}
		})
	}
}
