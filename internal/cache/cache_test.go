package cache

import (
	"testing"
	"time"

	"github.com/galleria-cloud/galleria/internal/domain"
)

func TestResultCache_HitWithinTTL(t *testing.T) {
	c := New(5*time.Minute, nil)

	results := []domain.Result{{RelevanceScore: 0.42}}
	c.Put("sunset", nil, nil, results)

	got, ok := c.Get("sunset", nil, nil)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].RelevanceScore != 0.42 {
		t.Fatalf("got %+v, want stored results", got)
	}
}

func TestResultCache_ExpiresAfterTTL(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c := New(5*time.Minute, nil).WithClock(func() time.Time { return now })

	c.Put("sunset", nil, nil, []domain.Result{{RelevanceScore: 0.42}})

	now = base.Add(5*time.Minute - time.Second)
	if _, ok := c.Get("sunset", nil, nil); !ok {
		t.Fatal("expected hit just before TTL")
	}

	now = base.Add(5 * time.Minute)
	if _, ok := c.Get("sunset", nil, nil); ok {
		t.Fatal("expected miss at TTL boundary")
	}
}

func TestResultCache_MissOnDifferentRequest(t *testing.T) {
	c := New(5*time.Minute, nil)
	c.Put("sunset", nil, nil, []domain.Result{{RelevanceScore: 0.42}})

	if _, ok := c.Get("sunrise", nil, nil); ok {
		t.Fatal("different query must not hit")
	}
	filters := &domain.Filters{Mediums: []string{"oil"}}
	if _, ok := c.Get("sunset", filters, nil); ok {
		t.Fatal("different filters must not hit")
	}
}

func TestKey_IgnoresSetOrder(t *testing.T) {
	a := &domain.Filters{Mediums: []string{"oil", "acrylic"}, Genres: []string{"landscape"}}
	b := &domain.Filters{Mediums: []string{"acrylic", "oil"}, Genres: []string{"landscape"}}

	if Key("sunset", a, nil) != Key("sunset", b, nil) {
		t.Fatal("filter set order must not change the key")
	}

	ctxA := &domain.SearchContext{
		Preferences:   &domain.Preferences{FavoriteGenres: []string{"abstract", "portrait"}},
		CurrentTrends: []string{"minimalism", "collage"},
	}
	ctxB := &domain.SearchContext{
		Preferences:   &domain.Preferences{FavoriteGenres: []string{"portrait", "abstract"}},
		CurrentTrends: []string{"collage", "minimalism"},
	}
	if Key("sunset", nil, ctxA) != Key("sunset", nil, ctxB) {
		t.Fatal("context set order must not change the key")
	}
}

func TestKey_DistinguishesContext(t *testing.T) {
	ctx := &domain.SearchContext{UserID: "u1", Intent: domain.IntentGift}
	if Key("sunset", nil, nil) == Key("sunset", nil, ctx) {
		t.Fatal("context must change the key")
	}
}

func TestResultCache_InvalidateAndClear(t *testing.T) {
	c := New(5*time.Minute, nil)
	c.Put("a", nil, nil, nil)
	c.Put("b", nil, nil, nil)

	c.Invalidate("a", nil, nil)
	if _, ok := c.Get("a", nil, nil); ok {
		t.Fatal("invalidated entry must miss")
	}
	if _, ok := c.Get("b", nil, nil); !ok {
		t.Fatal("other entries must survive Invalidate")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestResultCache_PutOverwrites(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c := New(5*time.Minute, nil).WithClock(func() time.Time { return now })

	c.Put("sunset", nil, nil, []domain.Result{{RelevanceScore: 0.1}})
	now = base.Add(4 * time.Minute)
	c.Put("sunset", nil, nil, []domain.Result{{RelevanceScore: 0.9}})

	// The rewrite refreshed the timestamp, so the entry outlives the
	// original TTL window.
	now = base.Add(7 * time.Minute)
	got, ok := c.Get("sunset", nil, nil)
	if !ok {
		t.Fatal("expected hit after overwrite refreshed TTL")
	}
	if got[0].RelevanceScore != 0.9 {
		t.Fatalf("got score %v, want overwritten 0.9", got[0].RelevanceScore)
	}
}
