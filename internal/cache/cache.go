// Package cache memoizes full search result sets keyed by a normalized
// request signature. Entries are served as-is until the TTL elapses, even if
// the underlying store changed; there is no background sweep, so keys that
// are never re-requested live until process restart.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/galleria-cloud/galleria/internal/domain"
)

// DefaultTTL is the result-cache time-to-live.
const DefaultTTL = 5 * time.Minute

type entry struct {
	results  []domain.Result
	storedAt time.Time
}

// ResultCache is a mutex-guarded TTL cache of search result sets.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration

	// hitTotal is a counter vec with label "result" ("hit"/"miss"); may be nil.
	hitTotal *prometheus.CounterVec
	now      func() time.Time
}

// New creates a result cache. ttl <= 0 falls back to DefaultTTL.
func New(ttl time.Duration, hitTotal *prometheus.CounterVec) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		entries:  make(map[string]entry),
		ttl:      ttl,
		hitTotal: hitTotal,
		now:      time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (c *ResultCache) WithClock(now func() time.Time) *ResultCache {
	c.now = now
	return c
}

// Get returns the cached result set if its age is under the TTL.
func (c *ResultCache) Get(query string, filters *domain.Filters, sctx *domain.SearchContext) ([]domain.Result, bool) {
	key := Key(query, filters, sctx)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		c.inc("miss")
		return nil, false
	}
	c.inc("hit")
	return e.results, true
}

// Put stores a result set, replacing any previous entry for the key.
func (c *ResultCache) Put(query string, filters *domain.Filters, sctx *domain.SearchContext, results []domain.Result) {
	key := Key(query, filters, sctx)

	c.mu.Lock()
	c.entries[key] = entry{results: results, storedAt: c.now()}
	c.mu.Unlock()
}

// Invalidate drops the entry for one request signature.
func (c *ResultCache) Invalidate(query string, filters *domain.Filters, sctx *domain.SearchContext) {
	key := Key(query, filters, sctx)

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear drops all entries.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len returns the number of live entries, expired or not.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ResultCache) inc(result string) {
	if c.hitTotal != nil {
		c.hitTotal.WithLabelValues(result).Inc()
	}
}

// signature is the normalized request shape fed into the cache key. Field
// order is fixed and set-valued fields are sorted, so logically identical
// requests share a key.
type signature struct {
	Query   string                `json:"q"`
	Filters *domain.Filters       `json:"f,omitempty"`
	Context *domain.SearchContext `json:"c,omitempty"`
}

// Key derives the deterministic cache key for a request.
func Key(query string, filters *domain.Filters, sctx *domain.SearchContext) string {
	sig := signature{
		Query:   query,
		Filters: normalizeFilters(filters),
		Context: normalizeContext(sctx),
	}
	data, err := json.Marshal(sig)
	if err != nil {
		// Marshal of plain structs cannot fail; fall back to the raw query.
		data = []byte(query)
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func normalizeFilters(f *domain.Filters) *domain.Filters {
	if f == nil {
		return nil
	}
	n := *f
	n.Mediums = sortedCopy(f.Mediums)
	n.Genres = sortedCopy(f.Genres)
	n.Artists = sortedCopy(f.Artists)
	n.Colors = sortedCopy(f.Colors)
	n.Moods = sortedCopy(f.Moods)
	n.Styles = sortedCopy(f.Styles)
	n.Techniques = sortedCopy(f.Techniques)
	n.Subjects = sortedCopy(f.Subjects)
	n.Periods = sortedCopy(f.Periods)
	n.Movements = sortedCopy(f.Movements)
	return &n
}

func normalizeContext(c *domain.SearchContext) *domain.SearchContext {
	if c == nil {
		return nil
	}
	n := *c
	n.CurrentTrends = sortedCopy(c.CurrentTrends)
	n.CollectionIDs = sortedCopy(c.CollectionIDs)
	if c.Preferences != nil {
		p := *c.Preferences
		p.FavoriteMediums = sortedCopy(c.Preferences.FavoriteMediums)
		p.FavoriteGenres = sortedCopy(c.Preferences.FavoriteGenres)
		p.FavoriteStyles = sortedCopy(c.Preferences.FavoriteStyles)
		p.FavoriteColors = sortedCopy(c.Preferences.FavoriteColors)
		n.Preferences = &p
	}
	return &n
}

func sortedCopy(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
