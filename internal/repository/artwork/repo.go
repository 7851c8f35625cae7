// Package artwork is the Redis-backed artwork store. Artworks live as hashes
// under galleria:artwork:<id> with a recency index in the
// galleria:artworks:by_created sorted set (score = creation unix time).
package artwork

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/galleria-cloud/galleria/internal/db"
	"github.com/galleria-cloud/galleria/internal/domain"
)

// DefaultKeyPrefix is the key namespace used when none is configured.
const DefaultKeyPrefix = "galleria:"

// store is the consumer interface for artworks (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	ZAdd(ctx context.Context, key string, members ...db.ScoredMember) error
	ZRevRange(ctx context.Context, key string, count int) ([]string, error)
	ZRem(ctx context.Context, key string, members ...string) error
}

// Repo implements usecase/search.ArtworkSource.
type Repo struct {
	store      store
	keyPrefix  string
	recencyKey string
}

// New creates an artwork repository under the default key namespace.
func New(s store) *Repo {
	return (&Repo{store: s}).WithPrefix(DefaultKeyPrefix)
}

// WithPrefix moves the repository to another key namespace, e.g. "galleria:".
func (r *Repo) WithPrefix(prefix string) *Repo {
	r.keyPrefix = prefix + "artwork:"
	r.recencyKey = prefix + "artworks:by_created"
	return r
}

// FetchCandidates returns up to limit publicly listed artworks passing the
// filters, newest first. limit <= 0 returns all matches.
func (r *Repo) FetchCandidates(ctx context.Context, filters *domain.Filters, limit int) ([]domain.Artwork, error) {
	arts, err := r.fetchRecentArtworks(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w: %w", domain.ErrUpstreamFetch, err)
	}

	out := make([]domain.Artwork, 0, len(arts))
	for i := range arts {
		a := &arts[i]
		if !isPublic(a) || !filters.Match(a) {
			continue
		}
		out = append(out, *a)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// FetchComparable returns up to limit price baselines sharing at least the
// medium, genre or style of the subject artwork.
func (r *Repo) FetchComparable(ctx context.Context, medium, genre, style string, limit int) ([]domain.Comparable, error) {
	arts, err := r.fetchRecentArtworks(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch comparable: %w: %w", domain.ErrUpstreamFetch, err)
	}

	out := make([]domain.Comparable, 0, limit)
	for i := range arts {
		a := &arts[i]
		if a.Price <= 0 {
			continue
		}
		if !strings.EqualFold(a.Medium, medium) &&
			!strings.EqualFold(a.Genre, genre) &&
			!strings.EqualFold(a.Style, style) {
			continue
		}
		out = append(out, domain.Comparable{
			ID:     a.ID,
			Medium: a.Medium,
			Genre:  a.Genre,
			Style:  a.Style,
			Price:  a.Price,
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// FetchAllPublicWithImage returns every publicly listed artwork that carries
// an image URL. Full scan of the recency index; used by image search only.
func (r *Repo) FetchAllPublicWithImage(ctx context.Context) ([]domain.Artwork, error) {
	arts, err := r.fetchRecentArtworks(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch all with image: %w: %w", domain.ErrUpstreamFetch, err)
	}

	out := make([]domain.Artwork, 0, len(arts))
	for i := range arts {
		if isPublic(&arts[i]) && arts[i].HasImage() {
			out = append(out, arts[i])
		}
	}
	return out, nil
}

// FetchRecent returns the newest artworks projected for trending-term extraction.
func (r *Repo) FetchRecent(ctx context.Context, limit int) ([]domain.TrendingCandidate, error) {
	arts, err := r.fetchRecentArtworks(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch recent: %w: %w", domain.ErrUpstreamFetch, err)
	}

	out := make([]domain.TrendingCandidate, 0, len(arts))
	for i := range arts {
		a := &arts[i]
		out = append(out, domain.TrendingCandidate{
			Title:       a.Title,
			Description: a.Description,
			Genre:       a.Genre,
			Medium:      a.Medium,
			Subject:     a.Subject,
			CreatedAt:   a.CreatedAt,
			Views:       a.Views,
			Likes:       a.Likes,
		})
	}
	return out, nil
}

// Get returns a single artwork by ID.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Artwork, error) {
	fields, err := r.store.HGetAll(ctx, r.keyPrefix+id)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("hgetall %s: %w", r.keyPrefix+id, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrArtworkNotFound
	}
	a := parseHashFields(id, fields)
	return &a, nil
}

// Save creates or replaces an artwork and updates the recency index.
func (r *Repo) Save(ctx context.Context, a *domain.Artwork) error {
	key := r.keyPrefix + a.ID
	if err := r.store.HSet(ctx, key, buildHashFields(a)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	member := db.ScoredMember{Member: a.ID, Score: float64(a.CreatedAt.Unix())}
	if err := r.store.ZAdd(ctx, r.recencyKey, member); err != nil {
		return fmt.Errorf("zadd %s: %w", r.recencyKey, err)
	}
	return nil
}

// Delete removes an artwork and its recency index entry.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, r.keyPrefix+id); err != nil {
		return fmt.Errorf("del %s: %w", r.keyPrefix+id, err)
	}
	if err := r.store.ZRem(ctx, r.recencyKey, id); err != nil {
		return fmt.Errorf("zrem %s: %w", r.recencyKey, err)
	}
	return nil
}

// fetchRecentArtworks loads artworks from the recency index, newest first.
// count <= 0 loads all. Index entries whose hash vanished are skipped.
func (r *Repo) fetchRecentArtworks(ctx context.Context, count int) ([]domain.Artwork, error) {
	ids, err := r.store.ZRevRange(ctx, r.recencyKey, count)
	if err != nil {
		return nil, fmt.Errorf("zrevrange %s: %w", r.recencyKey, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.keyPrefix + id
	}
	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi: %w", err)
	}

	arts := make([]domain.Artwork, 0, len(ids))
	for i, fields := range hashes {
		if len(fields) == 0 {
			continue
		}
		arts = append(arts, parseHashFields(ids[i], fields))
	}
	return arts, nil
}

func isPublic(a *domain.Artwork) bool {
	return !strings.EqualFold(a.Availability, "private") &&
		!strings.EqualFold(a.Availability, "draft")
}
