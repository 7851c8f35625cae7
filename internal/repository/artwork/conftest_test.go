package artwork

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/galleria-cloud/galleria/internal/db"
	"github.com/galleria-cloud/galleria/internal/domain"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) error
	zaddFn         func(ctx context.Context, key string, members ...db.ScoredMember) error
	zrevRangeFn    func(ctx context.Context, key string, count int) ([]string, error)
	zremFn         func(ctx context.Context, key string, members ...string) error
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return make([]map[string]string, len(keys)), nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) ZAdd(ctx context.Context, key string, members ...db.ScoredMember) error {
	if m.zaddFn != nil {
		return m.zaddFn(ctx, key, members...)
	}
	return nil
}

func (m *mockStore) ZRevRange(ctx context.Context, key string, count int) ([]string, error) {
	if m.zrevRangeFn != nil {
		return m.zrevRangeFn(ctx, key, count)
	}
	return nil, nil
}

func (m *mockStore) ZRem(ctx context.Context, key string, members ...string) error {
	if m.zremFn != nil {
		return m.zremFn(ctx, key, members...)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testArtwork(id string) *domain.Artwork {
	return &domain.Artwork{
		ID:           id,
		Title:        "Evening Harbor",
		Description:  "oil painting of boats at dusk",
		Medium:       "oil",
		Genre:        "seascape",
		Style:        "impressionist",
		Price:        1200,
		Currency:     "USD",
		Year:         2021,
		ImageURL:     "https://img.example/" + id + ".jpg",
		Availability: "available",
		Views:        40,
		Likes:        8,
		CreatedAt:    time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		ArtistID:     "artist-1",
		ArtistName:   "R. Vela",
	}
}

// seedStore wires the mock so the recency index and hashes serve n artworks,
// newest (art-1) first.
func seedStore(ms *mockStore, arts ...*domain.Artwork) {
	byKey := make(map[string]map[string]string, len(arts))
	ids := make([]string, 0, len(arts))
	for _, a := range arts {
		ids = append(ids, a.ID)
		byKey[DefaultKeyPrefix+"artwork:"+a.ID] = buildHashFields(a)
	}
	ms.zrevRangeFn = func(_ context.Context, _ string, count int) ([]string, error) {
		if count > 0 && count < len(ids) {
			return ids[:count], nil
		}
		return ids, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		out := make([]map[string]string, len(keys))
		for i, k := range keys {
			out[i] = byKey[k]
		}
		return out, nil
	}
}

func numbered(n int) []*domain.Artwork {
	arts := make([]*domain.Artwork, n)
	for i := range arts {
		arts[i] = testArtwork("art-" + strconv.Itoa(i+1))
	}
	return arts
}
