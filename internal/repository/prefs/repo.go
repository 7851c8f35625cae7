// Package prefs stores user taste profiles as JSON values under
// galleria:prefs:<userID>.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/galleria-cloud/galleria/internal/db"
	"github.com/galleria-cloud/galleria/internal/domain"
)

// DefaultKeyPrefix is the key namespace used when none is configured.
const DefaultKeyPrefix = "galleria:"

// store is the consumer interface for preferences (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repo implements usecase/search.PreferenceSource.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a preferences repository under the default key namespace.
func New(s store) *Repo {
	return (&Repo{store: s}).WithPrefix(DefaultKeyPrefix)
}

// WithPrefix moves the repository to another key namespace, e.g. "galleria:".
func (r *Repo) WithPrefix(prefix string) *Repo {
	r.keyPrefix = prefix + "prefs:"
	return r
}

// prefsDoc is the stored JSON shape.
type prefsDoc struct {
	FavoriteMediums []string `json:"favorite_mediums,omitempty"`
	FavoriteGenres  []string `json:"favorite_genres,omitempty"`
	FavoriteStyles  []string `json:"favorite_styles,omitempty"`
	FavoriteColors  []string `json:"favorite_colors,omitempty"`
}

// GetPreferences returns the stored profile, or nil when the user has none.
func (r *Repo) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	if userID == "" {
		return nil, nil
	}
	raw, err := r.store.Get(ctx, r.keyPrefix+userID)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prefs %s: %w: %w", userID, domain.ErrUpstreamFetch, err)
	}

	var doc prefsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal prefs %s: %w", userID, err)
	}
	return &domain.Preferences{
		FavoriteMediums: doc.FavoriteMediums,
		FavoriteGenres:  doc.FavoriteGenres,
		FavoriteStyles:  doc.FavoriteStyles,
		FavoriteColors:  doc.FavoriteColors,
	}, nil
}

// SavePreferences stores a profile, replacing any previous one.
func (r *Repo) SavePreferences(ctx context.Context, userID string, p *domain.Preferences) error {
	doc := prefsDoc{
		FavoriteMediums: p.FavoriteMediums,
		FavoriteGenres:  p.FavoriteGenres,
		FavoriteStyles:  p.FavoriteStyles,
		FavoriteColors:  p.FavoriteColors,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := r.store.Set(ctx, r.keyPrefix+userID, data); err != nil {
		return fmt.Errorf("set prefs %s: %w", userID, err)
	}
	return nil
}
