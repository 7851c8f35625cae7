package galleria

import (
	"context"
	"fmt"
	"time"

	"github.com/galleria-cloud/galleria/internal/domain"
	artworkrepo "github.com/galleria-cloud/galleria/internal/repository/artwork"
	prefsrepo "github.com/galleria-cloud/galleria/internal/repository/prefs"
)

// Artwork is a catalog entry in the artwork store.
type Artwork struct {
	ID             string
	Title          string
	Description    string
	Medium         string
	Genre          string
	Style          string
	Subject        string
	Price          float64
	Currency       string
	Year           int
	WidthCM        float64
	HeightCM       float64
	ImageURL       string
	Availability   string
	LimitedEdition bool

	Views     int
	Likes     int
	Inquiries int

	CreatedAt  time.Time
	ArtistID   string
	ArtistName string

	AppreciationRate float64
}

// ArtworkService manages catalog entries.
type ArtworkService struct {
	repo *artworkrepo.Repo
}

// Save writes an artwork and indexes it for search.
func (s *ArtworkService) Save(ctx context.Context, a *Artwork) error {
	if a.ID == "" {
		return fmt.Errorf("save artwork: id is required")
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Save(ctx, toInternalArtwork(a)); err != nil {
		return fmt.Errorf("save artwork: %w", err)
	}
	return nil
}

// Get fetches one artwork by id. Returns ErrArtworkNotFound if absent.
func (s *ArtworkService) Get(ctx context.Context, id string) (*Artwork, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artwork: %w", err)
	}
	out := fromInternalArtwork(a)
	return &out, nil
}

// Delete removes an artwork and its index entry.
func (s *ArtworkService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete artwork: %w", err)
	}
	return nil
}

// ErrArtworkNotFound signals a missing artwork.
var ErrArtworkNotFound = domain.ErrArtworkNotFound

// PreferenceService manages stored user preferences.
type PreferenceService struct {
	repo *prefsrepo.Repo
}

// Get fetches stored preferences. Returns nil when none exist.
func (s *PreferenceService) Get(ctx context.Context, userID string) (*Preferences, error) {
	p, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	return &Preferences{
		FavoriteMediums: p.FavoriteMediums,
		FavoriteGenres:  p.FavoriteGenres,
		FavoriteStyles:  p.FavoriteStyles,
		FavoriteColors:  p.FavoriteColors,
	}, nil
}

// Save stores a user's preferences.
func (s *PreferenceService) Save(ctx context.Context, userID string, p *Preferences) error {
	if userID == "" {
		return fmt.Errorf("save preferences: user id is required")
	}
	err := s.repo.SavePreferences(ctx, userID, &domain.Preferences{
		FavoriteMediums: p.FavoriteMediums,
		FavoriteGenres:  p.FavoriteGenres,
		FavoriteStyles:  p.FavoriteStyles,
		FavoriteColors:  p.FavoriteColors,
	})
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

func toInternalArtwork(a *Artwork) *domain.Artwork {
	return &domain.Artwork{
		ID:               a.ID,
		Title:            a.Title,
		Description:      a.Description,
		Medium:           a.Medium,
		Genre:            a.Genre,
		Style:            a.Style,
		Subject:          a.Subject,
		Price:            a.Price,
		Currency:         a.Currency,
		Year:             a.Year,
		WidthCM:          a.WidthCM,
		HeightCM:         a.HeightCM,
		ImageURL:         a.ImageURL,
		Availability:     a.Availability,
		LimitedEdition:   a.LimitedEdition,
		Views:            a.Views,
		Likes:            a.Likes,
		Inquiries:        a.Inquiries,
		CreatedAt:        a.CreatedAt,
		ArtistID:         a.ArtistID,
		ArtistName:       a.ArtistName,
		AppreciationRate: a.AppreciationRate,
	}
}

func fromInternalArtwork(a *domain.Artwork) Artwork {
	return Artwork{
		ID:               a.ID,
		Title:            a.Title,
		Description:      a.Description,
		Medium:           a.Medium,
		Genre:            a.Genre,
		Style:            a.Style,
		Subject:          a.Subject,
		Price:            a.Price,
		Currency:         a.Currency,
		Year:             a.Year,
		WidthCM:          a.WidthCM,
		HeightCM:         a.HeightCM,
		ImageURL:         a.ImageURL,
		Availability:     a.Availability,
		LimitedEdition:   a.LimitedEdition,
		Views:            a.Views,
		Likes:            a.Likes,
		Inquiries:        a.Inquiries,
		CreatedAt:        a.CreatedAt,
		ArtistID:         a.ArtistID,
		ArtistName:       a.ArtistName,
		AppreciationRate: a.AppreciationRate,
	}
}
