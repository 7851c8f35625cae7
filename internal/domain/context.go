package domain

// BudgetRange is the caller's spending bracket.
type BudgetRange struct {
	Min float64
	Max float64
}

// Preferences are the user's stored favorites from the preference store.
type Preferences struct {
	FavoriteMediums []string
	FavoriteGenres  []string
	FavoriteStyles  []string
	FavoriteColors  []string
}

// SearchContext carries caller identity and taste signals into scoring.
// Supplied by the caller; read-only.
type SearchContext struct {
	UserID        string
	Preferences   *Preferences
	BudgetRange   *BudgetRange
	Intent        Intent
	CurrentTrends []string
	// CollectionIDs are artworks the user already owns; used to avoid
	// recommending pieces back to their collector.
	CollectionIDs []string
}

// FavorsMedium reports whether the medium is among the stored favorites.
func (c *SearchContext) FavorsMedium(medium string) bool {
	if c == nil || c.Preferences == nil {
		return false
	}
	return containsFold(c.Preferences.FavoriteMediums, medium)
}

// FavorsGenre reports whether the genre is among the stored favorites.
func (c *SearchContext) FavorsGenre(genre string) bool {
	if c == nil || c.Preferences == nil {
		return false
	}
	return containsFold(c.Preferences.FavoriteGenres, genre)
}

func containsFold(set []string, value string) bool {
	return matchSet(set, value) && len(set) > 0
}
