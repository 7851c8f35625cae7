package domain

import "time"

// Artwork is a candidate fetched from the artwork store. Read-only per request.
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

	// Engagement counters.
	Views     int
	Likes     int
	Inquiries int

	CreatedAt  time.Time
	ArtistID   string
	ArtistName string

	// AppreciationRate is the recorded year-over-year value change, if any.
	// Positive values mark the artwork as appreciating for investment intent.
	AppreciationRate float64
}

// HasImage reports whether the artwork carries a resolvable image.
func (a *Artwork) HasImage() bool { return a.ImageURL != "" }

// SearchableText concatenates the fields used for concept matching.
func (a *Artwork) SearchableText() string {
	return a.Title + " " + a.Description + " " + a.Medium + " " + a.Genre + " " +
		a.Style + " " + a.Subject + " " + a.ArtistName
}

// Comparable is a stripped-down artwork used as a price baseline.
type Comparable struct {
	ID     string
	Medium string
	Genre  string
	Style  string
	Price  float64
}

// TrendingCandidate is the slim projection used by trending-term extraction.
type TrendingCandidate struct {
	Title       string
	Description string
	Genre       string
	Medium      string
	Subject     string
	CreatedAt   time.Time
	Views       int
	Likes       int
}
