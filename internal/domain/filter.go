package domain

import "strings"

// PriceRange bounds artwork price. Zero Max means unbounded.
type PriceRange struct {
	Min float64
	Max float64
}

// YearRange bounds creation year. Zero values mean unbounded.
type YearRange struct {
	Min int
	Max int
}

// SizeRange bounds the longest artwork dimension in centimeters.
type SizeRange struct {
	MinCM float64
	MaxCM float64
}

// Filters are caller-supplied structural predicates. Absent or malformed
// fields are simply not applied, never rejected.
type Filters struct {
	Price *PriceRange
	Year  *YearRange
	Size  *SizeRange

	Mediums    []string
	Genres     []string
	Artists    []string
	Colors     []string
	Moods      []string
	Styles     []string
	Techniques []string
	Subjects   []string
	Periods    []string
	Movements  []string

	Availability string
	RarityTier   string
}

// Match reports whether the artwork passes every applied filter.
func (f *Filters) Match(a *Artwork) bool {
	if f == nil {
		return true
	}
	if f.Price != nil {
		if a.Price < f.Price.Min {
			return false
		}
		if f.Price.Max > 0 && a.Price > f.Price.Max {
			return false
		}
	}
	if f.Year != nil {
		if f.Year.Min > 0 && a.Year < f.Year.Min {
			return false
		}
		if f.Year.Max > 0 && a.Year > f.Year.Max {
			return false
		}
	}
	if f.Size != nil {
		longest := a.WidthCM
		if a.HeightCM > longest {
			longest = a.HeightCM
		}
		if longest < f.Size.MinCM {
			return false
		}
		if f.Size.MaxCM > 0 && longest > f.Size.MaxCM {
			return false
		}
	}
	if !matchSet(f.Mediums, a.Medium) {
		return false
	}
	if !matchSet(f.Genres, a.Genre) {
		return false
	}
	if !matchSet(f.Styles, a.Style) {
		return false
	}
	if !matchSet(f.Subjects, a.Subject) {
		return false
	}
	if !matchSet(f.Artists, a.ArtistName) {
		return false
	}
	if f.Availability != "" && !strings.EqualFold(f.Availability, a.Availability) {
		return false
	}
	return true
}

// matchSet passes when the set is empty (filter not applied) or contains value.
func matchSet(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}
