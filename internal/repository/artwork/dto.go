package artwork

import (
	"strconv"
	"time"

	"github.com/galleria-cloud/galleria/internal/domain"
)

// buildHashFields converts a domain Artwork into a flat map[string]string for HSET.
// Empty optional fields are omitted to keep the hashes small.
func buildHashFields(a *domain.Artwork) map[string]string {
	m := map[string]string{
		"title":        a.Title,
		"description":  a.Description,
		"medium":       a.Medium,
		"genre":        a.Genre,
		"availability": a.Availability,
		"price":        strconv.FormatFloat(a.Price, 'f', -1, 64),
		"created_at":   a.CreatedAt.UTC().Format(time.RFC3339),
		"artist_id":    a.ArtistID,
		"artist_name":  a.ArtistName,
	}
	setIfNonEmpty(m, "style", a.Style)
	setIfNonEmpty(m, "subject", a.Subject)
	setIfNonEmpty(m, "currency", a.Currency)
	setIfNonEmpty(m, "image_url", a.ImageURL)
	if a.Year != 0 {
		m["year"] = strconv.Itoa(a.Year)
	}
	if a.WidthCM != 0 {
		m["width_cm"] = strconv.FormatFloat(a.WidthCM, 'f', -1, 64)
	}
	if a.HeightCM != 0 {
		m["height_cm"] = strconv.FormatFloat(a.HeightCM, 'f', -1, 64)
	}
	if a.LimitedEdition {
		m["limited_edition"] = "1"
	}
	if a.Views != 0 {
		m["views"] = strconv.Itoa(a.Views)
	}
	if a.Likes != 0 {
		m["likes"] = strconv.Itoa(a.Likes)
	}
	if a.Inquiries != 0 {
		m["inquiries"] = strconv.Itoa(a.Inquiries)
	}
	if a.AppreciationRate != 0 {
		m["appreciation_rate"] = strconv.FormatFloat(a.AppreciationRate, 'f', -1, 64)
	}
	return m
}

// parseHashFields converts a flat hash map back into a domain Artwork.
// Malformed numeric fields fall back to zero values.
func parseHashFields(id string, m map[string]string) domain.Artwork {
	a := domain.Artwork{
		ID:           id,
		Title:        m["title"],
		Description:  m["description"],
		Medium:       m["medium"],
		Genre:        m["genre"],
		Style:        m["style"],
		Subject:      m["subject"],
		Currency:     m["currency"],
		ImageURL:     m["image_url"],
		Availability: m["availability"],
		ArtistID:     m["artist_id"],
		ArtistName:   m["artist_name"],
	}
	a.Price, _ = strconv.ParseFloat(m["price"], 64)
	a.Year, _ = strconv.Atoi(m["year"])
	a.WidthCM, _ = strconv.ParseFloat(m["width_cm"], 64)
	a.HeightCM, _ = strconv.ParseFloat(m["height_cm"], 64)
	a.LimitedEdition = m["limited_edition"] == "1"
	a.Views, _ = strconv.Atoi(m["views"])
	a.Likes, _ = strconv.Atoi(m["likes"])
	a.Inquiries, _ = strconv.Atoi(m["inquiries"])
	a.AppreciationRate, _ = strconv.ParseFloat(m["appreciation_rate"], 64)
	if ts, err := time.Parse(time.RFC3339, m["created_at"]); err == nil {
		a.CreatedAt = ts
	}
	return a
}

func setIfNonEmpty(m map[string]string, key, value string) {
	if value != "" {
		m[key] = value
	}
}
