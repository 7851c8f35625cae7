package vision

import "strings"

// Vocabulary mapping thresholds.
const (
	brightLuminance = 200.0
	darkLuminance   = 50.0
	highContrast    = 100.0
	strongSymmetry  = 0.7
	warmChannelGap  = 20 // mean red vs blue delta for warm/cool
)

// Vocabulary is the text vocabulary derived from visual features. It feeds
// the same matching path as an analyzed text query.
type Vocabulary struct {
	Concepts []string
	Emotions []string
	Styles   []string
	Elements []string
}

// QueryTerms flattens the vocabulary into one synthetic query string.
func (v *Vocabulary) QueryTerms() string {
	terms := make([]string, 0, len(v.Concepts)+len(v.Emotions)+len(v.Styles)+len(v.Elements))
	terms = append(terms, v.Concepts...)
	terms = append(terms, v.Emotions...)
	terms = append(terms, v.Styles...)
	terms = append(terms, v.Elements...)
	return strings.Join(terms, " ")
}

// Vocabulary maps measured features onto concepts, emotions, styles, and
// visual elements deterministically.
func (f *Features) Vocabulary() *Vocabulary {
	v := &Vocabulary{}

	switch {
	case f.Brightness > brightLuminance:
		v.Elements = append(v.Elements, "bright")
		v.Emotions = append(v.Emotions, "joy")
	case f.Brightness < darkLuminance:
		v.Elements = append(v.Elements, "dark")
		v.Emotions = append(v.Emotions, "mystery")
	}

	if f.Contrast > highContrast {
		v.Elements = append(v.Elements, "high_contrast")
		v.Styles = append(v.Styles, "expressionist")
	} else if f.Contrast < 20 {
		v.Elements = append(v.Elements, "soft")
		v.Emotions = append(v.Emotions, "serenity")
	}

	if f.Symmetry > strongSymmetry {
		v.Elements = append(v.Elements, "symmetrical")
		v.Styles = append(v.Styles, "classical")
		v.Concepts = append(v.Concepts, "balanced")
	}

	if f.RuleOfThirds {
		v.Concepts = append(v.Concepts, "composed")
	}

	switch f.Texture {
	case TextureRough:
		v.Elements = append(v.Elements, "textured")
		v.Styles = append(v.Styles, "expressive")
	case TextureSmooth:
		v.Elements = append(v.Elements, "smooth")
		v.Styles = append(v.Styles, "minimalist")
	}

	switch temperature(f.DominantColors) {
	case "warm":
		v.Elements = append(v.Elements, "warm")
		v.Emotions = append(v.Emotions, "passion")
	case "cool":
		v.Elements = append(v.Elements, "cool")
		v.Emotions = append(v.Emotions, "serenity")
	}

	return v
}

// temperature compares the mean red and blue channels of the dominant
// colors. Returns "warm", "cool", or "" when balanced.
func temperature(colors []Color) string {
	if len(colors) == 0 {
		return ""
	}
	var red, blue int
	for _, c := range colors {
		red += int(c.R)
		blue += int(c.B)
	}
	red /= len(colors)
	blue /= len(colors)

	switch {
	case red-blue > warmChannelGap:
		return "warm"
	case blue-red > warmChannelGap:
		return "cool"
	default:
		return ""
	}
}
