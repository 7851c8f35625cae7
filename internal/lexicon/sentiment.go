package lexicon

// sentimentWeights maps words to weights in [-1, 1].
var sentimentWeights = map[string]float64{
	// Positive.
	"love": 0.8, "loved": 0.8, "adore": 0.9, "beautiful": 0.7, "gorgeous": 0.8,
	"stunning": 0.8, "amazing": 0.8, "wonderful": 0.7, "great": 0.6, "good": 0.5,
	"happy": 0.6, "joyful": 0.7, "cheerful": 0.6, "delightful": 0.7,
	"bright": 0.5, "uplifting": 0.7, "inspiring": 0.7, "breathtaking": 0.9,
	"masterful": 0.8, "brilliant": 0.8, "exquisite": 0.8, "elegant": 0.6,
	"graceful": 0.6, "serene": 0.5, "peaceful": 0.5, "calm": 0.4, "soothing": 0.5,
	"warm": 0.4, "rich": 0.4, "luminous": 0.6, "radiant": 0.7, "lively": 0.5,
	"playful": 0.5, "charming": 0.6, "captivating": 0.7, "mesmerizing": 0.8,
	"striking": 0.6, "powerful": 0.6, "bold": 0.5, "fresh": 0.4, "harmonious": 0.6,
	"sublime": 0.8, "enchanting": 0.7, "magnificent": 0.8, "superb": 0.8,
	"refined": 0.5, "timeless": 0.6, "favorite": 0.7, "best": 0.7, "perfect": 0.8,
	"like": 0.4, "enjoy": 0.5, "impressive": 0.6, "remarkable": 0.6,

	// Negative.
	"hate": -0.8, "hated": -0.8, "ugly": -0.7, "hideous": -0.9, "awful": -0.8,
	"terrible": -0.8, "bad": -0.5, "poor": -0.5, "boring": -0.6, "dull": -0.5,
	"bland": -0.5, "lifeless": -0.6, "depressing": -0.6, "sad": -0.5,
	"gloomy": -0.5, "dark": -0.3, "disturbing": -0.6, "unsettling": -0.5,
	"chaotic": -0.4, "messy": -0.5, "cheap": -0.6, "tacky": -0.7, "garish": -0.6,
	"harsh": -0.4, "cold": -0.3, "grim": -0.5, "bleak": -0.6, "dreary": -0.6,
	"uninspired": -0.6, "derivative": -0.5, "clumsy": -0.5, "crude": -0.4,
	"dislike": -0.5, "worst": -0.8, "mediocre": -0.5, "forgettable": -0.5,
	"overpriced": -0.6, "pretentious": -0.5,
}

// intensifierWeights multiply the weight of the next sentiment word.
var intensifierWeights = map[string]float64{
	"very": 1.5, "extremely": 2.0, "incredibly": 1.8, "really": 1.4,
	"truly": 1.4, "deeply": 1.5, "absolutely": 1.8, "utterly": 1.8,
	"quite": 1.2, "rather": 1.1, "somewhat": 0.7, "slightly": 0.6,
	"barely": 0.4, "mildly": 0.6,
}

// negationWords flip the sign of the immediately following sentiment word.
var negationWords = map[string]bool{
	"not": true, "no": true, "never": true,
}

// intentCues map intent labels to trigger words. First hit wins; the
// analyzer falls back to "browse".
var intentCues = map[string][]string{
	"purchase":   {"buy", "purchase", "acquire", "order", "for sale", "price of", "cost of", "shipping"},
	"investment": {"investment", "invest", "appreciate", "appreciation", "resale", "value growth", "portfolio", "asset"},
	"gift":       {"gift", "present", "anniversary", "birthday", "wedding", "housewarming", "for my"},
	"research":   {"history of", "who painted", "learn about", "research", "study", "meaning of", "analysis", "essay"},
	"browse":     {"show me", "looking for", "browse", "explore", "discover", "inspiration"},
}

// implicitConceptCues derive focus concepts from formal-element words.
var implicitConceptCues = map[string]string{
	"color":    "color_focused",
	"colour":   "color_focused",
	"texture":  "texture_focused",
	"movement": "movement_focused",
	"light":    "light_focused",
	"space":    "spatial_focused",
	"form":     "form_focused",
	"line":     "line_focused",
}

// specificIndicators raise query specificity.
var specificIndicators = []string{
	"exactly", "specifically", "particular", "precise", "named", "titled",
	"signed", "dated", "original", "edition", "certificate", "provenance",
	"by the artist", "dimensions",
}

// vagueIndicators lower query specificity.
var vagueIndicators = []string{
	"something", "anything", "whatever", "some kind", "sort of", "maybe",
	"stuff", "things", "nice", "cool",
}

// artTerms slightly boost sentiment confidence when present.
var artTerms = map[string]bool{
	"painting": true, "canvas": true, "sculpture": true, "composition": true,
	"palette": true, "brushwork": true, "pigment": true, "gallery": true,
	"exhibition": true, "curator": true, "print": true, "etching": true,
	"watercolor": true, "oil": true, "acrylic": true, "charcoal": true,
	"artwork": true, "artist": true, "masterpiece": true, "triptych": true,
}

// stopWords are filtered from keyword and trending-term extraction.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "or": true, "me": true, "my": true, "i": true,
	"want": true, "some": true, "like": true, "can": true, "art": true,
}

// defaultTrending is served when no engagement data exists yet.
var defaultTrending = []string{
	"abstract painting",
	"contemporary portrait",
	"landscape oil painting",
	"minimalist print",
	"street art",
	"botanical watercolor",
	"mid-century modern",
	"figurative sculpture",
}
