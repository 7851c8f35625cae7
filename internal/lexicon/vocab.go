package lexicon

// conceptCategories are the coarse thematic tags assigned to queries and artworks.
var conceptCategories = []Category{
	{Name: "abstract", Keywords: []string{"abstract", "non-figurative", "non-objective"}, Synonyms: []string{"gestural", "geometric abstraction", "colorfield"}},
	{Name: "figurative", Keywords: []string{"figurative", "figure", "human form"}, Synonyms: []string{"body", "nude", "anatomical"}},
	{Name: "landscape", Keywords: []string{"landscape", "scenery", "vista"}, Synonyms: []string{"countryside", "seascape", "mountains", "horizon"}},
	{Name: "still_life", Keywords: []string{"still life", "still-life"}, Synonyms: []string{"vanitas", "tabletop", "flowers in vase", "fruit bowl"}},
	{Name: "portrait", Keywords: []string{"portrait", "portraiture"}, Synonyms: []string{"self-portrait", "face", "likeness", "headshot"}},
	{Name: "urban", Keywords: []string{"urban", "city", "street"}, Synonyms: []string{"cityscape", "metropolis", "graffiti", "architecture"}},
	{Name: "nature", Keywords: []string{"nature", "natural", "organic"}, Synonyms: []string{"botanical", "wildlife", "forest", "ocean", "floral"}},
	{Name: "spiritual", Keywords: []string{"spiritual", "sacred", "divine"}, Synonyms: []string{"religious", "meditative", "transcendent", "mystical"}},
	{Name: "political", Keywords: []string{"political", "protest", "activist"}, Synonyms: []string{"social commentary", "propaganda", "dissent"}},
	{Name: "emotional", Keywords: []string{"emotional", "expressive", "feeling"}, Synonyms: []string{"passionate", "cathartic", "visceral"}},
	{Name: "conceptual", Keywords: []string{"conceptual", "idea-based", "concept"}, Synonyms: []string{"intellectual", "theoretical", "meta"}},
	{Name: "surreal", Keywords: []string{"surreal", "dreamlike", "uncanny"}, Synonyms: []string{"fantastical", "bizarre", "otherworldly"}},
	{Name: "realistic", Keywords: []string{"realistic", "lifelike", "true to life"}, Synonyms: []string{"photorealistic", "naturalistic", "verisimilitude"}},
	{Name: "narrative", Keywords: []string{"narrative", "story", "storytelling"}, Synonyms: []string{"allegorical", "mythological", "historical scene"}},
	{Name: "experimental", Keywords: []string{"experimental", "avant-garde", "innovative"}, Synonyms: []string{"unconventional", "boundary-pushing", "radical"}},
}

// emotionCategories cover the affective vocabulary of queries.
var emotionCategories = []Category{
	{Name: "joy", Keywords: []string{"joy", "joyful", "happy", "happiness"}, Synonyms: []string{"cheerful", "uplifting", "delight"}},
	{Name: "serenity", Keywords: []string{"serene", "calm", "peaceful"}, Synonyms: []string{"tranquil", "soothing", "restful"}},
	{Name: "melancholy", Keywords: []string{"melancholy", "melancholic", "sad"}, Synonyms: []string{"sorrowful", "wistful", "somber"}},
	{Name: "passion", Keywords: []string{"passion", "passionate", "desire"}, Synonyms: []string{"fiery", "sensual", "ardent"}},
	{Name: "anger", Keywords: []string{"anger", "angry", "rage"}, Synonyms: []string{"furious", "aggressive", "violent"}},
	{Name: "fear", Keywords: []string{"fear", "fearful", "dread"}, Synonyms: []string{"ominous", "menacing", "unsettling"}},
	{Name: "wonder", Keywords: []string{"wonder", "awe", "amazement"}, Synonyms: []string{"marvel", "astonishing", "sublime"}},
	{Name: "nostalgia", Keywords: []string{"nostalgia", "nostalgic", "longing"}, Synonyms: []string{"reminiscent", "yearning", "bittersweet"}},
	{Name: "hope", Keywords: []string{"hope", "hopeful", "optimism"}, Synonyms: []string{"promising", "aspirational", "bright future"}},
	{Name: "loneliness", Keywords: []string{"lonely", "loneliness", "isolation"}, Synonyms: []string{"solitary", "desolate", "alienation"}},
	{Name: "love", Keywords: []string{"love", "loving", "tenderness"}, Synonyms: []string{"affection", "romance", "intimacy"}},
	{Name: "energy", Keywords: []string{"energetic", "energy", "vibrant"}, Synonyms: []string{"dynamic", "lively", "exuberant"}},
	{Name: "mystery", Keywords: []string{"mystery", "mysterious", "enigmatic"}, Synonyms: []string{"cryptic", "secretive", "shadowy"}},
	{Name: "tension", Keywords: []string{"tension", "tense", "anxious"}, Synonyms: []string{"uneasy", "restless", "charged"}},
	{Name: "freedom", Keywords: []string{"freedom", "free", "liberation"}, Synonyms: []string{"unbound", "open", "expansive"}},
	{Name: "contemplation", Keywords: []string{"contemplative", "contemplation", "reflective"}, Synonyms: []string{"pensive", "meditative", "introspective"}},
	{Name: "playfulness", Keywords: []string{"playful", "whimsical", "fun"}, Synonyms: []string{"lighthearted", "witty", "mischievous"}},
	{Name: "grief", Keywords: []string{"grief", "mourning", "loss"}, Synonyms: []string{"lament", "elegiac", "funereal"}},
	{Name: "euphoria", Keywords: []string{"euphoric", "euphoria", "ecstatic"}, Synonyms: []string{"rapturous", "blissful", "exhilarated"}},
}

// styleCategories span the art-historical movements the analyzer recognizes.
var styleCategories = []Category{
	{Name: "impressionism", Keywords: []string{"impressionism", "impressionist"}, Synonyms: []string{"plein air", "broken color"}},
	{Name: "post_impressionism", Keywords: []string{"post-impressionism", "post-impressionist"}},
	{Name: "expressionism", Keywords: []string{"expressionism", "expressionist"}, Synonyms: []string{"die brucke", "der blaue reiter"}},
	{Name: "abstract_expressionism", Keywords: []string{"abstract expressionism", "abstract expressionist"}, Synonyms: []string{"action painting", "new york school"}},
	{Name: "cubism", Keywords: []string{"cubism", "cubist"}, Synonyms: []string{"analytic cubism", "synthetic cubism"}},
	{Name: "surrealism", Keywords: []string{"surrealism", "surrealist"}, Synonyms: []string{"automatism", "dream imagery"}},
	{Name: "dada", Keywords: []string{"dada", "dadaism", "dadaist"}},
	{Name: "pop_art", Keywords: []string{"pop art", "pop-art"}, Synonyms: []string{"warhol style", "comic style"}},
	{Name: "minimalism", Keywords: []string{"minimalism", "minimalist", "minimal"}, Synonyms: []string{"reductive", "spare"}},
	{Name: "maximalism", Keywords: []string{"maximalism", "maximalist"}, Synonyms: []string{"ornate", "busy composition"}},
	{Name: "realism", Keywords: []string{"realism", "realist"}, Synonyms: []string{"social realism", "academic"}},
	{Name: "hyperrealism", Keywords: []string{"hyperrealism", "hyperrealist", "photorealism"}},
	{Name: "fauvism", Keywords: []string{"fauvism", "fauvist", "fauve"}},
	{Name: "futurism", Keywords: []string{"futurism", "futurist"}},
	{Name: "constructivism", Keywords: []string{"constructivism", "constructivist"}},
	{Name: "suprematism", Keywords: []string{"suprematism", "suprematist"}},
	{Name: "bauhaus", Keywords: []string{"bauhaus"}},
	{Name: "art_nouveau", Keywords: []string{"art nouveau", "jugendstil"}},
	{Name: "art_deco", Keywords: []string{"art deco", "deco"}},
	{Name: "baroque", Keywords: []string{"baroque"}, Synonyms: []string{"chiaroscuro", "tenebrism"}},
	{Name: "rococo", Keywords: []string{"rococo"}},
	{Name: "renaissance", Keywords: []string{"renaissance"}, Synonyms: []string{"quattrocento", "high renaissance"}},
	{Name: "mannerism", Keywords: []string{"mannerism", "mannerist"}},
	{Name: "romanticism", Keywords: []string{"romanticism", "romantic"}},
	{Name: "neoclassicism", Keywords: []string{"neoclassicism", "neoclassical"}},
	{Name: "symbolism", Keywords: []string{"symbolism", "symbolist"}},
	{Name: "pointillism", Keywords: []string{"pointillism", "pointillist", "divisionism"}},
	{Name: "op_art", Keywords: []string{"optical art", "op-art"}},
	{Name: "kinetic", Keywords: []string{"kinetic art", "kinetic"}},
	{Name: "land_art", Keywords: []string{"land art", "earthwork"}},
	{Name: "arte_povera", Keywords: []string{"arte povera"}},
	{Name: "fluxus", Keywords: []string{"fluxus"}},
	{Name: "color_field", Keywords: []string{"color field", "colour field"}},
	{Name: "hard_edge", Keywords: []string{"hard edge", "hard-edge"}},
	{Name: "naive", Keywords: []string{"naive art", "naive", "folk art"}, Synonyms: []string{"outsider art", "art brut"}},
	{Name: "primitivism", Keywords: []string{"primitivism", "primitivist"}},
	{Name: "orientalism", Keywords: []string{"orientalism", "orientalist"}},
	{Name: "ukiyo_e", Keywords: []string{"ukiyo-e", "ukiyo e", "japanese woodblock"}},
	{Name: "street_art", Keywords: []string{"street art", "graffiti art"}, Synonyms: []string{"stencil art", "mural"}},
	{Name: "lowbrow", Keywords: []string{"lowbrow", "pop surrealism"}},
	{Name: "digital_art", Keywords: []string{"digital art", "digital painting"}, Synonyms: []string{"generative art", "glitch art", "pixel art"}},
	{Name: "photography", Keywords: []string{"photography", "photographic"}, Synonyms: []string{"documentary photography", "fine art photography"}},
	{Name: "collage", Keywords: []string{"collage", "photomontage"}, Synonyms: []string{"mixed media assemblage"}},
	{Name: "installation", Keywords: []string{"installation art", "installation"}},
	{Name: "performance", Keywords: []string{"performance art", "performance"}},
	{Name: "video_art", Keywords: []string{"video art"}},
	{Name: "conceptual_art", Keywords: []string{"conceptual art", "conceptualism"}},
	{Name: "brutalism", Keywords: []string{"brutalism", "brutalist"}},
	{Name: "gothic", Keywords: []string{"gothic", "medieval"}},
	{Name: "contemporary", Keywords: []string{"contemporary", "contemporary art"}, Synonyms: []string{"21st century", "current"}},
}

// culturalCategories capture regional and cultural framings.
var culturalCategories = []Category{
	{Name: "african", Keywords: []string{"african", "west african", "pan-african"}},
	{Name: "east_asian", Keywords: []string{"chinese", "japanese", "korean", "east asian"}},
	{Name: "south_asian", Keywords: []string{"indian", "south asian", "mughal"}},
	{Name: "latin_american", Keywords: []string{"latin american", "mexican", "brazilian", "muralism"}},
	{Name: "middle_eastern", Keywords: []string{"middle eastern", "persian", "islamic", "arabic"}},
	{Name: "european", Keywords: []string{"european", "french", "italian", "dutch", "german"}},
	{Name: "north_american", Keywords: []string{"american", "north american", "canadian"}},
	{Name: "indigenous", Keywords: []string{"indigenous", "aboriginal", "first nations", "native american"}},
	{Name: "oceanic", Keywords: []string{"oceanic", "polynesian", "maori", "australian"}},
	{Name: "slavic", Keywords: []string{"russian", "slavic", "eastern european"}},
}

// temporalCategories capture era references.
var temporalCategories = []Category{
	{Name: "ancient", Keywords: []string{"ancient", "classical antiquity", "greco-roman"}},
	{Name: "medieval", Keywords: []string{"medieval", "middle ages"}},
	{Name: "renaissance_era", Keywords: []string{"renaissance era", "15th century", "16th century"}},
	{Name: "baroque_era", Keywords: []string{"17th century", "18th century"}},
	{Name: "nineteenth_century", Keywords: []string{"19th century", "victorian", "belle epoque"}},
	{Name: "early_modern", Keywords: []string{"early 20th century", "interwar", "fin de siecle"}},
	{Name: "postwar", Keywords: []string{"postwar", "post-war", "mid-century"}},
	{Name: "contemporary_era", Keywords: []string{"contemporary", "21st century", "present day", "modern day"}},
}
