package entities

// LanguageOption is a selectable target language.
type LanguageOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Flag  string `json:"flag"`
}

// Languages lists every supported target language.
var Languages = []LanguageOption{
	{Value: "en", Label: "English", Flag: "🇺🇸"},
	{Value: "es", Label: "Spanish", Flag: "🇪🇸"},
	{Value: "fr", Label: "French", Flag: "🇫🇷"},
	{Value: "de", Label: "German", Flag: "🇩🇪"},
	{Value: "it", Label: "Italian", Flag: "🇮🇹"},
	{Value: "pt", Label: "Portuguese", Flag: "🇵🇹"},
	{Value: "ru", Label: "Russian", Flag: "🇷🇺"},
	{Value: "zh", Label: "Chinese", Flag: "🇨🇳"},
	{Value: "ja", Label: "Japanese", Flag: "🇯🇵"},
	{Value: "ko", Label: "Korean", Flag: "🇰🇷"},
	{Value: "ar", Label: "Arabic", Flag: "🇸🇦"},
	{Value: "hi", Label: "Hindi", Flag: "🇮🇳"},
	{Value: "bn", Label: "Bengali", Flag: "🇧🇩"},
	{Value: "pa", Label: "Punjabi", Flag: "🇮🇳"},
	{Value: "vi", Label: "Vietnamese", Flag: "🇻🇳"},
	{Value: "th", Label: "Thai", Flag: "🇹🇭"},
	{Value: "tr", Label: "Turkish", Flag: "🇹🇷"},
	{Value: "pl", Label: "Polish", Flag: "🇵🇱"},
	{Value: "uk", Label: "Ukrainian", Flag: "🇺🇦"},
	{Value: "nl", Label: "Dutch", Flag: "🇳🇱"},
	{Value: "sv", Label: "Swedish", Flag: "🇸🇪"},
	{Value: "da", Label: "Danish", Flag: "🇩🇰"},
	{Value: "no", Label: "Norwegian", Flag: "🇳🇴"},
	{Value: "fi", Label: "Finnish", Flag: "🇫🇮"},
	{Value: "cs", Label: "Czech", Flag: "🇨🇿"},
	{Value: "el", Label: "Greek", Flag: "🇬🇷"},
	{Value: "he", Label: "Hebrew", Flag: "🇮🇱"},
	{Value: "id", Label: "Indonesian", Flag: "🇮🇩"},
	{Value: "ms", Label: "Malay", Flag: "🇲🇾"},
	{Value: "tl", Label: "Filipino", Flag: "🇵🇭"},
	{Value: "ro", Label: "Romanian", Flag: "🇷🇴"},
	{Value: "hu", Label: "Hungarian", Flag: "🇭🇺"},
	{Value: "sk", Label: "Slovak", Flag: "🇸🇰"},
	{Value: "bg", Label: "Bulgarian", Flag: "🇧🇬"},
	{Value: "hr", Label: "Croatian", Flag: "🇭🇷"},
	{Value: "sr", Label: "Serbian", Flag: "🇷🇸"},
	{Value: "sl", Label: "Slovenian", Flag: "🇸🇮"},
	{Value: "et", Label: "Estonian", Flag: "🇪🇪"},
	{Value: "lv", Label: "Latvian", Flag: "🇱🇻"},
	{Value: "lt", Label: "Lithuanian", Flag: "🇱🇹"},
	{Value: "sw", Label: "Swahili", Flag: "🇰🇪"},
	{Value: "ta", Label: "Tamil", Flag: "🇮🇳"},
	{Value: "te", Label: "Telugu", Flag: "🇮🇳"},
	{Value: "mr", Label: "Marathi", Flag: "🇮🇳"},
	{Value: "gu", Label: "Gujarati", Flag: "🇮🇳"},
	{Value: "kn", Label: "Kannada", Flag: "🇮🇳"},
	{Value: "ml", Label: "Malayalam", Flag: "🇮🇳"},
	{Value: "ur", Label: "Urdu", Flag: "🇵🇰"},
	{Value: "fa", Label: "Persian", Flag: "🇮🇷"},
	{Value: "af", Label: "Afrikaans", Flag: "🇿🇦"},
}

// LanguageLabel resolves a language code to its display name.
func LanguageLabel(code string) (string, bool) {
	for _, lang := range Languages {
		if lang.Value == code {
			return lang.Label, true
		}
	}
	return "", false
}

// IsValidLanguage reports whether the code is a supported language.
func IsValidLanguage(code string) bool {
	_, ok := LanguageLabel(code)
	return ok
}

// LocationOption is a selectable conversation setting.
type LocationOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Locations lists every conversation setting.
var Locations = []LocationOption{
	{Value: "coffee_shop", Label: "Coffee Shop"},
	{Value: "restaurant", Label: "Restaurant"},
	{Value: "airport", Label: "Airport"},
	{Value: "hotel", Label: "Hotel"},
	{Value: "grocery", Label: "Grocery Store"},
	{Value: "doctor", Label: "Doctor's Office"},
	{Value: "pharmacy", Label: "Pharmacy"},
	{Value: "bank", Label: "Bank"},
	{Value: "transit", Label: "Public Transit"},
	{Value: "clothing", Label: "Clothing Store"},
}

// LocationLabel resolves a location value to its display name.
func LocationLabel(location string) (string, bool) {
	for _, loc := range Locations {
		if loc.Value == location {
			return loc.Label, true
		}
	}
	return "", false
}

// IsValidLocation reports whether the location is part of the catalog.
func IsValidLocation(location string) bool {
	_, ok := LocationLabel(location)
	return ok
}

// Situations maps each location to its suggested scenarios.
var Situations = map[string][]string{
	"coffee_shop": {
		"Ordering a drink",
		"Asking for WiFi password",
		"Finding a seat",
		"Asking about menu items",
	},
	"restaurant": {
		"Ordering food",
		"Making a reservation",
		"Asking about allergies",
		"Requesting the check",
		"Complaining about an order",
	},
	"airport": {
		"Checking in",
		"Going through security",
		"Finding your gate",
		"Reporting lost luggage",
		"Asking about delays",
	},
	"hotel": {
		"Checking in",
		"Requesting extra towels",
		"Asking for recommendations",
		"Reporting a room problem",
		"Checking out",
	},
	"grocery": {
		"Finding an item",
		"Asking about prices",
		"Checking out",
		"Returning an item",
	},
	"doctor": {
		"Describing symptoms",
		"Making an appointment",
		"Asking about medication",
		"Checking in",
	},
	"pharmacy": {
		"Picking up prescription",
		"Asking for recommendations",
		"Asking about side effects",
	},
	"bank": {
		"Opening an account",
		"Asking about fees",
		"Reporting lost card",
		"Making a deposit",
	},
	"transit": {
		"Buying a ticket",
		"Asking for directions",
		"Asking about delays",
	},
	"clothing": {
		"Asking for a size",
		"Finding fitting room",
		"Asking about returns",
		"Paying",
	},
}

// Difficulty is the target proficiency level of a lesson.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DifficultyOption describes a difficulty level for the catalog API.
type DifficultyOption struct {
	Value       Difficulty `json:"value"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
}

// Difficulties lists all selectable difficulty levels.
var Difficulties = []DifficultyOption{
	{Value: DifficultyBeginner, Label: "Beginner", Description: "Simple vocabulary, short sentences"},
	{Value: DifficultyIntermediate, Label: "Intermediate", Description: "Natural phrases, common idioms"},
	{Value: DifficultyAdvanced, Label: "Advanced", Description: "Complex expressions, nuanced dialogue"},
}

// IsValidDifficulty reports whether the difficulty is a known level.
func IsValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Character pairs a scene role with its fixed persona name.
type Character struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// LocationCharacters holds the character choices for both speakers at a
// location. The learner picks from You, the partner from Them.
type LocationCharacters struct {
	You  []Character `json:"you"`
	Them []Character `json:"them"`
}

// Characters maps each location to its fixed cast.
var Characters = map[string]LocationCharacters{
	"coffee_shop": {
		You: []Character{
			{Role: "Customer", Name: "Maria"},
			{Role: "Barista", Name: "Jordan"},
			{Role: "Manager", Name: "Lisa"},
		},
		Them: []Character{
			{Role: "Barista", Name: "Jordan"},
			{Role: "Manager", Name: "Lisa"},
			{Role: "Customer", Name: "Maria"},
		},
	},
	"restaurant": {
		You: []Character{
			{Role: "Customer", Name: "Alex"},
			{Role: "Server", Name: "Jordan"},
			{Role: "Host", Name: "Sofia"},
		},
		Them: []Character{
			{Role: "Server", Name: "Jordan"},
			{Role: "Host", Name: "Sofia"},
			{Role: "Manager", Name: "Kevin"},
			{Role: "Customer", Name: "Alex"},
		},
	},
	"airport": {
		You: []Character{
			{Role: "Traveler", Name: "James"},
			{Role: "Airline Staff", Name: "Ben"},
			{Role: "Security Officer", Name: "Michael"},
			{Role: "Gate Agent", Name: "Ana"},
		},
		Them: []Character{
			{Role: "Gate Agent", Name: "Ana"},
			{Role: "Security Officer", Name: "Michael"},
			{Role: "Airline Staff", Name: "Ben"},
			{Role: "Traveler", Name: "James"},
		},
	},
	"hotel": {
		You: []Character{
			{Role: "Guest", Name: "Sarah"},
			{Role: "Front Desk Staff", Name: "Kevin"},
			{Role: "Concierge", Name: "Sofia"},
		},
		Them: []Character{
			{Role: "Front Desk Staff", Name: "Kevin"},
			{Role: "Concierge", Name: "Sofia"},
			{Role: "Bellhop", Name: "Hassan"},
			{Role: "Guest", Name: "Sarah"},
		},
	},
	"grocery": {
		You: []Character{
			{Role: "Shopper", Name: "Emma"},
			{Role: "Cashier", Name: "Ben"},
			{Role: "Stock Clerk", Name: "Jordan"},
		},
		Them: []Character{
			{Role: "Cashier", Name: "Ben"},
			{Role: "Stock Clerk", Name: "Jordan"},
			{Role: "Customer Service", Name: "Lisa"},
			{Role: "Shopper", Name: "Emma"},
		},
	},
	"doctor": {
		You: []Character{
			{Role: "Patient", Name: "Alex"},
			{Role: "Receptionist", Name: "Ana"},
			{Role: "Nurse", Name: "Nina"},
		},
		Them: []Character{
			{Role: "Doctor", Name: "Michael"},
			{Role: "Receptionist", Name: "Ana"},
			{Role: "Nurse", Name: "Nina"},
			{Role: "Patient", Name: "Alex"},
		},
	},
	"pharmacy": {
		You: []Character{
			{Role: "Customer", Name: "David"},
			{Role: "Pharmacist", Name: "Mei"},
			{Role: "Pharmacy Tech", Name: "Hassan"},
		},
		Them: []Character{
			{Role: "Pharmacist", Name: "Mei"},
			{Role: "Pharmacy Tech", Name: "Hassan"},
			{Role: "Customer", Name: "David"},
		},
	},
	"bank": {
		You: []Character{
			{Role: "Customer", Name: "Carlos"},
			{Role: "Teller", Name: "Nina"},
			{Role: "Account Manager", Name: "Michael"},
		},
		Them: []Character{
			{Role: "Teller", Name: "Nina"},
			{Role: "Account Manager", Name: "Michael"},
			{Role: "Customer Service", Name: "Ana"},
			{Role: "Customer", Name: "Carlos"},
		},
	},
	"transit": {
		You: []Character{
			{Role: "Rider", Name: "Yuki"},
			{Role: "Ticket Agent", Name: "Ben"},
			{Role: "Bus Driver", Name: "Hassan"},
		},
		Them: []Character{
			{Role: "Ticket Agent", Name: "Ben"},
			{Role: "Bus Driver", Name: "Hassan"},
			{Role: "Station Attendant", Name: "Sofia"},
			{Role: "Rider", Name: "Yuki"},
		},
	},
	"clothing": {
		You: []Character{
			{Role: "Shopper", Name: "Priya"},
			{Role: "Sales Associate", Name: "Jordan"},
			{Role: "Cashier", Name: "Mei"},
		},
		Them: []Character{
			{Role: "Sales Associate", Name: "Jordan"},
			{Role: "Cashier", Name: "Mei"},
			{Role: "Manager", Name: "Lisa"},
			{Role: "Shopper", Name: "Priya"},
		},
	},
}

// QuizCardOption describes a quiz card type toggle for the catalog API.
type QuizCardOption struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// QuizCardTypes lists the quiz card types that can be toggled per lesson.
var QuizCardTypes = []QuizCardOption{
	{Key: "vocab_l2_to_l1", Label: "Vocab (L2 to L1)", Description: `"What does 'coffee' mean?"`},
	{Key: "vocab_l1_to_l2", Label: "Vocab (L1 to L2)", Description: `"How do you say 'café' in English?"`},
	{Key: "phrase_meaning", Label: "Phrase Meaning", Description: `"What does 'Can I get a...' mean?"`},
	{Key: "comprehension", Label: "Comprehension", Description: `"What did Maria order?"`},
}
