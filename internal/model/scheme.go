package model

// Scheme represents one government welfare program in the bundled catalog
type Scheme struct {
	ID           string            `json:"id"`                // Stable unique key (e.g., "pm-kisan")
	Category     string            `json:"category"`          // Free-text classification (e.g., "Agriculture")
	Provider     string            `json:"provider"`          // Issuing authority (e.g., "Central Government")
	Names        map[string]string `json:"names"`             // Language -> localized display name
	Descriptions map[string]string `json:"descriptions"`      // Language -> localized description
	Benefits     []string          `json:"benefits"`          // Short benefit strings
	Eligibility  []string          `json:"eligibility"`       // Plain-text eligibility criteria
	Documents    []string          `json:"documents"`         // Required document names
	ApplyLink    string            `json:"applyLink"`         // Application URL (never validated at load)
}

// Supported languages
// Every catalog entry carries at least an English name and description;
// lookups for any other language fall back to English.
const (
	LangEnglish   = "English"
	LangHindi     = "Hindi"
	LangMarathi   = "Marathi"
	LangTamil     = "Tamil"
	LangBengali   = "Bengali"
	LangTelugu    = "Telugu"
	LangKannada   = "Kannada"
	LangGujarati  = "Gujarati"
	LangMalayalam = "Malayalam"
	LangPunjabi   = "Punjabi"
	LangUrdu      = "Urdu"
)

// SupportedLanguages returns the fixed language enumeration
func SupportedLanguages() []string {
	return []string{
		LangEnglish,
		LangHindi,
		LangMarathi,
		LangTamil,
		LangBengali,
		LangTelugu,
		LangKannada,
		LangGujarati,
		LangMalayalam,
		LangPunjabi,
		LangUrdu,
	}
}

// IsLanguageSupported checks if a language is part of the fixed set.
// Unsupported languages still work everywhere via the English fallback;
// this is only used for CLI validation messages.
func IsLanguageSupported(lang string) bool {
	for _, l := range SupportedLanguages() {
		if l == lang {
			return true
		}
	}
	return false
}

// SchemeSummary is the flattened, single-language shape used by the
// discovery feed (remote structured output and its local fallback)
type SchemeSummary struct {
	Name        string   `json:"name"`
	Provider    string   `json:"provider"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Documents   []string `json:"documents"`
	ApplyLink   string   `json:"applyLink"`
	Tags        []string `json:"tags,omitempty"`
}

// SchemeDetail is one side of a scheme comparison
type SchemeDetail struct {
	Name        string   `json:"name"`
	Provider    string   `json:"provider"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Eligibility []string `json:"eligibility"`
	Documents   []string `json:"documents"`
	ApplyLink   string   `json:"applyLink"`
}

// Comparison is the structured side-by-side comparison of two schemes
type Comparison struct {
	SchemeA SchemeDetail `json:"schemeA"`
	SchemeB SchemeDetail `json:"schemeB"`
	Summary string       `json:"summary"`
}
