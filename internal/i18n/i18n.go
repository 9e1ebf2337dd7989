// Package i18n provides localized UI strings for the fixed language set.
// Lookups always fall back to English when a language has no translation,
// so callers may pass any language name without checking support first.
package i18n

import (
	"fmt"

	"github.com/ppiankov/yojana/internal/model"
)

// messages maps language -> key -> translated string
var messages = map[string]map[string]string{}

func register(lang string, set map[string]string) {
	messages[lang] = set
}

// T returns the translated message for key in the given language,
// falling back to English, then to the key itself.
func T(lang, key string) string {
	if set, ok := messages[lang]; ok {
		if msg, ok := set[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[model.LangEnglish][key]; ok {
		return msg
	}
	return key
}

// Sprintf returns the translated and formatted message
func Sprintf(lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// Has reports whether an exact (non-fallback) translation exists
func Has(lang, key string) bool {
	set, ok := messages[lang]
	if !ok {
		return false
	}
	_, ok = set[key]
	return ok
}
