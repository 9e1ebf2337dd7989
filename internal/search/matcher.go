// Package search implements the offline fallback: a conjunctive substring
// filter over the bundled scheme catalog. It is deliberately simple: no
// ranking, stemming, or word boundaries. Matching results render in the
// caller's language in catalog order.
package search

import (
	"strings"

	"github.com/ppiankov/yojana/internal/catalog"
	"github.com/ppiankov/yojana/internal/i18n"
	"github.com/ppiankov/yojana/internal/model"
)

// maxResults caps how many matched schemes are rendered
const maxResults = 10

// Matcher performs local scheme search over an immutable catalog.
// It is pure and safe for concurrent use.
type Matcher struct {
	catalog *catalog.Catalog
}

// NewMatcher creates a matcher over the given catalog
func NewMatcher(c *catalog.Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Search filters the catalog by the query and renders the matches as a
// single localized markdown block. It never fails: an empty query yields
// a localized prompt and zero matches yield a localized suggestion.
func (m *Matcher) Search(query, language string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return i18n.T(language, "search.empty_query")
	}

	// Fields(q) drops empty tokens from repeated whitespace; tokens are
	// not deduplicated on purpose (duplicates are harmless under AND).
	tokens := strings.Fields(q)

	var matches []*model.Scheme
	schemes := m.catalog.Schemes()
	for i := range schemes {
		if matchesAll(&schemes[i], tokens) {
			matches = append(matches, &schemes[i])
		}
	}

	if len(matches) == 0 {
		return i18n.T(language, "search.no_results")
	}

	var b strings.Builder
	b.WriteString(i18n.Sprintf(language, "search.header", len(matches)))

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	for _, s := range matches {
		renderScheme(&b, s, language)
	}

	return b.String()
}

// Matches reports whether a single scheme matches the query, using the
// same normalization as Search. Exposed for tests and future callers.
func (m *Matcher) Matches(s *model.Scheme, query string) bool {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(tokens) == 0 {
		return false
	}
	return matchesAll(s, tokens)
}

// matchesAll is the conjunctive filter: every token must appear as a
// substring of the scheme's search space. Lower-casing is the only
// normalization; for scripts without case the bytes compare verbatim.
func matchesAll(s *model.Scheme, tokens []string) bool {
	space := searchSpace(s)
	for _, tok := range tokens {
		if !strings.Contains(space, tok) {
			return false
		}
	}
	return true
}

// searchSpace concatenates every localized name and description together
// with the category and provider, lower-cased.
func searchSpace(s *model.Scheme) string {
	var parts []string
	for _, n := range s.Names {
		parts = append(parts, n)
	}
	for _, d := range s.Descriptions {
		parts = append(parts, d)
	}
	parts = append(parts, s.Category, s.Provider)
	return strings.ToLower(strings.Join(parts, " "))
}

func renderScheme(b *strings.Builder, s *model.Scheme, language string) {
	b.WriteString("### " + catalog.Name(s, language) + "\n")
	b.WriteString("**" + i18n.T(language, "search.category") + ":** " + s.Category + " (" + s.Provider + ")\n\n")
	b.WriteString(catalog.Description(s, language) + "\n\n")
	b.WriteString("📋 **" + i18n.T(language, "search.eligibility") + ":** " + strings.Join(s.Eligibility, ", ") + "\n")
	b.WriteString("✅ **" + i18n.T(language, "search.benefits") + ":** " + strings.Join(s.Benefits, ", ") + "\n")
	b.WriteString("📄 **" + i18n.T(language, "search.documents") + ":** " + strings.Join(s.Documents, ", ") + "\n")
	b.WriteString("🔗 [" + i18n.T(language, "search.apply") + "](" + s.ApplyLink + ")\n\n---\n\n")
}
