// Package discovery implements the structured-output variants of the
// remote advisor: the "new schemes" feed and the scheme comparator.
// Both share the degradation pattern of the chat path: any remote
// failure resolves to catalog-derived data plus a degraded flag.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ppiankov/yojana/internal/advisor"
	"github.com/ppiankov/yojana/internal/cache"
	"github.com/ppiankov/yojana/internal/catalog"
	"github.com/ppiankov/yojana/internal/i18n"
	"github.com/ppiankov/yojana/internal/model"
)

// localLatestCount is how many catalog entries the fallback feed shows
const localLatestCount = 4

// Service fetches discovery data with local fallback
type Service struct {
	provider advisor.Provider // nil when unconfigured
	catalog  *catalog.Catalog
	cache    cache.Cache // nil disables caching
	cacheTTL time.Duration
}

// NewService creates a discovery service. Pass a nil cache to disable
// response caching.
func NewService(provider advisor.Provider, cat *catalog.Catalog, c cache.Cache, ttl time.Duration) *Service {
	return &Service{
		provider: provider,
		catalog:  cat,
		cache:    c,
		cacheTTL: ttl,
	}
}

// LatestResult is the outcome of a feed fetch
type LatestResult struct {
	Schemes  []model.SchemeSummary
	Degraded bool // True when served from the bundled catalog
}

// Latest returns recently introduced schemes, remote when possible. It
// never fails: every error path falls back to the bundled catalog.
func (s *Service) Latest(ctx context.Context, language string) *LatestResult {
	key := cache.Key("latest", language)
	if s.cache != nil {
		if raw, found := s.cache.Get(key); found {
			var schemes []model.SchemeSummary
			if err := json.Unmarshal(raw, &schemes); err == nil && len(schemes) > 0 {
				return &LatestResult{Schemes: schemes}
			}
		}
	}

	if s.provider == nil {
		return s.localLatest(language)
	}

	raw, err := s.provider.GenerateJSON(ctx, latestSystemPrompt, latestPrompt(language))
	if err != nil {
		return s.localLatest(language)
	}

	var payload struct {
		Schemes []model.SchemeSummary `json:"schemes"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Schemes) == 0 {
		return s.localLatest(language)
	}

	if s.cache != nil {
		if data, err := json.Marshal(payload.Schemes); err == nil {
			_ = s.cache.Set(key, data, s.cacheTTL)
		}
	}
	return &LatestResult{Schemes: payload.Schemes}
}

// localLatest derives the feed from the first catalog entries
func (s *Service) localLatest(language string) *LatestResult {
	schemes := s.catalog.Schemes()
	n := localLatestCount
	if len(schemes) < n {
		n = len(schemes)
	}

	out := make([]model.SchemeSummary, 0, n)
	for i := 0; i < n; i++ {
		sch := &schemes[i]
		out = append(out, model.SchemeSummary{
			Name:        catalog.Name(sch, language),
			Provider:    sch.Provider,
			Description: catalog.Description(sch, language),
			Benefits:    sch.Benefits,
			Documents:   sch.Documents,
			ApplyLink:   sch.ApplyLink,
		})
	}
	return &LatestResult{Schemes: out, Degraded: true}
}

// CompareResult is the outcome of a comparison
type CompareResult struct {
	Comparison *model.Comparison // nil when unresolvable
	Message    string            // Localized note when Comparison is nil
	Degraded   bool
}

// Compare produces a side-by-side comparison of two schemes. On remote
// failure it rebuilds the comparison from the catalog when both names
// resolve, else returns a localized unavailable message. Never fails.
func (s *Service) Compare(ctx context.Context, nameA, nameB, language string) *CompareResult {
	key := cache.Key("compare", nameA, nameB, language)
	if s.cache != nil {
		if raw, found := s.cache.Get(key); found {
			var cmp model.Comparison
			if err := json.Unmarshal(raw, &cmp); err == nil && cmp.SchemeA.Name != "" {
				return &CompareResult{Comparison: &cmp}
			}
		}
	}

	if s.provider != nil {
		raw, err := s.provider.GenerateJSON(ctx, compareSystemPrompt, comparePrompt(nameA, nameB, language))
		if err == nil {
			var cmp model.Comparison
			if err := json.Unmarshal(raw, &cmp); err == nil && cmp.SchemeA.Name != "" && cmp.SchemeB.Name != "" {
				if s.cache != nil {
					if data, err := json.Marshal(cmp); err == nil {
						_ = s.cache.Set(key, data, s.cacheTTL)
					}
				}
				return &CompareResult{Comparison: &cmp}
			}
		}
	}

	return s.localCompare(nameA, nameB, language)
}

// localCompare builds the comparison from catalog data when possible
func (s *Service) localCompare(nameA, nameB, language string) *CompareResult {
	a := s.catalog.Find(nameA)
	b := s.catalog.Find(nameB)
	if a == nil || b == nil {
		return &CompareResult{
			Message:  i18n.T(language, "compare.unavailable"),
			Degraded: true,
		}
	}

	return &CompareResult{
		Comparison: &model.Comparison{
			SchemeA: schemeDetail(a, language),
			SchemeB: schemeDetail(b, language),
			Summary: i18n.T(language, "compare.local_summary"),
		},
		Degraded: true,
	}
}

func schemeDetail(s *model.Scheme, language string) model.SchemeDetail {
	return model.SchemeDetail{
		Name:        catalog.Name(s, language),
		Provider:    s.Provider,
		Description: catalog.Description(s, language),
		Benefits:    s.Benefits,
		Eligibility: s.Eligibility,
		Documents:   s.Documents,
		ApplyLink:   s.ApplyLink,
	}
}

const latestSystemPrompt = "You are a policy analyst tracking new Indian government initiatives. Return structured JSON data. Use search grounding where available to ensure real-time accuracy."

func latestPrompt(language string) string {
	return fmt.Sprintf(`List 5 NEWLY introduced Indian government schemes (Central or State) from the last two years.
For each scheme, provide its name, provider, a short description, key benefits, and SPECIFIC REQUIRED DOCUMENTS.
Translate all content to %s.
Return a JSON object of the form {"schemes": [{"name", "provider", "description", "benefits": [], "documents": [], "applyLink", "tags": []}]}.`, language)
}

const compareSystemPrompt = "You are an expert in Indian government policies. Return structured JSON data for comparison."

func comparePrompt(nameA, nameB, language string) string {
	return fmt.Sprintf(`Compare the following two Indian government schemes in detail: %s and %s.
Return the response in %s.
Return a JSON object of the form {"schemeA": {"name", "provider", "description", "benefits": [], "eligibility": [], "documents": [], "applyLink"}, "schemeB": {...}, "summary"} where summary is a brief side-by-side analysis of key differences.`, nameA, nameB, language)
}
