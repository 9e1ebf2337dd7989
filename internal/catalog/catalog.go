// Package catalog holds the bundled scheme dataset. The catalog is static
// reference data compiled into the binary: it is loaded once, never mutated,
// and therefore safe to share across any number of goroutines.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ppiankov/yojana/internal/model"
)

//go:embed schemes.json
var schemesJSON []byte

// Catalog is the immutable in-memory scheme dataset
type Catalog struct {
	schemes []model.Scheme
	byID    map[string]*model.Scheme
}

// Load parses the embedded dataset. The data is bundled, so failure here
// means a broken build, not a runtime condition.
func Load() (*Catalog, error) {
	var data struct {
		Schemes []model.Scheme `json:"schemes"`
	}
	if err := json.Unmarshal(schemesJSON, &data); err != nil {
		return nil, fmt.Errorf("parse bundled schemes: %w", err)
	}
	if len(data.Schemes) == 0 {
		return nil, fmt.Errorf("bundled scheme dataset is empty")
	}

	c := &Catalog{
		schemes: data.Schemes,
		byID:    make(map[string]*model.Scheme, len(data.Schemes)),
	}
	for i := range c.schemes {
		c.byID[c.schemes[i].ID] = &c.schemes[i]
	}
	return c, nil
}

// MustLoad is Load for callers that treat a broken dataset as fatal
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Schemes returns all schemes in catalog order. Callers must not mutate.
func (c *Catalog) Schemes() []model.Scheme {
	return c.schemes
}

// Len returns the number of schemes in the catalog
func (c *Catalog) Len() int {
	return len(c.schemes)
}

// ByID looks up a scheme by its stable key, nil if absent
func (c *Catalog) ByID(id string) *model.Scheme {
	return c.byID[id]
}

// Find returns the first scheme whose localized or English name contains
// the given text, case-insensitively. Used by the comparison fallback to
// resolve free-text scheme names against the catalog.
func (c *Catalog) Find(name string) *model.Scheme {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	for i := range c.schemes {
		for _, n := range c.schemes[i].Names {
			if strings.Contains(strings.ToLower(n), needle) {
				return &c.schemes[i]
			}
		}
	}
	return nil
}

// Name returns the scheme name in the given language, falling back to
// English, then to the empty string.
func Name(s *model.Scheme, lang string) string {
	return localized(s.Names, lang)
}

// Description returns the scheme description in the given language with
// the same fallback rule as Name.
func Description(s *model.Scheme, lang string) string {
	return localized(s.Descriptions, lang)
}

func localized(values map[string]string, lang string) string {
	if v, ok := values[lang]; ok {
		return v
	}
	return values[model.LangEnglish]
}
