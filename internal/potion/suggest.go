package potion

import (
	"sort"
	"strings"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// CompletionRequest is a partial combo to complete. Empty slots are filled.
type CompletionRequest struct {
	Binder          string   `json:"binder"`
	Catalyst        string   `json:"catalyst"`
	Reactant        string   `json:"reactant"`
	PreferHighest   bool     `json:"prefer_highest"`
	RestrictBooks   []string `json:"restrict_books"`
	RestrictOrigins []string `json:"restrict_origins"`
}

// Completion is a suggested binder, catalyst and reactant trio. A slot stays
// empty when no ingredient qualifies.
type Completion struct {
	Binder   string `json:"binder"`
	Catalyst string `json:"catalyst"`
	Reactant string `json:"reactant"`
}

// SuggestCompletion fills the missing slots of req with the lowest-difficulty
// ingredient of each category (highest with PreferHighest), ties broken by
// lowercase name. Restrictions keep candidates sharing any listed book or origin.
func (c *Catalog) SuggestCompletion(req CompletionRequest) Completion {
	books := toSet(req.RestrictBooks)
	origins := toSet(req.RestrictOrigins)

	pick := func(category string) string {
		var candidates []domain.Ingredient
		for _, ing := range c.ingredients {
			if ing.Category != category {
				continue
			}
			if len(books) > 0 && !anyIn(ing.Books, books) {
				continue
			}
			if len(origins) > 0 && !anyIn(ing.Origins, origins) {
				continue
			}
			candidates = append(candidates, ing)
		}
		if len(candidates) == 0 {
			return ""
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.Difficulty != b.Difficulty {
				if req.PreferHighest {
					return a.Difficulty > b.Difficulty
				}
				return a.Difficulty < b.Difficulty
			}
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
		return candidates[0].Name
	}

	out := Completion{Binder: req.Binder, Catalyst: req.Catalyst, Reactant: req.Reactant}
	if out.Binder == "" {
		out.Binder = pick(domain.CategoryBinder)
	}
	if out.Catalyst == "" {
		out.Catalyst = pick(domain.CategoryCatalyst)
	}
	if out.Reactant == "" {
		out.Reactant = pick(domain.CategoryReactant)
	}
	return out
}

// ByCategory lists one category sorted by difficulty then lowercase name
func (c *Catalog) ByCategory(category string) ([]domain.Ingredient, error) {
	cat, err := NormalizeCategory(category)
	if err != nil {
		return nil, err
	}
	var out []domain.Ingredient
	for _, ing := range c.ingredients {
		if ing.Category == cat {
			out = append(out, ing)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Difficulty != out[j].Difficulty {
			return out[i].Difficulty < out[j].Difficulty
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}
