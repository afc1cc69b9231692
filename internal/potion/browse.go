package potion

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// IngredientView is an ingredient card in the creator view
type IngredientView struct {
	domain.Ingredient
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// VisibleIngredients lists the ingredients unlocked by books that pass the
// category and origin filters, sorted by category order then name.
func (c *Catalog) VisibleIngredients(filters domain.PotionFilters, books []string, sel domain.PotionSelection) []IngredientView {
	wanted := make(map[string]struct{}, len(filters.Origins))
	for _, o := range filters.Origins {
		wanted[o] = struct{}{}
	}

	views := make([]IngredientView, 0, len(c.ingredients))
	for _, ing := range c.ingredients {
		typ := SelectionType(ing.Category)
		if filters.Cat != "" && filters.Cat != domain.FilterCategoryAll && !matchesFilterType(ing.Category, filters.Cat) {
			continue
		}
		if len(wanted) > 0 && !anyIn(ing.Origins, wanted) {
			continue
		}
		if !IsUnlocked(ing.Books, books) {
			continue
		}
		views = append(views, IngredientView{Ingredient: ing, Type: typ, Active: isActive(sel, typ, ing.Name)})
	}

	col := collate.New(language.French)
	sort.SliceStable(views, func(i, j int) bool {
		ri, rj := rankOf(views[i].Category), rankOf(views[j].Category)
		if ri != rj {
			return ri < rj
		}
		return col.CompareString(strings.ToLower(views[i].Name), strings.ToLower(views[j].Name)) < 0
	})
	return views
}

// matchesFilterType only accepts the three known categories, so an
// uncategorized ingredient is hidden by every slot filter
func matchesFilterType(category, filterType string) bool {
	if _, known := categoryOrder[category]; !known {
		return false
	}
	return SelectionType(category) == filterType
}

func anyIn(list []string, set map[string]struct{}) bool {
	for _, v := range list {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

func isActive(sel domain.PotionSelection, typ, name string) bool {
	switch typ {
	case domain.SelectionBinder:
		return sel.Binder == name
	case domain.SelectionCatalyst:
		return sel.Catalyst == name
	default:
		for _, r := range sel.Reactants {
			if r == name {
				return true
			}
		}
		return false
	}
}

// VisibleRecipes returns recipes unlocked by books, in catalog order
func (c *Catalog) VisibleRecipes(books []string) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		if IsUnlocked(r.Books, books) {
			out = append(out, r)
		}
	}
	return out
}
