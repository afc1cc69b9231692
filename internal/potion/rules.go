package potion

import (
	"fmt"
	"sort"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// ComboCounts is the category breakdown of a valid variant
type ComboCounts struct {
	Binders   int `json:"binders"`
	Catalysts int `json:"catalysts"`
	Reactants int `json:"reactants"`
}

// ValidateCombo checks a recipe variant: every ingredient exists with a known
// category, there is at least one reactant and at most one binder and one catalyst.
func (c *Catalog) ValidateCombo(names []string) (ComboCounts, error) {
	var counts ComboCounts
	if len(names) == 0 {
		return counts, fmt.Errorf("%w: a variant needs at least one ingredient", domain.ErrInvalidCombo)
	}

	for _, n := range names {
		if n == "" {
			return counts, fmt.Errorf("%w: empty ingredient name", domain.ErrIngredientNotFound)
		}
		ing, ok := c.Ingredient(n)
		if !ok {
			return counts, fmt.Errorf("%w: %q", domain.ErrIngredientNotFound, n)
		}
		cat, err := NormalizeCategory(ing.Category)
		if err != nil {
			return counts, err
		}
		switch cat {
		case domain.CategoryBinder:
			counts.Binders++
		case domain.CategoryCatalyst:
			counts.Catalysts++
		case domain.CategoryReactant:
			counts.Reactants++
		}
	}

	if counts.Reactants < 1 {
		return counts, fmt.Errorf("%w: every variant needs at least one %s", domain.ErrInvalidCombo, domain.CategoryReactant)
	}
	if counts.Binders > 1 || counts.Catalysts > 1 {
		return counts, fmt.Errorf("%w: at most one %s and one %s per variant", domain.ErrInvalidCombo, domain.CategoryBinder, domain.CategoryCatalyst)
	}
	return counts, nil
}

// FindDuplicates returns names appearing more than once, sorted
func FindDuplicates(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	dups := make(map[string]struct{})
	for _, n := range names {
		if _, ok := seen[n]; ok {
			dups[n] = struct{}{}
			continue
		}
		seen[n] = struct{}{}
	}
	return sortedKeys(dups)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
