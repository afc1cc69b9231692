package potion

import (
	"fmt"
	"strings"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// Compute sums the difficulty of the selected ingredients and applies the
// bonus of the first recipe variant whose ingredient set equals the
// selection. Unknown ingredients count as 0.
func (c *Catalog) Compute(sel domain.PotionSelection) domain.PotionResult {
	var bits []string
	total := 0
	push := func(name, label string) {
		if name == "" {
			return
		}
		d := 0
		if ing, ok := c.Ingredient(name); ok {
			d = ing.Difficulty
		}
		total += d
		bits = append(bits, fmt.Sprintf("%d (%s)", d, label))
	}

	push(sel.Binder, domain.CategoryBinder)
	push(sel.Catalyst, domain.CategoryCatalyst)
	for _, r := range sel.Reactants {
		push(r, domain.CategoryReactant)
	}

	result := domain.PotionResult{}
	if recipe, ok := c.MatchRecipe(sel); ok {
		result.Recipe = &recipe
		if recipe.Bonus > 0 {
			total = max(0, total-recipe.Bonus)
			bits = append(bits, fmt.Sprintf("- bonus de recette (%d)", recipe.Bonus))
		}
	}

	result.TotalDifficulty = total
	result.Breakdown = strings.Replace(strings.Join(bits, " + "), "+ -", "-", 1)
	return result
}

// MatchRecipe returns the first recipe in catalog order having a variant
// whose ingredient set is exactly the picked set
func (c *Catalog) MatchRecipe(sel domain.PotionSelection) (domain.Recipe, bool) {
	picked := pickedSet(sel)
	if len(picked) == 0 {
		return domain.Recipe{}, false
	}
	for _, r := range c.recipes {
		for _, variant := range r.Variants {
			if sameSet(picked, variant) {
				return r, true
			}
		}
	}
	return domain.Recipe{}, false
}

func pickedSet(sel domain.PotionSelection) map[string]struct{} {
	set := make(map[string]struct{}, len(sel.Reactants)+2)
	if sel.Binder != "" {
		set[sel.Binder] = struct{}{}
	}
	if sel.Catalyst != "" {
		set[sel.Catalyst] = struct{}{}
	}
	for _, r := range sel.Reactants {
		if r != "" {
			set[r] = struct{}{}
		}
	}
	return set
}

func sameSet(picked map[string]struct{}, variant []string) bool {
	seen := make(map[string]struct{}, len(variant))
	for _, name := range variant {
		if _, ok := picked[name]; !ok {
			return false
		}
		seen[name] = struct{}{}
	}
	return len(seen) == len(picked)
}

// IsUnlocked reports whether an item requiring books is visible to an owner
// of owned: items without requirements always are, others need any one book.
func IsUnlocked(required, owned []string) bool {
	hasRequirement := false
	for _, req := range required {
		if req == "" {
			continue
		}
		hasRequirement = true
		for _, b := range owned {
			if b == req {
				return true
			}
		}
	}
	return !hasRequirement
}
