package potion

import (
	"fmt"
	"strings"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

var categoryAliases = map[string]string{
	"liant":      domain.CategoryBinder,
	"binder":     domain.CategoryBinder,
	"catalyseur": domain.CategoryCatalyst,
	"catalyst":   domain.CategoryCatalyst,
	"cata":       domain.CategoryCatalyst,
	"réactif":    domain.CategoryReactant,
	"reactif":    domain.CategoryReactant,
	"reactant":   domain.CategoryReactant,
}

var categoryOrder = map[string]int{
	domain.CategoryBinder:   0,
	domain.CategoryCatalyst: 1,
	domain.CategoryReactant: 2,
}

// unranked sorts unknown categories last
const unranked = 99

// NormalizeCategory maps a category or one of its aliases, in any case, to
// the catalog label
func NormalizeCategory(value string) (string, error) {
	if cat, ok := categoryAliases[strings.ToLower(strings.TrimSpace(value))]; ok {
		return cat, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownCategory, value)
}

// SelectionType returns the selection slot for a catalog category.
// Anything that is not a binder or catalyst is treated as a reactant.
func SelectionType(category string) string {
	switch category {
	case domain.CategoryBinder:
		return domain.SelectionBinder
	case domain.CategoryCatalyst:
		return domain.SelectionCatalyst
	default:
		return domain.SelectionReactant
	}
}

// ParseSelectionType validates a selection slot name
func ParseSelectionType(value string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case domain.SelectionBinder, domain.SelectionCatalyst, domain.SelectionReactant:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownSelectionType, value)
}

// ParseFilterCategory accepts "all" or a selection slot name
func ParseFilterCategory(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == domain.FilterCategoryAll {
		return domain.FilterCategoryAll, nil
	}
	return ParseSelectionType(v)
}

func rankOf(category string) int {
	if r, ok := categoryOrder[category]; ok {
		return r
	}
	return unranked
}
