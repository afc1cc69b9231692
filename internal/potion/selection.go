package potion

import (
	"github.com/tidwall/gjson"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/utils"
)

// The transitions below never check unlock state: the builder lets a
// persisted pick survive a book removal.

// ToggleBinder sets the binder, or clears it when name is already selected
func ToggleBinder(sel domain.PotionSelection, name string) domain.PotionSelection {
	out := clone(sel)
	if out.Binder == name {
		out.Binder = ""
	} else {
		out.Binder = name
	}
	return out
}

// ToggleCatalyst sets the catalyst, or clears it when name is already selected
func ToggleCatalyst(sel domain.PotionSelection, name string) domain.PotionSelection {
	out := clone(sel)
	if out.Catalyst == name {
		out.Catalyst = ""
	} else {
		out.Catalyst = name
	}
	return out
}

// ToggleReactant adds or removes name from the reactant set
func ToggleReactant(sel domain.PotionSelection, name string) domain.PotionSelection {
	out := clone(sel)
	for i, r := range out.Reactants {
		if r == name {
			out.Reactants = append(out.Reactants[:i], out.Reactants[i+1:]...)
			return out
		}
	}
	out.Reactants = append(out.Reactants, name)
	return out
}

// Toggle routes name to the slot of the given selection type
func Toggle(sel domain.PotionSelection, selectionType, name string) domain.PotionSelection {
	switch selectionType {
	case domain.SelectionBinder:
		return ToggleBinder(sel, name)
	case domain.SelectionCatalyst:
		return ToggleCatalyst(sel, name)
	default:
		return ToggleReactant(sel, name)
	}
}

// ClearByType empties one slot
func ClearByType(sel domain.PotionSelection, selectionType string) domain.PotionSelection {
	out := clone(sel)
	switch selectionType {
	case domain.SelectionBinder:
		out.Binder = ""
	case domain.SelectionCatalyst:
		out.Catalyst = ""
	case domain.SelectionReactant:
		out.Reactants = []string{}
	}
	return out
}

// ApplyVariant starts from an empty selection and routes every known
// ingredient of variant to its category slot. Unknown names are skipped.
func (c *Catalog) ApplyVariant(variant []string) domain.PotionSelection {
	sel := domain.NewPotionSelection()
	for _, name := range variant {
		ing, ok := c.Ingredient(name)
		if !ok {
			continue
		}
		sel = Toggle(sel, SelectionType(ing.Category), name)
	}
	return sel
}

func clone(sel domain.PotionSelection) domain.PotionSelection {
	out := sel
	out.Reactants = append([]string{}, sel.Reactants...)
	return out
}

// DecodeSelection reads a persisted selection leniently. Missing or mistyped
// fields fall back to empty values; ok is false when the document is unusable.
func DecodeSelection(raw []byte) (domain.PotionSelection, bool) {
	sel := domain.NewPotionSelection()
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return sel, false
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return sel, false
	}
	sel.Binder = utils.String(raw, "binder")
	sel.Catalyst = utils.String(raw, "catalyst")
	if r := utils.StringList(raw, "reactants"); r != nil {
		sel.Reactants = utils.TrimDedupe(r)
	}
	return sel, true
}

// DecodeFilters reads persisted browse filters leniently
func DecodeFilters(raw []byte) (domain.PotionFilters, bool) {
	filters := domain.NewPotionFilters()
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return filters, false
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return filters, false
	}
	if cat, err := ParseFilterCategory(utils.String(raw, "cat")); err == nil {
		filters.Cat = cat
	}
	if o := utils.StringList(raw, "origins"); o != nil {
		filters.Origins = utils.TrimDedupe(o)
	}
	return filters, true
}
