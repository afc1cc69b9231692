package potion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

func TestToggleBinder(t *testing.T) {
	sel := domain.NewPotionSelection()

	sel = ToggleBinder(sel, "Eau pure")
	assert.Equal(t, "Eau pure", sel.Binder)

	sel = ToggleBinder(sel, "Huile de lin")
	assert.Equal(t, "Huile de lin", sel.Binder)

	sel = ToggleBinder(sel, "Huile de lin")
	assert.Empty(t, sel.Binder)
}

func TestToggleReactant(t *testing.T) {
	sel := domain.NewPotionSelection()
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		sel = ToggleReactant(sel, name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, sel.Reactants)

	sel = ToggleReactant(sel, "C")
	assert.Equal(t, []string{"A", "B", "D", "E"}, sel.Reactants)
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	orig := domain.PotionSelection{Binder: "Eau pure", Reactants: []string{"A", "B"}}

	next := Toggle(orig, domain.SelectionReactant, "A")
	_ = Toggle(orig, domain.SelectionBinder, "Eau pure")

	assert.Equal(t, []string{"B"}, next.Reactants)
	assert.Equal(t, []string{"A", "B"}, orig.Reactants)
	assert.Equal(t, "Eau pure", orig.Binder)
}

func TestClearByType(t *testing.T) {
	sel := domain.PotionSelection{Binder: "Eau pure", Catalyst: "Sel", Reactants: []string{"A"}}

	assert.Empty(t, ClearByType(sel, domain.SelectionBinder).Binder)
	assert.Empty(t, ClearByType(sel, domain.SelectionCatalyst).Catalyst)
	assert.Equal(t, []string{}, ClearByType(sel, domain.SelectionReactant).Reactants)
	assert.Equal(t, sel, ClearByType(sel, "unknown"))
}

func TestApplyVariant(t *testing.T) {
	c := testCatalog()

	got := c.ApplyVariant([]string{"Sel", "Eau pure", "Feuille de menthe", "Licorne"})

	assert.Equal(t, domain.PotionSelection{
		Binder:    "Eau pure",
		Catalyst:  "Sel",
		Reactants: []string{"Feuille de menthe"},
	}, got)
}

func TestDecodeSelection(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   domain.PotionSelection
		wantOK bool
	}{
		{
			name:   "full document",
			raw:    `{"binder":"Eau pure","catalyst":"Sel","reactants":["A","B"]}`,
			want:   domain.PotionSelection{Binder: "Eau pure", Catalyst: "Sel", Reactants: []string{"A", "B"}},
			wantOK: true,
		},
		{
			name:   "duplicate reactants collapse",
			raw:    `{"binder":"Eau pure","reactants":["Sel","Sel"," Sel",""]}`,
			want:   domain.PotionSelection{Binder: "Eau pure", Reactants: []string{"Sel"}},
			wantOK: true,
		},
		{
			name:   "mistyped fields fall back",
			raw:    `{"binder":3,"reactants":"A"}`,
			want:   domain.NewPotionSelection(),
			wantOK: true,
		},
		{name: "malformed", raw: `{"binder":`, want: domain.NewPotionSelection()},
		{name: "not an object", raw: `[]`, want: domain.NewPotionSelection()},
		{name: "empty", raw: ``, want: domain.NewPotionSelection()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeSelection([]byte(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeFilters(t *testing.T) {
	got, ok := DecodeFilters([]byte(`{"cat":"Reactant","origins":["Gloomire"," Gloomire",""]}`))
	assert.True(t, ok)
	assert.Equal(t, domain.PotionFilters{Cat: domain.SelectionReactant, Origins: []string{"Gloomire"}}, got)

	got, ok = DecodeFilters([]byte(`{"cat":"poison"}`))
	assert.True(t, ok)
	assert.Equal(t, domain.NewPotionFilters(), got)

	_, ok = DecodeFilters([]byte(`nope`))
	assert.False(t, ok)
}
