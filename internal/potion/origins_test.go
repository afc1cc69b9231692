package potion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

func TestUnlockedOriginsAndPrune(t *testing.T) {
	c := testCatalog()

	keep := c.UnlockedOrigins(nil)
	assert.Equal(t, map[string]struct{}{"Umbragea": {}}, keep)

	pruned := PruneOrigins(c.Origins(), keep)
	assert.Equal(t, []domain.OriginNode{
		{Label: "Tharunia", Children: []domain.OriginNode{
			{Label: "Marisylvia", Children: []domain.OriginNode{{Label: "Umbragea"}}},
		}},
	}, pruned)

	assert.Empty(t, PruneOrigins(c.Origins(), map[string]struct{}{}))
}

func TestCheckOrigin(t *testing.T) {
	tree := testCatalog().Origins()

	tests := []struct {
		name     string
		selected []string
		key      string
		want     []string
	}{
		{
			name: "selects descendants and complete ancestors",
			key:  "Silvanea",
			want: []string{"Tothymia", "Silvanea", "Elenart", "Vertidas", "Arbre Monde"},
		},
		{
			name: "incomplete parent stays unchecked",
			key:  "Umbragea",
			want: []string{"Umbragea"},
		},
		{
			name:     "completing siblings checks the parents",
			selected: []string{"Umbragea"},
			key:      "Gloomire",
			want:     []string{"Umbragea", "Tharunia", "Marisylvia", "Gloomire"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckOrigin(tree, tt.selected, tt.key))
		})
	}
}

func TestUncheckOrigin(t *testing.T) {
	tree := testCatalog().Origins()
	all := []string{"Tothymia", "Silvanea", "Elenart", "Vertidas", "Arbre Monde"}

	assert.Equal(t, []string{"Vertidas", "Arbre Monde"}, UncheckOrigin(tree, all, "Elenart"))
	assert.Equal(t, []string{}, UncheckOrigin(tree, all, "Silvanea"))
	assert.Equal(t, []string{"Umbragea"}, UncheckOrigin(tree, []string{"Umbragea"}, "Inconnue"))
}
