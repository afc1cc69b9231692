package domain

// GlyphCategoryAll disables the category filter in browse views
const GlyphCategoryAll = "Toutes"

// Glyph categories in browse order
const (
	GlyphCategoryElements      = "Éléments"
	GlyphCategoryTargeting     = "Ciblage"
	GlyphCategoryStates        = "États"
	GlyphCategoryAmplification = "Amplification"
	GlyphCategoryActions       = "Actions"
	GlyphCategoryControl       = "Contrôle"
	GlyphCategoryUltimate      = "Ultime"
)

// GlyphCategories is the display order used by browse views
var GlyphCategories = []string{
	GlyphCategoryElements,
	GlyphCategoryTargeting,
	GlyphCategoryStates,
	GlyphCategoryAmplification,
	GlyphCategoryActions,
	GlyphCategoryControl,
	GlyphCategoryUltimate,
}

// Glyph is a symbol catalog entry. Name carries the emoji followed by the label.
type Glyph struct {
	Name     string  `json:"name"`
	Category string  `json:"cat"`
	Diff     int     `json:"diff"`
	Mana     float64 `json:"mana"`
}

// GlyphSeries is an unlockable skill and the glyph names it grants
type GlyphSeries struct {
	Label  string   `json:"label"`
	Glyphs []string `json:"glyphs"`
}

// GlyphMatch is a detected glyph with its confidence
type GlyphMatch struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// GlyphTotals holds summed costs of a set of glyphs
type GlyphTotals struct {
	Mana int `json:"mana"`
	Diff int `json:"diff"`
}

// GlyphDetection is the result of analyzing free text
type GlyphDetection struct {
	Detected    []GlyphMatch        `json:"detected"`
	Candidates  []GlyphMatch        `json:"candidates"`
	Unknown     []string            `json:"unknown"`
	Suggestions map[string][]string `json:"suggestions,omitempty"`
	Totals      GlyphTotals         `json:"totals"`
}
