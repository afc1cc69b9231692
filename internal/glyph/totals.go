package glyph

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

const (
	// manaScale sums fractional mana in thousandths to avoid float drift
	manaScale = 1000

	// PlaceholderEmoji stands in for a glyph whose name has no leading token
	PlaceholderEmoji = "◻️"
)

// Totals sums difficulty and mana of the named glyphs. Mana is rounded up
// once at the end. Unknown names contribute nothing.
func (c *Catalog) Totals(names []string) domain.GlyphTotals {
	var milli int64
	var totals domain.GlyphTotals
	for _, name := range names {
		g, ok := c.Lookup(name)
		if !ok {
			continue
		}
		totals.Diff += g.Diff
		if !math.IsNaN(g.Mana) && !math.IsInf(g.Mana, 0) {
			milli += int64(math.Round(g.Mana * manaScale))
		}
	}
	totals.Mana = int(math.Ceil(float64(milli) / manaScale))
	return totals
}

// FormatSelection renders a selection as a two-line copyable block
func (c *Catalog) FormatSelection(names []string) string {
	t := c.Totals(names)
	return fmt.Sprintf("Glyphes: %s\nMana: %d | Difficulté: %d", strings.Join(names, " · "), t.Mana, t.Diff)
}

// EmojiLine returns the leading emoji of each name, space separated
func EmojiLine(names []string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		tok := leadingToken(name)
		if tok == "" {
			tok = PlaceholderEmoji
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}
