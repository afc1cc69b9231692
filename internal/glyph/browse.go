package glyph

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// BrowseEntry is a glyph card in the builder view
type BrowseEntry struct {
	domain.Glyph
	Selected bool `json:"selected"`
	Unlocked bool `json:"unlocked"`
}

// Browse lists glyphs that are unlocked by skills or already selected,
// restricted to category unless it is empty or domain.GlyphCategoryAll.
// Entries are sorted by category, difficulty and name.
func (c *Catalog) Browse(skills, selection []string, category string) []BrowseEntry {
	unlocked := make(map[string]struct{})
	for _, name := range c.UnlockedGlyphs(skills) {
		unlocked[name] = struct{}{}
	}
	selected := make(map[string]struct{}, len(selection))
	for _, name := range selection {
		selected[name] = struct{}{}
	}

	entries := make([]BrowseEntry, 0, len(c.glyphs))
	for _, g := range c.glyphs {
		_, isUnlocked := unlocked[g.Name]
		_, isSelected := selected[g.Name]
		if !isUnlocked && !isSelected {
			continue
		}
		if category != "" && category != domain.GlyphCategoryAll && g.Category != category {
			continue
		}
		entries = append(entries, BrowseEntry{Glyph: g, Selected: isSelected, Unlocked: isUnlocked})
	}

	col := collate.New(language.French)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if cmp := col.CompareString(a.Category, b.Category); cmp != 0 {
			return cmp < 0
		}
		if a.Diff != b.Diff {
			return a.Diff < b.Diff
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
	return entries
}
