package glyph

import (
	"strings"

	"github.com/osse101/CharacterForge_Go/internal/utils"
)

// CanonicalSkill maps a skill name to its series label when one matches
// case-insensitively; other names are returned trimmed.
func (c *Catalog) CanonicalSkill(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if idx, ok := c.seriesIndex[utils.FoldFrench(trimmed)]; ok {
		return c.series[idx].Label
	}
	return trimmed
}

// CleanSkills canonicalizes and deduplicates stored skills. mutated reports
// whether the cleaned list differs from the input and should be saved back.
func (c *Catalog) CleanSkills(raw []string) (cleaned []string, mutated bool) {
	cleaned = make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		canonical := c.CanonicalSkill(entry)
		key := utils.FoldFrench(canonical)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, canonical)
	}

	if len(cleaned) != len(raw) {
		return cleaned, true
	}
	for i := range cleaned {
		if cleaned[i] != raw[i] {
			return cleaned, true
		}
	}
	return cleaned, false
}

// HasSkill reports whether skills already holds name, ignoring case
func HasSkill(skills []string, name string) bool {
	key := utils.FoldFrench(name)
	for _, s := range skills {
		if utils.FoldFrench(s) == key {
			return true
		}
	}
	return false
}

// UnlockedGlyphs returns the glyph names granted by skills, in skill order
// then series order, without duplicates. Unknown skills grant nothing.
func (c *Catalog) UnlockedGlyphs(skills []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, s := range skills {
		idx, ok := c.seriesIndex[utils.FoldFrench(s)]
		if !ok {
			continue
		}
		for _, name := range c.series[idx].Glyphs {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
