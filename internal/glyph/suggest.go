package glyph

import (
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// MaxSuggestions caps "did you mean" results per fragment
const MaxSuggestions = 3

// Suggest returns glyph names whose label is within a small edit distance of
// fragment. The allowed distance grows with the fragment: 1 up to 5 runes,
// then one more per 4 runes. Closest names come first, ties in catalog order.
func (c *Catalog) Suggest(fragment string) []string {
	n := Normalize(fragment)
	length := utf8.RuneCountInString(n)
	if length < MinFragmentLength {
		return nil
	}
	limit := 1 + (length-2)/4

	type candidate struct {
		name string
		dist int
	}
	var found []candidate
	for i, label := range c.labels {
		if d := levenshtein.ComputeDistance(n, label); d <= limit {
			found = append(found, candidate{name: c.glyphs[i].Name, dist: d})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	if len(found) > MaxSuggestions {
		found = found[:MaxSuggestions]
	}
	out := make([]string, 0, len(found))
	for _, f := range found {
		out = append(out, f.name)
	}
	return out
}

func (c *Catalog) suggestAll(unknown []string) map[string][]string {
	var out map[string][]string
	for _, frag := range unknown {
		if _, done := out[frag]; done {
			continue
		}
		if s := c.Suggest(frag); len(s) > 0 {
			if out == nil {
				out = make(map[string][]string)
			}
			out[frag] = s
		}
	}
	return out
}

// suggestLabel is the normalized name without its emoji, or the full
// normalized name when nothing else is left
func suggestLabel(name, norm string) string {
	if label := Normalize(labelOf(name)); label != "" {
		return label
	}
	return norm
}

// labelOf strips the leading emoji token of a glyph name
func labelOf(name string) string {
	tok := leadingToken(name)
	if tok == name || !isEmojiCluster(tok) {
		return name
	}
	return name[len(tok)+1:]
}
