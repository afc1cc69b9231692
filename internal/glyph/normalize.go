package glyph

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combining diacritical marks block
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// Normalize folds s for comparison: lowercase, diacritics stripped, every
// character that is not a letter, digit or space replaced by a space, and
// whitespace collapsed. "Multi-cible (jusqu’à 4)" becomes "multi cible jusqu a 4".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// Transformers are stateful, so the chain is built per call.
	t := transform.Chain(
		cases.Lower(language.Und),
		norm.NFD,
		runes.Remove(combiningMarks),
		runes.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
				return r
			}
			return ' '
		}),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(out), " ")
}
