package glyph

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	variationSelector16 = '\uFE0F'
	zeroWidthJoiner     = '\u200D'
)

// Tokens is free text split for the three matching strategies
type Tokens struct {
	// Emojis are emoji grapheme clusters in input order, duplicates kept
	Emojis []string
	// Parts are the delimiter-separated fragments of the remaining text, trimmed
	Parts []string
	// Words are the whitespace-separated words of Parts
	Words []string
}

// Tokenize removes emoji clusters from raw, then splits the rest on
// `, | · ; /` and newlines into parts and each part into words.
func Tokenize(raw string) Tokens {
	var tokens Tokens
	var text strings.Builder
	text.Grow(len(raw))

	gr := uniseg.NewGraphemes(raw)
	for gr.Next() {
		cluster := gr.Str()
		if isEmojiCluster(cluster) {
			tokens.Emojis = append(tokens.Emojis, cluster)
			text.WriteByte(' ')
			continue
		}
		text.WriteString(cluster)
	}

	for _, part := range strings.FieldsFunc(text.String(), isPartDelimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens.Parts = append(tokens.Parts, part)
		tokens.Words = append(tokens.Words, strings.Fields(part)...)
	}
	return tokens
}

func isPartDelimiter(r rune) bool {
	switch r {
	case ',', '|', '·', ';', '/', '\n':
		return true
	}
	return false
}

// isEmojiCluster reports whether a grapheme cluster renders as an emoji.
// Presentation selectors and joiners are decisive; otherwise the leading
// rune must sit in one of the pictographic blocks.
func isEmojiCluster(cluster string) bool {
	if cluster == "" {
		return false
	}
	if strings.ContainsRune(cluster, variationSelector16) || strings.ContainsRune(cluster, zeroWidthJoiner) {
		return true
	}

	r := []rune(cluster)[0]
	if r < 0x80 {
		return false
	}
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2190 && r <= 0x21FF:
		return true
	case r >= 0x2300 && r <= 0x23FF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	}
	switch r {
	case '©', '®', '‼', '⁉', '™', 'ℹ', '〰', '〽', '㊗', '㊙':
		return true
	}
	return false
}

// emojiKey drops presentation selectors so "❄️" and "❄" resolve alike
func emojiKey(e string) string {
	return strings.ReplaceAll(e, string(variationSelector16), "")
}

// leadingToken returns the text before the first space of a glyph name
func leadingToken(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}
