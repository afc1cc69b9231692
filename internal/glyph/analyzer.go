package glyph

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// Match confidence per strategy
const (
	ScoreEmoji = 3
	ScoreExact = 2
	ScoreFuzzy = 1

	// MinFragmentLength is the normalized length below which fragments are
	// neither fuzzy keywords nor reported as unknown
	MinFragmentLength = 3
)

type scoreboard struct {
	order  []string
	scores map[string]int
}

func (s *scoreboard) add(name string, score int) {
	prev, ok := s.scores[name]
	if !ok {
		s.order = append(s.order, name)
	}
	if score > prev {
		s.scores[name] = score
	}
}

// Analyze resolves free text into catalog glyphs. Emoji hits score 3, a
// fragment equal to a glyph name scores 2 and a keyword contained in a name
// scores 1. Glyphs scoring 2 or more are detected; the rest are candidates.
func (c *Catalog) Analyze(raw string) domain.GlyphDetection {
	det := domain.GlyphDetection{
		Detected:   []domain.GlyphMatch{},
		Candidates: []domain.GlyphMatch{},
		Unknown:    []string{},
	}
	if strings.TrimSpace(raw) == "" {
		return det
	}

	tokens := Tokenize(raw)
	board := &scoreboard{scores: make(map[string]int)}

	for _, e := range tokens.Emojis {
		if name, ok := c.ByEmoji(e); ok {
			board.add(name, ScoreEmoji)
			continue
		}
		det.Unknown = append(det.Unknown, e)
	}

	for _, part := range tokens.Parts {
		n := Normalize(part)
		if idx, ok := c.byNorm[n]; ok {
			board.add(c.glyphs[idx].Name, ScoreExact)
			continue
		}
		if utf8.RuneCountInString(n) >= MinFragmentLength {
			det.Unknown = append(det.Unknown, part)
		}
	}

	var keywords []string
	for _, w := range tokens.Words {
		if n := Normalize(w); utf8.RuneCountInString(n) >= MinFragmentLength {
			keywords = append(keywords, n)
		}
	}
	if len(keywords) > 0 {
		for i, n := range c.norms {
			for _, kw := range keywords {
				if strings.Contains(n, kw) {
					board.add(c.glyphs[i].Name, ScoreFuzzy)
					break
				}
			}
		}
	}

	names := make([]string, 0, len(board.order))
	for _, name := range board.order {
		score := board.scores[name]
		if score >= ScoreExact {
			det.Detected = append(det.Detected, domain.GlyphMatch{Name: name, Score: score})
			continue
		}
		det.Candidates = append(det.Candidates, domain.GlyphMatch{Name: name, Score: score})
	}
	sort.SliceStable(det.Detected, func(i, j int) bool {
		return det.Detected[i].Score > det.Detected[j].Score
	})
	for _, m := range det.Detected {
		names = append(names, m.Name)
	}

	det.Totals = c.Totals(names)
	det.Suggestions = c.suggestAll(det.Unknown)
	return det
}
