package glyph

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/utils"
)

// Catalog is the immutable glyph table with its lookup indexes.
// Entries keep document order, which drives every tie-break.
type Catalog struct {
	glyphs  []domain.Glyph
	norms   []string
	labels  []string
	byName  map[string]int
	byNorm  map[string]int
	byEmoji map[string]string

	series      []domain.GlyphSeries
	seriesIndex map[string]int
}

// NewCatalog indexes glyphs and series. When two names share a leading
// emoji the first one in catalog order owns it.
func NewCatalog(glyphs []domain.Glyph, series []domain.GlyphSeries) *Catalog {
	c := &Catalog{
		glyphs:      make([]domain.Glyph, 0, len(glyphs)),
		norms:       make([]string, 0, len(glyphs)),
		labels:      make([]string, 0, len(glyphs)),
		byName:      make(map[string]int, len(glyphs)),
		byNorm:      make(map[string]int, len(glyphs)),
		byEmoji:     make(map[string]string, len(glyphs)),
		series:      make([]domain.GlyphSeries, 0, len(series)),
		seriesIndex: make(map[string]int, len(series)),
	}

	for _, g := range glyphs {
		if g.Name == "" {
			continue
		}
		if _, dup := c.byName[g.Name]; dup {
			continue
		}
		idx := len(c.glyphs)
		n := Normalize(g.Name)
		c.glyphs = append(c.glyphs, g)
		c.norms = append(c.norms, n)
		c.labels = append(c.labels, suggestLabel(g.Name, n))
		c.byName[g.Name] = idx
		if _, ok := c.byNorm[n]; !ok {
			c.byNorm[n] = idx
		}
		if key := emojiKey(leadingToken(g.Name)); key != "" {
			if _, ok := c.byEmoji[key]; !ok {
				c.byEmoji[key] = g.Name
			}
		}
	}

	for _, s := range series {
		key := utils.FoldFrench(s.Label)
		if key == "" {
			continue
		}
		if _, dup := c.seriesIndex[key]; dup {
			continue
		}
		c.seriesIndex[key] = len(c.series)
		c.series = append(c.series, s)
	}
	return c
}

// EmptyCatalog returns a catalog with no entries
func EmptyCatalog() *Catalog {
	return NewCatalog(nil, nil)
}

// Len returns the number of glyphs
func (c *Catalog) Len() int { return len(c.glyphs) }

// Glyphs returns a copy of every entry in catalog order
func (c *Catalog) Glyphs() []domain.Glyph {
	out := make([]domain.Glyph, len(c.glyphs))
	copy(out, c.glyphs)
	return out
}

// Lookup finds a glyph by its full name
func (c *Catalog) Lookup(name string) (domain.Glyph, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return domain.Glyph{}, false
	}
	return c.glyphs[idx], true
}

// ByEmoji resolves an emoji cluster to the glyph name that starts with it
func (c *Catalog) ByEmoji(emoji string) (string, bool) {
	name, ok := c.byEmoji[emojiKey(emoji)]
	return name, ok
}

// Series returns the unlockable series in document order
func (c *Catalog) Series() []domain.GlyphSeries {
	out := make([]domain.GlyphSeries, len(c.series))
	copy(out, c.series)
	return out
}

// ParseGlyphs reads a glyph table: an object of name -> {cat, diff, mana}.
// Document order is preserved. Non-numeric costs count as 0.
func ParseGlyphs(raw []byte) ([]domain.Glyph, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: glyph table is not valid JSON", domain.ErrInvalidConfig)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: glyph table must be an object", domain.ErrInvalidConfig)
	}

	var glyphs []domain.Glyph
	doc.ForEach(func(key, value gjson.Result) bool {
		g := domain.Glyph{Name: key.String()}
		if cat := value.Get("cat"); cat.Type == gjson.String {
			g.Category = cat.Str
		}
		if diff := value.Get("diff"); diff.Type == gjson.Number {
			g.Diff = int(diff.Int())
		}
		if mana := value.Get("mana"); mana.Type == gjson.Number {
			g.Mana = mana.Num
		}
		glyphs = append(glyphs, g)
		return true
	})
	return glyphs, nil
}

// ParseSeries reads a series map: an object of label -> [glyph names]
func ParseSeries(raw []byte) ([]domain.GlyphSeries, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: series map is not valid JSON", domain.ErrInvalidConfig)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: series map must be an object", domain.ErrInvalidConfig)
	}

	var series []domain.GlyphSeries
	doc.ForEach(func(key, value gjson.Result) bool {
		series = append(series, domain.GlyphSeries{
			Label:  key.String(),
			Glyphs: utils.StringList([]byte(value.Raw), ""),
		})
		return true
	})
	return series, nil
}
