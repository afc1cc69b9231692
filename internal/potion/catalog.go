package potion

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/utils"
)

// Catalog holds sanitized ingredients, recipes, the origin tree and the book list
type Catalog struct {
	ingredients []domain.Ingredient
	byName      map[string]int
	recipes     []domain.Recipe
	origins     []domain.OriginNode
	books       []string
}

// NewCatalog indexes the given data. Ingredient lookups resolve to the first
// entry with a given name; later duplicates stay listed for inspection.
func NewCatalog(ingredients []domain.Ingredient, recipes []domain.Recipe, origins []domain.OriginNode, books []string) *Catalog {
	c := &Catalog{
		ingredients: ingredients,
		byName:      make(map[string]int, len(ingredients)),
		recipes:     recipes,
		origins:     origins,
		books:       utils.TrimDedupe(books),
	}
	for i, ing := range ingredients {
		if _, ok := c.byName[ing.Name]; !ok {
			c.byName[ing.Name] = i
		}
	}
	return c
}

// EmptyCatalog returns a catalog with no data
func EmptyCatalog() *Catalog {
	return NewCatalog(nil, nil, nil, nil)
}

// Ingredient finds an ingredient by exact name
func (c *Catalog) Ingredient(name string) (domain.Ingredient, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return domain.Ingredient{}, false
	}
	return c.ingredients[idx], true
}

// Ingredients returns every ingredient in catalog order
func (c *Catalog) Ingredients() []domain.Ingredient {
	out := make([]domain.Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out
}

// Recipes returns every recipe in catalog order
func (c *Catalog) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Recipe finds a recipe by exact name
func (c *Catalog) Recipe(name string) (domain.Recipe, bool) {
	for _, r := range c.recipes {
		if r.Name == name {
			return r, true
		}
	}
	return domain.Recipe{}, false
}

// Origins returns the full origin tree
func (c *Catalog) Origins() []domain.OriginNode { return c.origins }

// Books returns the reference book list
func (c *Catalog) Books() []string {
	out := make([]string, len(c.books))
	copy(out, c.books)
	return out
}

func stringList(v gjson.Result) []string {
	if !v.IsArray() {
		return []string{}
	}
	return utils.StringList([]byte(v.Raw), "")
}

func trimmedString(v gjson.Result) string {
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.Str)
}

// ParseIngredients reads an ingredient array. Entries without a name are
// dropped; a non-numeric difficulty counts as 0.
func ParseIngredients(raw []byte) ([]domain.Ingredient, error) {
	doc, err := parseArray(raw, "ingredients")
	if err != nil {
		return nil, err
	}

	var out []domain.Ingredient
	doc.ForEach(func(_, v gjson.Result) bool {
		name := trimmedString(v.Get("name"))
		if name == "" {
			return true
		}
		ing := domain.Ingredient{
			Name:        name,
			Category:    trimmedString(v.Get("cat")),
			ShortEffect: trimmedString(v.Get("shortEffect")),
			Effect:      trimmedString(v.Get("effect")),
			Origins:     utils.TrimDedupe(stringList(v.Get("origins"))),
			Books:       utils.TrimDedupe(stringList(v.Get("books"))),
		}
		if d := v.Get("difficulty"); d.Type == gjson.Number {
			ing.Difficulty = int(d.Int())
		}
		out = append(out, ing)
		return true
	})
	return out, nil
}

// ParseRecipes reads a recipe array and sanitizes it: names and texts are
// trimmed, the emoji defaults to 🧪, a non-finite bonus becomes 0, books are
// deduplicated and variants are trimmed, emptied entries dropped and repeated
// ingredient sets removed.
func ParseRecipes(raw []byte) ([]domain.Recipe, error) {
	doc, err := parseArray(raw, "recipes")
	if err != nil {
		return nil, err
	}

	var out []domain.Recipe
	doc.ForEach(func(_, v gjson.Result) bool {
		r := domain.Recipe{
			Name:  trimmedString(v.Get("name")),
			Emoji: trimmedString(v.Get("emoji")),
			Desc:  trimmedString(v.Get("desc")),
			Books: utils.TrimDedupe(stringList(v.Get("books"))),
		}
		if r.Emoji == "" {
			r.Emoji = domain.DefaultRecipeEmoji
		}
		if b := v.Get("bonus"); b.Type == gjson.Number && !math.IsInf(b.Num, 0) && !math.IsNaN(b.Num) {
			r.Bonus = int(b.Num)
		}
		r.Variants = sanitizeVariants(v.Get("ingredients"))
		out = append(out, r)
		return true
	})
	return out, nil
}

func sanitizeVariants(v gjson.Result) [][]string {
	variants := [][]string{}
	seen := make(map[string]struct{})
	v.ForEach(func(_, variant gjson.Result) bool {
		if !variant.IsArray() {
			return true
		}
		var names []string
		for _, n := range stringList(variant) {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		if len(names) == 0 {
			return true
		}
		sig := signature(names)
		if _, dup := seen[sig]; dup {
			return true
		}
		seen[sig] = struct{}{}
		variants = append(variants, names)
		return true
	})
	return variants
}

// signature identifies an ingredient list independently of order
func signature(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}

// ParseOrigins reads an origin tree: nested objects keyed by label, leaves
// being empty objects. Document order is kept.
func ParseOrigins(raw []byte) ([]domain.OriginNode, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: origin tree is not valid JSON", domain.ErrInvalidConfig)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: origin tree must be an object", domain.ErrInvalidConfig)
	}
	return originNodes(doc), nil
}

func originNodes(obj gjson.Result) []domain.OriginNode {
	var nodes []domain.OriginNode
	obj.ForEach(func(k, v gjson.Result) bool {
		node := domain.OriginNode{Label: k.String()}
		if v.IsObject() {
			node.Children = originNodes(v)
		}
		nodes = append(nodes, node)
		return true
	})
	return nodes
}

// ParseBooks reads the reference book list
func ParseBooks(raw []byte) ([]string, error) {
	if _, err := parseArray(raw, "books"); err != nil {
		return nil, err
	}
	return utils.TrimDedupe(utils.StringList(raw, "")), nil
}

func parseArray(raw []byte, what string) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%w: %s is not valid JSON", domain.ErrInvalidConfig, what)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return gjson.Result{}, fmt.Errorf("%w: %s must be an array", domain.ErrInvalidConfig, what)
	}
	return doc, nil
}
