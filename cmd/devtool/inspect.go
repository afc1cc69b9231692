package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/osse101/CharacterForge_Go/configs"
	"github.com/osse101/CharacterForge_Go/internal/catalog"
	"github.com/osse101/CharacterForge_Go/internal/validation"
)

type InspectCommand struct{}

func (c *InspectCommand) Name() string {
	return "inspect"
}

func (c *InspectCommand) Description() string {
	return "Print catalog tables (summary, glyphs, ingredients, recipes) [-dir DIR]"
}

func (c *InspectCommand) Run(args []string) error {
	flags := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	dir := flags.String("dir", "", "catalog directory (embedded catalogs when empty)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	what := "summary"
	if flags.NArg() > 0 {
		what = flags.Arg(0)
	}

	ctx := context.Background()
	loader := catalog.NewLoader(catalog.Source(*dir), validation.NewFSSchemaValidator(configs.FS))

	switch what {
	case "summary":
		s := loader.Summary(ctx)
		printTable(os.Stdout, []string{"CATALOG", "COUNT"}, [][]string{
			{"glyphs", fmt.Sprint(s.Glyphs)},
			{"series", fmt.Sprint(s.Series)},
			{"ingredients", fmt.Sprint(s.Ingredients)},
			{"recipes", fmt.Sprint(s.Recipes)},
			{"books", fmt.Sprint(s.Books)},
			{"ranks", fmt.Sprint(s.Ranks)},
		})
	case "glyphs":
		var rows [][]string
		for _, g := range loader.GlyphCatalog(ctx).Glyphs() {
			rows = append(rows, []string{g.Name, g.Category, fmt.Sprint(g.Diff), fmt.Sprintf("%g", g.Mana)})
		}
		printTable(os.Stdout, []string{"GLYPH", "CATEGORY", "DIFF", "MANA"}, rows)
	case "ingredients":
		var rows [][]string
		for _, ing := range loader.PotionCatalog(ctx).Ingredients() {
			rows = append(rows, []string{ing.Name, ing.Category, fmt.Sprint(ing.Difficulty), ing.ShortEffect})
		}
		printTable(os.Stdout, []string{"INGREDIENT", "CATEGORY", "DIFF", "EFFECT"}, rows)
	case "recipes":
		var rows [][]string
		for _, r := range loader.PotionCatalog(ctx).Recipes() {
			rows = append(rows, []string{r.Emoji + " " + r.Name, fmt.Sprint(r.Bonus), fmt.Sprint(len(r.Variants))})
		}
		printTable(os.Stdout, []string{"RECIPE", "BONUS", "VARIANTS"}, rows)
	default:
		return fmt.Errorf("unknown table %q: want summary, glyphs, ingredients or recipes", what)
	}
	return nil
}

// printTable writes rows in columns padded by display width, so emoji and
// accented names line up in a terminal
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); i < len(widths) && cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cells []string) {
		out := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				out[i] = cell
				continue
			}
			out[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.Join(out, "  "))
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
}
