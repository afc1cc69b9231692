// Package configs embeds the static catalogs and their JSON schemas.
package configs

import "embed"

// Catalog file names
const (
	GlyphsFile      = "glyphs.json"
	SeriesFile      = "series.json"
	IngredientsFile = "ingredients.json"
	RecipesFile     = "recipes.json"
	OriginsFile     = "origins.json"
	BooksFile       = "books.json"
	CrystalFile     = "crystal.json"
)

// SchemaDir holds one <name>.schema.json per catalog file
const SchemaDir = "schemas"

// FS holds the catalogs shipped with the binary
//
//go:embed *.json schemas/*.json
var FS embed.FS

// SchemaPath returns the schema path for a catalog file
func SchemaPath(file string) string {
	return SchemaDir + "/" + file[:len(file)-len(".json")] + ".schema.json"
}
