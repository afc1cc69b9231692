package config

import (
	"path"
	"time"

	"github.com/osse101/CharacterForge_Go/configs"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "characterforge"
	DefaultVersion     = "dev"
	DefaultDBName      = "characterforge"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultAnalysisCacheSize = 256
	DefaultAnalysisCacheTTL  = 10 * time.Minute

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"

	DefaultEventLogRetentionDays = 30

	DefaultRateLimitRequests = 1000
	DefaultRateLimitWindow   = 5 * time.Minute
)

const (
	// Configuration file paths, relative to the repository root
	ConfigDirDefault      = "configs"
	ConfigPathGlyphs      = ConfigDirDefault + "/" + configs.GlyphsFile
	ConfigPathSeries      = ConfigDirDefault + "/" + configs.SeriesFile
	ConfigPathIngredients = ConfigDirDefault + "/" + configs.IngredientsFile
	ConfigPathRecipes     = ConfigDirDefault + "/" + configs.RecipesFile
	ConfigPathOrigins     = ConfigDirDefault + "/" + configs.OriginsFile
	ConfigPathBooks       = ConfigDirDefault + "/" + configs.BooksFile
	ConfigPathCrystal     = ConfigDirDefault + "/" + configs.CrystalFile
	ConfigPathSchemasDir  = ConfigDirDefault + "/" + configs.SchemaDir
)

// CatalogFiles lists every catalog document in load order
var CatalogFiles = []string{
	ConfigPathGlyphs,
	ConfigPathSeries,
	ConfigPathIngredients,
	ConfigPathRecipes,
	ConfigPathOrigins,
	ConfigPathBooks,
	ConfigPathCrystal,
}

// SchemaPathFor returns the schema document validating a catalog path
func SchemaPathFor(catalogPath string) string {
	return path.Join(ConfigDirDefault, configs.SchemaPath(path.Base(catalogPath)))
}
