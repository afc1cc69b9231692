package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CharacterForge_Go/configs"
	"github.com/osse101/CharacterForge_Go/internal/catalog"
	"github.com/osse101/CharacterForge_Go/internal/config"
	"github.com/osse101/CharacterForge_Go/internal/validation"
)

// InitializeCatalogs creates the shared catalog loader and loads every
// catalog up front. Catalog files come from cfg.ConfigDir when set and from
// the embedded copies otherwise; schemas always come from the binary.
// A failed file never stops startup: its catalog stays empty and a warning
// is logged.
func InitializeCatalogs(ctx context.Context, cfg *config.Config) *catalog.Loader {
	if cfg.ConfigDir == "" {
		slog.Info(LogMsgCatalogsEmbedded)
	}

	loader := catalog.NewLoader(
		catalog.Source(cfg.ConfigDir),
		validation.NewFSSchemaValidator(configs.FS),
	)
	loader.Warm(ctx)

	summary := loader.Summary(ctx)
	slog.Info(LogMsgCatalogsLoaded,
		"glyphs", summary.Glyphs,
		"series", summary.Series,
		"ingredients", summary.Ingredients,
		"recipes", summary.Recipes,
		"books", summary.Books,
		"ranks", summary.Ranks)

	if summary.Glyphs == 0 || summary.Ingredients == 0 {
		slog.Warn(LogMsgCatalogPartialLoad,
			"glyphs", summary.Glyphs,
			"ingredients", summary.Ingredients)
	}

	return loader
}
