package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CharacterForge_Go/internal/catalog"
	"github.com/osse101/CharacterForge_Go/internal/logger"
)

// CatalogReloader reloads and summarizes the shared catalogs
type CatalogReloader interface {
	Reload(ctx context.Context) catalog.Summary
	Summary(ctx context.Context) catalog.Summary
}

// CatalogReloadResponse confirms a reload with the new catalog sizes
type CatalogReloadResponse struct {
	Message string          `json:"message"`
	Summary catalog.Summary `json:"summary"`
}

// HandleReloadCatalogs reloads every catalog from the configuration source (admin only)
// @Summary Reload catalogs
// @Description Drops the cached glyph, potion and crystal catalogs and loads them again. Files that fail to load leave their catalog empty.
// @Tags admin
// @Produce json
// @Success 200 {object} CatalogReloadResponse
// @Router /api/v1/admin/catalogs/reload [post]
// @Security ApiKeyAuth
func HandleReloadCatalogs(loader CatalogReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		log.Info("Reloading catalogs")

		summary := loader.Reload(r.Context())
		if summary.Glyphs == 0 || summary.Ingredients == 0 {
			log.Warn("Catalog reload produced an empty catalog",
				"glyphs", summary.Glyphs,
				"ingredients", summary.Ingredients)
		}

		respondJSON(w, http.StatusOK, CatalogReloadResponse{
			Message: MsgCatalogsReloaded,
			Summary: summary,
		})
	}
}

// HandleCatalogSummary reports the entry counts of the loaded catalogs
// @Summary Catalog summary
// @Tags admin
// @Produce json
// @Success 200 {object} catalog.Summary
// @Router /api/v1/admin/catalogs [get]
// @Security ApiKeyAuth
func HandleCatalogSummary(loader CatalogReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, loader.Summary(r.Context()))
	}
}
