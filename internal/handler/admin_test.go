package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterForge_Go/internal/catalog"
)

func TestHandleReloadCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		summary catalog.Summary
	}{
		{"Loaded", catalog.Summary{Glyphs: 42, Series: 6, Ingredients: 30, Recipes: 12, Books: 4, Ranks: 5}},
		{"Empty Catalogs Still Succeed", catalog.Summary{Ranks: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &MockCatalogReloader{}
			loader.On("Reload", mock.Anything).Return(tt.summary)

			req := httptest.NewRequest(http.MethodPost, "/admin/catalogs/reload", nil)
			w := httptest.NewRecorder()
			HandleReloadCatalogs(loader).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), MsgCatalogsReloaded)
			assert.Contains(t, w.Body.String(), `"ranks":5`)
			loader.AssertExpectations(t)
		})
	}
}

func TestHandleCatalogSummary(t *testing.T) {
	loader := &MockCatalogReloader{}
	loader.On("Summary", mock.Anything).Return(catalog.Summary{Glyphs: 3})

	req := httptest.NewRequest(http.MethodGet, "/admin/catalogs", nil)
	w := httptest.NewRecorder()
	HandleCatalogSummary(loader).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"glyphs":3`)
	loader.AssertExpectations(t)
}
