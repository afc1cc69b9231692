package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterForge_Go/internal/catalog"
	"github.com/osse101/CharacterForge_Go/internal/concurrency"
	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
	"github.com/osse101/CharacterForge_Go/internal/glyph"
	"github.com/osse101/CharacterForge_Go/internal/potion"
	"github.com/osse101/CharacterForge_Go/internal/profile"
	"github.com/osse101/CharacterForge_Go/internal/repository"
)

const testAPIKey = "test-key"

// newTestServer wires the real services over the in-memory store and the
// embedded catalogs
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store := repository.NewMemoryStateStore()
	locks := concurrency.NewLockManager()
	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, 1, time.Millisecond, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	activity := eventlog.NewService(eventlog.NewMemoryRepository())
	require.NoError(t, activity.Subscribe(bus))

	loader := catalog.NewLoader(catalog.Source(""), nil)
	ctx := context.Background()

	srv := NewServer(
		Options{Port: 0, APIKey: testAPIKey, ServiceName: "characterforge"},
		store,
		profile.NewService(store, publisher, locks),
		crystal.NewService(loader.CrystalConfig(ctx), store, publisher, locks),
		glyph.NewService(loader, store, publisher, locks, glyph.Options{CacheSize: 8, CacheTTL: time.Minute}),
		potion.NewService(loader, store, publisher, locks),
		activity,
		loader,
	)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.RemoteAddr = "127.0.0.1:5000"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_PublicRoutes(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.RemoteAddr = "127.0.0.1:5000"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestServer_RequiresAPIKey(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", nil)
	req.RemoteAddr = "127.0.0.1:5000"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_ProfileFlow(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/profiles", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var p domain.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.NotEmpty(t, p.ID)
	base := "/api/v1/profiles/" + p.ID

	w = do(t, h, http.MethodPost, base+"/potion/books", map[string]string{"title": "Herbier de base"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"books":["Herbier de base"]}`, w.Body.String())

	w = do(t, h, http.MethodGet, base+"/potion/selection", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, base+"/potion/selection/solvent", map[string]string{"name": "Ortie"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, base+"/crystal", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPut, base+"/crystal/rank", map[string]string{"rank": "PIERRE"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"base_tier":1`)

	w = do(t, h, http.MethodGet, base+"/glyph/selection", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, base+"/snapshot", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Herbier de base")

	w = do(t, h, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, base+"/crystal", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, base+"/activity?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"event_type":"profile.deleted"`)

	w = do(t, h, http.MethodGet, base+"/activity?type=potion.books.changed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Herbier de base")
}

func TestServer_StatelessRoutes(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/glyphs/analyze", map[string]string{"text": "🌌 Zone"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "🌌 Zone")

	w = do(t, h, http.MethodGet, "/api/v1/glyphs", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/crystal/config", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ECLAT")

	w = do(t, h, http.MethodGet, "/api/v1/admin/catalogs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"books":6`)
}

func TestServer_UnknownProfile(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodGet, "/api/v1/profiles/does-not-exist/glyph/skills", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
