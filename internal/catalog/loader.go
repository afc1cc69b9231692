package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/CharacterForge_Go/configs"
	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/glyph"
	"github.com/osse101/CharacterForge_Go/internal/logger"
	"github.com/osse101/CharacterForge_Go/internal/metrics"
	"github.com/osse101/CharacterForge_Go/internal/potion"
	"github.com/osse101/CharacterForge_Go/internal/validation"
)

const (
	keyGlyphs  = "glyphs"
	keyPotions = "potions"
	keyCrystal = "crystal"
)

// Summary counts the entries of the loaded catalogs
type Summary struct {
	Glyphs      int `json:"glyphs"`
	Series      int `json:"series"`
	Ingredients int `json:"ingredients"`
	Recipes     int `json:"recipes"`
	Books       int `json:"books"`
	Ranks       int `json:"ranks"`
}

// Loader loads each catalog once and shares it between callers. Concurrent
// first calls wait on a single load. A failed load is logged and yields an
// empty catalog (the default tables for crystal), never an error.
type Loader struct {
	fsys      fs.FS
	validator validation.SchemaValidator

	group singleflight.Group
	mu    sync.RWMutex

	glyphs  *glyph.Catalog
	potions *potion.Catalog
	crystal *crystal.Config

	loads atomic.Int64
}

// Source returns the catalog filesystem: dir when set, the embedded catalogs otherwise
func Source(dir string) fs.FS {
	if dir == "" {
		return configs.FS
	}
	return os.DirFS(dir)
}

// NewLoader creates a loader reading from fsys. Schema checks run when
// validator is not nil; violations are logged and the lenient parse proceeds.
func NewLoader(fsys fs.FS, validator validation.SchemaValidator) *Loader {
	return &Loader{fsys: fsys, validator: validator}
}

// GlyphCatalog implements glyph.CatalogProvider
func (l *Loader) GlyphCatalog(ctx context.Context) *glyph.Catalog {
	return memo(l, ctx, keyGlyphs, &l.glyphs, l.loadGlyphs)
}

// PotionCatalog implements potion.CatalogProvider
func (l *Loader) PotionCatalog(ctx context.Context) *potion.Catalog {
	return memo(l, ctx, keyPotions, &l.potions, l.loadPotions)
}

// CrystalConfig returns the crystal tables
func (l *Loader) CrystalConfig(ctx context.Context) *crystal.Config {
	return memo(l, ctx, keyCrystal, &l.crystal, l.loadCrystal)
}

// Warm loads every catalog in parallel
func (l *Loader) Warm(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { l.GlyphCatalog(ctx); return nil })
	g.Go(func() error { l.PotionCatalog(ctx); return nil })
	g.Go(func() error { l.CrystalConfig(ctx); return nil })
	_ = g.Wait()
}

// Reload drops the cached catalogs and loads them again
func (l *Loader) Reload(ctx context.Context) Summary {
	l.mu.Lock()
	l.glyphs, l.potions, l.crystal = nil, nil, nil
	l.mu.Unlock()
	for _, k := range []string{keyGlyphs, keyPotions, keyCrystal} {
		l.group.Forget(k)
	}

	l.Warm(ctx)
	s := l.Summary(ctx)
	logger.FromContext(ctx).Info("Catalogs reloaded",
		"glyphs", s.Glyphs, "ingredients", s.Ingredients, "recipes", s.Recipes)
	return s
}

// Summary counts the current catalogs, loading them if needed
func (l *Loader) Summary(ctx context.Context) Summary {
	g := l.GlyphCatalog(ctx)
	p := l.PotionCatalog(ctx)
	c := l.CrystalConfig(ctx)
	return Summary{
		Glyphs:      g.Len(),
		Series:      len(g.Series()),
		Ingredients: len(p.Ingredients()),
		Recipes:     len(p.Recipes()),
		Books:       len(p.Books()),
		Ranks:       len(c.Ranks),
	}
}

// Loads reports how many catalog loads actually ran
func (l *Loader) Loads() int64 {
	return l.loads.Load()
}

func memo[T any](l *Loader, ctx context.Context, key string, slot **T, load func(context.Context) *T) *T {
	l.mu.RLock()
	cached := *slot
	l.mu.RUnlock()
	if cached != nil {
		return cached
	}

	v, _, _ := l.group.Do(key, func() (interface{}, error) {
		l.mu.RLock()
		cached := *slot
		l.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		l.loads.Add(1)
		loaded := load(ctx)
		l.mu.Lock()
		*slot = loaded
		l.mu.Unlock()
		return loaded, nil
	})
	return v.(*T)
}

// read returns a catalog document after the optional schema check
func (l *Loader) read(ctx context.Context, name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCatalogUnavailable, name, err)
	}
	if l.validator != nil {
		if err := l.validator.ValidateBytes(data, configs.SchemaPath(name)); err != nil {
			logger.FromContext(ctx).Warn("Catalog does not match its schema", "file", name, "error", err)
		}
	}
	return data, nil
}

func (l *Loader) fail(ctx context.Context, name string, err error) {
	logger.FromContext(ctx).Error("Failed to load catalog", "file", name, "error", err)
	metrics.CatalogLoadErrors.WithLabelValues(name).Inc()
}

func (l *Loader) loadGlyphs(ctx context.Context) *glyph.Catalog {
	data, err := l.read(ctx, configs.GlyphsFile)
	if err != nil {
		l.fail(ctx, configs.GlyphsFile, err)
		return glyph.EmptyCatalog()
	}
	glyphs, err := glyph.ParseGlyphs(data)
	if err != nil {
		l.fail(ctx, configs.GlyphsFile, err)
		return glyph.EmptyCatalog()
	}

	var series []domain.GlyphSeries
	data, err = l.read(ctx, configs.SeriesFile)
	if err == nil {
		series, err = glyph.ParseSeries(data)
	}
	if err != nil {
		l.fail(ctx, configs.SeriesFile, err)
		series = nil
	}

	logger.FromContext(ctx).Info("Glyph catalog loaded", "glyphs", len(glyphs), "series", len(series))
	return glyph.NewCatalog(glyphs, series)
}

// loadPotions loads each potion document on its own: a broken file only
// empties its own part of the catalog
func (l *Loader) loadPotions(ctx context.Context) *potion.Catalog {
	ingredients := loadPart(l, ctx, configs.IngredientsFile, potion.ParseIngredients)
	recipes := loadPart(l, ctx, configs.RecipesFile, potion.ParseRecipes)
	origins := loadPart(l, ctx, configs.OriginsFile, potion.ParseOrigins)
	books := loadPart(l, ctx, configs.BooksFile, potion.ParseBooks)

	logger.FromContext(ctx).Info("Potion catalog loaded",
		"ingredients", len(ingredients), "recipes", len(recipes), "books", len(books))
	return potion.NewCatalog(ingredients, recipes, origins, books)
}

func loadPart[T any](l *Loader, ctx context.Context, name string, parse func([]byte) ([]T, error)) []T {
	data, err := l.read(ctx, name)
	if err != nil {
		l.fail(ctx, name, err)
		return nil
	}
	out, err := parse(data)
	if err != nil {
		l.fail(ctx, name, err)
		return nil
	}
	return out
}

func (l *Loader) loadCrystal(ctx context.Context) *crystal.Config {
	data, err := l.read(ctx, configs.CrystalFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.fail(ctx, configs.CrystalFile, err)
		} else {
			logger.FromContext(ctx).Info("No crystal catalog, using built-in tables")
		}
		return crystal.DefaultConfig()
	}
	cfg, err := crystal.ParseConfig(data)
	if err != nil {
		l.fail(ctx, configs.CrystalFile, err)
		return crystal.DefaultConfig()
	}
	return cfg
}
