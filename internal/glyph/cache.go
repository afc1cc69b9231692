package glyph

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// Default analysis cache sizing
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 10 * time.Minute
)

// cachedAnalysis ties a detection to the catalog that produced it, so a
// reloaded catalog never serves stale results
type cachedAnalysis struct {
	catalog   *Catalog
	detection domain.GlyphDetection
}

// analysisCache is an in-memory LRU of analyzed inputs with time-based expiration
type analysisCache struct {
	lru *expirable.LRU[string, cachedAnalysis]
}

func newAnalysisCache(size int, ttl time.Duration) *analysisCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &analysisCache{
		lru: expirable.NewLRU[string, cachedAnalysis](size, nil, ttl),
	}
}

// Get returns the cached detection for text if it came from catalog
func (c *analysisCache) Get(catalog *Catalog, text string) (domain.GlyphDetection, bool) {
	entry, found := c.lru.Get(text)
	if !found {
		return domain.GlyphDetection{}, false
	}
	if entry.catalog != catalog {
		c.lru.Remove(text)
		return domain.GlyphDetection{}, false
	}
	return entry.detection, true
}

func (c *analysisCache) Set(catalog *Catalog, text string, det domain.GlyphDetection) {
	c.lru.Add(text, cachedAnalysis{catalog: catalog, detection: det})
}

// Len returns the number of live entries
func (c *analysisCache) Len() int {
	return c.lru.Len()
}
