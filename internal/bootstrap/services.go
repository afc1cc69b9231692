package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CharacterForge_Go/internal/catalog"
	"github.com/osse101/CharacterForge_Go/internal/concurrency"
	"github.com/osse101/CharacterForge_Go/internal/config"
	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
	"github.com/osse101/CharacterForge_Go/internal/glyph"
	"github.com/osse101/CharacterForge_Go/internal/potion"
	"github.com/osse101/CharacterForge_Go/internal/profile"
)

// Services holds the application services built over one store and one
// lock manager, so that per-profile locks are shared by every builder.
type Services struct {
	Profile profile.Service
	Crystal crystal.Service
	Glyph   glyph.Service
	Potion  potion.Service

	Activity eventlog.Service
}

// InitializeServices wires the builder services
func InitializeServices(ctx context.Context, cfg *config.Config, storage *Storage, catalogs *catalog.Loader, publisher *event.ResilientPublisher) *Services {
	locks := concurrency.NewLockManager()
	store := storage.Store

	svc := &Services{
		Profile: profile.NewService(store, publisher, locks),
		Crystal: crystal.NewService(catalogs.CrystalConfig(ctx), store, publisher, locks),
		Glyph: glyph.NewService(catalogs, store, publisher, locks, glyph.Options{
			CacheSize: cfg.AnalysisCacheSize,
			CacheTTL:  cfg.AnalysisCacheTTL,
		}),
		Potion:   potion.NewService(catalogs, store, publisher, locks),
		Activity: eventlog.NewService(storage.EventLog),
	}

	slog.Info(LogMsgServicesInitialized,
		"analysis_cache_size", cfg.AnalysisCacheSize,
		"analysis_cache_ttl", cfg.AnalysisCacheTTL)

	return svc
}
