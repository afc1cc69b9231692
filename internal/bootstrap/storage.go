package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterForge_Go/internal/config"
	"github.com/osse101/CharacterForge_Go/internal/database"
	"github.com/osse101/CharacterForge_Go/internal/database/postgres"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
	"github.com/osse101/CharacterForge_Go/internal/repository"
)

// Storage is the selected profile state store and activity log. Pool is nil
// for the memory driver.
type Storage struct {
	Store    repository.StateStore
	EventLog eventlog.Repository
	Pool     *pgxpool.Pool
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		s.Pool.Close()
	}
}

// InitializeStorage selects the state store named by cfg.StorageDriver. The
// Postgres driver connects, applies pending migrations and pings the store.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if !cfg.UsesPostgres() {
		slog.Warn(LogMsgStorageMemory)
		return &Storage{
			Store:    repository.NewMemoryStateStore(),
			EventLog: eventlog.NewMemoryRepository(),
		}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		ApplicationName: cfg.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.MigrateUp(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)

	store := postgres.NewStateRepository(pool)
	if err := store.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedPingStore, err)
	}

	slog.Info(LogMsgStoragePostgres,
		"host", cfg.DBHost,
		"database", cfg.DBName,
		"max_conns", cfg.DBMaxConns)

	return &Storage{
		Store:    store,
		EventLog: postgres.NewEventLogRepository(pool),
		Pool:     pool,
	}, nil
}
