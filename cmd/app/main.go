// @title CharacterForge API
// @version 1.0
// @description Builders for glyph skills, potions and crystals, with per-profile state.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/bootstrap"
	"github.com/osse101/CharacterForge_Go/internal/config"
	"github.com/osse101/CharacterForge_Go/internal/server"
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	catalogs := bootstrap.InitializeCatalogs(ctx, cfg)
	services := bootstrap.InitializeServices(ctx, cfg, storage, catalogs, publisher)
	if err := bootstrap.RegisterEventHandlers(bus, services.Activity); err != nil {
		storage.Close()
		return err
	}
	jobs := bootstrap.InitializeBackgroundJobs(ctx, cfg, catalogs, services.Activity)

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			ServiceName:    cfg.ServiceName,
			RateLimit: server.RateLimit{
				Requests: cfg.RateLimitRequests,
				Window:   cfg.RateLimitWindow,
			},
		},
		storage.Store,
		services.Profile,
		services.Crystal,
		services.Glyph,
		services.Potion,
		services.Activity,
		catalogs,
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		BackgroundJobs:     jobs,
		ResilientPublisher: publisher,
		Storage:            storage,
	})
	return nil
}
