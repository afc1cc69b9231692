package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/server"
)

// ShutdownComponents holds everything main started. Nil members are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	BackgroundJobs     *BackgroundJobs
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

type shutdownStep struct {
	name string
	run  func(ctx context.Context) error
}

// steps lists the teardown order. The publisher is flushed after the server
// so in-flight requests can still publish, and storage goes last.
func (c ShutdownComponents) steps() []shutdownStep {
	var steps []shutdownStep
	if c.Server != nil {
		steps = append(steps, shutdownStep{"http server", c.Server.Stop})
	}
	if c.BackgroundJobs != nil {
		steps = append(steps, shutdownStep{"background jobs", func(context.Context) error {
			c.BackgroundJobs.Stop()
			return nil
		}})
	}
	if c.ResilientPublisher != nil {
		steps = append(steps, shutdownStep{"event publisher", c.ResilientPublisher.Shutdown})
	}
	if c.Storage != nil {
		steps = append(steps, shutdownStep{"storage", func(context.Context) error {
			c.Storage.Close()
			return nil
		}})
	}
	return steps
}

// GracefulShutdown runs every step even when an earlier one fails or ctx
// expires, so the database pool is always closed.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	for _, step := range components.steps() {
		started := time.Now()
		if err := step.run(ctx); err != nil {
			slog.Error(LogMsgShutdownStepFailed, "step", step.name, "error", err)
			continue
		}
		slog.Debug(LogMsgShutdownStepDone, "step", step.name, "duration_ms", time.Since(started).Milliseconds())
	}

	slog.Info(LogMsgServerStopped)
}
