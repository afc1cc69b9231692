package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/catalog"
	"github.com/osse101/CharacterForge_Go/internal/config"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
	"github.com/osse101/CharacterForge_Go/internal/scheduler"
	"github.com/osse101/CharacterForge_Go/internal/worker"
)

// BackgroundJobs runs the periodic maintenance jobs on a shared worker pool
type BackgroundJobs struct {
	pool  *worker.Pool
	sched *scheduler.Scheduler
}

// catalogReloadJob reloads every catalog group. Readers keep the previous
// catalogs until the new ones are swapped in.
type catalogReloadJob struct {
	loader *catalog.Loader
}

func (j catalogReloadJob) Name() string { return CatalogReloadJobName }

func (j catalogReloadJob) Process(ctx context.Context) error {
	s := j.loader.Reload(ctx)
	slog.Info(LogMsgCatalogsReloaded,
		"glyphs", s.Glyphs,
		"ingredients", s.Ingredients,
		"recipes", s.Recipes,
		"ranks", s.Ranks)
	return nil
}

type scheduledJob struct {
	interval time.Duration
	job      worker.Job
}

// InitializeBackgroundJobs schedules catalog reloads when CATALOG_RELOAD_INTERVAL
// is set for a CONFIG_DIR, and activity cleanup when EVENT_LOG_RETENTION_DAYS
// is positive. It returns nil when nothing is scheduled.
func InitializeBackgroundJobs(ctx context.Context, cfg *config.Config, loader *catalog.Loader, activity eventlog.Service) *BackgroundJobs {
	var jobs []scheduledJob

	if cfg.CatalogReloadInterval > 0 {
		if cfg.ConfigDir == "" {
			slog.Warn(LogMsgCatalogReloadSkipped, "interval", cfg.CatalogReloadInterval)
		} else {
			jobs = append(jobs, scheduledJob{cfg.CatalogReloadInterval, catalogReloadJob{loader: loader}})
		}
	}

	if cfg.EventLogRetentionDays > 0 && activity != nil {
		jobs = append(jobs, scheduledJob{eventlog.RetentionInterval, eventlog.NewRetentionJob(activity, cfg.EventLogRetentionDays)})
	}

	if len(jobs) == 0 {
		return nil
	}

	pool := worker.NewPool(ctx, len(jobs), len(jobs))
	pool.Start()

	sched := scheduler.New(pool)
	for _, j := range jobs {
		if err := sched.Schedule(j.interval, j.job); err != nil {
			slog.Error(LogMsgBackgroundJobRejected, "job", j.job.Name(), "error", err)
			continue
		}
		slog.Info(LogMsgBackgroundJobScheduled, "job", j.job.Name(), "interval", j.interval)
	}

	return &BackgroundJobs{pool: pool, sched: sched}
}

// Stop ends the schedules and waits for running jobs. Safe on nil.
func (b *BackgroundJobs) Stop() {
	if b == nil {
		return
	}
	b.sched.Stop()
	b.pool.Stop()
}
