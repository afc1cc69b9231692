package eventlog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/logger"
)

// pruner is the slice of Service the retention job needs
type pruner interface {
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

// RetentionJob deletes activity entries older than the retention window.
// A run that starts while the previous one is still going is skipped.
type RetentionJob struct {
	activity      pruner
	retentionDays int

	running atomic.Bool
	removed atomic.Int64
}

func NewRetentionJob(activity pruner, retentionDays int) *RetentionJob {
	return &RetentionJob{activity: activity, retentionDays: retentionDays}
}

func (j *RetentionJob) Name() string { return RetentionJobName }

// Removed is the number of entries deleted since the job was created
func (j *RetentionJob) Removed() int64 { return j.removed.Load() }

func (j *RetentionJob) Process(ctx context.Context) error {
	if !j.running.CompareAndSwap(false, true) {
		logger.FromContext(ctx).Warn(LogMsgRetentionOverlap)
		return nil
	}
	defer j.running.Store(false)

	started := time.Now()
	n, err := j.activity.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		return fmt.Errorf("prune activity older than %d days: %w", j.retentionDays, err)
	}

	total := j.removed.Add(n)
	logger.FromContext(ctx).Info(LogMsgRetentionPruned,
		"removed", n,
		"removed_total", total,
		"retention_days", j.retentionDays,
		"duration_ms", time.Since(started).Milliseconds())
	return nil
}
