// Package scheduler feeds recurring jobs into a worker pool.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/logger"
	"github.com/osse101/CharacterForge_Go/internal/worker"
)

var (
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrDuplicateJob    = errors.New("job already scheduled")
	ErrStopped         = errors.New("scheduler stopped")
)

// Enqueuer accepts jobs without blocking and reports whether one was taken.
// *worker.Pool satisfies it.
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler hands each registered job to the pool once per interval.
// The first run happens one interval after Schedule.
type Scheduler struct {
	pool   Enqueuer
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	intervals map[string]time.Duration
	wg        sync.WaitGroup
}

func New(pool Enqueuer) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		pool:      pool,
		ctx:       ctx,
		cancel:    cancel,
		intervals: make(map[string]time.Duration),
	}
}

// Schedule registers job under its Name. Ticks that find the pool full are
// dropped rather than queued up.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s got %s", ErrInvalidInterval, job.Name(), interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return ErrStopped
	}
	if _, ok := s.intervals[job.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateJob, job.Name())
	}
	s.intervals[job.Name()] = interval

	s.wg.Add(1)
	go s.loop(interval, job)
	return nil
}

func (s *Scheduler) loop(interval time.Duration, job worker.Job) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if !s.pool.Enqueue(job) {
				logger.Warn(LogMsgTickSkipped, "job", job.Name(), "interval", interval)
			}
		}
	}
}

// Jobs lists the scheduled job names in order
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.intervals))
	for name := range s.intervals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stop ends every schedule and waits for the loops to exit. The pool keeps
// running; stopping it is the caller's job.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}
