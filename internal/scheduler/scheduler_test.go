package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterForge_Go/internal/testing/leaktest"
	"github.com/osse101/CharacterForge_Go/internal/worker"
)

type namedJob string

func (j namedJob) Name() string                  { return string(j) }
func (j namedJob) Process(context.Context) error { return nil }

// recordingPool counts enqueues per job and can refuse them
type recordingPool struct {
	mu     sync.Mutex
	counts map[string]int
	refuse bool
}

func (p *recordingPool) Enqueue(job worker.Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.counts == nil {
		p.counts = make(map[string]int)
	}
	p.counts[job.Name()]++
	return !p.refuse
}

func (p *recordingPool) count(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[name]
}

func TestScheduler_RunsOnWorkerPool(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(context.Background(), 1, 10)
		pool.Start()
		defer pool.Stop()

		ran := make(chan struct{}, 10)
		job := funcJob{name: "catalog-reload", fn: func() { ran <- struct{}{} }}

		sched := New(pool)
		defer sched.Stop()
		require.NoError(t, sched.Schedule(10*time.Millisecond, job))

		for i := 0; i < 2; i++ {
			select {
			case <-ran:
			case <-time.After(time.Second):
				t.Fatalf("run %d never happened", i+1)
			}
		}
	})
}

type funcJob struct {
	name string
	fn   func()
}

func (j funcJob) Name() string { return j.name }
func (j funcJob) Process(context.Context) error {
	j.fn()
	return nil
}

func TestScheduler_Validation(t *testing.T) {
	sched := New(&recordingPool{})
	defer sched.Stop()

	require.NoError(t, sched.Schedule(time.Hour, namedJob("activity-retention")))

	tests := []struct {
		name     string
		interval time.Duration
		job      worker.Job
		want     error
	}{
		{"zero interval", 0, namedJob("a"), ErrInvalidInterval},
		{"negative interval", -time.Second, namedJob("b"), ErrInvalidInterval},
		{"same name twice", time.Minute, namedJob("activity-retention"), ErrDuplicateJob},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, sched.Schedule(tt.interval, tt.job), tt.want)
		})
	}

	assert.Equal(t, []string{"activity-retention"}, sched.Jobs())
}

func TestScheduler_KeepsTickingWhenPoolRefuses(t *testing.T) {
	pool := &recordingPool{refuse: true}
	sched := New(pool)
	defer sched.Stop()

	require.NoError(t, sched.Schedule(5*time.Millisecond, namedJob("busy")))
	assert.Eventually(t, func() bool { return pool.count("busy") >= 3 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopEndsSchedules(t *testing.T) {
	pool := &recordingPool{}
	sched := New(pool)
	require.NoError(t, sched.Schedule(5*time.Millisecond, namedJob("tick")))
	assert.Eventually(t, func() bool { return pool.count("tick") >= 1 }, time.Second, 5*time.Millisecond)

	sched.Stop()
	after := pool.count("tick")
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, after, pool.count("tick"))
	assert.ErrorIs(t, sched.Schedule(time.Minute, namedJob("late")), ErrStopped)
	assert.NotPanics(t, sched.Stop)
}
