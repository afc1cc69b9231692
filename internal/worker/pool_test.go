package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterForge_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

// blockingJob holds its worker until the pool context is cancelled
type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Name() string { return "blocking" }

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestPool(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(context.Background(), TestWorkerCount, TestQueueSize)
		pool.Start()

		require.True(t, pool.Enqueue(&testJob{executed: &executed}))
		require.True(t, pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")}))

		assert.Eventually(t, func() bool {
			return atomic.LoadInt32(&executed) == TestExpectedJobCount
		}, time.Second, 5*time.Millisecond)

		pool.Stop()
	})
}

func TestPool_EnqueueFullQueue(t *testing.T) {
	pool := NewPool(context.Background(), 1, 1)
	pool.Start()
	defer pool.Stop()

	job := &blockingJob{started: make(chan struct{})}
	require.True(t, pool.Enqueue(job))
	<-job.started

	var executed int32
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}), "one slot left in the queue")
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "queue is full")
}

func TestPool_StopCancelsAndRejects(t *testing.T) {
	pool := NewPool(context.Background(), 1, 1)
	pool.Start()

	job := &blockingJob{started: make(chan struct{})}
	require.True(t, pool.Enqueue(job))
	<-job.started

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the running job")
	}

	var executed int32
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
	pool.Stop()
}
