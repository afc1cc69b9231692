// Package leaktest checks that background goroutines stop with their owner.
package leaktest

import (
	"runtime"
	"strings"
	"testing"
	"time"
)

// Polling bounds for Check
const (
	settleTimeout = time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records a goroutine baseline and later verifies the count came back to it
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check waits up to a second for the goroutine count to drop to the baseline
// plus tolerance. On failure it reports the live goroutine stacks.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	limit := g.before + tolerance
	if waitFor(limit, settleTimeout) {
		return
	}

	after := runtime.NumGoroutine()
	g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)\n%s",
		g.before, after, after-g.before, tolerance, stacks())
}

// CheckNoGoroutineLeak runs fn and fails t if it left goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits for the goroutine count to reach target or fails t
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if !waitFor(target, timeout) {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d",
			runtime.NumGoroutine(), target)
	}
}

func waitFor(limit int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		if runtime.NumGoroutine() <= limit {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}

// stacks dumps every goroutine, trimmed to the first frames of each
func stacks() string {
	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, true)
	blocks := strings.Split(string(buf[:n]), "\n\n")
	for i, b := range blocks {
		if lines := strings.Split(b, "\n"); len(lines) > 5 {
			blocks[i] = strings.Join(lines[:5], "\n")
		}
	}
	return strings.Join(blocks, "\n\n")
}
