package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Profile services use the profile ID
// as key so that load-mutate-save cycles on the same profile never interleave.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the key's mutex and returns its release function
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// Forget drops the mutex for a key, e.g. after a profile is deleted
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}
