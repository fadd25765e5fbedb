package concurrency

import (
	"sync"
)

// LockManager hands out named mutexes. The economy engine keys them by
// character ID so that at most one mutating operation per character is in
// flight, while operations on different characters never contend.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
// Locks are never evicted; the key space (characters) is small and bounded.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
