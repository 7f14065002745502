package keylock

import "sync"

// KeyLock serializes operations that share a key, typically an employee ID.
// Balance deduction and punch classification are multi-step read-modify-write
// sequences, so two concurrent calls for the same employee must not interleave.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
//
//	defer locks.Lock(employeeID)()
func (k *KeyLock) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
