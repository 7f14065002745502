package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	t.Parallel()
	locks := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("emp-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockDifferentKeysIndependent(t *testing.T) {
	t.Parallel()
	locks := New()

	unlockA := locks.Lock("emp-a")
	// Must not block on a different key while emp-a is held.
	unlockB := locks.Lock("emp-b")

	unlockB()
	unlockA()
}
