//go:build cooperative

package platform

import (
	"runtime"
	"sync"
)

// cooperativeMutex stands in for an RTOS's cooperative-task mutex.
// Go has no scheduler distinct from its goroutine scheduler, so there
// is no literal port of an RTOS binary semaphore; a sync.Mutex with a
// Gosched yield on the contended path is the nearest idiomatic
// substitute a hosted Go program can offer (see DESIGN.md "Open
// Question decisions").
type cooperativeMutex struct {
	mu sync.Mutex
}

func newMutex() Mutex {
	return &cooperativeMutex{}
}

func (m *cooperativeMutex) Lock() {
	for !m.mu.TryLock() {
		runtime.Gosched()
	}
}

func (m *cooperativeMutex) Unlock() {
	m.mu.Unlock()
}

func (m *cooperativeMutex) TryLock() bool {
	return m.mu.TryLock()
}
