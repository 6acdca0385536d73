//go:build baremetal

package platform

// baremetalMutex is a no-op lock for single-threaded, interrupt-free
// targets: there is exactly one execution context, so mutual exclusion
// is free. This matches the C++ source's baremetal backend, which
// compiles lock()/unlock()/try_lock() down to nothing.
type baremetalMutex struct{}

func newMutex() Mutex {
	return baremetalMutex{}
}

func (baremetalMutex) Lock()         {}
func (baremetalMutex) Unlock()       {}
func (baremetalMutex) TryLock() bool { return true }
