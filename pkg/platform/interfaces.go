// Package platform selects the mutex backend the bus core runs on.
//
// Exactly one backend is linked into any given binary, chosen with a
// build tag: posix (the default), baremetal, or cooperative. This
// mirrors the preprocessor selection of MREQ_PLATFORM_BAREMETAL /
// MREQ_PLATFORM_FREERTOS / MREQ_PLATFORM_POSIX in the C++ source this
// package is ported from — Go has no preprocessor, so the same
// one-backend-per-build-tag contract is expressed with //go:build
// instead of #ifdef.
package platform

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Mutex is the lock every Topic acquires around its critical section
// (the Registry guards itself with a plain sync.Mutex). Implementations must be safe to embed by value or
// by pointer and must never allocate on Lock/Unlock once constructed.
//
//counterfeiter:generate . Mutex
type Mutex interface {
	Lock()
	Unlock()
	// TryLock attempts to acquire the lock without blocking, reporting
	// whether it succeeded. Not used by the core's hot path (which
	// always blocks on Lock), but part of the contract §6 names for
	// the platform backend.
	TryLock() bool
}

// New constructs the Mutex for the backend selected at build time.
func New() Mutex {
	return newMutex()
}
