// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files guarded by build tags. Pinning the producer and
// consumer to distinct cores is what makes the ring's cache-line padding
// measurable; it is never required for correctness.

package affinity

import "runtime"

// SetAffinity pins the current OS thread to a given logical CPU on
// supported platforms. Callers should hold runtime.LockOSThread for the
// pin to stay meaningful.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// PinGoroutine locks the calling goroutine to its OS thread and pins that
// thread to cpuID. The returned unpin releases the thread lock.
func PinGoroutine(cpuID int) (unpin func(), err error) {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return runtime.UnlockOSThread, nil
}
