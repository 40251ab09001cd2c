//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub for platforms without thread affinity control.

package affinity

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// setAffinityPlatform reports affinity as unsupported on this platform.
func setAffinityPlatform(cpuID int) error {
	return fmt.Errorf("affinity: %w", api.ErrNotSupported)
}
