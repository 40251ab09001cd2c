//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows implementation via SetThreadAffinityMask.

package affinity

import (
	"fmt"
	"syscall"
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentThread      = kernel32.NewProc("GetCurrentThread")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// setAffinityPlatform sets the calling thread's affinity to a single CPU.
func setAffinityPlatform(cpuID int) error {
	if cpuID < 0 || cpuID >= 64 {
		return fmt.Errorf("affinity: cpu %d outside the affinity mask", cpuID)
	}
	hThread, _, _ := procGetCurrentThread.Call()
	ret, _, err := procSetThreadAffinityMask.Call(hThread, uintptr(1)<<cpuID)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask(cpu %d): %w", cpuID, err)
	}
	return nil
}
