// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types for the hioload-ring library. Full and empty are
// ordinary ring states reported through ok returns, never through errors.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidCapacity = fmt.Errorf("capacity must be a power of two greater than 1")
	ErrNotSupported    = fmt.Errorf("operation not supported")
)
