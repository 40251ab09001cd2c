// File: pool/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSCRing is a thin public wrapper over the internal SPSC ring buffer.

package pool

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/concurrency"
)

// SPSCRing[T] implements api.Ring with power-of-two capacity for exactly
// one producer goroutine and one consumer goroutine.
type SPSCRing[T any] struct {
	*concurrency.RingBuffer[T]
}

// NewSPSCRing creates a ring of the given capacity, which must be a power
// of two greater than 1. Usable depth is capacity-1.
func NewSPSCRing[T any](capacity uint64) (*SPSCRing[T], error) {
	r, err := concurrency.New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &SPSCRing[T]{RingBuffer: r}, nil
}

// MustSPSCRing is NewSPSCRing for literal capacities; panics on invalid
// capacity.
func MustSPSCRing[T any](capacity uint64) *SPSCRing[T] {
	return &SPSCRing[T]{RingBuffer: concurrency.Must[T](capacity)}
}

// Ensure compile-time compliance.
var (
	_ api.Ring[any]     = (*SPSCRing[any])(nil)
	_ api.Producer[any] = (*SPSCRing[any])(nil)
	_ api.Consumer[any] = (*SPSCRing[any])(nil)
	_ api.Drainer[any]  = (*SPSCRing[any])(nil)
)
