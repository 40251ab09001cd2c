// File: pool/recycler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring-backed object recycling for SPSC pipelines.

package pool

import (
	"github.com/momentics/hioload-ring/internal/concurrency"
)

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// Recycler is a fixed-size free list backed by the SPSC ring. In a data
// pipeline the return path runs opposite to the data path: the data
// consumer is the sole Put caller and the data producer the sole Get
// caller, which keeps the underlying ring inside its SPSC contract.
//
// Get falls back to the constructor when the free list is empty; Put drops
// the object when the list is full (the GC reclaims it).
type Recycler[T any] struct {
	ring  *concurrency.RingBuffer[T]
	fresh func() T
}

// NewRecycler creates a recycler holding at most capacity-1 idle objects.
// Capacity must be a power of two greater than 1; fresh must not be nil.
func NewRecycler[T any](capacity uint64, fresh func() T) (*Recycler[T], error) {
	ring, err := concurrency.New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Recycler[T]{ring: ring, fresh: fresh}, nil
}

// Get returns an idle object, or a freshly constructed one when none is
// idle.
func (p *Recycler[T]) Get() T {
	if v, ok := p.ring.TryPop(); ok {
		return v
	}
	return p.fresh()
}

// Put returns an object to the free list; drops it when the list is full.
func (p *Recycler[T]) Put(v T) {
	p.ring.TryPush(v)
}

// Idle returns the number of objects currently parked in the free list.
func (p *Recycler[T]) Idle() int {
	return p.ring.Len()
}

// Cap returns the maximum number of idle objects the recycler retains.
func (p *Recycler[T]) Cap() int {
	return p.ring.Cap()
}

// Ensure compile-time compliance.
var _ ObjectPool[any] = (*Recycler[any])(nil)
