// File: internal/concurrency/spsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded SPSC circular buffer with atomic head/tail,
// padded to keep the two cursors on separate cache lines.

package concurrency

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// slot holds one element. Retiring an element zeroes its slot so the
// buffer never keeps a popped value reachable.
type slot[T any] struct {
	v T
}

// RingBuffer is a lock-free fixed-capacity ring buffer for exactly one
// producer goroutine and one consumer goroutine. One slot is reserved as a
// sentinel, so a buffer of capacity N holds at most N-1 elements.
//
// The zero value is not usable; construct with New or Must. The struct must
// not be copied (see MoveFrom for ownership transfer).
type RingBuffer[T any] struct {
	noCopy noCopy

	slots []slot[T]
	mask  uint64

	_          cpu.CacheLinePad
	head       atomic.Uint64 // next write slot, producer-owned
	cachedTail uint64        // producer's last observed tail
	producerGo atomic.Int64  // ringdebug builds only
	_          cpu.CacheLinePad
	tail       atomic.Uint64 // next read slot, consumer-owned
	cachedHead uint64        // consumer's last observed head
	consumerGo atomic.Int64  // ringdebug builds only
	_          cpu.CacheLinePad
}

// New allocates a ring buffer. Capacity must be a power of two greater
// than 1; usable depth is capacity-1.
func New[T any](capacity uint64) (*RingBuffer[T], error) {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("ring: capacity %d: %w", capacity, api.ErrInvalidCapacity)
	}
	return &RingBuffer[T]{
		slots: make([]slot[T], capacity),
		mask:  capacity - 1,
	}, nil
}

// Must is New for literal capacities; panics on invalid capacity.
func Must[T any](capacity uint64) *RingBuffer[T] {
	r, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return r
}

// TryPush adds an item; returns false if full. Producer side only.
func (r *RingBuffer[T]) TryPush(item T) bool {
	r.checkProducer()
	head := r.head.Load()
	next := (head + 1) & r.mask
	if next == r.cachedTail {
		r.cachedTail = r.tail.Load()
		if next == r.cachedTail {
			return false
		}
	}
	r.slots[head].v = item
	// Publish only after the slot write is complete.
	r.head.Store(next)
	return true
}

// TryEmplace constructs the item in place: fill is called with the target
// slot only after free space is confirmed. Producer side only.
func (r *RingBuffer[T]) TryEmplace(fill func(*T)) bool {
	r.checkProducer()
	head := r.head.Load()
	next := (head + 1) & r.mask
	if next == r.cachedTail {
		r.cachedTail = r.tail.Load()
		if next == r.cachedTail {
			return false
		}
	}
	fill(&r.slots[head].v)
	r.head.Store(next)
	return true
}

// TryPop removes and returns the oldest item; ok false if empty.
// Consumer side only.
func (r *RingBuffer[T]) TryPop() (item T, ok bool) {
	r.checkConsumer()
	tail := r.tail.Load()
	if tail == r.cachedHead {
		r.cachedHead = r.head.Load()
		if tail == r.cachedHead {
			return item, false
		}
	}
	s := &r.slots[tail]
	item = s.v
	var zero T
	s.v = zero
	// Retire only after the slot no longer holds the element.
	r.tail.Store((tail + 1) & r.mask)
	return item, true
}

// TryPopInto moves the oldest item into dst; returns false if empty.
// Consumer side only.
func (r *RingBuffer[T]) TryPopInto(dst *T) bool {
	r.checkConsumer()
	tail := r.tail.Load()
	if tail == r.cachedHead {
		r.cachedHead = r.head.Load()
		if tail == r.cachedHead {
			return false
		}
	}
	s := &r.slots[tail]
	*dst = s.v
	var zero T
	s.v = zero
	r.tail.Store((tail + 1) & r.mask)
	return true
}

// TryConsume hands the oldest item to fn; returns false if empty. The slot
// is zeroed and retired only after fn returns. Consumer side only.
func (r *RingBuffer[T]) TryConsume(fn func(T)) bool {
	r.checkConsumer()
	tail := r.tail.Load()
	if tail == r.cachedHead {
		r.cachedHead = r.head.Load()
		if tail == r.cachedHead {
			return false
		}
	}
	s := &r.slots[tail]
	fn(s.v)
	var zero T
	s.v = zero
	r.tail.Store((tail + 1) & r.mask)
	return true
}

// IsEmpty reports whether the buffer holds no items. Advisory: the other
// side may be mid-operation, so the answer can be stale by the time the
// caller acts on it. See State for a torn-free combined query.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.tail.Load() == r.head.Load()
}

// IsFull reports whether the buffer has no free slot. Same advisory caveat
// as IsEmpty.
func (r *RingBuffer[T]) IsFull() bool {
	head := r.head.Load()
	return (head+1)&r.mask == r.tail.Load()
}

// State computes the empty and full flags from a single pair of cursor
// loads, so the two flags can never both read true. Diagnostic surface,
// not part of the producer/consumer hot path.
func (r *RingBuffer[T]) State() api.State {
	head := r.head.Load()
	tail := r.tail.Load()
	return api.State{
		Empty: head == tail,
		Full:  (head+1)&r.mask == tail,
		Len:   int((head - tail) & r.mask),
	}
}

// Len returns the number of resident items. Advisory under concurrency.
func (r *RingBuffer[T]) Len() int {
	return int((r.head.Load() - r.tail.Load()) & r.mask)
}

// Cap returns the usable capacity (one slot is reserved as sentinel).
func (r *RingBuffer[T]) Cap() int {
	return int(r.mask)
}

// Drain retires every resident item, invoking fn per item (nil discards),
// and returns the number retired. Consumer side only; owners call Drain on
// teardown so no element is left resident.
func (r *RingBuffer[T]) Drain(fn func(T)) int {
	if fn == nil {
		fn = func(T) {}
	}
	n := 0
	for r.TryConsume(fn) {
		n++
	}
	return n
}

// MoveFrom adopts src's storage and cursor state and resets src to a fresh
// empty buffer of its own capacity. Any items the destination held are
// discarded first. Both buffers must be quiescent: no producer or consumer
// may run against either side during the transfer.
func (r *RingBuffer[T]) MoveFrom(src *RingBuffer[T]) {
	if r == src {
		return
	}
	r.Drain(nil)

	r.slots = src.slots
	r.mask = src.mask
	r.head.Store(src.head.Load())
	r.tail.Store(src.tail.Load())
	r.cachedTail = r.tail.Load()
	r.cachedHead = r.head.Load()

	src.slots = make([]slot[T], src.mask+1)
	src.head.Store(0)
	src.tail.Store(0)
	src.cachedTail = 0
	src.cachedHead = 0
	src.producerGo.Store(0)
	src.consumerGo.Store(0)
	r.producerGo.Store(0)
	r.consumerGo.Store(0)
}

// noCopy triggers go vet's copylocks check on value copies of RingBuffer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
