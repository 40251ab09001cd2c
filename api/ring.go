// Package api
// Author: momentics <momentics@gmail.com>
//
// Lock-free SPSC ring buffer contracts for cross-goroutine producer/consumer.

package api

// Ring is the minimal lock-free ring buffer contract. One goroutine may
// call the push side and one goroutine the pop side; all operations are
// non-blocking and complete in constant time.
type Ring[T any] interface {
	// TryPush adds an item, returns false if full.
	TryPush(item T) bool
	// TryPop removes the oldest item, ok false if empty.
	TryPop() (T, bool)
	// Len returns the number of resident items (advisory under concurrency).
	Len() int
	// Cap returns the usable capacity.
	Cap() int
}

// Producer is the full producer-side surface of an SPSC ring.
type Producer[T any] interface {
	TryPush(item T) bool
	// TryEmplace constructs the item directly in the target slot via fill,
	// called only after free space is confirmed.
	TryEmplace(fill func(*T)) bool
	IsFull() bool
}

// Consumer is the full consumer-side surface of an SPSC ring.
type Consumer[T any] interface {
	TryPop() (T, bool)
	// TryPopInto moves the oldest item into dst, ok false if empty.
	TryPopInto(dst *T) bool
	// TryConsume hands the oldest item to fn; the slot is retired only
	// after fn returns.
	TryConsume(fn func(T)) bool
	IsEmpty() bool
}

// Drainer retires all resident items in one consumer-side sweep.
type Drainer[T any] interface {
	// Drain pops every resident item, invoking fn per item (nil discards),
	// and returns the number of items retired.
	Drain(fn func(T)) int
}

// State is a snapshot of the empty/full flags computed from a single pair
// of cursor loads, so Empty and Full can never both read true.
type State struct {
	Empty bool
	Full  bool
	Len   int
}
