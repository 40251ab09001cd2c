//go:build ringdebug

// File: internal/concurrency/guard_debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ringdebug builds bind each ring side to the first goroutine that uses it
// and panic when a second goroutine shows up on the same side. The guard
// assumes a fixed goroutine per side for the buffer's lifetime; a
// deliberate sequential handoff needs a MoveFrom (which clears the
// bindings) or a release build.

package concurrency

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// goid extracts the current goroutine id from the stack header.
// Slow; exists only behind the ringdebug tag.
func goid() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	id, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("ring: cannot parse goroutine id: %v", err))
	}
	return id
}

func (r *RingBuffer[T]) checkProducer() {
	id := goid()
	if !r.producerGo.CompareAndSwap(0, id) {
		if prev := r.producerGo.Load(); prev != id {
			panic(fmt.Sprintf("ring: producer side driven by goroutines %d and %d", prev, id))
		}
	}
}

func (r *RingBuffer[T]) checkConsumer() {
	id := goid()
	if !r.consumerGo.CompareAndSwap(0, id) {
		if prev := r.consumerGo.Load(); prev != id {
			panic(fmt.Sprintf("ring: consumer side driven by goroutines %d and %d", prev, id))
		}
	}
}
