//go:build !ringdebug

// File: internal/concurrency/guard_off.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Release builds compile the SPSC ownership guards away entirely.

package concurrency

func (r *RingBuffer[T]) checkProducer() {}

func (r *RingBuffer[T]) checkConsumer() {}
