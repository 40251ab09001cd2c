// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// spsc_concurrent_test.go — Producer/consumer round-trip tests for the SPSC
// ring core: no loss, no duplication, no reordering.
package concurrency

import (
	"runtime"
	"sync"
	"testing"
)

func itemCount(t testing.TB, full int) int {
	t.Helper()
	if testing.Short() {
		return full / 20
	}
	return full
}

// TestRingBuffer_ConcurrentCounter pushes a monotonically increasing counter
// from one goroutine and asserts the consumer observes the exact sequence.
func TestRingBuffer_ConcurrentCounter(t *testing.T) {
	const capacity = 64
	n := uint64(itemCount(t, 100000))
	r := Must[uint64](capacity)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint64(0); i < n; i++ {
			for !r.TryPush(i) {
				runtime.Gosched()
			}
		}
	}()

	for expected := uint64(0); expected < n; {
		v, ok := r.TryPop()
		if !ok {
			runtime.Gosched()
			continue
		}
		if v != expected {
			t.Fatalf("got %d, want %d: sequence broken", v, expected)
		}
		expected++
	}
	wg.Wait()

	if !r.IsEmpty() {
		t.Error("buffer not empty after round trip")
	}
}

// TestRingBuffer_ConcurrentSmallBuffer maximizes contention with the
// smallest legal buffer (usable depth 1).
func TestRingBuffer_ConcurrentSmallBuffer(t *testing.T) {
	n := uint64(itemCount(t, 200000))
	r := Must[uint64](2)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint64(0); i < n; i++ {
			for !r.TryPush(i) {
				runtime.Gosched()
			}
		}
	}()

	var out uint64
	for expected := uint64(0); expected < n; {
		if !r.TryPopInto(&out) {
			runtime.Gosched()
			continue
		}
		if out != expected {
			t.Fatalf("got %d, want %d", out, expected)
		}
		expected++
	}
	wg.Wait()
}

// TestRingBuffer_ConcurrentConsume drives the callback retrieval shape with
// a struct payload so torn reads would corrupt the checksum.
func TestRingBuffer_ConcurrentConsume(t *testing.T) {
	type record struct {
		seq uint64
		sum uint64
	}
	n := uint64(itemCount(t, 100000))
	r := Must[record](16)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint64(0); i < n; i++ {
			rec := record{seq: i, sum: i * 2654435761}
			for !r.TryPush(rec) {
				runtime.Gosched()
			}
		}
	}()

	for expected := uint64(0); expected < n; {
		ok := r.TryConsume(func(rec record) {
			if rec.seq != expected {
				t.Errorf("got seq %d, want %d", rec.seq, expected)
			}
			if rec.sum != rec.seq*2654435761 {
				t.Errorf("seq %d: corrupted payload", rec.seq)
			}
		})
		if !ok {
			runtime.Gosched()
			continue
		}
		expected++
	}
	wg.Wait()
}

// TestRingBuffer_ConcurrentEmplace round-trips through the in-place
// construction path under contention.
func TestRingBuffer_ConcurrentEmplace(t *testing.T) {
	n := uint64(itemCount(t, 100000))
	r := Must[uint64](32)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint64(0); i < n; i++ {
			for !r.TryEmplace(func(slot *uint64) { *slot = i }) {
				runtime.Gosched()
			}
		}
	}()

	for expected := uint64(0); expected < n; {
		v, ok := r.TryPop()
		if !ok {
			runtime.Gosched()
			continue
		}
		if v != expected {
			t.Fatalf("got %d, want %d", v, expected)
		}
		expected++
	}
	wg.Wait()
}

// TestRingBuffer_StateUnderConcurrency lets an observer goroutine sample the
// combined state query while both sides churn; Empty and Full must never
// both read true and Len must stay within bounds.
func TestRingBuffer_StateUnderConcurrency(t *testing.T) {
	const capacity = 8
	n := uint64(itemCount(t, 100000))
	r := Must[uint64](capacity)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			st := r.State()
			if st.Empty && st.Full {
				t.Error("State reported empty and full simultaneously")
				return
			}
			if st.Len < 0 || st.Len > capacity-1 {
				t.Errorf("State.Len = %d out of bounds", st.Len)
				return
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint64(0); i < n; i++ {
			for !r.TryPush(i) {
				runtime.Gosched()
			}
		}
	}()

	for expected := uint64(0); expected < n; {
		if _, ok := r.TryPop(); !ok {
			runtime.Gosched()
			continue
		}
		expected++
	}
	close(stop)
	wg.Wait()
}
