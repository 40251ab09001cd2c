// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer ring buffer core.
//
// The buffer keeps two atomic cursors: head (next write slot, owned by the
// producer) and tail (next read slot, owned by the consumer). Cursors hold
// already-masked indices; one slot stays reserved so head==tail always means
// empty. Go's sync/atomic loads and stores are sequentially consistent,
// which is stronger than the acquire/release pairing the protocol needs:
// the head store publishes a fully written slot, the tail store publishes a
// fully retired one. The relaxed-self-read optimization of the classic
// formulation is recovered with per-side cached counterpart cursors, so the
// common case issues a single atomic load per operation.
//
// Exactly one goroutine may drive the producer side and one the consumer
// side. Violating that is a contract violation; build with the ringdebug
// tag to get goroutine-identity assertions on every operation.
package concurrency
