// Package pool
// Author: momentics <momentics@gmail.com>
//
// Public adapters over the internal SPSC ring core: SPSCRing exposes the
// ring as api.Ring, Recycler turns it into a fixed-size object free list
// for allocation-free producer/consumer pipelines.
package pool
