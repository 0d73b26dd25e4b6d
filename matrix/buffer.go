// SPDX-License-Identifier: MIT

// Package matrix - buffer ownership layer.
//
// Purpose:
//   - Track whether a contiguous float64 region is owned (acquired from an
//     Allocator, returned to it on release) or borrowed (caller memory, never
//     released by this package).
//   - Let borrowing views detect that their source was released: every
//     release bumps gen, and views compare it with the generation they
//     captured when created.
//
// Notes:
//   - A borrowing Matrix must not outlive the memory it borrows. For owned
//     sources the generation check turns a violation into ErrReleased; for
//     caller-supplied memory it stays a documented caller contract.
package matrix

import "math"

type buffer struct {
	data  []float64 // contiguous column-major storage
	owned bool      // release data into alloc when the owner is released
	gen   uint64    // bumped on every release
	alloc Allocator // allocator that produced data (owned only)
}

// newOwnedBuffer acquires rows*cols elements from alloc.
func newOwnedBuffer(rows, cols int, alloc Allocator) (*buffer, error) {
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, ErrAllocation
	}
	data, err := alloc.Acquire(rows * cols)
	if err != nil {
		return nil, err
	}

	return &buffer{data: data, owned: true, alloc: alloc}, nil
}

// borrowBuffer wraps caller memory. With owned=true the slice is handed to
// alloc on release.
func borrowBuffer(data []float64, owned bool, alloc Allocator) *buffer {
	return &buffer{data: data, owned: owned, alloc: alloc}
}

// release returns owned memory to its allocator and invalidates views.
// Idempotent; a no-op for borrowed buffers.
func (b *buffer) release() {
	if !b.owned || b.data == nil {
		return
	}
	b.alloc.Release(b.data)
	b.data = nil
	b.gen++
}
