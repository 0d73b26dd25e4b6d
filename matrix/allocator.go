// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sync"
)

// Allocator provides owned float64 buffers and takes them back on release.
// Acquire may return memory holding stale values; owned matrices are
// documented as uninitialized.
type Allocator interface {
	Acquire(n int) ([]float64, error)
	Release(buf []float64)
}

// HeapAllocator allocates with make and leaves reclamation to the GC.
// Limit > 0 caps the number of elements per request.
type HeapAllocator struct {
	Limit int
}

var _ Allocator = HeapAllocator{}

// Acquire returns a zeroed slice of n elements, or ErrAllocation when n is
// negative, above Limit, or too large for the runtime to represent.
// A true out-of-memory condition is fatal in Go and cannot be reported.
func (h HeapAllocator) Acquire(n int) (buf []float64, err error) {
	if err = checkRequest(n, h.Limit); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("HeapAllocator.Acquire(%d): %v: %w", n, r, ErrAllocation)
		}
	}()

	return make([]float64, n), nil
}

// Release is a no-op; the GC reclaims the slice once unreferenced.
func (HeapAllocator) Release([]float64) {}

// PoolAllocator recycles released buffers in per-size sync.Pools. Buffers
// handed out again keep whatever values they held.
type PoolAllocator struct {
	Limit int

	mu    sync.Mutex
	pools map[int]*sync.Pool
}

var _ Allocator = (*PoolAllocator)(nil)

// NewPoolAllocator returns a pool allocator capping requests at limit
// elements (0 = unlimited).
func NewPoolAllocator(limit int) *PoolAllocator {
	return &PoolAllocator{Limit: limit, pools: make(map[int]*sync.Pool)}
}

// Acquire returns a recycled buffer of exactly n elements when one is
// pooled, otherwise a fresh one.
func (p *PoolAllocator) Acquire(n int) ([]float64, error) {
	if err := checkRequest(n, p.Limit); err != nil {
		return nil, err
	}
	if n == 0 {
		return []float64{}, nil
	}
	if v := p.pool(n).Get(); v != nil {
		return (*(v.(*[]float64)))[:n], nil
	}

	return HeapAllocator{}.Acquire(n)
}

// Release puts buf back into the pool matching its capacity.
func (p *PoolAllocator) Release(buf []float64) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	p.pool(len(buf)).Put(&buf)
}

func (p *PoolAllocator) pool(n int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pools == nil {
		p.pools = make(map[int]*sync.Pool)
	}
	sp, ok := p.pools[n]
	if !ok {
		sp = &sync.Pool{}
		p.pools[n] = sp
	}

	return sp
}

func checkRequest(n, limit int) error {
	if n < 0 {
		return fmt.Errorf("Acquire(%d): negative size: %w", n, ErrAllocation)
	}
	if limit > 0 && n > limit {
		return fmt.Errorf("Acquire(%d): exceeds limit %d: %w", n, limit, ErrAllocation)
	}

	return nil
}
