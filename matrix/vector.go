// SPDX-License-Identifier: MIT

// Package matrix - Vector: a 1-D strided view over float64 values.
//
// Purpose:
//   - Carry (head slice, length, increment) so a vector can be a dense
//     standalone allocation or a strided window into a Matrix row/column.
//   - Hand kernels the exact BLAS triple (x, n, incX) without copies.
//
// Complexity quicksheet:
//   - NewVector: O(n) zero-init; VectorFrom/NewStridedVector: O(1); At/Set: O(1).
package matrix

import (
	"fmt"
	"strings"
)

// Vector is a logical sequence of n doubles at data[0], data[inc], ...
// data is trimmed to exactly 1+(n-1)*inc elements.
//   - src/gen are set only for views of a Matrix; a generation mismatch
//     means the source buffer was released.
type Vector struct {
	data  []float64 // head of the sequence
	n     int       // logical length
	inc   int       // element stride (>= 1)
	owned bool      // allocated by NewVector
	src   *buffer   // source buffer of a Matrix view
	gen   uint64    // src.gen when the view was taken
}

// NewVector allocates an owned, zeroed vector of length n from the
// configured allocator (WithAllocator; the heap by default).
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
//   - ErrAllocation when the allocator refuses the request.
func NewVector(n int, opts ...Option) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	data, err := o.alloc.Acquire(n)
	if err != nil {
		return nil, fmt.Errorf("NewVector(%d): %w", n, err)
	}
	zeroSlice(data)

	return &Vector{data: data, n: n, inc: 1, owned: true}, nil
}

// VectorFrom borrows data as a densely packed vector (stride 1).
func VectorFrom(data []float64) *Vector {
	return &Vector{data: data, n: len(data), inc: 1}
}

// NewStridedVector borrows n elements of data at stride inc.
//
// Errors:
//   - ErrInvalidDimensions when n < 0 or inc < 1.
//   - ErrInsufficientLength when data cannot hold n elements at stride inc.
func NewStridedVector(data []float64, n, inc int) (*Vector, error) {
	if n < 0 || inc < 1 {
		return nil, fmt.Errorf("NewStridedVector(n=%d,inc=%d): %w", n, inc, ErrInvalidDimensions)
	}
	need := stridedLen(n, inc)
	if len(data) < need {
		return nil, fmt.Errorf("NewStridedVector(n=%d,inc=%d): len %d: %w", n, inc, len(data), ErrInsufficientLength)
	}

	return &Vector{data: data[:need], n: n, inc: inc}, nil
}

// newVectorView builds a view of src without validation (callers ran
// src.live and computed the window).
func newVectorView(src *Matrix, data []float64, n, inc int) *Vector {
	return &Vector{data: data[:stridedLen(n, inc)], n: n, inc: inc, src: src.buf, gen: src.gen}
}

// Len returns the logical length.
func (v *Vector) Len() int { return v.n }

// Inc returns the element stride.
func (v *Vector) Inc() int { return v.inc }

// Owned reports whether the vector allocated its own storage.
func (v *Vector) Owned() bool { return v.owned }

// Data returns the head slice (raw storage; element i is Data()[i*Inc()]).
// Nil once the source of a view was released.
func (v *Vector) Data() []float64 {
	if v.released() {
		return nil
	}

	return v.data
}

// At returns element i.
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if err := v.live(opAt); err != nil {
		return 0, err
	}
	if i < 0 || i >= v.n {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i*v.inc], nil
}

// Set assigns element i.
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (v *Vector) Set(i int, val float64) error {
	if err := v.live(opSet); err != nil {
		return err
	}
	if i < 0 || i >= v.n {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i*v.inc] = val

	return nil
}

// ToSlice copies the logical elements into a fresh dense slice. Nil once
// the source of a view was released.
func (v *Vector) ToSlice() []float64 {
	if v.released() {
		return nil
	}
	out := make([]float64, v.n)
	var i int
	for i = 0; i < v.n; i++ {
		out[i] = v.data[i*v.inc]
	}

	return out
}

// String renders the elements for diagnostics; a released view renders
// as an empty row.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	n := v.n
	if v.released() {
		n = 0
	}
	var i int
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", v.data[i*v.inc])
	}
	b.WriteString(_fmtRowClose)

	return b.String()
}

// live reports ErrNilMatrix / ErrReleased for unusable receivers.
func (v *Vector) live(op string) error {
	if v == nil {
		return vectorErrorf(op, ErrNilMatrix)
	}
	if v.released() {
		return vectorErrorf(op, ErrReleased)
	}

	return nil
}

// released reports whether v views a buffer that has since been released.
func (v *Vector) released() bool {
	return v.src != nil && v.src.gen != v.gen
}

// stridedLen is the minimum slice length that holds n elements at stride inc.
func stridedLen(n, inc int) int {
	if n == 0 {
		return 0
	}

	return 1 + (n-1)*inc
}
