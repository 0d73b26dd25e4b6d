// SPDX-License-Identifier: MIT

// Package matrix - Matrix: column-major dense storage over an owned or
// borrowed buffer.
//
// Purpose:
//   - Provide the explicit index formula j*rows + i over a contiguous buffer.
//   - Support three lifecycles: owned allocation (NewMatrix), wrapped caller
//     memory (NewMatrixFrom) and zero-copy column-range views
//     (NewColumnsView / ColumnsRef).
//   - Guarantee check-then-act at the public surface: every shape/range
//     violation is reported before any kernel touches memory.
//
// Complexity quicksheet:
//   - NewMatrix: O(1) + allocator; NewMatrixFrom/views: O(1); At/Set: O(1).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/spx/matrix/kernel"
)

// Matrix is a rows×cols column-major view of float64 values.
//   - Element (i,j) lives at buf.data[off + j*rows + i].
//   - owned is true only for the Matrix that acquired (or adopted) buf.
//   - gen is buf's generation when this Matrix was created; a mismatch means
//     the owner released the memory.
//
// Matrix performs no locking: concurrent reads through several views are
// fine, concurrent writes to the same buffer must be serialized by callers.
type Matrix struct {
	rows, cols int
	off        int
	buf        *buffer
	gen        uint64
	owned      bool
	k          kernel.Kernels
}

// NewMatrix allocates an owned rows×cols matrix. Contents are unspecified
// (zeroed by the default heap allocator, stale with a PoolAllocator).
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//   - ErrAllocation when the allocator refuses the request.
func NewMatrix(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", opNew, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	buf, err := newOwnedBuffer(rows, cols, o.alloc)
	if err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", opNew, rows, cols, err)
	}

	return &Matrix{rows: rows, cols: cols, buf: buf, owned: true, k: o.k}, nil
}

// NewMatrixFrom wraps caller memory holding rows×cols column-major values.
// With owned=false the matrix never releases data; with owned=true Release
// hands data to the configured allocator.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//   - ErrInsufficientLength when len(data) < rows*cols.
func NewMatrixFrom(data []float64, rows, cols int, owned bool, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", opNewFrom, rows, cols, ErrInvalidDimensions)
	}
	if cols != 0 && rows > len(data)/cols || len(data) < rows*cols {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): len %d: %w", opNewFrom, rows, cols, len(data), ErrInsufficientLength)
	}
	o := gatherOptions(opts...)

	return &Matrix{
		rows:  rows,
		cols:  cols,
		buf:   borrowBuffer(data[:rows*cols], owned, o.alloc),
		owned: owned,
		k:     o.k,
	}, nil
}

// NewColumnsView returns a non-owning view of source columns
// [startCol, startCol+numCols). It shares source's buffer and backend.
//
// Errors:
//   - ErrNilMatrix, ErrReleased from the source.
//   - ErrInvalidRange when the window is empty or leaves the source.
func NewColumnsView(source *Matrix, startCol, numCols int) (*Matrix, error) {
	if err := source.live(opColumnsRef); err != nil {
		return nil, err
	}

	return source.ColumnsRef(startCol, startCol+numCols)
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Columns returns the column count. Complexity: O(1).
func (m *Matrix) Columns() int { return m.cols }

// Shape packs Rows() and Columns(). Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Owned reports whether Release returns the buffer to an allocator.
func (m *Matrix) Owned() bool { return m.owned }

// Kernels returns the backend this matrix dispatches to.
func (m *Matrix) Kernels() kernel.Kernels { return m.k }

// Data returns the column-major storage window (the head pointer): exactly
// rows*cols elements, writes go through to the shared buffer. Nil after release.
func (m *Matrix) Data() []float64 {
	if m.live(opData) != nil {
		return nil
	}

	return m.data()
}

// Offset returns the position of (i,j) inside Data(): j*rows + i.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func (m *Matrix) Offset(i, j int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opOffset, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", opOffset, i, j, ErrOutOfRange)
	}

	return j*m.rows + i, nil
}

// At returns element (i,j).
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	if err := m.live(opAt); err != nil {
		return 0, err
	}
	off, err := m.Offset(i, j)
	if err != nil {
		return 0, err
	}

	return m.data()[off], nil
}

// Set assigns element (i,j).
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) Set(i, j int, v float64) error {
	if err := m.live(opSet); err != nil {
		return err
	}
	off, err := m.Offset(i, j)
	if err != nil {
		return err
	}
	m.data()[off] = v

	return nil
}

// Release gives owned memory back to its allocator and invalidates every
// view created from this matrix. On a borrowing matrix it only detaches the
// receiver. Idempotent.
func (m *Matrix) Release() {
	if m == nil || m.buf == nil {
		return
	}
	if m.owned && m.buf.gen == m.gen {
		m.buf.release()
	}
	m.buf = nil
}

// live reports ErrNilMatrix / ErrReleased for unusable receivers.
func (m *Matrix) live(op string) error {
	if m == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if m.buf == nil || m.buf.gen != m.gen {
		return matrixErrorf(op, ErrReleased)
	}

	return nil
}

// data is the unchecked storage window; callers ran live first. Capacity is
// clipped so reslicing past the window panics instead of reaching neighbours.
func (m *Matrix) data() []float64 {
	end := m.off + m.rows*m.cols

	return m.buf.data[m.off:end:end]
}

// col is the unchecked storage of column j.
func (m *Matrix) col(j int) []float64 {
	base := m.off + j*m.rows
	end := base + m.rows

	return m.buf.data[base:end:end]
}

// ld is the leading dimension passed to kernels.
func (m *Matrix) ld() int { return kernel.LeadingDim(m.rows) }
