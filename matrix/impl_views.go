// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ColumnsRef returns a zero-copy view of columns [start, end).
// MAIN DESCRIPTION:
//   - The view keeps the source's row count, advances the head by start*rows
//     and never owns memory.
//
// Implementation:
//   - Stage 1: validate the source is live and the range is non-empty and inside.
//   - Stage 2: share the buffer, capture its generation.
//
// Errors:
//   - ErrInvalidRange when start < 0, end <= start, or end > Columns().
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - View element (i,k) equals source element (i, start+k); writes go through.
//   - The view must not outlive the source; if the source is released the
//     view reports ErrReleased.
func (m *Matrix) ColumnsRef(start, end int) (*Matrix, error) {
	if err := m.live(opColumnsRef); err != nil {
		return nil, err
	}
	if start < 0 || end <= start || end > m.cols {
		return nil, fmt.Errorf("Matrix.%s(%d,%d) of %d columns: %w", opColumnsRef, start, end, m.cols, ErrInvalidRange)
	}

	return &Matrix{
		rows:  m.rows,
		cols:  end - start,
		off:   m.off + start*m.rows,
		buf:   m.buf,
		gen:   m.gen,
		owned: false,
		k:     m.k,
	}, nil
}

// ColumnVector returns column j as a stride-1 Vector view.
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) ColumnVector(j int) (*Vector, error) {
	if err := m.live(opColumnVector); err != nil {
		return nil, err
	}
	if j < 0 || j >= m.cols {
		return nil, indexErrorf(opColumnVector, j, ErrOutOfRange)
	}

	return newVectorView(m, m.col(j), m.rows, 1), nil
}

// RowVector returns row i as a Vector view with stride Rows().
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) RowVector(i int) (*Vector, error) {
	if err := m.live(opRowVector); err != nil {
		return nil, err
	}
	if i < 0 || i >= m.rows {
		return nil, indexErrorf(opRowVector, i, ErrOutOfRange)
	}
	if m.cols == 0 {
		return newVectorView(m, nil, 0, m.rows), nil
	}

	return newVectorView(m, m.data()[i:], m.cols, m.rows), nil
}
