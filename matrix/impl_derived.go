// SPDX-License-Identifier: MIT

// Package matrix - derived matrices and strided in-place updates.
//
// Purpose:
//   - Gram (AᵗA) and Frame (AAᵗ) through one backend Dgemm each, passing A
//     as both operands with the appropriate transpose flags.
//   - Column/row swaps (Dswap) and scalings (Dscal) with stride 1 for
//     columns and stride Rows() for rows.
package matrix

import "github.com/katalvlaran/spx/matrix/kernel"

// Gram computes out = Aᵗ·A, a Columns()×Columns() symmetric matrix.
// MAIN DESCRIPTION:
//   - Entry (i,j) is the inner product of columns i and j.
//
// Implementation:
//   - Stage 1: validate both operands live and out square of side Columns().
//   - Stage 2: Dgemm(T, N, n, n, m, 1, A, lda, A, lda, 0, out, n) with m=Rows(), n=Columns().
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrBadShape.
//
// Complexity:
//   - Time O(m*n²) in the backend.
//
// Notes:
//   - out must not share memory with A.
func (m *Matrix) Gram(out *Matrix) error {
	if err := validateLivePair(opGram, m, out); err != nil {
		return err
	}
	if err := validateSquareOf(opGram, out, m.cols); err != nil {
		return err
	}
	if m.rows == 0 {
		zeroSlice(out.data())
		return nil
	}
	a := m.data()
	m.k.Dgemm(kernel.Trans, kernel.NoTrans, m.cols, m.cols, m.rows,
		1, a, m.ld(), a, m.ld(), 0, out.data(), out.ld())

	return nil
}

// Frame computes out = A·Aᵗ, a Rows()×Rows() symmetric matrix.
//
// Implementation:
//   - Stage 1: validate both operands live and out square of side Rows().
//   - Stage 2: Dgemm(N, T, m, m, n, 1, A, lda, A, lda, 0, out, m).
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrBadShape.
//
// Complexity:
//   - Time O(m²*n) in the backend.
func (m *Matrix) Frame(out *Matrix) error {
	if err := validateLivePair(opFrame, m, out); err != nil {
		return err
	}
	if err := validateSquareOf(opFrame, out, m.rows); err != nil {
		return err
	}
	if m.cols == 0 {
		zeroSlice(out.data())
		return nil
	}
	a := m.data()
	m.k.Dgemm(kernel.NoTrans, kernel.Trans, m.rows, m.rows, m.cols,
		1, a, m.ld(), a, m.ld(), 0, out.data(), out.ld())

	return nil
}

// SwapColumns exchanges columns i and j in place. Applying it twice
// restores the matrix.
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) SwapColumns(i, j int) error {
	if err := m.live(opSwapColumns); err != nil {
		return err
	}
	if err := validateIndex(opSwapColumns, i, m.cols); err != nil {
		return err
	}
	if err := validateIndex(opSwapColumns, j, m.cols); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	m.k.Dswap(m.rows, m.col(i), 1, m.col(j), 1)

	return nil
}

// SwapRows exchanges rows i and j in place (stride Rows()).
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) SwapRows(i, j int) error {
	if err := m.live(opSwapRows); err != nil {
		return err
	}
	if err := validateIndex(opSwapRows, i, m.rows); err != nil {
		return err
	}
	if err := validateIndex(opSwapRows, j, m.rows); err != nil {
		return err
	}
	if i == j || m.cols == 0 {
		return nil
	}
	data := m.data()
	m.k.Dswap(m.cols, data[i:], m.rows, data[j:], m.rows)

	return nil
}

// ScaleColumn multiplies column i by value in place.
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) ScaleColumn(i int, value float64) error {
	if err := m.live(opScaleColumn); err != nil {
		return err
	}
	if err := validateIndex(opScaleColumn, i, m.cols); err != nil {
		return err
	}
	m.k.Dscal(m.rows, value, m.col(i), 1)

	return nil
}

// ScaleRow multiplies row i by value in place (stride Rows()).
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) ScaleRow(i int, value float64) error {
	if err := m.live(opScaleRow); err != nil {
		return err
	}
	if err := validateIndex(opScaleRow, i, m.rows); err != nil {
		return err
	}
	if m.cols == 0 {
		return nil
	}
	m.k.Dscal(m.cols, value, m.data()[i:], m.rows)

	return nil
}
