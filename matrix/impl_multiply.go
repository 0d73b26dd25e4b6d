// SPDX-License-Identifier: MIT

// Package matrix - matrix-vector and matrix-matrix products.
//
// Purpose:
//   - y = A·x and y = Aᵗ·x through the backend Dgemv (alpha=1, beta=0).
//   - Masked variants over a column subset through the custom kernels,
//     without materializing A[:, indices].
//   - C = op(A)·op(B) through the backend Dgemm, validated or unchecked.
//
// Notes:
//   - BLAS quick-returns on an empty shape without writing y or C. An empty
//     INNER dimension still means a zero result, so those cases are zeroed
//     here instead of dispatched (gonum also rejects the slice lengths then).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/spx/matrix/kernel"
)

// MultVec computes y = A·x (x has Columns() elements, y has Rows()).
//
// Errors:
//   - ErrReleased, ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) MultVec(x, y *Vector) error {
	if err := m.live(opMultVec); err != nil {
		return err
	}
	if err := validateVec(opMultVec, "x", x, m.cols); err != nil {
		return err
	}
	if err := validateVec(opMultVec, "y", y, m.rows); err != nil {
		return err
	}
	if m.cols == 0 {
		zeroVec(y)
		return nil
	}
	m.k.Dgemv(kernel.NoTrans, m.rows, m.cols, 1, m.data(), m.ld(), x.data, x.inc, 0, y.data, y.inc)

	return nil
}

// MultTVec computes y = Aᵗ·x (x has Rows() elements, y has Columns()).
//
// Errors:
//   - ErrReleased, ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) MultTVec(x, y *Vector) error {
	if err := m.live(opMultTVec); err != nil {
		return err
	}
	if err := validateVec(opMultTVec, "x", x, m.rows); err != nil {
		return err
	}
	if err := validateVec(opMultTVec, "y", y, m.cols); err != nil {
		return err
	}
	if m.rows == 0 {
		zeroVec(y)
		return nil
	}
	m.k.Dgemv(kernel.Trans, m.rows, m.cols, 1, m.data(), m.ld(), x.data, x.inc, 0, y.data, y.inc)

	return nil
}

// MultVecIndexed computes y = A[:, indices]·x (x has len(indices) elements,
// y has Rows()). Index values are not validated.
//
// Errors:
//   - ErrReleased, ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) MultVecIndexed(indices []int, x, y *Vector) error {
	if err := m.live(opMultVecIdx); err != nil {
		return err
	}
	if err := validateVec(opMultVecIdx, "x", x, len(indices)); err != nil {
		return err
	}
	if err := validateVec(opMultVecIdx, "y", y, m.rows); err != nil {
		return err
	}
	kernel.MultSubmatVec(1, m.data(), m.rows, indices, x.data, x.inc, y.data, y.inc)

	return nil
}

// MultTVecIndexed computes y = A[:, indices]ᵗ·x (x has Rows() elements, y
// has len(indices)). Index values are not validated.
//
// Errors:
//   - ErrReleased, ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) MultTVecIndexed(indices []int, x, y *Vector) error {
	if err := m.live(opMultTVecIdx); err != nil {
		return err
	}
	if err := validateVec(opMultTVecIdx, "x", x, m.rows); err != nil {
		return err
	}
	if err := validateVec(opMultTVecIdx, "y", y, len(indices)); err != nil {
		return err
	}
	kernel.MultSubmatTVec(1, m.data(), m.rows, indices, x.data, x.inc, y.data, y.inc)

	return nil
}

// Multiply computes C = op(A)·op(B), where op is the identity or the
// transpose per flag, dispatched on C's backend.
// MAIN DESCRIPTION:
//   - Derive (mm, nn, kk) from the flags and declared shapes, check that
//     op(A) is mm×kk, op(B) is kk×nn and C is mm×nn, then call Dgemm.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(mm*nn*kk) in the backend; no allocation.
//
// Notes:
//   - C must not share memory with A or B.
func Multiply(a, b, c *Matrix, transA, transB bool) error {
	if err := validateLivePair(opMultiply, a, b); err != nil {
		return err
	}
	if err := c.live(opMultiply); err != nil {
		return err
	}
	mm, nn, kk := gemmDims(a, b, transA, transB)
	kb := b.rows
	if transB {
		kb = b.cols
	}
	if kk != kb {
		return fmt.Errorf("Matrix.%s: inner dimensions %d vs %d: %w", opMultiply, kk, kb, ErrDimensionMismatch)
	}
	if c.rows != mm || c.cols != nn {
		return fmt.Errorf("Matrix.%s: output is %dx%d, want %dx%d: %w", opMultiply, c.rows, c.cols, mm, nn, ErrDimensionMismatch)
	}
	multiply(a, b, c, transA, transB)

	return nil
}

// MultiplyUnchecked is the opt-in fast path of Multiply: it builds the same
// Dgemm parameters from the declared shapes and performs no conformance or
// liveness check. Mismatched operands fail inside the backend, typically as a
// panic on slice length or leading dimension.
func MultiplyUnchecked(a, b, c *Matrix, transA, transB bool) {
	multiply(a, b, c, transA, transB)
}

func multiply(a, b, c *Matrix, transA, transB bool) {
	mm, nn, kk := gemmDims(a, b, transA, transB)
	if kk == 0 {
		zeroSlice(c.data())
		return
	}
	tA, tB := kernel.NoTrans, kernel.NoTrans
	if transA {
		tA = kernel.Trans
	}
	if transB {
		tB = kernel.Trans
	}
	c.k.Dgemm(tA, tB, mm, nn, kk, 1, a.data(), a.ld(), b.data(), b.ld(), 0, c.data(), c.ld())
}

// gemmDims derives (m, n, k) of C = op(A)·op(B) from A's and B's shapes.
func gemmDims(a, b *Matrix, transA, transB bool) (mm, nn, kk int) {
	mm, kk = a.rows, a.cols
	if transA {
		mm, kk = a.cols, a.rows
	}
	nn = b.cols
	if transB {
		nn = b.rows
	}

	return mm, nn, kk
}

func zeroVec(v *Vector) {
	var i int
	for i = 0; i < v.n; i++ {
		v.data[i*v.inc] = 0
	}
}

func zeroSlice(x []float64) {
	for i := range x {
		x[i] = 0
	}
}
