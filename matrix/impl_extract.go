// SPDX-License-Identifier: MIT

// Package matrix - extraction and copy operations.
//
// Purpose:
//   - Column copy (delegated Dcopy), indexed column/row gathers (custom
//     kernels), column accumulation into a vector, whole-matrix copy and
//     column assignment.
//
// Notes:
//   - Output sizes are validated; index VALUES passed to the gathers are not.
//     An index outside [0, Columns()) (or [0, Rows()) for rows) panics on
//     Go's bounds check instead of reading foreign memory.
package matrix

import "github.com/katalvlaran/spx/matrix/kernel"

// Column copies column index into out[:Rows()] via the backend copy kernel.
//
// Errors:
//   - ErrReleased, ErrOutOfRange, ErrInsufficientLength (len(out) < Rows()).
func (m *Matrix) Column(index int, out []float64) error {
	if err := m.live(opColumn); err != nil {
		return err
	}
	if err := validateIndex(opColumn, index, m.cols); err != nil {
		return err
	}
	if err := validateMinLen(opColumn, "out", out, m.rows); err != nil {
		return err
	}
	m.k.Dcopy(m.rows, m.col(index), 1, out, 1)

	return nil
}

// ExtractColumns gathers the columns named by indices into out, which must
// be Rows()×len(indices). Order is preserved, duplicates are allowed.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (out shape).
//
// Complexity:
//   - Time O(rows*k), no allocation.
func (m *Matrix) ExtractColumns(indices []int, out *Matrix) error {
	if err := validateLivePair(opExtractColumns, m, out); err != nil {
		return err
	}
	if out.rows != m.rows || out.cols != len(indices) {
		return matrixErrorf(opExtractColumns, ErrDimensionMismatch)
	}
	kernel.ColExtract(m.data(), m.rows, indices, out.data())

	return nil
}

// ExtractColumnsTo is ExtractColumns into a raw column-major buffer of at
// least Rows()*len(indices) elements.
//
// Errors:
//   - ErrReleased, ErrInsufficientLength.
func (m *Matrix) ExtractColumnsTo(indices []int, dst []float64) error {
	if err := m.live(opExtractColumns); err != nil {
		return err
	}
	if err := validateMinLen(opExtractColumns, "dst", dst, m.rows*len(indices)); err != nil {
		return err
	}
	kernel.ColExtract(m.data(), m.rows, indices, dst)

	return nil
}

// ExtractRows gathers the rows named by indices into dst, a
// len(indices)×Columns() column-major buffer: output row t is source row
// indices[t].
//
// Errors:
//   - ErrReleased, ErrInsufficientLength.
func (m *Matrix) ExtractRows(indices []int, dst []float64) error {
	if err := m.live(opExtractRows); err != nil {
		return err
	}
	if err := validateMinLen(opExtractRows, "dst", dst, len(indices)*m.cols); err != nil {
		return err
	}
	kernel.RowExtract(m.data(), m.rows, m.cols, indices, dst)

	return nil
}

// AddColumnToVec accumulates x += coeff * A[:, index] in place.
//
// Errors:
//   - ErrReleased, ErrOutOfRange, ErrInsufficientLength (len(x) < Rows()).
func (m *Matrix) AddColumnToVec(coeff float64, index int, x []float64) error {
	if err := m.live(opAddColumnToVec); err != nil {
		return err
	}
	if err := validateIndex(opAddColumnToVec, index, m.cols); err != nil {
		return err
	}
	if err := validateMinLen(opAddColumnToVec, "x", x, m.rows); err != nil {
		return err
	}
	kernel.SumVecVec(m.rows, coeff, m.col(index), 1, x, 1)

	return nil
}

// CopyMatrixTo copies every element into dst. A shape mismatch (or an
// unusable operand) is an ordinary outcome here, reported as false.
func (m *Matrix) CopyMatrixTo(dst *Matrix) bool {
	if validateLivePair(opCopyMatrixTo, m, dst) != nil {
		return false
	}
	if m.rows != dst.rows || m.cols != dst.cols {
		return false
	}
	kernel.CopyVecVec(m.rows*m.cols, m.data(), 1, dst.data(), 1)

	return true
}

// SetColumn overwrites column col with alpha*v.
//
// Errors:
//   - ErrReleased, ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch (v.Len() != Rows()).
func (m *Matrix) SetColumn(col int, v *Vector, alpha float64) error {
	if err := m.live(opSetColumn); err != nil {
		return err
	}
	if err := validateIndex(opSetColumn, col, m.cols); err != nil {
		return err
	}
	if err := validateVec(opSetColumn, "v", v, m.rows); err != nil {
		return err
	}
	dst := m.col(col)
	kernel.CopyVecVec(m.rows, v.data, v.inc, dst, 1)
	if alpha != 1 {
		m.k.Dscal(m.rows, alpha, dst, 1)
	}

	return nil
}
