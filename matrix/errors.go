// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on caller-triggered error conditions.
// Panics are reserved for programmer errors (option constructors, the unchecked
// multiply path and kernel-boundary violations).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grepping across logs.
// Operations wrap at the detection site with the "Matrix.<Op>: %w" shape so
// callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> released -> index/range -> dimension/length -> shape.

var (
	// ErrInvalidDimensions indicates negative rows or cols at construction.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrAllocation is returned when the allocator cannot satisfy a request.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrInvalidRange indicates a column range [start,end) outside the source.
	ErrInvalidRange = errors.New("matrix: invalid range")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes or vector lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInsufficientLength indicates a caller buffer or vector that is too short.
	ErrInsufficientLength = errors.New("matrix: insufficient length")

	// ErrBadShape indicates an output matrix without the shape a derived
	// computation requires (e.g. Gram/Frame need a specific square size).
	ErrBadShape = errors.New("matrix: invalid output shape")

	// ErrReleased indicates use of a matrix whose buffer (or whose source's
	// buffer) has been released.
	ErrReleased = errors.New("matrix: buffer released")

	// ErrNilMatrix indicates that a nil *Matrix or *Vector was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Operation tags for unified error wrapping (no magic strings).
const (
	opNew            = "New"
	opNewFrom        = "NewFrom"
	opColumnsRef     = "ColumnsRef"
	opAt             = "At"
	opSet            = "Set"
	opOffset         = "Offset"
	opData           = "Data"
	opClone          = "Clone"
	opCopyMatrixTo   = "CopyMatrixTo"
	opColumnVector   = "ColumnVector"
	opRowVector      = "RowVector"
	opColumn         = "Column"
	opExtractColumns = "ExtractColumns"
	opExtractRows    = "ExtractRows"
	opMultVec        = "MultVec"
	opMultTVec       = "MultTVec"
	opMultVecIdx     = "MultVecIndexed"
	opMultTVecIdx    = "MultTVecIndexed"
	opAddColumnToVec = "AddColumnToVec"
	opSetColumn      = "SetColumn"
	opColMin         = "ColMin"
	opColMax         = "ColMax"
	opRowMin         = "RowMin"
	opRowMax         = "RowMax"
	opAddToCol       = "AddToCol"
	opAddToRow       = "AddToRow"
	opSubColMins     = "SubtractColMins"
	opSubRowMins     = "SubtractRowMins"
	opFill           = "Fill"
	opSetDiag        = "SetDiag"
	opFindValue      = "FindValue"
	opGram           = "Gram"
	opFrame          = "Frame"
	opSwapColumns    = "SwapColumns"
	opSwapRows       = "SwapRows"
	opScaleColumn    = "ScaleColumn"
	opScaleRow       = "ScaleRow"
	opMultiply       = "Multiply"
	opFprint         = "Fprint"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", op, err)
}

// vectorErrorf is matrixErrorf for Vector receivers.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("Vector.%s: %w", op, err)
}

// indexErrorf wraps err with the operation tag and the offending index.
func indexErrorf(op string, idx int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", op, idx, err)
}
