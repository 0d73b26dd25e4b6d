// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operations minimal by delegating liveness/index/shape checks here.
//  - Return errors already tagged with the calling operation so call sites
//    can return them verbatim.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence (live → index → length → shape),
//    matching the ERROR PRIORITY documented in errors.go.

package matrix

import "fmt"

// validateIndex ensures 0 <= idx < n.
func validateIndex(op string, idx, n int) error {
	if idx < 0 || idx >= n {
		return indexErrorf(op, idx, ErrOutOfRange)
	}

	return nil
}

// validateVec ensures v is non-nil, live and has exactly n elements.
func validateVec(op, name string, v *Vector, n int) error {
	if v == nil {
		return fmt.Errorf("Matrix.%s: %s: %w", op, name, ErrNilMatrix)
	}
	if v.released() {
		return fmt.Errorf("Matrix.%s: %s: %w", op, name, ErrReleased)
	}
	if v.n != n {
		return fmt.Errorf("Matrix.%s: %s has length %d, want %d: %w", op, name, v.n, n, ErrDimensionMismatch)
	}

	return nil
}

// validateMinLen ensures a caller buffer can hold n elements.
func validateMinLen(op, name string, buf []float64, n int) error {
	if len(buf) < n {
		return fmt.Errorf("Matrix.%s: %s has length %d, need %d: %w", op, name, len(buf), n, ErrInsufficientLength)
	}

	return nil
}

// validateLivePair runs live on the receiver and on a second operand.
func validateLivePair(op string, a, b *Matrix) error {
	if err := a.live(op); err != nil {
		return err
	}

	return b.live(op)
}

// validateSameShape ensures a and b have identical dimensions.
func validateSameShape(op string, a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("Matrix.%s: %dx%d vs %dx%d: %w", op, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// validateSquareOf ensures out is n×n; used by Gram/Frame.
func validateSquareOf(op string, out *Matrix, n int) error {
	if out.rows != out.cols {
		return fmt.Errorf("Matrix.%s: output %dx%d is not square: %w", op, out.rows, out.cols, ErrBadShape)
	}
	if out.rows != n {
		return fmt.Errorf("Matrix.%s: output is %dx%d, want %dx%d: %w", op, out.rows, out.cols, n, n, ErrBadShape)
	}

	return nil
}
