// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spx/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquareOf covers square, non-square and wrong-size outputs.
func TestValidateSquareOf(t *testing.T) {
	t.Parallel()

	mk := func(r, c int) *matrix.Matrix {
		m, err := matrix.NewMatrix(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		out     *matrix.Matrix
		n       int
		wantErr error
	}{
		{"3x3 want 3", mk(3, 3), 3, nil},
		{"0x0 want 0", mk(0, 0), 0, nil},
		{"2x3", mk(2, 3), 2, matrix.ErrBadShape},
		{"2x2 want 3", mk(2, 2), 3, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ExportedValidateSquareOf("Gram", tc.out, tc.n)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateVec covers nil and length checks.
func TestValidateVec(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ExportedValidateVec("MultVec", "x", nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ExportedValidateVec("MultVec", "x", mustVec(t, 1), 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ExportedValidateVec("MultVec", "x", mustVec(t, 1, 2), 2))

	err := matrix.ExportedValidateVec("MultVec", "y", mustVec(t, 1), 3)
	require.EqualError(t, err, "Matrix.MultVec: y has length 1, want 3: matrix: dimension mismatch")
}

// TestValidateMinLen allows longer buffers and rejects shorter ones.
func TestValidateMinLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ExportedValidateMinLen("Column", "out", make([]float64, 5), 3))
	require.NoError(t, matrix.ExportedValidateMinLen("Column", "out", nil, 0))
	require.ErrorIs(t, matrix.ExportedValidateMinLen("Column", "out", make([]float64, 2), 3), matrix.ErrInsufficientLength)
}

// TestErrorPriority_ReleasedBeforeShape checks liveness is reported first.
func TestErrorPriority_ReleasedBeforeShape(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewMatrix(3, 2)
	require.NoError(t, err)
	out, err := matrix.NewMatrix(5, 5) // wrong shape as well
	require.NoError(t, err)
	a.Release()
	require.ErrorIs(t, a.Gram(out), matrix.ErrReleased)

	b, err := matrix.NewMatrix(3, 2)
	require.NoError(t, err)
	require.ErrorIs(t, b.SetColumn(7, nil, 1), matrix.ErrOutOfRange)
}

// TestErrorTags checks facades and accessors wrap errors with their own
// operation name.
func TestErrorTags(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewMatrix(2, 2)
	require.NoError(t, err)
	a.Release()

	_, err = matrix.Clone(a)
	require.EqualError(t, err, "Matrix.Clone: matrix: buffer released")

	var nilM *matrix.Matrix
	_, err = nilM.Offset(0, 0)
	require.EqualError(t, err, "Matrix.Offset: matrix: nil receiver")

	live, err := matrix.NewMatrix(2, 2)
	require.NoError(t, err)
	col, err := live.ColumnVector(0)
	require.NoError(t, err)
	live.Release()
	_, err = col.At(0)
	require.EqualError(t, err, "Vector.At: matrix: buffer released")
	err = matrix.ExportedValidateVec("MultVec", "x", col, 2)
	require.EqualError(t, err, "Matrix.MultVec: x: matrix: buffer released")
}
