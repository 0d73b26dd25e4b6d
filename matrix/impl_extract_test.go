// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spx/matrix"
	"github.com/katalvlaran/spx/matrix/kernel"
	"github.com/stretchr/testify/require"
)

func TestColumn_CopiesThroughBackend(t *testing.T) {
	t.Parallel()
	forEachBackend(t, func(t *testing.T, k kernel.Kernels) {
		m := mustFromRows(t, k, sample)
		out := make([]float64, 4)
		require.NoError(t, m.Column(1, out))
		require.Equal(t, []float64{2, 4, 6, 0}, out)

		require.ErrorIs(t, m.Column(2, out), matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Column(0, out[:2]), matrix.ErrInsufficientLength)
	})
}

func TestExtractColumns_OrderAndDuplicates(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, kernel.Reference{}, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	})
	out, err := matrix.NewMatrix(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.ExtractColumns([]int{3, 0, 3}, out))
	require.Equal(t, [][]float64{{4, 1, 4}, {8, 5, 8}}, toRows(t, out))

	// each output column equals the source column it names
	for k, idx := range []int{3, 0, 3} {
		for i := 0; i < 2; i++ {
			got, _ := out.At(i, k)
			want, _ := m.At(i, idx)
			require.Equal(t, want, got)
		}
	}

	wrong, err := matrix.NewMatrix(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.ExtractColumns([]int{3, 0, 3}, wrong), matrix.ErrDimensionMismatch)

	dst := make([]float64, 4)
	require.NoError(t, m.ExtractColumnsTo([]int{2, 1}, dst))
	require.Equal(t, []float64{3, 7, 2, 6}, dst)
	require.ErrorIs(t, m.ExtractColumnsTo([]int{2, 1, 0}, dst), matrix.ErrInsufficientLength)

	// index values are not validated beyond Go's bounds checks
	require.Panics(t, func() { _ = m.ExtractColumnsTo([]int{9}, dst) })
}

func TestExtractRows_Layout(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, kernel.Reference{}, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	dst := make([]float64, 6)
	require.NoError(t, m.ExtractRows([]int{2, 0}, dst))

	// dst is 2×3 column-major: row t of dst is source row indices[t]
	got, err := matrix.NewMatrixFrom(dst, 2, 3, false)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 8, 9}, {1, 2, 3}}, toRows(t, got))

	require.ErrorIs(t, m.ExtractRows([]int{0, 1, 2}, dst), matrix.ErrInsufficientLength)
}

func TestAddColumnToVec(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, kernel.Reference{}, sample)
	x := []float64{1, 1, 1}
	require.NoError(t, m.AddColumnToVec(-2, 1, x))
	require.Equal(t, []float64{-3, -7, -11}, x)

	require.ErrorIs(t, m.AddColumnToVec(1, 5, x), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddColumnToVec(1, 0, x[:1]), matrix.ErrInsufficientLength)
}

func TestCopyMatrixTo(t *testing.T) {
	t.Parallel()

	src := mustFromRows(t, kernel.Reference{}, sample)
	dst, err := matrix.NewMatrix(3, 2)
	require.NoError(t, err)
	require.True(t, src.CopyMatrixTo(dst))
	require.Equal(t, sample, toRows(t, dst))

	// copying into a column view writes through to its source
	wide, err := matrix.NewZeros(3, 4)
	require.NoError(t, err)
	view, err := wide.ColumnsRef(2, 4)
	require.NoError(t, err)
	require.True(t, src.CopyMatrixTo(view))
	require.Equal(t, [][]float64{{0, 0, 1, 2}, {0, 0, 3, 4}, {0, 0, 5, 6}}, toRows(t, wide))

	mismatch, err := matrix.NewMatrix(2, 3)
	require.NoError(t, err)
	require.False(t, src.CopyMatrixTo(mismatch))
	require.False(t, src.CopyMatrixTo(nil))
}

func TestSetColumn(t *testing.T) {
	t.Parallel()
	forEachBackend(t, func(t *testing.T, k kernel.Kernels) {
		m := mustFromRows(t, k, sample)

		require.NoError(t, m.SetColumn(0, mustVec(t, 1, 2, 3), 1))
		require.NoError(t, m.SetColumn(1, mustVec(t, 1, 2, 3), -0.5))
		require.Equal(t, [][]float64{{1, -0.5}, {2, -1}, {3, -1.5}}, toRows(t, m))

		// a strided source works too
		src, err := matrix.NewStridedVector([]float64{7, 0, 8, 0, 9}, 3, 2)
		require.NoError(t, err)
		require.NoError(t, m.SetColumn(1, src, 1))
		col, err := m.ColumnVector(1)
		require.NoError(t, err)
		require.Equal(t, []float64{7, 8, 9}, col.ToSlice())

		require.ErrorIs(t, m.SetColumn(2, src, 1), matrix.ErrOutOfRange)
		require.ErrorIs(t, m.SetColumn(0, mustVec(t, 1), 1), matrix.ErrDimensionMismatch)
	})
}
