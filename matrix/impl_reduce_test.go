// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spx/matrix"
	"github.com/katalvlaran/spx/matrix/kernel"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestColRowExtremes_Sample(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, kernel.Reference{}, sample)

	v, idx, err := m.ColMin(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, 0, idx)

	v, idx, err = m.ColMax(1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	require.Equal(t, 2, idx)

	v, idx, err = m.RowMin(2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
	require.Equal(t, 0, idx)

	v, idx, err = m.RowMax(1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	require.Equal(t, 1, idx)

	_, _, err = m.ColMin(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, _, err = m.RowMax(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestExtremes_FirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, kernel.Reference{}, [][]float64{
		{2, 0, 2},
		{0, 7, 7},
		{0, 7, 2},
	})
	_, idx, err := m.ColMin(0)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	_, idx, err = m.ColMax(1)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	_, idx, err = m.RowMax(1)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	_, idx, err = m.RowMin(0)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestExtremes_MatchFloats(t *testing.T) {
	t.Parallel()

	m := mustRand(t, kernel.Reference{}, 7, 5, 77)
	for j := 0; j < 5; j++ {
		col, err := m.ColumnVector(j)
		require.NoError(t, err)
		vals := col.ToSlice()

		v, idx, err := m.ColMin(j)
		require.NoError(t, err)
		require.Equal(t, floats.MinIdx(vals), idx)
		require.Equal(t, floats.Min(vals), v)

		v, idx, err = m.ColMax(j)
		require.NoError(t, err)
		require.Equal(t, floats.MaxIdx(vals), idx)
		require.Equal(t, floats.Max(vals), v)
	}
}

func TestExtremes_EmptyLine(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(0, 3)
	require.NoError(t, err)
	_, _, err = m.ColMin(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	w, err := matrix.NewMatrix(2, 0)
	require.NoError(t, err)
	_, _, err = w.RowMax(1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAddToColRow(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, kernel.Reference{}, sample)
	require.NoError(t, m.AddToCol(1, 10))
	require.NoError(t, m.AddToRow(0, -1))
	require.Equal(t, [][]float64{{0, 11}, {3, 14}, {5, 16}}, toRows(t, m))

	require.ErrorIs(t, m.AddToCol(2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddToRow(-1, 1), matrix.ErrOutOfRange)
}

func TestSubtractMins(t *testing.T) {
	t.Parallel()

	rowsCase := mustFromRows(t, kernel.Reference{}, sample)
	require.NoError(t, rowsCase.SubtractRowMins())
	require.Equal(t, [][]float64{{0, 1}, {0, 1}, {0, 1}}, toRows(t, rowsCase))

	colsCase := mustFromRows(t, kernel.Reference{}, sample)
	require.NoError(t, colsCase.SubtractColMins())
	require.Equal(t, [][]float64{{0, 0}, {2, 2}, {4, 4}}, toRows(t, colsCase))

	// every element drops by exactly its line's original minimum
	m := mustRand(t, kernel.Reference{}, 6, 4, 3)
	before := append([]float64(nil), m.Data()...)
	colMins := make([]float64, 4)
	for j := range colMins {
		v, _, err := m.ColMin(j)
		require.NoError(t, err)
		colMins[j] = v
	}
	require.NoError(t, m.SubtractColMins())
	for j := 0; j < 4; j++ {
		for i := 0; i < 6; i++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, before[j*6+i]-colMins[j], got)
		}
		v, _, err := m.ColMin(j)
		require.NoError(t, err)
		require.Zero(t, v)
	}

	m = mustRand(t, kernel.Reference{}, 6, 4, 4)
	before = append([]float64(nil), m.Data()...)
	rowMins := make([]float64, 6)
	for i := range rowMins {
		v, _, err := m.RowMin(i)
		require.NoError(t, err)
		rowMins[i] = v
	}
	require.NoError(t, m.SubtractRowMins())
	for i := 0; i < 6; i++ {
		for j := 0; j < 4; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, before[j*6+i]-rowMins[i], got)
		}
		v, _, err := m.RowMin(i)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

func TestFillAndDiag(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(3, 4)
	require.NoError(t, err)
	require.NoError(t, m.Fill(2))
	require.NoError(t, m.SetDiag(-1))
	require.Equal(t, [][]float64{
		{-1, 2, 2, 2},
		{2, -1, 2, 2},
		{2, 2, -1, 2},
	}, toRows(t, m))

	require.NoError(t, m.SetDiagVec(mustVec(t, 7, 8, 9, 10)))
	for i := 0; i < 3; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		require.Equal(t, float64(7+i), v)
	}
	require.ErrorIs(t, m.SetDiagVec(mustVec(t, 1, 2)), matrix.ErrInsufficientLength)
	require.ErrorIs(t, m.SetDiagVec(nil), matrix.ErrNilMatrix)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, toRows(t, id))
}

func TestFindValue(t *testing.T) {
	t.Parallel()

	tenth, fifth := 0.1, 0.2
	m := mustFromRows(t, kernel.Reference{}, [][]float64{
		{0, 1, 0},
		{math.NaN(), 0, tenth + fifth},
	})
	mask, err := matrix.NewMatrix(2, 3)
	require.NoError(t, err)
	require.NoError(t, mask.Fill(5))

	require.NoError(t, m.FindValue(0, mask))
	require.Equal(t, [][]float64{{1, 0, 1}, {0, 1, 0}}, toRows(t, mask))

	// exact comparison: 0.1+0.2 != 0.3 and NaN never matches
	require.NoError(t, m.FindValue(0.3, mask))
	require.Equal(t, make([]float64, 6), mask.Data())
	require.NoError(t, m.FindValue(math.NaN(), mask))
	require.Equal(t, make([]float64, 6), mask.Data())

	wrong, err := matrix.NewMatrix(3, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.FindValue(0, wrong), matrix.ErrDimensionMismatch)
}
