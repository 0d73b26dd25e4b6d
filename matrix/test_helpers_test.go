// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the tests.
//   • Run backend-sensitive properties against every portable backend.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spx/matrix"
	"github.com/katalvlaran/spx/matrix/kernel"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// tol is the absolute tolerance for results that went through a backend.
const tol = 1e-10

// portableBackends are always registered (no cgo needed).
var portableBackends = []string{kernel.NameReference, kernel.NameGonum}

// forEachBackend runs fn as a subtest once per portable backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, k kernel.Kernels)) {
	t.Helper()
	for _, name := range portableBackends {
		k, err := kernel.Lookup(name)
		require.NoError(t, err)
		t.Run(name, func(t *testing.T) { fn(t, k) })
	}
}

// mustFromRows builds an owned column-major matrix from row-major literals.
func mustFromRows(t testing.TB, k kernel.Kernels, rows [][]float64) *matrix.Matrix {
	t.Helper()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := matrix.NewZeros(r, c, matrix.WithKernels(k))
	require.NoError(t, err)
	for i := range rows {
		for j := range rows[i] {
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}

	return m
}

// mustRand returns an r×c matrix filled with values in [-1, 1).
func mustRand(t testing.TB, k kernel.Kernels, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewMatrix(r, c, matrix.WithKernels(k))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return m
}

// mustVec returns an owned vector holding vals.
func mustVec(t testing.TB, vals ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(len(vals))
	require.NoError(t, err)
	for i, x := range vals {
		require.NoError(t, v.Set(i, x))
	}

	return v
}

// toRows renders m as row-major literals for readable assertions.
func toRows(t testing.TB, m *matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Columns())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// requireClose asserts element-wise |got-want| <= tol.
func requireClose(t testing.TB, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	require.Truef(t, floats.EqualApprox(want, got, tol), "want %v\n got %v", want, got)
}

// sample is the 3×2 fixture [[1,2],[3,4],[5,6]].
var sample = [][]float64{{1, 2}, {3, 4}, {5, 6}}
