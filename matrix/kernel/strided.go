// SPDX-License-Identifier: MIT

package kernel

// Custom strided kernels that no BLAS level offers: indexed gathers, masked
// (selected-columns) matrix-vector products and plain accumulation.
//
// These run directly on the column-major buffer and do not validate index
// values: an index outside the source triggers Go's bounds check. Callers in
// package matrix validate output sizes before dispatching here.

// ColExtract gathers columns of the m-row column-major a named by indices
// into dst, an m×len(indices) column-major buffer. Duplicates are allowed.
// Complexity: O(m*k).
func ColExtract(a []float64, m int, indices []int, dst []float64) {
	var t, src int
	for t = range indices {
		src = indices[t] * m
		copy(dst[t*m:(t+1)*m], a[src:src+m])
	}
}

// RowExtract gathers rows of the m×n column-major a named by indices into
// dst, a k×n column-major buffer (k = len(indices)).
// Complexity: O(k*n).
func RowExtract(a []float64, m, n int, indices []int, dst []float64) {
	k := len(indices)
	var j, t, base int
	for j = 0; j < n; j++ {
		base = j * m
		for t = 0; t < k; t++ {
			dst[j*k+t] = a[base+indices[t]]
		}
	}
}

// MultSubmatVec computes y = alpha * A[:, indices] * x without materializing
// the sub-matrix. x has len(indices) elements at stride incX, y has m
// elements at stride incY; y is overwritten.
// Complexity: O(m*k).
func MultSubmatVec(alpha float64, a []float64, m int, indices []int,
	x []float64, incX int, y []float64, incY int) {
	var i, iy, t, ix, base int
	for i, iy = 0, 0; i < m; i, iy = i+1, iy+incY {
		y[iy] = 0
	}
	var coeff float64
	for t, ix = 0, 0; t < len(indices); t, ix = t+1, ix+incX {
		coeff = alpha * x[ix]
		if coeff == 0 {
			continue
		}
		base = indices[t] * m
		for i, iy = 0, 0; i < m; i, iy = i+1, iy+incY {
			y[iy] += coeff * a[base+i]
		}
	}
}

// MultSubmatTVec computes y = alpha * A[:, indices]ᵗ * x. x has m elements
// at stride incX; y has len(indices) elements at stride incY and is overwritten.
// Complexity: O(m*k).
func MultSubmatTVec(alpha float64, a []float64, m int, indices []int,
	x []float64, incX int, y []float64, incY int) {
	var t, iy, base int
	for t, iy = 0, 0; t < len(indices); t, iy = t+1, iy+incY {
		base = indices[t] * m
		y[iy] = alpha * Dot(m, a[base:base+m], 1, x, incX)
	}
}

// SumVecVec accumulates y += alpha*x over n strided elements.
func SumVecVec(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	if alpha == 0 {
		return
	}
	var i, ix, iy int
	for i = 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += incX
		iy += incY
	}
}

// CopyVecVec copies n strided elements of x into y.
func CopyVecVec(n int, x []float64, incX int, y []float64, incY int) {
	if incX == 1 && incY == 1 {
		copy(y[:n], x[:n])
		return
	}
	var i, ix, iy int
	for i = 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}

// Dot returns the inner product of n strided elements of x and y.
func Dot(n int, x []float64, incX int, y []float64, incY int) float64 {
	var acc float64
	var i, ix, iy int
	for i = 0; i < n; i++ {
		acc += x[ix] * y[iy]
		ix += incX
		iy += incY
	}

	return acc
}
