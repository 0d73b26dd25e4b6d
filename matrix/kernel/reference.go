// SPDX-License-Identifier: MIT

package kernel

import "gonum.org/v1/gonum/blas"

// NameReference is the registry key of the portable backend.
const NameReference = "reference"

// Reference is the portable backend: plain column-major loops, no assembly,
// no parallelism. It is the oracle the optimized backends are tested against.
type Reference struct{}

var _ Kernels = Reference{}

// Name implements Kernels.
func (Reference) Name() string { return NameReference }

// Dswap implements Kernels.
func (Reference) Dswap(n int, x []float64, incX int, y []float64, incY int) {
	checkVectorPair(n, x, incX, y, incY)
	var i, ix, iy int
	for i = 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		ix += incX
		iy += incY
	}
}

// Dscal implements Kernels.
func (Reference) Dscal(n int, alpha float64, x []float64, incX int) {
	if n < 0 {
		panic(panicNegativeN)
	}
	if incX < 1 {
		panic(panicBadInc)
	}
	if len(x) < stridedLen(n, incX) {
		panic(panicShortX)
	}
	var i, ix int
	for i = 0; i < n; i++ {
		x[ix] *= alpha
		ix += incX
	}
}

// Dcopy implements Kernels.
func (Reference) Dcopy(n int, x []float64, incX int, y []float64, incY int) {
	checkVectorPair(n, x, incX, y, incY)
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

// Dgemv implements Kernels.
//
// Stage 1: validate flags, dimensions and increments.
// Stage 2: quick return on empty shape, then y = beta*y.
// Stage 3: NoTrans accumulates columns (axpy form); Trans takes column dot products.
func (Reference) Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int,
	x []float64, incX int, beta float64, y []float64, incY int) {
	if !validTranspose(tA) {
		panic(panicBadTranspose)
	}
	if m < 0 || n < 0 {
		panic(panicNegativeN)
	}
	if lda < LeadingDim(m) {
		panic(panicBadLdA)
	}
	if incX < 1 || incY < 1 {
		panic(panicBadInc)
	}
	if m == 0 || n == 0 {
		return
	}

	lenX, lenY := n, m
	if tA == blas.Trans {
		lenX, lenY = m, n
	}
	if len(a) < lda*(n-1)+m {
		panic(panicShortA)
	}
	if len(x) < stridedLen(lenX, incX) {
		panic(panicShortX)
	}
	if len(y) < stridedLen(lenY, incY) {
		panic(panicShortY)
	}

	var i, j, ix, iy int
	if beta != 1 {
		for i, iy = 0, 0; i < lenY; i, iy = i+1, iy+incY {
			if beta == 0 {
				y[iy] = 0
			} else {
				y[iy] *= beta
			}
		}
	}
	if alpha == 0 {
		return
	}

	var col []float64
	var tmp float64
	if tA == blas.NoTrans {
		for j, ix = 0, 0; j < n; j, ix = j+1, ix+incX {
			tmp = alpha * x[ix]
			if tmp == 0 {
				continue
			}
			col = a[j*lda : j*lda+m]
			for i, iy = 0, 0; i < m; i, iy = i+1, iy+incY {
				y[iy] += tmp * col[i]
			}
		}
		return
	}

	for j, iy = 0, 0; j < n; j, iy = j+1, iy+incY {
		col = a[j*lda : j*lda+m]
		tmp = 0
		for i, ix = 0, 0; i < m; i, ix = i+1, ix+incX {
			tmp += col[i] * x[ix]
		}
		y[iy] += alpha * tmp
	}
}

// Dgemm implements Kernels.
//
// Stage 1: validate flags and leading dimensions against op() shapes.
// Stage 2: quick return on empty output, then C = beta*C.
// Stage 3: accumulate alpha*op(A)*op(B) column by column of C.
func (Reference) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int,
	b []float64, ldb int, beta float64, c []float64, ldc int) {
	if !validTranspose(tA) || !validTranspose(tB) {
		panic(panicBadTranspose)
	}
	if m < 0 || n < 0 || k < 0 {
		panic(panicNegativeN)
	}
	aTrans, bTrans := tA == blas.Trans, tB == blas.Trans
	// Stored shapes: A is (m×k) or (k×m); B is (k×n) or (n×k).
	aRows, aCols := m, k
	if aTrans {
		aRows, aCols = k, m
	}
	bRows, bCols := k, n
	if bTrans {
		bRows, bCols = n, k
	}
	if lda < LeadingDim(aRows) {
		panic(panicBadLdA)
	}
	if ldb < LeadingDim(bRows) {
		panic(panicBadLdB)
	}
	if ldc < LeadingDim(m) {
		panic(panicBadLdC)
	}
	if m == 0 || n == 0 {
		return
	}
	if aCols > 0 && len(a) < lda*(aCols-1)+aRows {
		panic(panicShortA)
	}
	if bCols > 0 && len(b) < ldb*(bCols-1)+bRows {
		panic(panicShortB)
	}
	if len(c) < ldc*(n-1)+m {
		panic(panicShortC)
	}

	var i, j, l int
	var cj []float64
	for j = 0; j < n; j++ {
		cj = c[j*ldc : j*ldc+m]
		switch beta {
		case 1:
		case 0:
			for i = range cj {
				cj[i] = 0
			}
		default:
			for i = range cj {
				cj[i] *= beta
			}
		}
	}
	if alpha == 0 || k == 0 {
		return
	}

	var bv, acc float64
	for j = 0; j < n; j++ {
		cj = c[j*ldc : j*ldc+m]
		if !aTrans {
			// axpy form: C[:,j] += (alpha*op(B)[l,j]) * A[:,l]
			for l = 0; l < k; l++ {
				if bTrans {
					bv = b[l*ldb+j]
				} else {
					bv = b[j*ldb+l]
				}
				bv *= alpha
				if bv == 0 {
					continue
				}
				for i = 0; i < m; i++ {
					cj[i] += bv * a[l*lda+i]
				}
			}
			continue
		}
		// dot form: C[i,j] += alpha * A[:,i]·op(B)[:,j]
		for i = 0; i < m; i++ {
			acc = 0
			for l = 0; l < k; l++ {
				if bTrans {
					bv = b[l*ldb+j]
				} else {
					bv = b[j*ldb+l]
				}
				acc += a[i*lda+l] * bv
			}
			cj[i] += alpha * acc
		}
	}
}

func checkVectorPair(n int, x []float64, incX int, y []float64, incY int) {
	if n < 0 {
		panic(panicNegativeN)
	}
	if incX < 1 || incY < 1 {
		panic(panicBadInc)
	}
	if len(x) < stridedLen(n, incX) {
		panic(panicShortX)
	}
	if len(y) < stridedLen(n, incY) {
		panic(panicShortY)
	}
}
