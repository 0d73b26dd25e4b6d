// SPDX-License-Identifier: MIT

// Package kernel - numeric kernel dispatch for the column-major matrix layer.
//
// Purpose:
//   - Declare the five delegated BLAS-style routines (swap, scale, copy, gemv, gemm)
//     behind one interface so the matrix layer holds an explicit backend.
//   - Keep the calling convention of dense linear algebra: column-major storage,
//     explicit leading dimension, explicit increments, alpha/beta scaling.
//
// Conventions:
//   - Every matrix argument is column-major: element (i,j) lives at a[j*lda+i].
//   - Increments are strictly positive; the matrix layer never builds negative strides.
//   - Quick return: when m==0 or n==0 the output is left untouched (BLAS semantics).
//   - Parameter violations are programmer errors and panic with a "kernel: ..." message.
package kernel

import "gonum.org/v1/gonum/blas"

// Transpose flags reuse the gonum constants; only NoTrans and Trans are accepted.
const (
	NoTrans = blas.NoTrans
	Trans   = blas.Trans
)

// Kernels is the delegated kernel set. Implementations must be safe for
// concurrent use on disjoint outputs; they hold no per-call state.
type Kernels interface {
	// Name identifies the backend in the registry and in logs.
	Name() string

	// Dswap exchanges n elements of x and y pairwise.
	Dswap(n int, x []float64, incX int, y []float64, incY int)

	// Dscal computes x = alpha*x over n strided elements.
	Dscal(n int, alpha float64, x []float64, incX int)

	// Dcopy copies n strided elements of x into y.
	Dcopy(n int, x []float64, incX int, y []float64, incY int)

	// Dgemv computes y = alpha*op(A)*x + beta*y where A is m×n column-major.
	Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int,
		x []float64, incX int, beta float64, y []float64, incY int)

	// Dgemm computes C = alpha*op(A)*op(B) + beta*C where op(A) is m×k,
	// op(B) is k×n and C is m×n, all column-major.
	Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int,
		b []float64, ldb int, beta float64, c []float64, ldc int)
}

// Panic messages (no magic strings at call sites).
const (
	panicBadTranspose = "kernel: bad transpose flag"
	panicNegativeN    = "kernel: negative dimension"
	panicBadInc       = "kernel: increment must be positive"
	panicBadLdA       = "kernel: bad leading dimension of A"
	panicBadLdB       = "kernel: bad leading dimension of B"
	panicBadLdC       = "kernel: bad leading dimension of C"
	panicShortX       = "kernel: insufficient length of x"
	panicShortY       = "kernel: insufficient length of y"
	panicShortA       = "kernel: insufficient length of A"
	panicShortB       = "kernel: insufficient length of B"
	panicShortC       = "kernel: insufficient length of C"
)

// LeadingDim returns the leading dimension to pass for a column-major matrix
// with the given row count. BLAS requires ld >= 1 even for empty matrices.
func LeadingDim(rows int) int {
	if rows < 1 {
		return 1
	}

	return rows
}

func validTranspose(t blas.Transpose) bool {
	return t == blas.NoTrans || t == blas.Trans
}

// stridedLen is the minimum slice length that holds n elements at stride inc.
func stridedLen(n, inc int) int {
	if n == 0 {
		return 0
	}

	return 1 + (n-1)*inc
}
