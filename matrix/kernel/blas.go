// SPDX-License-Identifier: MIT

package kernel

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Registry keys of the gonum-backed backends.
const (
	// NameGonum is the pure-Go gonum implementation (assembly-accelerated on amd64/arm64).
	NameGonum = "gonum"
	// NameBLAS64 delegates to whatever blas64.Use installed process-wide.
	NameBLAS64 = "blas64"
)

// BLAS adapts a row-major gonum blas.Float64 implementation to the
// column-major Kernels convention.
//
// A column-major m×n matrix with leading dimension ld occupies exactly the
// same memory as the row-major n×m matrix with the same ld, so:
//   - gemv flips the transpose flag and swaps m/n;
//   - gemm computes Cᵗ = op(B)ᵗ·op(A)ᵗ, i.e. swaps the operands, their flags and m/n.
//
// Level-1 routines are layout-free and forwarded as-is.
type BLAS struct {
	name string
	impl func() blas.Float64
}

var _ Kernels = (*BLAS)(nil)

// NewBLAS wraps a fixed gonum implementation under the given registry name.
func NewBLAS(name string, impl blas.Float64) *BLAS {
	return &BLAS{name: name, impl: func() blas.Float64 { return impl }}
}

// newGlobalBLAS resolves blas64.Implementation() on every call so a later
// blas64.Use (e.g. the netlib registration) is honoured.
func newGlobalBLAS() *BLAS {
	return &BLAS{name: NameBLAS64, impl: blas64.Implementation}
}

// Name implements Kernels.
func (b *BLAS) Name() string { return b.name }

// Dswap implements Kernels.
func (b *BLAS) Dswap(n int, x []float64, incX int, y []float64, incY int) {
	b.impl().Dswap(n, x, incX, y, incY)
}

// Dscal implements Kernels.
func (b *BLAS) Dscal(n int, alpha float64, x []float64, incX int) {
	b.impl().Dscal(n, alpha, x, incX)
}

// Dcopy implements Kernels.
func (b *BLAS) Dcopy(n int, x []float64, incX int, y []float64, incY int) {
	b.impl().Dcopy(n, x, incX, y, incY)
}

// Dgemv implements Kernels.
func (b *BLAS) Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int,
	x []float64, incX int, beta float64, y []float64, incY int) {
	if !validTranspose(tA) {
		panic(panicBadTranspose)
	}
	b.impl().Dgemv(flip(tA), n, m, alpha, a, lda, x, incX, beta, y, incY)
}

// Dgemm implements Kernels.
func (b *BLAS) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int,
	bm []float64, ldb int, beta float64, c []float64, ldc int) {
	if !validTranspose(tA) || !validTranspose(tB) {
		panic(panicBadTranspose)
	}
	b.impl().Dgemm(tB, tA, n, m, k, alpha, bm, ldb, a, lda, beta, c, ldc)
}

func flip(t blas.Transpose) blas.Transpose {
	if t == blas.NoTrans {
		return blas.Trans
	}

	return blas.NoTrans
}
