// Package spx is a dense linear-algebra primitive layer for sparse
// approximation: column-major matrices and strided vectors with zero-copy
// views, BLAS-delegated products and derived-matrix algorithms.
//
// What is inside?
//
//	matrix/        Matrix, Vector, allocators, views, products, Gram/Frame,
//	               row/column scans and diagnostic dumps
//	matrix/kernel/ Kernels interface, Reference loops, gonum/blas64/netlib
//	               backends, custom strided kernels, backend registry
//	cmd/spxbench/  CLI that runs a demo scenario and times the kernels
//
// Quick example:
//
//	a, _ := matrix.NewMatrixFrom([]float64{1, 3, 5, 2, 4, 6}, 3, 2, false)
//	g, _ := matrix.NewGram(a) // [[35 44] [44 56]]
//
// The default backend is gonum's pure-Go BLAS. Set SPX_KERNEL=reference
// (or netlib, when built with -tags netlib and cgo) to change it.
//
//	go get github.com/katalvlaran/spx
package spx
