// Package matrix offers a dense, column-major float64 Matrix and a strided
// Vector for sparse-approximation and assignment solvers.
//
// The matrix package provides:
//
//   - Matrix over owned memory (NewMatrix), wrapped caller memory
//     (NewMatrixFrom) or zero-copy column-range views (ColumnsRef).
//   - Vector views of single columns (stride 1) and rows (stride Rows()).
//   - Products (MultVec, MultTVec, Multiply) delegated to a kernel backend,
//     plus masked products over a column subset that never materialize it.
//   - Gram (AᵗA) and Frame (AAᵗ) matrices, min/max scans, min-subtraction
//     passes and indicator masks.
//
// Element (i,j) lives at Data()[j*Rows()+i]. Every public operation checks
// shapes, ranges and buffer liveness before touching memory and reports
// violations as wrapped sentinels (see errors.go); MultiplyUnchecked is the
// single opt-out.
//
// Backends live in the kernel subpackage. A Matrix captures kernel.Default()
// at construction unless WithKernels pins another one; views inherit it.
//
// Runnable usage lives in example_test.go.
package matrix
