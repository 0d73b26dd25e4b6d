// Package kernel holds the numeric kernels behind package matrix.
//
// Two families live here:
//
//   - Delegated routines (Dswap, Dscal, Dcopy, Dgemv, Dgemm) behind the Kernels
//     interface. Backends: Reference (portable loops), "gonum" (gonum's pure-Go
//     BLAS), "blas64" (whatever blas64.Use installed) and, when built with
//     `-tags netlib` and cgo, "netlib" (system CBLAS).
//   - Custom strided kernels (ColExtract, RowExtract, MultSubmatVec,
//     MultSubmatTVec, SumVecVec, CopyVecVec, Dot) implemented in Go.
//
// The process default backend is chosen on first use from the SPX_KERNEL
// environment variable and can be replaced with Use or Select. Matrices
// capture the default at construction unless given one explicitly.
package kernel
