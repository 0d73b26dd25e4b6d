// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for internal options and panic messages.
//
// Purpose:
//   - Expose an immutable snapshot of gatherOptions to matrix_test ONLY.
//   - Export panic messages so tests avoid "magic strings".
//
// Build Policy:
//   - A _test.go file in package matrix: compiled only with the package
//     tests, invisible in production builds.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicNilKernels_TestOnly   = panicNilKernels
	PanicNilAllocator_TestOnly = panicNilAllocator
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Kernels   string // backend name
	Allocator Allocator
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Kernels: o.k.Name(), Allocator: o.alloc}
}

var (
	// ExportedValidateSquareOf exposes validateSquareOf for white-box tests.
	ExportedValidateSquareOf = validateSquareOf
	// ExportedValidateVec exposes validateVec for white-box tests.
	ExportedValidateVec = validateVec
	// ExportedValidateMinLen exposes validateMinLen for white-box tests.
	ExportedValidateMinLen = validateMinLen
)
