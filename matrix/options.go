// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Explicit dependencies: a Matrix holds its kernel backend and allocator
//     instead of reaching for linked globals at every call.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Views (ColumnsRef, NewColumnsView, ColumnVector, RowVector) never take
//     options; they inherit the source's backend.
//   - When no backend is given, the process default (kernel.Default) is
//     captured at construction time, so a later kernel.Use does not affect
//     existing matrices.
package matrix

import "github.com/katalvlaran/spx/matrix/kernel"

// ---------- Defaults (single source of truth) ----------

// DefaultHeapLimit is the element cap of the default allocator (0 = unlimited).
const DefaultHeapLimit = 0

// defaultAllocator backs every owned Matrix/Vector unless WithAllocator is used.
var defaultAllocator Allocator = HeapAllocator{Limit: DefaultHeapLimit}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilKernels   = "matrix: WithKernels: kernels must be non-nil"
	panicNilAllocator = "matrix: WithAllocator: allocator must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	k     kernel.Kernels // nil => kernel.Default() at gather time
	alloc Allocator      // defaultAllocator
}

// WithKernels pins the kernel backend used by the new matrix and its views.
//
// Errors:
//   - Panics when k is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithKernels(k kernel.Kernels) Option {
	if k == nil {
		panic(panicNilKernels)
	}

	return func(o *Options) { o.k = k }
}

// WithAllocator sets the allocator that provides (and later takes back) the
// owned buffer. The buffer remembers its allocator, so acquire/release pairs
// can never mismatch.
//
// Errors:
//   - Panics when a is nil.
func WithAllocator(a Allocator) Option {
	if a == nil {
		panic(panicNilAllocator)
	}

	return func(o *Options) { o.alloc = a }
}

// gatherOptions applies user setters over defaults (last-writer-wins).
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{alloc: defaultAllocator}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.k == nil {
		o.k = kernel.Default()
	}

	return o
}
