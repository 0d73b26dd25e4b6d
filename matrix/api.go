// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, allocating entry points on top of the in-place operations.
//   - Avoid any logic duplication: each facade allocates the output and
//     delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - Outputs inherit the source's backend; extra options (e.g. an allocator)
//     are applied after it.
//
// AI-Hints:
//   - In hot loops prefer the in-place forms (Gram(out), Multiply(a,b,c,...))
//     with preallocated outputs; facades allocate on every call.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns an owned rows×cols matrix with every element 0, regardless
// of the allocator's reuse policy.
// Complexity: O(rc).
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	m, err := NewMatrix(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	zeroSlice(m.data())

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	m, err := NewZeros(n, n, opts...)
	if err != nil {
		return nil, err
	}
	_ = m.SetDiag(1) // live by construction

	return m, nil
}

// Clone returns an owned deep copy of m on the same backend.
// Complexity: O(rc).
func Clone(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := m.live(opClone); err != nil {
		return nil, err
	}
	out, err := NewMatrix(m.rows, m.cols, inherit(m, opts)...)
	if err != nil {
		return nil, err
	}
	m.CopyMatrixTo(out)

	return out, nil
}

// ---------- Derived matrices ----------

// NewGram allocates and returns AᵗA (Columns()×Columns()).
// Complexity: O(m*n^2).
func NewGram(a *Matrix, opts ...Option) (*Matrix, error) {
	if err := a.live(opGram); err != nil {
		return nil, err
	}
	out, err := NewMatrix(a.cols, a.cols, inherit(a, opts)...)
	if err != nil {
		return nil, err
	}
	if err = a.Gram(out); err != nil {
		out.Release()
		return nil, err
	}

	return out, nil
}

// NewFrame allocates and returns AAᵗ (Rows()×Rows()).
// Complexity: O(m^2*n).
func NewFrame(a *Matrix, opts ...Option) (*Matrix, error) {
	if err := a.live(opFrame); err != nil {
		return nil, err
	}
	out, err := NewMatrix(a.rows, a.rows, inherit(a, opts)...)
	if err != nil {
		return nil, err
	}
	if err = a.Frame(out); err != nil {
		out.Release()
		return nil, err
	}

	return out, nil
}

// Product allocates C and computes C = op(A)·op(B) via Multiply.
// Complexity: O(m*n*k).
//
// AI-Hints: C runs on A's backend.
func Product(a, b *Matrix, transA, transB bool, opts ...Option) (*Matrix, error) {
	if err := validateLivePair(opMultiply, a, b); err != nil {
		return nil, err
	}
	mm, nn, _ := gemmDims(a, b, transA, transB)
	c, err := NewMatrix(mm, nn, inherit(a, opts)...)
	if err != nil {
		return nil, err
	}
	if err = Multiply(a, b, c, transA, transB); err != nil {
		c.Release()
		return nil, err
	}

	return c, nil
}

// inherit prepends src's backend so outputs dispatch like their source.
func inherit(src *Matrix, opts []Option) []Option {
	return append([]Option{WithKernels(src.k)}, opts...)
}
