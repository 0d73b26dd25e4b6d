// SPDX-License-Identifier: MIT

// Package matrix - diagnostic dump.
//
// Purpose:
//   - Render a Matrix as a labelled block of row-major values for debugging.
//     The layout is for humans and carries no machine-readable contract.
package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Formatting tokens shared by Matrix and Vector dumps.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtCell     = "   %g"
	_fmtIntCell  = "   %d"
	_fmtHeader   = "\n%s = \n\n"
	_fmtEmpty    = "   Empty matrix: %d-by-%d\n\n"
)

// Fprint writes the matrix to w: an optional "name = " header, then one line
// per row. Empty shapes print "Empty matrix: R-by-C".
//
// Errors:
//   - ErrReleased, or the first write error from w.
func (m *Matrix) Fprint(w io.Writer, name string) error {
	return m.fprint(w, name, func(v float64) string { return fmt.Sprintf(_fmtCell, v) })
}

// FprintInt is Fprint with every value truncated toward zero, for matrices
// holding indices or 0/1 masks (see FindValue).
func (m *Matrix) FprintInt(w io.Writer, name string) error {
	return m.fprint(w, name, func(v float64) string { return fmt.Sprintf(_fmtIntCell, int64(v)) })
}

// String returns the unlabelled Fprint rendering.
func (m *Matrix) String() string {
	var b strings.Builder
	if err := m.Fprint(&b, ""); err != nil {
		return err.Error()
	}

	return b.String()
}

func (m *Matrix) fprint(w io.Writer, name string, cell func(float64) string) error {
	if err := m.live(opFprint); err != nil {
		return err
	}
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, _fmtHeader, name)
	}
	if m.rows == 0 || m.cols == 0 {
		fmt.Fprintf(&b, _fmtEmpty, m.rows, m.cols)
	} else {
		data := m.data()
		var i, j int
		for i = 0; i < m.rows; i++ {
			for j = 0; j < m.cols; j++ {
				b.WriteString(cell(data[j*m.rows+i]))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("Matrix.%s: %w", opFprint, err)
	}

	return nil
}
