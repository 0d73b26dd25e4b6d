// SPDX-License-Identifier: MIT

// Package matrix - row/column scans and in-place fills.
//
// Purpose:
//   - Min/max scans of one column (stride 1) or one row (stride Rows()).
//   - Uniform shifts of a column/row and the min-subtraction passes used as
//     assignment-solver pre-processing.
//   - Fill, diagonal assignment and exact-value indicator masks.
//
// Determinism:
//   - Scans run in increasing index order with strict comparisons, so the
//     FIRST occurrence of an extreme wins ties. NaN never replaces a value
//     (comparisons with NaN are false); a leading NaN is returned as is.
package matrix

// ColMin returns the minimum of column col and its row index.
//
// Errors:
//   - ErrReleased, ErrOutOfRange (bad col, or an empty column).
func (m *Matrix) ColMin(col int) (float64, int, error) {
	if err := m.checkColScan(opColMin, col); err != nil {
		return 0, 0, err
	}
	v, idx := argExtreme(m.col(col), m.rows, 1, false)

	return v, idx, nil
}

// ColMax returns the maximum of column col and its row index.
//
// Errors:
//   - ErrReleased, ErrOutOfRange (bad col, or an empty column).
func (m *Matrix) ColMax(col int) (float64, int, error) {
	if err := m.checkColScan(opColMax, col); err != nil {
		return 0, 0, err
	}
	v, idx := argExtreme(m.col(col), m.rows, 1, true)

	return v, idx, nil
}

// RowMin returns the minimum of row row and its column index.
//
// Errors:
//   - ErrReleased, ErrOutOfRange (bad row, or an empty row).
func (m *Matrix) RowMin(row int) (float64, int, error) {
	if err := m.checkRowScan(opRowMin, row); err != nil {
		return 0, 0, err
	}
	v, idx := argExtreme(m.data()[row:], m.cols, m.rows, false)

	return v, idx, nil
}

// RowMax returns the maximum of row row and its column index.
//
// Errors:
//   - ErrReleased, ErrOutOfRange (bad row, or an empty row).
func (m *Matrix) RowMax(row int) (float64, int, error) {
	if err := m.checkRowScan(opRowMax, row); err != nil {
		return 0, 0, err
	}
	v, idx := argExtreme(m.data()[row:], m.cols, m.rows, true)

	return v, idx, nil
}

// AddToCol adds value to every element of column col.
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) AddToCol(col int, value float64) error {
	if err := m.live(opAddToCol); err != nil {
		return err
	}
	if err := validateIndex(opAddToCol, col, m.cols); err != nil {
		return err
	}
	addStrided(m.col(col), m.rows, 1, value)

	return nil
}

// AddToRow adds value to every element of row row.
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
func (m *Matrix) AddToRow(row int, value float64) error {
	if err := m.live(opAddToRow); err != nil {
		return err
	}
	if err := validateIndex(opAddToRow, row, m.rows); err != nil {
		return err
	}
	if m.cols > 0 {
		addStrided(m.data()[row:], m.cols, m.rows, value)
	}

	return nil
}

// SubtractColMins subtracts each column's minimum from that column, so every
// column's minimum becomes exactly 0 (for finite data).
// Complexity: O(rows*cols).
func (m *Matrix) SubtractColMins() error {
	if err := m.live(opSubColMins); err != nil {
		return err
	}
	if m.rows == 0 {
		return nil
	}
	var c int
	var minV float64
	var col []float64
	for c = 0; c < m.cols; c++ {
		col = m.col(c)
		minV, _ = argExtreme(col, m.rows, 1, false)
		addStrided(col, m.rows, 1, -minV)
	}

	return nil
}

// SubtractRowMins subtracts each row's minimum from that row, so every
// row's minimum becomes exactly 0 (for finite data).
// Complexity: O(rows*cols).
func (m *Matrix) SubtractRowMins() error {
	if err := m.live(opSubRowMins); err != nil {
		return err
	}
	if m.cols == 0 {
		return nil
	}
	data := m.data()
	var r int
	var minV float64
	for r = 0; r < m.rows; r++ {
		minV, _ = argExtreme(data[r:], m.cols, m.rows, false)
		addStrided(data[r:], m.cols, m.rows, -minV)
	}

	return nil
}

// Fill sets every element to value.
func (m *Matrix) Fill(value float64) error {
	if err := m.live(opFill); err != nil {
		return err
	}
	data := m.data()
	for i := range data {
		data[i] = value
	}

	return nil
}

// SetDiag sets (i,i) to value for i < min(Rows(), Columns()); other
// entries are untouched.
func (m *Matrix) SetDiag(value float64) error {
	if err := m.live(opSetDiag); err != nil {
		return err
	}
	data := m.data()
	n := min(m.rows, m.cols)
	var i int
	for i = 0; i < n; i++ {
		data[i*m.rows+i] = value
	}

	return nil
}

// SetDiagVec sets (i,i) to v[i] for i < min(Rows(), Columns()).
//
// Errors:
//   - ErrReleased (receiver or v), ErrNilMatrix, ErrInsufficientLength (v shorter than the diagonal).
func (m *Matrix) SetDiagVec(v *Vector) error {
	if err := m.live(opSetDiag); err != nil {
		return err
	}
	if v == nil {
		return matrixErrorf(opSetDiag, ErrNilMatrix)
	}
	if v.released() {
		return matrixErrorf(opSetDiag, ErrReleased)
	}
	n := min(m.rows, m.cols)
	if v.n < n {
		return matrixErrorf(opSetDiag, ErrInsufficientLength)
	}
	data := m.data()
	var i int
	for i = 0; i < n; i++ {
		data[i*m.rows+i] = v.data[i*v.inc]
	}

	return nil
}

// FindValue writes 1 into result where an element equals value exactly and
// 0 elsewhere. Equality is bitwise float equality (NaN never matches);
// values produced by arithmetic should be compared with a tolerance by the
// caller instead.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (result shape).
func (m *Matrix) FindValue(value float64, result *Matrix) error {
	if err := validateLivePair(opFindValue, m, result); err != nil {
		return err
	}
	if err := validateSameShape(opFindValue, m, result); err != nil {
		return err
	}
	src, dst := m.data(), result.data()
	for i, v := range src {
		if v == value {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}

	return nil
}

func (m *Matrix) checkColScan(op string, col int) error {
	if err := m.live(op); err != nil {
		return err
	}
	if err := validateIndex(op, col, m.cols); err != nil {
		return err
	}
	if m.rows == 0 {
		return indexErrorf(op, col, ErrOutOfRange)
	}

	return nil
}

func (m *Matrix) checkRowScan(op string, row int) error {
	if err := m.live(op); err != nil {
		return err
	}
	if err := validateIndex(op, row, m.rows); err != nil {
		return err
	}
	if m.cols == 0 {
		return indexErrorf(op, row, ErrOutOfRange)
	}

	return nil
}

// argExtreme scans n elements of x at stride inc (n >= 1) and returns the
// first minimum (or maximum) and its logical index.
func argExtreme(x []float64, n, inc int, wantMax bool) (float64, int) {
	best, bestIdx := x[0], 0
	var k, p int
	var cur float64
	for k, p = 1, inc; k < n; k, p = k+1, p+inc {
		cur = x[p]
		if wantMax {
			if cur > best {
				best, bestIdx = cur, k
			}
		} else if cur < best {
			best, bestIdx = cur, k
		}
	}

	return best, bestIdx
}

// addStrided adds value to n elements of x at stride inc.
func addStrided(x []float64, n, inc int, value float64) {
	var k, p int
	for k, p = 0, 0; k < n; k, p = k+1, p+inc {
		x[p] += value
	}
}
