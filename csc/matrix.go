package csc

// Matrix is a column-compressed sparse matrix over the value domain T.
// The zero Matrix is not usable; build one with NewMatrix or FromDense.
//
// The backing slices returned by ColPtr, RowIdx and Values are the live
// storage, not copies: the engine contract requires passing them through
// unchanged in identity, and some phases (selected inversion) write results
// back into Values.
type Matrix[T Value] struct {
	rows, cols int
	colPtr     []int32
	rowIdx     []int32
	values     []T
}

// NewMatrix builds a Matrix from a raw column-compressed triple after
// validating the structural invariants:
//
//   - rows, cols > 0
//   - len(colPtr) == cols+1, colPtr[0] == 0, monotonically non-decreasing
//   - len(rowIdx) == len(values) == colPtr[cols]
//   - every row index in [0, rows)
//
// The slices are adopted, not copied.
func NewMatrix[T Value](rows, cols int, colPtr, rowIdx []int32, values []T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(colPtr) != cols+1 || colPtr[0] != 0 {
		return nil, ErrBadColPtr
	}
	for j := 1; j < len(colPtr); j++ {
		if colPtr[j] < colPtr[j-1] {
			return nil, ErrBadColPtr
		}
	}

	nnz := int(colPtr[cols])
	if len(rowIdx) != nnz || len(values) != nnz {
		return nil, ErrBadValueCount
	}
	for _, r := range rowIdx {
		if r < 0 || int(r) >= rows {
			return nil, ErrBadRowIndex
		}
	}

	return &Matrix[T]{rows: rows, cols: cols, colPtr: colPtr, rowIdx: rowIdx, values: values}, nil
}

// FromDense compresses a row-major dense matrix, dropping exact zeros.
// Intended for tests and small systems; rows must be equal length.
func FromDense[T Value](dense [][]T) (*Matrix[T], error) {
	rows := len(dense)
	if rows == 0 || len(dense[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(dense[0])
	for _, row := range dense {
		if len(row) != cols {
			return nil, ErrBadShape
		}
	}

	var zero T
	colPtr := make([]int32, cols+1)
	rowIdx := make([]int32, 0, rows)
	values := make([]T, 0, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if dense[i][j] != zero {
				rowIdx = append(rowIdx, int32(i))
				values = append(values, dense[i][j])
			}
		}
		colPtr[j+1] = int32(len(rowIdx))
	}

	return NewMatrix[T](rows, cols, colPtr, rowIdx, values)
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// NNZ returns the number of stored nonzeros.
func (m *Matrix[T]) NNZ() int { return len(m.values) }

// ColPtr returns the live column-pointer array (len cols+1).
func (m *Matrix[T]) ColPtr() []int32 { return m.colPtr }

// RowIdx returns the live row-index array (len NNZ).
func (m *Matrix[T]) RowIdx() []int32 { return m.rowIdx }

// Values returns the live nonzero storage (len NNZ).
func (m *Matrix[T]) Values() []T { return m.values }

// At returns element (i, j), scanning column j's stored entries.
// Absent entries read as zero. O(nnz(column j)).
func (m *Matrix[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return zero, ErrOutOfRange
	}
	for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
		if int(m.rowIdx[k]) == i {
			return m.values[k], nil
		}
	}

	return zero, nil
}
