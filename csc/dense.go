package csc

// Dense is a column-major rows×cols block of scalars, the layout engines
// consume for right-hand sides and emit for solutions. Element (i, j) lives
// at data[j*rows+i].
type Dense[T Value] struct {
	rows, cols int
	data       []T
}

// NewDense allocates a zeroed rows×cols block.
func NewDense[T Value](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom adopts a column-major backing slice of exactly rows*cols
// scalars. The slice is not copied.
func NewDenseFrom[T Value](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrBadDataLength
	}

	return &Dense[T]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the row count.
func (d *Dense[T]) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense[T]) Cols() int { return d.cols }

// Data returns the live column-major backing slice. Engines write
// solutions through it in place.
func (d *Dense[T]) Data() []T { return d.data }

// At returns element (i, j).
func (d *Dense[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return zero, ErrOutOfRange
	}

	return d.data[j*d.rows+i], nil
}

// Set writes element (i, j).
func (d *Dense[T]) Set(i, j int, v T) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return ErrOutOfRange
	}
	d.data[j*d.rows+i] = v

	return nil
}

// Col returns a copy of column j.
func (d *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= d.cols {
		return nil, ErrOutOfRange
	}
	out := make([]T, d.rows)
	copy(out, d.data[j*d.rows:(j+1)*d.rows])

	return out, nil
}

// Clone returns a deep copy with fresh backing storage.
func (d *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(d.data))
	copy(data, d.data)

	return &Dense[T]{rows: d.rows, cols: d.cols, data: data}
}
