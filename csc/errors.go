package csc

import "errors"

var (
	// ErrBadShape indicates non-positive row or column counts.
	ErrBadShape = errors.New("csc: rows and cols must be > 0")
	// ErrBadColPtr indicates a column-pointer array of the wrong length,
	// a nonzero first entry, or a decreasing run.
	ErrBadColPtr = errors.New("csc: invalid column pointer array")
	// ErrBadRowIndex indicates a row index outside [0, rows).
	ErrBadRowIndex = errors.New("csc: row index out of range")
	// ErrBadValueCount indicates rowIdx/values length disagreeing with colPtr.
	ErrBadValueCount = errors.New("csc: nonzero count mismatch")
	// ErrBadDataLength indicates a dense backing slice of the wrong length.
	ErrBadDataLength = errors.New("csc: data length does not match shape")
	// ErrOutOfRange indicates an element index outside the block's bounds.
	ErrOutOfRange = errors.New("csc: index out of range")
)
