package solver

import "errors"

var (
	// ErrInvalidConfig is returned by setters handed a code outside its
	// enumerated set, and by Solve on an unknown orientation.
	ErrInvalidConfig = errors.New("solver: invalid configuration value")
	// ErrIndexOutOfRange is returned by parameter accessors outside 1..64.
	ErrIndexOutOfRange = errors.New("solver: parameter index out of range")
	// ErrDimensionMismatch is returned by the contract checker when the
	// matrix, right-hand side and solution shapes disagree.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")
	// ErrTypeMismatch is returned when the value domain of the data does
	// not match the session's matrix-type code.
	ErrTypeMismatch = errors.New("solver: value domain does not match matrix type")
	// ErrSessionTerminated is returned for computational calls after a
	// fatal engine failure (out of memory, license) latched the session.
	ErrSessionTerminated = errors.New("solver: session terminated by a fatal engine failure")
)
