package csc

import (
	"math"
	"math/cmplx"
)

// Value is the set of scalar domains the solver contract supports.
type Value interface {
	float64 | complex128
}

// IsComplex reports whether T is the complex domain.
// The result depends only on the type parameter, never on data.
func IsComplex[T Value]() bool {
	var zero T
	_, ok := any(zero).(complex128)

	return ok
}

// Abs returns the magnitude of v as a float64 in either domain.
func Abs[T Value](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}

	return 0 // unreachable: Value admits exactly two domains
}

// IsFinite reports whether v is free of NaN and ±Inf components.
func IsFinite[T Value](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case complex128:
		return !cmplx.IsNaN(x) && !cmplx.IsInf(x)
	}

	return false // unreachable
}
