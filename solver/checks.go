package solver

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/csc"
)

// checkDimensions enforces the shape contract before any dispatch: X and B
// identical in shape, A square, and A's row count equal to B's.
func checkDimensions[T csc.Value](x *csc.Dense[T], a *csc.Matrix[T], b *csc.Dense[T]) error {
	if x.Rows() != b.Rows() || x.Cols() != b.Cols() {
		return fmt.Errorf("solution %dx%d vs rhs %dx%d: %w",
			x.Rows(), x.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	if a.Rows() != a.Cols() {
		return fmt.Errorf("matrix %dx%d is not square: %w", a.Rows(), a.Cols(), ErrDimensionMismatch)
	}
	if a.Rows() != b.Rows() {
		return fmt.Errorf("matrix rows %d vs rhs rows %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch)
	}

	return nil
}

// checkDomain enforces value-domain/matrix-type consistency: complex data
// requires a complex matrix-type code, real data a real one.
func (s *Session[T]) checkDomain() error {
	if csc.IsComplex[T]() != s.mtype.IsComplex() {
		domain := "real"
		if csc.IsComplex[T]() {
			domain = "complex"
		}

		return fmt.Errorf("%s data with matrix type %d (%s): %w",
			domain, int32(s.mtype), s.mtype, ErrTypeMismatch)
	}

	return nil
}
