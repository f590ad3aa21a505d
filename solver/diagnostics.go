package solver

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/csc"
)

// CheckMatrix forwards A to the engine's structural diagnostic after the
// usual domain check. A failure means the solving phases would reject or
// misread the triple.
func (s *Session[T]) CheckMatrix(a *csc.Matrix[T]) error {
	if a == nil {
		return fmt.Errorf("solver: nil matrix: %w", ErrInvalidConfig)
	}
	if err := s.checkDomain(); err != nil {
		return err
	}

	status := s.eng.CheckMatrix(s.mtype, int32(a.Rows()), a.Values(), a.ColPtr(), a.RowIdx())
	if err := status.Err(); err != nil {
		return fmt.Errorf("solver: check matrix: %w", err)
	}

	return nil
}

// CheckVector forwards B to the engine's right-hand-side diagnostic
// (shape and finiteness).
func (s *Session[T]) CheckVector(b *csc.Dense[T]) error {
	if b == nil {
		return fmt.Errorf("solver: nil vector: %w", ErrInvalidConfig)
	}

	status := s.eng.CheckVector(int32(b.Rows()), int32(b.Cols()), b.Data())
	if err := status.Err(); err != nil {
		return fmt.Errorf("solver: check vector: %w", err)
	}

	return nil
}

// PrintStats asks the engine to print matrix and right-hand-side
// statistics. Dimension and domain checks run first, as for any dispatch.
func (s *Session[T]) PrintStats(a *csc.Matrix[T], b *csc.Dense[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("solver: nil operand: %w", ErrInvalidConfig)
	}
	if err := s.checkDomain(); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return fmt.Errorf("matrix rows %d vs rhs rows %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch)
	}

	status := s.eng.PrintStats(s.mtype, int32(a.Rows()), a.Values(), a.ColPtr(), a.RowIdx(),
		int32(b.Cols()), b.Data())
	if err := status.Err(); err != nil {
		return fmt.Errorf("solver: print stats: %w", err)
	}

	return nil
}
