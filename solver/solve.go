package solver

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/csc"
	"github.com/katalvlaran/lvlsparse/engine"
)

// Orientation declares which system a solve targets.
type Orientation int

const (
	// Natural solves A·x = b as the caller wrote A (the default).
	Natural Orientation = iota
	// Transposed solves Aᵀ·x = b.
	Transposed
)

// String returns the diagnostic label.
func (o Orientation) String() string {
	switch o {
	case Natural:
		return "natural"
	case Transposed:
		return "transposed"
	}

	return "unknown orientation"
}

// Solve runs the configured phase against A and B and returns a fresh
// solution block, leaving B untouched. It initializes the session, so
// engine defaults are in effect; use Execute for hand-tuned parameters.
func (s *Session[T]) Solve(a *csc.Matrix[T], b *csc.Dense[T], orient Orientation) (*csc.Dense[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("solver: nil operand: %w", ErrInvalidConfig)
	}
	x := b.Clone()
	if err := s.SolveInto(x, a, b, orient); err != nil {
		return nil, err
	}

	return x, nil
}

// SolveInto is the in-place variant: initializes the session, applies the
// orientation policy, then dispatches the configured phase, with the
// solution written into X.
func (s *Session[T]) SolveInto(x *csc.Dense[T], a *csc.Matrix[T], b *csc.Dense[T], orient Orientation) error {
	if err := s.Init(); err != nil {
		return err
	}

	// The caller's matrix is column-compressed; the engine reads the triple
	// row-compressed and therefore sees the transposed system. Slot 12
	// must cancel that mismatch for Natural — forcing it is load-bearing,
	// not cosmetic. Applied after Init so engine defaults cannot undo it.
	switch orient {
	case Natural:
		s.iparm[engine.SlotTranspose-1] = 1
	case Transposed:
		s.iparm[engine.SlotTranspose-1] = 0
	default:
		return fmt.Errorf("solver: orientation %d: %w", int(orient), ErrInvalidConfig)
	}

	return s.Execute(x, a, b)
}

// Execute dispatches the currently configured phase with the session's
// parameter arrays, token, matrix and blocks passed to the engine
// unchanged in identity. The engine may rewrite the token, both parameter
// arrays, X and — for selected inversion — A's values. Contract checks run
// first; a nonzero status is decoded into the typed taxonomy.
//
// Execute does not re-initialize: it is the building block for
// analyze-once / solve-many phase sequences where tuned parameters must
// survive across calls.
func (s *Session[T]) Execute(x *csc.Dense[T], a *csc.Matrix[T], b *csc.Dense[T]) error {
	if s.terminal {
		return ErrSessionTerminated
	}
	if x == nil || a == nil || b == nil {
		return fmt.Errorf("solver: nil operand: %w", ErrInvalidConfig)
	}
	if err := s.checkDomain(); err != nil {
		return err
	}
	if err := checkDimensions(x, a, b); err != nil {
		return err
	}

	call := engine.PhaseCall[T]{
		Token:  &s.tok,
		MaxFct: engine.MaxFct,
		Mnum:   engine.InstanceID,
		Mtype:  s.mtype,
		Phase:  s.phase,
		N:      int32(a.Rows()),
		Values: a.Values(),
		ColPtr: a.ColPtr(),
		RowIdx: a.RowIdx(),
		NRHS:   int32(b.Cols()),
		RHS:    b.Data(),
		Sol:    x.Data(),
		Iparm:  &s.iparm,
		Dparm:  &s.dparm,
		MsgLvl: s.msglvl,
	}

	status := s.eng.Phase(&call)
	s.vlog().Debug().
		Stringer("phase", s.phase).
		Int("n", a.Rows()).
		Int("nrhs", b.Cols()).
		Int32("status", int32(status)).
		Msg("phase dispatched")
	if err := status.Err(); err != nil {
		s.note(status)

		return fmt.Errorf("solver: phase %d (%s): %w", int32(s.phase), s.phase, err)
	}

	return nil
}
