package solver

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/engine"
)

// SetMatrixType declares the structural/numeric class of upcoming
// matrices. Only the enumerated engine codes are accepted.
func (s *Session[T]) SetMatrixType(m engine.MatrixType) error {
	if !m.Valid() {
		return fmt.Errorf("matrix type %d: %w", int32(m), ErrInvalidConfig)
	}
	s.mtype = m

	return nil
}

// MatrixType returns the current matrix-type code.
func (s *Session[T]) MatrixType() engine.MatrixType { return s.mtype }

// SetSolverKind selects direct or iterative solution strategy.
func (s *Session[T]) SetSolverKind(k engine.SolverKind) error {
	if !k.Valid() {
		return fmt.Errorf("solver kind %d: %w", int32(k), ErrInvalidConfig)
	}
	s.kind = k

	return nil
}

// SolverKind returns the current solver-kind code.
func (s *Session[T]) SolverKind() engine.SolverKind { return s.kind }

// SetPhase selects the protocol phase the next Execute dispatches.
func (s *Session[T]) SetPhase(p engine.Phase) error {
	if !p.Valid() {
		return fmt.Errorf("phase %d: %w", int32(p), ErrInvalidConfig)
	}
	s.phase = p

	return nil
}

// Phase returns the currently configured phase code.
func (s *Session[T]) Phase() engine.Phase { return s.phase }

// SetMessageLevel toggles engine statistics output and the session's
// verbose tracing.
func (s *Session[T]) SetMessageLevel(m engine.MessageLevel) error {
	if !m.Valid() {
		return fmt.Errorf("message level %d: %w", int32(m), ErrInvalidConfig)
	}
	s.msglvl = m

	return nil
}

// MessageLevel returns the current message level.
func (s *Session[T]) MessageLevel() engine.MessageLevel { return s.msglvl }

// Iparm reads integer parameter slot i (1-based, 1..64).
func (s *Session[T]) Iparm(i int) (int32, error) {
	if i < 1 || i > engine.ParamSlots {
		return 0, fmt.Errorf("iparm %d: %w", i, ErrIndexOutOfRange)
	}

	return s.iparm[i-1], nil
}

// SetIparm writes integer parameter slot i (1-based, 1..64). No semantic
// validation: slot meaning is the engine's business.
func (s *Session[T]) SetIparm(i int, v int32) error {
	if i < 1 || i > engine.ParamSlots {
		return fmt.Errorf("iparm %d: %w", i, ErrIndexOutOfRange)
	}
	s.iparm[i-1] = v

	return nil
}

// Dparm reads floating-point parameter slot i (1-based, 1..64).
func (s *Session[T]) Dparm(i int) (float64, error) {
	if i < 1 || i > engine.ParamSlots {
		return 0, fmt.Errorf("dparm %d: %w", i, ErrIndexOutOfRange)
	}

	return s.dparm[i-1], nil
}

// SetDparm writes floating-point parameter slot i (1-based, 1..64).
func (s *Session[T]) SetDparm(i int, v float64) error {
	if i < 1 || i > engine.ParamSlots {
		return fmt.Errorf("dparm %d: %w", i, ErrIndexOutOfRange)
	}
	s.dparm[i-1] = v

	return nil
}
