package engine

import "errors"

// Sentinel taxonomy for engine statuses. Status.Err wraps these with the
// numeric status; callers match with errors.Is.
var (
	// ErrInconsistentInput — input inconsistent with the current engine state
	// or with itself (status −1).
	ErrInconsistentInput = errors.New("engine: input inconsistent")
	// ErrOutOfMemory — not enough memory to complete the phase (status −2).
	// Terminal for the session.
	ErrOutOfMemory = errors.New("engine: not enough memory")
	// ErrReordering — reordering problem during analysis (status −3).
	ErrReordering = errors.New("engine: reordering problem")
	// ErrNumerical — zero pivot, numerical factorization or iterative
	// refinement problem (status −4).
	ErrNumerical = errors.New("engine: zero pivot, numerical factorization or iterative refinement problem")
	// ErrInternal — unclassified internal engine error (status −5).
	ErrInternal = errors.New("engine: unclassified internal error")
	// ErrPreordering — preordering failed, e.g. unsupported matrix shape
	// for the chosen preorder (status −6).
	ErrPreordering = errors.New("engine: preordering failed")
	// ErrDiagonalMatrix — diagonal matrix problem (status −7).
	ErrDiagonalMatrix = errors.New("engine: diagonal matrix problem")
	// ErrIntegerOverflow — 32-bit integer overflow inside the engine
	// (status −8).
	ErrIntegerOverflow = errors.New("engine: 32-bit integer overflow")
	// ErrLicense — no license file, expired license, or wrong
	// username/hostname (statuses −10, −11, −12). Terminal for the session.
	ErrLicense = errors.New("engine: license problem")
	// ErrIterative — iterative solver failure: maximum iterations reached,
	// insufficient convergence, or Krylov-subspace breakdown
	// (statuses −100..−103).
	ErrIterative = errors.New("engine: iterative solver failed")
	// ErrUnknown — a status code outside the documented taxonomy.
	ErrUnknown = errors.New("engine: unknown status code")
)
