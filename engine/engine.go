package engine

import "github.com/katalvlaran/lvlsparse/csc"

const (
	// TokenWords is the fixed size of the opaque session token.
	TokenWords = 64
	// ParamSlots is the length of both parameter arrays.
	ParamSlots = 64
	// MaxFct is the number of factorizations kept with identical sparsity
	// structure. Fixed: one factorization per session.
	MaxFct int32 = 1
	// InstanceID selects which of the MaxFct factorizations a phase call
	// addresses. Fixed: the first and only instance.
	InstanceID int32 = 1
)

// Token is the opaque engine handle: engine-owned scratch identity that
// must survive unchanged across phase calls. Callers zero-initialize it,
// pass it by pointer, and never copy or serialize it; only the engine
// writes to it. Its useful life ends with the ReleaseAll phase.
type Token [TokenWords]uint64

// Zero reports whether the token carries no engine state.
func (t *Token) Zero() bool {
	for _, w := range t {
		if w != 0 {
			return false
		}
	}

	return true
}

// PhaseCall carries one phase invocation. Slices and pointers are passed
// through to the engine unchanged in identity; the engine may rewrite the
// token, both parameter arrays, the solution block, and — for selected
// inversion — the matrix values.
type PhaseCall[T csc.Value] struct {
	Token  *Token
	MaxFct int32 // number of factorizations held (fixed MaxFct)
	Mnum   int32 // factorization addressed (fixed InstanceID)
	Mtype  MatrixType
	Phase  Phase

	// System: n×n column-compressed matrix, zero-based indices.
	N      int32
	Values []T
	ColPtr []int32
	RowIdx []int32

	// Perm is the optional user permutation (empty: engine chooses).
	Perm []int32

	// Right-hand sides and solution, column-major n×NRHS.
	NRHS int32
	RHS  []T
	Sol  []T

	Iparm  *[ParamSlots]int32
	Dparm  *[ParamSlots]float64
	MsgLvl MessageLevel
}

// Engine is the backend contract. Implementations are the authority on
// which phase transitions are legal from their internal state; they report
// violations through statuses, never panics. All calls are synchronous
// and run to completion or failure.
type Engine[T csc.Value] interface {
	// Init populates both parameter arrays with engine defaults consistent
	// with the matrix type and solver kind. The token must be fresh or
	// fully released.
	Init(tok *Token, mtype MatrixType, kind SolverKind, iparm *[ParamSlots]int32, dparm *[ParamSlots]float64) Status

	// Phase executes one protocol phase against the session state in call.
	Phase(call *PhaseCall[T]) Status

	// CheckMatrix validates the structural consistency of a column-
	// compressed matrix the way the solving phases will read it.
	CheckMatrix(mtype MatrixType, n int32, values []T, colPtr, rowIdx []int32) Status

	// CheckVector scans a dense n×nrhs block for non-finite entries.
	CheckVector(n, nrhs int32, b []T) Status

	// PrintStats writes matrix and right-hand-side statistics to the
	// engine's configured output.
	PrintStats(mtype MatrixType, n int32, values []T, colPtr, rowIdx []int32, nrhs int32, rhs []T) Status
}
