// Package solver provides the Session: the stateful control layer driving
// a sparse direct-solver engine through its multi-phase protocol —
// analysis, factorization, solve, iterative refinement, selected inversion
// and memory release.
//
// A Session owns exactly one opaque engine token plus the two 64-slot
// parameter arrays, and exposes:
//
//	• validated configuration: matrix type, solver kind, phase, message
//	  level, and 1-based indexed access to iparm/dparm
//	• Init — populate engine defaults for the current codes
//	• Solve / SolveInto — high-level solving with an orientation flag
//	• Execute — low-level dispatch of the currently configured phase,
//	  for analyze-once / solve-many protocols
//	• CheckMatrix / CheckVector / PrintStats — engine diagnostics
//	• Release / ReleaseFactors — explicit memory lifecycle
//
// # Orientation
//
// Matrices are handed over column-compressed while the engine convention
// reads the triple row-compressed, so the engine sees the transpose of the
// caller's system. Solve compensates through parameter slot 12: requesting
// Natural forces the slot to the transposed-engine-system value (1),
// cancelling the layout mismatch; requesting Transposed forces it to 0.
// This is load-bearing — without it every solution would silently belong
// to the transposed system.
//
// # Errors
//
//	ErrInvalidConfig     — a code outside its enumerated set
//	ErrIndexOutOfRange   — parameter slot outside 1..64
//	ErrDimensionMismatch — shapes disagreeing before dispatch
//	ErrTypeMismatch      — value domain vs. matrix-type conflict
//	ErrSessionTerminated — use after a fatal engine failure
//	engine.Err*          — decoded engine statuses, matched via errors.Is
//
// Engine failures abort the current call only; the session stays usable
// for a different phase — except after out-of-memory or license statuses,
// which latch the session terminally (Release still works).
//
// # Ownership
//
// A Session is not safe for concurrent use and its token must never be
// copied. One concurrent solve = one Session. Dropping a Session without
// Release leaks engine-held scratch memory.
package solver
