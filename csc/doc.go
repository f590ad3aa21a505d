// Package csc provides the two value containers the solver contract is
// written against: a column-compressed sparse matrix and a dense
// column-major block used for right-hand sides and solutions.
//
// Both containers are generic over the value domain:
//
//	float64    — real systems
//	complex128 — complex systems
//
// # Column-compressed storage
//
// A Matrix stores its nonzeros as the classic triple:
//
//	colPtr — len cols+1, zero-based, monotonically non-decreasing;
//	         colPtr[j]..colPtr[j+1] delimits column j
//	rowIdx — one zero-based row index per nonzero
//	values — one scalar per nonzero
//
// Index arrays are fixed-width int32, matching the engine ABI. Constructors
// validate the structural invariants (pointer monotonicity, index bounds,
// matching array lengths) and fail fast with package sentinels; they never
// panic on user data.
//
// # Dense blocks
//
// Dense stores rows×cols scalars column-major, the layout solver engines
// consume for multiple right-hand sides. The backing slice is reachable via
// Data so a dispatcher can hand it to an engine for in-place writes.
//
// Structural validation here is purely shape-level. Numeric policy (NaN/Inf
// scanning, sorted row indices within a column) belongs to the engine's
// diagnostic entry points, not to storage.
package csc
