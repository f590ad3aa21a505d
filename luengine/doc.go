// Package luengine is a pure-Go backend implementing the engine.Engine
// contract with dense LU factorization. It exists so the session and
// protocol layer in package solver can run and be tested end to end
// without cgo or a native solver installation; it is a reference backend,
// not a production sparse factorization.
//
// # Engine convention
//
// The backend reads the index triple as row-compressed: pointer group i
// delimits row i, and each index names a column. A caller handing over a
// column-compressed matrix is therefore presenting this engine with the
// transpose of their system — exactly the layout mismatch the session
// layer's orientation policy compensates for. Parameter slot 12 selects
// the system:
//
//	iparm slot 12 = 0 — solve the engine-view system M·x = b
//	iparm slot 12 = 1 — solve the transposed system Mᵀ·x = b
//
// # Phase protocol
//
// Analysis (11) records the structure; factorization (12, 13, 22, 23)
// expands the matrix to dense storage and computes a partially-pivoted LU;
// solve phases (13, 23, 33) run substitution plus iterative refinement up
// to the slot-8 step budget, recording performed steps in slot 7; selected
// inversion (−22) writes inverse entries onto the sparsity pattern in
// place; 0 drops factors; −1 drops everything tied to the token.
//
// Scratch state lives in an internal registry keyed by a handle the engine
// writes into token word 0. Phases that need state the token does not
// carry return StatusInconsistentInput, never panic. An exact zero pivot
// column returns StatusNumerical.
package luengine
