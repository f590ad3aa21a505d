// Package lvlsparse is a session, configuration and protocol layer for
// driving a multi-phase sparse direct solver — the PARDISO family of
// engines and anything speaking the same phase protocol.
//
// 🚀 What is lvlsparse?
//
//	A library that owns everything *around* the numerical engine:
//		• Session handles: an opaque engine token with explicit lifecycle
//		• Parameter store: validated matrix-type / solver-kind / phase codes
//		  plus the two 64-slot tuning arrays (iparm, dparm)
//		• Phase dispatch: analysis, factorization, solve, refinement,
//		  selected inversion and memory release as one call contract
//		• Error decoding: signed engine statuses mapped to a typed taxonomy
//		• Contract checking: dimension and value-domain validation before
//		  anything reaches the engine
//
// The engine itself is a collaborator behind the engine.Engine interface.
// Package luengine ships a pure-Go LU backend implementing that interface,
// so the whole protocol layer runs and tests without cgo or a native
// solver installation.
//
// Under the hood, everything is organized under four subpackages:
//
//	csc/      — column-compressed sparse matrices & dense column blocks
//	engine/   — the fixed engine ABI: token, codes, statuses, interface
//	luengine/ — pure-Go stand-in backend (dense LU with partial pivoting)
//	solver/   — Session: parameter store, dispatcher, diagnostics
//
// Quick example, solving a real nonsymmetric system:
//
//	ps := solver.New[float64]()
//	defer ps.Release()
//
//	A, _ := csc.FromDense([][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}})
//	b, _ := csc.NewDenseFrom(3, 1, []float64{2, 4, 6})
//
//	x, err := ps.Solve(A, b, solver.Natural)
//	// x.Col(0) == [2, 2, 2]
//
// One Session per concurrent solve; Sessions are not safe for concurrent
// use and must be released to reclaim engine-held scratch memory.
package lvlsparse
