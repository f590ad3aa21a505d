package engine

// Well-known parameter slots, 1-based per engine-manual numbering.
// Array index = slot − 1. Slots not listed here are engine-specific
// tuning knobs the session layer passes through untouched.
const (
	// SlotThreads is the parallelism hint read by the engine's internal
	// thread pool.
	SlotThreads = 3
	// SlotRefinementDone is written by the engine: iterative refinement
	// steps actually performed by the last solve.
	SlotRefinementDone = 7
	// SlotRefinementMax caps iterative refinement steps per solve.
	SlotRefinementMax = 8
	// SlotTranspose selects the system: 0 solves the engine-view matrix,
	// 1 solves its transpose. The session layer's orientation policy owns
	// this slot.
	SlotTranspose = 12
	// SlotFactorNNZ is written by the engine: nonzeros in the computed
	// factors.
	SlotFactorNNZ = 18
)
