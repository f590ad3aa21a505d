package luengine

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/katalvlaran/lvlsparse/csc"
	"github.com/katalvlaran/lvlsparse/engine"
)

// refineTol stops iterative refinement once the residual inf-norm falls
// below this fraction of (1 + inf-norm of the right-hand side).
const refineTol = 1e-14

// Option configures an Engine.
type Option func(*config)

type config struct {
	out io.Writer
}

// WithOutput redirects statistics and verbose-mode output (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// Engine is the pure-Go LU backend. One Engine may serve several tokens;
// its internal registry is mutex-guarded, but the per-token contract is
// still single-caller-at-a-time, matching the session layer's ownership
// rules.
type Engine[T csc.Value] struct {
	mu     sync.Mutex
	nextID uint64
	states map[uint64]*state[T]
	out    io.Writer
}

// state is the engine-held scratch associated with one token.
type state[T csc.Value] struct {
	n        int
	nnz      int
	analyzed bool
	factored bool
	a        []T // dense row-major engine-view copy, kept for refinement
	lu       []T // packed pivoted factors of a
	piv      []int32
}

// New constructs a backend for the value domain T.
func New[T csc.Value](opts ...Option) *Engine[T] {
	cfg := config{out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[T]{states: make(map[uint64]*state[T]), out: cfg.out}
}

// Init writes the backend's parameter defaults for the given matrix type
// and solver kind. The token is not inspected beyond nil-ness: Init only
// populates the arrays and may be repeated on a live session.
func (e *Engine[T]) Init(tok *engine.Token, mtype engine.MatrixType, kind engine.SolverKind,
	iparm *[engine.ParamSlots]int32, dparm *[engine.ParamSlots]float64) engine.Status {
	if tok == nil || iparm == nil || dparm == nil {
		return engine.StatusInconsistentInput
	}
	if !mtype.Valid() || !kind.Valid() {
		return engine.StatusInconsistentInput
	}
	if mtype.IsComplex() != csc.IsComplex[T]() {
		return engine.StatusInconsistentInput
	}

	*iparm = [engine.ParamSlots]int32{}
	*dparm = [engine.ParamSlots]float64{}
	iparm[0] = 1                              // defaults are populated, not engine-chosen on the fly
	iparm[1] = 2                              // nested-dissection style reordering (nominal)
	iparm[engine.SlotThreads-1] = 1           // sessions overwrite with their parallelism hint
	iparm[engine.SlotRefinementMax-1] = 1     // one refinement sweep by default
	iparm[engine.SlotFactorNNZ-1] = -1        // ask for factor-nnz reporting
	switch mtype {
	case engine.RealNonsymmetric, engine.ComplexNonsymmetric,
		engine.RealStructSymmetric, engine.ComplexStructSymmetric:
		iparm[9] = 13 // pivot perturbation exponent for nonsymmetric classes
	default:
		iparm[9] = 8
	}

	return engine.StatusOK
}

// Phase executes one protocol phase. See the package doc for the protocol
// and the engine-view layout convention.
func (e *Engine[T]) Phase(call *engine.PhaseCall[T]) engine.Status {
	if call == nil || call.Token == nil || call.Iparm == nil || call.Dparm == nil {
		return engine.StatusInconsistentInput
	}
	if !call.Phase.Valid() || !call.Mtype.Valid() || !call.MsgLvl.Valid() {
		return engine.StatusInconsistentInput
	}
	if call.Mtype.IsComplex() != csc.IsComplex[T]() {
		return engine.StatusInconsistentInput
	}
	if call.MaxFct != engine.MaxFct || call.Mnum != engine.InstanceID {
		// Single factorization, single instance: anything else is outside
		// this backend's contract.
		return engine.StatusInconsistentInput
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch call.Phase {
	case engine.ReleaseAll:
		return e.releaseAll(call.Token)
	case engine.ReleaseFactors:
		return e.releaseFactors(call.Token)
	}

	// Every remaining phase reads the matrix triple.
	if st := checkTriple(call.N, call.Values, call.ColPtr, call.RowIdx); st != engine.StatusOK {
		return st
	}
	if call.MsgLvl == engine.Verbose {
		fmt.Fprintf(e.out, "luengine: phase %d (%s), n=%d, nnz=%d\n",
			int32(call.Phase), call.Phase, call.N, len(call.Values))
	}

	switch call.Phase {
	case engine.Analysis:
		e.analyze(call)

		return engine.StatusOK
	case engine.AnalysisFactorize:
		e.analyze(call)

		return e.factorize(call)
	case engine.AnalysisFactorizeSolve:
		e.analyze(call)
		if st := e.factorize(call); st != engine.StatusOK {
			return st
		}

		return e.solve(call)
	case engine.Factorize:
		if st := e.requireAnalyzed(call); st != engine.StatusOK {
			return st
		}

		return e.factorize(call)
	case engine.FactorizeSolve:
		if st := e.requireAnalyzed(call); st != engine.StatusOK {
			return st
		}
		if st := e.factorize(call); st != engine.StatusOK {
			return st
		}

		return e.solve(call)
	case engine.SolveRefine:
		if st := e.requireFactored(call); st != engine.StatusOK {
			return st
		}

		return e.solve(call)
	case engine.SelectedInversion:
		if st := e.requireFactored(call); st != engine.StatusOK {
			return st
		}

		return e.selectedInversion(call)
	}

	return engine.StatusInternal // unreachable: Phase.Valid covered all codes
}

// handle returns the state the token points at, if any.
func (e *Engine[T]) handle(tok *engine.Token) (*state[T], bool) {
	if tok[0] == 0 {
		return nil, false
	}
	st, ok := e.states[tok[0]]

	return st, ok
}

// analyze (re)binds the token to a fresh analysis of the presented
// structure, dropping any previous factors.
func (e *Engine[T]) analyze(call *engine.PhaseCall[T]) {
	st, ok := e.handle(call.Token)
	if !ok {
		e.nextID++
		st = &state[T]{}
		e.states[e.nextID] = st
		call.Token[0] = e.nextID
	}
	st.n = int(call.N)
	st.nnz = len(call.Values)
	st.analyzed = true
	st.factored = false
	st.a, st.lu, st.piv = nil, nil, nil
}

// requireAnalyzed gates phases that build on a prior analysis.
func (e *Engine[T]) requireAnalyzed(call *engine.PhaseCall[T]) engine.Status {
	st, ok := e.handle(call.Token)
	if !ok || !st.analyzed || st.n != int(call.N) {
		return engine.StatusInconsistentInput
	}

	return engine.StatusOK
}

// requireFactored gates phases that consume existing factors.
func (e *Engine[T]) requireFactored(call *engine.PhaseCall[T]) engine.Status {
	st, ok := e.handle(call.Token)
	if !ok || !st.factored || st.n != int(call.N) {
		return engine.StatusInconsistentInput
	}

	return engine.StatusOK
}

// factorize expands the triple to dense storage and computes pivoted LU.
func (e *Engine[T]) factorize(call *engine.PhaseCall[T]) engine.Status {
	st, _ := e.handle(call.Token)
	n := st.n

	st.a = expandRowMajor(n, call.Values, call.ColPtr, call.RowIdx)
	st.lu = make([]T, len(st.a))
	copy(st.lu, st.a)

	piv, status := factorLU(st.lu, n)
	if status != engine.StatusOK {
		st.lu, st.piv = nil, nil

		return status
	}
	st.piv = piv
	st.factored = true

	var zero T
	var factorNNZ int32
	for _, v := range st.lu {
		if v != zero {
			factorNNZ++
		}
	}
	call.Iparm[engine.SlotFactorNNZ-1] = factorNNZ

	return engine.StatusOK
}

// solve copies each right-hand side into the solution block, substitutes
// through the factors, then refines up to the slot-8 budget, recording the
// largest per-column step count in slot 7.
func (e *Engine[T]) solve(call *engine.PhaseCall[T]) engine.Status {
	st, _ := e.handle(call.Token)
	n := st.n
	nrhs := int(call.NRHS)
	if nrhs <= 0 || len(call.RHS) < n*nrhs || len(call.Sol) < n*nrhs {
		return engine.StatusInconsistentInput
	}

	transposed := call.Iparm[engine.SlotTranspose-1] != 0
	maxRefine := int(call.Iparm[engine.SlotRefinementMax-1])

	substitute := luSolve[T]
	if transposed {
		substitute = luSolveTransposed[T]
	}

	var performed int32
	for col := 0; col < nrhs; col++ {
		b := call.RHS[col*n : (col+1)*n]
		x := call.Sol[col*n : (col+1)*n]
		copy(x, b)
		substitute(st.lu, st.piv, n, x)

		var steps int32
		for int(steps) < maxRefine {
			r := residual(st.a, n, x, b, transposed)
			if infNorm(r) <= refineTol*(1+infNorm(b)) {
				break
			}
			substitute(st.lu, st.piv, n, r)
			for i := 0; i < n; i++ {
				x[i] += r[i]
			}
			steps++
		}
		if steps > performed {
			performed = steps
		}
	}
	call.Iparm[engine.SlotRefinementDone-1] = performed

	return engine.StatusOK
}

// selectedInversion overwrites the stored nonzeros with the matching
// entries of the inverse. With M the engine-view matrix, the value written
// at stored position (group g, index c) is M⁻¹[g,c] — which a caller
// reading the triple column-compressed sees as their own inverse entry at
// (c, g). The transpose slot plays no role here.
func (e *Engine[T]) selectedInversion(call *engine.PhaseCall[T]) engine.Status {
	st, _ := e.handle(call.Token)
	n := st.n

	column := make([]T, n)
	var zero, one T
	one = zero + 1
	for c := 0; c < n; c++ {
		for i := range column {
			column[i] = zero
		}
		column[c] = one
		luSolve(st.lu, st.piv, n, column) // column c of M⁻¹

		for g := 0; g < n; g++ {
			for k := call.ColPtr[g]; k < call.ColPtr[g+1]; k++ {
				if int(call.RowIdx[k]) == c {
					call.Values[k] = column[g]
				}
			}
		}
	}

	return engine.StatusOK
}

// releaseFactors drops factorization memory, keeping the analysis.
func (e *Engine[T]) releaseFactors(tok *engine.Token) engine.Status {
	st, ok := e.handle(tok)
	if !ok {
		// Nothing held: releasing is idempotent.
		return engine.StatusOK
	}
	st.factored = false
	st.a, st.lu, st.piv = nil, nil, nil

	return engine.StatusOK
}

// releaseAll drops everything tied to the token and zeroes it. Releasing
// an already-released token is a no-op.
func (e *Engine[T]) releaseAll(tok *engine.Token) engine.Status {
	if st, ok := e.handle(tok); ok {
		st.a, st.lu, st.piv = nil, nil, nil
		delete(e.states, tok[0])
	}
	*tok = engine.Token{}

	return engine.StatusOK
}
