package engine

// MatrixType declares the structural/numeric class of the sparse matrix
// and, implicitly, its value domain. The code set and numbering follow the
// engine manual; anything outside the set is rejected by the session layer.
type MatrixType int32

const (
	// RealStructSymmetric — real, structurally symmetric.
	RealStructSymmetric MatrixType = 1
	// RealSymPosDef — real, symmetric positive definite.
	RealSymPosDef MatrixType = 2
	// RealSymIndefinite — real, symmetric indefinite.
	RealSymIndefinite MatrixType = -2
	// ComplexStructSymmetric — complex, structurally symmetric.
	ComplexStructSymmetric MatrixType = 3
	// ComplexHermPosDef — complex, Hermitian positive definite.
	ComplexHermPosDef MatrixType = 4
	// ComplexHermIndefinite — complex, Hermitian indefinite.
	ComplexHermIndefinite MatrixType = -4
	// ComplexSymmetric — complex, symmetric.
	ComplexSymmetric MatrixType = 6
	// RealNonsymmetric — real, nonsymmetric (the session default).
	RealNonsymmetric MatrixType = 11
	// ComplexNonsymmetric — complex, nonsymmetric.
	ComplexNonsymmetric MatrixType = 13
)

// matrixTypeNames is the static diagnostic label table (never mutated).
var matrixTypeNames = map[MatrixType]string{
	RealStructSymmetric:    "real and structurally symmetric",
	RealSymPosDef:          "real and symmetric positive definite",
	RealSymIndefinite:      "real and symmetric indefinite",
	ComplexStructSymmetric: "complex and structurally symmetric",
	ComplexHermPosDef:      "complex and Hermitian positive definite",
	ComplexHermIndefinite:  "complex and Hermitian indefinite",
	ComplexSymmetric:       "complex and symmetric",
	RealNonsymmetric:       "real and nonsymmetric",
	ComplexNonsymmetric:    "complex and nonsymmetric",
}

// Valid reports membership in the enumerated matrix-type set.
func (m MatrixType) Valid() bool {
	_, ok := matrixTypeNames[m]

	return ok
}

// IsComplex reports whether the code belongs to the complex subset.
func (m MatrixType) IsComplex() bool {
	switch m {
	case ComplexStructSymmetric, ComplexHermPosDef, ComplexHermIndefinite,
		ComplexSymmetric, ComplexNonsymmetric:
		return true
	}

	return false
}

// String returns the diagnostic label, or "unknown" outside the set.
func (m MatrixType) String() string {
	if name, ok := matrixTypeNames[m]; ok {
		return name
	}

	return "unknown matrix type"
}

// SolverKind selects the engine's solution strategy.
type SolverKind int32

const (
	// Direct — sparse direct factorization (the session default).
	Direct SolverKind = 0
	// Iterative — multi-recursive iterative solver.
	Iterative SolverKind = 1
)

// Valid reports membership in {Direct, Iterative}.
func (s SolverKind) Valid() bool { return s == Direct || s == Iterative }

// String returns the diagnostic label.
func (s SolverKind) String() string {
	switch s {
	case Direct:
		return "direct"
	case Iterative:
		return "iterative"
	}

	return "unknown solver kind"
}

// Phase identifies one step (or combination of steps) of the solver
// protocol. Combined codes run their steps in sequence inside the engine.
type Phase int32

const (
	// Analysis — symbolic analysis only.
	Analysis Phase = 11
	// AnalysisFactorize — analysis, then numerical factorization.
	AnalysisFactorize Phase = 12
	// AnalysisFactorizeSolve — analysis, factorization, solve and
	// iterative refinement (the session default).
	AnalysisFactorizeSolve Phase = 13
	// Factorize — numerical factorization on a completed analysis.
	Factorize Phase = 22
	// SelectedInversion — compute inverse entries on the sparsity pattern
	// of a completed factorization, written back into the matrix values.
	SelectedInversion Phase = -22
	// FactorizeSolve — factorization, solve and iterative refinement.
	FactorizeSolve Phase = 23
	// SolveRefine — solve and iterative refinement on existing factors.
	SolveRefine Phase = 33
	// ReleaseFactors — release factorization memory, keep the analysis.
	ReleaseFactors Phase = 0
	// ReleaseAll — release every internal structure tied to the token.
	ReleaseAll Phase = -1
)

// phaseNames is the static diagnostic label table (never mutated).
var phaseNames = map[Phase]string{
	Analysis:               "analysis",
	AnalysisFactorize:      "analysis, numerical factorization",
	AnalysisFactorizeSolve: "analysis, numerical factorization, solve, iterative refinement",
	Factorize:              "numerical factorization",
	SelectedInversion:      "selected inversion",
	FactorizeSolve:         "numerical factorization, solve, iterative refinement",
	SolveRefine:            "solve, iterative refinement",
	ReleaseFactors:         "release internal memory for L and U",
	ReleaseAll:             "release all internal memory for all matrices",
}

// Valid reports membership in the legal phase set.
func (p Phase) Valid() bool {
	_, ok := phaseNames[p]

	return ok
}

// Solving reports whether the phase produces a solution block.
func (p Phase) Solving() bool {
	return p == AnalysisFactorizeSolve || p == FactorizeSolve || p == SolveRefine
}

// String returns the diagnostic label, or "unknown" outside the set.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}

	return "unknown phase"
}

// MessageLevel toggles engine-side statistics output.
type MessageLevel int32

const (
	// Silent — no engine output.
	Silent MessageLevel = 0
	// Verbose — engine prints statistics; the session layer also traces.
	Verbose MessageLevel = 1
)

// Valid reports membership in {Silent, Verbose}.
func (m MessageLevel) Valid() bool { return m == Silent || m == Verbose }
