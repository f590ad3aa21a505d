package solver_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/csc"
	"github.com/katalvlaran/lvlsparse/engine"
	"github.com/katalvlaran/lvlsparse/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denseCol(t *testing.T, vals ...float64) *csc.Dense[float64] {
	t.Helper()
	d, err := csc.NewDenseFrom(len(vals), 1, vals)
	require.NoError(t, err)

	return d
}

// TestSolve_IdentityNatural default orientation solves the mathematically
// natural system: with A = I the solution equals the right-hand side.
func TestSolve_IdentityNatural(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	b := denseCol(t, 3, -7, 0.5)

	x, err := ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		want, _ := b.At(i, 0)
		got, _ := x.At(i, 0)
		assert.InDelta(t, want, got, 1e-10, "row %d", i)
	}
}

// TestSolve_EndToEnd the canonical scenario: matrix type 11, direct solver,
// phase 13, diag(1,2,3)·x = [2,4,6] → x = [2,2,2] within 1e-10.
func TestSolve_EndToEnd(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	require.NoError(t, ps.SetMatrixType(engine.RealNonsymmetric))
	require.NoError(t, ps.SetSolverKind(engine.Direct))
	require.NoError(t, ps.SetPhase(engine.AnalysisFactorizeSolve))

	a, err := csc.FromDense([][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}})
	require.NoError(t, err)
	b := denseCol(t, 2, 4, 6)

	x, err := ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		got, _ := x.At(i, 0)
		assert.InDelta(t, 2, got, 1e-10, "row %d", i)
	}
}

// TestSolve_NonsymmetricNatural hand-computed nonsymmetric system:
// A = [[1,2,0],[0,1,0],[0,0,2]], b = [5,2,4] → x = [1,2,2].
func TestSolve_NonsymmetricNatural(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{1, 2, 0}, {0, 1, 0}, {0, 0, 2}})
	require.NoError(t, err)
	b := denseCol(t, 5, 2, 4)

	x, err := ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)
	want := []float64{1, 2, 2}
	for i, w := range want {
		got, _ := x.At(i, 0)
		assert.InDelta(t, w, got, 1e-10, "row %d", i)
	}
}

// TestSolve_Transposed same matrix, transposed orientation:
// Aᵀ·x = [1,4,6] → x = [1,2,3].
func TestSolve_Transposed(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{1, 2, 0}, {0, 1, 0}, {0, 0, 2}})
	require.NoError(t, err)
	b := denseCol(t, 1, 4, 6)

	x, err := ps.Solve(a, b, solver.Transposed)
	require.NoError(t, err)
	want := []float64{1, 2, 3}
	for i, w := range want {
		got, _ := x.At(i, 0)
		assert.InDelta(t, w, got, 1e-10, "row %d", i)
	}
}

// TestSolve_InvalidOrientation anything beyond natural/transposed fails.
func TestSolve_InvalidOrientation(t *testing.T) {
	ps := solver.New[float64]()

	a, err := csc.FromDense([][]float64{{1}})
	require.NoError(t, err)
	b := denseCol(t, 1)

	_, err = ps.Solve(a, b, solver.Orientation(7))
	assert.ErrorIs(t, err, solver.ErrInvalidConfig)
}

// TestSolve_LeavesRHSUntouched Solve allocates; B keeps its values.
func TestSolve_LeavesRHSUntouched(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{2, 0}, {0, 2}})
	require.NoError(t, err)
	b := denseCol(t, 4, 8)

	_, err = ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)

	v0, _ := b.At(0, 0)
	v1, _ := b.At(1, 0)
	assert.Equal(t, 4.0, v0)
	assert.Equal(t, 8.0, v1)
}

// TestSolve_DimensionMismatch A (4,4), B (4,1), X (3,1) fails before dispatch.
func TestSolve_DimensionMismatch(t *testing.T) {
	ps := solver.New[float64]()

	a, err := csc.FromDense([][]float64{
		{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1},
	})
	require.NoError(t, err)
	b := denseCol(t, 1, 2, 3, 4)
	x := denseCol(t, 0, 0, 0)

	err = ps.SolveInto(x, a, b, solver.Natural)
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)

	// A rows vs B rows disagreeing is the same category.
	b3 := denseCol(t, 1, 2, 3)
	x3 := denseCol(t, 0, 0, 0)
	err = ps.SolveInto(x3, a, b3, solver.Natural)
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
}

// TestSolve_TypeMismatch real data with a complex matrix-type code fails;
// the real nonsymmetric code succeeds on the same matrix.
func TestSolve_TypeMismatch(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	b := denseCol(t, 1, 2)

	require.NoError(t, ps.SetMatrixType(engine.ComplexStructSymmetric))
	_, err = ps.Solve(a, b, solver.Natural)
	assert.ErrorIs(t, err, solver.ErrTypeMismatch)

	require.NoError(t, ps.SetMatrixType(engine.RealNonsymmetric))
	_, err = ps.Solve(a, b, solver.Natural)
	assert.NoError(t, err)
}

// TestSolve_SingularSurfacesNumericalFailure a rank-deficient system maps
// onto the numerical-failure taxonomy entry.
func TestSolve_SingularSurfacesNumericalFailure(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	b := denseCol(t, 1, 2)

	_, err = ps.Solve(a, b, solver.Natural)
	assert.ErrorIs(t, err, engine.ErrNumerical)
}

// TestSolve_MultipleRHS solves a two-column block in one dispatch.
func TestSolve_MultipleRHS(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{2, 0}, {0, 4}})
	require.NoError(t, err)
	b, err := csc.NewDenseFrom(2, 2, []float64{2, 4, 6, 8}) // columns [2,4], [6,8]
	require.NoError(t, err)

	x, err := ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)

	want := [][]float64{{1, 3}, {1, 2}} // row-major expectations
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, _ := x.At(i, j)
			assert.InDelta(t, want[i][j], got, 1e-10, "element (%d,%d)", i, j)
		}
	}
}

// TestExecute_AnalyzeOnceSolveMany drives the phases by hand: one
// analysis+factorization, then repeated solves with tuned parameters that
// Execute must not clobber.
func TestExecute_AnalyzeOnceSolveMany(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{1, 2, 0}, {0, 1, 0}, {0, 0, 2}})
	require.NoError(t, err)
	b := denseCol(t, 5, 2, 4)
	x := denseCol(t, 0, 0, 0)

	require.NoError(t, ps.Init())
	require.NoError(t, ps.SetIparm(engine.SlotTranspose, 1)) // natural orientation by hand

	require.NoError(t, ps.SetPhase(engine.AnalysisFactorize))
	require.NoError(t, ps.Execute(x, a, b))

	require.NoError(t, ps.SetPhase(engine.SolveRefine))
	require.NoError(t, ps.Execute(x, a, b))
	got, _ := x.At(0, 0)
	assert.InDelta(t, 1, got, 1e-10)

	b2 := denseCol(t, 2, 2, 2)
	x2 := denseCol(t, 0, 0, 0)
	require.NoError(t, ps.Execute(x2, a, b2))
	got, _ = x2.At(2, 0)
	assert.InDelta(t, 1, got, 1e-10, "second solve reuses the factors")
}

// TestRelease_Idempotent releasing twice never corrupts the session.
func TestRelease_Idempotent(t *testing.T) {
	ps := solver.New[float64]()

	a, err := csc.FromDense([][]float64{{1}})
	require.NoError(t, err)
	b := denseCol(t, 1)

	_, err = ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)

	assert.NoError(t, ps.Release())
	assert.NoError(t, ps.Release(), "second release is a well-defined no-op")

	// The session is still able to start a fresh protocol run.
	x, err := ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)
	got, _ := x.At(0, 0)
	assert.InDelta(t, 1, got, 1e-10)
}

// TestReleaseFactors_KeepsAnalysis factors can be rebuilt without a new
// analysis phase after ReleaseFactors.
func TestReleaseFactors_KeepsAnalysis(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{2, 0}, {0, 2}})
	require.NoError(t, err)
	b := denseCol(t, 2, 4)
	x := denseCol(t, 0, 0)

	require.NoError(t, ps.Init())
	require.NoError(t, ps.SetIparm(engine.SlotTranspose, 1))
	require.NoError(t, ps.SetPhase(engine.AnalysisFactorize))
	require.NoError(t, ps.Execute(x, a, b))

	require.NoError(t, ps.ReleaseFactors())

	require.NoError(t, ps.SetPhase(engine.Factorize))
	require.NoError(t, ps.Execute(x, a, b), "factorize reuses the kept analysis")

	require.NoError(t, ps.SetPhase(engine.SolveRefine))
	require.NoError(t, ps.Execute(x, a, b))
	got, _ := x.At(1, 0)
	assert.InDelta(t, 2, got, 1e-10)
}

// TestSelectedInversion_DiagonalPattern phase −22 rewrites A's nonzeros
// with inverse entries.
func TestSelectedInversion_DiagonalPattern(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]float64{{2, 0}, {0, 5}})
	require.NoError(t, err)
	b := denseCol(t, 0, 0)
	x := denseCol(t, 0, 0)

	require.NoError(t, ps.Init())
	require.NoError(t, ps.SetPhase(engine.AnalysisFactorize))
	require.NoError(t, ps.Execute(x, a, b))

	require.NoError(t, ps.SetPhase(engine.SelectedInversion))
	require.NoError(t, ps.Execute(x, a, b))

	assert.InDelta(t, 0.5, a.Values()[0], 1e-12)
	assert.InDelta(t, 0.2, a.Values()[1], 1e-12)
}

// TestSolve_Complex a complex session with the complex nonsymmetric
// default solves a small system.
func TestSolve_Complex(t *testing.T) {
	ps := solver.New[complex128]()
	defer func() { require.NoError(t, ps.Release()) }()

	a, err := csc.FromDense([][]complex128{{1 + 1i, 0}, {0, 2}})
	require.NoError(t, err)
	b, err := csc.NewDenseFrom(2, 1, []complex128{2 + 2i, 6})
	require.NoError(t, err)

	x, err := ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)

	got, _ := x.At(0, 0)
	assert.InDelta(t, 2, real(got), 1e-10)
	assert.InDelta(t, 0, imag(got), 1e-10)
	got, _ = x.At(1, 0)
	assert.InDelta(t, 3, real(got), 1e-10)
}
