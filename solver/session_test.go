package solver_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlsparse/csc"
	"github.com/katalvlaran/lvlsparse/engine"
	"github.com/katalvlaran/lvlsparse/luengine"
	"github.com/katalvlaran/lvlsparse/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine lets tests script engine statuses without a real backend.
type stubEngine struct {
	initStatus  engine.Status
	phaseStatus engine.Status
}

func (s *stubEngine) Init(*engine.Token, engine.MatrixType, engine.SolverKind,
	*[engine.ParamSlots]int32, *[engine.ParamSlots]float64) engine.Status {
	return s.initStatus
}

func (s *stubEngine) Phase(*engine.PhaseCall[float64]) engine.Status { return s.phaseStatus }

func (s *stubEngine) CheckMatrix(engine.MatrixType, int32, []float64, []int32, []int32) engine.Status {
	return engine.StatusOK
}

func (s *stubEngine) CheckVector(int32, int32, []float64) engine.Status { return engine.StatusOK }

func (s *stubEngine) PrintStats(engine.MatrixType, int32, []float64, []int32, []int32, int32, []float64) engine.Status {
	return engine.StatusOK
}

// TestInit_AppliesThreadHint slot 3 carries the session's parallelism hint
// after the engine writes its defaults.
func TestInit_AppliesThreadHint(t *testing.T) {
	ps := solver.New[float64](solver.WithThreads[float64](2))
	require.NoError(t, ps.Init())

	threads, err := ps.Iparm(engine.SlotThreads)
	require.NoError(t, err)
	assert.Equal(t, int32(2), threads)
}

// TestNew_EnvThreadOverride OMP_NUM_THREADS wins over the core-count
// fallback; WithThreads wins over both.
func TestNew_EnvThreadOverride(t *testing.T) {
	t.Setenv("OMP_NUM_THREADS", "5")

	ps := solver.New[float64]()
	require.NoError(t, ps.Init())
	threads, err := ps.Iparm(engine.SlotThreads)
	require.NoError(t, err)
	assert.Equal(t, int32(5), threads)

	pinned := solver.New[float64](solver.WithThreads[float64](3))
	require.NoError(t, pinned.Init())
	threads, err = pinned.Iparm(engine.SlotThreads)
	require.NoError(t, err)
	assert.Equal(t, int32(3), threads)
}

// TestInit_PopulatesDefaults the backend writes nonzero defaults into the
// integer parameter array.
func TestInit_PopulatesDefaults(t *testing.T) {
	ps := solver.New[float64]()
	require.NoError(t, ps.Init())

	refine, err := ps.Iparm(engine.SlotRefinementMax)
	require.NoError(t, err)
	assert.Positive(t, refine, "engine defaults include a refinement budget")
}

// TestInit_FailureSurfacesDecodedError a failing engine init aborts with
// the decoded taxonomy entry.
func TestInit_FailureSurfacesDecodedError(t *testing.T) {
	stub := &stubEngine{initStatus: engine.StatusInternal}
	ps := solver.New[float64](solver.WithEngine[float64](stub))

	assert.ErrorIs(t, ps.Init(), engine.ErrInternal)
}

// TestTerminalLatch_OutOfMemory a −2 status latches the session: further
// computational calls fail fast, Release still goes through.
func TestTerminalLatch_OutOfMemory(t *testing.T) {
	stub := &stubEngine{phaseStatus: engine.StatusOutOfMemory}
	ps := solver.New[float64](solver.WithEngine[float64](stub))

	a, err := csc.FromDense([][]float64{{1}})
	require.NoError(t, err)
	b := denseCol(t, 1)

	_, err = ps.Solve(a, b, solver.Natural)
	assert.ErrorIs(t, err, engine.ErrOutOfMemory)
	assert.True(t, ps.Terminal())

	_, err = ps.Solve(a, b, solver.Natural)
	assert.ErrorIs(t, err, solver.ErrSessionTerminated)

	stub.phaseStatus = engine.StatusOK
	assert.NoError(t, ps.Release(), "release must work on a terminal session")
}

// TestTerminalLatch_License license statuses latch the same way.
func TestTerminalLatch_License(t *testing.T) {
	stub := &stubEngine{phaseStatus: engine.StatusLicenseExpired}
	ps := solver.New[float64](solver.WithEngine[float64](stub))

	a, err := csc.FromDense([][]float64{{1}})
	require.NoError(t, err)
	b := denseCol(t, 1)

	_, err = ps.Solve(a, b, solver.Natural)
	assert.ErrorIs(t, err, engine.ErrLicense)
	assert.True(t, ps.Terminal())
}

// TestNonTerminalFailure_SessionStaysUsable a numerical failure aborts the
// call but the session can attempt another phase.
func TestNonTerminalFailure_SessionStaysUsable(t *testing.T) {
	ps := solver.New[float64]()
	defer func() { require.NoError(t, ps.Release()) }()

	singular, err := csc.FromDense([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	good, err := csc.FromDense([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	b := denseCol(t, 1, 1)

	_, err = ps.Solve(singular, b, solver.Natural)
	require.ErrorIs(t, err, engine.ErrNumerical)
	assert.False(t, ps.Terminal())

	x, err := ps.Solve(good, b, solver.Natural)
	require.NoError(t, err)
	got, _ := x.At(0, 0)
	assert.InDelta(t, 1, got, 1e-10)
}

// TestVerboseLogging phase dispatches are traced only in verbose mode.
func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	ps := solver.New[float64](
		solver.WithLogger[float64](zerolog.New(&buf)),
		solver.WithEngine[float64](luengine.New[float64](luengine.WithOutput(io.Discard))),
	)

	a, err := csc.FromDense([][]float64{{1}})
	require.NoError(t, err)
	b := denseCol(t, 1)

	_, err = ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "silent sessions log nothing")

	require.NoError(t, ps.SetMessageLevel(engine.Verbose))
	_, err = ps.Solve(a, b, solver.Natural)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "phase dispatched")
	assert.Contains(t, buf.String(), "session initialized")

	require.NoError(t, ps.Release())
}
