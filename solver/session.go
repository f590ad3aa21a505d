package solver

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlsparse/csc"
	"github.com/katalvlaran/lvlsparse/engine"
	"github.com/katalvlaran/lvlsparse/luengine"
)

// Session is one logical solver session: the opaque engine token, both
// parameter arrays, and the scalar configuration codes. Use New; the zero
// Session is not usable. Sessions are pointer-only — the token's identity
// is what the engine associates its scratch memory with, so a Session must
// never be copied.
type Session[T csc.Value] struct {
	eng engine.Engine[T]

	tok   engine.Token
	iparm [engine.ParamSlots]int32
	dparm [engine.ParamSlots]float64

	mtype   engine.MatrixType
	kind    engine.SolverKind
	phase   engine.Phase
	msglvl  engine.MessageLevel
	threads int32

	log      zerolog.Logger
	terminal bool
}

// New constructs a Session with a zeroed token and the protocol defaults:
// nonsymmetric matrix type in the session's value domain, direct solver,
// combined analysis+factorization+solve+refinement phase, silent
// messaging, and a parallelism hint resolved from OMP_NUM_THREADS with a
// logical-core-count fallback (override with WithThreads).
func New[T csc.Value](opts ...Option[T]) *Session[T] {
	cfg := settings[T]{
		threads: defaultThreads(),
		logger:  zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.eng == nil {
		cfg.eng = luengine.New[T]()
	}

	mtype := engine.RealNonsymmetric
	if csc.IsComplex[T]() {
		mtype = engine.ComplexNonsymmetric
	}

	return &Session[T]{
		eng:     cfg.eng,
		mtype:   mtype,
		kind:    engine.Direct,
		phase:   engine.AnalysisFactorizeSolve,
		msglvl:  engine.Silent,
		threads: cfg.threads,
		log:     cfg.logger,
	}
}

// Init populates both parameter arrays with engine defaults for the
// current matrix-type and solver-kind codes, then re-applies the session's
// parallelism hint to slot 3. Required once on a fresh token and again
// after Release before reuse; Solve calls it implicitly.
func (s *Session[T]) Init() error {
	if s.terminal {
		return ErrSessionTerminated
	}

	status := s.eng.Init(&s.tok, s.mtype, s.kind, &s.iparm, &s.dparm)
	if err := status.Err(); err != nil {
		s.note(status)

		return fmt.Errorf("solver: init: %w", err)
	}
	s.iparm[engine.SlotThreads-1] = s.threads
	s.vlog().Debug().
		Stringer("matrix_type", s.mtype).
		Stringer("solver_kind", s.kind).
		Int32("threads", s.threads).
		Msg("session initialized")

	return nil
}

// Release dispatches the release-all phase, dropping every engine-held
// structure tied to the token and zeroing it. Safe to call repeatedly and
// on terminal sessions; a computational phase after Release requires Init
// first.
func (s *Session[T]) Release() error {
	return s.release(engine.ReleaseAll)
}

// ReleaseFactors drops factorization memory while keeping the analysis,
// so a later Factorize phase can reuse the reordering.
func (s *Session[T]) ReleaseFactors() error {
	return s.release(engine.ReleaseFactors)
}

func (s *Session[T]) release(phase engine.Phase) error {
	call := engine.PhaseCall[T]{
		Token:  &s.tok,
		MaxFct: engine.MaxFct,
		Mnum:   engine.InstanceID,
		Mtype:  s.mtype,
		Phase:  phase,
		Iparm:  &s.iparm,
		Dparm:  &s.dparm,
		MsgLvl: s.msglvl,
	}

	status := s.eng.Phase(&call)
	s.vlog().Debug().Stringer("phase", phase).Int32("status", int32(status)).Msg("release dispatched")
	if err := status.Err(); err != nil {
		return fmt.Errorf("solver: %s: %w", phase, err)
	}

	return nil
}

// Terminal reports whether a fatal engine failure latched the session.
func (s *Session[T]) Terminal() bool { return s.terminal }

// note latches the session on statuses that end its useful life.
func (s *Session[T]) note(status engine.Status) {
	if status.Terminal() {
		s.terminal = true
	}
}

// vlog returns the session logger in verbose mode, a no-op logger otherwise.
func (s *Session[T]) vlog() *zerolog.Logger {
	if s.msglvl == engine.Verbose {
		return &s.log
	}
	nop := zerolog.Nop()

	return &nop
}
