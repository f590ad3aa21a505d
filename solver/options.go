package solver

import (
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlsparse/csc"
	"github.com/katalvlaran/lvlsparse/engine"
)

// envConfig is the one ambient knob: the parallelism override, read once
// at session construction.
type envConfig struct {
	Threads int `env:"OMP_NUM_THREADS"`
}

// defaultThreads resolves the parallelism hint: environment override if
// positive, logical core count otherwise.
func defaultThreads() int32 {
	var cfg envConfig
	if err := env.Parse(&cfg); err == nil && cfg.Threads > 0 {
		return int32(cfg.Threads)
	}

	return int32(runtime.NumCPU())
}

// settings holds constructor state assembled from Options.
type settings[T csc.Value] struct {
	eng     engine.Engine[T]
	threads int32
	logger  zerolog.Logger
}

// Option configures a Session at construction. Options never fail; values
// outside their domain fall back to the documented default.
type Option[T csc.Value] func(*settings[T])

// WithEngine substitutes the backend (default: the pure-Go luengine).
func WithEngine[T csc.Value](e engine.Engine[T]) Option[T] {
	return func(s *settings[T]) {
		if e != nil {
			s.eng = e
		}
	}
}

// WithThreads pins the parallelism hint, overriding both the environment
// variable and the core-count fallback. Non-positive values are ignored.
func WithThreads[T csc.Value](n int) Option[T] {
	return func(s *settings[T]) {
		if n > 0 {
			s.threads = int32(n)
		}
	}
}

// WithLogger supplies the logger used when the message level is Verbose
// (default: timestamped stderr logger, silent until verbose mode is set).
func WithLogger[T csc.Value](l zerolog.Logger) Option[T] {
	return func(s *settings[T]) { s.logger = l }
}
