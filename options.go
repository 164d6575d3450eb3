package kmeansgo

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hupe1980/kmeansgo/distance"
)

type options struct {
	rng           *rand.Rand
	maxIterations int
	convergence   Convergence
	tolerance     float64
	kernel        distance.Kernel
	workers       int
	logger        *Logger
	stats         *Stats
}

// Option configures seeding, assignment and fit behavior.
type Option func(*options)

// WithSeed seeds the random source used for center initialization.
// Two runs with the same seed on the same data produce identical centers.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source directly. Takes precedence over WithSeed
// when both are given. The source is used from a single goroutine.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithMaxIterations overrides the fit iteration cap.
//
// If n <= 0, DefaultMaxIterations is used.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxIterations
		}
		o.maxIterations = n
	}
}

// WithConvergence selects the stopping rule for the fit loop.
func WithConvergence(c Convergence) Option {
	return func(o *options) {
		o.convergence = c
	}
}

// WithTolerance switches the stopping rule to ConvergeTolerance with the
// given threshold on the summed absolute center movement per iteration.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.convergence = ConvergeTolerance
		o.tolerance = tol
	}
}

// WithKernel selects the pairwise distance implementation.
//
// KernelScalar is the default and is bit-reproducible across runs.
// KernelBLAS trades that for speed on wide data: it computes the same
// distances with different floating-point rounding.
func WithKernel(k distance.Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithWorkers splits the distance computation across n goroutines.
// The result is identical to the sequential computation; only the scalar
// kernel is affected. Values <= 1 keep the computation sequential.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeansgo.NewJSONLogger(slog.LevelInfo)
//	centers, err := kmeansgo.Fit(ctx, x, 3, kmeansgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithStats has Fit and FitAssign fill the given Stats with what the run did.
func WithStats(stats *Stats) Option {
	return func(o *options) {
		o.stats = stats
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations: DefaultMaxIterations,
		logger:        NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
