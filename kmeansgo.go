package kmeansgo

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/kmeansgo/matrix"
)

// DefaultMaxIterations caps the fit loop when no option overrides it.
const DefaultMaxIterations = 20

// Convergence selects the stopping rule applied between fit iterations.
type Convergence int

const (
	// ConvergeNetShift stops when the signed coordinate deltas between
	// consecutive center matrices sum to exactly zero. The cheapest rule,
	// and exact once the centers stop moving, but opposing shifts can
	// cancel and end the loop early.
	ConvergeNetShift Convergence = iota

	// ConvergeStable stops when no center coordinate changed at all.
	ConvergeStable

	// ConvergeTolerance stops when the summed absolute coordinate movement
	// drops to the threshold set with WithTolerance.
	ConvergeTolerance
)

func (c Convergence) String() string {
	switch c {
	case ConvergeNetShift:
		return "NetShift"
	case ConvergeStable:
		return "Stable"
	case ConvergeTolerance:
		return "Tolerance"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Fit clusters the rows of x into k groups: k-means++ seeding followed by
// assign/update rounds until the centers converge or the iteration cap is
// reached. It returns the final k×d center matrix.
//
// The result is random unless WithSeed or WithRand is given. ctx is checked
// between iterations; cancellation aborts the run with ctx.Err().
func Fit(ctx context.Context, x *mat.Dense, k int, optFns ...Option) (*mat.Dense, error) {
	o := applyOptions(optFns)

	centers, stats, err := fit(ctx, x, k, &o)
	o.logger.LogFit(ctx, k, stats.Iterations, stats.Termination, err)

	return centers, err
}

// FitAssign runs Fit and additionally labels every row of x against the
// final centers. The labels are computed in one extra assignment pass after
// the loop, so they are consistent with the returned center matrix.
func FitAssign(ctx context.Context, x *mat.Dense, k int, optFns ...Option) (*mat.Dense, []int, error) {
	o := applyOptions(optFns)

	centers, stats, err := fit(ctx, x, k, &o)
	if err != nil {
		o.logger.LogFit(ctx, k, stats.Iterations, stats.Termination, err)
		return nil, nil, err
	}

	labels, err := assign(x, centers, &o)
	o.logger.LogFit(ctx, k, stats.Iterations, stats.Termination, err)
	if err != nil {
		return nil, nil, err
	}

	return centers, labels, nil
}

func fit(ctx context.Context, x *mat.Dense, k int, o *options) (*mat.Dense, Stats, error) {
	start := time.Now()
	stats := Stats{Termination: TerminationMaxIterations}

	done := func(centers *mat.Dense, err error) (*mat.Dense, Stats, error) {
		stats.Duration = time.Since(start)
		if o.stats != nil {
			*o.stats = stats
		}
		return centers, stats, err
	}

	if err := validateData(x); err != nil {
		return done(nil, err)
	}

	centers, err := initCenters(x, k, o)
	if err != nil {
		return done(nil, err)
	}
	o.logger.LogSeed(ctx, k, numRows(x), nil)

	for stats.Iterations < o.maxIterations {
		if err := ctx.Err(); err != nil {
			return done(nil, err)
		}

		labels, err := assign(x, centers, o)
		if err != nil {
			return done(nil, err)
		}

		next, err := CalcCenters(x, centers, labels)
		if err != nil {
			return done(nil, err)
		}

		stats.Iterations++
		stats.CenterShift = shiftOf(centers, next, o.convergence)
		o.logger.LogIteration(ctx, stats.Iterations, stats.CenterShift)

		centers = next

		if stoppedBy(stats.CenterShift, o.convergence, o.tolerance) {
			stats.Termination = TerminationConverged
			break
		}
	}

	if o.stats != nil {
		labels, err := assign(x, centers, o)
		if err != nil {
			return done(nil, err)
		}

		inertia, err := Inertia(x, centers, labels)
		if err != nil {
			return done(nil, err)
		}
		stats.Inertia = inertia
	}

	return done(centers, nil)
}

// shiftOf measures the center movement between consecutive iterations in the
// quantity the stopping rule evaluates: the signed coordinate sum for
// ConvergeNetShift, the summed absolute movement otherwise.
func shiftOf(prev, next *mat.Dense, policy Convergence) float64 {
	var delta mat.Dense
	delta.Sub(next, prev)

	data := delta.RawMatrix().Data
	if policy == ConvergeNetShift {
		return floats.Sum(data)
	}

	return floats.Norm(data, 1)
}

func stoppedBy(shift float64, policy Convergence, tol float64) bool {
	if policy == ConvergeTolerance {
		return shift <= tol
	}

	return shift == 0
}

// validateMatrix rejects nil or empty inputs.
func validateMatrix(m *mat.Dense) error {
	if m == nil || m.IsEmpty() {
		return ErrEmptyInput
	}

	return nil
}

// validateData additionally rejects NaNs. The fit entry points run it once
// up front; the leaf operations only check shapes.
func validateData(m *mat.Dense) error {
	if err := validateMatrix(m); err != nil {
		return err
	}

	return translateError(matrix.Validate(m))
}

func numRows(m *mat.Dense) int {
	if m == nil {
		return 0
	}

	r, _ := m.Dims()
	return r
}
