package kmeansgo

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/kmeansgo/distance"
	"github.com/hupe1980/kmeansgo/testutil"
)

func twoPairs() *mat.Dense {
	return mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		10, 10,
		10, 11,
	})
}

func TestFitAssign(t *testing.T) {
	ctx := context.Background()

	centers, labels, err := FitAssign(ctx, twoPairs(), 2, WithSeed(42))
	require.NoError(t, err)

	k, dim := centers.Dims()
	assert.Equal(t, 2, k)
	assert.Equal(t, 2, dim)
	require.Len(t, labels, 4)

	// The pairs end up together whatever the label numbering is.
	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[2], labels[3])
	assert.NotEqual(t, labels[0], labels[2])

	// Converged centers are the pair means, in some order.
	rows := [][]float64{
		{centers.At(0, 0), centers.At(0, 1)},
		{centers.At(1, 0), centers.At(1, 1)},
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	assert.InDelta(t, 0.0, rows[0][0], 1e-12)
	assert.InDelta(t, 0.5, rows[0][1], 1e-12)
	assert.InDelta(t, 10.0, rows[1][0], 1e-12)
	assert.InDelta(t, 10.5, rows[1][1], 1e-12)
}

func TestFitAssign_PartitionStableAcrossSeeds(t *testing.T) {
	ctx := context.Background()

	want, err := NewPartition([]int{0, 0, 1, 1}, 2)
	require.NoError(t, err)

	for seed := int64(0); seed < 10; seed++ {
		_, labels, err := FitAssign(ctx, twoPairs(), 2, WithSeed(seed))
		require.NoError(t, err)

		got, err := NewPartition(labels, 2)
		require.NoError(t, err)
		assert.True(t, got.Equivalent(want), "seed %d: partition %v", seed, labels)
	}
}

func TestFit_Deterministic(t *testing.T) {
	ctx := context.Background()

	rng := testutil.NewRNG(17)
	x, _ := rng.ClusteredMatrix(60, 3, 4, 1.0)

	a, err := Fit(ctx, x, 4, WithSeed(99))
	require.NoError(t, err)

	b, err := Fit(ctx, x, 4, WithSeed(99))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a, b))
}

func TestFit_KEqualsOne(t *testing.T) {
	ctx := context.Background()

	x := mat.NewDense(4, 2, []float64{
		0, 0,
		2, 0,
		0, 2,
		2, 2,
	})

	var stats Stats
	centers, err := Fit(ctx, x, 1, WithSeed(1), WithStats(&stats))
	require.NoError(t, err)

	// The single center is the global centroid.
	assert.InDelta(t, 1.0, centers.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, centers.At(0, 1), 1e-12)
	assert.Equal(t, TerminationConverged, stats.Termination)
}

func TestFit_KEqualsN(t *testing.T) {
	ctx := context.Background()

	x := mat.NewDense(3, 2, []float64{
		1, 1,
		5, 5,
		9, 1,
	})

	var stats Stats
	centers, labels, err := FitAssign(ctx, x, 3, WithSeed(8), WithStats(&stats))
	require.NoError(t, err)

	// Every point is its own cluster at zero distance.
	assert.ElementsMatch(t, []int{0, 1, 2}, labels)
	assert.Equal(t, TerminationConverged, stats.Termination)
	assert.Equal(t, 1, stats.Iterations)
	assert.InDelta(t, 0.0, stats.Inertia, 1e-12)

	// The centers are the points themselves, in some order.
	for i := range 3 {
		found := false
		for j := range 3 {
			if x.At(i, 0) == centers.At(j, 0) && x.At(i, 1) == centers.At(j, 1) {
				found = true
				break
			}
		}
		assert.True(t, found, "point %d missing from centers", i)
	}
}

func TestFit_MaxIterations(t *testing.T) {
	ctx := context.Background()

	// Whatever pair of points seeds the centers, one mean update moves them
	// by a nonzero net amount, so a cap of one iteration always hits it.
	x := mat.NewDense(4, 1, []float64{0, 1, 3, 100})

	for seed := int64(0); seed < 5; seed++ {
		var stats Stats
		_, err := Fit(ctx, x, 2, WithSeed(seed), WithMaxIterations(1), WithStats(&stats))
		require.NoError(t, err)

		assert.Equal(t, 1, stats.Iterations)
		assert.Equal(t, TerminationMaxIterations, stats.Termination)
		assert.NotZero(t, stats.CenterShift)
	}
}

func TestFit_ConvergencePolicies(t *testing.T) {
	ctx := context.Background()

	t.Run("Stable", func(t *testing.T) {
		var stats Stats
		_, labels, err := FitAssign(ctx, twoPairs(), 2,
			WithSeed(3),
			WithConvergence(ConvergeStable),
			WithStats(&stats),
		)
		require.NoError(t, err)

		assert.Equal(t, TerminationConverged, stats.Termination)
		assert.Zero(t, stats.CenterShift)
		assert.Equal(t, labels[0], labels[1])
		assert.Equal(t, labels[2], labels[3])
	})

	t.Run("Tolerance", func(t *testing.T) {
		// A tolerance larger than any possible movement stops after the
		// first iteration.
		var stats Stats
		_, err := Fit(ctx, twoPairs(), 2,
			WithSeed(3),
			WithTolerance(1e6),
			WithStats(&stats),
		)
		require.NoError(t, err)

		assert.Equal(t, 1, stats.Iterations)
		assert.Equal(t, TerminationConverged, stats.Termination)
	})
}

func TestFit_NetShiftCancellation(t *testing.T) {
	// Opposing center moves sum to zero even though both centers moved.
	// This is the documented blind spot of ConvergeNetShift.
	prev := mat.NewDense(2, 1, []float64{0, 10})
	next := mat.NewDense(2, 1, []float64{1, 9})

	assert.Zero(t, shiftOf(prev, next, ConvergeNetShift))
	assert.True(t, stoppedBy(shiftOf(prev, next, ConvergeNetShift), ConvergeNetShift, 0))

	// The stricter policies see the movement.
	assert.Equal(t, 2.0, shiftOf(prev, next, ConvergeStable))
	assert.False(t, stoppedBy(shiftOf(prev, next, ConvergeStable), ConvergeStable, 0))
}

func TestFit_Stats(t *testing.T) {
	ctx := context.Background()

	var stats Stats
	_, err := Fit(ctx, twoPairs(), 2, WithSeed(4), WithStats(&stats))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stats.Iterations, 1)
	assert.LessOrEqual(t, stats.Iterations, DefaultMaxIterations)
	assert.Equal(t, TerminationConverged, stats.Termination)
	assert.InDelta(t, 1.0, stats.Inertia, 1e-10)
	assert.GreaterOrEqual(t, stats.Duration.Nanoseconds(), int64(0))
}

func TestFit_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("ZeroK", func(t *testing.T) {
		_, err := Fit(ctx, twoPairs(), 0)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("KExceedsPoints", func(t *testing.T) {
		_, err := Fit(ctx, twoPairs(), 5)
		assert.ErrorIs(t, err, ErrKExceedsPoints)
	})

	t.Run("NilInput", func(t *testing.T) {
		_, err := Fit(ctx, nil, 2)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("NaNInput", func(t *testing.T) {
		x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		x.Set(1, 0, math.NaN())

		_, err := Fit(ctx, x, 1)

		var nn *ErrNonNumeric
		require.ErrorAs(t, err, &nn)
		assert.Equal(t, 1, nn.Row)
		assert.Equal(t, 0, nn.Col)
	})

	t.Run("LeafOpsSkipNaNCheck", func(t *testing.T) {
		// Only the fit entry points validate the data; the building blocks
		// check shapes and nothing else.
		x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		x.Set(1, 0, math.NaN())

		_, err := MeasureDist(x, mat.NewDense(1, 2, []float64{0, 0}))
		assert.NoError(t, err)
	})
}

func TestFit_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	rng := testutil.NewRNG(2)
	x, _ := rng.ClusteredMatrix(100, 2, 2, 1.0)

	_, err := Fit(ctx, x, 2, WithSeed(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFit_WorkersMatchSequential(t *testing.T) {
	ctx := context.Background()

	rng := testutil.NewRNG(77)
	x, _ := rng.ClusteredMatrix(120, 4, 3, 0.3)

	want, err := Fit(ctx, x, 3, WithSeed(5))
	require.NoError(t, err)

	// Parallel distance rows do not change the result at all.
	got, err := Fit(ctx, x, 3, WithSeed(5), WithWorkers(4))
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))
}

func TestFit_BLASKernel(t *testing.T) {
	ctx := context.Background()

	// Two tight blobs far apart, so kernel rounding cannot flip a label.
	x := mat.NewDense(40, 4, nil)
	for i := range 40 {
		base := 0.0
		if i >= 20 {
			base = 50.0
		}
		off := float64(i%7) * 0.01
		x.SetRow(i, []float64{base + off, base - off, base, base + 2*off})
	}

	want, err := Fit(ctx, x, 2, WithSeed(5))
	require.NoError(t, err)

	blas, err := Fit(ctx, x, 2, WithSeed(5), WithKernel(distance.KernelBLAS))
	require.NoError(t, err)

	r, c := want.Dims()
	for i := range r {
		for j := range c {
			assert.InDelta(t, want.At(i, j), blas.At(i, j), 1e-6)
		}
	}
}

func TestConvergence_String(t *testing.T) {
	assert.Equal(t, "NetShift", ConvergeNetShift.String())
	assert.Equal(t, "Stable", ConvergeStable.String())
	assert.Equal(t, "Tolerance", ConvergeTolerance.String())
	assert.Equal(t, "Unknown(99)", Convergence(99).String())
}

func TestTerminationReason_String(t *testing.T) {
	assert.Equal(t, "Converged", TerminationConverged.String())
	assert.Equal(t, "MaxIterations", TerminationMaxIterations.String())
	assert.Equal(t, "Unknown(99)", TerminationReason(99).String())
}
