package kmeansgo

import (
	"context"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/kmeansgo/distance"
)

// InitCenters chooses k initial centers from the rows of x using k-means++
// seeding: the first center is drawn uniformly at random, every later center
// is drawn with probability proportional to its squared distance to the
// nearest already chosen center. Rows already chosen as centers are excluded
// from later draws; rows that merely coincide with a center keep weight zero
// but stay in the draw.
//
// The draw is random by design. Pass WithSeed or WithRand for reproducible
// results.
func InitCenters(x *mat.Dense, k int, optFns ...Option) (*mat.Dense, error) {
	o := applyOptions(optFns)

	centers, err := initCenters(x, k, &o)
	o.logger.LogSeed(context.Background(), k, numRows(x), err)

	return centers, err
}

func initCenters(x *mat.Dense, k int, o *options) (*mat.Dense, error) {
	if err := validateMatrix(x); err != nil {
		return nil, err
	}

	n, dim := x.Dims()

	if k <= 0 {
		return nil, ErrInvalidK
	}
	if k > n {
		return nil, fmt.Errorf("%w: k=%d, points=%d", ErrKExceedsPoints, k, n)
	}

	centers := mat.NewDense(k, dim, nil)
	selected := make([]bool, n)

	first := o.rng.Intn(n)
	centers.SetRow(0, x.RawRowView(first))
	selected[first] = true

	// minDistSq tracks each point's squared distance to its nearest chosen
	// center. Chosen rows sit at exact zero, so sum is the selectable mass.
	minDistSq := make([]float64, n)
	var sum float64
	for i := range n {
		d := distance.SquaredEuclidean(x.RawRowView(i), centers.RawRowView(0))
		minDistSq[i] = d
		sum += d
	}

	for c := 1; c < k; c++ {
		chosen := pickWeighted(o.rng, minDistSq, selected, sum)
		centers.SetRow(c, x.RawRowView(chosen))
		selected[chosen] = true

		// Update minDistSq incrementally (O(n) per center).
		sum = 0
		row := centers.RawRowView(c)
		for i := range n {
			d := distance.SquaredEuclidean(x.RawRowView(i), row)
			if d < minDistSq[i] {
				minDistSq[i] = d
			}
			sum += minDistSq[i]
		}
	}

	return centers, nil
}

// pickWeighted samples an unselected index with probability proportional to
// its weight. When all remaining weight is zero (every unchosen row
// coincides with a chosen center), it falls back to a uniform draw over the
// unselected indices.
func pickWeighted(rng *rand.Rand, weights []float64, selected []bool, sum float64) int {
	if sum > 0 {
		target := rng.Float64() * sum
		var cumsum float64
		for i, w := range weights {
			if selected[i] {
				continue
			}
			cumsum += w
			if cumsum >= target {
				return i
			}
		}
	}

	unselected := make([]int, 0, len(selected))
	for i, s := range selected {
		if !s {
			unselected = append(unselected, i)
		}
	}

	return unselected[rng.Intn(len(unselected))]
}
