package kmeansgo

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/kmeansgo/distance"
)

// CalcCenters computes the next center matrix from a labeling: row j of the
// result is the per-dimension mean of the points labeled j. A cluster that
// received no points keeps a center anyway, reseeded on the row of x
// farthest from the old center j so the cluster cannot vanish permanently.
// The returned matrix is freshly allocated; centers is read, never written.
func CalcCenters(x, centers *mat.Dense, labels []int) (*mat.Dense, error) {
	if err := validateMatrix(x); err != nil {
		return nil, err
	}
	if err := validateMatrix(centers); err != nil {
		return nil, err
	}

	n, dim := x.Dims()
	k, cdim := centers.Dims()

	if cdim != dim {
		return nil, &ErrDimensionMismatch{Expected: dim, Actual: cdim}
	}
	if len(labels) != n {
		return nil, &ErrLengthMismatch{Expected: n, Actual: len(labels)}
	}

	next := mat.NewDense(k, dim, nil)
	counts := make([]int, k)

	for i, label := range labels {
		if label < 0 || label >= k {
			return nil, &ErrLabelRange{Index: i, Label: label, K: k}
		}
		counts[label]++
		floats.Add(next.RawRowView(label), x.RawRowView(i))
	}

	for j := range k {
		if counts[j] == 0 {
			next.SetRow(j, x.RawRowView(farthestFrom(x, centers.RawRowView(j))))
			continue
		}
		floats.Scale(1/float64(counts[j]), next.RawRowView(j))
	}

	return next, nil
}

// farthestFrom returns the index of the row of x farthest from center.
// floats.MaxIdx returns the first maximum, which keeps ties on the lowest
// point index.
func farthestFrom(x *mat.Dense, center []float64) int {
	n, _ := x.Dims()

	dists := make([]float64, n)
	for i := range n {
		dists[i] = distance.SquaredEuclidean(x.RawRowView(i), center)
	}

	return floats.MaxIdx(dists)
}

// Inertia returns the within-cluster sum of squared distances of a labeling:
// the total squared distance from each point to the center it is labeled
// with. Lower is tighter.
func Inertia(x, centers *mat.Dense, labels []int) (float64, error) {
	if err := validateMatrix(x); err != nil {
		return 0, err
	}
	if err := validateMatrix(centers); err != nil {
		return 0, err
	}

	n, dim := x.Dims()
	k, cdim := centers.Dims()

	if cdim != dim {
		return 0, &ErrDimensionMismatch{Expected: dim, Actual: cdim}
	}
	if len(labels) != n {
		return 0, &ErrLengthMismatch{Expected: n, Actual: len(labels)}
	}

	var total float64
	for i, label := range labels {
		if label < 0 || label >= k {
			return 0, &ErrLabelRange{Index: i, Label: label, K: k}
		}
		total += distance.SquaredEuclidean(x.RawRowView(i), centers.RawRowView(label))
	}

	return total, nil
}
