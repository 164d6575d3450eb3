package kmeansgo

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/kmeansgo/distance"
)

// MeasureDist returns the n×k matrix of Euclidean distances between every
// row of x and every row of centers. Entry (i, j) is the distance from point
// i to center j.
func MeasureDist(x, centers *mat.Dense, optFns ...Option) (*mat.Dense, error) {
	o := applyOptions(optFns)
	return measureDist(x, centers, &o)
}

func measureDist(x, centers *mat.Dense, o *options) (*mat.Dense, error) {
	if err := validateMatrix(x); err != nil {
		return nil, err
	}
	if err := validateMatrix(centers); err != nil {
		return nil, err
	}

	if o.workers > 1 && o.kernel == distance.KernelScalar {
		d, err := distance.PairwiseN(x, centers, o.workers)
		return d, translateError(err)
	}

	pairwise, err := distance.Provider(o.kernel)
	if err != nil {
		return nil, err
	}

	d, err := pairwise(x, centers)
	return d, translateError(err)
}

// Assign labels every row of x with the index of its nearest center. Ties
// break to the lowest center index.
func Assign(x, centers *mat.Dense, optFns ...Option) ([]int, error) {
	o := applyOptions(optFns)

	labels, err := assign(x, centers, &o)
	o.logger.LogAssign(context.Background(), numRows(x), numRows(centers), err)

	return labels, err
}

func assign(x, centers *mat.Dense, o *options) ([]int, error) {
	d, err := measureDist(x, centers, o)
	if err != nil {
		return nil, err
	}

	return labelsFromDistances(d), nil
}

// labelsFromDistances takes the row-wise argmin of a distance matrix.
// floats.MinIdx returns the first minimum, which keeps ties on the lowest
// center index.
func labelsFromDistances(d *mat.Dense) []int {
	n, _ := d.Dims()

	labels := make([]int, n)
	for i := range n {
		labels[i] = floats.MinIdx(d.RawRowView(i))
	}

	return labels
}
