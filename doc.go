// Package kmeansgo implements K-means clustering with K-means++ seeding.
//
// The package clusters n points in d-dimensional space into k groups by
// alternating two steps until the centers settle: label every point with its
// nearest center, then move every center to the mean of its points.
//
// # Quick Start
//
//	x, _ := matrix.FromRows([][]float64{
//		{0, 0}, {0, 1}, {10, 10}, {10, 11},
//	})
//
//	centers, labels, err := kmeansgo.FitAssign(ctx, x, 2, kmeansgo.WithSeed(42))
//
// # Building Blocks
//
// The fit loop is composed from public pieces that can be called on their own:
//
//	centers, _ := kmeansgo.InitCenters(x, k)  // k-means++ seeding
//	d, _ := kmeansgo.MeasureDist(x, centers)  // n×k distance matrix
//	labels, _ := kmeansgo.Assign(x, centers)  // nearest-center labels
//	next, _ := kmeansgo.CalcCenters(x, centers, labels)
//
// # Reproducibility
//
// Seeding is random by design; restarts explore different optima. Pass
// WithSeed (or WithRand) to pin the draw:
//
//	centers, _ := kmeansgo.Fit(ctx, x, 3, kmeansgo.WithSeed(1))
//
// # Performance
//
//   - WithWorkers(n) splits the distance rows across goroutines without
//     changing the result.
//   - WithKernel(distance.KernelBLAS) computes distance matrices with a
//     single GEMM. Faster on wide data, different rounding.
//
// # Input Conversion
//
// The core operates on gonum *mat.Dense. The matrix subpackage converts
// loose tabular input (row slices, flat buffers, CSV) into validated
// matrices.
package kmeansgo
