// Package distance computes Euclidean distances between rows of dense matrices.
//
// The package offers interchangeable pairwise kernels:
//
//   - KernelScalar: row-by-row SIMD distance (default)
//   - KernelBLAS: a single GEMM over the expansion ||x||² + ||c||² − 2·x·c
//
// plus PairwiseN, which splits the scalar kernel across worker goroutines
// without changing its output. All kernels produce an n×k matrix whose entry
// (i, j) is the Euclidean distance between point i and center j.
//
// # Usage
//
//	d, err := distance.Pairwise(x, centers)
//	kernel, err := distance.Provider(distance.KernelBLAS)
package distance
