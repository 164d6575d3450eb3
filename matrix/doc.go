// Package matrix converts loose tabular input into the validated dense
// float64 matrices consumed by the clustering core.
//
// It is the single adapter boundary between caller-supplied data (slices,
// gonum matrices, CSV streams) and the core routines, which only ever see a
// rectangular *mat.Dense with finite entries.
package matrix
