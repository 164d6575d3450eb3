// Package testutil provides deterministic data generators for tests and
// benchmarks.
//
// All generators hang off a seeded RNG, so test data is reproducible:
//
//	rng := testutil.NewRNG(42)
//	x := rng.UniformMatrix(100, 8)
//	x, labels := rng.ClusteredMatrix(100, 8, 4, 0.5)
//
// ClusteredMatrix returns the ground-truth labeling alongside the points,
// which makes it easy to check that a fit recovers a known structure.
package testutil
