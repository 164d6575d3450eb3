package testutil

import (
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformMatrix generates an n×dim matrix with entries in range [0, 1).
func (r *RNG) UniformMatrix(n, dim int) *mat.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, n*dim)
	for i := range data {
		data[i] = r.rand.Float64()
	}

	return mat.NewDense(n, dim, data)
}

// GaussianMatrix generates an n×dim matrix with entries from a standard
// normal distribution.
func (r *RNG) GaussianMatrix(n, dim int) *mat.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, n*dim)
	for i := range data {
		data[i] = r.rand.NormFloat64()
	}

	return mat.NewDense(n, dim, data)
}

// ClusteredMatrix generates n points scattered around k random centers with
// Gaussian noise of the given spread. It returns the points and the
// ground-truth label of every point. Points are assigned to centers
// round-robin, so every cluster gets members as long as n >= k.
func (r *RNG) ClusteredMatrix(n, dim, k int, spread float64) (*mat.Dense, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([][]float64, k)
	for j := range centers {
		centers[j] = make([]float64, dim)
		for d := range centers[j] {
			centers[j][d] = r.rand.Float64()*20 - 10
		}
	}

	data := make([]float64, n*dim)
	labels := make([]int, n)

	for i := range n {
		label := i % k
		labels[i] = label

		row := data[i*dim : (i+1)*dim]
		for d := range row {
			row[d] = centers[label][d] + r.rand.NormFloat64()*spread
		}
	}

	return mat.NewDense(n, dim, data), labels
}
