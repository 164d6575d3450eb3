package distance

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch is a named error type for width mismatch between points and centers.
type ErrDimensionMismatch struct {
	Expected int // Columns of the points matrix
	Actual   int // Columns of the centers matrix
}

// Error returns the error message for dimension mismatch
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrCenterCount is a named error type for more centers than points.
type ErrCenterCount struct {
	Centers int
	Points  int
}

// Error returns the error message for a center surplus
func (e *ErrCenterCount) Error() string {
	return fmt.Sprintf("more centers than points: %d > %d", e.Centers, e.Points)
}

// Euclidean calculates the Euclidean (L2) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
// Uses SIMD acceleration when available.
func Euclidean(a, b []float64) float64 {
	return vek.Distance(a, b)
}

// SquaredEuclidean calculates the squared Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	d := vek.Distance(a, b)
	return d * d
}

func checkShapes(x, centers *mat.Dense) (n, k, dim int, err error) {
	n, dim = x.Dims()
	k, cd := centers.Dims()
	if cd != dim {
		return 0, 0, 0, &ErrDimensionMismatch{Expected: dim, Actual: cd}
	}
	if k > n {
		return 0, 0, 0, &ErrCenterCount{Centers: k, Points: n}
	}
	return n, k, dim, nil
}

// Pairwise returns the n×k matrix of Euclidean distances between every row of
// x and every row of centers.
func Pairwise(x, centers *mat.Dense) (*mat.Dense, error) {
	n, k, _, err := checkShapes(x, centers)
	if err != nil {
		return nil, err
	}

	d := mat.NewDense(n, k, nil)
	for i := range n {
		pairwiseRow(x.RawRowView(i), centers, k, d.RawRowView(i))
	}

	return d, nil
}

func pairwiseRow(xi []float64, centers *mat.Dense, k int, dst []float64) {
	for j := range k {
		dst[j] = vek.Distance(xi, centers.RawRowView(j))
	}
}

// PairwiseN computes the same matrix as Pairwise with the point rows split
// across workers goroutines. The row blocks are disjoint and every row goes
// through the scalar kernel, so the result is bit-identical to Pairwise.
func PairwiseN(x, centers *mat.Dense, workers int) (*mat.Dense, error) {
	if workers <= 1 {
		return Pairwise(x, centers)
	}

	n, k, _, err := checkShapes(x, centers)
	if err != nil {
		return nil, err
	}

	d := mat.NewDense(n, k, nil)

	g := new(errgroup.Group)
	g.SetLimit(workers)

	block := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += block {
		hi := min(lo+block, n)

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				pairwiseRow(x.RawRowView(i), centers, k, d.RawRowView(i))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return d, nil
}

// PairwiseBLAS computes the same matrix as Pairwise through the expansion
//
//	||x − c||² = ||x||² + ||c||² − 2·(x · c)
//
// with a single GEMM for the cross terms. Faster on wide data, but the
// floating-point rounding differs from the scalar kernel.
func PairwiseBLAS(x, centers *mat.Dense) (*mat.Dense, error) {
	n, k, dim, err := checkShapes(x, centers)
	if err != nil {
		return nil, err
	}

	xNorms := make([]float64, n)
	for i := range n {
		row := x.RawRowView(i)
		xNorms[i] = vek.Dot(row, row)
	}

	cNorms := make([]float64, k)
	for j := range k {
		row := centers.RawRowView(j)
		cNorms[j] = vek.Dot(row, row)
	}

	// dots[i*k+j] = x_i · c_j
	dots := make([]float64, n*k)

	xm := x.RawMatrix()
	cm := centers.RawMatrix()

	blas64.Gemm(
		blas.NoTrans, // op(A) = A
		blas.Trans,   // op(B) = B.T
		1.0,
		blas64.General{Rows: n, Cols: dim, Stride: xm.Stride, Data: xm.Data},
		blas64.General{Rows: k, Cols: dim, Stride: cm.Stride, Data: cm.Data},
		0.0,
		blas64.General{Rows: n, Cols: k, Stride: k, Data: dots},
	)

	d := mat.NewDense(n, k, nil)
	for i := range n {
		row := d.RawRowView(i)
		for j := range k {
			d2 := xNorms[i] + cNorms[j] - 2*dots[i*k+j]
			if d2 < 0 {
				d2 = 0 // Numerical stability
			}

			row[j] = math.Sqrt(d2)
		}
	}

	return d, nil
}

// Kernel represents the pairwise implementation used for distance matrices.
type Kernel int

const (
	KernelScalar Kernel = iota
	KernelBLAS
)

func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "Scalar"
	case KernelBLAS:
		return "BLAS"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// PairwiseFunc is a function type for pairwise distance calculation.
type PairwiseFunc func(x, centers *mat.Dense) (*mat.Dense, error)

// Provider returns the pairwise function for the given kernel.
func Provider(k Kernel) (PairwiseFunc, error) {
	switch k {
	case KernelScalar:
		return Pairwise, nil
	case KernelBLAS:
		return PairwiseBLAS, nil
	default:
		return nil, fmt.Errorf("unsupported kernel: %v", k)
	}
}
