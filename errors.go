package kmeansgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmeansgo/distance"
	"github.com/hupe1980/kmeansgo/matrix"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrKExceedsPoints is returned when k is larger than the number of points.
	ErrKExceedsPoints = errors.New("k exceeds number of points")

	// ErrEmptyInput is returned when an input matrix is nil or holds no data.
	ErrEmptyInput = errors.New("input contains no data")
)

// ErrDimensionMismatch indicates that points and centers disagree on width.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrCenterCount indicates more centers than data points.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCenterCount struct {
	Centers int
	Points  int
	cause   error
}

func (e *ErrCenterCount) Error() string {
	return fmt.Sprintf("more centers (%d) than data points (%d)", e.Centers, e.Points)
}

func (e *ErrCenterCount) Unwrap() error { return e.cause }

// ErrLengthMismatch indicates a label vector whose length differs from the
// number of points.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d labels, got %d", e.Expected, e.Actual)
}

// ErrLabelRange indicates a label value outside [0, k).
type ErrLabelRange struct {
	Index int // Position in the label vector
	Label int
	K     int
}

func (e *ErrLabelRange) Error() string {
	return fmt.Sprintf("label out of range: labels[%d] = %d, want [0, %d)", e.Index, e.Label, e.K)
}

// ErrNonNumeric indicates a NaN in the data.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrNonNumeric struct {
	Row   int
	Col   int
	cause error
}

func (e *ErrNonNumeric) Error() string {
	return fmt.Sprintf("non-numeric value at row %d, column %d", e.Row, e.Col)
}

func (e *ErrNonNumeric) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Empty input unification.
	if errors.Is(err, matrix.ErrEmpty) {
		return fmt.Errorf("%w: %w", ErrEmptyInput, err)
	}

	// Shape and data normalization.
	var dm *distance.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var cc *distance.ErrCenterCount
	if errors.As(err, &cc) {
		return &ErrCenterCount{Centers: cc.Centers, Points: cc.Points, cause: err}
	}
	var nn *matrix.ErrNonNumeric
	if errors.As(err, &nn) {
		return &ErrNonNumeric{Row: nn.Row, Col: nn.Col, cause: err}
	}

	return err
}
