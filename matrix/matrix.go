package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmpty is returned when the input holds no rows or no columns.
	ErrEmpty = errors.New("input contains no data")
)

// ErrNotRectangular indicates ragged input: a row whose column count differs
// from the first row's.
type ErrNotRectangular struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrNotRectangular) Error() string {
	return fmt.Sprintf("input is not rectangular: row %d has %d columns, expected %d", e.Row, e.Actual, e.Expected)
}

// ErrInvalidShape indicates a flat data slice that does not tile the
// requested rows×cols shape.
type ErrInvalidShape struct {
	Rows int
	Cols int
	Len  int
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid shape: %d values do not tile a %dx%d matrix", e.Len, e.Rows, e.Cols)
}

// ErrNonNumeric indicates a NaN entry, the float64 encoding of a missing or
// non-numeric value.
type ErrNonNumeric struct {
	Row int
	Col int
}

func (e *ErrNonNumeric) Error() string {
	return fmt.Sprintf("non-numeric value at row %d, column %d", e.Row, e.Col)
}

// FromRows copies a slice of equal-length float64 rows into a dense matrix.
// Rows are points, columns are dimensions.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)

	for i, row := range rows {
		if len(row) != cols {
			return nil, &ErrNotRectangular{Row: i, Expected: cols, Actual: len(row)}
		}
		data = append(data, row...)
	}

	m := mat.NewDense(len(rows), cols, data)
	if err := Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}

// FromRows32 widens float32 rows to float64 and converts them like FromRows.
func FromRows32(rows [][]float32) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)

	for i, row := range rows {
		if len(row) != cols {
			return nil, &ErrNotRectangular{Row: i, Expected: cols, Actual: len(row)}
		}
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	m := mat.NewDense(len(rows), cols, data)
	if err := Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}

// FromFlat copies a row-major data slice into a rows×cols dense matrix.
func FromFlat(data []float64, rows, cols int) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmpty
	}

	if len(data) != rows*cols {
		return nil, &ErrInvalidShape{Rows: rows, Cols: cols, Len: len(data)}
	}

	m := mat.NewDense(rows, cols, append([]float64(nil), data...))
	if err := Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}

// FromMatrix copies any gonum matrix into a validated dense matrix.
func FromMatrix(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrEmpty
	}

	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmpty
	}

	d := mat.DenseCopyOf(m)
	if err := Validate(d); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that m is non-empty and free of NaN entries.
func Validate(m *mat.Dense) error {
	if m == nil {
		return ErrEmpty
	}

	r, c := m.Dims()
	if r == 0 || c == 0 {
		return ErrEmpty
	}

	for i := range r {
		row := m.RawRowView(i)
		if !floats.HasNaN(row) {
			continue
		}
		for j, v := range row {
			if math.IsNaN(v) {
				return &ErrNonNumeric{Row: i, Col: j}
			}
		}
	}

	return nil
}
