package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

type csvOptions struct {
	comma  rune
	header bool
}

// CSVOption configures FromCSV.
type CSVOption func(*csvOptions)

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(c rune) CSVOption {
	return func(o *csvOptions) {
		o.comma = c
	}
}

// WithHeader skips the first record instead of parsing it as data.
func WithHeader() CSVOption {
	return func(o *csvOptions) {
		o.header = true
	}
}

// FromCSV parses a numeric CSV stream into a dense matrix. Every field must
// parse as a float64 and every record must have the same number of fields.
func FromCSV(r io.Reader, opts ...CSVOption) (*mat.Dense, error) {
	o := csvOptions{comma: ','}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true

	if o.header {
		if _, err := cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmpty
			}
			return nil, fmt.Errorf("read csv header: %w", err)
		}
	}

	var (
		data []float64
		cols int
		rows int
	)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, &ErrNotRectangular{Row: rows, Expected: cols, Actual: len(record)}
			}
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		if rows == 0 {
			cols = len(record)
			if cols == 0 {
				return nil, ErrEmpty
			}
			data = make([]float64, 0, cols*64)
		}

		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ErrNonNumeric{Row: rows, Col: j}
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 {
		return nil, ErrEmpty
	}

	m := mat.NewDense(rows, cols, data)
	if err := Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}
