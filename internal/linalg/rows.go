// Package linalg holds small dense-matrix helpers on [][]float64.
package linalg

import (
	"fmt"

	"github.com/san-kum/numkit/internal/numeric"
)

// RowMultiply scales row i of m by v[i]. m must be rectangular with one
// entry of v per row. The input is not modified.
func RowMultiply(m [][]float64, v []float64) ([][]float64, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", numeric.ErrInvalidArgument)
	}
	if len(v) != len(m) {
		return nil, fmt.Errorf("%w: %d rows but %d multipliers", numeric.ErrInvalidArgument, len(m), len(v))
	}

	cols := len(m[0])
	out := make([][]float64, len(m))
	for i, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", numeric.ErrInvalidArgument, i, len(row), cols)
		}
		out[i] = make([]float64, cols)
		for j, x := range row {
			out[i][j] = x * v[i]
		}
	}
	return out, nil
}
