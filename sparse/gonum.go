// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromDense compresses any gonum matrix into CSC form.
// Entries with |v| <= tol are dropped; a negative tol is treated as 0,
// which keeps every non-zero. Non-finite entries yield ErrNaNInf.
// Complexity: O(rows*cols).
func FromDense(a mat.Matrix, tol float64) (*CSC, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromDense, ErrNilMatrix)
	}
	if tol < 0 || math.IsNaN(tol) {
		tol = 0
	}
	rows, cols := a.Dims()
	var (
		i, j    int
		v       float64
		entries []Triplet
	)
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			v = a.At(i, j)
			if isNonFinite(v) {
				return nil, fmt.Errorf("%s: (%d,%d): %w", ctxFromDense, i, j, ErrNaNInf)
			}
			if math.Abs(v) <= tol {
				continue
			}
			entries = append(entries, Triplet{Row: i, Col: j, Val: v})
		}
	}

	return NewCSC(rows, cols, entries)
}

// ToDense expands m into a gonum dense matrix.
// Zero-sized matrices map to an empty *mat.Dense (IsEmpty() == true),
// since gonum cannot allocate a 0-length Dense.
func (m *CSC) ToDense() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}

	return m.mat.ToDense()
}
