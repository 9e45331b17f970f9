// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Provide a single source of truth for shape and symmetry checks on CSC values.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match them with errors.Is.
//
// Note:
//   - Composite validators run NotNil first, then the shape check.

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *CSC) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks NotNil → Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *CSC) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateShape checks NotNil → (Rows, Cols) == (rows, cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateShape(m *CSC, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if m.r != rows || m.c != cols {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("got %dx%d, want %dx%d: %w", m.r, m.c, rows, cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSymmetric checks Square → |m[i,j] - m[j,i]| <= eps for every stored entry.
// Missing mirror entries read as 0, so a structurally one-sided matrix fails
// unless the lone values are within eps of zero.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(nnz log nnz_col).
func ValidateSymmetric(m *CSC, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	raw := m.mat.RawMatrix()
	var j, k int
	var mirror float64
	for j = 0; j < m.c; j++ {
		for k = raw.Indptr[j]; k < raw.Indptr[j+1]; k++ {
			mirror, _ = m.At(j, raw.Ind[k]) // in range: m is square
			if math.Abs(raw.Data[k]-mirror) > eps {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("(%d,%d)=%g vs (%d,%d)=%g: %w", raw.Ind[k], j, raw.Data[k], j, raw.Ind[k], mirror, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateVecLen ensures a vector has exactly n elements.
// Errors: ErrNilMatrix for a nil vector, ErrDimensionMismatch otherwise.
func ValidateVecLen(x []float64, n int) error {
	if x == nil && n > 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}
