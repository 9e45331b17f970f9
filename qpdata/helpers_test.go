// SPDX-License-Identifier: MIT
// Package qpdata_test contains unit tests for the problem data builder.
//
// Tests here run sequentially: the builder counters are package globals and
// the metrics tests assert exact deltas.
package qpdata_test

import (
	"testing"

	"github.com/katalvlaran/qpbuilder/qpdata"
	"github.com/katalvlaran/qpbuilder/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// vec builds a gonum vector over a private copy of vals (len(vals) > 0).
func vec(vals ...float64) *mat.VecDense {
	return mat.NewVecDense(len(vals), append([]float64(nil), vals...))
}

// csc builds a sparse matrix from dense row-major data, failing the test on error.
func csc(t *testing.T, rows, cols int, data ...float64) *sparse.CSC {
	t.Helper()
	m, err := sparse.FromDense(mat.NewDense(rows, cols, data), 0)
	require.NoError(t, err)
	return m
}

// hessian2 is the symmetric 2×2 matrix [[4 1] [1 2]].
func hessian2(t *testing.T) *sparse.CSC {
	return csc(t, 2, 2, 4, 1, 1, 2)
}

// constraints3x2 is a 3×2 constraint matrix.
func constraints3x2(t *testing.T) *sparse.CSC {
	return csc(t, 3, 2,
		1, 1,
		1, 0,
		0, 1,
	)
}

// completeSized returns a NewSized(2, 3) builder with every field supplied.
func completeSized(t *testing.T, opts ...qpdata.Option) *qpdata.Builder {
	t.Helper()
	b, err := qpdata.NewSized(2, 3, opts...)
	require.NoError(t, err)
	require.NoError(t, b.SetHessianMatrix(hessian2(t)))
	require.NoError(t, b.SetGradient(vec(1, 1)))
	require.NoError(t, b.SetLinearConstraintsMatrix(constraints3x2(t)))
	require.NoError(t, b.SetLowerBound(vec(1, 0, 0)))
	require.NoError(t, b.SetUpperBound(vec(1, 0.7, 0.7)))
	require.True(t, b.IsSet())
	return b
}

// column is a minimal mat.Vector implementation outside gonum.
type column struct{ data []float64 }

func (c *column) Dims() (int, int)    { return len(c.data), 1 }
func (c *column) At(i, _ int) float64 { return c.data[i] }
func (c *column) T() mat.Matrix       { return mat.Transpose{Matrix: c} }
func (c *column) Len() int            { return len(c.data) }
func (c *column) AtVec(i int) float64 { return c.data[i] }
