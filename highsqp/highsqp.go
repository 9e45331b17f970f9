// SPDX-License-Identifier: MIT

package highsqp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qpbuilder/qpdata"
	"github.com/katalvlaran/qpbuilder/sparse"
	"github.com/lanl/highs"
)

// ErrNotOptimal is returned when HiGHS finishes without an optimal solution.
var ErrNotOptimal = errors.New("highsqp: solver did not reach optimality")

// Result is the primal solution of a solved problem.
type Result struct {
	Status    string    // HiGHS model status, e.g. "Optimal"
	X         []float64 // primal values, len n
	Objective float64   // ½·xᵀPx + qᵀx at X
}

// nonzeros converts CSC entries to HiGHS triplets.
func nonzeros(m *sparse.CSC) []highs.Nonzero {
	ts := m.Triplets()
	out := make([]highs.Nonzero, len(ts))
	for k, t := range ts {
		out[k] = highs.Nonzero{Row: t.Row, Col: t.Col, Val: t.Val}
	}
	return out
}

// filled returns n copies of v.
func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Model converts d into a HiGHS model. d is validated first.
func Model(d *qpdata.ProblemData) (*highs.Model, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("highsqp.Model: %w", err)
	}
	n := d.NumberOfVariables()

	return &highs.Model{
		ColCosts:      d.Gradient(),
		ColLower:      filled(n, math.Inf(-1)),
		ColUpper:      filled(n, math.Inf(1)),
		RowLower:      d.LowerBound(),
		RowUpper:      d.UpperBound(),
		ConstMatrix:   nonzeros(d.LinearConstraints()),
		HessianMatrix: nonzeros(d.UpperHessian()),
	}, nil
}

// Solve builds the HiGHS model for d and solves it.
// A status other than Optimal yields ErrNotOptimal together with the status.
func Solve(d *qpdata.ProblemData) (*Result, error) {
	model, err := Model(d)
	if err != nil {
		return nil, err
	}
	sol, err := model.Solve()
	if err != nil {
		return nil, fmt.Errorf("highsqp.Solve: %w", err)
	}
	if sol.Status != highs.Optimal {
		return nil, fmt.Errorf("highsqp.Solve: status %s: %w", sol.Status.String(), ErrNotOptimal)
	}

	return &Result{
		Status:    sol.Status.String(),
		X:         append([]float64(nil), sol.ColumnPrimal...),
		Objective: sol.Objective,
	}, nil
}
