// SPDX-License-Identifier: MIT

package qpdata

import (
	"fmt"

	"github.com/katalvlaran/qpbuilder/sparse"
)

// ProblemData is a finished, immutable QP definition in the layout solvers
// consume: counts, P and A in CSC form, and plain q, l, u arrays.
// Obtain one from Builder.ProblemData or Builder.Release.
type ProblemData struct {
	n, m        int
	hessian     *sparse.CSC
	gradient    []float64
	constraints *sparse.CSC
	lower       []float64
	upper       []float64
}

// NumberOfVariables returns n.
func (d *ProblemData) NumberOfVariables() int { return d.n }

// NumberOfConstraints returns m.
func (d *ProblemData) NumberOfConstraints() int { return d.m }

// Hessian returns P exactly as it was supplied.
func (d *ProblemData) Hessian() *sparse.CSC { return d.hessian }

// UpperHessian returns the upper triangle of P, the form OSQP and HiGHS store.
func (d *ProblemData) UpperHessian() *sparse.CSC { return d.hessian.UpperTriangle() }

// Gradient returns a copy of q.
func (d *ProblemData) Gradient() []float64 { return append([]float64(nil), d.gradient...) }

// LinearConstraints returns A.
func (d *ProblemData) LinearConstraints() *sparse.CSC { return d.constraints }

// LowerBound returns a copy of l.
func (d *ProblemData) LowerBound() []float64 { return append([]float64(nil), d.lower...) }

// UpperBound returns a copy of u.
func (d *ProblemData) UpperBound() []float64 { return append([]float64(nil), d.upper...) }

// Validate re-checks the shape invariants of d. A ProblemData produced by a
// Builder always passes; solver adapters call it on whatever they receive.
func (d *ProblemData) Validate() error {
	if d == nil {
		return fmt.Errorf("ProblemData.Validate: %w", ErrNilInput)
	}
	checks := []struct {
		name string
		err  error
	}{
		{"hessian", sparse.ValidateShape(d.hessian, d.n, d.n)},
		{"gradient", sparse.ValidateVecLen(d.gradient, d.n)},
		{"constraint matrix", sparse.ValidateShape(d.constraints, d.m, d.n)},
		{"lower bound", sparse.ValidateVecLen(d.lower, d.m)},
		{"upper bound", sparse.ValidateVecLen(d.upper, d.m)},
	}
	for _, c := range checks {
		if c.err != nil {
			return fmt.Errorf("ProblemData.Validate: %s: %w: %w", c.name, ErrDimensionMismatch, c.err)
		}
	}

	return nil
}
