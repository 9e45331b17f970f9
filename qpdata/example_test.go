package qpdata_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qpbuilder/qpdata"
	"github.com/katalvlaran/qpbuilder/sparse"
	"gonum.org/v1/gonum/mat"
)

// ExampleBuilder assembles
//
//	minimize  2x² + xy + y² + x + y
//	s.t.      x + y = 1,  0 ≤ x ≤ 0.7,  0 ≤ y ≤ 0.7
func ExampleBuilder() {
	b, err := qpdata.NewSized(2, 3)
	if err != nil {
		fmt.Println(err)
		return
	}

	p, _ := sparse.NewCSC(2, 2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 4}, {Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 1}, {Row: 1, Col: 1, Val: 2},
	})
	a, _ := sparse.NewCSC(3, 2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 1},
		{Row: 2, Col: 1, Val: 1},
	})

	_, err = b.ProblemData()
	fmt.Println(errors.Is(err, qpdata.ErrIncomplete))

	_ = b.SetHessianMatrix(p)
	_ = b.SetGradient(mat.NewVecDense(2, []float64{1, 1}))
	_ = b.SetLinearConstraintsMatrix(a)
	_ = b.SetLowerBound(mat.NewVecDense(3, []float64{1, 0, 0}))
	_ = b.SetUpperBound(mat.NewVecDense(3, []float64{1, 0.7, 0.7}))
	fmt.Println(b.IsSet())

	d, err := b.ProblemData()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.NumberOfVariables(), d.NumberOfConstraints(), d.UpperHessian().NNZ())
	// Output:
	// true
	// true
	// 2 3 3
}

// ExampleBuilder_SetNumberOfVariables shows the reject-on-conflict policy.
func ExampleBuilder_SetNumberOfVariables() {
	b := qpdata.New()
	id, _ := sparse.Identity(2)
	_ = b.SetHessianMatrix(id)

	err := b.SetNumberOfVariables(3)
	fmt.Println(errors.Is(err, qpdata.ErrDependentsSet))

	b.Unset(qpdata.FieldHessian)
	fmt.Println(b.SetNumberOfVariables(3) == nil)
	// Output:
	// true
	// true
}
