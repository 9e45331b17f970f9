// Package highsqp hands a finished qpdata.ProblemData to the HiGHS solver
// through the github.com/lanl/highs binding.
//
// The OSQP-style problem
//
//	minimize ½·xᵀPx + qᵀx  subject to  l ≤ Ax ≤ u
//
// maps onto a HiGHS model with free columns, row bounds l/u, the constraint
// matrix A as ConstMatrix and the upper triangle of P as HessianMatrix.
//
// The binding uses cgo; building this package needs the HiGHS C library.
package highsqp
