// SPDX-License-Identifier: MIT
// Package qpdata: sentinel error set.
// Setters wrap these with the method context ("Builder.SetGradient: ...");
// callers match them with errors.Is.

package qpdata

import "errors"

var (
	// ErrNegativeDimension is returned when n or m is below zero.
	ErrNegativeDimension = errors.New("qpdata: dimension must be >= 0")

	// ErrNilInput indicates a nil matrix or vector argument.
	ErrNilInput = errors.New("qpdata: nil matrix or vector")

	// ErrNonSquare signals a Hessian whose row and column counts differ.
	ErrNonSquare = errors.New("qpdata: hessian is not square")

	// ErrDimensionMismatch indicates a shape that conflicts with a known n or m.
	ErrDimensionMismatch = errors.New("qpdata: dimension mismatch")

	// ErrNaNInf signals a NaN entry, or an infinite entry where only finite
	// values are allowed (bounds accept ±Inf).
	ErrNaNInf = errors.New("qpdata: NaN or Inf encountered")

	// ErrDependentsSet is returned when n or m would contradict data already accepted.
	ErrDependentsSet = errors.New("qpdata: dimension conflicts with data already set")

	// ErrAsymmetricHessian signals a Hessian rejected by the opt-in symmetry check.
	ErrAsymmetricHessian = errors.New("qpdata: hessian is not symmetric")

	// ErrBoundOrder signals l[i] > u[i] under the opt-in bound-order check.
	ErrBoundOrder = errors.New("qpdata: lower bound exceeds upper bound")

	// ErrIncomplete is returned when problem data is requested before every field is set.
	ErrIncomplete = errors.New("qpdata: problem data incomplete")
)

// reasonOf maps an error to the short label used in logs and metrics.
func reasonOf(err error) string {
	switch {
	case errors.Is(err, ErrNegativeDimension):
		return "negative_dimension"
	case errors.Is(err, ErrNilInput):
		return "nil_input"
	case errors.Is(err, ErrNonSquare):
		return "non_square"
	case errors.Is(err, ErrDimensionMismatch):
		return "dimension_mismatch"
	case errors.Is(err, ErrNaNInf):
		return "nan_inf"
	case errors.Is(err, ErrDependentsSet):
		return "dependents_set"
	case errors.Is(err, ErrAsymmetricHessian):
		return "asymmetric"
	case errors.Is(err, ErrBoundOrder):
		return "bound_order"
	case errors.Is(err, ErrIncomplete):
		return "incomplete"
	default:
		return "unknown"
	}
}
