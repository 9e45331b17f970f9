// Package qpdata assembles the problem definition consumed by a quadratic
// programming solver of the form
//
//	minimize    ½·xᵀPx + qᵀx
//	subject to  l ≤ Ax ≤ u
//
// Overview:
//
//   - Builder accumulates seven pieces of data: the number of variables n,
//     the number of constraints m, the Hessian P (n×n), the gradient q (len n),
//     the constraint matrix A (m×n), and the bounds l, u (len m).
//   - One readiness flag (Field) per piece records what has been supplied.
//   - Every setter checks the new piece against the dimensions already known and
//     either stores it (flag set, last write wins) or returns an error and leaves
//     the builder exactly as it was.
//   - ProblemData hands out an immutable snapshot only when all seven flags are set.
//
// Dimension policy:
//
//   - n is known once SetNumberOfVariables ran, or once P, q or A was accepted
//     (their shape implies n). m is known from SetNumberOfConstraints, A, l or u.
//   - Setting n or m to a value that contradicts already accepted data fails
//     with ErrDependentsSet. Clear the dependents with Unset (or Reset) first.
//   - Flags never revert on their own; only Unset and Reset clear them.
//
// Caller contract:
//
//   - P is assumed symmetric and l ≤ u element-wise. Neither is checked unless
//     WithSymmetryCheck / WithBoundOrderCheck is given.
//   - A Builder is not safe for concurrent use. Queries (IsSet, Flags,
//     ProblemData) may run concurrently with each other, never with a setter.
//
// Errors (sentinel):
//
//   - ErrNegativeDimension  n or m below zero.
//   - ErrNilInput           nil matrix or vector.
//   - ErrNonSquare          Hessian with rows != cols.
//   - ErrDimensionMismatch  shape conflicts with a known n or m.
//   - ErrNaNInf             NaN anywhere, or ±Inf outside the bounds.
//   - ErrDependentsSet      n or m change contradicts accepted data.
//   - ErrAsymmetricHessian  symmetry check enabled and violated.
//   - ErrBoundOrder         bound-order check enabled and l[i] > u[i].
//   - ErrIncomplete         ProblemData requested before every flag is set.
//
// Example usage:
//
//	b, err := qpdata.NewSized(2, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = b.SetHessianMatrix(p)
//	_ = b.SetGradient(mat.NewVecDense(2, []float64{1, 1}))
//	...
//	data, err := b.ProblemData()
package qpdata
