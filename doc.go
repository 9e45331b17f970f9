// Package qpbuilder assembles validated problem definitions for quadratic
// programming solvers.
//
// A QP in solver form is
//
//	minimize ½·xᵀPx + qᵀx  subject to  l ≤ Ax ≤ u
//
// and a solver needs seven pieces of it before it can run: n, m, P, q, A, l, u.
// qpbuilder makes sure all seven are present and mutually consistent before
// anything reaches solver code.
//
// Under the hood, everything is organized under three subpackages:
//
//	sparse/  — immutable CSC matrices, triplet assembly, gonum interop, validators
//	qpdata/  — Builder with readiness flags and the finished ProblemData record
//	highsqp/ — hand-off of a ProblemData to the HiGHS solver (cgo)
//
//	go get github.com/katalvlaran/qpbuilder/qpdata
package qpbuilder
