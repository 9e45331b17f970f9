// SPDX-License-Identifier: MIT

// Package qpdata - Builder: staged, validated assembly of solver problem data.
//
// Purpose:
//   - Track which of the seven quantities were supplied (Field bitset).
//   - Reject any piece whose shape contradicts the known n or m, without side effects.
//   - Hand out the finished definition only in the accepting state (AllFields).
//
// Complexity quicksheet:
//   - Dimension setters: O(1). Matrix setters: O(1), or O(nnz log nnz) with
//     WithSymmetryCheck. Vector setters: O(len). ProblemData: O(n + m).

package qpdata

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qpbuilder/sparse"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxNewSized         = "NewSized"
	ctxSetVariables     = "SetNumberOfVariables"
	ctxSetConstraints   = "SetNumberOfConstraints"
	ctxSetHessian       = "SetHessianMatrix"
	ctxSetGradient      = "SetGradient"
	ctxSetConstraintMat = "SetLinearConstraintsMatrix"
	ctxSetLowerBound    = "SetLowerBound"
	ctxSetUpperBound    = "SetUpperBound"
	ctxProblemData      = "ProblemData"
)

// Builder is the mutable draft of a QP problem definition plus its readiness flags.
// The zero value is not usable; construct with New or NewSized.
type Builder struct {
	opts  Options
	flags Field

	n, m        int
	hessian     *sparse.CSC // n×n, immutable once accepted
	gradient    []float64   // len n, owned copy
	constraints *sparse.CSC // m×n, immutable once accepted
	lower       []float64   // len m, owned copy
	upper       []float64   // len m, owned copy
}

// New returns an empty builder: no flags set, n and m unknown.
func New(opts ...Option) *Builder {
	return &Builder{opts: gatherOptions(opts...)}
}

// NewSized returns a builder with n and m already set (FieldVariables and
// FieldConstraints raised). Negative n or m yields ErrNegativeDimension.
func NewSized(n, m int, opts ...Option) (*Builder, error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewSized, n, m, ErrNegativeDimension)
	}
	b := New(opts...)
	b.n, b.m = n, m
	b.flags = FieldVariables | FieldConstraints

	return b, nil
}

// ---------- dimension bookkeeping ----------

// impliedVariables returns n as implied by accepted P, q or A.
// All accepted dependents agree, so the first one found is authoritative.
func (b *Builder) impliedVariables() (int, bool) {
	switch {
	case b.flags.Has(FieldHessian):
		return b.hessian.Cols(), true
	case b.flags.Has(FieldGradient):
		return len(b.gradient), true
	case b.flags.Has(FieldConstraintMatrix):
		return b.constraints.Cols(), true
	}
	return 0, false
}

// impliedConstraints returns m as implied by accepted A, l or u.
func (b *Builder) impliedConstraints() (int, bool) {
	switch {
	case b.flags.Has(FieldConstraintMatrix):
		return b.constraints.Rows(), true
	case b.flags.Has(FieldLowerBound):
		return len(b.lower), true
	case b.flags.Has(FieldUpperBound):
		return len(b.upper), true
	}
	return 0, false
}

// knownVariables returns the explicit n, falling back to the implied one.
func (b *Builder) knownVariables() (int, bool) {
	if b.flags.Has(FieldVariables) {
		return b.n, true
	}
	return b.impliedVariables()
}

// knownConstraints returns the explicit m, falling back to the implied one.
func (b *Builder) knownConstraints() (int, bool) {
	if b.flags.Has(FieldConstraints) {
		return b.m, true
	}
	return b.impliedConstraints()
}

// ---------- accept / reject ----------

// accept raises f and records the update.
func (b *Builder) accept(f Field) {
	b.flags |= f
	setterUpdatesTotal.WithLabelValues(fieldNames[f]).Inc()
	if b.flags == AllFields {
		b.opts.logger.V(2).Info("problem data complete", "variables", b.n, "constraints", b.m)
	}
}

// reject logs and counts a refused setter call and wraps err with the method tag.
func (b *Builder) reject(method string, f Field, err error) error {
	reason := reasonOf(err)
	setterRejectionsTotal.WithLabelValues(fieldNames[f], reason).Inc()
	b.opts.logger.V(1).Info("rejected problem data", "field", fieldNames[f], "reason", reason, "error", err.Error())

	return fmt.Errorf("Builder.%s: %w", method, err)
}

// ---------- setters ----------

// SetNumberOfVariables sets n.
// Fails with ErrNegativeDimension for n < 0 and with ErrDependentsSet when an
// accepted P, q or A has a different column count. Re-setting the same n succeeds.
func (b *Builder) SetNumberOfVariables(n int) error {
	if n < 0 {
		return b.reject(ctxSetVariables, FieldVariables, fmt.Errorf("n=%d: %w", n, ErrNegativeDimension))
	}
	if have, ok := b.impliedVariables(); ok && have != n {
		return b.reject(ctxSetVariables, FieldVariables,
			fmt.Errorf("n=%d, accepted data has %d variables: %w", n, have, ErrDependentsSet))
	}
	b.n = n
	b.accept(FieldVariables)

	return nil
}

// SetNumberOfConstraints sets m; the mirror of SetNumberOfVariables for A, l and u.
func (b *Builder) SetNumberOfConstraints(m int) error {
	if m < 0 {
		return b.reject(ctxSetConstraints, FieldConstraints, fmt.Errorf("m=%d: %w", m, ErrNegativeDimension))
	}
	if have, ok := b.impliedConstraints(); ok && have != m {
		return b.reject(ctxSetConstraints, FieldConstraints,
			fmt.Errorf("m=%d, accepted data has %d constraints: %w", m, have, ErrDependentsSet))
	}
	b.m = m
	b.accept(FieldConstraints)

	return nil
}

// SetHessianMatrix stores the quadratic cost matrix P.
// P must be square and, when n is known, n×n. Symmetry is assumed unless the
// builder was created WithSymmetryCheck.
func (b *Builder) SetHessianMatrix(p *sparse.CSC) error {
	if p == nil {
		return b.reject(ctxSetHessian, FieldHessian, ErrNilInput)
	}
	if p.Rows() != p.Cols() {
		return b.reject(ctxSetHessian, FieldHessian, fmt.Errorf("%dx%d: %w", p.Rows(), p.Cols(), ErrNonSquare))
	}
	if n, ok := b.knownVariables(); ok && p.Rows() != n {
		return b.reject(ctxSetHessian, FieldHessian,
			fmt.Errorf("got %dx%d, want %dx%d: %w", p.Rows(), p.Cols(), n, n, ErrDimensionMismatch))
	}
	if b.opts.checkSymmetry {
		if err := sparse.ValidateSymmetric(p, b.opts.symmetryEps); err != nil {
			return b.reject(ctxSetHessian, FieldHessian, fmt.Errorf("%w: %w", ErrAsymmetricHessian, err))
		}
	}
	b.hessian = p
	b.accept(FieldHessian)

	return nil
}

// SetGradient stores the linear cost vector q (copied).
// q must have length n when n is known; every entry must be finite.
func (b *Builder) SetGradient(q mat.Vector) error {
	vals, err := readVector(q, false)
	if err != nil {
		return b.reject(ctxSetGradient, FieldGradient, err)
	}
	if n, ok := b.knownVariables(); ok && len(vals) != n {
		return b.reject(ctxSetGradient, FieldGradient,
			fmt.Errorf("len %d, want %d: %w", len(vals), n, ErrDimensionMismatch))
	}
	b.gradient = vals
	b.accept(FieldGradient)

	return nil
}

// SetLinearConstraintsMatrix stores the m×n constraint matrix A.
// Rows are checked against a known m, columns against a known n.
func (b *Builder) SetLinearConstraintsMatrix(a *sparse.CSC) error {
	if a == nil {
		return b.reject(ctxSetConstraintMat, FieldConstraintMatrix, ErrNilInput)
	}
	if n, ok := b.knownVariables(); ok && a.Cols() != n {
		return b.reject(ctxSetConstraintMat, FieldConstraintMatrix,
			fmt.Errorf("got %d columns, want %d: %w", a.Cols(), n, ErrDimensionMismatch))
	}
	if m, ok := b.knownConstraints(); ok && a.Rows() != m {
		return b.reject(ctxSetConstraintMat, FieldConstraintMatrix,
			fmt.Errorf("got %d rows, want %d: %w", a.Rows(), m, ErrDimensionMismatch))
	}
	b.constraints = a
	b.accept(FieldConstraintMatrix)

	return nil
}

// SetLowerBound stores l (copied). Entries may be -Inf (unbounded) but not NaN.
func (b *Builder) SetLowerBound(l mat.Vector) error {
	vals, err := b.checkBound(l)
	if err != nil {
		return b.reject(ctxSetLowerBound, FieldLowerBound, err)
	}
	if b.opts.checkBoundOrder && b.flags.Has(FieldUpperBound) {
		if err = checkOrder(vals, b.upper); err != nil {
			return b.reject(ctxSetLowerBound, FieldLowerBound, err)
		}
	}
	b.lower = vals
	b.accept(FieldLowerBound)

	return nil
}

// SetUpperBound stores u (copied). Entries may be +Inf (unbounded) but not NaN.
func (b *Builder) SetUpperBound(u mat.Vector) error {
	vals, err := b.checkBound(u)
	if err != nil {
		return b.reject(ctxSetUpperBound, FieldUpperBound, err)
	}
	if b.opts.checkBoundOrder && b.flags.Has(FieldLowerBound) {
		if err = checkOrder(b.lower, vals); err != nil {
			return b.reject(ctxSetUpperBound, FieldUpperBound, err)
		}
	}
	b.upper = vals
	b.accept(FieldUpperBound)

	return nil
}

// checkBound reads a bound vector and checks its length against a known m.
func (b *Builder) checkBound(v mat.Vector) ([]float64, error) {
	vals, err := readVector(v, true)
	if err != nil {
		return nil, err
	}
	if m, ok := b.knownConstraints(); ok && len(vals) != m {
		return nil, fmt.Errorf("len %d, want %d: %w", len(vals), m, ErrDimensionMismatch)
	}

	return vals, nil
}

// checkOrder verifies lower[i] <= upper[i]; both have the same length here.
func checkOrder(lower, upper []float64) error {
	for i := range lower {
		if lower[i] > upper[i] {
			return fmt.Errorf("index %d: %g > %g: %w", i, lower[i], upper[i], ErrBoundOrder)
		}
	}
	return nil
}

// readVector copies v into a fresh slice. NaN is always rejected; ±Inf only
// when allowInf is false. A nil interface, or a nil pointer of any concrete
// vector type (whose Len or AtVec panics), yields ErrNilInput.
func readVector(v mat.Vector, allowInf bool) (out []float64, err error) {
	if v == nil {
		return nil, ErrNilInput
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("unreadable vector (%v): %w", r, ErrNilInput)
		}
	}()
	out = make([]float64, v.Len())
	var x float64
	for i := range out {
		x = v.AtVec(i)
		if math.IsNaN(x) || (!allowInf && math.IsInf(x, 0)) {
			return nil, fmt.Errorf("index %d: %w", i, ErrNaNInf)
		}
		out[i] = x
	}

	return out, nil
}

// ---------- state management ----------

// Unset clears the given flags and drops the data they guarded.
// This is the only way, besides Reset, to change n or m after dependents
// were accepted.
func (b *Builder) Unset(fields Field) {
	if fields.Has(FieldVariables) {
		b.n = 0
	}
	if fields.Has(FieldConstraints) {
		b.m = 0
	}
	if fields.Has(FieldHessian) {
		b.hessian = nil
	}
	if fields.Has(FieldGradient) {
		b.gradient = nil
	}
	if fields.Has(FieldConstraintMatrix) {
		b.constraints = nil
	}
	if fields.Has(FieldLowerBound) {
		b.lower = nil
	}
	if fields.Has(FieldUpperBound) {
		b.upper = nil
	}
	b.flags &^= fields
}

// Reset returns the builder to the empty state. Options are kept.
func (b *Builder) Reset() {
	b.Unset(AllFields)
}

// ---------- queries ----------

// IsSet reports whether all seven quantities have been supplied.
func (b *Builder) IsSet() bool { return b.flags == AllFields }

// Has reports whether every flag in f is set.
func (b *Builder) Has(f Field) bool { return b.flags.Has(f) }

// Flags returns the current readiness bitset.
func (b *Builder) Flags() Field { return b.flags }

// Missing returns the flags still unset.
func (b *Builder) Missing() Field { return AllFields &^ b.flags }

// ProblemData returns a snapshot of the finished definition.
// Before IsSet is true it returns ErrIncomplete naming the missing fields
// and never a partial definition. Later setter calls do not affect the snapshot.
func (b *Builder) ProblemData() (*ProblemData, error) {
	if !b.IsSet() {
		err := fmt.Errorf("missing %s: %w", b.Missing(), ErrIncomplete)
		b.opts.logger.V(1).Info("problem data requested before complete", "missing", b.Missing().String())
		return nil, fmt.Errorf("Builder.%s: %w", ctxProblemData, err)
	}
	problemDataHandoffsTotal.Inc()

	return &ProblemData{
		n:           b.n,
		m:           b.m,
		hessian:     b.hessian,
		gradient:    append([]float64(nil), b.gradient...),
		constraints: b.constraints,
		lower:       append([]float64(nil), b.lower...),
		upper:       append([]float64(nil), b.upper...),
	}, nil
}

// MustProblemData is ProblemData that panics when the definition is incomplete.
func (b *Builder) MustProblemData() *ProblemData {
	d, err := b.ProblemData()
	if err != nil {
		panic(err)
	}
	return d
}

// Release hands the finished definition over and resets the builder, so
// nothing the caller now owns can be reached through b afterwards.
func (b *Builder) Release() (*ProblemData, error) {
	d, err := b.ProblemData()
	if err != nil {
		return nil, err
	}
	b.Reset()

	return d, nil
}
