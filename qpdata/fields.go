// SPDX-License-Identifier: MIT

package qpdata

import (
	"math/bits"
	"strings"
)

// Field is a bitset of readiness flags, one bit per settable quantity.
type Field uint8

const (
	// FieldVariables marks the number of variables n.
	FieldVariables Field = 1 << iota
	// FieldConstraints marks the number of constraints m.
	FieldConstraints
	// FieldHessian marks the quadratic cost matrix P.
	FieldHessian
	// FieldGradient marks the linear cost vector q.
	FieldGradient
	// FieldConstraintMatrix marks the linear constraint matrix A.
	FieldConstraintMatrix
	// FieldLowerBound marks the lower bound vector l.
	FieldLowerBound
	// FieldUpperBound marks the upper bound vector u.
	FieldUpperBound
)

// AllFields is the accepting state: every quantity supplied.
const AllFields = FieldVariables | FieldConstraints | FieldHessian | FieldGradient |
	FieldConstraintMatrix | FieldLowerBound | FieldUpperBound

// fieldOrder fixes the iteration order for String and labels.
var fieldOrder = [...]Field{
	FieldVariables,
	FieldConstraints,
	FieldHessian,
	FieldGradient,
	FieldConstraintMatrix,
	FieldLowerBound,
	FieldUpperBound,
}

var fieldNames = map[Field]string{
	FieldVariables:        "variables",
	FieldConstraints:      "constraints",
	FieldHessian:          "hessian",
	FieldGradient:         "gradient",
	FieldConstraintMatrix: "constraint_matrix",
	FieldLowerBound:       "lower_bound",
	FieldUpperBound:       "upper_bound",
}

// Has reports whether every bit of g is set in f.
func (f Field) Has(g Field) bool { return f&g == g }

// Count returns the number of flags set.
func (f Field) Count() int { return bits.OnesCount8(uint8(f)) }

// String joins the names of the set flags with "|", or returns "none".
func (f Field) String() string {
	if f&AllFields == 0 {
		return "none"
	}
	names := make([]string, 0, len(fieldOrder))
	for _, g := range fieldOrder {
		if f&g != 0 {
			names = append(names, fieldNames[g])
		}
	}

	return strings.Join(names, "|")
}
