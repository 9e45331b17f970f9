// SPDX-License-Identifier: MIT
// Test-only bridges into unexported state for the qpdata_test package.

package qpdata

import "github.com/prometheus/client_golang/prometheus/testutil"

// OptionsSnapshot mirrors Options with exported fields for assertions.
type OptionsSnapshot struct {
	CheckSymmetry   bool
	SymmetryEps     float64
	CheckBoundOrder bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way New does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		CheckSymmetry:   o.checkSymmetry,
		SymmetryEps:     o.symmetryEps,
		CheckBoundOrder: o.checkBoundOrder,
	}
}

// UpdatesCount_TestOnly reads qpbuilder_setter_updates_total{field}.
func UpdatesCount_TestOnly(f Field) float64 {
	return testutil.ToFloat64(setterUpdatesTotal.WithLabelValues(fieldNames[f]))
}

// RejectionsCount_TestOnly reads qpbuilder_setter_rejections_total{field,reason}.
func RejectionsCount_TestOnly(f Field, reason string) float64 {
	return testutil.ToFloat64(setterRejectionsTotal.WithLabelValues(fieldNames[f], reason))
}

// HandoffsCount_TestOnly reads qpbuilder_problem_data_handoffs_total.
func HandoffsCount_TestOnly() float64 {
	return testutil.ToFloat64(problemDataHandoffsTotal)
}
