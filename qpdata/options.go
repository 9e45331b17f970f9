// SPDX-License-Identifier: MIT

// Package qpdata: functional configuration for Builder.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).
package qpdata

import (
	"math"

	"github.com/go-logr/logr"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSymmetryCheck leaves Hessian symmetry to the caller.
	DefaultSymmetryCheck = false

	// DefaultSymmetryEpsilon is the tolerance used by WithSymmetryCheck callers
	// that have no better value.
	DefaultSymmetryEpsilon = 1e-9

	// DefaultBoundOrderCheck leaves l ≤ u to the caller.
	DefaultBoundOrderCheck = false
)

const panicEpsilonInvalid = "qpdata: WithSymmetryCheck: eps must be finite, non-negative"

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options is the effective Builder configuration after applying Option setters.
type Options struct {
	checkSymmetry   bool
	symmetryEps     float64
	checkBoundOrder bool
	logger          logr.Logger
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		checkSymmetry:   DefaultSymmetryCheck,
		symmetryEps:     DefaultSymmetryEpsilon,
		checkBoundOrder: DefaultBoundOrderCheck,
		logger:          logr.Discard(),
	}
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSymmetryCheck makes SetHessianMatrix reject matrices with
// |P[i,j] - P[j,i]| > eps. Panics if eps is negative or not finite.
func WithSymmetryCheck(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.checkSymmetry = true
		o.symmetryEps = eps
	}
}

// WithBoundOrderCheck makes SetLowerBound / SetUpperBound reject a vector
// that violates l[i] ≤ u[i] against an already accepted counterpart.
func WithBoundOrderCheck() Option {
	return func(o *Options) { o.checkBoundOrder = true }
}

// WithLogger routes Builder diagnostics to l.
// Rejections log at V(1), completion at V(2).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}
