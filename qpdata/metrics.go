// SPDX-License-Identifier: MIT

package qpdata

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	setterUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qpbuilder_setter_updates_total",
			Help: "Number of problem data pieces accepted by a builder setter.",
		},
		[]string{"field"},
	)
	setterRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qpbuilder_setter_rejections_total",
			Help: "Number of problem data pieces rejected by a builder setter.",
		},
		[]string{"field", "reason"},
	)
	problemDataHandoffsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qpbuilder_problem_data_handoffs_total",
			Help: "Number of complete problem definitions handed out by builders.",
		},
	)
)

// RegisterMetrics registers the builder counters with reg.
// Registering twice with the same registry is not an error.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		setterUpdatesTotal,
		setterRejectionsTotal,
		problemDataHandoffsTotal,
	} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}

	return nil
}
