package gate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// setsAccepted tracks accepted writes per field
	setsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardrail_gate_accepted_total",
			Help: "Total number of accepted field writes",
		},
		[]string{"field"},
	)

	// setsRejected tracks rejected writes per field
	setsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardrail_gate_rejected_total",
			Help: "Total number of rejected field writes",
		},
		[]string{"field"},
	)

	// trailEvictions tracks audit entries displaced by the capacity bound
	trailEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "guardrail_trail_evicted_total",
			Help: "Total number of audit entries evicted by the capacity bound",
		},
	)

	// watcherChecks tracks readiness probe calls
	watcherChecks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "guardrail_watcher_checks_total",
			Help: "Total number of readiness probe calls",
		},
	)

	// watcherReady tracks watchers that observed readiness
	watcherReady = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "guardrail_watcher_ready_total",
			Help: "Total number of watchers that observed readiness",
		},
	)
)
