// Package metrics provides the optional Prometheus-backed counters behind
// the solver's with-stats feature flag. Prometheus satisfies
// github.com/fdcsp/fdcsp/pkg/fdcsp.Recorder structurally: this package
// never imports fdcsp, so there is no import cycle between the core
// package and its metrics backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "fdcsp"
	subsystem = "search"
)

// Prometheus records assigned-variable, validated-constraint, and
// applied-arc-consistency events as Prometheus counters, registered
// against the supplied Registerer rather than the global
// DefaultRegisterer so that tests and multiple solver instances in the
// same process don't collide on registration.
type Prometheus struct {
	assignedVars         prometheus.Counter
	validatedConstraints prometheus.Counter
	appliedArcs          prometheus.Counter
}

// NewPrometheus builds a Prometheus-backed Recorder registered against reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		assignedVars: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "assigned_vars_total",
			Help:      "Number of variable assignments made during search.",
		}),
		validatedConstraints: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "validated_constraints_total",
			Help:      "Number of constraint Evaluate calls made during search.",
		}),
		appliedArcs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "applied_arcs_total",
			Help:      "Number of ApplyArcConsistency calls made during search.",
		}),
	}
}

func (p *Prometheus) AssignedVar()         { p.assignedVars.Inc() }
func (p *Prometheus) ValidatedConstraint() { p.validatedConstraints.Inc() }
func (p *Prometheus) AppliedArc()          { p.appliedArcs.Inc() }
