package fdcsp

// Stats holds the three monotonic counters the with-stats feature flag
// enables: assigned_vars, validated_constraints, applied_arcs, named as
// such in spec.md §4.4. They are a pure observability hook with no effect
// on search outcome or on the assignment/domain invariants in spec.md §8.
type Stats struct {
	AssignedVars         uint64
	ValidatedConstraints uint64
	AppliedArcs          uint64
}

// Recorder mirrors Stats' three events into an external system, e.g.
// Prometheus via internal/metrics.NewPrometheus. A Recorder never
// influences search outcome. The default Recorder is a no-op.
type Recorder interface {
	AssignedVar()
	ValidatedConstraint()
	AppliedArc()
}

type noopRecorder struct{}

func (noopRecorder) AssignedVar()         {}
func (noopRecorder) ValidatedConstraint() {}
func (noopRecorder) AppliedArc()          {}

var _ Recorder = noopRecorder{}
