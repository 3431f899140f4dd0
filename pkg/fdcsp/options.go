package fdcsp

// Option configures an Assignment at construction time. This mirrors the
// functional-options shape the teacher uses for its solver
// (internal/solver/solve.go's Option/WithInput/WithTracer/defaults).
type Option func(*Assignment)

// WithTracer installs a Tracer to observe backtrack points during search.
func WithTracer(t Tracer) Option {
	return func(a *Assignment) { a.tracer = t }
}

// WithStats enables the three monotonic counters exposed via
// Assignment.Stats. Without it, Stats stays zeroed.
func WithStats() Option {
	return func(a *Assignment) { a.statsEnabled = true }
}

// WithRecorder installs a Recorder that mirrors the same counters
// WithStats enables into an external system, e.g. Prometheus via
// internal/metrics.NewPrometheus.
func WithRecorder(r Recorder) Option {
	return func(a *Assignment) { a.recorder = r }
}

// NewAssignment allocates an Assignment, applies opts, and resets it
// against model. Reset itself stays option-free, exactly as spec.md §4.4's
// Assignment::Reset(model) names it; NewAssignment is sugar for
// configuring a tracer/recorder/stats once and reusing it across repeated
// Reset calls against the same or a different model.
func NewAssignment(model *Model, opts ...Option) *Assignment {
	a := &Assignment{tracer: NoopTracer{}, recorder: noopRecorder{}}
	for _, opt := range opts {
		opt(a)
	}
	a.Reset(model)
	return a
}
