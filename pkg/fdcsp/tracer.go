package fdcsp

import "github.com/go-logr/logr"

// Tracer observes backtrack points during search. It is purely an
// observability hook: no Tracer implementation may affect search outcome.
type Tracer interface {
	// TraceBacktrack is called whenever ForwardCheckingStep abandons a
	// candidate value for vid, either because it failed validation, a
	// constraint's arc consistency wiped out a domain, or the recursive
	// step beneath it exhausted. reason is a short, static description of
	// which of those occurred.
	TraceBacktrack(vid VarID, val int, reason string)
}

// NoopTracer discards every trace event. It is the default.
type NoopTracer struct{}

func (NoopTracer) TraceBacktrack(VarID, int, string) {}

var _ Tracer = NoopTracer{}

// LogrTracer logs each backtrack point at verbosity level 1 through a
// github.com/go-logr/logr.Logger, the structured logger the teacher wires
// in elsewhere (pkg/deppy/input/catalogsource).
type LogrTracer struct {
	Logger logr.Logger
}

func (t LogrTracer) TraceBacktrack(vid VarID, val int, reason string) {
	t.Logger.V(1).Info("backtrack", "var", int(vid), "value", val, "reason", reason)
}

var _ Tracer = LogrTracer{}
