package fdcsp

import "sort"

// savedDomain is a (VarID, Domain) snapshot used to restore current_domains
// after a failed search step.
type savedDomain struct {
	vid    VarID
	domain Domain
}

// Assignment is the mutable, per-search state the recursion in
// ForwardCheckingStep drives: instantiated values, current (shrunk)
// domains, the checkpoint stack that makes backtracking O(k), and the
// fixed variable-assignment order computed at Reset. A Model is read-only
// during search; each concurrent search needs its own Assignment.
type Assignment struct {
	model          *Model
	instValues     []int
	currentDomains []Domain
	checkpoints    [][]savedDomain
	assignedCount  int
	assignOrder    []VarID

	Stats        Stats
	statsEnabled bool
	recorder     Recorder
	tracer       Tracer
}

// Reset (re)initializes all per-search state from model. model must
// already be finalized. The assignment order is a permutation of VarIDs
// by ascending initial-domain size, VarID as tie-breaker, so that
// fixed/heavily-constrained variables are tried first and fail fast.
func (a *Assignment) Reset(model *Model) {
	if !model.Finalized() {
		misuse("cannot Reset an Assignment against a model that has not been FinalizeModel'd")
	}
	if a.tracer == nil {
		a.tracer = NoopTracer{}
	}
	if a.recorder == nil {
		a.recorder = noopRecorder{}
	}

	n := model.NumVars()
	a.model = model
	a.instValues = make([]int, n)
	for i := range a.instValues {
		a.instValues[i] = Unassigned
	}
	a.currentDomains = make([]Domain, n)
	for i, v := range model.variables {
		a.currentDomains[i] = v.initialDomain.Clone()
	}
	a.checkpoints = a.checkpoints[:0]
	a.assignedCount = 0
	a.assignOrder = assignOrderOf(model)
}

func assignOrderOf(model *Model) []VarID {
	order := make([]VarID, model.NumVars())
	for i := range order {
		order[i] = VarID(i)
	}
	sort.Slice(order, func(i, j int) bool {
		si := model.variables[order[i]].initialDomain.Size()
		sj := model.variables[order[j]].initialDomain.Size()
		if si != sj {
			return si < sj
		}
		return order[i] < order[j]
	})
	return order
}

// IsComplete reports whether every variable has been assigned.
func (a *Assignment) IsComplete() bool {
	return a.assignedCount == len(a.instValues)
}

// NextUnassignedVar returns the next variable to assign, per assignOrder.
func (a *Assignment) NextUnassignedVar() VarID {
	return a.assignOrder[a.assignedCount]
}

// GetInstVarValue returns vid's instantiated value, or Unassigned.
func (a *Assignment) GetInstVarValue(vid VarID) int {
	return a.instValues[vid]
}

// IsAssigned reports whether vid currently holds an instantiated value.
func (a *Assignment) IsAssigned(vid VarID) bool {
	return a.instValues[vid] != Unassigned
}

// GetCurrentDomain returns a mutable pointer to vid's current domain.
// Constraint implementations should prefer MutateDomain, which maintains
// the checkpoint invariant automatically; direct mutation through this
// pointer bypasses checkpointing, exactly as a raw reference would in the
// source this was distilled from.
func (a *Assignment) GetCurrentDomain(vid VarID) *Domain {
	return &a.currentDomains[vid]
}

// AssignVar instantiates vid to val.
func (a *Assignment) AssignVar(vid VarID, val int) {
	a.instValues[vid] = val
	a.assignedCount++
	if a.statsEnabled {
		a.Stats.AssignedVars++
	}
	a.recorder.AssignedVar()
}

// UnAssignVar reverts vid to Unassigned.
func (a *Assignment) UnAssignVar(vid VarID) {
	a.instValues[vid] = Unassigned
	a.assignedCount--
}

// ValidateVarConstraints iterates vid's linked constraints in insertion
// order and returns false the first time one Evaluates to Failed. NA and
// Passed both permit continuation.
func (a *Assignment) ValidateVarConstraints(vid VarID) bool {
	for _, c := range a.model.variables[vid].linkedConstraints {
		if a.statsEnabled {
			a.Stats.ValidatedConstraints++
		}
		a.recorder.ValidatedConstraint()
		if c.Evaluate(a, vid) == Failed {
			return false
		}
	}
	return true
}

// PushCheckpoint opens a fresh SavedDomainFrame on top of the checkpoint
// stack. ForwardCheckingStep calls this once per candidate value it tries
// and pops the frame before trying the next candidate; tests
// exercising a Constraint's ApplyArcConsistency in isolation need one
// active frame for MutateDomain/EnsureSavedDomain to snapshot into.
func (a *Assignment) PushCheckpoint() {
	a.checkpoints = append(a.checkpoints, nil)
}

// PopCheckpoint discards the top SavedDomainFrame without restoring it.
func (a *Assignment) PopCheckpoint() {
	a.checkpoints = a.checkpoints[:len(a.checkpoints)-1]
}

// EnsureSavedDomain snapshots vid's current domain into the active
// checkpoint frame, unless an entry for vid is already present in this
// frame (first-write-wins, so the snapshot always reflects vid's state on
// entry to this search step regardless of how many constraints touch it).
func (a *Assignment) EnsureSavedDomain(vid VarID) {
	frame := a.checkpoints[len(a.checkpoints)-1]
	for _, sd := range frame {
		if sd.vid == vid {
			return
		}
	}
	frame = append(frame, savedDomain{vid: vid, domain: a.currentDomains[vid].Clone()})
	a.checkpoints[len(a.checkpoints)-1] = frame
}

// RestoreSavedDomainStep copies every entry in the active checkpoint frame
// back into current_domains. It does not pop the frame.
func (a *Assignment) RestoreSavedDomainStep() {
	frame := a.checkpoints[len(a.checkpoints)-1]
	for _, sd := range frame {
		a.currentDomains[sd.vid] = sd.domain.Clone()
	}
}

// MutateDomain snapshots vid's current domain into the active checkpoint
// frame (EnsureSavedDomain), applies mutate, and reports whether the
// result is still non-empty. Every Constraint.ApplyArcConsistency
// implementation shrinks a domain through this helper rather than
// re-implementing the checkpoint-then-mutate-then-check-wipeout sequence
// the original repeats nearly verbatim in each of its five arc-consistency
// bodies.
func (a *Assignment) MutateDomain(vid VarID, mutate func(*Domain)) bool {
	a.EnsureSavedDomain(vid)
	d := &a.currentDomains[vid]
	mutate(d)
	return d.Size() > 0
}
