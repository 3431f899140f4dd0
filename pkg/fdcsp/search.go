package fdcsp

// ForwardCheckingStep runs one level of the backtracking search described
// in spec.md §4.5: pick the next unassigned variable (per Assignment's
// fixed order), try each of its current-domain candidates in enumeration
// order, and for each candidate validate then forward-check every other
// still-unassigned variable's domain against the constraints the
// candidate's variable participates in. It recurses on success and
// restores the checkpointed domains on failure before trying the next
// candidate.
//
// It returns true iff a returns from this call with every variable
// assigned (a.IsComplete()); on false, a's instantiated values and
// current domains are restored to exactly what they were on entry.
func ForwardCheckingStep(a *Assignment) bool {
	if a.IsComplete() {
		return true
	}

	vid := a.NextUnassignedVar()
	domain := a.GetCurrentDomain(vid)
	candidates := domain.Candidates()

	for _, val := range candidates {
		a.PushCheckpoint()

		a.AssignVar(vid, val)

		reason := "candidate failed constraint validation"
		ok := a.ValidateVarConstraints(vid)
		if ok {
			reason = "arc consistency wiped out a domain"
			ok = forwardCheckOthers(a, vid)
		}
		if ok {
			reason = "no consistent assignment for remaining variables"
			ok = ForwardCheckingStep(a)
		}

		if ok {
			a.PopCheckpoint()
			return true
		}

		a.UnAssignVar(vid)
		a.RestoreSavedDomainStep()
		a.PopCheckpoint()
		a.tracer.TraceBacktrack(vid, val, reason)
	}

	return false
}

// forwardCheckOthers applies arc consistency for every constraint linked
// to vid against all other currently unassigned variables, returning
// false the instant any domain is driven empty.
func forwardCheckOthers(a *Assignment, vid VarID) bool {
	for _, c := range a.model.variables[vid].linkedConstraints {
		if a.statsEnabled {
			a.Stats.AppliedArcs++
		}
		a.recorder.AppliedArc()
		if !c.ApplyArcConsistency(a, vid) {
			return false
		}
	}
	return true
}
