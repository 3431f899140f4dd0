package constraint

import "github.com/fdcsp/fdcsp/pkg/fdcsp"

// allDifferentConstraint enforces pairwise inequality among vars.
type allDifferentConstraint struct {
	vars []fdcsp.VarID
}

// NewAllDifferent builds a constraint enforcing pairwise inequality among
// vars. Panics if fewer than two variables are given.
func NewAllDifferent(vars ...fdcsp.VarID) fdcsp.Constraint {
	if len(vars) < 2 {
		panic(&fdcsp.ModelMisuseError{Msg: "AllDifferentConstraint needs at least two variables"})
	}
	return &allDifferentConstraint{vars: append([]fdcsp.VarID(nil), vars...)}
}

func (c *allDifferentConstraint) LinkVars(modelVars []*fdcsp.Variable) {
	for _, vid := range c.vars {
		modelVars[vid].Link(c)
	}
}

// Evaluate short-circuits on lastAssigned: since every earlier assignment
// already passed this same check against its predecessors, it is
// sufficient to compare lastAssigned's value against every other
// currently instantiated member.
func (c *allDifferentConstraint) Evaluate(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) fdcsp.Eval {
	if lastAssigned == fdcsp.Invalid || !a.IsAssigned(lastAssigned) {
		return fdcsp.NA
	}
	val := a.GetInstVarValue(lastAssigned)
	for _, vid := range c.vars {
		if vid == lastAssigned || !a.IsAssigned(vid) {
			continue
		}
		if a.GetInstVarValue(vid) == val {
			return fdcsp.Failed
		}
	}
	return fdcsp.Passed
}

func (c *allDifferentConstraint) ApplyArcConsistency(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) bool {
	val := a.GetInstVarValue(lastAssigned)
	ok := true
	for _, vid := range c.vars {
		if vid == lastAssigned || a.IsAssigned(vid) {
			continue
		}
		if !a.MutateDomain(vid, func(d *fdcsp.Domain) { d.Exclude(val) }) {
			ok = false
		}
	}
	return ok
}
