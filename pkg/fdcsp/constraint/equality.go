package constraint

import "github.com/fdcsp/fdcsp/pkg/fdcsp"

// equalityConstraint enforces v0 == v1.
type equalityConstraint struct {
	v0, v1 fdcsp.VarID
}

// NewEquality builds a constraint enforcing v0 == v1.
func NewEquality(v0, v1 fdcsp.VarID) fdcsp.Constraint {
	return &equalityConstraint{v0: v0, v1: v1}
}

func (c *equalityConstraint) LinkVars(vars []*fdcsp.Variable) {
	vars[c.v0].Link(c)
	vars[c.v1].Link(c)
}

func (c *equalityConstraint) Evaluate(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) fdcsp.Eval {
	if !a.IsAssigned(c.v0) || !a.IsAssigned(c.v1) {
		return fdcsp.NA
	}
	if a.GetInstVarValue(c.v0) == a.GetInstVarValue(c.v1) {
		return fdcsp.Passed
	}
	return fdcsp.Failed
}

func (c *equalityConstraint) ApplyArcConsistency(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) bool {
	v0Assigned, v1Assigned := a.IsAssigned(c.v0), a.IsAssigned(c.v1)
	if v0Assigned == v1Assigned {
		return true
	}
	if v1Assigned {
		val := a.GetInstVarValue(c.v1)
		return a.MutateDomain(c.v0, func(d *fdcsp.Domain) { d.Intersect(val) })
	}
	val := a.GetInstVarValue(c.v0)
	return a.MutateDomain(c.v1, func(d *fdcsp.Domain) { d.Intersect(val) })
}
