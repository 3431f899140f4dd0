package constraint

import "github.com/fdcsp/fdcsp/pkg/fdcsp"

// orEqualityConstraint enforces v0 == v1 || v0 == v2.
type orEqualityConstraint struct {
	v0, v1, v2 fdcsp.VarID
}

// NewOrEquality builds a constraint enforcing v0 == v1 || v0 == v2.
func NewOrEquality(v0, v1, v2 fdcsp.VarID) fdcsp.Constraint {
	return &orEqualityConstraint{v0: v0, v1: v1, v2: v2}
}

func (c *orEqualityConstraint) LinkVars(vars []*fdcsp.Variable) {
	vars[c.v0].Link(c)
	vars[c.v1].Link(c)
	vars[c.v2].Link(c)
}

func (c *orEqualityConstraint) Evaluate(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) fdcsp.Eval {
	if !a.IsAssigned(c.v0) || !a.IsAssigned(c.v1) || !a.IsAssigned(c.v2) {
		return fdcsp.NA
	}
	v0 := a.GetInstVarValue(c.v0)
	if v0 == a.GetInstVarValue(c.v1) || v0 == a.GetInstVarValue(c.v2) {
		return fdcsp.Passed
	}
	return fdcsp.Failed
}

// ApplyArcConsistency only acts when v0 is the unassigned variable and
// both v1, v2 are instantiated; any other configuration is a no-op, per
// the constraint's documented contract.
func (c *orEqualityConstraint) ApplyArcConsistency(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) bool {
	if a.IsAssigned(c.v0) || !a.IsAssigned(c.v1) || !a.IsAssigned(c.v2) {
		return true
	}
	v1, v2 := a.GetInstVarValue(c.v1), a.GetInstVarValue(c.v2)
	return a.MutateDomain(c.v0, func(d *fdcsp.Domain) { d.IntersectPair(v1, v2) })
}
