package constraint

import "github.com/fdcsp/fdcsp/pkg/fdcsp"

// combinedEqualityConstraint enforces v0 == v1 + v2 - v3.
type combinedEqualityConstraint struct {
	v0, v1, v2, v3 fdcsp.VarID
}

// NewCombinedEquality builds a constraint enforcing v0 == v1 + v2 - v3.
func NewCombinedEquality(v0, v1, v2, v3 fdcsp.VarID) fdcsp.Constraint {
	return &combinedEqualityConstraint{v0: v0, v1: v1, v2: v2, v3: v3}
}

func (c *combinedEqualityConstraint) LinkVars(vars []*fdcsp.Variable) {
	vars[c.v0].Link(c)
	vars[c.v1].Link(c)
	vars[c.v2].Link(c)
	vars[c.v3].Link(c)
}

func (c *combinedEqualityConstraint) Evaluate(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) fdcsp.Eval {
	if !a.IsAssigned(c.v0) || !a.IsAssigned(c.v1) || !a.IsAssigned(c.v2) || !a.IsAssigned(c.v3) {
		return fdcsp.NA
	}
	v1, v2, v3 := a.GetInstVarValue(c.v1), a.GetInstVarValue(c.v2), a.GetInstVarValue(c.v3)
	if a.GetInstVarValue(c.v0) == v1+v2-v3 {
		return fdcsp.Passed
	}
	return fdcsp.Failed
}

// ApplyArcConsistency only acts when v0 is unassigned and v1, v2, v3 are
// all instantiated; any other configuration is a no-op. Note the third
// operand read is v3, not v2: the source this was distilled from
// mistakenly re-read v2 in this branch, a bug this implementation does
// not reproduce.
func (c *combinedEqualityConstraint) ApplyArcConsistency(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) bool {
	if a.IsAssigned(c.v0) || !a.IsAssigned(c.v1) || !a.IsAssigned(c.v2) || !a.IsAssigned(c.v3) {
		return true
	}
	v1, v2, v3 := a.GetInstVarValue(c.v1), a.GetInstVarValue(c.v2), a.GetInstVarValue(c.v3)
	return a.MutateDomain(c.v0, func(d *fdcsp.Domain) { d.Intersect(v1 + v2 - v3) })
}
