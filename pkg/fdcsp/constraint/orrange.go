package constraint

import "github.com/fdcsp/fdcsp/pkg/fdcsp"

// orRangeConstraint enforces v0 in [rmin, rmax) || v1 in [rmin, rmax).
type orRangeConstraint struct {
	v0, v1     fdcsp.VarID
	rmin, rmax int
}

// NewOrRange builds a constraint enforcing v0 in [rmin, rmax) || v1 in
// [rmin, rmax).
func NewOrRange(v0, v1 fdcsp.VarID, rmin, rmax int) fdcsp.Constraint {
	return &orRangeConstraint{v0: v0, v1: v1, rmin: rmin, rmax: rmax}
}

func (c *orRangeConstraint) LinkVars(vars []*fdcsp.Variable) {
	vars[c.v0].Link(c)
	vars[c.v1].Link(c)
}

func (c *orRangeConstraint) inRange(v int) bool {
	return v >= c.rmin && v < c.rmax
}

func (c *orRangeConstraint) Evaluate(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) fdcsp.Eval {
	if !a.IsAssigned(c.v0) || !a.IsAssigned(c.v1) {
		return fdcsp.NA
	}
	if c.inRange(a.GetInstVarValue(c.v0)) || c.inRange(a.GetInstVarValue(c.v1)) {
		return fdcsp.Passed
	}
	return fdcsp.Failed
}

// ApplyArcConsistency is a no-op. The stronger propagation rule (when
// exactly one side is instantiated and falls outside the range, the
// other side's domain must be intersected with the range) is optional
// and not implemented here; correctness of the search does not depend
// on it, only on Evaluate eventually catching a violated disjunction.
func (c *orRangeConstraint) ApplyArcConsistency(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) bool {
	return true
}
