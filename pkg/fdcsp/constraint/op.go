package constraint

import "github.com/fdcsp/fdcsp/pkg/fdcsp"

// Op is the comparison operator an OpConstraint enforces.
type Op int

const (
	Equal Op = iota
	NotEqual
	GreaterOrEqual
	Greater
	LessOrEqual
	Less
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case GreaterOrEqual:
		return ">="
	case Greater:
		return ">"
	case LessOrEqual:
		return "<="
	case Less:
		return "<"
	default:
		return "?"
	}
}

// opConstraint enforces v0 op (v1 + offset).
type opConstraint struct {
	v0, v1 fdcsp.VarID
	op     Op
	offset int
}

// NewOp builds a constraint enforcing v0 op (v1 + offset).
func NewOp(v0, v1 fdcsp.VarID, op Op, offset int) fdcsp.Constraint {
	return &opConstraint{v0: v0, v1: v1, op: op, offset: offset}
}

func (c *opConstraint) LinkVars(vars []*fdcsp.Variable) {
	vars[c.v0].Link(c)
	vars[c.v1].Link(c)
}

func (c *opConstraint) holds(v0, v1 int) bool {
	rhs := v1 + c.offset
	switch c.op {
	case Equal:
		return v0 == rhs
	case NotEqual:
		return v0 != rhs
	case GreaterOrEqual:
		return v0 >= rhs
	case Greater:
		return v0 > rhs
	case LessOrEqual:
		return v0 <= rhs
	case Less:
		return v0 < rhs
	default:
		return false
	}
}

func (c *opConstraint) Evaluate(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) fdcsp.Eval {
	if !a.IsAssigned(c.v0) || !a.IsAssigned(c.v1) {
		return fdcsp.NA
	}
	if c.holds(a.GetInstVarValue(c.v0), a.GetInstVarValue(c.v1)) {
		return fdcsp.Passed
	}
	return fdcsp.Failed
}

func (c *opConstraint) ApplyArcConsistency(a *fdcsp.Assignment, lastAssigned fdcsp.VarID) bool {
	v0Assigned, v1Assigned := a.IsAssigned(c.v0), a.IsAssigned(c.v1)
	if v0Assigned == v1Assigned {
		return true
	}
	if v1Assigned {
		rhs := a.GetInstVarValue(c.v1) + c.offset
		return a.MutateDomain(c.v0, func(d *fdcsp.Domain) {
			switch c.op {
			case Equal:
				d.Intersect(rhs)
			case NotEqual:
				d.Exclude(rhs)
			case GreaterOrEqual:
				d.ExcludeInf(rhs)
			case Greater:
				d.ExcludeInf(rhs + 1)
			case LessOrEqual:
				d.ExcludeSup(rhs + 1)
			case Less:
				d.ExcludeSup(rhs)
			}
		})
	}

	// v0 is fixed, v1 unassigned: v0 op (v1+offset) is equivalent to
	// v1 mirror(op) (v0-offset), e.g. "v0 > v1+offset" becomes
	// "v1 < v0-offset".
	lhs := a.GetInstVarValue(c.v0) - c.offset
	return a.MutateDomain(c.v1, func(d *fdcsp.Domain) {
		switch c.op {
		case Equal:
			d.Intersect(lhs)
		case NotEqual:
			d.Exclude(lhs)
		case GreaterOrEqual:
			d.ExcludeSup(lhs + 1)
		case Greater:
			d.ExcludeSup(lhs)
		case LessOrEqual:
			d.ExcludeInf(lhs)
		case Less:
			d.ExcludeInf(lhs + 1)
		}
	})
}
