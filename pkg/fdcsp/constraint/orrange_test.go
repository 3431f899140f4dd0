package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fdcsp/fdcsp/pkg/fdcsp"
	"github.com/fdcsp/fdcsp/pkg/fdcsp/constraint"
)

func buildOrRangeModel(t *testing.T) (*fdcsp.Model, fdcsp.VarID, fdcsp.VarID) {
	t.Helper()
	m := fdcsp.NewModel()
	v0 := m.AddIntVar(0, 20)
	v1 := m.AddIntVar(0, 20)
	m.AddConstraint(constraint.NewOrRange(v0, v1, 5, 10))
	m.FinalizeModel()
	return m, v0, v1
}

func TestOrRangeEvaluate(t *testing.T) {
	m, v0, v1 := buildOrRangeModel(t)
	a := fdcsp.NewAssignment(m)
	c := m.Variable(v0).Constraints()[0]

	a.AssignVar(v0, 1)
	assert.Equal(t, fdcsp.NA, c.Evaluate(a, v0))

	a.AssignVar(v1, 7)
	assert.Equal(t, fdcsp.Passed, c.Evaluate(a, v0))

	a.UnAssignVar(v1)
	a.AssignVar(v1, 15)
	assert.Equal(t, fdcsp.Failed, c.Evaluate(a, v0))
}

func TestOrRangeArcConsistencyIsNoOp(t *testing.T) {
	m, v0, v1 := buildOrRangeModel(t)
	a := fdcsp.NewAssignment(m)
	c := m.Variable(v0).Constraints()[0]

	a.PushCheckpoint()
	a.AssignVar(v0, 1)
	before := a.GetCurrentDomain(v1).Candidates()
	assert.True(t, c.ApplyArcConsistency(a, v0))
	assert.Equal(t, before, a.GetCurrentDomain(v1).Candidates())
}
