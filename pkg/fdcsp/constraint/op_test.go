package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdcsp/fdcsp/pkg/fdcsp"
	"github.com/fdcsp/fdcsp/pkg/fdcsp/constraint"
)

func buildOpModel(t *testing.T, op constraint.Op, offset int) (*fdcsp.Model, fdcsp.VarID, fdcsp.VarID) {
	t.Helper()
	m := fdcsp.NewModel()
	v0 := m.AddIntVar(0, 10)
	v1 := m.AddIntVar(0, 10)
	m.AddConstraint(constraint.NewOp(v0, v1, op, offset))
	m.FinalizeModel()
	return m, v0, v1
}

func TestOpConstraintEvaluate(t *testing.T) {
	m, v0, v1 := buildOpModel(t, constraint.Greater, 2)
	a := fdcsp.NewAssignment(m)

	assert.Equal(t, fdcsp.NA, m.Variable(v0).Constraints()[0].Evaluate(a, v0))

	a.AssignVar(v0, 9)
	a.AssignVar(v1, 3)
	assert.Equal(t, fdcsp.Passed, m.Variable(v0).Constraints()[0].Evaluate(a, v0))

	a.UnAssignVar(v0)
	a.AssignVar(v0, 1)
	assert.Equal(t, fdcsp.Failed, m.Variable(v0).Constraints()[0].Evaluate(a, v0))
}

func TestOpConstraintArcConsistencyGreater(t *testing.T) {
	// v0 > v1+2, v1 fixed via assignment to 3 -> v0 must exclude values <= 5.
	m, v0, v1 := buildOpModel(t, constraint.Greater, 2)
	a := fdcsp.NewAssignment(m)

	a.PushCheckpoint()
	a.AssignVar(v1, 3)
	c := m.Variable(v1).Constraints()[0]
	require.True(t, c.ApplyArcConsistency(a, v1))

	d := a.GetCurrentDomain(v0)
	assert.False(t, d.Contains(5))
	assert.True(t, d.Contains(6))
}

func TestOpConstraintArcConsistencyMirroredWhenV0Fixed(t *testing.T) {
	// v0 > v1+2, v0 fixed to 9 -> v1 must exclude values >= 7.
	m, v0, v1 := buildOpModel(t, constraint.Greater, 2)
	a := fdcsp.NewAssignment(m)

	a.PushCheckpoint()
	a.AssignVar(v0, 9)
	c := m.Variable(v0).Constraints()[0]
	require.True(t, c.ApplyArcConsistency(a, v0))

	d := a.GetCurrentDomain(v1)
	assert.False(t, d.Contains(7))
	assert.True(t, d.Contains(6))
}

func TestOpConstraintArcConsistencyWipeout(t *testing.T) {
	m, _, v1 := buildOpModel(t, constraint.Greater, 20)
	a := fdcsp.NewAssignment(m)

	a.PushCheckpoint()
	a.AssignVar(v1, 3)
	c := m.Variable(v1).Constraints()[0]
	assert.False(t, c.ApplyArcConsistency(a, v1))
}
