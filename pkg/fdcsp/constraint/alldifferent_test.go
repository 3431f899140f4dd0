package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdcsp/fdcsp/pkg/fdcsp"
	"github.com/fdcsp/fdcsp/pkg/fdcsp/constraint"
)

func buildAllDifferentModel(t *testing.T, n int) (*fdcsp.Model, []fdcsp.VarID) {
	t.Helper()
	m := fdcsp.NewModel()
	vars := make([]fdcsp.VarID, n)
	for i := range vars {
		vars[i] = m.AddIntVar(0, n)
	}
	m.AddConstraint(constraint.NewAllDifferent(vars...))
	m.FinalizeModel()
	return m, vars
}

func TestAllDifferentNeedsAtLeastTwoVars(t *testing.T) {
	assert.Panics(t, func() { constraint.NewAllDifferent() })
	assert.Panics(t, func() { constraint.NewAllDifferent(fdcsp.VarID(0)) })
}

func TestAllDifferentEvaluate(t *testing.T) {
	m, vars := buildAllDifferentModel(t, 3)
	a := fdcsp.NewAssignment(m)
	c := m.Variable(vars[0]).Constraints()[0]

	a.AssignVar(vars[0], 1)
	assert.Equal(t, fdcsp.Passed, c.Evaluate(a, vars[0]), "no other assigned yet")

	a.AssignVar(vars[1], 2)
	assert.Equal(t, fdcsp.Passed, c.Evaluate(a, vars[1]))

	a.AssignVar(vars[2], 1)
	assert.Equal(t, fdcsp.Failed, c.Evaluate(a, vars[2]))
}

func TestAllDifferentArcConsistencyExcludesFromOthers(t *testing.T) {
	m, vars := buildAllDifferentModel(t, 3)
	a := fdcsp.NewAssignment(m)
	c := m.Variable(vars[0]).Constraints()[0]

	a.PushCheckpoint()
	a.AssignVar(vars[0], 1)
	require.True(t, c.ApplyArcConsistency(a, vars[0]))

	assert.False(t, a.GetCurrentDomain(vars[1]).Contains(1))
	assert.False(t, a.GetCurrentDomain(vars[2]).Contains(1))
}

func TestAllDifferentArcConsistencyWipeout(t *testing.T) {
	m, vars := buildAllDifferentModel(t, 2)
	a := fdcsp.NewAssignment(m)
	// vars[1] domain forced to {0} so excluding 0 wipes it out.
	a.GetCurrentDomain(vars[1]).Intersect(0)
	c := m.Variable(vars[0]).Constraints()[0]

	a.PushCheckpoint()
	a.AssignVar(vars[0], 0)
	assert.False(t, c.ApplyArcConsistency(a, vars[0]))
}
