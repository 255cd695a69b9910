package dpll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRevertTopDecisionUndoesUnitsThenDecision(t *testing.T) {
	// (1 2) (-2 3): deciding 2=false deletes (-2 3) and shrinks (1 2) to
	// the unit clause (1), so the decision has a genuine unit consequence.
	f, err := NewFormula(3, [][]int{{1, 2}, {-2, 3}})
	require.NoError(t, err)
	before := snapshotFormula(f)

	s := newAssignmentStack(3)
	d := s.push(Assignment{varName: 2, oldVal: unassigned, newVal: assnFalse, kind: kindDecision})
	ok := f.propagate(d)
	require.True(t, ok)
	// Deciding 2=false makes (1 2) a unit clause on "1".
	ok = unitPropagate(f, s)
	require.True(t, ok)
	require.Equal(t, assnTrue, f.Variables[0].value) // var 1 forced true

	popped := revertTopDecision(f, s)
	require.Equal(t, 2, popped.varName)
	require.Equal(t, assnFalse, popped.newVal)
	require.True(t, s.isEmpty())

	after := snapshotFormula(f)
	require.Equal(t, before, after)
}

func TestRevertTopDecisionRequiresDecisionBeneathUnits(t *testing.T) {
	s := newAssignmentStack(2)
	s.push(Assignment{varName: 1, kind: kindUnit})
	f, err := NewFormula(1, nil)
	require.NoError(t, err)
	require.Panics(t, func() {
		revertTopDecision(f, s)
	})
}

func TestRevertTopDecisionPanicsOnEmptyStack(t *testing.T) {
	s := newAssignmentStack(1)
	f, err := NewFormula(1, nil)
	require.NoError(t, err)
	require.Panics(t, func() {
		revertTopDecision(f, s)
	})
}
