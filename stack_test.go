package dpll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignmentStackPushSetsDepth(t *testing.T) {
	s := newAssignmentStack(4)
	require.True(t, s.isEmpty())

	a1 := s.push(Assignment{varName: 1, newVal: assnTrue, kind: kindDecision})
	require.Equal(t, 1, a1.depth)
	require.Equal(t, 1, s.depth())

	a2 := s.push(Assignment{varName: 2, newVal: assnFalse, kind: kindUnit})
	require.Equal(t, 2, a2.depth)
	require.Equal(t, 2, s.depth())

	require.Equal(t, a2, s.peek())
}

func TestAssignmentStackPushPopLIFO(t *testing.T) {
	s := newAssignmentStack(4)
	s.push(Assignment{varName: 1})
	s.push(Assignment{varName: 2})
	s.push(Assignment{varName: 3})

	top := s.pop()
	require.Equal(t, 3, top.varName)
	require.Equal(t, 2, s.depth())

	top = s.pop()
	require.Equal(t, 2, top.varName)

	top = s.pop()
	require.Equal(t, 1, top.varName)
	require.True(t, s.isEmpty())
}

func TestAssignmentStackOverflowPanics(t *testing.T) {
	s := newAssignmentStack(1) // capacity 2
	s.push(Assignment{varName: 1})
	s.push(Assignment{varName: 2})
	require.Panics(t, func() {
		s.push(Assignment{varName: 3})
	})
}
