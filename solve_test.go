package dpll

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenarios exercises §8's six literal DIMACS end-to-end scenarios.
func TestScenarios(t *testing.T) {
	for _, tt := range []struct {
		name string
		cnf  string
		sat  bool
	}{
		{
			name: "single positive unit",
			cnf:  "p cnf 1 1\n1 0\n",
			sat:  true,
		},
		{
			name: "unit polar pair",
			cnf:  "p cnf 1 2\n1 0\n-1 0\n",
			sat:  false,
		},
		{
			name: "three-var three-clause satisfiable",
			cnf:  "p cnf 3 3\n1 2 3 0\n-1 -2 0\n-3 0\n",
			sat:  true,
		},
		{
			name: "all four 2-clauses over two vars",
			cnf:  "p cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n",
			sat:  false,
		},
		{
			name: "comments exercised",
			cnf:  "p cnf 3 2\nc comment\nc another\n1 -2 3 0\n-1 2 -3 0\n",
			sat:  true,
		},
		{
			name: "cascading unit propagation and backtrack",
			cnf:  "p cnf 4 6\n1 2 0\n-1 3 0\n-2 3 0\n-3 4 0\n-3 -4 0\n1 -2 0\n",
			sat:  false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			nVars, clauses, err := ParseDIMACS(strings.NewReader(tt.cnf))
			require.NoError(t, err)
			result, err := SolveContext(context.Background(), nVars, clauses)
			require.NoError(t, err)
			require.Equal(t, tt.sat, result.SAT)
			if result.SAT {
				requireSatisfies(t, clauses, result.Assignment)
			}
		})
	}
}

// TestSolveIsDeterministic is §8's P7: the same input produces the same
// verdict (and, since decision order is fully tie-broken, the same
// assignment) across repeated runs.
func TestSolveIsDeterministic(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-2, 3}, {-3, 4}, {1, -4}}
	var first *Result
	for i := 0; i < 5; i++ {
		result, err := Solve(clauses)
		require.NoError(t, err)
		if first == nil {
			first = result
		} else {
			require.Equal(t, first.SAT, result.SAT)
			require.Equal(t, first.Assignment, result.Assignment)
		}
	}
}

// TestSolveSatisfiesEveryClause is §8's P4.
func TestSolveSatisfiesEveryClause(t *testing.T) {
	for _, clauses := range [][][]int{
		{{1, 2, 3}, {-1, 2}, {-2, -3}, {1, -3}},
		{{1}, {2, 3}, {-2, 3}},
		{{-1, -2, -3, -4}, {1, 2}, {3, 4}},
	} {
		result, err := Solve(clauses)
		require.NoError(t, err)
		if result.SAT {
			requireSatisfies(t, clauses, result.Assignment)
		}
	}
}

func requireSatisfies(t *testing.T, clauses [][]int, assignment []int) {
	t.Helper()
	vars := make(map[int]bool)
	for _, lit := range assignment {
		if lit < 0 {
			vars[-lit] = false
		} else {
			vars[lit] = true
		}
	}
clauseLoop:
	for _, cls := range clauses {
		for _, lit := range cls {
			name := lit
			want := true
			if name < 0 {
				name = -name
				want = false
			}
			if vars[name] == want {
				continue clauseLoop
			}
		}
		t.Fatalf("clause %v not satisfied by assignment %v", cls, assignment)
	}
}
