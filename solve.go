package dpll

import (
	"context"
	"fmt"
)

// Stats carries purely informational counters from a solve. The set of
// fields may grow over time; callers should not depend on it being
// exhaustive.
type Stats struct {
	Variables        int
	Clauses          int
	Decisions        int
	UnitPropagations int
	Backtracks       int
}

// Result is the outcome of a solve: whether the formula is satisfiable and,
// if so, a satisfying assignment in the same signed-literal convention as
// the input (§6's Output contract only requires the SAT/UNSAT verdict;
// Assignment is populated as the permitted extension).
type Result struct {
	SAT        bool
	Assignment []int
	Stats      Stats
}

// solver holds the search driver's state: the formula store, the
// assignment stack, and running stats. It has a single owner and is not
// safe for concurrent use (§5).
type solver struct {
	formula *Formula
	stack   *assignmentStack
	stats   Stats
}

func newSolver(f *Formula) *solver {
	return &solver{
		formula: f,
		stack:   newAssignmentStack(len(f.Variables)),
		stats: Stats{
			Variables: len(f.Variables),
			Clauses:   len(f.Clauses),
		},
	}
}

// Solve determines whether a CNF formula is satisfiable. problem is a list
// of clauses, each a list of signed non-zero integers (positive k = var k,
// negative k = ¬var k). The variable count is taken to be the largest
// variable name mentioned in problem.
func Solve(problem [][]int) (*Result, error) {
	return SolveContext(context.Background(), maxVar(problem), problem)
}

// SolveContext is Solve with an explicit variable count (as given by a
// DIMACS "p cnf N M" header, which may mention more variables than actually
// appear in any clause) and a cancellation context. ctx is checked each time
// the search picks a new decision variable, not before the FALSE retries made
// while backtracking; canceling it aborts the search with ctx.Err(). This is the
// deadline hook §5 permits but does not require.
func SolveContext(ctx context.Context, nVars int, problem [][]int) (*Result, error) {
	f, err := NewFormula(nVars, problem)
	if err != nil {
		return nil, err
	}
	sv := newSolver(f)
	sat, err := sv.solve(ctx)
	if err != nil {
		return nil, err
	}
	res := &Result{SAT: sat, Stats: sv.stats}
	if sat {
		res.Assignment = sv.assignment()
	}
	return res, nil
}

func maxVar(problem [][]int) int {
	max := 0
	for _, cls := range problem {
		for _, n := range cls {
			if n < 0 {
				n = -n
			}
			if n > max {
				max = n
			}
		}
	}
	return max
}

// assignment reads out the final truth values as signed literals, one per
// variable, sorted by variable name. SolveContext only calls this after solve
// reports SAT, at which point every variable has a value (the CHOOSE state
// only halts with SAT when FindUnassignedVariable finds none left).
func (sv *solver) assignment() []int {
	out := make([]int, len(sv.formula.Variables))
	for i, v := range sv.formula.Variables {
		switch v.value {
		case assnTrue:
			out[i] = v.name
		case assnFalse:
			out[i] = -v.name
		default:
			invariantViolation("assignment: variable %d left unassigned after SAT verdict", v.name)
		}
	}
	return out
}

// solve is the CHOOSE/FLIP/UNWIND state machine of §4.6, collapsed into a
// single loop: CHOOSE picks a variable and tries it TRUE; on conflict,
// resolveConflict plays the role of FLIP (retry FALSE) and, if that also
// conflicts, UNWIND (chronological backtracking until an unflipped decision
// or an empty stack is found).
func (sv *solver) solve(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		name := sv.formula.FindUnassignedVariable()
		if name == invalidVar {
			return true, nil
		}
		if sv.decide(name, assnTrue) {
			continue
		}
		if !sv.resolveConflict() {
			return false, nil
		}
	}
}

// decide pushes a DECISION entry for varName with value val, propagates it,
// and, if that found no conflict, runs unit propagation to fixpoint. It
// returns true iff neither step hit a conflict.
func (sv *solver) decide(varName int, val assignedValue) bool {
	a := sv.stack.push(Assignment{
		varName: varName,
		oldVal:  unassigned,
		newVal:  val,
		kind:    kindDecision,
	})
	sv.stats.Decisions++
	ok := sv.formula.propagate(a)
	depthBefore := sv.stack.depth()
	if ok {
		ok = unitPropagate(sv.formula, sv.stack)
	}
	sv.stats.UnitPropagations += sv.stack.depth() - depthBefore
	return ok
}

// resolveConflict is FLIP+UNWIND: it chronologically backtracks, trying the
// opposite polarity of each decision exactly once, until either a retried
// decision succeeds (search resumes at CHOOSE) or the stack is exhausted
// with no unflipped decision left (the formula is UNSAT).
func (sv *solver) resolveConflict() bool {
	for {
		if sv.stack.isEmpty() {
			return false
		}
		d := revertTopDecision(sv.formula, sv.stack)
		sv.stats.Backtracks++
		if d.newVal != assnTrue {
			// Already tried both polarities for this decision; keep
			// unwinding to the one below it.
			continue
		}
		if sv.decide(d.varName, assnFalse) {
			return true
		}
		// The FALSE attempt conflicted too; the next loop iteration
		// reverts it (newVal == assnFalse) and continues unwinding.
	}
}

func (k assignmentKind) String() string {
	switch k {
	case kindDecision:
		return "decision"
	case kindUnit:
		return "unit"
	default:
		return fmt.Sprintf("assignmentKind(%d)", int(k))
	}
}
