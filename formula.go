// Package dpll implements a SAT solver using the classical Davis-Putnam-
// Logemann-Loveland algorithm: depth-first search over partial truth
// assignments, with unit propagation and chronological backtracking.
//
// Unlike a CDCL solver, dpll does no clause learning, no watched literals,
// and no restarts. Every tentative simplification made while exploring a
// decision is recorded on the literals it touched and is perfectly
// reversible on backtrack; that reversibility, not raw throughput, is the
// thing this package is built to get right.
package dpll

import "fmt"

// assignedValue is the tri-state truth value carried by a Variable.
type assignedValue int8

const (
	unassigned assignedValue = iota
	assnFalse
	assnTrue
)

func (a assignedValue) String() string {
	switch a {
	case unassigned:
		return "unassigned"
	case assnFalse:
		return "false"
	case assnTrue:
		return "true"
	default:
		panic("dpll: invalid assignedValue")
	}
}

// inUse is the sentinel depth tag meaning "this literal is an active member
// of its clause." Any other tag value names the stack depth of the
// assignment that removed the literal from its clause.
const inUse = -1

// invalidVar is the sentinel variable name meaning "no such variable."
// Valid variable names are in [1, N].
const invalidVar = 0

// Variable is one of the formula's boolean unknowns, named 1..N. It carries
// its current truth value and back-references to every clause it occurs in,
// so propagation only has to touch clauses that could possibly change.
type Variable struct {
	name           int
	value          assignedValue
	relatedClauses []int // indices into Formula.Clauses
}

// literal is an occurrence of a variable inside a clause: which variable,
// whether negated, and a depth tag recording whether it's still active.
type literal struct {
	varName int
	negated bool
	depth   int // inUse, or the stack depth that removed this literal
}

func (l *literal) active() bool { return l.depth == inUse }

// givesTrue reports whether l evaluates to true given v's current value.
func (l *literal) givesTrue(v *Variable) bool {
	switch v.value {
	case assnTrue:
		return !l.negated
	case assnFalse:
		return l.negated
	default:
		return false
	}
}

// givesFalse reports whether l evaluates to false given v's current value.
func (l *literal) givesFalse(v *Variable) bool {
	switch v.value {
	case assnTrue:
		return l.negated
	case assnFalse:
		return !l.negated
	default:
		return false
	}
}

// Clause is a disjunction of literals. nInUse is the number of literals
// currently tagged active; a clause with nInUse == 0 has either been
// satisfied and logically deleted, or (transiently, mid-propagation) gone
// empty, which is a conflict.
type Clause struct {
	lits   []literal
	nInUse int
}

// isEmpty reports whether c is empty in the conflict sense (§4.3): called
// only from the shrink side of propagate, after the falsified literal has
// already been retagged, it's empty iff no remaining active literal is
// unassigned or true. A clause deleted because it's satisfied never reaches
// this check; deleteClause handles that case separately.
func (c *Clause) isEmpty(vars []Variable) bool {
	for i := range c.lits {
		l := &c.lits[i]
		if !l.active() {
			continue
		}
		v := &vars[l.varName-1]
		if v.value == unassigned || l.givesTrue(v) {
			return false
		}
	}
	return true
}

// Formula owns the variable table and the clause list for the whole solve.
// It is constructed once from parsed DIMACS input and lives for the life of
// the search; "deleting" a clause during search never removes it from
// Clauses, it only retags its literals (§3's "Lifecycle").
type Formula struct {
	Variables []Variable
	Clauses   []Clause
}

// NewFormula builds a Formula store from a list of clauses, each a list of
// signed, non-zero integers (positive k = variable k, negative k = ¬var k).
// nVars must be at least the highest variable name used in clauses.
func NewFormula(nVars int, clauses [][]int) (*Formula, error) {
	if nVars < 0 {
		return nil, fmt.Errorf("%w: negative variable count %d", ErrFormat, nVars)
	}
	if nVars > maxVariables {
		return nil, fmt.Errorf("%w: %d variables exceeds the %d-variable cap", ErrResource, nVars, maxVariables)
	}
	f := &Formula{
		Variables: make([]Variable, nVars),
		Clauses:   make([]Clause, len(clauses)),
	}
	for i := range f.Variables {
		f.Variables[i] = Variable{name: i + 1, value: unassigned}
	}
	for ci, cls := range clauses {
		lits := make([]literal, 0, len(cls))
		for _, n := range cls {
			if n == 0 {
				return nil, fmt.Errorf("%w: clause %d contains a zero literal", ErrFormat, ci)
			}
			name := n
			neg := false
			if name < 0 {
				neg = true
				name = -name
			}
			if name < 1 || name > nVars {
				return nil, fmt.Errorf("%w: literal %d out of range [1, %d]", ErrFormat, n, nVars)
			}
			lits = append(lits, literal{varName: name, negated: neg, depth: inUse})
			v := &f.Variables[name-1]
			v.relatedClauses = append(v.relatedClauses, ci)
		}
		f.Clauses[ci] = Clause{lits: lits, nInUse: len(lits)}
	}
	return f, nil
}

// FindUnassignedVariable returns the lowest-named variable that is still
// UNASSIGNED, or invalidVar if every variable has a value. The lowest-name
// tie-break is required by §4.1 for deterministic decision sequences.
func (f *Formula) FindUnassignedVariable() int {
	for i := range f.Variables {
		if f.Variables[i].value == unassigned {
			return f.Variables[i].name
		}
	}
	return invalidVar
}

// FirstUnitClause returns the index of the first clause (lowest index) with
// exactly one active literal, together with the position of that literal
// within the clause. ok is false if no unit clause exists.
func (f *Formula) FirstUnitClause() (clauseIdx, litIdx int, ok bool) {
	for ci := range f.Clauses {
		c := &f.Clauses[ci]
		if c.nInUse != 1 {
			continue
		}
		for li := range c.lits {
			if c.lits[li].active() {
				return ci, li, true
			}
		}
	}
	return 0, 0, false
}
