package dpll

// revertAt undoes every simplification made by the assignment recorded at
// stack depth d (§4.5): every literal tagged d is retagged active again and
// its clause's nInUse is incremented, and the assignment's variable is
// restored to oldVal.
func (f *Formula) revertAt(a Assignment) {
	v := &f.Variables[a.varName-1]
	for _, ci := range v.relatedClauses {
		c := &f.Clauses[ci]
		for li := range c.lits {
			l := &c.lits[li]
			if l.depth != a.depth {
				continue
			}
			l.depth = inUse
			c.nInUse++
		}
	}
	v.value = a.oldVal
}

// revertTopDecision unwinds the stack through every trailing UNIT entry and
// then the DECISION entry beneath them, reverting each in turn, and returns
// the popped decision (§4.5). It is an invariant violation for the stack to
// be empty, or for the entry beneath the UNIT run to not be a DECISION.
func revertTopDecision(f *Formula, s *assignmentStack) Assignment {
	for !s.isEmpty() && s.peek().kind == kindUnit {
		a := s.pop()
		f.revertAt(a)
	}
	if s.isEmpty() {
		invariantViolation("revertTopDecision: stack exhausted without finding a decision")
	}
	d := s.pop()
	if d.kind != kindDecision {
		invariantViolation("revertTopDecision: expected a decision entry, got kind %v", d.kind)
	}
	f.revertAt(d)
	return d
}
