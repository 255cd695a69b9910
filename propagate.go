package dpll

// propagate applies an assignment that has already been pushed onto the
// stack, simplifying every clause the assigned variable occurs in (§4.3).
// It deletes clauses the assignment satisfies and shrinks clauses it
// falsifies, tagging every touched literal with a.depth so the backtracker
// can resurrect exactly those literals later (I2/I3).
//
// It always finishes visiting every related clause, even after it has
// already found a conflict: every literal this call retags carries a.depth,
// so a partial pass would leave the depth-tag invariant intact regardless,
// but finishing means the caller never has to distinguish "conflict found
// early" from "conflict found late"; there's exactly one shape of
// post-conflict state to unwind.
func (f *Formula) propagate(a Assignment) (ok bool) {
	v := &f.Variables[a.varName-1]
	v.value = a.newVal
	ok = true
	for _, ci := range v.relatedClauses {
		c := &f.Clauses[ci]
		if c.nInUse == 0 {
			// Already deleted (satisfied) or already emptied by an
			// earlier literal occurrence of this same variable in
			// this same clause (duplicate literals).
			continue
		}
		for li := range c.lits {
			l := &c.lits[li]
			if l.varName != a.varName || !l.active() {
				continue
			}
			if l.givesTrue(v) {
				deleteClause(c, a.depth)
			} else {
				l.depth = a.depth
				c.nInUse--
				if c.isEmpty(f.Variables) {
					ok = false
				}
			}
		}
	}
	return ok
}

// deleteClause logically deletes c: every still-active literal is retagged
// with depth (so the backtracker can undo the deletion) and nInUse is
// forced to zero (§3 I2).
func deleteClause(c *Clause, depth int) {
	for li := range c.lits {
		if c.lits[li].active() {
			c.lits[li].depth = depth
		}
	}
	c.nInUse = 0
}

// unitPropagate repeatedly finds a unit clause, forces its sole active
// literal, and propagates, until no unit clause remains (§4.4). It keeps
// going even after a conflict is observed, so that every unit consequence
// reachable from the current decision lands on the stack; the caller
// backtracks regardless, and a faithful stack is what the backtracker
// depends on.
func unitPropagate(f *Formula, s *assignmentStack) (ok bool) {
	ok = true
	for {
		ci, li, found := f.FirstUnitClause()
		if !found {
			return ok
		}
		l := &f.Clauses[ci].lits[li]
		newVal := assnTrue
		if l.negated {
			newVal = assnFalse
		}
		a := s.push(Assignment{
			varName: l.varName,
			oldVal:  unassigned,
			newVal:  newVal,
			kind:    kindUnit,
		})
		if !f.propagate(a) {
			ok = false
		}
	}
}
