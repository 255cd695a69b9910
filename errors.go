package dpll

import (
	"errors"
	"fmt"
)

// Error kinds per §7's taxonomy. IO and parse errors are produced by the
// DIMACS front end; Resource and Internal errors can surface from the
// solver itself. Satisfiability verdicts (SAT/UNSAT) are never errors.
var (
	// ErrIO wraps a failure to read the input (file not found, read
	// failure). Fatal at the CLI boundary.
	ErrIO = errors.New("dpll: io error")

	// ErrFormat wraps a malformed DIMACS input: missing/malformed header,
	// a literal out of range, or premature EOF inside a clause.
	ErrFormat = errors.New("dpll: format error")

	// ErrResource wraps a resource limit: the variable count exceeds the
	// implementation cap (returned by ParseDIMACS and NewFormula). An
	// assignment stack overflow is not returned as an error; push panics
	// with a message that begins with this error's text. Neither should
	// occur in practice; see maxVariables and the assignment stack sizing
	// in stack.go.
	ErrResource = errors.New("dpll: resource error")
)

// maxVariables is the implementation-defined cap on variable count noted as
// an Open Question in §9. original_source/dpll.c enforces exactly this cap
// (`if (nvariables > 10000) ereport_and_exit(...)`); this package preserves
// that number rather than picking a different one.
const maxVariables = 10000

// invariantViolation panics with a message identifying a broken solver
// invariant (§7's "Internal invariant violation" kind). This is always a
// bug, never reachable from well-formed input, so it is not modeled as an
// error return, matching the teacher's own use of panic for this class of
// condition (e.g. saturday.go's "bad watch var state", "incomplete
// solution").
func invariantViolation(format string, args ...interface{}) {
	panic(fmt.Sprintf("dpll: invariant violation: "+format, args...))
}
