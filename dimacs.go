package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format (§6): a "p cnf N M"
// header declaring N variables and M clauses, followed by whitespace-
// separated signed integers, each clause terminated by a 0.
//
// For convenience, a couple of non-standard variations found in the wild
// are accepted:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - A line containing a single '%' marks a trailer to be ignored, a
//     convention some CNF generators use.
//
// §6 requires the parser to reject a missing or malformed header, a
// literal whose magnitude exceeds N, and EOF inside a clause; all four are
// enforced here.
func ParseDIMACS(r io.Reader) (nVars int, clauses [][]int, err error) {
	var problem struct {
		seen    bool
		vars    int
		clauses int
	}
	var clause []int
	inClause := false
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return 0, nil, fmt.Errorf("%w: problem line appears after clauses", ErrFormat)
			}
			if problem.seen {
				return 0, nil, fmt.Errorf("%w: multiple problem lines", ErrFormat)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return 0, nil, fmt.Errorf("%w: malformed problem line %q", ErrFormat, line)
			}
			if fields[0] != "p" {
				return 0, nil, fmt.Errorf("%w: problem line starts with unexpected signifier %q", ErrFormat, fields[0])
			}
			if fields[1] != "cnf" {
				return 0, nil, fmt.Errorf("%w: only cnf supported; got %q", ErrFormat, fields[1])
			}
			var convErr error
			problem.vars, convErr = strconv.Atoi(fields[2])
			if convErr != nil {
				return 0, nil, fmt.Errorf("%w: malformed #vars in problem line: %s", ErrFormat, convErr)
			}
			problem.clauses, convErr = strconv.Atoi(fields[3])
			if convErr != nil {
				return 0, nil, fmt.Errorf("%w: malformed #clauses in problem line: %s", ErrFormat, convErr)
			}
			if problem.vars < 0 {
				return 0, nil, fmt.Errorf("%w: invalid #vars %d", ErrFormat, problem.vars)
			}
			if problem.clauses < 0 {
				return 0, nil, fmt.Errorf("%w: invalid #clauses %d", ErrFormat, problem.clauses)
			}
			if problem.vars > maxVariables {
				return 0, nil, fmt.Errorf("%w: %d variables exceeds the %d-variable cap", ErrResource, problem.vars, maxVariables)
			}
			problem.seen = true
			continue
		}
		if !problem.seen {
			return 0, nil, fmt.Errorf("%w: missing \"p cnf\" header", ErrFormat)
		}
		for _, field := range strings.Fields(line) {
			n, convErr := strconv.Atoi(field)
			if convErr != nil {
				return 0, nil, fmt.Errorf("%w: invalid literal %q: %s", ErrFormat, field, convErr)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
				inClause = false
				continue
			}
			abs := n
			if abs < 0 {
				abs = -abs
			}
			if abs > problem.vars {
				return 0, nil, fmt.Errorf("%w: literal %d exceeds the %d declared variables", ErrFormat, n, problem.vars)
			}
			clause = append(clause, n)
			inClause = true
		}
	}
	if scanErr := s.Err(); scanErr != nil {
		return 0, nil, fmt.Errorf("%w: %s", ErrIO, scanErr)
	}
	if !problem.seen {
		return 0, nil, fmt.Errorf("%w: missing \"p cnf\" header", ErrFormat)
	}
	if inClause {
		return 0, nil, fmt.Errorf("%w: unterminated clause at end of input", ErrFormat)
	}
	if len(clauses) != problem.clauses {
		return 0, nil, fmt.Errorf("%w: problem line specifies %d clauses, but there are %d", ErrFormat, problem.clauses, len(clauses))
	}
	return problem.vars, clauses, nil
}

// WriteDIMACS writes clauses to w in DIMACS CNF format: a "p cnf N M"
// header (N is the largest variable magnitude referenced, M is the number
// of clauses) followed by one line per clause, space-separated literals
// terminated by a trailing 0.
func WriteDIMACS(w io.Writer, clauses [][]int) error {
	nVars := maxVar(clauses)
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", nVars, len(clauses)); err != nil {
		return err
	}
	for _, cls := range clauses {
		var b strings.Builder
		for _, lit := range cls {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
		if _, err := bw.WriteString(b.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
