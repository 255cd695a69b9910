package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"

	"github.com/3Davydov/dpll"
	"github.com/hashicorp/go-hclog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	log := hclog.New(&hclog.LoggerOptions{
		Name:       "dpll",
		Level:      hclog.Warn,
		Output:     os.Stderr,
		JSONFormat: false,
	})

	fs := flag.NewFlagSet("dpll", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "print solve statistics to stderr")
	printAssignment := fs.Bool("assign", false, "on SAT, also print a satisfying assignment")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `dpll: a teaching-grade DPLL SAT solver.

Usage:

  dpll [-v] [-assign] [input.cnf]

dpll reads a single problem specification in the DIMACS CNF format and
writes exactly one of SAT or UNSAT to standard output.

If no input file is given, dpll reads from standard input.

  -v       print solve statistics to stderr
  -assign  on SAT, also print a satisfying assignment to a second stdout line
`)
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var r io.Reader = stdin
	if fs.NArg() >= 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Error("cannot open input file", "path", fs.Arg(0), "err", err)
			return 1
		}
		defer f.Close()
		r = f
	}

	nVars, clauses, err := dpll.ParseDIMACS(r)
	if err != nil {
		log.Error("cannot parse DIMACS input", "err", err)
		return 1
	}

	result, err := dpll.SolveContext(context.Background(), nVars, clauses)
	if err != nil {
		log.Error("solve failed", "err", err)
		return 1
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(result.Stats))
	}

	if !result.SAT {
		fmt.Fprintln(stdout, "UNSAT")
		return 0
	}
	fmt.Fprintln(stdout, "SAT")
	if *printAssignment {
		for i, v := range result.Assignment {
			if i > 0 {
				fmt.Fprint(stdout, " ")
			}
			fmt.Fprint(stdout, v)
		}
		fmt.Fprintln(stdout)
	}
	return 0
}
