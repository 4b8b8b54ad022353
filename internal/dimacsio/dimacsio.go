// Package dimacsio reads DIMACS CNF instances into a sat.Solver and prints
// solutions back out in the SAT-competition result format.
package dimacsio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/satkit/satkit/internal/sat"
)

// solverBuilder adapts sat.Solver to dimacs.Builder.
type solverBuilder struct {
	solver *sat.Solver
}

func (b *solverBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want %q", problem, "cnf")
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *solverBuilder) Clause(tmp []int) error {
	clause := make([]sat.Literal, len(tmp))
	for i, l := range tmp {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	return b.solver.AddClause(clause)
}

func (b *solverBuilder) Comment(_ string) error {
	return nil
}

// open returns a ReadCloser for filename, transparently decompressing it
// when it ends in ".gz" (or gzipped is forced true).
func open(filename string, gzipped bool) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(f)
	if gzipped || strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			f.Close()
			return nil, err
		}
		rc = gz
	}
	return rc, nil
}

// Load parses the CNF file at filename into solver, transparently
// decompressing it if it is gzip-compressed.
func Load(filename string, solver *sat.Solver) error {
	r, err := open(filename, false)
	if err != nil {
		return fmt.Errorf("opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &solverBuilder{solver: solver}
	if err := dimacs.ReadBuilder(bufio.NewReaderSize(r, 1<<20), b); err != nil {
		return fmt.Errorf("parsing %q: %w", filename, err)
	}
	return nil
}

// modelBuilder collects clause-shaped lines from a model file, one model
// per run of clauses separated by nothing: each "clause" in a model file is
// one full assignment, literal signs giving the polarity of each variable.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(_ string, _ int, _ int) error {
	return fmt.Errorf("model files must not contain a problem line")
}

func (b *modelBuilder) Comment(_ string) error { return nil }

func (b *modelBuilder) Clause(tmp []int) error {
	model := make([]bool, len(tmp))
	for i, l := range tmp {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}

// ReadModels parses a ".cnf.models" fixture file: one line of
// space-separated signed literals per expected satisfying assignment,
// terminated by 0. Used by integration tests to check a solver's output
// against every admissible model of an instance.
func ReadModels(filename string) ([][]bool, error) {
	r, err := open(filename, false)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", filename, err)
	}
	return b.models, nil
}

// WriteResult prints the SAT-competition result format to w: a status line
// (`s SATISFIABLE` / `s UNSATISFIABLE` / `s UNKNOWN`) followed by, on
// satisfiable results, `v` lines listing every variable's signed literal
// with a terminating ` 0` at the end of the last `v` line.
func WriteResult(w io.Writer, status sat.Status, solver *sat.Solver) error {
	if _, err := fmt.Fprintf(w, "s %s\n", status); err != nil {
		return err
	}
	if status != sat.StatusSatisfiable {
		return nil
	}

	model := solver.Models[len(solver.Models)-1]

	var sb strings.Builder
	sb.WriteString("v")
	for v, val := range model {
		lit := v + 1
		if !val {
			lit = -lit
		}
		fmt.Fprintf(&sb, " %d", lit)
		if sb.Len() > 4096 {
			sb.WriteString("\n")
			if _, err := io.WriteString(w, sb.String()); err != nil {
				return err
			}
			sb.Reset()
			sb.WriteString("v")
		}
	}
	sb.WriteString(" 0\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
