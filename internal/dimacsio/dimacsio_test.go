package dimacsio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/satkit/satkit/internal/sat"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	return path
}

func TestLoadParsesVariablesAndClauses(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "or2.cnf", "p cnf 2 1\n1 2 0\n")

	s := sat.NewDefaultSolver()
	if err := Load(path, s); err != nil {
		t.Fatalf("Load: %s", err)
	}
	if s.Solve() != sat.StatusSatisfiable {
		t.Fatal("expected {1 v 2} to be satisfiable")
	}
}

func TestReadModelsParsesOneAssignmentPerLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "or2.cnf.models", "1 2 0\n1 -2 0\n-1 2 0\n")

	models, err := ReadModels(path)
	if err != nil {
		t.Fatalf("ReadModels: %s", err)
	}
	if len(models) != 3 {
		t.Fatalf("got %d models, want 3", len(models))
	}
	want := [][]bool{{true, true}, {true, false}, {false, true}}
	for i, m := range models {
		if len(m) != len(want[i]) || m[0] != want[i][0] || m[1] != want[i][1] {
			t.Errorf("model %d: got %v, want %v", i, m, want[i])
		}
	}
}

func TestWriteResultSatisfiable(t *testing.T) {
	s := sat.NewDefaultSolver()
	s.AddVariable()
	s.AddVariable()
	if err := s.AddClause([]sat.Literal{sat.PositiveLiteral(0), sat.PositiveLiteral(1)}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	status := s.Solve()
	if status != sat.StatusSatisfiable {
		t.Fatalf("expected satisfiable, got %s", status)
	}

	var buf bytes.Buffer
	if err := WriteResult(&buf, status, s); err != nil {
		t.Fatalf("WriteResult: %s", err)
	}
	out := buf.String()
	if !bytes.HasPrefix(buf.Bytes(), []byte("s SATISFIABLE\n")) {
		t.Errorf("missing status line: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("v ")) {
		t.Errorf("missing model line: %q", out)
	}
}

func TestWriteResultUnsatisfiableHasNoModelLine(t *testing.T) {
	s := sat.NewDefaultSolver()
	s.AddVariable()
	s.AddClause([]sat.Literal{sat.PositiveLiteral(0)})
	s.AddClause([]sat.Literal{sat.NegativeLiteral(0)})
	status := s.Solve()
	if status != sat.StatusUnsatisfiable {
		t.Fatalf("expected unsatisfiable, got %s", status)
	}

	var buf bytes.Buffer
	if err := WriteResult(&buf, status, s); err != nil {
		t.Fatalf("WriteResult: %s", err)
	}
	if buf.String() != "s UNSATISFIABLE\n" {
		t.Errorf("got %q, want just the status line", buf.String())
	}
}

func TestLoadRejectsNonCNFProblemLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.cnf", "p wcnf 1 1\n1 0\n")

	s := sat.NewDefaultSolver()
	if err := Load(path, s); err == nil {
		t.Error("expected an error for a non-cnf problem line")
	}
}
