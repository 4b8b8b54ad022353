package satkit_test

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/satkit/satkit/internal/dimacsio"
	"github.com/satkit/satkit/internal/sat"
)

// This test suite verifies that the solver finds the exact set of models
// for every instance under testdataDir, each paired with a ".cnf.models"
// fixture listing every expected satisfying assignment precomputed by a
// trusted reference solver.
const testdataDir = "testdata"

type testCase struct {
	name         string
	instanceFile string
	modelsFile   string
}

func listTestCases(dir string) ([]testCase, error) {
	var cases []testCase
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		cases = append(cases, testCase{
			name:         d.Name(),
			instanceFile: path,
			modelsFile:   path + ".models",
		})
		return nil
	})
	return cases, err
}

func toString(model []bool) string {
	s := make([]byte, len(model))
	for i, b := range model {
		if b {
			s[i] = 1
		}
	}
	return string(s)
}

func toSet(models [][]bool) map[string]struct{} {
	set := map[string]struct{}{}
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

// solveAll enumerates every model of s by repeatedly solving and blocking
// the last model found with a clause forbidding it.
func solveAll(s *sat.Solver) [][]bool {
	for s.Solve() == sat.StatusSatisfiable {
		model := s.Models[len(s.Models)-1]
		blocker := make([]sat.Literal, len(model))
		for v, val := range model {
			if val {
				blocker[v] = sat.NegativeLiteral(v)
			} else {
				blocker[v] = sat.PositiveLiteral(v)
			}
		}
		if err := s.AddClause(blocker); err != nil {
			break
		}
	}
	return s.Models
}

func TestSolveAll(t *testing.T) {
	cases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("listing test cases: %s", err)
	}
	if len(cases) == 0 {
		t.Fatal("no test cases found under testdata")
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			want, err := dimacsio.ReadModels(tc.modelsFile)
			if err != nil {
				t.Fatalf("reading models: %s", err)
			}

			s := sat.NewDefaultSolver()
			if err := dimacsio.Load(tc.instanceFile, s); err != nil {
				t.Fatalf("loading instance: %s", err)
			}

			got := solveAll(s)

			if len(got) != len(want) {
				t.Errorf("got %d models, want %d", len(got), len(want))
			}
			if !cmp.Equal(toSet(got), toSet(want)) {
				t.Errorf("model sets differ: got %v, want %v", toSet(got), toSet(want))
			}
		})
	}
}
