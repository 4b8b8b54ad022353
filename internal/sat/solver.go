package sat

import (
	"fmt"
	"time"
)

// Status is the terminal (or in-progress) outcome of a solve attempt.
type Status int8

const (
	StatusUnknown Status = iota
	StatusSatisfiable
	StatusUnsatisfiable
)

func (s Status) String() string {
	switch s {
	case StatusSatisfiable:
		return "SATISFIABLE"
	case StatusUnsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Solver is a CDCL SAT solver instance. It owns every clause, watch list,
// the trail, and both heuristics structures; nothing about it is shared
// across instances. It carries VMTF alongside VSIDS, chronological
// backtracking, mode switching, reduce/eliminate/subsume/vivify inprocessing,
// ticks-based scheduling, and proof emission.
type Solver struct {
	// Clause database. Binary clauses never appear here: they live
	// only as watch entries, in sparse and dense mode alike, and are never
	// indexed in the occurrence lists; see watch.go and occurrence.go.
	constraints []*Clause
	learnts     []*Clause
	clauseInc   float64
	clauseDecay float64

	// Decision heuristics.
	vsids *vsidsHeap
	vmtf  *vmtfQueue

	// Propagation and watches.
	watches [][]watch
	binSlot Clause // transient materialization for a virtual-binary conflict

	// Assignment state.
	assigns []LBool // indexed by Literal
	trail   *Trail

	// Per-variable flags.
	eliminated []bool
	fixed      []bool

	saved  []LBool
	target []LBool
	best   []LBool
	haveTarget   bool
	haveBest     bool
	bestCoverage int

	unsat bool

	// Search mode.
	stable      bool
	avgs        [2]averages // 0 = focused, 1 = stable
	reluctantSt reluctant

	lims limits
	tk   ticks

	// Dense/sparse mode: while dense, every non-garbage
	// clause of size >= 3 is indexed by each of its literals here, in
	// addition to (not instead of) its two watches, so elimination and
	// subsumption can enumerate "all clauses mentioning literal l" without
	// scanning the whole database.
	dense  bool
	occurs [][]*Clause

	// extension reconstructs values for eliminated variables once search
	// finds a model: elimOrder records the
	// order variables were eliminated in, and elimClauses[v] the clauses
	// that mentioned v at the time (read back in reverse order).
	elimOrder       []int
	elimClauses     [][][]Literal
	eliminatedCount int
	elimCursor      int
	subsumeCursor   int
	vivifyCursor    int

	options Options
	logger  *Logger
	proof   ProofWriter

	Stats Stats
	Models [][]bool

	startTime   time.Time
	hasStopCond bool
	maxConflict int64
	timeout     time.Duration

	rephaseRotation int

	// Scratch buffers, reused across calls to avoid allocating on the hot
	// path.
	seenVar   *ResetSet
	glueSeen  *ResetSet
	tmpLearnt []Literal
	tmpReason []Literal
	tmpWatch  []watch
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NewSolver returns a Solver configured with the given options.
func NewSolver(ops Options) *Solver {
	logger := ops.Logger
	if logger == nil {
		logger = Stderr(ops.Verbosity)
	}
	proof := ops.Proof
	if proof == nil {
		proof = noopProof{}
	}

	s := &Solver{
		clauseInc:   1,
		clauseDecay: ops.ClauseDecay,
		vsids:       newVSIDSHeap(ops.VarDecay),
		vmtf:        newVMTFQueue(),
		trail:       newTrail(),
		seenVar:     &ResetSet{},
		glueSeen:    &ResetSet{},
		options:     ops,
		logger:      logger,
		proof:       proof,
		maxConflict: -1,
		timeout:     -1,
	}
	s.avgs[0] = newAverages(1-1e-4, 1-1e-2)
	s.avgs[1] = newAverages(1-1e-5, 1-1e-2)
	s.reluctantSt.reset()

	if ops.MaxConflicts >= 0 {
		s.hasStopCond = true
		s.maxConflict = ops.MaxConflicts
	}
	if ops.Timeout >= 0 {
		s.hasStopCond = true
		s.timeout = ops.Timeout
	}

	s.lims.mode.conflicts = ops.InitialModeConflicts
	s.lims.mode.ticks.interval = ops.InitialModeTicksBudget
	s.lims.mode.ticks.limit = ops.InitialModeTicksBudget
	s.lims.rephase.conflicts = int64(ops.RephaseInterval)

	return s
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxConflict >= 0 && s.maxConflict <= s.Stats.Conflicts {
		return true
	}
	if s.timeout >= 0 && s.timeout <= time.Since(s.startTime) {
		return true
	}
	return false
}

// PositiveLiteral returns the positive literal of variable v.
func (s *Solver) PositiveLiteral(v int) Literal { return PositiveLiteral(v) }

// NegativeLiteral returns the negative literal of variable v.
func (s *Solver) NegativeLiteral(v int) Literal { return NegativeLiteral(v) }

// NumVariables returns the number of variables activated so far.
func (s *Solver) NumVariables() int { return len(s.assigns) / 2 }

// NumAssigns returns the number of currently assigned literals.
func (s *Solver) NumAssigns() int { return s.trail.Len() }

// NumConstraints returns the number of irredundant clauses of size >= 3.
func (s *Solver) NumConstraints() int { return len(s.constraints) }

// NumLearnts returns the number of redundant clauses of size >= 3.
func (s *Solver) NumLearnts() int { return len(s.learnts) }

// VarValue returns the current value of variable v.
func (s *Solver) VarValue(v int) LBool { return s.assigns[PositiveLiteral(v)] }

// LitValue returns the current value of literal l.
func (s *Solver) LitValue(l Literal) LBool { return s.assigns[l] }

func (s *Solver) decisionLevel() int { return s.trail.Level() }

// AddVariable activates a new variable and returns its 0-based index. It is
// the only way new variables enter the solver.
func (s *Solver) AddVariable() int {
	idx := s.NumVariables()

	s.watches = append(s.watches, nil, nil)
	s.occurs = append(s.occurs, nil, nil)
	s.assigns = append(s.assigns, Unknown, Unknown)
	s.trail.grow()

	s.eliminated = append(s.eliminated, false)
	s.fixed = append(s.fixed, false)
	s.elimClauses = append(s.elimClauses, nil)
	s.saved = append(s.saved, Unknown)
	s.target = append(s.target, Unknown)
	s.best = append(s.best, Unknown)

	s.seenVar.Expand()
	s.glueSeen.Expand()

	s.vsids.grow()
	s.vmtf.grow()

	return idx
}

// AddClause adds an irredundant clause to the problem. It can only be
// called at decision level 0.
func (s *Solver) AddClause(lits []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.decisionLevel())
	}
	ok := s.addClauseLocked(lits, false)
	if !ok {
		s.unsat = true
	}
	return nil
}

// addClauseLocked implements tautology/duplicate/root-falsified filtering
// for irredundant clauses (learnt clauses skip this, since conflict
// analysis never produces a tautology or a clause with duplicate
// literals). It returns false if the clause makes the formula
// unsatisfiable (an empty clause remains after filtering, or unit
// propagation of a resulting fact conflicts).
func (s *Solver) addClauseLocked(lits []Literal, learnt bool) bool {
	c, ok := s.newClauseOrFact(lits, learnt)
	if c != nil {
		if learnt {
			s.registerLearnt(c)
		} else {
			s.constraints = append(s.constraints, c)
		}
	}
	return ok
}

// newClauseOrFact filters, then dispatches to unit enqueue / virtual binary
// / materialized clause depending on the filtered size.
func (s *Solver) newClauseOrFact(tmp []Literal, learnt bool) (*Clause, bool) {
	size := len(tmp)

	if !learnt {
		seen := map[Literal]struct{}{}
		for i := size - 1; i >= 0; i-- {
			if _, ok := seen[tmp[i].Opposite()]; ok {
				return nil, true // tautology: drop the clause entirely
			}
			if _, ok := seen[tmp[i]]; ok {
				size--
				tmp[i], tmp[size] = tmp[size], tmp[i]
				continue
			}
			seen[tmp[i]] = struct{}{}

			switch s.LitValue(tmp[i]) {
			case True:
				return nil, true
			case False:
				size--
				tmp[i], tmp[size] = tmp[size], tmp[i]
			}
		}
		tmp = tmp[:size]
	}

	switch size {
	case 0:
		return nil, false
	case 1:
		return nil, s.enqueue(tmp[0], reason{})
	case 2:
		s.watchBinary(tmp[0], tmp[1], learnt)
		if learnt {
			s.recordProofAddition(tmp)
		}
		return nil, true
	default:
		c := newClause(s, tmp, learnt)
		s.recordProofAddition(c.literals)
		return c, true
	}
}

func (s *Solver) recordProofAddition(lits []Literal) {
	if err := s.proof.AddClause(lits); err != nil {
		s.logProofError(err)
	}
}

func (s *Solver) recordProofDeletion(lits []Literal) {
	if err := s.proof.DeleteClause(lits); err != nil {
		s.logProofError(err)
	}
}

func (s *Solver) registerLearnt(c *Clause) {
	s.learnts = append(s.learnts, c)
	s.Stats.Learned++
}

// enqueue assigns literal l with the given reason, returning false on
// conflicting assignment and true otherwise (already-true or newly set).
func (s *Solver) enqueue(l Literal, r reason) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.trail.push(l, s.decisionLevel(), r)
		return true
	}
}

// assume pushes a new decision level and assigns l with no reason.
func (s *Solver) assume(l Literal) bool {
	s.trail.openFrame()
	s.Stats.Decisions++
	return s.enqueue(l, reason{})
}

func (s *Solver) bumpClauseActivity(c *Clause) {
	c.activity += s.clauseInc
	if c.activity > 1e100 {
		s.clauseInc *= 1e-100
		for _, l := range s.learnts {
			l.activity *= 1e-100
		}
	}
}

func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.clauseDecay
}

// activeVariable reports whether v still participates in search (not fixed
// at the root level, not eliminated).
func (s *Solver) activeVariable(v int) bool {
	return !s.eliminated[v]
}
