package sat

// analysis is the outcome of conflict analysis: either a forced literal
// discovered by the chronological-backtracking shortcut (no clause learnt),
// or a freshly derived asserting clause with its backjump level and glue.
type analysis struct {
	forced       bool
	forcedLit    Literal
	forcedLevel  int
	forcedReason reason

	learnt    []Literal
	backtrack int
	glue      uint32
}

// reasonLiterals returns the antecedent literals (already the true polarity
// that forced the assignment) for reason r, appending into the solver's
// scratch buffer.
func (s *Solver) reasonLiterals(r reason) []Literal {
	if r.isBinary {
		s.tmpReason = append(s.tmpReason[:0], r.trigger)
		return s.tmpReason
	}
	return r.clause.explainAssign(s.tmpReason)
}

// conflictLevelInfo scans a falsified clause's literals and reports the
// highest decision level among them, one literal assigned at that level, and
// how many literals share it.
func (s *Solver) conflictLevelInfo(lits []Literal) (level int, at Literal, count int) {
	level, at = -1, InvalidLiteral
	for _, l := range lits {
		lvl := s.trail.LevelOf(l.VarID())
		switch {
		case lvl > level:
			level, at, count = lvl, l, 1
		case lvl == level:
			count++
		}
	}
	return level, at, count
}

// bumpVariable rewards v for participating in a conflict. Both heuristics
// are kept current regardless of which is active so that a mode switch
// never starts from stale state.
func (s *Solver) bumpVariable(v int) {
	s.vsids.bump(v)
	s.vmtf.bump(v)
}

// analyze performs conflict analysis on a freshly discovered conflict. It
// may return a forced-literal shortcut instead of a learnt clause when
// chronological backtracking applies.
func (s *Solver) analyze(confl conflict) analysis {
	if s.options.EnableChronological {
		if a, ok := s.chronologicalShortcut(confl); ok {
			return a
		}
	}
	return s.analyzeFirstUIP(confl)
}

// chronologicalShortcut checks whether the conflicting clause's maximum
// literal level is below the current decision level; if so it jumps down to
// it first. If, once there, only one literal of the clause sits on that
// level, it is the forced literal and no clause needs to be learnt.
func (s *Solver) chronologicalShortcut(confl conflict) (analysis, bool) {
	level, at, count := s.conflictLevelInfo(confl.clause.literals)

	if level < s.decisionLevel() {
		s.chronoBacktrack(level)
	}
	if count != 1 {
		return analysis{}, false
	}

	forcedLit := at
	if c := confl.clause; !s.isTransientBinary(c) {
		// A clause reason implies its literal 0, so the forced literal is
		// moved there, rewatching the clause if it was not watched.
		i := 0
		for c.literals[i] != at {
			i++
		}
		if i >= 2 {
			s.unwatch(c, c.literals[0].Opposite())
		}
		c.literals[0], c.literals[i] = c.literals[i], c.literals[0]
		if i >= 2 {
			s.watch(c, c.literals[0].Opposite(), c.literals[1])
		}
	}
	return analysis{
		forced:       true,
		forcedLit:    forcedLit,
		forcedLevel:  level - 1,
		forcedReason: s.conflictAsReason(confl.clause, forcedLit),
	}, true
}

// conflictAsReason turns a falsified clause into a reason suitable for a
// long-lived trail entry. A transient materialized binary (watch.go) cannot
// be stored as-is, since its backing slot is overwritten by the next
// materialization; it is converted to the equivalent binaryReason instead.
func (s *Solver) conflictAsReason(c *Clause, forced Literal) reason {
	if !s.isTransientBinary(c) {
		return clauseReason(c)
	}
	other := c.literals[0]
	if other == forced {
		other = c.literals[1]
	}
	return binaryReason(other.Opposite(), c.isLearnt())
}

// analyzeFirstUIP derives the first-UIP asserting clause by resolving
// backward along the trail until exactly one literal of the current
// decision level remains, then minimizes and computes the backjump level.
func (s *Solver) analyzeFirstUIP(confl conflict) analysis {
	s.seenVar.Clear()
	level := s.decisionLevel()

	learnt := append(s.tmpLearnt[:0], InvalidLiteral)

	pathCount := 0
	idx := s.trail.Len() - 1
	reasonLits := confl.clause.explainConflict(s.tmpReason)
	if !s.isTransientBinary(confl.clause) {
		s.bumpClauseActivity(confl.clause)
	}

	var p Literal
	for {
		for _, q := range reasonLits {
			v := q.VarID()
			lvl := s.trail.LevelOf(v)
			if lvl == 0 || s.seenVar.Contains(v) {
				continue
			}
			s.seenVar.Add(v)
			s.bumpVariable(v)
			if lvl >= level {
				pathCount++
			} else {
				learnt = append(learnt, q)
			}
		}

		for !s.seenVar.Contains(s.trail.At(idx).VarID()) {
			idx--
		}
		p = s.trail.At(idx)
		idx--
		pathCount--
		if pathCount == 0 {
			break
		}

		r := s.trail.ReasonOf(p.VarID())
		if !r.isBinary && r.clause != nil && !s.isTransientBinary(r.clause) {
			s.bumpClauseActivity(r.clause)
		}
		reasonLits = s.reasonLiterals(r)
	}
	learnt[0] = p.Opposite()

	s.decayVarActivity()
	s.decayClauseActivity()

	learnt = s.minimize(learnt)
	glue := computeGlue(s, learnt)
	backtrack := s.backjumpLevel(learnt)

	s.tmpLearnt = learnt
	return analysis{learnt: learnt, backtrack: backtrack, glue: glue}
}

func (s *Solver) decayVarActivity() {
	s.vsids.decay()
}

// backjumpLevel finds the second-highest decision level among the learnt
// clause's non-asserting literals and moves that literal to position 1, so
// the clause's two watches are exactly its two highest-level literals.
func (s *Solver) backjumpLevel(learnt []Literal) int {
	if len(learnt) == 1 {
		return 0
	}
	maxIdx := 1
	maxLvl := s.trail.LevelOf(learnt[1].VarID())
	for i := 2; i < len(learnt); i++ {
		if lvl := s.trail.LevelOf(learnt[i].VarID()); lvl > maxLvl {
			maxLvl, maxIdx = lvl, i
		}
	}
	learnt[1], learnt[maxIdx] = learnt[maxIdx], learnt[1]
	return maxLvl
}

// minimize drops learnt literals whose assignment is already implied by
// other literals present in (or recursively redundant with) the clause,
// using memoized reachability over the implication graph. The asserting literal (index 0) is
// never touched.
func (s *Solver) minimize(learnt []Literal) []Literal {
	memo := make(map[int]bool, len(learnt))
	out := learnt[:1]
	for _, l := range learnt[1:] {
		if s.literalRedundant(l, memo) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *Solver) literalRedundant(l Literal, memo map[int]bool) bool {
	v := l.VarID()
	if removable, ok := memo[v]; ok {
		return removable
	}
	// Mark in-progress to break cycles defensively; a well-formed
	// implication graph is acyclic so this should never be read back.
	memo[v] = false

	r := s.trail.ReasonOf(v)
	if r.isNone() {
		return false // decision variable: not redundant
	}

	for _, q := range s.reasonLiterals(r) {
		qv := q.VarID()
		if s.trail.LevelOf(qv) == 0 || s.seenVar.Contains(qv) {
			continue
		}
		if !s.literalRedundant(q, memo) {
			return false
		}
	}
	memo[v] = true
	return true
}

// isTransientBinary reports whether c is the solver's preallocated
// materialized-binary slot, which must never have its activity bumped or
// be appended to the clause database (it is overwritten on the next
// materialization).
func (s *Solver) isTransientBinary(c *Clause) bool {
	return c == &s.binSlot
}
