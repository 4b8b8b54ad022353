package sat

// shouldVivify reports whether a vivification pass should run now, gated
// the same way elimination and subsumption are,
// and only ever at decision level 0.
func (s *Solver) shouldVivify() bool {
	if s.decisionLevel() != 0 {
		return false
	}
	return s.lims.vivify.ticks.hit(s.tk)
}

// vivify runs one bounded pass of vivification over the irredundant clause
// database, probing each clause's literals one at a time to see if a proper
// prefix of it is already implied by unit propagation.
func (s *Solver) vivify() {
	n := len(s.constraints)
	budget := n/10 + 1
	for i := 0; i < n && budget > 0 && !s.unsat; i++ {
		c := s.constraints[(s.vivifyCursor+i)%max1(n)]
		if c.isGarbage() || c.Size() < 3 {
			continue
		}
		budget--
		s.vivifyClause(c)
	}
	if n > 0 {
		s.vivifyCursor = (s.vivifyCursor + n/10 + 1) % n
	}

	interval := uint64(float64(1_000_000) * s.options.VivifyTicksFraction)
	if interval == 0 {
		interval = 1
	}
	s.lims.vivify.ticks.limit = uint64(s.tk) + interval
}

// vivifyClause assumes the negation of c's literals one at a time,
// propagating after each: if that ever falsifies the clause itself
// (a conflict), the literals tried so far already imply the clause and
// everything after the conflicting one is redundant, so c shrinks to that
// prefix. If propagation ever satisfies the clause outright (one of its
// own untested literals becomes true), c is left untouched — that variant
// of vivification is valuable but not pursued here to keep the probing
// loop simple.
func (s *Solver) vivifyClause(c *Clause) {
	lits := append([]Literal(nil), c.literals...)

	tried := 0
	conflicted := false
	for _, l := range lits {
		switch s.LitValue(l) {
		case True:
			tried = -1 // already satisfied by prior probing; nothing to shrink
		case False:
			tried++
			continue
		default:
			s.assume(l.Opposite())
			tried++
			if confl := s.Propagate(); confl.clause != nil {
				conflicted = true
			}
		}
		if tried < 0 || conflicted {
			break
		}
	}

	s.backtrackTo(0, false)

	if conflicted && tried > 0 && tried < len(lits) {
		s.Stats.Vivified++
		s.shrinkClause(c, append([]Literal(nil), lits[:tried]...))
	}
}

// shrinkClause replaces c's literal set with a proper, already-implied
// subset, updating watches, the occurrence index, and the proof trace,
// retiring c into a root-level fact/conflict or a virtual binary if it
// shrinks to fewer than three literals.
func (s *Solver) shrinkClause(c *Clause, newLits []Literal) {
	oldLits := append([]Literal(nil), c.literals...)

	if s.dense {
		s.removeOccurrence(c)
	}
	c.remove(s)

	c.literals = newLits
	s.recordProofAddition(newLits)
	s.recordProofDeletion(oldLits)

	switch len(newLits) {
	case 0:
		c.setGarbage()
		s.removeFromDB(c)
		s.unsat = true
	case 1:
		c.setGarbage()
		s.removeFromDB(c)
		if !s.enqueue(newLits[0], reason{}) {
			s.unsat = true
		}
	case 2:
		// Binary clauses are always virtual: retire c and watch the pair
		// directly instead of re-registering it as a real clause.
		learnt := c.isLearnt()
		c.setGarbage()
		s.removeFromDB(c)
		s.watchBinary(newLits[0], newLits[1], learnt)
	default:
		c.prevPos = 2
		s.watch(c, c.literals[0].Opposite(), c.literals[1])
		s.watch(c, c.literals[1].Opposite(), c.literals[0])
		if s.dense {
			s.addOccurrence(c)
		}
	}
}
