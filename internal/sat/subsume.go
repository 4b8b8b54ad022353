package sat

// shouldSubsume reports whether a backward-subsumption pass should run now,
// gated on a ticks budget the way elimination and vivification are, and only
// ever at decision level 0.
func (s *Solver) shouldSubsume() bool {
	if s.decisionLevel() != 0 {
		return false
	}
	return s.lims.subsume.ticks.hit(s.tk)
}

// subsume runs one bounded pass of backward subsumption and
// self-subsuming strengthening over the clause database, driven by each
// clause's occurrence list. A clause c subsumes c2 if every literal of c
// appears in c2 (c2 is then redundant and removed); if all but one literal
// match and that one literal appears negated, c2 can be strengthened by
// dropping it.
func (s *Solver) subsume() {
	s.enterDense()
	defer s.leaveDense()

	s.dedupeBinaries()

	all := make([]*Clause, 0, len(s.constraints)+len(s.learnts))
	all = append(all, s.constraints...)
	all = append(all, s.learnts...)

	n := len(all)
	budget := n/10 + 1
	for i := 0; i < n && budget > 0; i++ {
		c := all[(s.subsumeCursor+i)%max1(n)]
		if c.isGarbage() || c.Size() > s.options.MaxSubsumeClauseSize {
			continue
		}
		budget--
		s.subsumeWith(c)
	}
	if n > 0 {
		s.subsumeCursor = (s.subsumeCursor + n/10 + 1) % n
	}

	interval := uint64(float64(1_000_000) * s.options.SubsumeTicksFraction)
	if interval == 0 {
		interval = 1
	}
	s.lims.subsume.ticks.limit = uint64(s.tk) + interval
}

func max1(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// subsumeWith tries c against every other clause sharing c's rarest
// literal, the classic occurrence-list optimization (touching only clauses
// that could possibly be subsumed by c).
func (s *Solver) subsumeWith(c *Clause) {
	pivot := c.literals[0]
	for _, l := range c.literals[1:] {
		if len(s.occurs[l]) < len(s.occurs[pivot]) {
			pivot = l
		}
	}

	candidates := append([]*Clause(nil), s.occurs[pivot]...)
	for _, c2 := range candidates {
		if c2 == c || c2.isGarbage() || c2.Size() < c.Size() {
			continue
		}
		if s.selfSubsumingStrengthen(c, c2) {
			continue
		}
	}
}

// selfSubsumingStrengthen checks c against c2 once, either deleting c2 (a
// plain subsumption) or dropping one literal from c2 (strengthening), and
// reports whether it took either action. Touched clauses are re-added to
// the occurrence index under their shrunk literal set.
func (s *Solver) selfSubsumingStrengthen(c, c2 *Clause) bool {
	flippedIdx := -1
	for _, l := range c.literals {
		found := false
		flippedHere := -1
		for i, m := range c2.literals {
			if m == l {
				found = true
				break
			}
			if m == l.Opposite() {
				flippedHere = i
			}
		}
		if found {
			continue
		}
		if flippedHere < 0 || flippedIdx >= 0 {
			// Neither polarity present, or this would be a second flip:
			// c and c2 are unrelated for subsumption/strengthening purposes.
			return false
		}
		flippedIdx = flippedHere
	}

	if flippedIdx < 0 {
		s.deleteClause(c2)
		s.Stats.Subsumed++
		return true
	}

	s.strengthenClause(c2, flippedIdx)
	s.Stats.Strengthened++
	return true
}

// strengthenClause drops c2's literal at index idx, re-registering its
// watches and occurrence entries for the shrunk clause, or retiring it
// into a root-level fact/conflict or a virtual binary if it shrinks to
// fewer than three literals.
func (s *Solver) strengthenClause(c2 *Clause, idx int) {
	oldLit0, oldLit1 := c2.literals[0], c2.literals[1]
	dropped := c2.literals[idx]

	s.removeOccurrence(c2)
	s.unwatch(c2, oldLit0.Opposite())
	s.unwatch(c2, oldLit1.Opposite())

	c2.literals[idx] = c2.literals[len(c2.literals)-1]
	c2.literals = c2.literals[:len(c2.literals)-1]

	s.recordProofAddition(c2.literals)
	s.recordProofDeletion(append(append([]Literal(nil), c2.literals...), dropped))

	switch len(c2.literals) {
	case 0:
		c2.setGarbage()
		s.removeFromDB(c2)
		s.unsat = true
	case 1:
		c2.setGarbage()
		s.removeFromDB(c2)
		if !s.enqueue(c2.literals[0], reason{}) {
			s.unsat = true
		}
	case 2:
		// Binary clauses are always virtual: retire the *Clause and watch
		// the pair directly instead of re-registering it as a real clause.
		l0, l1 := c2.literals[0], c2.literals[1]
		learnt := c2.isLearnt()
		c2.setGarbage()
		s.removeFromDB(c2)
		s.watchBinary(l0, l1, learnt)
	default:
		c2.prevPos = 2
		s.watch(c2, c2.literals[0].Opposite(), c2.literals[1])
		s.watch(c2, c2.literals[1].Opposite(), c2.literals[0])
		s.addOccurrence(c2)
	}
}

// dedupeBinaries removes duplicate virtual binary clauses (the same
// unordered pair of literals watched twice), which subsumption would
// otherwise never touch since binaries are not indexed in occurs.
func (s *Solver) dedupeBinaries() {
	seen := make(map[[2]Literal]bool)
	for l := Literal(0); int(l) < len(s.watches); l++ {
		ws := s.watches[l]
		k := 0
		for _, w := range ws {
			if !w.isBinary {
				ws[k] = w
				k++
				continue
			}
			key := [2]Literal{l, w.other}
			if seen[key] {
				// Drop this list's half of a duplicate pair; the deletion is
				// recorded once, from the list of the smaller literal.
				if l.Opposite() < w.other {
					s.recordProofDeletion([]Literal{l.Opposite(), w.other})
				}
				continue
			}
			seen[key] = true
			ws[k] = w
			k++
		}
		s.watches[l] = ws[:k]
	}
}
