package sat

// enterDense builds the per-literal occurrence lists used by elimination
// and subsumption. Binary clauses are not indexed
// here: they are cheap enough to enumerate directly from watch lists.
func (s *Solver) enterDense() {
	if s.dense {
		return
	}
	s.dense = true
	for _, c := range s.constraints {
		s.addOccurrence(c)
	}
	for _, c := range s.learnts {
		s.addOccurrence(c)
	}
}

// leaveDense discards the occurrence lists; watches remain the sole index
// once search resumes.
func (s *Solver) leaveDense() {
	if !s.dense {
		return
	}
	s.dense = false
	for i := range s.occurs {
		s.occurs[i] = nil
	}
}

func (s *Solver) addOccurrence(c *Clause) {
	if c.isGarbage() {
		return
	}
	for _, l := range c.literals {
		s.occurs[l] = append(s.occurs[l], c)
	}
}

func (s *Solver) removeOccurrence(c *Clause) {
	for _, l := range c.literals {
		ws := s.occurs[l]
		for i, oc := range ws {
			if oc == c {
				ws[i] = ws[len(ws)-1]
				s.occurs[l] = ws[:len(ws)-1]
				break
			}
		}
	}
}

// binaryOccurrences appends every literal paired with l in a (non-garbage)
// virtual binary clause, i.e. the "other" literal of each binary watch on
// l.Opposite().
func (s *Solver) binaryOccurrences(dst []Literal, l Literal) []Literal {
	for _, w := range s.watches[l.Opposite()] {
		if w.isBinary {
			dst = append(dst, w.other)
		}
	}
	return dst
}
