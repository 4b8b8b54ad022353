package sat

// preprocess runs subsumption and elimination to a local fixpoint before
// search begins. Returns false if either pass proves the formula
// unsatisfiable.
func (s *Solver) preprocess() bool {
	s.enterDense()
	defer s.leaveDense()

	for round, changed := 0, true; changed && round < 5; round++ {
		changed = false

		if s.options.EnableSubsume {
			before := s.Stats.Subsumed + s.Stats.Strengthened
			s.subsumeFull()
			if s.unsat {
				return false
			}
			if s.Stats.Subsumed+s.Stats.Strengthened > before {
				changed = true
			}
		}

		if s.options.EnableEliminate {
			before := s.eliminatedCount
			s.eliminateFull()
			if s.unsat {
				return false
			}
			if s.eliminatedCount > before {
				changed = true
			}
		}
	}
	return true
}

// subsumeFull runs backward subsumption/strengthening over the entire
// clause database once, unlike the bounded subsume() used during search.
func (s *Solver) subsumeFull() {
	s.dedupeBinaries()
	all := make([]*Clause, 0, len(s.constraints)+len(s.learnts))
	all = append(all, s.constraints...)
	all = append(all, s.learnts...)
	for _, c := range all {
		if c.isGarbage() || c.Size() > s.options.MaxSubsumeClauseSize {
			continue
		}
		s.subsumeWith(c)
	}
}

// eliminateFull runs bounded variable elimination over every active
// variable once, unlike the rotating, budgeted eliminate() used during
// search.
func (s *Solver) eliminateFull() {
	for v := 0; v < s.NumVariables(); v++ {
		if s.eliminated[v] || s.VarValue(v) != Unknown || s.fixed[v] {
			continue
		}
		if !s.tryEliminate(v) {
			s.unsat = true
			return
		}
	}
}
