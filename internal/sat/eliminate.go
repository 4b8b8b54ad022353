package sat

// shouldEliminate reports whether a bounded-variable-elimination pass
// should run now. Elimination only ever runs at decision level 0, since it
// permanently removes a variable from the problem.
func (s *Solver) shouldEliminate() bool {
	if s.decisionLevel() != 0 {
		return false
	}
	return s.lims.eliminate.ticks.hit(s.tk)
}

// eliminate runs one bounded pass of variable elimination over a slice of
// the active variables, rotating through the full set across repeated
// calls so no variable is starved.
func (s *Solver) eliminate() {
	s.enterDense()
	defer s.leaveDense()

	n := s.NumVariables()
	budget := n/10 + 1
	for i := 0; i < n && budget > 0; i++ {
		v := (s.elimCursor + i) % n
		if s.eliminated[v] || s.VarValue(v) != Unknown || s.fixed[v] {
			continue
		}
		budget--
		if !s.tryEliminate(v) {
			s.unsat = true
			return
		}
	}
	if n > 0 {
		s.elimCursor = (s.elimCursor + n/10 + 1) % n
	}

	interval := uint64(float64(1_000_000) * s.options.ElimTicksFraction)
	if interval == 0 {
		interval = 1
	}
	s.lims.eliminate.ticks.limit = uint64(s.tk) + interval
}

// tryEliminate attempts to eliminate v by resolution, accepting the
// elimination only if it does not increase the number of clauses mentioning
// the rest of the problem. Returns false if
// an empty resolvent is produced (the formula is unsatisfiable).
func (s *Solver) tryEliminate(v int) bool {
	pos, neg := PositiveLiteral(v), NegativeLiteral(v)

	posClauses := append([]*Clause(nil), s.occurs[pos]...)
	negClauses := append([]*Clause(nil), s.occurs[neg]...)
	posBin := s.binaryOccurrences(nil, pos)
	negBin := s.binaryOccurrences(nil, neg)

	total := len(posClauses) + len(negClauses) + len(posBin) + len(negBin)
	if total == 0 {
		s.fixVariable(v)
		return true
	}
	if total > s.options.ElimOccLimit {
		return true
	}

	posAll := make([][]Literal, 0, len(posClauses)+len(posBin))
	for _, c := range posClauses {
		posAll = append(posAll, c.literals)
	}
	for _, o := range posBin {
		posAll = append(posAll, []Literal{pos, o})
	}
	negAll := make([][]Literal, 0, len(negClauses)+len(negBin))
	for _, c := range negClauses {
		negAll = append(negAll, c.literals)
	}
	for _, o := range negBin {
		negAll = append(negAll, []Literal{neg, o})
	}

	var resolvents [][]Literal
	for _, pc := range posAll {
		for _, nc := range negAll {
			r, tautology := resolveOn(pc, nc, v)
			if tautology {
				continue
			}
			resolvents = append(resolvents, r)
		}
	}
	if len(resolvents) > total {
		return true // not profitable; leave v in place
	}

	// Resolvents go in while their antecedents are still present.
	for _, r := range resolvents {
		if !s.addResolvent(r) {
			return false
		}
	}

	stored := make([][]Literal, 0, len(posAll)+len(negAll))
	for _, lits := range posAll {
		stored = append(stored, append([]Literal(nil), lits...))
	}
	for _, lits := range negAll {
		stored = append(stored, append([]Literal(nil), lits...))
	}
	s.elimClauses[v] = stored
	s.elimOrder = append(s.elimOrder, v)

	for _, c := range posClauses {
		s.deleteClause(c)
	}
	for _, c := range negClauses {
		s.deleteClause(c)
	}
	for _, o := range posBin {
		s.unwatchBinary(pos, o)
		s.recordProofDeletion([]Literal{pos, o})
	}
	for _, o := range negBin {
		s.unwatchBinary(neg, o)
		s.recordProofDeletion([]Literal{neg, o})
	}

	s.eliminated[v] = true
	s.eliminatedCount++
	s.Stats.Eliminated++
	return true
}

// resolveOn resolves clauses pc and nc (which respectively contain v's
// positive and negative literal) on variable v, returning the combined
// clause and whether it is a tautology (some other variable appears with
// both polarities, making the resolvent trivially true and thus droppable).
func resolveOn(pc, nc []Literal, v int) ([]Literal, bool) {
	out := make([]Literal, 0, len(pc)+len(nc)-2)
	seen := make(map[Literal]bool, len(pc)+len(nc))
	for _, l := range pc {
		if l.VarID() == v {
			continue
		}
		if !seen[l] {
			out = append(out, l)
			seen[l] = true
		}
	}
	for _, l := range nc {
		if l.VarID() == v {
			continue
		}
		if seen[l.Opposite()] {
			return nil, true
		}
		if !seen[l] {
			out = append(out, l)
			seen[l] = true
		}
	}
	return out, false
}

// addResolvent installs a resolvent produced by elimination as an
// irredundant clause, updating the occurrence index if dense mode is
// active.
func (s *Solver) addResolvent(lits []Literal) bool {
	c, ok := s.newClauseOrFact(append([]Literal(nil), lits...), false)
	if c == nil {
		// newClauseOrFact logs only stored clauses; units and binaries are
		// logged here.
		s.recordProofAddition(lits)
	}
	if !ok {
		return false
	}
	if c != nil {
		s.constraints = append(s.constraints, c)
		if s.dense {
			s.addOccurrence(c)
		}
	}
	return true
}

// fixVariable marks a pure (occurrence-free) variable as eliminated without
// an extension-stack entry: with no remaining clauses to satisfy, extendModel
// sets it to true, which is as valid as any other value.
func (s *Solver) fixVariable(v int) {
	s.eliminated[v] = true
	s.eliminatedCount++
	s.Stats.Eliminated++
	s.fixed[v] = true
	s.elimClauses[v] = nil
	s.elimOrder = append(s.elimOrder, v)
}

// deleteClause marks c garbage, drops its watches and occurrence entries,
// records the deletion in the proof trace, and removes it from the owning
// database slice.
func (s *Solver) deleteClause(c *Clause) {
	c.setGarbage()
	c.remove(s)
	if s.dense {
		s.removeOccurrence(c)
	}
	s.recordProofDeletion(c.literals)
	s.removeFromDB(c)
}

func (s *Solver) removeFromDB(c *Clause) {
	db := &s.constraints
	if c.isLearnt() {
		db = &s.learnts
	}
	for i, lc := range *db {
		if lc == c {
			(*db)[i] = (*db)[len(*db)-1]
			*db = (*db)[:len(*db)-1]
			return
		}
	}
}

// extendModel reconstructs values for every eliminated variable in reverse
// elimination order, choosing the polarity (true first) that satisfies all
// of the clauses that mentioned it at elimination time. Correctness follows from bounded elimination only
// ever running when the rest of the formula does not depend on v's value.
func (s *Solver) extendModel(model []bool) {
	for i := len(s.elimOrder) - 1; i >= 0; i-- {
		v := s.elimOrder[i]
		model[v] = true
		if !clausesSatisfied(s.elimClauses[v], model) {
			model[v] = false
		}
	}
}

func clausesSatisfied(clauses [][]Literal, model []bool) bool {
	for _, lits := range clauses {
		ok := false
		for _, l := range lits {
			if l.IsPositive() == model[l.VarID()] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
