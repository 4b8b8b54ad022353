package sat

import "time"

// Solve runs the CDCL main loop to completion (or until a configured stop
// condition fires), returning the terminal status. It alternates between
// propagation, conflict analysis, and inprocessing passes, switching between
// focused and stable search modes and backing off via restarts.
func (s *Solver) Solve() Status {
	s.startTime = time.Now()
	s.logger.Separator()
	s.logger.Report(1, "vars %d  clauses %d", s.NumVariables(), s.NumConstraints())
	s.logger.Separator()

	if s.unsat {
		return StatusUnsatisfiable
	}

	if s.options.EnableEliminate || s.options.EnableSubsume {
		if !s.preprocess() {
			return StatusUnsatisfiable
		}
	}

	for {
		s.Stats.Ticks = uint64(s.tk)

		if s.unsat {
			return StatusUnsatisfiable
		}

		confl := s.Propagate()
		if confl.clause != nil {
			if !s.handleConflict(confl) {
				return StatusUnsatisfiable
			}
			continue
		}

		if s.shouldStop() {
			return StatusUnknown
		}

		switch {
		case s.shouldRestart():
			s.restart()
			continue
		case s.options.EnableStableMode && s.shouldSwitchMode():
			s.switchMode()
			continue
		case s.shouldRephase():
			s.rephase()
			continue
		case s.options.EnableReduce && s.shouldReduce():
			s.reduceDB()
			continue
		case s.options.EnableSubsume && s.shouldSubsume():
			s.subsume()
			continue
		case s.options.EnableEliminate && s.shouldEliminate():
			s.eliminate()
			continue
		case s.options.EnableVivify && s.shouldVivify():
			s.vivify()
			continue
		}

		if s.allAssigned() {
			s.saveModel()
			s.backtrackTo(0, false)
			return StatusSatisfiable
		}
		if s.stable {
			s.saveIfBest()
		}

		s.decide()
	}
}

// handleConflict analyzes one BCP conflict and applies its result, reporting
// false if the conflict proves the formula unsatisfiable.
func (s *Solver) handleConflict(confl conflict) bool {
	level := s.decisionLevel()
	if level == 0 {
		return false
	}
	s.Stats.Conflicts++

	idx := 0
	if s.stable {
		idx = 1
	}
	s.avgs[idx].updateOnConflict(computeGlue(s, confl.clause.literals), level, s.NumVariables(), s.trail.Len(), s.Stats.Decisions)

	a := s.analyze(confl)
	if a.forced {
		s.backtrackTo(a.forcedLevel, true)
		if !s.enqueue(a.forcedLit, a.forcedReason) {
			panic("sat: forced literal from chronological shortcut cannot conflict")
		}
		return true
	}

	s.backtrackTo(a.backtrack, s.options.EnableChronological)
	s.learnClause(a.learnt, a.glue)
	return true
}

// learnClause installs the asserting clause produced by analysis and
// immediately enqueues its asserting literal, mirroring the size dispatch of
// newClauseOrFact but for redundant (learnt) clauses, which are already
// guaranteed free of tautologies and duplicates.
func (s *Solver) learnClause(learnt []Literal, glue uint32) {
	s.recordProofAddition(learnt)

	switch len(learnt) {
	case 1:
		if !s.enqueue(learnt[0], reason{}) {
			panic("sat: unit learnt clause cannot conflict")
		}
	case 2:
		s.watchBinary(learnt[0], learnt[1], true)
		if !s.enqueue(learnt[0], binaryReason(learnt[1].Opposite(), true)) {
			panic("sat: asserting literal of a learnt binary clause cannot conflict")
		}
	default:
		c := newClause(s, learnt, true)
		c.glue = glue
		s.registerLearnt(c)
		if !s.enqueue(c.literals[0], clauseReason(c)) {
			panic("sat: asserting literal of a learnt clause cannot conflict")
		}
	}
}

// allAssigned reports whether every active (non-eliminated) variable has a
// value, the search's satisfiability stopping condition.
func (s *Solver) allAssigned() bool {
	return s.trail.Len()+s.eliminatedCount == s.NumVariables()
}

// saveModel records the current total assignment as a satisfying model,
// reconstructing eliminated variables via the extension stack.
func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for v := 0; v < s.NumVariables(); v++ {
		model[v] = s.VarValue(v) == True
	}
	s.extendModel(model)
	s.Models = append(s.Models, model)
}
