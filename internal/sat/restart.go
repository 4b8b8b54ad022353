package sat

// shouldRestart reports whether the search should unwind to level 0 right
// now, using a different trigger per mode: in
// focused mode a glue-EMA trigger (the recent glue average spiking over the
// long-run average signals the search has gotten "stuck"), in stable mode a
// reluctant-doubling (Luby) schedule gated purely on conflict count.
func (s *Solver) shouldRestart() bool {
	if !s.options.EnableRestart {
		return false
	}
	if s.decisionLevel() == 0 {
		return false
	}

	if s.stable {
		return s.Stats.Conflicts >= s.lims.restart
	}

	if s.Stats.Conflicts < s.lims.restart {
		return false
	}
	avg := &s.avgs[0]
	if !avg.slowGlue.hasEnoughSamples() {
		return false
	}
	return avg.fastGlue.unbiased() >= s.options.RestartMargin*avg.slowGlue.unbiased()
}

// restart unwinds to level 0 and arms the next restart limit.
func (s *Solver) restart() {
	if s.stable {
		s.saveTarget()
	}
	s.backtrackTo(0, s.options.EnableChronological)
	s.Stats.Restarts++

	if s.Stats.Restarts%1000 == 0 {
		s.logger.Separator()
	}
	s.logger.Report(2, "restarts %8d  conflicts %8d  learnts %6d  vars %6d",
		s.Stats.Restarts, s.Stats.Conflicts, len(s.learnts), s.NumVariables())

	if s.stable {
		term := s.reluctantSt.next()
		s.lims.restart = s.Stats.Conflicts + int64(term)*int64(s.options.StableRestartInterval)
	} else {
		s.lims.restart = s.Stats.Conflicts + int64(s.options.FocusedRestartInterval)
	}
}

// hasEnoughSamples reports whether the EMA has absorbed enough updates that
// its bias-corrected value is meaningful, avoiding spurious restarts from a
// fast-glue average that's still close to its initial zero value.
func (e *ema) hasEnoughSamples() bool {
	return e.exp < 0.9
}
