package sat

// pickBranchVariable selects the next unassigned, non-eliminated variable to
// decide on, dispatching to VMTF in focused mode and VSIDS in stable mode.
func (s *Solver) pickBranchVariable() int {
	for {
		var v int
		if s.stable {
			v = s.vsids.popUnassigned(s)
		} else {
			v = s.vmtf.nextUnassigned(s)
			if v == vmtfNone {
				panic("sat: pickBranchVariable called with no unassigned, active variable remaining")
			}
		}
		if s.activeVariable(v) {
			return v
		}
		// An eliminated variable can still sit at the front of either
		// structure; it never gets assigned, so just keep going. VSIDS
		// already popped it (discarded for good); VMTF's cursor will
		// advance past it the next time nextUnassigned walks prev-links
		// only if it becomes "assigned" — eliminated variables are forced
		// into a fixed value instead, see eliminate.go.
		if !s.stable {
			s.vmtf.search = s.vmtf.links[v].prev
		}
	}
}

// decidePhase chooses which polarity to assign the decided variable,
// preferring the target phase (set just before a stable-mode restart), then
// the saved phase, then true.
func (s *Solver) decidePhase(v int) LBool {
	if s.options.PhaseSaving && s.haveTarget && s.target[v] != Unknown {
		return s.target[v]
	}
	if s.options.PhaseSaving && s.saved[v] != Unknown {
		return s.saved[v]
	}
	return True
}

// decide makes a new decision, incrementing the decision level.
func (s *Solver) decide() {
	v := s.pickBranchVariable()
	phase := s.decidePhase(v)
	l := PositiveLiteral(v)
	if phase == False {
		l = NegativeLiteral(v)
	}
	s.assume(l)
}
