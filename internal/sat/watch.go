package sat

// watch is one entry of a literal's watch list. A watch either points
// at a real clause (size >= 3, or a materialized binary) or is itself a
// "virtual" binary clause — in which case clause is nil and only other/
// redundant matter. The blocker is a cheap satisfaction check: if it is
// currently true, the watched clause does not need to be inspected at all.
type watch struct {
	clause    *Clause
	blocker   Literal
	isBinary  bool
	other     Literal // only used when isBinary
	redundant bool    // only used when isBinary
}

// watch registers clause c to fire when literal l becomes true, remembering
// blocker as the cheap satisfaction check.
func (s *Solver) watch(c *Clause, l Literal, blocker Literal) {
	s.watches[l] = append(s.watches[l], watch{clause: c, blocker: blocker})
}

// unwatch removes clause c from literal l's watch list.
func (s *Solver) unwatch(c *Clause, l Literal) {
	ws := s.watches[l]
	k := 0
	for _, w := range ws {
		if w.clause != c {
			ws[k] = w
			k++
		}
	}
	s.watches[l] = ws[:k]
}

// watchBinary registers a virtual binary clause {l, other} by
// adding a watch entry to both literals' lists. Unlike watch(), this never allocates a *Clause.
func (s *Solver) watchBinary(l, other Literal, redundant bool) {
	s.watches[l.Opposite()] = append(s.watches[l.Opposite()], watch{
		isBinary: true, other: other, redundant: redundant,
	})
	s.watches[other.Opposite()] = append(s.watches[other.Opposite()], watch{
		isBinary: true, other: l, redundant: redundant,
	})
}

// unwatchBinary removes the virtual binary clause {l, other} from both
// watch lists. Used by subsumption's duplicate-binary pass and by variable
// elimination when eliminating one of the two variables.
func (s *Solver) unwatchBinary(l, other Literal) {
	s.removeBinaryWatch(l.Opposite(), other)
	s.removeBinaryWatch(other.Opposite(), l)
}

func (s *Solver) removeBinaryWatch(at Literal, other Literal) {
	ws := s.watches[at]
	for i, w := range ws {
		if w.isBinary && w.other == other {
			ws[i] = ws[len(ws)-1]
			s.watches[at] = ws[:len(ws)-1]
			return
		}
	}
}

// materializeBinary fills the solver's single preallocated transient clause
// slot with the two-literal clause {implied, other} and returns it, so that
// code expecting a *Clause (conflict analysis) can treat a virtual binary
// conflict uniformly with a real one. Only
// one conflict clause is ever live at a time, so one slot suffices; it must
// never be stashed as a long-lived trail reason (see conflictAsReason).
func (s *Solver) materializeBinary(implied, other Literal, redundant bool) *Clause {
	c := &s.binSlot
	c.literals = append(c.literals[:0], implied, other)
	c.prevPos = 2
	c.status = 0
	if redundant {
		c.status |= statusLearnt
	}
	return c
}
