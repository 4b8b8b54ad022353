package sat

import "sort"

// shouldReduce reports whether the learnt clause database has grown past
// its current conflict-count threshold.
func (s *Solver) shouldReduce() bool {
	return s.Stats.Conflicts >= s.lims.reduce.conflicts
}

// reduceDB removes roughly ReduceFraction of the non-essential learnt
// clauses under a three-tier glue policy: tier-1
// clauses (glue <= Tier1Glue) are never removed; tier-2 clauses (glue <=
// Tier2Glue) earn a "used" life each time they fire as a reason and survive
// a pass with lives left; tier-3 clauses (glue > Tier2Glue) get no such
// grace and are removed on sight once unlocked. Anything currently locked
// (a reason on the trail) or protected is always kept.
func (s *Solver) reduceDB() {
	s.Stats.Reduces++

	sort.Slice(s.learnts, func(i, j int) bool {
		a, b := s.learnts[i], s.learnts[j]
		if a.glue != b.glue {
			return a.glue > b.glue
		}
		return a.activity < b.activity
	})

	target := int(float64(len(s.learnts)) * s.options.ReduceFraction)
	kept := s.learnts[:0]
	removed := 0
	for _, c := range s.learnts {
		essential := c.glue <= s.options.Tier1Glue || c.locked(s) || c.isProtected()
		expendable := c.glue > s.options.Tier2Glue || c.used == 0
		if !essential && expendable && removed < target {
			c.setGarbage()
			c.remove(s)
			s.recordProofDeletion(c.literals)
			removed++
			s.Stats.Learned--
			continue
		}
		if c.used > 0 {
			c.used--
		}
		kept = append(kept, c)
	}
	s.learnts = kept

	s.lims.reduce.conflicts = s.Stats.Conflicts + int64(len(s.learnts)) + 1000
}
