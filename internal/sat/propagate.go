package sat

// conflict records the clause (or materialized virtual binary) that
// falsified during BCP, in a form conflict analysis can consume uniformly.
// A zero value (clause == nil) means "no conflict".
type conflict struct {
	clause *Clause
}

// Propagate drains the trail breadth-first from the propagate cursor,
// walking the watch list of each newly-true literal. It returns the
// falsified clause on conflict, or a zero conflict if the trail drained
// cleanly.
//
// Watchers of the literal under inspection are first moved into a scratch
// buffer and the real watch list is cleared, so that any watch registered
// while processing an entry (a clause rewatching itself, including back
// onto the same literal) appends into the now-empty list instead of racing
// with in-place compaction.
func (s *Solver) Propagate() conflict {
	for s.trail.cursor < s.trail.Len() {
		lit := s.trail.At(s.trail.cursor)
		s.trail.cursor++
		s.Stats.Propagations++

		s.tmpWatch = append(s.tmpWatch[:0], s.watches[lit]...)
		s.watches[lit] = s.watches[lit][:0]

		for i, w := range s.tmpWatch {
			s.tk++ // one cache-line touch per watch entry

			if w.isBinary {
				switch s.LitValue(w.other) {
				case True:
					s.watches[lit] = append(s.watches[lit], w)
				case False:
					confl := s.materializeBinary(lit.Opposite(), w.other, w.redundant)
					s.watches[lit] = append(s.watches[lit], w)
					s.watches[lit] = append(s.watches[lit], s.tmpWatch[i+1:]...)
					return conflict{clause: confl}
				default:
					s.watches[lit] = append(s.watches[lit], w)
					if !s.enqueue(w.other, binaryReason(lit, w.redundant)) {
						panic("sat: enqueue of an unassigned literal cannot conflict")
					}
				}
				continue
			}

			if s.LitValue(w.blocker) == True {
				s.watches[lit] = append(s.watches[lit], w)
				continue
			}
			s.tk += ticks(len(w.clause.literals) / 8)

			if w.clause.propagate(s, lit) {
				continue // w.clause rewatched itself via Watch/watch
			}

			s.watches[lit] = append(s.watches[lit], s.tmpWatch[i+1:]...)
			return conflict{clause: w.clause}
		}
	}

	return conflict{}
}
