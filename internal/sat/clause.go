package sat

import "strings"

// clauseStatus is a bitmask of the lifecycle flags attached to a Clause.
type clauseStatus uint8

const (
	statusGarbage   clauseStatus = 0b00001
	statusLearnt    clauseStatus = 0b00010
	statusProtected clauseStatus = 0b00100
	statusSubsumed  clauseStatus = 0b01000
	statusVivify    clauseStatus = 0b10000
)

// maxGlue bounds the glue (LBD) value stored in a clause header; clamping at
// this value keeps it cheap to store while never affecting tiering decisions
// since anything this high is always tier-3.
const maxGlue = 1<<22 - 1

// Clause is a stored constraint of two or more literals. Binary clauses are
// not represented by *Clause at all in sparse mode: they live only as watch
// entries. A *Clause therefore always has len(literals) >= 2, and binary
// *Clause values only appear transiently (a materialized conflict); the
// dense-mode occurrence index holds only clauses of three or more literals.
type Clause struct {
	literals []Literal

	activity float64
	glue     uint32
	used     uint8 // 0..2, decremented on each reduce pass, bumped when the clause fires as a reason
	status   clauseStatus

	// prevPos caches the last successful search position for a replacement
	// watch, so Propagate resumes scanning there. It stays in [2, len(literals)].
	prevPos int
}

func (c *Clause) isGarbage() bool   { return c.status&statusGarbage != 0 }
func (c *Clause) isLearnt() bool    { return c.status&statusLearnt != 0 }
func (c *Clause) isProtected() bool { return c.status&statusProtected != 0 }
func (c *Clause) isSubsumed() bool  { return c.status&statusSubsumed != 0 }
func (c *Clause) needsVivify() bool { return c.status&statusVivify != 0 }

func (c *Clause) setGarbage()     { c.status |= statusGarbage }
func (c *Clause) setProtected()   { c.status |= statusProtected }
func (c *Clause) clearProtected() { c.status &^= statusProtected }
func (c *Clause) setSubsumed()    { c.status |= statusSubsumed }
func (c *Clause) setVivify()      { c.status |= statusVivify }
func (c *Clause) clearVivify()    { c.status &^= statusVivify }

// Literals returns the clause's literal array. Callers must not retain it
// across operations that might shrink the clause (Simplify, Strengthen).
func (c *Clause) Literals() []Literal { return c.literals }

func (c *Clause) Size() int { return len(c.literals) }

// computeGlue returns the number of distinct nonzero decision levels among
// the clause's assigned literals, capped at maxGlue.
func computeGlue(s *Solver, lits []Literal) uint32 {
	s.glueSeen.Clear()
	n := 0
	for _, l := range lits {
		lvl := s.trail.LevelOf(l.VarID())
		if lvl <= 0 {
			continue // unassigned and root level literals never count towards glue
		}
		if !s.glueSeen.Contains(lvl) {
			s.glueSeen.Add(lvl)
			n++
		}
	}
	if n > maxGlue {
		n = maxGlue
	}
	return uint32(n)
}

// newClause allocates a clause with at least two literals and registers its
// two watches. It does not perform tautology/duplicate/root-level filtering;
// callers (AddClause for irredundant, the learning path for redundant) are
// responsible for that.
func newClause(s *Solver, lits []Literal, learnt bool) *Clause {
	c := &Clause{
		literals: append([]Literal(nil), lits...),
		prevPos:  2,
	}
	if learnt {
		c.status |= statusLearnt
		c.glue = computeGlue(s, c.literals)

		// Watch the two literals assigned at the highest decision levels so
		// that backtracking never needs to rewatch a freshly learnt clause,
		// which matters once chronological backtracking can reuse trail
		// entries out of level order.
		hi, hiPos := -1, 0
		for i, l := range c.literals {
			if lvl := s.trail.LevelOf(l.VarID()); lvl > hi {
				hi, hiPos = lvl, i
			}
		}
		c.literals[hiPos], c.literals[1] = c.literals[1], c.literals[hiPos]
	}

	s.watch(c, c.literals[0].Opposite(), c.literals[1])
	s.watch(c, c.literals[1].Opposite(), c.literals[0])

	return c
}

// locked reports whether c is currently the reason for its first literal,
// which makes it unsafe to delete.
func (c *Clause) locked(s *Solver) bool {
	v := c.literals[0].VarID()
	r := s.trail.ReasonOf(v)
	return !r.isBinary && r.clause == c
}

// remove unregisters c's watches. The caller must already have marked c
// garbage; remove does not free the literal slice so that any in-flight
// iterator over it observes a stable (if dead) clause.
func (c *Clause) remove(s *Solver) {
	s.unwatch(c, c.literals[0].Opposite())
	s.unwatch(c, c.literals[1].Opposite())
}

// simplify drops literals falsified at the root level and reports whether
// the clause is satisfied at the root level (and can thus be dropped
// entirely).
func (c *Clause) simplify(s *Solver) bool {
	k := 0
	for _, l := range c.literals {
		switch s.LitValue(l) {
		case True:
			return true
		case False:
			// discard
		default:
			c.literals[k] = l
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

// propagate is invoked when literal l (the opposite of one of c's watches)
// has just been assigned true. It returns false on conflict.
func (c *Clause) propagate(s *Solver, l Literal) bool {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], opp
	}

	if s.LitValue(c.literals[0]) == True {
		s.watch(c, l, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], opp
			s.watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}
	for i := 2; i < c.prevPos; i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], opp
			s.watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	s.watch(c, l, c.literals[0])
	if c.isLearnt() && c.glue <= s.options.Tier2Glue && c.used < 2 {
		c.used++
	}
	return s.enqueue(c.literals[0], clauseReason(c))
}

// explainConflict appends the negation of every literal of c (the
// falsified conflict clause) to dst and returns the result.
func (c *Clause) explainConflict(dst []Literal) []Literal {
	dst = dst[:0]
	for _, l := range c.literals {
		dst = append(dst, l.Opposite())
	}
	return dst
}

// explainAssign appends the negation of every literal but c.literals[0]
// (the literal c forced) to dst and returns the result.
func (c *Clause) explainAssign(dst []Literal) []Literal {
	dst = dst[:0]
	for _, l := range c.literals[1:] {
		dst = append(dst, l.Opposite())
	}
	return dst
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
