// Package checker implements a small in-process forward RUP/DRAT proof
// checker: it replays a sequence of clause additions and deletions against
// a growing clause database and verifies that every addition is RUP
// (reverse unit propagation) with respect to the clauses added so far.
package checker

import "fmt"

// Lit is a DIMACS-style signed literal: positive for the variable, negative
// for its negation, zero is invalid.
type Lit int32

func (l Lit) variable() int { return int(l.abs()) }
func (l Lit) abs() Lit {
	if l < 0 {
		return -l
	}
	return l
}

// Checker holds the clause database accumulated so far and the variable
// bookkeeping needed to run unit propagation during a RUP check.
type Checker struct {
	clauses []clauseEntry
	byLit   map[Lit][]int // literal -> indices of clauses containing it, for propagation
}

type clauseEntry struct {
	lits   []Lit
	active bool // false once deleted
}

// New returns an empty Checker.
func New() *Checker {
	return &Checker{byLit: map[Lit][]int{}}
}

// AddOriginal registers an input clause without checking it: the original
// formula is trusted, only additions made during the proof are verified.
func (c *Checker) AddOriginal(lits []Lit) {
	c.register(lits)
}

// CheckAddition verifies that lits is RUP against the current clause
// database, then adds it. It returns an error if the clause is not implied.
func (c *Checker) CheckAddition(lits []Lit) error {
	if !c.isRUP(lits) {
		return fmt.Errorf("checker: clause %v is not RUP against current database", asInts(lits))
	}
	c.register(lits)
	return nil
}

// CheckDeletion marks the most recent active clause matching lits as
// deleted. It returns an error if no such clause is present.
func (c *Checker) CheckDeletion(lits []Lit) error {
	idx, ok := c.find(lits)
	if !ok {
		return fmt.Errorf("checker: deleting clause %v that was never added", asInts(lits))
	}
	c.clauses[idx].active = false
	for _, l := range lits {
		c.byLit[l] = removeIndex(c.byLit[l], idx)
	}
	return nil
}

func (c *Checker) register(lits []Lit) {
	idx := len(c.clauses)
	cp := append([]Lit(nil), lits...)
	c.clauses = append(c.clauses, clauseEntry{lits: cp, active: true})
	for _, l := range cp {
		c.byLit[l] = append(c.byLit[l], idx)
	}
}

func (c *Checker) find(lits []Lit) (int, bool) {
	if len(lits) == 0 {
		return -1, false
	}
	candidates := c.byLit[lits[0]]
	for i := len(candidates) - 1; i >= 0; i-- {
		idx := candidates[i]
		e := c.clauses[idx]
		if e.active && sameClause(e.lits, lits) {
			return idx, true
		}
	}
	return -1, false
}

// isRUP checks the reverse-unit-propagation property: negate every literal
// of the candidate clause, propagate to a fixpoint over the active
// database, and require that propagation reaches a conflict (an empty
// clause falsified under the trial assignment).
func (c *Checker) isRUP(lits []Lit) bool {
	trial := map[int]bool{}
	queue := make([]Lit, 0, len(lits))
	for _, l := range lits {
		neg := -l
		if v, ok := trial[neg.variable()]; ok {
			if v != (neg > 0) {
				return true // already contradictory before propagating
			}
			continue
		}
		trial[neg.variable()] = neg > 0
		queue = append(queue, neg)
	}

	for i := 0; i <= len(queue); i++ {
		for _, e := range c.clauses {
			if !e.active {
				continue
			}
			unit, falsified, sat := c.evalUnderTrial(e.lits, trial)
			if sat {
				continue
			}
			if falsified {
				return true // conflicting clause found
			}
			if unit == 0 {
				continue
			}
			v := unit.variable()
			if _, ok := trial[v]; ok {
				continue
			}
			trial[v] = unit > 0
			queue = append(queue, unit)
		}
	}
	return false
}

// evalUnderTrial reports whether clause lits is satisfied, falsified, or
// unit (returning the single undetermined literal) under trial.
func (c *Checker) evalUnderTrial(lits []Lit, trial map[int]bool) (unit Lit, falsified bool, sat bool) {
	undetermined := 0
	var last Lit
	for _, l := range lits {
		v, ok := trial[l.variable()]
		if !ok {
			undetermined++
			last = l
			continue
		}
		if v == (l > 0) {
			return 0, false, true
		}
	}
	if undetermined == 0 {
		return 0, true, false
	}
	if undetermined == 1 {
		return last, false, false
	}
	return 0, false, false
}

func sameClause(a, b []Lit) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[Lit]bool{}
	for _, l := range a {
		seen[l] = true
	}
	for _, l := range b {
		if !seen[l] {
			return false
		}
	}
	return true
}

func removeIndex(idxs []int, idx int) []int {
	out := idxs[:0]
	for _, i := range idxs {
		if i != idx {
			out = append(out, i)
		}
	}
	return out
}

func asInts(lits []Lit) []int {
	out := make([]int, len(lits))
	for i, l := range lits {
		out[i] = int(l)
	}
	return out
}
