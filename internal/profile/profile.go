// Package profile implements named phase timers with an interrupt-safe
// pending stack: if the process stops mid-phase (a timeout or a signal),
// every still-open phase can be flushed and its elapsed time attributed
// correctly, since start/stop must nest but interruption need not respect
// that nesting.
package profile

import (
	"fmt"
	"io"
	"sort"
	"time"
)

type phase struct {
	name  string
	start time.Time
	total time.Duration
	root  bool // true if at least one invocation started with an empty stack
}

// Set is a named collection of phase timers, started and stopped in
// properly nested order (Start(A); Start(B); ...; Stop(B); Stop(A)). The
// reported "total" sums only root phases (those never nested inside
// another), so a phase like "decide" started inside "solve" does not get
// double-counted against solve's own time.
type Set struct {
	phases  map[string]*phase
	pending []*phase
}

// NewSet returns an empty profiling set.
func NewSet() *Set {
	return &Set{phases: map[string]*phase{}}
}

func (s *Set) phaseFor(name string) *phase {
	p, ok := s.phases[name]
	if !ok {
		p = &phase{name: name}
		s.phases[name] = p
	}
	return p
}

// Start begins timing the named phase, pushing it onto the pending stack.
func (s *Set) Start(name string) {
	p := s.phaseFor(name)
	if len(s.pending) == 0 {
		p.root = true
	}
	p.start = time.Now()
	s.pending = append(s.pending, p)
}

// Stop ends timing the named phase, which must be the top of the pending
// stack (Start/Stop calls must nest).
func (s *Set) Stop(name string) {
	n := len(s.pending)
	if n == 0 || s.pending[n-1].name != name {
		panic(fmt.Sprintf("profile: Stop(%q) does not match the open phase", name))
	}
	s.stopTop(time.Now())
}

func (s *Set) stopTop(now time.Time) {
	n := len(s.pending)
	p := s.pending[n-1]
	s.pending = s.pending[:n-1]
	p.total += now.Sub(p.start)
}

// Flush stops every still-pending phase, attributing elapsed time up to
// now. Safe to call after an interruption that skipped the matching Stop
// calls.
func (s *Set) Flush() {
	now := time.Now()
	for len(s.pending) > 0 {
		s.stopTop(now)
	}
}

// Elapsed returns the accumulated duration for name, including time from
// any in-progress (not yet stopped) invocation.
func (s *Set) Elapsed(name string) time.Duration {
	p, ok := s.phases[name]
	if !ok {
		return 0
	}
	total := p.total
	for _, pending := range s.pending {
		if pending == p {
			total += time.Since(p.start)
		}
	}
	return total
}

// Report flushes every pending phase and writes a sorted (by descending
// time, then name) table to w, in the SAT-competition "c " comment style.
func (s *Set) Report(w io.Writer, verbose bool) {
	s.Flush()

	names := make([]string, 0, len(s.phases))
	for name, p := range s.phases {
		if verbose || p.total > 0 {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.phases[names[i]], s.phases[names[j]]
		if a.total != b.total {
			return a.total > b.total
		}
		return a.name < b.name
	})

	var total time.Duration
	for _, p := range s.phases {
		if p.root {
			total += p.total
		}
	}

	for _, name := range names {
		p := s.phases[name]
		pct := 0.0
		if total > 0 {
			pct = 100 * p.total.Seconds() / total.Seconds()
		}
		fmt.Fprintf(w, "c %14.2f  %6.2f %%  %s\n", p.total.Seconds(), pct, name)
	}
	fmt.Fprintf(w, "c =============================================\n")
	fmt.Fprintf(w, "c %14.2f  %6.2f %%  total\n", total.Seconds(), 100.0)
}
