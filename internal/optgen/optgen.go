// Package optgen generates combinatorial sets of solver option toggles for
// option-fuzzing test harnesses: every boolean subsystem switch the solver
// exposes, combined pairwise (or up to some larger tuple size) while
// skipping combinations known to be incompatible.
package optgen

import "sort"

// Toggle names one boolean option switch (e.g. "chronological",
// "eliminate").
type Toggle string

// Pair is an unordered pair of toggles that must never both be enabled in
// the same configuration.
type Pair struct {
	A, B Toggle
}

// Generator enumerates configurations over a fixed universe of toggles.
type Generator struct {
	toggles      []Toggle
	incompatible map[Pair]bool
}

// New returns a Generator over the given toggles, rejecting any
// configuration that enables both members of an incompatible pair.
func New(toggles []Toggle, incompatible []Pair) *Generator {
	g := &Generator{toggles: append([]Toggle(nil), toggles...), incompatible: map[Pair]bool{}}
	for _, p := range incompatible {
		g.incompatible[normalize(p)] = true
	}
	sort.Slice(g.toggles, func(i, j int) bool { return g.toggles[i] < g.toggles[j] })
	return g
}

func normalize(p Pair) Pair {
	if p.A > p.B {
		return Pair{p.B, p.A}
	}
	return p
}

// Config is a single configuration: the set of toggles enabled together.
type Config []Toggle

func (c Config) valid(g *Generator) bool {
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if g.incompatible[normalize(Pair{c[i], c[j]})] {
				return false
			}
		}
	}
	return true
}

// All returns every valid configuration enabling between 1 and maxSize
// toggles simultaneously, in lexical order.
func (g *Generator) All(maxSize int) []Config {
	var out []Config
	var build func(start int, cur Config)
	build = func(start int, cur Config) {
		if len(cur) > 0 {
			cp := append(Config(nil), cur...)
			if cp.valid(g) {
				out = append(out, cp)
			} else {
				return // no superset of an invalid combination can be valid
			}
		}
		if len(cur) == maxSize {
			return
		}
		for i := start; i < len(g.toggles); i++ {
			build(i+1, append(cur, g.toggles[i]))
		}
	}
	build(0, nil)
	return out
}

// Invalid returns every pair of toggles registered as incompatible, sorted.
func (g *Generator) Invalid() []Pair {
	out := make([]Pair, 0, len(g.incompatible))
	for p := range g.incompatible {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Cover greedily builds a small list of valid configurations, each
// enabling up to groupSize toggles, such that every valid pair of toggles
// appears together in at least one configuration. This trades optimality
// for simplicity: the original tool instead searches for a minimum-size
// cover by encoding the problem as a SAT instance, which this generator
// does not attempt.
func (g *Generator) Cover(groupSize int) []Config {
	needed := map[Pair]bool{}
	for i := 0; i < len(g.toggles); i++ {
		for j := i + 1; j < len(g.toggles); j++ {
			p := Pair{g.toggles[i], g.toggles[j]}
			if !g.incompatible[normalize(p)] {
				needed[p] = true
			}
		}
	}

	var configs []Config
	for len(needed) > 0 {
		best := g.bestConfig(groupSize, needed)
		if len(best) < 2 {
			break // no remaining pair can be covered by a valid configuration
		}
		configs = append(configs, best)
		for i := 0; i < len(best); i++ {
			for j := i + 1; j < len(best); j++ {
				delete(needed, normalize(Pair{best[i], best[j]}))
			}
		}
	}
	return configs
}

// bestConfig greedily grows a configuration, at each step adding the
// toggle that covers the most still-needed pairs without violating an
// incompatibility.
func (g *Generator) bestConfig(groupSize int, needed map[Pair]bool) Config {
	var cur Config
	for len(cur) < groupSize {
		bestToggle := Toggle("")
		bestGain := 0
		for _, t := range g.toggles {
			if contains(cur, t) {
				continue
			}
			trial := append(append(Config(nil), cur...), t)
			if !trial.valid(g) {
				continue
			}
			gain := 0
			for _, other := range cur {
				if needed[normalize(Pair{t, other})] {
					gain++
				}
			}
			if len(cur) == 0 {
				// seed: the toggle that appears in the most still-needed pairs
				for _, other := range g.toggles {
					if other != t && needed[normalize(Pair{t, other})] {
						gain++
					}
				}
			}
			if gain > bestGain {
				bestGain, bestToggle = gain, t
			}
		}
		if bestToggle == "" {
			break
		}
		cur = append(cur, bestToggle)
	}
	return cur
}

func contains(c Config, t Toggle) bool {
	for _, x := range c {
		if x == t {
			return true
		}
	}
	return false
}
