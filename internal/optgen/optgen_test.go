package optgen

import "testing"

func TestAllRespectsMaxSize(t *testing.T) {
	g := New([]Toggle{"a", "b", "c"}, nil)
	configs := g.All(2)
	for _, c := range configs {
		if len(c) == 0 || len(c) > 2 {
			t.Errorf("config %v violates max size 2", c)
		}
	}
	// 3 singletons + 3 pairs = 6 configurations.
	if len(configs) != 6 {
		t.Errorf("got %d configs, want 6: %v", len(configs), configs)
	}
}

func TestAllExcludesIncompatiblePairs(t *testing.T) {
	g := New([]Toggle{"a", "b"}, []Pair{{"a", "b"}})
	for _, c := range g.All(2) {
		if len(c) == 2 {
			t.Errorf("incompatible pair %v should never appear together", c)
		}
	}
}

func TestInvalidNormalizesPairOrder(t *testing.T) {
	g := New([]Toggle{"a", "b"}, []Pair{{"b", "a"}})
	invalid := g.Invalid()
	if len(invalid) != 1 || invalid[0] != (Pair{"a", "b"}) {
		t.Errorf("got %v, want a single normalized pair {a b}", invalid)
	}
}

func TestCoverHitsEveryCompatiblePair(t *testing.T) {
	toggles := []Toggle{"a", "b", "c", "d"}
	g := New(toggles, []Pair{{"a", "c"}})

	needed := map[Pair]bool{}
	for i := 0; i < len(toggles); i++ {
		for j := i + 1; j < len(toggles); j++ {
			p := normalize(Pair{toggles[i], toggles[j]})
			if !g.incompatible[p] {
				needed[p] = true
			}
		}
	}

	for _, cfg := range g.Cover(3) {
		for i := 0; i < len(cfg); i++ {
			for j := i + 1; j < len(cfg); j++ {
				delete(needed, normalize(Pair{cfg[i], cfg[j]}))
			}
		}
	}
	if len(needed) != 0 {
		t.Errorf("cover left pairs uncovered: %v", needed)
	}
}

func TestCoverNeverEmitsIncompatiblePair(t *testing.T) {
	g := New([]Toggle{"a", "b", "c"}, []Pair{{"a", "b"}})
	for _, cfg := range g.Cover(3) {
		if !cfg.valid(g) {
			t.Errorf("cover emitted invalid configuration %v", cfg)
		}
	}
}
