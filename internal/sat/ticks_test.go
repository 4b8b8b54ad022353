package sat

import "testing"

func TestReluctantSequenceMatchesLuby(t *testing.T) {
	var r reluctant
	r.reset()

	// The first terms of the reluctant-doubling ("Luby") sequence.
	want := []uint64{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}
	for i, w := range want {
		if got := r.next(); got != w {
			t.Errorf("term %d: got %d, want %d", i, got, w)
		}
	}
}

func TestTickLimitHit(t *testing.T) {
	lim := tickLimit{limit: 100}
	if lim.hit(99) {
		t.Error("limit 100 should not be hit at tick 99")
	}
	if !lim.hit(100) {
		t.Error("limit 100 should be hit at tick 100")
	}
	if !lim.hit(101) {
		t.Error("limit 100 should stay hit at tick 101")
	}
}

func TestScaleQuadratic(t *testing.T) {
	if got := scaleQuadratic(10, 3); got != 90 {
		t.Errorf("scaleQuadratic(10, 3) = %d, want 90", got)
	}
}

func TestLog2Ceil(t *testing.T) {
	cases := []struct {
		n    uint64
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
	}
	for _, c := range cases {
		if got := log2ceil(c.n); got != c.want {
			t.Errorf("log2ceil(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
