package sat

import "testing"

func TestLiteralPolarityAndVarID(t *testing.T) {
	for v := 0; v < 5; v++ {
		pos := PositiveLiteral(v)
		neg := NegativeLiteral(v)

		if !pos.IsPositive() {
			t.Errorf("PositiveLiteral(%d) should be positive", v)
		}
		if neg.IsPositive() {
			t.Errorf("NegativeLiteral(%d) should not be positive", v)
		}
		if pos.VarID() != v || neg.VarID() != v {
			t.Errorf("VarID mismatch: pos=%d neg=%d, want %d", pos.VarID(), neg.VarID(), v)
		}
	}
}

func TestLiteralOpposite(t *testing.T) {
	l := PositiveLiteral(3)
	if l.Opposite() != NegativeLiteral(3) {
		t.Errorf("Opposite of PositiveLiteral(3) should be NegativeLiteral(3)")
	}
	if l.Opposite().Opposite() != l {
		t.Error("Opposite should be its own inverse")
	}
}

func TestLiteralString(t *testing.T) {
	cases := []struct {
		l    Literal
		want string
	}{
		{PositiveLiteral(0), "1"},
		{NegativeLiteral(0), "-1"},
		{PositiveLiteral(41), "42"},
		{InvalidLiteral, "INVALID"},
	}
	for _, c := range cases {
		if got := c.l.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
