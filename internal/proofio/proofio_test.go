package proofio

import (
	"bytes"
	"testing"

	"github.com/satkit/satkit/internal/sat"
)

func lits(signed ...int) []sat.Literal {
	out := make([]sat.Literal, len(signed))
	for i, s := range signed {
		if s < 0 {
			out[i] = sat.NegativeLiteral(-s - 1)
		} else {
			out[i] = sat.PositiveLiteral(s - 1)
		}
	}
	return out
}

func TestASCIIAddition(t *testing.T) {
	var buf bytes.Buffer
	w := NewASCII(&buf)
	if err := w.AddClause(lits(1, -2, 3)); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	if err := w.Err(); err != nil {
		t.Fatalf("Err: %s", err)
	}
	if got, want := buf.String(), "1 -2 3 0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestASCIIDeletion(t *testing.T) {
	var buf bytes.Buffer
	w := NewASCII(&buf)
	if err := w.DeleteClause(lits(1, -2)); err != nil {
		t.Fatalf("DeleteClause: %s", err)
	}
	w.Err()
	if got, want := buf.String(), "d 1 -2 0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBinaryAdditionRoundTripsLiteralBias(t *testing.T) {
	var buf bytes.Buffer
	w := NewBinary(&buf)
	if err := w.AddClause(lits(1)); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	w.Err()

	// 'a' marker, then literal 1 re-biased to 2*1+0=2 (fits in one byte,
	// high bit clear), then the zero terminator.
	want := []byte{'a', 2, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestBinaryNegativeLiteralSetsSignBit(t *testing.T) {
	var buf bytes.Buffer
	w := NewBinary(&buf)
	w.AddClause(lits(-1))
	w.Err()

	// -1 re-biases to 2*1+1=3.
	want := []byte{'a', 3, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestBinaryDeletionUsesDMarker(t *testing.T) {
	var buf bytes.Buffer
	w := NewBinary(&buf)
	w.DeleteClause(lits(2))
	w.Err()

	want := []byte{'d', 4, 0} // 2*2+0=4
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestBinaryLargeLiteralUsesContinuationBytes(t *testing.T) {
	var buf bytes.Buffer
	w := NewBinary(&buf)
	// Variable 100 (external 101): 2*101+0 = 202 = 0b1100_1010, which does
	// not fit in 7 bits, so two bytes are expected.
	w.AddClause(lits(101))
	w.Err()

	got := buf.Bytes()
	if len(got) != 4 { // 'a', two literal bytes, terminator
		t.Fatalf("got %d bytes, want 4: %v", len(got), got)
	}
	if got[0] != 'a' || got[len(got)-1] != 0 {
		t.Errorf("malformed frame: %v", got)
	}
	if got[1]&0x80 == 0 {
		t.Errorf("first literal byte should have the continuation bit set: %v", got)
	}
}
