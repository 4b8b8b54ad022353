package sat

import "fmt"

// Literal represents a literal: a boolean variable or its negation. Variable
// v's literals are 2*v (positive) and 2*v+1 (negative), matching the wire
// encoding in the DIMACS/DRAT collaborators.
type Literal int32

// InvalidLiteral is the reserved all-ones sentinel used where no literal is
// available (e.g. a conflict not caused by propagating a specific literal).
const InvalidLiteral Literal = -1

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v*2 + 1)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l == InvalidLiteral {
		return "INVALID"
	}
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID()+1)
	}
	return fmt.Sprintf("-%d", l.VarID()+1)
}
