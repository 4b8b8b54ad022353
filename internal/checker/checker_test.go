package checker

import "testing"

func TestCheckAdditionAcceptsRUPClause(t *testing.T) {
	c := New()
	c.AddOriginal([]Lit{1, 2})  // x1 v x2
	c.AddOriginal([]Lit{-1, 3}) // -x1 v x3
	c.AddOriginal([]Lit{-2, 3}) // -x2 v x3

	// x3 is implied: negating it and propagating forces x1=F and x2=F via
	// the last two clauses, falsifying the first clause.
	if err := c.CheckAddition([]Lit{3}); err != nil {
		t.Errorf("expected clause {3} to be accepted as RUP: %s", err)
	}
}

func TestCheckAdditionRejectsNonRUPClause(t *testing.T) {
	c := New()
	c.AddOriginal([]Lit{1, 2})

	if err := c.CheckAddition([]Lit{1}); err == nil {
		t.Error("expected clause {1} to be rejected: it is not implied by {1,2}")
	}
}

func TestCheckDeletionRequiresPriorAddition(t *testing.T) {
	c := New()
	if err := c.CheckDeletion([]Lit{1, 2}); err == nil {
		t.Error("expected deletion of a never-added clause to fail")
	}

	c.AddOriginal([]Lit{1, 2})
	if err := c.CheckDeletion([]Lit{1, 2}); err != nil {
		t.Errorf("expected deletion to succeed once added: %s", err)
	}
	if err := c.CheckDeletion([]Lit{1, 2}); err == nil {
		t.Error("expected a second deletion of the same clause to fail")
	}
}

func TestCheckAdditionOfEmptyClauseRequiresExistingConflict(t *testing.T) {
	c := New()
	c.AddOriginal([]Lit{1})
	c.AddOriginal([]Lit{-1})

	if err := c.CheckAddition(nil); err != nil {
		t.Errorf("expected the empty clause to be RUP given a direct contradiction: %s", err)
	}

	d := New()
	d.AddOriginal([]Lit{1, 2})
	if err := d.CheckAddition(nil); err == nil {
		t.Error("expected the empty clause to be rejected when propagation reaches no conflict")
	}
}
