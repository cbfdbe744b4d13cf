package dltableau

import "testing"

func freshWorld(in *Interpretation, name string) *World {
	w := in.AddWorld()
	w.name = name
	in.RegisterWorldName(name)
	return w
}

func TestClashRuleDetectsDirectContradiction(t *testing.T) {
	in := NewInterpretation()
	w := freshWorld(in, "w1")
	w.relocate(NewAtom("A"))
	w.relocate(NewNegation(NewAtom("A")))

	_, clash, applied, _ := clashRule(in)
	if !clash || !applied {
		t.Fatalf("clashRule(A, ¬A) = clash=%v applied=%v, want true, true", clash, applied)
	}
}

func TestClashRuleNoClashOnConsistentWorld(t *testing.T) {
	in := NewInterpretation()
	w := freshWorld(in, "w1")
	w.relocate(NewAtom("A"))
	w.relocate(NewAtom("B"))

	_, clash, applied, _ := clashRule(in)
	if clash {
		t.Fatalf("did not expect a clash on A, B")
	}
	if applied {
		t.Fatalf("expected applied=false: sorting new formulas into their partitions is not a rule application")
	}
	if w.set(catAtoms).Len() != 2 {
		t.Fatalf("expected both atoms to be filed into catAtoms, got %d", w.set(catAtoms).Len())
	}
}

func TestDoubleNegRuleStripsDoubleNegation(t *testing.T) {
	in := NewInterpretation()
	w := freshWorld(in, "w1")
	w.set(catDoubleNeg).Add(NewNegation(NewNegation(NewAtom("A"))))

	_, _, applied, _ := doubleNegRule(in)
	if !applied {
		t.Fatalf("expected doubleNegRule to fire")
	}
	if !w.AllFormulas().Contains(NewAtom("A")) {
		t.Fatalf("expected A to be relocated into the world")
	}
}

func TestConjunctionRuleSplitsIntoBothConjuncts(t *testing.T) {
	in := NewInterpretation()
	w := freshWorld(in, "w1")
	w.set(catConjunction).Add(NewConjunction(NewAtom("A"), NewAtom("B")))

	_, _, applied, alts := conjunctionRule(in)
	if !applied || len(alts) != 0 {
		t.Fatalf("conjunctionRule is deterministic: applied=%v alts=%v", applied, alts)
	}
	if !w.AllFormulas().Contains(NewAtom("A")) || !w.AllFormulas().Contains(NewAtom("B")) {
		t.Fatalf("expected both conjuncts present after conjunctionRule")
	}
}

func TestNegatedConjunctionRuleForksOnBothNegations(t *testing.T) {
	in := NewInterpretation()
	w := freshWorld(in, "w1")
	w.set(catNegConjunction).Add(NewNegation(NewConjunction(NewAtom("A"), NewAtom("B"))))

	_, _, applied, alts := negatedConjunctionRule(in)
	if !applied || len(alts) != 1 {
		t.Fatalf("negatedConjunctionRule should fork into exactly one sibling, got applied=%v alts=%d", applied, len(alts))
	}

	if !w.AllFormulas().Contains(NewNegation(NewAtom("A"))) {
		t.Fatalf("current branch should carry ¬A")
	}

	sibling := alts[0]
	sw := sibling.WorldByName("w1")
	if sw == nil || !sw.AllFormulas().Contains(NewNegation(NewAtom("B"))) {
		t.Fatalf("sibling branch should carry ¬B")
	}
}

func TestRoleRule2PropagatesBoxObligationToRelatedWorlds(t *testing.T) {
	in := NewInterpretation()
	w1 := freshWorld(in, "w1")
	w2 := freshWorld(in, "w2")
	in.AddEdge(w1, w2, "r")
	w1.set(catNegDiamond).Add(NewNegation(NewDiamond("r", NewAtom("A"))))

	_, _, applied, _ := roleRule2(in)
	if !applied {
		t.Fatalf("expected roleRule2 to fire")
	}
	if !w2.AllFormulas().Contains(NewNegation(NewAtom("A"))) {
		t.Fatalf("expected ¬A to be pushed to the related world")
	}
	if w1.boxSubformulas["r"] == nil || w1.boxSubformulas["r"].Len() != 1 {
		t.Fatalf("expected the box obligation to be recorded under role r")
	}
}
