package dltableau

import "testing"

func TestWorldByNameFindsWorldAcrossClone(t *testing.T) {
	in := NewInterpretation()
	w := in.AddWorld()
	w.name = "w1"
	in.RegisterWorldName("w1")
	w.relocate(NewAtom("A"))

	clone := in.Clone()
	cw := clone.WorldByName("w1")
	if cw == nil {
		t.Fatalf("expected clone to contain a world named w1")
	}
	if cw == w {
		t.Fatalf("clone's world must be a distinct pointer from the original")
	}
	if !cw.AllFormulas().Contains(NewAtom("A")) {
		t.Fatalf("clone's world lost its formula")
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	in := NewInterpretation()
	w := in.AddWorld()
	w.name = "w1"
	in.RegisterWorldName("w1")
	w.relocate(NewAtom("A"))

	clone := in.Clone()
	clone.WorldByName("w1").relocate(NewAtom("B"))

	if w.AllFormulas().Contains(NewAtom("B")) {
		t.Fatalf("mutating the clone must not affect the original")
	}
}

func TestCloneDeepCopiesCandidatesBlocking(t *testing.T) {
	in := NewInterpretation()
	w1 := in.AddWorld()
	w1.name = "w1"
	in.RegisterWorldName("w1")
	w2 := in.AddWorld()
	w2.name = "w2"
	in.RegisterWorldName("w2")

	blocked := NewFormulaSet()
	blocked.Add(NewDiamond("r", NewAtom("A")))
	w1.candidatesBlocking[w2] = map[string]*FormulaSet{"r": blocked}

	clone := in.Clone()
	cw1 := clone.WorldByName("w1")
	cw2 := clone.WorldByName("w2")

	if len(cw1.candidatesBlocking) != 1 {
		t.Fatalf("expected candidatesBlocking to survive the clone")
	}
	for candidate := range cw1.candidatesBlocking {
		if candidate != cw2 {
			t.Fatalf("candidatesBlocking must point at the clone's own world, not the original")
		}
	}
}

func TestRelatedAndUnrelatedWorlds(t *testing.T) {
	in := NewInterpretation()
	w1 := in.AddWorld()
	w1.name = "w1"
	w2 := in.AddWorld()
	w2.name = "w2"
	w3 := in.AddWorld()
	w3.name = "w3"
	in.AddEdge(w1, w2, "r")

	related := in.RelatedWorlds(w1, "r")
	if len(related) != 1 || related[0] != w2 {
		t.Fatalf("RelatedWorlds(w1, r) = %v, want [w2]", related)
	}

	unrelated := in.UnrelatedWorlds(w1, "r")
	if len(unrelated) != 2 {
		t.Fatalf("UnrelatedWorlds(w1, r) = %v, want w1 and w3", unrelated)
	}
}

func TestFreshWorldAndAtomNamesAvoidCollisions(t *testing.T) {
	in := NewInterpretation()
	in.RegisterWorldName("w1")
	in.RegisterAtomName("Fresh_Atom_1")

	if got := in.FreshWorldName(); got != "w2" {
		t.Fatalf("FreshWorldName() = %q, want w2", got)
	}
	if got := in.FreshAtomName(); got != "Fresh_Atom_2" {
		t.Fatalf("FreshAtomName() = %q, want Fresh_Atom_2", got)
	}
}
