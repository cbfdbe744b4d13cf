package dltableau

import "testing"

func TestConjunctionEqualIsCommutative(t *testing.T) {
	a := NewAtom("A")
	b := NewAtom("B")

	ab := NewConjunction(a, b)
	ba := NewConjunction(b, a)

	if !ab.Equal(ba) {
		t.Fatalf("expected A∧B to equal B∧A")
	}
	if ab.Hash() != ba.Hash() {
		t.Fatalf("expected A∧B and B∧A to hash equally, got %d != %d", ab.Hash(), ba.Hash())
	}
}

func TestConjunctionNotEqualToDifferentOperands(t *testing.T) {
	ab := NewConjunction(NewAtom("A"), NewAtom("B"))
	ac := NewConjunction(NewAtom("A"), NewAtom("C"))

	if ab.Equal(ac) {
		t.Fatalf("did not expect A∧B to equal A∧C")
	}
}

func TestConditionalNormalize(t *testing.T) {
	a, b := NewAtom("A"), NewAtom("B")
	cond := NewConditional(a, b)

	want := NewNegation(NewConjunction(a, NewNegation(b)))
	got := cond.Normalize()

	if !got.Equal(want) {
		t.Fatalf("Normalize() = %s, want %s", got.String(), want.String())
	}
}

func TestGlobalDescBinaryCountExcludesItself(t *testing.T) {
	gd := NewGlobalDesc(NewAtom("A"), NewAtom("B"))
	if gd.BinaryCount() != 0 {
		t.Fatalf("GlobalDesc.BinaryCount() = %d, want 0", gd.BinaryCount())
	}

	conj := NewConjunction(NewAtom("A"), NewAtom("B"))
	gdOfConj := NewGlobalDesc(conj, NewAtom("C"))
	if gdOfConj.BinaryCount() != 1 {
		t.Fatalf("GlobalDesc.BinaryCount() = %d, want 1", gdOfConj.BinaryCount())
	}
}

func TestAtomSymbolsDeduplicatesAndSorts(t *testing.T) {
	f := NewConjunction(NewAtom("B"), NewConjunction(NewAtom("A"), NewAtom("B")))
	got := AtomSymbols(f)
	want := []string{"A", "B"}
	if len(got) != len(want) {
		t.Fatalf("AtomSymbols() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AtomSymbols() = %v, want %v", got, want)
		}
	}
}

func TestNegationStringParenthesizesBinarySub(t *testing.T) {
	f := NewNegation(NewConjunction(NewAtom("A"), NewAtom("B")))
	got := f.String()
	if got != "¬(AΠB)" {
		t.Fatalf("Negation.String() = %q, want %q", got, "¬(AΠB)")
	}
}

func TestDiamondModalCountAndDegree(t *testing.T) {
	f := NewDiamond("r", NewDiamond("r", NewAtom("A")))
	if f.ModalCount() != 2 {
		t.Fatalf("ModalCount() = %d, want 2", f.ModalCount())
	}
	if f.ModalDegree() != 2 {
		t.Fatalf("ModalDegree() = %d, want 2", f.ModalDegree())
	}
}
