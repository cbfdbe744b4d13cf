package dltableau

// doubleNegRule discharges ¬¬A into A.
func doubleNegRule(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		for _, f := range w.set(catDoubleNeg).Slice() {
			inner := f.(*Negation).Sub.(*Negation)

			if w.AllFormulas().Contains(inner.Sub) {
				w.set(catDoubleNeg).Remove(f)
				w.set(catProcNegat).Add(f)
				continue
			}

			w.relocate(inner.Sub)
			w.set(catDoubleNeg).Remove(f)
			w.set(catProcNegat).Add(f)
			return in, false, true, nil
		}
	}
	return in, false, false, nil
}

// conjunctionRule discharges A∧B into A and B.
func conjunctionRule(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		for _, f := range w.set(catConjunction).Slice() {
			conj := f.(*Conjunction)
			all := w.AllFormulas()
			haveA := all.Contains(conj.A)
			haveB := all.Contains(conj.B)

			if haveA && haveB {
				w.set(catConjunction).Remove(f)
				w.set(catProcPosit).Add(f)
				continue
			}

			if !haveA {
				w.relocate(conj.A)
			}
			if !haveB {
				w.relocate(conj.B)
			}
			w.set(catConjunction).Remove(f)
			w.set(catProcPosit).Add(f)
			return in, false, true, nil
		}
	}
	return in, false, false, nil
}

// negatedConjunctionRule discharges ¬(A∧B) by branching into ¬A on this
// branch and ¬B on a sibling branch.
func negatedConjunctionRule(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		for _, f := range w.set(catNegConjunction).Slice() {
			conj := f.(*Negation).Sub.(*Conjunction)
			all := w.AllFormulas()

			if all.Contains(NewNegation(conj.A)) || all.Contains(NewNegation(conj.B)) {
				continue
			}

			alt := in.Clone()

			w.relocate(NewNegation(conj.A))
			w.set(catNegConjunction).Remove(f)
			w.set(catProcNegat).Add(f)

			if wAlt := alt.WorldByName(w.name); wAlt != nil {
				wAlt.relocate(NewNegation(conj.B))
				wAlt.set(catNegConjunction).Remove(f)
				wAlt.set(catProcNegat).Add(f)
			}

			return in, false, true, []*Interpretation{alt}
		}
	}
	return in, false, false, nil
}
