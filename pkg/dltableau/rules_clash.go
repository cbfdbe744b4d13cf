package dltableau

// clashRule is the first-priority rule of the calculus: it scans every
// world's freshly produced formulas for a direct contradiction against
// anything already present there, and otherwise sorts those formulas
// into their shape-specific partitions so later passes never re-scan
// them. It is the only rule that can report a clash.
func clashRule(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		newPosit := w.set(catNewFmlPosit)
		newNegat := w.set(catNewFmlNegat)

		if newPosit.Len()+newNegat.Len() == 0 {
			continue
		}

		if newPosit.Len()+newNegat.Len() > 1 {
			for _, p := range newPosit.Slice() {
				for _, n := range newNegat.Slice() {
					if p.Equal(n.(*Negation).Sub) {
						return in, true, true, nil
					}
				}
			}
		}

		negCategories := UnionFormulaSets(
			w.set(catNegAtoms), w.set(catNegConjunction), w.set(catNegDiamond),
			w.set(catNegGlobalDesc), w.set(catNegLocalDesc), w.set(catProcNegat),
		)
		for _, p := range newPosit.Slice() {
			for _, n := range negCategories.Slice() {
				if p.Equal(n.(*Negation).Sub) {
					return in, true, true, nil
				}
			}
		}

		posCategories := UnionFormulaSets(
			w.set(catAtoms), w.set(catConjunction), w.set(catDiamond),
			w.set(catGlobalDesc), w.set(catLocalDesc), w.set(catProcPosit),
			w.set(catProcGlobalDesc), w.set(catProcLocalDesc),
		)
		for _, n := range newNegat.Slice() {
			sub := n.(*Negation).Sub
			for _, p := range posCategories.Slice() {
				if sub.Equal(p) {
					return in, true, true, nil
				}
			}
		}

		for _, f := range newNegat.Slice() {
			switch f.(*Negation).Sub.(type) {
			case *Negation:
				w.set(catDoubleNeg).Add(f)
			case *Atom:
				w.set(catNegAtoms).Add(f)
			case *Conjunction:
				w.set(catNegConjunction).Add(f)
			case *Diamond:
				w.set(catNegDiamond).Add(f)
			case *GlobalDesc:
				w.set(catNegGlobalDesc).Add(f)
			case *LocalDesc:
				w.set(catNegLocalDesc).Add(f)
			}
		}

		for _, f := range newPosit.Slice() {
			switch f.(type) {
			case *Atom:
				w.set(catAtoms).Add(f)
			case *Conjunction:
				w.set(catConjunction).Add(f)
			case *Diamond:
				w.set(catDiamond).Add(f)
			case *GlobalDesc:
				w.set(catGlobalDesc).Add(f)
			case *LocalDesc:
				w.set(catLocalDesc).Add(f)
			}
		}

		w.pool[catNewFmlNegat] = NewFormulaSet()
		w.pool[catNewFmlPosit] = NewFormulaSet()
	}

	return in, false, false, nil
}
