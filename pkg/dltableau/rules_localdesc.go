package dltableau

// localDescriptionRule1 discharges i.A into A at the same world.
func localDescriptionRule1(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		for _, f := range w.set(catLocalDesc).Slice() {
			ld := f.(*LocalDesc)
			w.relocate(ld.Sub)
			w.set(catLocalDesc).Remove(f)
			w.set(catProcLocalDesc).Add(f)
			return in, false, true, nil
		}
	}
	return in, false, false, nil
}

// localDescriptionRule2 enforces that every world satisfying the same
// local-description subformula A must, like globalDescriptionRule2,
// satisfy exactly the same formulas — they all describe "this" world.
func localDescriptionRule2(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		combined := UnionFormulaSets(w.set(catLocalDesc), w.set(catProcLocalDesc))
		for _, f := range combined.Slice() {
			ld := f.(*LocalDesc)

			var witnessNames []string
			var witnesses []*World
			seen := make(map[string]bool)
			for _, v := range in.Worlds() {
				if v.AllFormulas().Contains(ld.Sub) && !seen[v.name] {
					seen[v.name] = true
					witnessNames = append(witnessNames, v.name)
					witnesses = append(witnesses, v)
				}
			}
			if len(witnessNames) < 2 {
				continue
			}

			base := witnesses[0].AllFormulas()
			allSame := true
			for _, z := range witnesses[1:] {
				if !formulaSetsEqual(base, z.AllFormulas()) {
					allSame = false
					break
				}
			}
			if allSame {
				continue
			}

			formulasSum := NewFormulaSet()
			for _, z := range witnesses {
				formulasSum = UnionFormulaSets(formulasSum, z.AllFormulas())
			}

			nameSet := make(map[string]bool, len(witnessNames))
			for _, n := range witnessNames {
				nameSet[n] = true
			}
			for _, v := range in.Worlds() {
				if !nameSet[v.name] {
					continue
				}
				vAll := v.AllFormulas()
				for _, form := range formulasSum.Slice() {
					if !vAll.Contains(form) {
						v.relocate(form)
					}
				}
			}
			return in, false, true, nil
		}
	}
	return in, false, false, nil
}

// localDescriptionRule3 discharges ¬i.A: one branch adds ¬A at the
// current world; the sibling branch gives the current world a fresh
// marker atom F and adds a distinct world satisfying A and ¬F, so the
// current world cannot be the unique A-witness. A fresh
// marker is reused across every ¬i.A for the same A on a branch, rather
// than minted anew each time, so the branch doesn't accumulate one atom
// per occurrence of a description that has already been refuted once.
func localDescriptionRule3(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		for _, f := range w.set(catNegLocalDesc).Slice() {
			ld := f.(*Negation).Sub.(*LocalDesc)

			if w.AllFormulas().Contains(NewNegation(ld.Sub)) {
				w.set(catNegLocalDesc).Remove(f)
				w.set(catProcNegat).Add(f)
				continue
			}

			alt := in.Clone()

			w.relocate(NewNegation(ld.Sub))
			w.set(catNegLocalDesc).Remove(f)
			w.set(catProcNegat).Add(f)

			if fresh, ok := alt.LocDescRule3Witness(ld.Sub); ok {
				if wAlt := alt.WorldByName(w.name); wAlt != nil {
					wAlt.relocate(fresh)
					wAlt.set(catNegLocalDesc).Remove(f)
					wAlt.set(catProcNegat).Add(f)
				}
				return in, false, true, []*Interpretation{alt}
			}

			freshAtom := NewAtom(alt.FreshAtomName())
			if wAlt := alt.WorldByName(w.name); wAlt != nil {
				wAlt.relocate(freshAtom)
				wAlt.set(catNegLocalDesc).Remove(f)
				wAlt.set(catProcNegat).Add(f)
			}

			newWorld := alt.AddSuccessorWorld()
			newWorld.relocate(ld.Sub)
			newWorld.relocate(NewNegation(freshAtom))

			alt.RecordLocDescRule3Witness(ld.Sub, freshAtom)
			return in, false, true, []*Interpretation{alt}
		}
	}
	return in, false, false, nil
}

// localDescriptionCutRule branches on whether an unconstrained world
// does or does not satisfy a pending local description's subformula.
func localDescriptionCutRule(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		combined := UnionFormulaSets(w.set(catLocalDesc), w.set(catProcLocalDesc))
		for _, f := range combined.Slice() {
			ld := f.(*LocalDesc)
			for _, v := range in.Worlds() {
				all := v.AllFormulas()
				if all.Contains(ld.Sub) || all.Contains(NewNegation(ld.Sub)) {
					continue
				}

				alt := in.Clone()
				v.relocate(ld.Sub)
				if wAlt := alt.WorldByName(v.name); wAlt != nil {
					wAlt.relocate(NewNegation(ld.Sub))
				}
				return in, false, true, []*Interpretation{alt}
			}
		}
	}
	return in, false, false, nil
}
