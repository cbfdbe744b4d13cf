package dltableau

// globalDescriptionRule1 discharges i A . B: if some world already
// satisfies both A and B the description is simply marked processed; if
// some world satisfies A alone, B is pushed there; otherwise a fresh
// world satisfying both A and B is created.
func globalDescriptionRule1(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		for _, f := range w.set(catGlobalDesc).Slice() {
			gd := f.(*GlobalDesc)

			matched := false
			for _, v := range in.Worlds() {
				all := v.AllFormulas()
				if all.Contains(gd.A) && all.Contains(gd.B) {
					w.set(catGlobalDesc).Remove(f)
					w.set(catProcGlobalDesc).Add(f)
					matched = true
					break
				}
			}
			if matched {
				continue
			}

			placed := false
			for _, v := range in.Worlds() {
				if v.AllFormulas().Contains(gd.A) {
					v.relocate(gd.B)
					w.set(catGlobalDesc).Remove(f)
					w.set(catProcGlobalDesc).Add(f)
					placed = true
					break
				}
			}
			if placed {
				return in, false, true, nil
			}

			newWorld := in.AddSuccessorWorld()
			newWorld.relocate(gd.A)
			newWorld.relocate(gd.B)
			w.set(catGlobalDesc).Remove(f)
			w.set(catProcGlobalDesc).Add(f)
			return in, false, true, nil
		}
	}
	return in, false, false, nil
}

// globalDescriptionRule2 enforces uniqueness: once two or more worlds
// are both witnesses for the same description condition A, they must
// satisfy exactly the same formulas, so any formula present in one but
// missing from another is copied across until they agree.
func globalDescriptionRule2(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	checked := NewFormulaSet()

	for _, w := range in.Worlds() {
		combined := UnionFormulaSets(w.set(catGlobalDesc), w.set(catProcGlobalDesc))
		for _, f := range combined.Slice() {
			gd := f.(*GlobalDesc)
			if checked.Contains(gd.A) {
				continue
			}

			var witnessNames []string
			var witnesses []*World
			seen := make(map[string]bool)
			for _, v := range in.Worlds() {
				if v.AllFormulas().Contains(gd.A) && !seen[v.name] {
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
				checked.Add(gd.A)
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

// globalDescriptionRule3 discharges ¬(i A . B) by exploring, across
// three sibling branches, the three ways the description can fail: some
// world satisfies A but not B (handled on this branch and one sibling,
// by adding ¬A or ¬B to a world carrying neither), or A has more than
// one witness, shown on the second sibling by two fresh worlds that both
// satisfy A but disagree on a fresh marker atom — so A cannot have a
// unique witness.
func globalDescriptionRule3(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		var blocked []Formula
		for _, f := range w.set(catNegGlobalDesc).Slice() {
			gd := f.(*Negation).Sub.(*GlobalDesc)
			if in.glDescRule3FmlSet.Contains(gd.A) {
				blocked = append(blocked, f)
			}
		}
		for _, f := range blocked {
			w.set(catNegGlobalDesc).Remove(f)
			w.set(catProcNegat).Add(f)
		}

		for _, f := range w.set(catNegGlobalDesc).Slice() {
			gd := f.(*Negation).Sub.(*GlobalDesc)

			for _, v := range in.Worlds() {
				all := v.AllFormulas()
				if all.Contains(NewNegation(gd.A)) || all.Contains(NewNegation(gd.B)) {
					continue
				}

				alt1 := in.Clone()
				alt2 := in.Clone()

				v.relocate(NewNegation(gd.A))

				if wAlt := alt1.WorldByName(v.name); wAlt != nil {
					wAlt.relocate(NewNegation(gd.B))
				}

				freshAtom := NewAtom(alt2.FreshAtomName())

				first := alt2.AddSuccessorWorld()
				first.relocate(gd.A)
				first.relocate(freshAtom)

				second := alt2.AddSuccessorWorld()
				second.relocate(gd.A)
				second.relocate(NewNegation(freshAtom))

				if wAlt2 := alt2.WorldByName(w.name); wAlt2 != nil {
					wAlt2.set(catNegGlobalDesc).Remove(f)
					wAlt2.set(catProcNegat).Add(f)
				}
				alt2.glDescRule3FmlSet.Add(gd.A)

				return in, false, true, []*Interpretation{alt1, alt2}
			}
		}
	}
	return in, false, false, nil
}

// globalDescriptionCutRule branches on whether an unconstrained world
// does or does not satisfy a pending description's condition A, letting
// the other rules resolve it either way.
func globalDescriptionCutRule(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		combined := UnionFormulaSets(w.set(catGlobalDesc), w.set(catProcGlobalDesc))
		for _, f := range combined.Slice() {
			gd := f.(*GlobalDesc)
			for _, v := range in.Worlds() {
				all := v.AllFormulas()
				if all.Contains(gd.A) || all.Contains(NewNegation(gd.A)) {
					continue
				}

				alt := in.Clone()
				v.relocate(gd.A)
				if wAlt := alt.WorldByName(v.name); wAlt != nil {
					wAlt.relocate(NewNegation(gd.A))
				}
				return in, false, true, []*Interpretation{alt}
			}
		}
	}
	return in, false, false, nil
}
