package dltableau

// roleRule1 discharges Ǝrole.A at a world w by, in priority order:
// reusing an already-related world that satisfies A, reusing an
// unrelated "candidate" world that satisfies A and every universal
// obligation w has recorded for role, or else creating a fresh
// role-successor of w that satisfies A.
//
// Before scanning for a match it refreshes w's candidate-blocking
// bookkeeping: if a universal obligation has since been added to role
// that the candidate no longer (verifiably) satisfies, the diamond
// formulas blocked against that candidate are unblocked and pushed back
// onto w's unprocessed diamond set for re-evaluation.
func roleRule1(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		if len(w.candidatesBlocking) > 0 && len(w.boxSubformulas) > 0 {
			refreshed := make(map[*World]map[string]*FormulaSet)
			for candWorld, roles := range w.candidatesBlocking {
				kept := make(map[string]*FormulaSet, len(roles))
				for role, blocked := range roles {
					kept[role] = blocked
					boxSet, hasBox := w.boxSubformulas[role]
					if !hasBox {
						continue
					}
					candAll := candWorld.AllFormulas()
					satisfied := true
					for _, bf := range boxSet.Slice() {
						if !candAll.Contains(bf) {
							satisfied = false
							break
						}
					}
					if satisfied {
						continue
					}
					for _, bfml := range blocked.Slice() {
						w.set(catProcPosit).Remove(bfml)
						w.set(catDiamond).Add(bfml)
					}
					delete(kept, role)
				}
				if len(kept) > 0 {
					refreshed[candWorld] = kept
				}
			}
			w.candidatesBlocking = refreshed
		}

		for _, f := range w.set(catDiamond).Slice() {
			diamond := f.(*Diamond)

			relWorlds := in.RelatedWorlds(w, diamond.Role)
			if len(relWorlds) > 0 {
				satisfied := false
				for _, relW := range relWorlds {
					if relW.AllFormulas().Contains(diamond.Sub) {
						satisfied = true
						break
					}
				}
				if satisfied {
					w.set(catDiamond).Remove(f)
					w.set(catProcPosit).Add(f)
					return in, false, true, nil
				}
			}

			for _, unrelV := range in.UnrelatedWorlds(w, diamond.Role) {
				boxSatisfied := true
				if boxSet, hasBox := w.boxSubformulas[diamond.Role]; hasBox {
					unrelAll := unrelV.AllFormulas()
					for _, bf := range boxSet.Slice() {
						if !unrelAll.Contains(bf) {
							boxSatisfied = false
							break
						}
					}
				}
				if !unrelV.AllFormulas().Contains(diamond.Sub) || !boxSatisfied {
					continue
				}

				if roles, ok := w.candidatesBlocking[unrelV]; ok {
					if roles[diamond.Role] == nil {
						roles[diamond.Role] = NewFormulaSet()
					}
					roles[diamond.Role].Add(f)
				} else {
					blocked := NewFormulaSet()
					blocked.Add(f)
					w.candidatesBlocking[unrelV] = map[string]*FormulaSet{diamond.Role: blocked}
				}

				w.set(catDiamond).Remove(f)
				w.set(catProcPosit).Add(f)
				return in, false, true, nil
			}

			newWorld := in.AddSuccessorWorld()
			newWorld.relocate(diamond.Sub)
			in.AddEdge(w, newWorld, diamond.Role)

			for _, boxFml := range w.set(catProcNegat).Slice() {
				neg, ok := boxFml.(*Negation)
				if !ok {
					continue
				}
				if d, ok := neg.Sub.(*Diamond); ok && d.Role == diamond.Role {
					newWorld.relocate(NewNegation(d.Sub))
				}
			}

			return in, false, true, nil
		}
	}
	return in, false, false, nil
}

// roleRule2 discharges ¬Ǝrole.A at w: it is recorded as a universal
// obligation on role at w, and ¬A is pushed to every world already
// related to w by role.
func roleRule2(in *Interpretation) (*Interpretation, bool, bool, []*Interpretation) {
	for _, w := range in.Worlds() {
		for _, f := range w.set(catNegDiamond).Slice() {
			diamond := f.(*Negation).Sub.(*Diamond)

			if set, ok := w.boxSubformulas[diamond.Role]; ok {
				set.Add(f)
			} else {
				fresh := NewFormulaSet()
				fresh.Add(f)
				w.boxSubformulas[diamond.Role] = fresh
			}

			for _, v := range in.RelatedWorlds(w, diamond.Role) {
				v.relocate(NewNegation(diamond.Sub))
			}

			w.set(catNegDiamond).Remove(f)
			w.set(catProcNegat).Add(f)
			return in, false, true, nil
		}
	}
	return in, false, false, nil
}
