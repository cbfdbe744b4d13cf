package dltableau

import (
	"fmt"

	"github.com/google/uuid"
)

// Interpretation is a labelled directed multigraph of worlds: one branch
// of the tableau. Every expansion rule reads and, for deterministic
// rules, mutates one Interpretation in place; non-deterministic rules
// additionally return deep copies representing sibling branches, pushed
// onto the driver's alternatives stack.
type Interpretation struct {
	order    []*World
	outgoing map[*World]map[*World]map[string]bool
	incoming map[*World]map[*World]map[string]bool

	worldNamesStr            map[string]bool
	allAtomsInInterpretation map[string]bool

	// tboxFormulas holds the TBox, already normalized to ¬(A ∧ ¬B), so
	// that every freshly created world can be seeded with it.
	tboxFormulas *FormulaSet

	// glDescRule3FmlSet blocks global_description_rule_3's third branch
	// from re-firing forever on the same A once it has already spawned
	// the two-fresh-world branch for it.
	glDescRule3FmlSet *FormulaSet

	// locDescRule3Keys/locDescRule3Vals is a parallel-array map (mirrors
	// the original's two-element list-of-lists) from a local-description
	// subformula C to the fresh atom minted for ¬i.C on this branch, so
	// that later occurrences of ¬i.C reuse the same witness atom instead
	// of minting a fresh one.
	locDescRule3Keys []Formula
	locDescRule3Vals []Formula

	// branchID is a debugging handle only; satisfiability never depends
	// on it. World identity for cross-branch comparisons always goes
	// through Name(), never through this ID or Go pointer identity.
	branchID uuid.UUID
}

// NewInterpretation returns an empty interpretation with a fresh branch
// identity.
func NewInterpretation() *Interpretation {
	return &Interpretation{
		outgoing:                  make(map[*World]map[*World]map[string]bool),
		incoming:                  make(map[*World]map[*World]map[string]bool),
		worldNamesStr:             make(map[string]bool),
		allAtomsInInterpretation:  make(map[string]bool),
		tboxFormulas:              NewFormulaSet(),
		glDescRule3FmlSet:         NewFormulaSet(),
		branchID:                  uuid.New(),
	}
}

// BranchID returns the branch's debugging identity.
func (in *Interpretation) BranchID() uuid.UUID { return in.branchID }

// Worlds returns every world in the interpretation, in creation order.
func (in *Interpretation) Worlds() []*World { return in.order }

// WorldByName finds the world with the given stable name, or nil. Rules
// use this to locate "the same" world across a freshly deep-copied
// alternative interpretation.
func (in *Interpretation) WorldByName(name string) *World {
	for _, w := range in.order {
		if w.name == name {
			return w
		}
	}
	return nil
}

// AddWorld inserts a new, empty world and returns it. Callers that need
// a stable cross-branch name must call FreshWorldName and assign it to
// the returned world (or, for ABox/RBox/concept worlds named by the
// caller, assign the caller-given name directly).
func (in *Interpretation) AddWorld() *World {
	w := newWorld()
	in.outgoing[w] = make(map[*World]map[string]bool)
	in.incoming[w] = make(map[*World]map[string]bool)
	in.order = append(in.order, w)
	return w
}

// AddEdge records a role-labelled edge from u to w.
func (in *Interpretation) AddEdge(u, w *World, role string) {
	if in.outgoing[u][w] == nil {
		in.outgoing[u][w] = make(map[string]bool)
	}
	in.outgoing[u][w][role] = true

	if in.incoming[w][u] == nil {
		in.incoming[w][u] = make(map[string]bool)
	}
	in.incoming[w][u][role] = true
}

// EdgeExists reports whether w has any outgoing edge labelled role.
func (in *Interpretation) EdgeExists(w *World, role string) bool {
	for _, roles := range in.outgoing[w] {
		if roles[role] {
			return true
		}
	}
	return false
}

// RelatedWorlds returns every world reachable from w by a role-labelled
// edge, in interpretation order.
func (in *Interpretation) RelatedWorlds(w *World, role string) []*World {
	var out []*World
	for _, v := range in.order {
		if roles, ok := in.outgoing[w][v]; ok && roles[role] {
			out = append(out, v)
		}
	}
	return out
}

// UnrelatedWorlds returns every world NOT reachable from w by a
// role-labelled edge.
func (in *Interpretation) UnrelatedWorlds(w *World, role string) []*World {
	related := make(map[*World]bool)
	for _, v := range in.RelatedWorlds(w, role) {
		related[v] = true
	}
	var out []*World
	for _, v := range in.order {
		if !related[v] {
			out = append(out, v)
		}
	}
	return out
}

// FreshWorldName mints a world name of the form w1, w2, w3, ... not yet
// used in this interpretation.
func (in *Interpretation) FreshWorldName() string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("w%d", n)
		if !in.worldNamesStr[name] {
			in.worldNamesStr[name] = true
			return name
		}
	}
}

// FreshAtomName mints an atom name of the form Fresh_Atom_1, ... not yet
// used in this interpretation.
func (in *Interpretation) FreshAtomName() string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("Fresh_Atom_%d", n)
		if !in.allAtomsInInterpretation[name] {
			in.allAtomsInInterpretation[name] = true
			return name
		}
	}
}

// RegisterWorldName reserves a caller-chosen world name (used for
// ABox/RBox/concept worlds, whose names come from the builder rather
// than FreshWorldName).
func (in *Interpretation) RegisterWorldName(name string) { in.worldNamesStr[name] = true }

// RegisterAtomName reserves a caller-chosen atom name so it is never
// reissued by FreshAtomName.
func (in *Interpretation) RegisterAtomName(name string) { in.allAtomsInInterpretation[name] = true }

// SeedNewWorldFormulas populates the partitions a freshly created world
// starts with: everything empty except neg_conjunction, preloaded with
// the (already-normalized) TBox, so the TBox's universal constraints
// apply at every world, not just the ones present at build time.
func (in *Interpretation) SeedNewWorldFormulas(w *World) {
	for _, f := range in.tboxFormulas.Slice() {
		w.pool[catNegConjunction].Add(f)
	}
}

// LocDescRule3Witness returns the fresh atom previously minted for ¬i.C,
// and whether one exists yet.
func (in *Interpretation) LocDescRule3Witness(c Formula) (Formula, bool) {
	for i, k := range in.locDescRule3Keys {
		if k.Equal(c) {
			return in.locDescRule3Vals[i], true
		}
	}
	return nil, false
}

// RecordLocDescRule3Witness remembers that fresh was minted for ¬i.C on
// this branch, so a later occurrence of ¬i.C reuses it.
func (in *Interpretation) RecordLocDescRule3Witness(c, fresh Formula) {
	in.locDescRule3Keys = append(in.locDescRule3Keys, c)
	in.locDescRule3Vals = append(in.locDescRule3Vals, fresh)
}

// AddSuccessorWorld creates a new world seeded with the TBox, names it
// with a fresh w<n> name, and returns it — the operation role rule 1 and
// the global/local description rules perform whenever they must
// introduce a witness world rather than reuse an existing one.
func (in *Interpretation) AddSuccessorWorld() *World {
	w := in.AddWorld()
	in.SeedNewWorldFormulas(w)
	w.name = in.FreshWorldName()
	return w
}

// Clone deep-copies the whole interpretation: every world's formula
// pool, the role/world adjacency, and the blocking bookkeeping, while
// preserving each world's Name() as the stable key a caller uses to find
// "the same" world in the clone. This is the one whole-graph copy the
// non-deterministic rules perform per fork; branch identity (BranchID)
// is re-minted, formula and world identity (by Name/Equal) is not.
func (in *Interpretation) Clone() *Interpretation {
	out := &Interpretation{
		outgoing:                  make(map[*World]map[*World]map[string]bool),
		incoming:                  make(map[*World]map[*World]map[string]bool),
		worldNamesStr:             make(map[string]bool, len(in.worldNamesStr)),
		allAtomsInInterpretation:  make(map[string]bool, len(in.allAtomsInInterpretation)),
		tboxFormulas:              in.tboxFormulas.Clone(),
		glDescRule3FmlSet:         in.glDescRule3FmlSet.Clone(),
		branchID:                  uuid.New(),
	}
	for k := range in.worldNamesStr {
		out.worldNamesStr[k] = true
	}
	for k := range in.allAtomsInInterpretation {
		out.allAtomsInInterpretation[k] = true
	}
	out.locDescRule3Keys = append([]Formula(nil), in.locDescRule3Keys...)
	out.locDescRule3Vals = append([]Formula(nil), in.locDescRule3Vals...)

	remap := make(map[*World]*World, len(in.order))
	out.order = make([]*World, len(in.order))
	for i, w := range in.order {
		nw := w.cloneShallow()
		remap[w] = nw
		out.order[i] = nw
	}

	for _, w := range in.order {
		nw := remap[w]
		for candWorld, roles := range w.candidatesBlocking {
			newRoles := make(map[string]*FormulaSet, len(roles))
			for role, set := range roles {
				newRoles[role] = set.Clone()
			}
			nw.candidatesBlocking[remap[candWorld]] = newRoles
		}
	}

	for u, edges := range in.outgoing {
		nu := remap[u]
		out.outgoing[nu] = make(map[*World]map[string]bool, len(edges))
		for v, roles := range edges {
			nv := remap[v]
			newRoles := make(map[string]bool, len(roles))
			for r := range roles {
				newRoles[r] = true
			}
			out.outgoing[nu][nv] = newRoles
		}
	}
	for v, edges := range in.incoming {
		nv := remap[v]
		out.incoming[nv] = make(map[*World]map[string]bool, len(edges))
		for u, roles := range edges {
			nu := remap[u]
			newRoles := make(map[string]bool, len(roles))
			for r := range roles {
				newRoles[r] = true
			}
			out.incoming[nv][nu] = newRoles
		}
	}
	return out
}
