package dltableau

import "fmt"

// ABoxEntry asserts a set of concepts about one named individual.
type ABoxEntry struct {
	Individual string
	Concepts   []Formula
}

// RBoxEdge asserts a role-labelled edge between two named individuals.
type RBoxEdge struct {
	Role string
	From string
	To   string
}

// KnowledgeBase is everything NewTableau needs to build the initial
// interpretation: the individuals and their asserted concepts, the
// role assertions between them, the TBox's universal conditionals, and
// the concept whose satisfiability is being decided.
type KnowledgeBase struct {
	ABox    []ABoxEntry
	RBox    []RBoxEdge
	TBox    []*Conditional
	Concept Formula
}

// NewTableau validates kb and constructs the initial interpretation: one
// world per ABox individual (plus any individual mentioned only in the
// RBox), role edges per RBox entry, every world seeded with the
// normalized TBox, and the target concept asserted at a freshly chosen
// world that does not collide with an ABox individual's name.
func NewTableau(kb KnowledgeBase, opts ...Option) (*Tableau, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var errs buildErrors
	if kb.Concept == nil {
		errs.add(ErrKindBadConcept, "concept", "target concept must not be nil")
	}
	for i, e := range kb.ABox {
		if e.Individual == "" {
			errs.add(ErrKindBadABox, fmt.Sprintf("abox[%d]", i), "individual name must not be empty")
		}
		for j, c := range e.Concepts {
			if c == nil {
				errs.add(ErrKindBadABox, fmt.Sprintf("abox[%d].concepts[%d]", i, j), "concept must not be nil")
			}
		}
	}
	for i, e := range kb.RBox {
		if e.Role == "" {
			errs.add(ErrKindBadRBox, fmt.Sprintf("rbox[%d]", i), "role name must not be empty")
		}
		if e.From == "" || e.To == "" {
			errs.add(ErrKindBadRBox, fmt.Sprintf("rbox[%d]", i), "edge endpoints must not be empty")
		}
	}
	for i, c := range kb.TBox {
		if c == nil {
			errs.add(ErrKindBadTBox, fmt.Sprintf("tbox[%d]", i), "conditional must not be nil")
		}
	}
	if err := errs.errorOrNil(); err != nil {
		return nil, err
	}

	in := NewInterpretation()

	for _, c := range kb.TBox {
		normalized := c.Normalize()
		in.tboxFormulas.Add(normalized)
		registerAtoms(in, normalized)
	}

	worldsByName := make(map[string]*World)
	worldFor := func(name string) *World {
		if w, ok := worldsByName[name]; ok {
			return w
		}
		w := in.AddWorld()
		w.name = name
		in.RegisterWorldName(name)
		in.SeedNewWorldFormulas(w)
		worldsByName[name] = w
		return w
	}

	for _, e := range kb.ABox {
		w := worldFor(e.Individual)
		for _, c := range e.Concepts {
			w.relocate(c)
			registerAtoms(in, c)
		}
	}

	for _, e := range kb.RBox {
		from := worldFor(e.From)
		to := worldFor(e.To)
		in.AddEdge(from, to, e.Role)
	}

	// The target concept's world must not be confused with a named
	// individual, so w0 is tried first and lengthened (w00, w000, ...)
	// until it doesn't collide with one already in use.
	conceptWorldName := "w0"
	for in.worldNamesStr[conceptWorldName] {
		conceptWorldName += "0"
	}
	conceptWorld := worldFor(conceptWorldName)
	conceptWorld.relocate(kb.Concept)
	registerAtoms(in, kb.Concept)

	return &Tableau{
		interpretation: in,
		initial:        in.Clone(),
		config:         cfg,
	}, nil
}

func registerAtoms(in *Interpretation, f Formula) {
	for _, name := range AtomSymbols(f) {
		in.RegisterAtomName(name)
	}
}
