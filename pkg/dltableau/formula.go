// Package dltableau implements a semantic tableau decision procedure for an
// expressive description logic extending ALC with inverse-like role
// handling and two definite-description constructors: local descriptions
// (i. C) and global descriptions (i C . D).
//
// The package provides:
//   - Formula: an immutable algebraic data model for the seven connectives
//     of the logic, with structural (hash-consable) equality
//   - Interpretation: a labelled directed multigraph of worlds, one formula
//     pool per world, partitioned for the clash rule
//   - the fourteen expansion rules of the calculus
//   - Tableau: the fixed-priority search driver that applies those rules to
//     a fixed point, a clash, or a wall-clock time-out
package dltableau

import (
	"hash/fnv"
	"sort"
	"strings"
)

// Formula represents any node in the formula algebra. Formulas are
// immutable once constructed and may be freely shared; equality and
// hashing are structural, not by identity.
type Formula interface {
	// String returns the formula in the surface notation of the logic.
	String() string

	// Equal reports whether two formulas are structurally identical.
	// Conjunction is commutative for this comparison; every other
	// connective is ordered.
	Equal(other Formula) bool

	// Hash returns a structural hash consistent with Equal: equal
	// formulas hash equally, including under conjunction's commutativity.
	Hash() uint64

	// Atoms returns every atom occurrence in the formula tree, keyed by
	// atom name. Used only for reporting/diagnostics.
	Atoms() map[string][]*Atom

	// BinaryCount returns the number of binary connectives in the
	// formula, excluding global descriptions.
	BinaryCount() int

	// DescrGlobalCount returns the number of global descriptions.
	DescrGlobalCount() int

	// DescrLocalCount returns the number of local descriptions.
	DescrLocalCount() int

	// ModalCount returns the number of diamond (existential role)
	// occurrences.
	ModalCount() int

	// ModalDegree returns the modal nesting depth of the formula.
	ModalDegree() int
}

// Atom is an atomic concept symbol, matching the grammar [A-Z]\w*.
type Atom struct {
	Name string
}

// NewAtom constructs an atomic formula.
func NewAtom(name string) *Atom { return &Atom{Name: name} }

func (a *Atom) String() string { return a.Name }

func (a *Atom) Equal(other Formula) bool {
	o, ok := other.(*Atom)
	return ok && a.Name == o.Name
}

func (a *Atom) Hash() uint64 { return fnvHash("Atom:" + a.Name) }

func (a *Atom) Atoms() map[string][]*Atom { return map[string][]*Atom{a.Name: {a}} }

func (a *Atom) BinaryCount() int      { return 0 }
func (a *Atom) DescrGlobalCount() int { return 0 }
func (a *Atom) DescrLocalCount() int  { return 0 }
func (a *Atom) ModalCount() int       { return 0 }
func (a *Atom) ModalDegree() int      { return 0 }

// Negation is the unary connective ¬sub.
type Negation struct {
	Sub Formula
}

// NewNegation constructs ¬sub.
func NewNegation(sub Formula) *Negation { return &Negation{Sub: sub} }

func (n *Negation) String() string {
	if isBinary(n.Sub) {
		return "¬(" + n.Sub.String() + ")"
	}
	return "¬" + n.Sub.String()
}

func (n *Negation) Equal(other Formula) bool {
	o, ok := other.(*Negation)
	return ok && n.Sub.Equal(o.Sub)
}

func (n *Negation) Hash() uint64 { return fnvHash("Neg") ^ (n.Sub.Hash() * 1000003) }

func (n *Negation) Atoms() map[string][]*Atom { return n.Sub.Atoms() }

func (n *Negation) BinaryCount() int      { return n.Sub.BinaryCount() }
func (n *Negation) DescrGlobalCount() int { return n.Sub.DescrGlobalCount() }
func (n *Negation) DescrLocalCount() int  { return n.Sub.DescrLocalCount() }
func (n *Negation) ModalCount() int       { return n.Sub.ModalCount() }
func (n *Negation) ModalDegree() int      { return n.Sub.ModalDegree() }

// LocalDesc is the local definite description i. sub: "this world is the
// unique world satisfying sub".
type LocalDesc struct {
	Sub Formula
}

// NewLocalDesc constructs i. sub.
func NewLocalDesc(sub Formula) *LocalDesc { return &LocalDesc{Sub: sub} }

func (d *LocalDesc) String() string {
	if isUnaryNeedingParens(d.Sub) {
		return "i.(" + d.Sub.String() + ")"
	}
	return "i." + d.Sub.String()
}

func (d *LocalDesc) Equal(other Formula) bool {
	o, ok := other.(*LocalDesc)
	return ok && d.Sub.Equal(o.Sub)
}

func (d *LocalDesc) Hash() uint64 { return fnvHash("LocalDesc") ^ (d.Sub.Hash() * 1000003) }

func (d *LocalDesc) Atoms() map[string][]*Atom { return d.Sub.Atoms() }

func (d *LocalDesc) BinaryCount() int      { return d.Sub.BinaryCount() }
func (d *LocalDesc) DescrGlobalCount() int { return d.Sub.DescrGlobalCount() }
func (d *LocalDesc) DescrLocalCount() int  { return d.Sub.DescrLocalCount() + 1 }
func (d *LocalDesc) ModalCount() int       { return d.Sub.ModalCount() }
func (d *LocalDesc) ModalDegree() int      { return d.Sub.ModalDegree() }

// Diamond is the existential modality Ǝ role . sub: "some role-successor
// satisfies sub".
type Diamond struct {
	Role string
	Sub  Formula
}

// NewDiamond constructs Ǝ role . sub.
func NewDiamond(role string, sub Formula) *Diamond { return &Diamond{Role: role, Sub: sub} }

func (d *Diamond) String() string {
	if isBinary(d.Sub) || isDiamond(d.Sub) || isLocalDesc(d.Sub) {
		return "Ǝ" + d.Role + " (" + d.Sub.String() + ")"
	}
	return "Ǝ" + d.Role + " " + d.Sub.String()
}

func (d *Diamond) Equal(other Formula) bool {
	o, ok := other.(*Diamond)
	return ok && d.Role == o.Role && d.Sub.Equal(o.Sub)
}

func (d *Diamond) Hash() uint64 {
	return fnvHash("Diamond:"+d.Role) ^ (d.Sub.Hash() * 1000003)
}

func (d *Diamond) Atoms() map[string][]*Atom { return d.Sub.Atoms() }

func (d *Diamond) BinaryCount() int      { return d.Sub.BinaryCount() }
func (d *Diamond) DescrGlobalCount() int { return d.Sub.DescrGlobalCount() }
func (d *Diamond) DescrLocalCount() int  { return d.Sub.DescrLocalCount() }
func (d *Diamond) ModalCount() int       { return d.Sub.ModalCount() + 1 }
func (d *Diamond) ModalDegree() int      { return d.Sub.ModalDegree() + 1 }

// binary holds the shared operand pair for the three two-operand
// connectives (Conjunction, Conditional, GlobalDesc).
type binary struct {
	A, B Formula
}

func (b binary) atoms() map[string][]*Atom {
	out := map[string][]*Atom{}
	for _, sub := range []Formula{b.A, b.B} {
		for name, occs := range sub.Atoms() {
			out[name] = append(out[name], occs...)
		}
	}
	return out
}

func (b binary) binaryCount() int { return b.A.BinaryCount() + b.B.BinaryCount() + 1 }

func (b binary) descrGlobalCount() int { return b.A.DescrGlobalCount() + b.B.DescrGlobalCount() }

func (b binary) descrLocalCount() int { return b.A.DescrLocalCount() + b.B.DescrLocalCount() }

func (b binary) modalCount() int { return b.A.ModalCount() + b.B.ModalCount() }

func (b binary) modalDegree() int {
	da, db := b.A.ModalDegree(), b.B.ModalDegree()
	if da > db {
		return da
	}
	return db
}

// Conjunction is A ∧ B. Equality and hashing are commutative: Conjunction(A,
// B) equals Conjunction(B, A), matching the original calculus's
// Conjunction.__eq__/__hash__.
type Conjunction struct {
	binary
}

// NewConjunction constructs A ∧ B.
func NewConjunction(a, b Formula) *Conjunction { return &Conjunction{binary{A: a, B: b}} }

func (c *Conjunction) String() string { return joinBinary(c.A, c.B, "Π") }

func (c *Conjunction) Equal(other Formula) bool {
	o, ok := other.(*Conjunction)
	if !ok {
		return false
	}
	return (c.A.Equal(o.A) && c.B.Equal(o.B)) || (c.A.Equal(o.B) && c.B.Equal(o.A))
}

// Hash combines operand hashes with XOR so that it stays symmetric under
// operand swap, matching Equal's commutativity.
func (c *Conjunction) Hash() uint64 { return fnvHash("Conj") ^ c.A.Hash() ^ c.B.Hash() }

func (c *Conjunction) Atoms() map[string][]*Atom { return c.atoms() }
func (c *Conjunction) BinaryCount() int          { return c.binaryCount() }
func (c *Conjunction) DescrGlobalCount() int     { return c.descrGlobalCount() }
func (c *Conjunction) DescrLocalCount() int      { return c.descrLocalCount() }
func (c *Conjunction) ModalCount() int           { return c.modalCount() }
func (c *Conjunction) ModalDegree() int          { return c.modalDegree() }

// Conditional is A → B. It only ever appears in TBox input; the builder
// normalizes every Conditional to ¬(A ∧ ¬B) before it reaches the rule set
// (Open Question resolved in DESIGN.md: normalization is mandatory, not
// conditional on shape). No expansion rule matches Conditional directly.
type Conditional struct {
	binary
}

// NewConditional constructs A → B.
func NewConditional(a, b Formula) *Conditional { return &Conditional{binary{A: a, B: b}} }

func (c *Conditional) String() string { return joinBinary(c.A, c.B, "→") }

func (c *Conditional) Equal(other Formula) bool {
	o, ok := other.(*Conditional)
	return ok && c.A.Equal(o.A) && c.B.Equal(o.B)
}

func (c *Conditional) Hash() uint64 {
	return fnvHash("Cond") ^ (c.A.Hash() * 1000003) ^ (c.B.Hash() * 31)
}

func (c *Conditional) Atoms() map[string][]*Atom { return c.atoms() }
func (c *Conditional) BinaryCount() int          { return c.binaryCount() }
func (c *Conditional) DescrGlobalCount() int     { return c.descrGlobalCount() }
func (c *Conditional) DescrLocalCount() int      { return c.descrLocalCount() }
func (c *Conditional) ModalCount() int           { return c.modalCount() }
func (c *Conditional) ModalDegree() int          { return c.modalDegree() }

// Normalize converts A → B into ¬(A ∧ ¬B), the form the tableau rules
// operate on.
func (c *Conditional) Normalize() Formula {
	return NewNegation(NewConjunction(c.A, NewNegation(c.B)))
}

// GlobalDesc is the global definite description i A . B: "there is a unique
// world satisfying A, and that world also satisfies B".
type GlobalDesc struct {
	binary
}

// NewGlobalDesc constructs i A . B.
func NewGlobalDesc(a, b Formula) *GlobalDesc { return &GlobalDesc{binary{A: a, B: b}} }

func (g *GlobalDesc) String() string {
	return "i " + parenIfBinary(g.A) + "." + parenIfBinary(g.B)
}

func (g *GlobalDesc) Equal(other Formula) bool {
	o, ok := other.(*GlobalDesc)
	return ok && g.A.Equal(o.A) && g.B.Equal(o.B)
}

func (g *GlobalDesc) Hash() uint64 {
	return fnvHash("GlobalDesc") ^ (g.A.Hash() * 1000003) ^ (g.B.Hash() * 31)
}

func (g *GlobalDesc) Atoms() map[string][]*Atom { return g.atoms() }

// BinaryCount deliberately excludes global descriptions from the count of
// binary connectives, matching the original Formula.binary_count.
func (g *GlobalDesc) BinaryCount() int { return g.A.BinaryCount() + g.B.BinaryCount() }

func (g *GlobalDesc) DescrGlobalCount() int {
	return g.A.DescrGlobalCount() + g.B.DescrGlobalCount() + 1
}
func (g *GlobalDesc) DescrLocalCount() int { return g.descrLocalCount() }
func (g *GlobalDesc) ModalCount() int      { return g.modalCount() }
func (g *GlobalDesc) ModalDegree() int     { return g.modalDegree() }

// helpers ---------------------------------------------------------------

func fnvHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func isBinary(f Formula) bool {
	switch f.(type) {
	case *Conjunction, *Conditional, *GlobalDesc:
		return true
	default:
		return false
	}
}

func isDiamond(f Formula) bool {
	_, ok := f.(*Diamond)
	return ok
}

func isLocalDesc(f Formula) bool {
	_, ok := f.(*LocalDesc)
	return ok
}

func isUnaryNeedingParens(f Formula) bool {
	switch f.(type) {
	case *Negation, *Diamond, *LocalDesc:
		return true
	default:
		return false
	}
}

func parenIfBinary(f Formula) string {
	if isBinary(f) {
		return "(" + f.String() + ")"
	}
	return f.String()
}

func joinBinary(a, b Formula, connective string) string {
	parts := make([]string, 2)
	for i, f := range []Formula{a, b} {
		if isBinary(f) {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, connective)
}

// OccurVarCount returns Formula.occur_var_count of the original calculus:
// the number of binary-plus-global-description connectives, plus one.
func OccurVarCount(f Formula) int {
	return f.BinaryCount() + f.DescrGlobalCount() + 1
}

// VarCount returns the number of distinct atom symbols occurring in f.
func VarCount(f Formula) int {
	return len(f.Atoms())
}

// AtomSymbols returns the sorted list of distinct atom symbols in f.
func AtomSymbols(f Formula) []string {
	atoms := f.Atoms()
	names := make([]string, 0, len(atoms))
	for name := range atoms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
