package dltableau

// FormulaSet is a set of Formula values with structural (not pointer)
// equality, bucketed by Hash() with a linear Equal() scan on collision —
// the Go analogue of Python's hash/eq-based set used throughout the
// original calculus for each world's formula pool.
type FormulaSet struct {
	buckets map[uint64][]Formula
}

// NewFormulaSet returns an empty set.
func NewFormulaSet() *FormulaSet {
	return &FormulaSet{buckets: make(map[uint64][]Formula)}
}

// Add inserts f if not already present and reports whether it was added.
func (s *FormulaSet) Add(f Formula) bool {
	h := f.Hash()
	for _, existing := range s.buckets[h] {
		if existing.Equal(f) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], f)
	return true
}

// Remove deletes f if present and reports whether it was removed.
func (s *FormulaSet) Remove(f Formula) bool {
	h := f.Hash()
	bucket := s.buckets[h]
	for i, existing := range bucket {
		if existing.Equal(f) {
			s.buckets[h] = append(bucket[:i:i], bucket[i+1:]...)
			if len(s.buckets[h]) == 0 {
				delete(s.buckets, h)
			}
			return true
		}
	}
	return false
}

// Contains reports whether f is a member.
func (s *FormulaSet) Contains(f Formula) bool {
	for _, existing := range s.buckets[f.Hash()] {
		if existing.Equal(f) {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s *FormulaSet) Len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// Slice returns the members in unspecified order.
func (s *FormulaSet) Slice() []Formula {
	out := make([]Formula, 0, s.Len())
	for _, b := range s.buckets {
		out = append(out, b...)
	}
	return out
}

// Clone returns a deep-enough copy: a new set with the same Formula values
// (Formulas themselves are immutable and safely shared).
func (s *FormulaSet) Clone() *FormulaSet {
	out := NewFormulaSet()
	for h, b := range s.buckets {
		cp := make([]Formula, len(b))
		copy(cp, b)
		out.buckets[h] = cp
	}
	return out
}

// formulaSetsEqual reports whether a and b contain exactly the same
// formulas.
func formulaSetsEqual(a, b *FormulaSet) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, f := range a.Slice() {
		if !b.Contains(f) {
			return false
		}
	}
	return true
}

// UnionFormulaSets returns a new set containing every member of every
// argument set, the Go counterpart of Python's set.union(*w._formulas.values()).
func UnionFormulaSets(sets ...*FormulaSet) *FormulaSet {
	out := NewFormulaSet()
	for _, s := range sets {
		if s == nil {
			continue
		}
		for h, b := range s.buckets {
			for _, f := range b {
				found := false
				for _, existing := range out.buckets[h] {
					if existing.Equal(f) {
						found = true
						break
					}
				}
				if !found {
					out.buckets[h] = append(out.buckets[h], f)
				}
			}
		}
	}
	return out
}
