package perm

// PermutationSet is an ordered collection of generators, as produced by an
// oracle or assembled while building a strong generating set.
type PermutationSet struct {
	elems []Permutation
}

// NewSet builds a PermutationSet from the given permutations, dropping
// identities: an identity generator never extends a base or an orbit, so
// it is discarded up front.
func NewSet(perms ...Permutation) PermutationSet {
	s := PermutationSet{elems: make([]Permutation, 0, len(perms))}
	for _, p := range perms {
		if !p.IsIdentity() {
			s.elems = append(s.elems, p)
		}
	}
	return s
}

// Len returns the number of generators.
func (s PermutationSet) Len() int { return len(s.elems) }

// At returns the i-th generator.
func (s PermutationSet) At(i int) Permutation { return s.elems[i] }

// All returns a copy of the underlying slice.
func (s PermutationSet) All() []Permutation {
	out := make([]Permutation, len(s.elems))
	copy(out, s.elems)
	return out
}

// Insert appends p to the set unless p is the identity.
func (s *PermutationSet) Insert(p Permutation) {
	if !p.IsIdentity() {
		s.elems = append(s.elems, p)
	}
}

// Degree returns the maximum degree among the set's generators, or 0 for an
// empty set.
func (s PermutationSet) Degree() int {
	n := 0
	for _, p := range s.elems {
		if p.Degree() > n {
			n = p.Degree()
		}
	}
	return n
}

// Contains reports whether the set already holds a permutation equal to p
// (under degree-invariant comparison).
func (s PermutationSet) Contains(p Permutation) bool {
	for _, q := range s.elems {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// MakeUnique drops duplicate permutations in place, keeping the first
// occurrence of each and preserving insertion order otherwise.
func (s *PermutationSet) MakeUnique() {
	unique := s.elems[:0]
	for _, p := range s.elems {
		dup := false
		for _, q := range unique {
			if q.Equal(p) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, p)
		}
	}
	s.elems = unique
}

// AssertNotEmpty returns ErrEmptySet if the set holds no generators,
// letting callers state the non-empty precondition in one line.
func (s PermutationSet) AssertNotEmpty() error {
	if len(s.elems) == 0 {
		return ErrEmptySet
	}
	return nil
}

// Extend returns a copy of s with every generator extended to degree n.
func (s PermutationSet) Extend(n int) (PermutationSet, error) {
	out := PermutationSet{elems: make([]Permutation, len(s.elems))}
	for i, p := range s.elems {
		e, err := p.Extend(n)
		if err != nil {
			return PermutationSet{}, err
		}
		out.elems[i] = e
	}
	return out, nil
}
