package schreier

import "github.com/goens/mpsym/perm"

// Structure is a Schreier transversal tree rooted at Base: for every point
// it has discovered, it records the parent point and the generator label
// that maps parent to point. The tree is stored as maps keyed by point,
// giving O(1) Contains.
type Structure struct {
	Base   int
	degree int
	parent map[int]int
	label  map[int]perm.Permutation

	// order holds every discovered point in discovery order, Base first.
	// Iterating it instead of ranging over the maps keeps orbit and
	// element enumeration deterministic across runs, which the golden
	// tests downstream rely on.
	order []int
}

// NewStructure creates a Structure rooted at base with no points discovered
// beyond the root itself.
func NewStructure(base, degree int) *Structure {
	s := &Structure{
		Base:   base,
		degree: degree,
		parent: map[int]int{base: base},
		label:  map[int]perm.Permutation{},
		order:  []int{base},
	}
	return s
}

// Contains reports whether point has been discovered.
func (s *Structure) Contains(point int) bool {
	_, ok := s.parent[point]
	return ok
}

// Points returns every discovered point in discovery order, Base first.
func (s *Structure) Points() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Parent returns the point from which `point` was first reached; the root
// is its own parent.
func (s *Structure) Parent(point int) (int, error) {
	p, ok := s.parent[point]
	if !ok {
		return 0, ErrPointNotInOrbit
	}
	return p, nil
}

// Label returns the generator on the tree edge from Parent(point) to
// point. The root has no incoming edge.
func (s *Structure) Label(point int) (perm.Permutation, error) {
	l, ok := s.label[point]
	if !ok {
		return perm.Permutation{}, ErrPointNotInOrbit
	}
	return l, nil
}

// Labels returns the distinct generators stored on the tree's edges, in
// first-use order. After a Schreier-Sims construction completes, the
// union of Labels across every level is itself a strong generating set.
func (s *Structure) Labels() perm.PermutationSet {
	var out perm.PermutationSet
	for _, p := range s.order {
		if l, ok := s.label[p]; ok {
			out.Insert(l)
		}
	}
	out.MakeUnique()
	return out
}

// Len returns the number of discovered points (the orbit size).
func (s *Structure) Len() int { return len(s.parent) }

// extend records that point was first reached from parent via gen. It is
// the single mutation primitive ComputeOrbit's BFS uses to grow the tree.
func (s *Structure) extend(point, parentPoint int, gen perm.Permutation) {
	s.parent[point] = parentPoint
	s.label[point] = gen
	s.order = append(s.order, point)
}

// PathProduct returns the transversal representative u such that
// u(Base) == point, built by composing the generator labels along the tree
// path from point back to Base.
func (s *Structure) PathProduct(point int) (perm.Permutation, error) {
	if !s.Contains(point) {
		return perm.Permutation{}, ErrPointNotInOrbit
	}
	id, err := perm.Identity(s.degree)
	if err != nil {
		return perm.Permutation{}, err
	}
	if point == s.Base {
		return id, nil
	}
	var chain []perm.Permutation
	cur := point
	for cur != s.Base {
		chain = append(chain, s.label[cur])
		cur = s.parent[cur]
	}
	result := id
	for i := len(chain) - 1; i >= 0; i-- {
		result = perm.Compose(chain[i], result)
	}
	return result, nil
}
