package schreier

import "github.com/goens/mpsym/perm"

// GeneratorQueue lazily enumerates the Schreier generators for a stabilizer
// subgroup: one candidate per (orbit point, generator) pair, computed only
// when pulled rather than materialized up front. The number of pairs grows
// quadratically with the orbit, and most sift to the identity, so eager
// materialization would dominate construction cost.
type GeneratorQueue struct {
	structure *Structure
	gens      perm.PermutationSet
	points    []int
	pi, gi    int
	dirty     bool
}

// NewGeneratorQueue builds a queue over structure's orbit and gens.
func NewGeneratorQueue(structure *Structure, gens perm.PermutationSet) *GeneratorQueue {
	q := &GeneratorQueue{dirty: true}
	q.Update(structure, gens)
	return q
}

// Update points the queue at the level's current transversal tree and
// generator set. The cursor is reset only if Invalidate was called since
// the last Update or the inputs differ structurally from what the queue
// was iterating; otherwise iteration resumes where it left off, so pairs
// emitted since the last reset are not produced twice. After a reset every
// pair is produced again.
func (q *GeneratorQueue) Update(structure *Structure, gens perm.PermutationSet) {
	if !q.dirty && q.structure == structure && q.gens.Len() == gens.Len() {
		return
	}
	q.structure = structure
	q.gens = gens
	q.points = structure.Points()
	q.pi, q.gi = 0, 0
	q.dirty = false
}

// Invalidate marks the queue's state stale, forcing the next Update to
// rebuild the cursor even against structurally identical inputs.
func (q *GeneratorQueue) Invalidate() {
	q.dirty = true
}

// Next returns the next non-trivial Schreier generator s = u_q⁻¹ ∘ g ∘ u_p,
// where p ranges over the orbit, g ranges over gens, and q = g(p). Pairs
// whose product is the identity are skipped; ok is false once every (p, g)
// pair has been consumed.
func (q *GeneratorQueue) Next() (s perm.Permutation, ok bool) {
	for q.pi < len(q.points) {
		p := q.points[q.pi]
		if q.gi >= q.gens.Len() {
			q.pi++
			q.gi = 0
			continue
		}
		g := q.gens.At(q.gi)
		q.gi++

		up, err := q.structure.PathProduct(p)
		if err != nil {
			continue
		}
		qq, err := g.Apply(p)
		if err != nil {
			continue
		}
		if !q.structure.Contains(qq) {
			continue
		}
		uq, err := q.structure.PathProduct(qq)
		if err != nil {
			continue
		}
		s := perm.Compose(uq.Inverse(), perm.Compose(g, up))
		if s.IsIdentity() {
			continue
		}
		return s, true
	}
	return perm.Permutation{}, false
}
