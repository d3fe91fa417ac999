package bsgs

import (
	"math/big"

	"github.com/goens/mpsym/perm"
	"github.com/goens/mpsym/schreier"
)

// BSGS is a base and strong generating set: an ordered sequence of base
// points together with, at each level, the strong generators stabilizing
// every earlier base point and the Schreier transversal tree for that
// level's orbit.
type BSGS struct {
	degree     int
	base       []int
	strongGens []perm.PermutationSet
	structures []*schreier.Structure
}

// Trivial returns the BSGS of the trivial group of the given degree: an
// empty base and no strong generators. Unlike Deterministic/Randomized,
// this bypasses Schreier-Sims entirely rather than running it on an empty
// generator set, which the construction functions reject as a contract
// violation. The trivial group is constructed directly instead.
func Trivial(degree int) (*BSGS, error) {
	if degree <= 0 {
		return nil, ErrBadDegree
	}
	return &BSGS{degree: degree}, nil
}

// Degree returns the permutation degree this BSGS operates over.
func (b *BSGS) Degree() int { return b.degree }

// Base returns the ordered base points.
func (b *BSGS) Base() []int {
	out := make([]int, len(b.base))
	copy(out, b.base)
	return out
}

// StrongGenerators returns the strong generators at the given base level.
func (b *BSGS) StrongGenerators(level int) perm.PermutationSet {
	return b.strongGens[level]
}

// Structure returns the Schreier transversal tree at the given base level.
func (b *BSGS) Structure(level int) *schreier.Structure {
	return b.structures[level]
}

// Order computes |G| as the product of orbit sizes at each base level —
// the standard Schreier-Sims order formula.
func (b *BSGS) Order() *big.Int {
	order := big.NewInt(1)
	for _, s := range b.structures {
		order.Mul(order, big.NewInt(int64(s.Len())))
	}
	return order
}

// ExtendBase appends point as a new base level with an empty strong
// generating set and an empty transversal tree.
func (b *BSGS) ExtendBase(point int) {
	b.base = append(b.base, point)
	b.strongGens = append(b.strongGens, perm.NewSet())
	b.structures = append(b.structures, schreier.NewStructure(point, b.degree))
}

// Strip sifts g through the stabilizer chain, composing it against the
// inverse transversal representative at each base level. It returns the
// residual permutation and the number of levels it passed through
// completely. A complete strip to an identity residue at level
// len(Base()) means g lies in the group generated by the full strong
// generating set.
func (b *BSGS) Strip(g perm.Permutation) (perm.Permutation, int) {
	h := g
	for i, beta := range b.base {
		p, err := h.Apply(beta)
		if err != nil || !b.structures[i].Contains(p) {
			return h, i
		}
		u, err := b.structures[i].PathProduct(p)
		if err != nil {
			return h, i
		}
		h = perm.Compose(u.Inverse(), h)
	}
	return h, len(b.base)
}

// insertStrongGenerator records g as a strong generator at every level up
// to and including level, and rebuilds the affected transversal trees. g
// stabilizes base[0:level], so it lies in each of those levels'
// stabilizers; keeping the per-level sets nested (S_i ⊇ S_{i+1}) is what
// makes a successful sift certify membership in the next level's
// generated subgroup, which the completeness argument depends on.
func (b *BSGS) insertStrongGenerator(level int, g perm.Permutation) {
	for j := 0; j <= level; j++ {
		b.strongGens[j].Insert(g)
		_, structure := schreier.ComputeOrbit(b.base[j], b.degree, b.strongGens[j])
		b.structures[j] = structure
	}
}

// seedFromGenerators initializes the base and per-level state from the
// input generators: every generator that fixes all base points chosen so
// far forces a new base point (the smallest point it moves), then each
// level adopts the subset of generators lying in its stabilizer and
// builds its fundamental orbit.
func (b *BSGS) seedFromGenerators(gens perm.PermutationSet) {
	for i := 0; i < gens.Len(); i++ {
		g := gens.At(i)
		if g.StabilizesAll(b.base...) {
			if p, ok := smallestMovedPoint(g, b.base); ok {
				b.ExtendBase(p)
			}
		}
	}
	for i := range b.base {
		lg := levelGenerators(gens, b.base[:i])
		b.strongGens[i] = lg
		_, structure := schreier.ComputeOrbit(b.base[i], b.degree, lg)
		b.structures[i] = structure
	}
}

// finalize replaces each level's strong generating set with the union of
// transversal edge labels across every level, deduplicated and filtered
// down to the level's stabilizer, then rebuilds the transversal trees.
// The union of tree labels of a completed construction is itself a strong
// generating set, usually a much smaller one than the working sets the
// main loop accumulated.
func (b *BSGS) finalize() {
	var union perm.PermutationSet
	for _, s := range b.structures {
		labels := s.Labels()
		for i := 0; i < labels.Len(); i++ {
			union.Insert(labels.At(i))
		}
	}
	union.MakeUnique()
	for i := range b.base {
		lg := levelGenerators(union, b.base[:i])
		b.strongGens[i] = lg
		_, structure := schreier.ComputeOrbit(b.base[i], b.degree, lg)
		b.structures[i] = structure
	}
}

// levelGenerators returns the subset of gens stabilizing every point of
// prefix, i.e. the generators lying in the pointwise stabilizer the
// prefix defines.
func levelGenerators(gens perm.PermutationSet, prefix []int) perm.PermutationSet {
	var out perm.PermutationSet
	for i := 0; i < gens.Len(); i++ {
		if gens.At(i).StabilizesAll(prefix...) {
			out.Insert(gens.At(i))
		}
	}
	return out
}

// smallestMovedPoint returns the smallest point in {1, ..., g.Degree()},
// excluding those already present in exclude, that g does not fix.
func smallestMovedPoint(g perm.Permutation, exclude []int) (int, bool) {
	excluded := make(map[int]bool, len(exclude))
	for _, p := range exclude {
		excluded[p] = true
	}
	for p := 1; p <= g.Degree(); p++ {
		if excluded[p] {
			continue
		}
		if !g.Stabilizes(p) {
			return p, true
		}
	}
	return 0, false
}
