package group

import (
	"math/big"

	"github.com/goens/mpsym/bsgs"
	"github.com/goens/mpsym/perm"
	"github.com/goens/mpsym/schreier"
)

// Group is a permutation group given by a generating set, backed by a BSGS
// for efficient membership and order queries.
type Group struct {
	degree     int
	generators perm.PermutationSet
	chain      *bsgs.BSGS
}

// New constructs a Group from generators, running the deterministic
// Schreier-Sims construction unless WithRandomizedConstruction is given.
func New(degree int, generators perm.PermutationSet, opts ...Option) (*Group, error) {
	if degree <= 0 {
		return nil, ErrBadDegree
	}
	cfg := resolveOptions(opts)

	var chain *bsgs.BSGS
	var err error
	switch {
	case generators.Len() == 0:
		// The trivial group is constructed directly; Schreier-Sims
		// requires at least one generator.
		chain, err = bsgs.Trivial(degree)
	case cfg.randomize:
		chain, err = bsgs.Randomized(degree, generators, bsgs.WithRandomLogger(cfg.logger))
	default:
		chain, err = bsgs.Deterministic(degree, generators, bsgs.WithLogger(cfg.logger))
	}
	if err != nil {
		return nil, err
	}
	return &Group{degree: degree, generators: generators, chain: chain}, nil
}

// Trivial returns the trivial group of the given degree.
func Trivial(degree int) (*Group, error) {
	return New(degree, perm.NewSet())
}

// Degree returns the permutation degree the group acts on.
func (g *Group) Degree() int { return g.degree }

// Order returns |G|.
func (g *Group) Order() *big.Int { return g.chain.Order() }

// Generators returns the original generating set the group was built from.
func (g *Group) Generators() perm.PermutationSet { return g.generators }

// BSGS returns the underlying base and strong generating set.
func (g *Group) BSGS() *bsgs.BSGS { return g.chain }

// Contains reports whether p is a member of the group.
func (g *Group) Contains(p perm.Permutation) bool {
	residue, level := g.chain.Strip(p)
	return level == len(g.chain.Base()) && residue.IsIdentity()
}

// Orbit computes the orbit of point under the full group, using the
// original generating set (not the base-dependent strong generators, whose
// per-level orbits are restricted to their own stabilizer).
func (g *Group) Orbit(point int) schreier.Orbit {
	orbit, _ := schreier.ComputeOrbit(point, g.degree, g.generators)
	return orbit
}

// ForEach enumerates every element of the group by taking the Cartesian
// product of transversal representatives across base levels, stopping
// early if visit returns false. Complexity is O(|G|), so callers should
// reserve it for groups known to be small.
func (g *Group) ForEach(visit func(perm.Permutation) bool) {
	base := g.chain.Base()
	id, err := perm.Identity(g.degree)
	if err != nil {
		return
	}
	if len(base) == 0 {
		visit(id)
		return
	}
	g.forEachLevel(0, id, visit)
}

func (g *Group) forEachLevel(level int, acc perm.Permutation, visit func(perm.Permutation) bool) bool {
	base := g.chain.Base()
	if level == len(base) {
		return visit(acc)
	}
	structure := g.chain.Structure(level)
	for _, p := range structure.Points() {
		u, err := structure.PathProduct(p)
		if err != nil {
			continue
		}
		next := perm.Compose(acc, u)
		if !g.forEachLevel(level+1, next, visit) {
			return false
		}
	}
	return true
}
