package bsgs

import (
	"math/big"
	"math/rand"

	"github.com/goens/mpsym/errkind"
	"github.com/goens/mpsym/perm"
)

// prRandomizer is a product-replacement pool: a fixed set of group
// elements repeatedly combined pairwise so that, after enough draws, a
// pulled element is close to uniformly distributed over the group.
type prRandomizer struct {
	pool []perm.Permutation
	rng  *rand.Rand
}

const prPoolSize = 10

func newPrRandomizer(gens perm.PermutationSet, degree int, rng *rand.Rand) *prRandomizer {
	pool := make([]perm.Permutation, 0, prPoolSize)
	for i := 0; i < prPoolSize; i++ {
		if gens.Len() > 0 {
			pool = append(pool, gens.At(i%gens.Len()))
		} else {
			id, _ := perm.Identity(degree)
			pool = append(pool, id)
		}
	}
	return &prRandomizer{pool: pool, rng: rng}
}

// next returns the next pseudo-random group element and updates the pool.
func (pr *prRandomizer) next() perm.Permutation {
	i := pr.rng.Intn(len(pr.pool))
	j := pr.rng.Intn(len(pr.pool) - 1)
	if j >= i {
		j++
	}
	if pr.rng.Intn(2) == 0 {
		pr.pool[i] = perm.Compose(pr.pool[i], pr.pool[j])
	} else {
		pr.pool[i] = perm.Compose(pr.pool[j], pr.pool[i])
	}
	return pr.pool[i]
}

// Randomized runs the Monte-Carlo (product-replacement) Schreier-Sims
// construction: draws are stripped against the growing BSGS, and the base
// is extended and strong generators inserted whenever a draw fails to
// sift to the identity. After opts.W consecutive identity draws in a row,
// the strong generating set is assumed complete.
func Randomized(degree int, generators perm.PermutationSet, opts ...RandomOption) (*BSGS, error) {
	if degree <= 0 {
		return nil, ErrBadDegree
	}
	if generators.Len() == 0 {
		return nil, errkind.New(errkind.InvalidArgument, "Randomized", perm.ErrEmptySet)
	}
	cfg := resolveRandomOptions(opts)
	log := cfg.logger.Named("bsgs.randomized")

	b := &BSGS{degree: degree}
	gens := perm.NewSet(generators.All()...)
	gens.MakeUnique()
	if gens.Len() == 0 {
		return b, nil
	}
	b.seedFromGenerators(gens)

	rng := rngFromSeed(cfg.Seed)
	pr := newPrRandomizer(gens, degree, deriveRNG(rng, 0))

	c := 0
	for c < cfg.W {
		s := pr.next()
		residue, level := b.Strip(s)
		if residue.IsIdentity() {
			c++
			continue
		}
		c = 0
		if level == len(b.base) {
			p, ok := smallestMovedPoint(residue, b.base)
			if !ok {
				continue
			}
			b.ExtendBase(p)
			log.Trace("extended base", "point", p)
		}
		b.insertStrongGenerator(level, residue)
		log.Trace("inserted strong generator", "level", level)
	}

	b.finalize()
	return b, nil
}

// RandomizedWithKnownOrder retries Randomized up to cfg.Retries times,
// accepting the result as soon as its computed order matches knownOrder.
// If no attempt matches, it falls back to the deterministic construction:
// without independent confirmation the random pass cannot be trusted.
func RandomizedWithKnownOrder(degree int, generators perm.PermutationSet, knownOrder *big.Int, opts ...RandomOption) (*BSGS, error) {
	cfg := resolveRandomOptions(opts)
	for attempt := 0; attempt < cfg.Retries; attempt++ {
		b, err := Randomized(degree, generators, withSeedOffset(opts, int64(attempt))...)
		if err != nil {
			return nil, err
		}
		if b.Order().Cmp(knownOrder) == 0 {
			return b, nil
		}
	}
	b, err := Deterministic(degree, generators, WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	if b.Order().Cmp(knownOrder) != 0 {
		return nil, errkind.New(errkind.InvariantViolation, "RandomizedWithKnownOrder", ErrKnownOrderMismatch)
	}
	return b, nil
}

func withSeedOffset(opts []RandomOption, offset int64) []RandomOption {
	base := resolveRandomOptions(opts)
	return append(append([]RandomOption{}, opts...), WithSeed(base.Seed+offset))
}
