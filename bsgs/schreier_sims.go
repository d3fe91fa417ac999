package bsgs

import (
	"github.com/goens/mpsym/errkind"
	"github.com/goens/mpsym/perm"
	"github.com/goens/mpsym/schreier"
)

// Deterministic runs the deterministic Schreier-Sims construction over the
// given generators, producing a complete base and strong generating set.
//
// Whenever a Schreier generator does not sift to the identity, the level
// cursor jumps to the level that received the new strong generator and
// continue outer resumes from there, walking back down once the level's
// Schreier generators all sift. Per-level generator queues survive across
// restarts, so levels whose state did not change never re-emit pairs they
// already produced.
func Deterministic(degree int, generators perm.PermutationSet, opts ...Option) (*BSGS, error) {
	if degree <= 0 {
		return nil, ErrBadDegree
	}
	if err := generators.AssertNotEmpty(); err != nil {
		return nil, errkind.New(errkind.InvalidArgument, "Deterministic", err)
	}
	cfg := resolveOptions(opts)
	log := cfg.logger.Named("bsgs.deterministic")

	b := &BSGS{degree: degree}
	gens := perm.NewSet(generators.All()...)
	gens.MakeUnique()
	b.seedFromGenerators(gens)
	log.Trace("seeded construction", "base", b.base, "generators", gens.Len())

	queues := make([]*schreier.GeneratorQueue, len(b.base))
	for i := range queues {
		queues[i] = schreier.NewGeneratorQueue(b.structures[i], b.strongGens[i])
	}

	// Invariant: every level deeper than i has all of its Schreier
	// generators sifting to the identity.
	i := len(b.base) - 1
outer:
	for i >= 0 {
		queues[i].Update(b.structures[i], b.strongGens[i])
		for {
			s, ok := queues[i].Next()
			if !ok {
				break
			}
			residue, lvl := b.Strip(s)
			if residue.IsIdentity() {
				continue
			}
			if lvl == len(b.base) {
				p, moved := smallestMovedPoint(residue, b.base)
				if !moved {
					continue
				}
				b.ExtendBase(p)
				queues = append(queues, schreier.NewGeneratorQueue(b.structures[lvl], b.strongGens[lvl]))
				log.Trace("extended base", "point", p, "levels", len(b.base))
			} else {
				queues[lvl].Invalidate()
			}
			b.insertStrongGenerator(lvl, residue)
			log.Trace("inserted strong generator", "level", lvl)
			i = lvl
			continue outer
		}
		i--
	}

	b.finalize()
	return b, nil
}
