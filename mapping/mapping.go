package mapping

import (
	"fmt"

	"github.com/goens/mpsym/bsgs"
	"github.com/goens/mpsym/errkind"
	"github.com/goens/mpsym/group"
	"github.com/goens/mpsym/perm"
)

// Map canonicalizes alloc under grp's action, restricted to the processor
// sub-range [offset, offset+grp.Degree()). The canonical form is the
// lexicographically minimum element of alloc's orbit.
func Map(alloc TaskAllocation, grp *group.Group, offset int, opts ...Option) (TaskMapping, error) {
	if len(alloc) == 0 {
		return TaskMapping{}, errkind.New(errkind.InvalidArgument, "Map", ErrEmptyAllocation)
	}
	if err := validate(alloc, grp.Degree(), offset); err != nil {
		return TaskMapping{}, err
	}
	cfg := resolveOptions(opts)

	var canonical TaskAllocation
	var err error
	switch cfg.Method {
	case MethodApprox:
		canonical, err = mapApprox(grp.BSGS(), offset, alloc)
	default:
		canonical, err = mapExact(grp, offset, alloc)
	}
	if err != nil {
		return TaskMapping{}, err
	}

	tm := TaskMapping{Original: alloc.Clone(), Canonical: canonical}
	if cfg.UseOrbitCache && cfg.OrbitCache != nil {
		cfg.OrbitCache.Insert(tm)
	}
	return tm, nil
}

func validate(alloc TaskAllocation, degree, offset int) error {
	for _, a := range alloc {
		if a < offset || a >= offset+degree {
			return errkind.New(errkind.InvalidArgument, "Map",
				fmt.Errorf("%w: processor %d, range [%d,%d)", ErrProcessorOutOfRange, a, offset, offset+degree))
		}
	}
	return nil
}

// mapExact enumerates every element of grp (Cartesian product of
// transversal representatives, O(|G|)) and tracks the running
// lexicographic minimum image.
func mapExact(grp *group.Group, offset int, alloc TaskAllocation) (TaskAllocation, error) {
	best := alloc.Clone()
	var applyErr error
	grp.ForEach(func(p perm.Permutation) bool {
		image, err := applyAt(p, offset, alloc)
		if err != nil {
			applyErr = err
			return false
		}
		if compareLex(image, best) < 0 {
			best = image
		}
		return true
	})
	if applyErr != nil {
		return nil, applyErr
	}
	return best, nil
}

// mapApprox walks the BSGS base level by level. At each level it
// considers composing the accumulated representative with every
// transversal element of that level's orbit, keeping the one whose
// resulting image is lexicographically smallest (ties broken by the
// transversal element's own image vector). This is a local search, not
// backtracking, so it is only guaranteed to reach the true minimum when
// the group's action is sufficiently transitive.
func mapApprox(chain *bsgs.BSGS, offset int, alloc TaskAllocation) (TaskAllocation, error) {
	acc, err := perm.Identity(chain.Degree())
	if err != nil {
		return nil, err
	}

	for level := range chain.Base() {
		structure := chain.Structure(level)
		points := structure.Points()

		var bestCandidate, bestU perm.Permutation
		var bestImage TaskAllocation
		haveBest := false

		for _, p := range points {
			u, err := structure.PathProduct(p)
			if err != nil {
				continue
			}
			candidate := perm.Compose(acc, u)
			image, err := applyAt(candidate, offset, alloc)
			if err != nil {
				return nil, err
			}
			if !haveBest {
				bestCandidate, bestU, bestImage, haveBest = candidate, u, image, true
				continue
			}
			switch cmp := compareLex(image, bestImage); {
			case cmp < 0:
				bestCandidate, bestU, bestImage = candidate, u, image
			case cmp == 0 && comparePermImage(u, bestU) < 0:
				bestCandidate, bestU, bestImage = candidate, u, image
			}
		}
		if haveBest {
			acc = bestCandidate
		}
	}
	return applyAt(acc, offset, alloc)
}
