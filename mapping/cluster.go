package mapping

import (
	"github.com/goens/mpsym/archgraph"
	"github.com/goens/mpsym/errkind"
)

// MapSystem canonicalizes alloc against any archgraph.System, dispatching
// on the variant: a cluster maps per subsystem via MapCluster, anything
// else maps against its own automorphism group over processors
// [0, NumProcessors()).
func MapSystem(alloc TaskAllocation, sys archgraph.System, oracle archgraph.Oracle, kind archgraph.AutomorphismKind, opts ...Option) (TaskMapping, error) {
	if cluster, ok := sys.(*archgraph.ClusterSystem); ok {
		return MapCluster(alloc, cluster, oracle, kind, opts...)
	}
	grp, err := sys.Automorphisms(oracle, kind)
	if err != nil {
		return TaskMapping{}, err
	}
	return Map(alloc, grp, 0, opts...)
}

// MapCluster canonicalizes alloc against a ClusterSystem: tasks are
// partitioned by which subsystem's processor sub-range their assigned
// processor falls in, each partition is mapped independently against that
// subsystem's own automorphism group and offset, and the per-subsystem
// canonical values are reassembled in the original task order. The
// cluster's automorphism group is the direct product of the subsystem
// groups; permutations of equivalent subsystems are not detected.
func MapCluster(alloc TaskAllocation, cluster *archgraph.ClusterSystem, oracle archgraph.Oracle, kind archgraph.AutomorphismKind, opts ...Option) (TaskMapping, error) {
	if len(alloc) == 0 {
		return TaskMapping{}, errkind.New(errkind.InvalidArgument, "MapCluster", ErrEmptyAllocation)
	}
	if err := validate(alloc, cluster.NumProcessors(), 0); err != nil {
		return TaskMapping{}, err
	}
	cfg := resolveOptions(opts)

	canonical := alloc.Clone()
	offset := 0
	for _, sub := range cluster.Subsystems() {
		n := sub.NumProcessors()
		taskIdx, subAlloc := tasksInRange(alloc, offset, offset+n)
		if len(subAlloc) > 0 {
			grp, err := sub.Automorphisms(oracle, kind)
			if err != nil {
				return TaskMapping{}, err
			}
			// The cache, if any, records only the assembled cluster-wide
			// mapping below, never the per-subsystem fragments.
			tm, err := Map(subAlloc, grp, offset, WithMethod(cfg.Method))
			if err != nil {
				return TaskMapping{}, err
			}
			for k, taskPos := range taskIdx {
				canonical[taskPos] = tm.Canonical[k]
			}
		}
		offset += n
	}

	tm := TaskMapping{Original: alloc.Clone(), Canonical: canonical}
	if cfg.UseOrbitCache && cfg.OrbitCache != nil {
		cfg.OrbitCache.Insert(tm)
	}
	return tm, nil
}

// tasksInRange returns the task indices (into alloc) whose assigned
// processor falls in [lo, hi), alongside their processor values in the
// same relative order.
func tasksInRange(alloc TaskAllocation, lo, hi int) ([]int, TaskAllocation) {
	var idx []int
	var out TaskAllocation
	for i, a := range alloc {
		if a >= lo && a < hi {
			idx = append(idx, i)
			out = append(out, a)
		}
	}
	return idx, out
}
