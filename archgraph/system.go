package archgraph

import (
	"github.com/goens/mpsym/errkind"
	"github.com/goens/mpsym/group"
	"github.com/goens/mpsym/perm"
)

// System is the common contract shared by a single architecture graph and
// a cluster of subsystems. LeafSystem and ClusterSystem both implement
// System directly, with no shared base type and no operations left to
// fail as unimplemented at runtime.
type System interface {
	NumProcessors() int
	NumChannels() int

	// Automorphisms returns the system's automorphism group, computing
	// and caching it on first access. A subsequent call returns the
	// cached group without consulting oracle again, until Invalidate is
	// called.
	Automorphisms(oracle Oracle, kind AutomorphismKind, opts ...Option) (*group.Group, error)

	// Invalidate clears any cached automorphism group, forcing the next
	// Automorphisms call to recompute it.
	Invalidate()
}

// LeafSystem adapts a single Graph to the System contract.
type LeafSystem struct {
	graph  *Graph
	cached *group.Group
}

// NewLeafSystem wraps g as a System.
func NewLeafSystem(g *Graph) *LeafSystem {
	return &LeafSystem{graph: g}
}

// Graph returns the underlying architecture graph.
func (l *LeafSystem) Graph() *Graph { return l.graph }

// NumProcessors returns the graph's processor count.
func (l *LeafSystem) NumProcessors() int { return l.graph.NumProcessors() }

// NumChannels returns the graph's channel count.
func (l *LeafSystem) NumChannels() int { return l.graph.NumChannels() }

// Invalidate clears the cached automorphism group.
func (l *LeafSystem) Invalidate() { l.cached = nil }

// Automorphisms computes (or returns the cached) automorphism group of the
// underlying graph under the given AutomorphismKind.
func (l *LeafSystem) Automorphisms(oracle Oracle, kind AutomorphismKind, opts ...Option) (*group.Group, error) {
	if l.cached != nil {
		return l.cached, nil
	}
	g, err := computeAutomorphisms(l.graph, oracle, kind, opts)
	if err != nil {
		return nil, err
	}
	l.cached = g
	return g, nil
}

// ClusterSystem is a collection of subsystems whose automorphism group is
// the direct product of the subsystems' own groups. Permutations of
// equivalent subsystems are not detected.
type ClusterSystem struct {
	subsystems []System
	cached     *group.Group
}

// NewClusterSystem returns an empty cluster; subsystems are appended
// incrementally with AddSubsystem.
func NewClusterSystem() *ClusterSystem {
	return &ClusterSystem{}
}

// AddSubsystem appends subsystem to the cluster and invalidates the cached
// cluster automorphism group (it no longer reflects every subsystem).
func (c *ClusterSystem) AddSubsystem(subsystem System) {
	c.subsystems = append(c.subsystems, subsystem)
	c.cached = nil
}

// Subsystems returns the cluster's subsystems in addition order. Offsets
// are not returned; a subsystem's processor offset within the cluster's
// combined index space is the sum of the processor counts of the
// subsystems before it.
func (c *ClusterSystem) Subsystems() []System {
	out := make([]System, len(c.subsystems))
	copy(out, c.subsystems)
	return out
}

// NumSubsystems returns the number of subsystems added so far.
func (c *ClusterSystem) NumSubsystems() int { return len(c.subsystems) }

// NumProcessors returns the sum of each subsystem's processor count.
func (c *ClusterSystem) NumProcessors() int {
	total := 0
	for _, s := range c.subsystems {
		total += s.NumProcessors()
	}
	return total
}

// NumChannels returns the sum of each subsystem's channel count.
func (c *ClusterSystem) NumChannels() int {
	total := 0
	for _, s := range c.subsystems {
		total += s.NumChannels()
	}
	return total
}

// Invalidate clears the cached cluster group and every subsystem's cache.
func (c *ClusterSystem) Invalidate() {
	c.cached = nil
	for _, s := range c.subsystems {
		s.Invalidate()
	}
}

// Automorphisms computes the direct product of every subsystem's
// automorphism group, embedding each subsystem's generators at its
// processor offset within the cluster's combined degree.
func (c *ClusterSystem) Automorphisms(oracle Oracle, kind AutomorphismKind, opts ...Option) (*group.Group, error) {
	if c.cached != nil {
		return c.cached, nil
	}
	if len(c.subsystems) == 0 {
		return nil, errkind.New(errkind.InvalidArgument, "ClusterSystem.Automorphisms", ErrNoSubsystems)
	}
	degree := c.NumProcessors()
	var gens []perm.Permutation
	offset := 0
	for _, s := range c.subsystems {
		sub, err := s.Automorphisms(oracle, kind, opts...)
		if err != nil {
			return nil, err
		}
		subGens := sub.Generators()
		for i := 0; i < subGens.Len(); i++ {
			embedded, err := embedAtOffset(subGens.At(i), offset, degree)
			if err != nil {
				return nil, err
			}
			gens = append(gens, embedded)
		}
		offset += s.NumProcessors()
	}
	grp, err := group.New(degree, perm.NewSet(gens...))
	if err != nil {
		return nil, err
	}
	c.cached = grp
	return grp, nil
}

// embedAtOffset returns the permutation of degree `degree` that acts like
// g on points {offset+1, ..., offset+g.Degree()} and fixes every other
// point — the generator for a subsystem's factor in the cluster's direct
// product.
func embedAtOffset(g perm.Permutation, offset, degree int) (perm.Permutation, error) {
	id, err := perm.Identity(degree)
	if err != nil {
		return perm.Permutation{}, err
	}
	image := id.Image()
	for p := 1; p <= g.Degree(); p++ {
		img, err := g.Apply(p)
		if err != nil {
			return perm.Permutation{}, err
		}
		image[offset+p-1] = offset + img
	}
	return perm.FromImage(image)
}

func computeAutomorphisms(g *Graph, oracle Oracle, kind AutomorphismKind, opts []Option) (*group.Group, error) {
	cfg := resolveOptions(opts)
	log := cfg.logger.Named("archgraph.automorphisms")

	n := g.NumProcessors()
	colored, err := BuildColoredGraph(g, kind)
	if err != nil {
		return nil, err
	}
	log.Trace("built colored graph", "kind", kind, "vertices", colored.NumVertices)

	gens, err := oracle.CanonicalLabeling(colored)
	if err != nil {
		return nil, errkind.New(errkind.OracleFailure, "Automorphisms", err)
	}

	projected, err := projectGenerators(gens, colored, n)
	if err != nil {
		return nil, err
	}
	log.Trace("projected oracle generators", "count", projected.Len())

	return group.New(n, projected)
}

// projectGenerators restricts each oracle-returned generator (a
// permutation of the colored graph's full, possibly layered, vertex set)
// to the first n points, recovering permutations of the unlayered
// processor indices.
func projectGenerators(gens perm.PermutationSet, colored ColoredGraph, n int) (perm.PermutationSet, error) {
	out := make([]perm.Permutation, 0, gens.Len())
	for i := 0; i < gens.Len(); i++ {
		g := gens.At(i)
		if g.Degree() != colored.NumVertices {
			return perm.PermutationSet{}, errkind.New(errkind.InvariantViolation, "Automorphisms", ErrOracleVertexMismatch)
		}
		image := make([]int, n)
		for p := 1; p <= n; p++ {
			img, err := g.Apply(p)
			if err != nil || img < 1 || img > n {
				return perm.PermutationSet{}, errkind.New(errkind.InvariantViolation, "Automorphisms", ErrOracleMovesAuxiliaryVertex)
			}
			image[p-1] = img
		}
		proj, err := perm.FromImage(image)
		if err != nil {
			return perm.PermutationSet{}, errkind.New(errkind.InvariantViolation, "Automorphisms", err)
		}
		out = append(out, proj)
	}
	return perm.NewSet(out...), nil
}
