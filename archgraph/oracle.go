package archgraph

import "github.com/goens/mpsym/perm"

// Oracle is the external graph-isomorphism collaborator: given a colored
// graph, it returns a generating set for its automorphism
// group, as permutations of {1, ..., g.NumVertices} (vertex v corresponds
// to point v+1). Implementations typically wrap a nauty/bliss-style
// canonical_labeling call.
//
// Any accumulation an implementation needs lives on the receiver, not in
// package-level state.
type Oracle interface {
	CanonicalLabeling(g ColoredGraph) (perm.PermutationSet, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(g ColoredGraph) (perm.PermutationSet, error)

// CanonicalLabeling calls f.
func (f OracleFunc) CanonicalLabeling(g ColoredGraph) (perm.PermutationSet, error) {
	return f(g)
}
