package archgraph

import (
	"math/bits"
	"sort"
)

// AutomorphismKind selects which symmetries of the architecture graph the
// oracle should be asked to find.
type AutomorphismKind int

const (
	// AutomProcessors considers only processor identity and type,
	// ignoring channel types entirely.
	AutomProcessors AutomorphismKind = iota
	// AutomChannels considers channel types but treats every processor as
	// interchangeable (no processor-type coloring).
	AutomChannels
	// AutomTotal considers both processor and channel types.
	AutomTotal
)

// ColoredGraph is the vertex-colored graph handed to an external
// isomorphism oracle: a plain vertex/edge graph plus a ColorPartition
// describing which vertices the oracle must treat as interchangeable.
type ColoredGraph struct {
	NumVertices int
	Edges       [][2]int
	Partition   ColorPartition

	// origOf maps each vertex of this colored graph back to its original
	// processor index (0..graph.NumProcessors()-1); layered constructions
	// (AutomChannels, AutomTotal) introduce auxiliary vertices that share
	// an original processor.
	origOf []int
}

// ColorPartition is nauty's lab/ptn encoding translated to Go: Order gives
// the vertex visiting order, and Breaks[i] is true when Order[i] is the
// last vertex of its color class (so Breaks ends with true).
type ColorPartition struct {
	Order  []int
	Breaks []bool
}

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// BuildColoredGraph translates g into the vertex-colored graph used to
// find automorphisms of the given kind: AutomProcessors is a direct
// one-vertex-per-processor encoding with a processor-type partition;
// AutomChannels and AutomTotal use a layered encoding with one layer per
// bit of the channel-type alphabet.
func BuildColoredGraph(g *Graph, kind AutomorphismKind) (ColoredGraph, error) {
	switch kind {
	case AutomProcessors:
		return buildProcessorColoring(g), nil
	case AutomChannels:
		return buildLayeredColoring(g, false), nil
	case AutomTotal:
		return buildLayeredColoring(g, true), nil
	default:
		return ColoredGraph{}, ErrUnknownAutomorphismKind
	}
}

func buildProcessorColoring(g *Graph) ColoredGraph {
	n := g.NumProcessors()
	edges := make([][2]int, 0, g.NumChannels())
	for _, c := range g.channels {
		edges = append(edges, [2]int{c.From, c.To})
	}
	order, breaks := typePartition(n, func(v int) int { return g.processorType[v] })
	origOf := make([]int, n)
	for i := range origOf {
		origOf[i] = i
	}
	return ColoredGraph{
		NumVertices: n,
		Edges:       edges,
		Partition:   ColorPartition{Order: order, Breaks: breaks},
		origOf:      origOf,
	}
}

// typePartition returns a lab/ptn-style encoding grouping {0,...,n-1}
// contiguously by typeOf(v), ordered by type id, breaking between groups.
func typePartition(n int, typeOf func(int) int) ([]int, []bool) {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return typeOf(order[i]) < typeOf(order[j])
	})
	breaks := make([]bool, n)
	for i := 0; i < n; i++ {
		breaks[i] = i == n-1 || typeOf(order[i]) != typeOf(order[i+1])
	}
	return order, breaks
}

func buildLayeredColoring(g *Graph, total bool) ColoredGraph {
	nOrig := g.NumProcessors()
	ctsLog2 := ceilLog2(g.numChannelTypes())
	levels := ctsLog2 + 1
	n := nOrig * levels

	vertexAt := func(level, p int) int { return level*nOrig + p }

	var edges [][2]int
	// Vertical edges connect each processor's vertex at level L to the
	// same processor's vertex at level L-1.
	for level := 1; level < levels; level++ {
		for p := 0; p < nOrig; p++ {
			edges = append(edges, [2]int{vertexAt(level, p), vertexAt(level-1, p)})
		}
	}
	// Horizontal edges replicate a channel of type t into layer `level`
	// whenever bit `level` of (t+1) is set.
	for _, c := range g.channels {
		for level := 0; level < levels; level++ {
			if (c.Type+1)&(1<<uint(level)) != 0 {
				edges = append(edges, [2]int{vertexAt(level, c.From), vertexAt(level, c.To)})
			}
		}
	}

	origOf := make([]int, n)
	for level := 0; level < levels; level++ {
		for p := 0; p < nOrig; p++ {
			origOf[vertexAt(level, p)] = p
		}
	}

	var order []int
	var breaks []bool
	if !total {
		// AUTOM_CHANNELS: identity order within each layer, breaking only
		// at layer boundaries.
		order = make([]int, n)
		breaks = make([]bool, n)
		for v := 0; v < n; v++ {
			order[v] = v
			breaks[v] = (v+1)%nOrig == 0
		}
	} else {
		// AUTOM_TOTAL: within each layer, nest the processor-type
		// partition, breaking both at type boundaries and layer
		// boundaries.
		order = make([]int, 0, n)
		breaks = make([]bool, 0, n)
		for level := 0; level < levels; level++ {
			layerOrder, layerBreaks := typePartition(nOrig, func(v int) int { return g.processorType[v] })
			for i, p := range layerOrder {
				order = append(order, vertexAt(level, p))
				breaks = append(breaks, layerBreaks[i])
			}
		}
	}

	return ColoredGraph{
		NumVertices: n,
		Edges:       edges,
		Partition:   ColorPartition{Order: order, Breaks: breaks},
		origOf:      origOf,
	}
}
