package archgraph

// Channel is a directed edge between two processors, carrying a type id
// used to distinguish e.g. different interconnect technologies.
type Channel struct {
	From, To int
	Type     int
}

// Graph is the architecture-graph data model: a fixed number of typed
// processors connected by typed channels. The core operates
// single-threaded by contract, so Graph carries no lock.
type Graph struct {
	processorType []int
	channels      []Channel
}

// NewGraph creates a Graph with len(processorTypes) processors, processor
// p having type processorTypes[p].
func NewGraph(processorTypes []int) (*Graph, error) {
	if len(processorTypes) == 0 {
		return nil, ErrBadProcessorCount
	}
	pt := make([]int, len(processorTypes))
	copy(pt, processorTypes)
	return &Graph{processorType: pt}, nil
}

// NumProcessors returns the number of processors.
func (g *Graph) NumProcessors() int { return len(g.processorType) }

// NumChannels returns the number of channels.
func (g *Graph) NumChannels() int { return len(g.channels) }

// ProcessorType returns the type id of processor p.
func (g *Graph) ProcessorType(p int) (int, error) {
	if p < 0 || p >= len(g.processorType) {
		return 0, ErrProcessorOutOfRange
	}
	return g.processorType[p], nil
}

// Channels returns a copy of the channel list.
func (g *Graph) Channels() []Channel {
	out := make([]Channel, len(g.channels))
	copy(out, g.channels)
	return out
}

// AddChannel adds a channel from `from` to `to` with the given type.
func (g *Graph) AddChannel(from, to, chType int) error {
	n := g.NumProcessors()
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrProcessorOutOfRange
	}
	if chType < 0 {
		return ErrNegativeChannelType
	}
	g.channels = append(g.channels, Channel{From: from, To: to, Type: chType})
	return nil
}

// numChannelTypes returns one plus the maximum channel type present (0 if
// there are no channels), i.e. the size of the type alphabet.
func (g *Graph) numChannelTypes() int {
	max := -1
	for _, c := range g.channels {
		if c.Type > max {
			max = c.Type
		}
	}
	return max + 1
}
