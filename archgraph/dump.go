package archgraph

import (
	"encoding/json"
	"strconv"
)

// Dump is the round-trip JSON persisted form of a Graph: it externalizes
// the otherwise-opaque integer processor/channel type ids as
// the string labels a config front end would have assigned them, so a
// dump produced by one process can be loaded by another without sharing
// an in-memory type table.
type Dump struct {
	Directed       bool                     `json:"directed"`
	ProcessorTypes []string                 `json:"processor_types"`
	ChannelTypes   []string                 `json:"channel_types"`
	Processors     map[string]string        `json:"processors"`
	Channels       map[string][]channelEdge `json:"channels"`
}

// channelEdge is one entry of a Channels adjacency list: [to, type] as a
// two-element JSON array rather than an object with named fields.
type channelEdge struct {
	To   int
	Type string
}

// MarshalJSON encodes c as the two-element tuple [to, type].
func (c channelEdge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{c.To, c.Type})
}

// UnmarshalJSON decodes c from the two-element tuple [to, type].
func (c *channelEdge) UnmarshalJSON(data []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[0], &c.To); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &c.Type)
}

// ToDump converts g to its persisted form, labeling processor and channel
// type ids using processorTypeLabels/channelTypeLabels (the alphabet the
// type ids index into, as produced by the out-of-scope config front end).
func ToDump(g *Graph, processorTypeLabels, channelTypeLabels []string) (Dump, error) {
	d := Dump{
		Directed:       true,
		ProcessorTypes: append([]string(nil), processorTypeLabels...),
		ChannelTypes:   append([]string(nil), channelTypeLabels...),
		Processors:     make(map[string]string, g.NumProcessors()),
		Channels:       make(map[string][]channelEdge),
	}
	for p := 0; p < g.NumProcessors(); p++ {
		t, err := g.ProcessorType(p)
		if err != nil {
			return Dump{}, err
		}
		if t < 0 || t >= len(processorTypeLabels) {
			return Dump{}, ErrLabelOutOfRange
		}
		d.Processors[strconv.Itoa(p)] = processorTypeLabels[t]
	}
	for _, c := range g.channels {
		if c.Type < 0 || c.Type >= len(channelTypeLabels) {
			return Dump{}, ErrLabelOutOfRange
		}
		key := strconv.Itoa(c.From)
		d.Channels[key] = append(d.Channels[key], channelEdge{To: c.To, Type: channelTypeLabels[c.Type]})
	}
	return d, nil
}

// FromDump reconstructs a Graph from its persisted form, resolving each
// string label back to the positional index it occupies in d's type
// alphabets.
func FromDump(d Dump) (*Graph, error) {
	n := len(d.Processors)
	if n == 0 {
		return nil, ErrBadProcessorCount
	}
	procTypeIndex := make(map[string]int, len(d.ProcessorTypes))
	for i, label := range d.ProcessorTypes {
		procTypeIndex[label] = i
	}
	chanTypeIndex := make(map[string]int, len(d.ChannelTypes))
	for i, label := range d.ChannelTypes {
		chanTypeIndex[label] = i
	}

	types := make([]int, n)
	for idStr, label := range d.Processors {
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 0 || id >= n {
			return nil, ErrMalformedDump
		}
		t, ok := procTypeIndex[label]
		if !ok {
			return nil, ErrMalformedDump
		}
		types[id] = t
	}
	g, err := NewGraph(types)
	if err != nil {
		return nil, err
	}
	for fromStr, targets := range d.Channels {
		from, err := strconv.Atoi(fromStr)
		if err != nil {
			return nil, ErrMalformedDump
		}
		for _, edge := range targets {
			t, ok := chanTypeIndex[edge.Type]
			if !ok {
				return nil, ErrMalformedDump
			}
			if err := g.AddChannel(from, edge.To, t); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
