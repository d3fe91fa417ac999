package archgraph_test

import (
	"encoding/json"
	"testing"

	"github.com/goens/mpsym/archgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpRoundTrip(t *testing.T) {
	g, err := archgraph.NewGraph([]int{0, 1, 0})
	require.NoError(t, err)
	require.NoError(t, g.AddChannel(0, 1, 0))
	require.NoError(t, g.AddChannel(1, 2, 1))

	d, err := archgraph.ToDump(g, []string{"cpu", "gpu"}, []string{"bus", "noc"})
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var back archgraph.Dump
	require.NoError(t, json.Unmarshal(raw, &back))

	g2, err := archgraph.FromDump(back)
	require.NoError(t, err)

	assert.Equal(t, g.NumProcessors(), g2.NumProcessors())
	assert.Equal(t, g.NumChannels(), g2.NumChannels())
	for p := 0; p < g.NumProcessors(); p++ {
		t1, err := g.ProcessorType(p)
		require.NoError(t, err)
		t2, err := g2.ProcessorType(p)
		require.NoError(t, err)
		assert.Equal(t, t1, t2)
	}
	assert.ElementsMatch(t, g.Channels(), g2.Channels())
}

func TestDumpJSONShape(t *testing.T) {
	g, err := archgraph.NewGraph([]int{0, 0})
	require.NoError(t, err)
	require.NoError(t, g.AddChannel(0, 1, 0))

	d, err := archgraph.ToDump(g, []string{"cpu"}, []string{"bus"})
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var shape map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &shape))
	for _, field := range []string{"directed", "processor_types", "channel_types", "processors", "channels"} {
		assert.Contains(t, shape, field)
	}

	// A channel serializes as the two-element tuple [to, type].
	var channels map[string][][2]json.RawMessage
	require.NoError(t, json.Unmarshal(shape["channels"], &channels))
	assert.Len(t, channels["0"], 1)
}

func TestToDumpMissingLabel(t *testing.T) {
	g, err := archgraph.NewGraph([]int{0, 1})
	require.NoError(t, err)
	_, err = archgraph.ToDump(g, []string{"cpu"}, nil)
	assert.ErrorIs(t, err, archgraph.ErrLabelOutOfRange)
}

func TestFromDumpUnknownLabel(t *testing.T) {
	d := archgraph.Dump{
		Directed:       true,
		ProcessorTypes: []string{"cpu"},
		Processors:     map[string]string{"0": "fpga"},
	}
	_, err := archgraph.FromDump(d)
	assert.ErrorIs(t, err, archgraph.ErrMalformedDump)
}
