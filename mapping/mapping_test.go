package mapping_test

import (
	"testing"

	"github.com/goens/mpsym/archgraph"
	"github.com/goens/mpsym/group"
	"github.com/goens/mpsym/mapping"
	"github.com/goens/mpsym/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ring4 is the dihedral group of order 8 acting on a 4-cycle.
func ring4(t *testing.T) *group.Group {
	t.Helper()
	rotate, err := perm.FromCycles(4, [][]int{{1, 2, 3, 4}})
	require.NoError(t, err)
	reflect, err := perm.FromCycles(4, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	gp, err := group.New(4, perm.NewSet(rotate, reflect))
	require.NoError(t, err)
	return gp
}

// pathReversal is the order-2 group of a 4-node path graph: only the
// identity and the full reversal are automorphisms.
func pathReversal(t *testing.T) *group.Group {
	t.Helper()
	reversal, err := perm.FromCycles(4, [][]int{{1, 4}, {2, 3}})
	require.NoError(t, err)
	gp, err := group.New(4, perm.NewSet(reversal))
	require.NoError(t, err)
	return gp
}

func TestMapS1LinearChain(t *testing.T) {
	gp := pathReversal(t)
	tm, err := mapping.Map(mapping.TaskAllocation{0, 1, 2, 3}, gp, 0)
	require.NoError(t, err)
	assert.Equal(t, mapping.TaskAllocation{0, 1, 2, 3}, tm.Canonical)

	tm, err = mapping.Map(mapping.TaskAllocation{3, 2, 1, 0}, gp, 0)
	require.NoError(t, err)
	assert.Equal(t, mapping.TaskAllocation{0, 1, 2, 3}, tm.Canonical)
}

func TestMapS2RingOfFour(t *testing.T) {
	gp := ring4(t)
	allocs := []mapping.TaskAllocation{
		{0, 1, 2, 3},
		{1, 2, 3, 0},
		{3, 2, 1, 0},
	}
	var canonical mapping.TaskAllocation
	for i, a := range allocs {
		tm, err := mapping.Map(a, gp, 0)
		require.NoError(t, err)
		if i == 0 {
			canonical = tm.Canonical
		} else {
			assert.Equal(t, canonical, tm.Canonical)
		}
	}
}

func TestMapS3TwoProcessorTypes(t *testing.T) {
	// S_2 x S_2: swap {0,1} independently of swap {2,3}.
	swapAB, err := perm.FromCycles(4, [][]int{{1, 2}})
	require.NoError(t, err)
	swapCD, err := perm.FromCycles(4, [][]int{{3, 4}})
	require.NoError(t, err)
	gp, err := group.New(4, perm.NewSet(swapAB, swapCD))
	require.NoError(t, err)

	tm1, err := mapping.Map(mapping.TaskAllocation{0, 1, 2, 3}, gp, 0)
	require.NoError(t, err)
	tm2, err := mapping.Map(mapping.TaskAllocation{1, 0, 3, 2}, gp, 0)
	require.NoError(t, err)
	assert.Equal(t, tm1.Canonical, tm2.Canonical)

	tm3, err := mapping.Map(mapping.TaskAllocation{0, 2, 1, 3}, gp, 0)
	require.NoError(t, err)
	assert.NotEqual(t, tm1.Canonical, tm3.Canonical)
}

func TestMapS4TrivialGroup(t *testing.T) {
	gp, err := group.Trivial(3)
	require.NoError(t, err)
	alloc := mapping.TaskAllocation{0, 1, 2}
	tm, err := mapping.Map(alloc, gp, 0)
	require.NoError(t, err)
	assert.Equal(t, alloc, tm.Canonical)
}

func TestMapApproxAgreesWithExactOnTransitiveGroup(t *testing.T) {
	gp := ring4(t)
	alloc := mapping.TaskAllocation{3, 1, 0, 2}
	exact, err := mapping.Map(alloc, gp, 0, mapping.WithMethod(mapping.MethodExact))
	require.NoError(t, err)
	approx, err := mapping.Map(alloc, gp, 0, mapping.WithMethod(mapping.MethodApprox))
	require.NoError(t, err)
	assert.Equal(t, exact.Canonical, approx.Canonical)
}

func TestMapCanonicalIdempotent(t *testing.T) {
	gp := ring4(t)
	alloc := mapping.TaskAllocation{2, 3, 0, 1}
	tm, err := mapping.Map(alloc, gp, 0)
	require.NoError(t, err)
	tm2, err := mapping.Map(tm.Canonical, gp, 0)
	require.NoError(t, err)
	assert.Equal(t, tm.Canonical, tm2.Canonical)
}

func TestMapOutOfRangeProcessor(t *testing.T) {
	gp := ring4(t)
	_, err := mapping.Map(mapping.TaskAllocation{0, 1, 2, 9}, gp, 0)
	assert.ErrorIs(t, err, mapping.ErrProcessorOutOfRange)
}

func TestMapEmptyAllocation(t *testing.T) {
	gp := ring4(t)
	_, err := mapping.Map(mapping.TaskAllocation{}, gp, 0)
	assert.ErrorIs(t, err, mapping.ErrEmptyAllocation)
}

func TestMapWithOffsetSubrange(t *testing.T) {
	gp := ring4(t)
	tm, err := mapping.Map(mapping.TaskAllocation{4, 5, 6, 7}, gp, 4)
	require.NoError(t, err)
	assert.Equal(t, mapping.TaskAllocation{4, 5, 6, 7}, tm.Canonical)
}

func TestTaskOrbitsInsertAndRecall(t *testing.T) {
	gp := ring4(t)
	cache := mapping.NewTaskOrbits()

	tm1, err := mapping.Map(mapping.TaskAllocation{0, 1, 2, 3}, gp, 0, mapping.WithOrbitCache(cache))
	require.NoError(t, err)
	assert.True(t, cache.Seen(tm1.Canonical))
	assert.Equal(t, 1, cache.Size(tm1.Canonical))

	_, err = mapping.Map(mapping.TaskAllocation{1, 2, 3, 0}, gp, 0, mapping.WithOrbitCache(cache))
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Size(tm1.Canonical))

	originals := cache.Originals(tm1.Canonical)
	assert.Len(t, originals, 2)
}

func TestTaskOrbitsInsertReportsNewCanonical(t *testing.T) {
	cache := mapping.NewTaskOrbits()
	_, wasNew := cache.Insert(mapping.TaskMapping{
		Original:  mapping.TaskAllocation{1, 0},
		Canonical: mapping.TaskAllocation{0, 1},
	})
	assert.True(t, wasNew)

	_, wasNew = cache.Insert(mapping.TaskMapping{
		Original:  mapping.TaskAllocation{0, 1},
		Canonical: mapping.TaskAllocation{0, 1},
	})
	assert.False(t, wasNew)
}

func TestMapClusterS6TwoRings(t *testing.T) {
	ring := func() *archgraph.Graph {
		g, err := archgraph.NewGraph([]int{0, 0, 0, 0})
		require.NoError(t, err)
		require.NoError(t, g.AddChannel(0, 1, 0))
		require.NoError(t, g.AddChannel(1, 2, 0))
		require.NoError(t, g.AddChannel(2, 3, 0))
		require.NoError(t, g.AddChannel(3, 0, 0))
		return g
	}

	cluster := archgraph.NewClusterSystem()
	cluster.AddSubsystem(archgraph.NewLeafSystem(ring()))
	cluster.AddSubsystem(archgraph.NewLeafSystem(ring()))

	oracle := archgraph.OracleFunc(func(cg archgraph.ColoredGraph) (perm.PermutationSet, error) {
		rotate, err := perm.FromCycles(cg.NumVertices, [][]int{{1, 2, 3, 4}})
		if err != nil {
			return perm.PermutationSet{}, err
		}
		reflect, err := perm.FromCycles(cg.NumVertices, [][]int{{1, 2}, {3, 4}})
		if err != nil {
			return perm.PermutationSet{}, err
		}
		return perm.NewSet(rotate, reflect), nil
	})

	tm, err := mapping.MapCluster(mapping.TaskAllocation{0, 1, 4, 5}, cluster, oracle, archgraph.AutomProcessors)
	require.NoError(t, err)
	assert.Equal(t, mapping.TaskAllocation{0, 1, 4, 5}, tm.Canonical)

	tm2, err := mapping.MapCluster(mapping.TaskAllocation{1, 0, 5, 4}, cluster, oracle, archgraph.AutomProcessors)
	require.NoError(t, err)
	assert.Equal(t, tm.Canonical, tm2.Canonical)
}

func TestMapSystemDispatchesOnVariant(t *testing.T) {
	ringGraph := func() *archgraph.Graph {
		g, err := archgraph.NewGraph([]int{0, 0, 0, 0})
		require.NoError(t, err)
		require.NoError(t, g.AddChannel(0, 1, 0))
		require.NoError(t, g.AddChannel(1, 2, 0))
		require.NoError(t, g.AddChannel(2, 3, 0))
		require.NoError(t, g.AddChannel(3, 0, 0))
		return g
	}
	oracle := archgraph.OracleFunc(func(cg archgraph.ColoredGraph) (perm.PermutationSet, error) {
		rotate, err := perm.FromCycles(cg.NumVertices, [][]int{{1, 2, 3, 4}})
		require.NoError(t, err)
		reflect, err := perm.FromCycles(cg.NumVertices, [][]int{{1, 2}, {3, 4}})
		require.NoError(t, err)
		return perm.NewSet(rotate, reflect), nil
	})

	leaf := archgraph.NewLeafSystem(ringGraph())
	tm, err := mapping.MapSystem(mapping.TaskAllocation{3, 2, 1, 0}, leaf, oracle, archgraph.AutomProcessors)
	require.NoError(t, err)
	assert.Equal(t, mapping.TaskAllocation{0, 1, 2, 3}, tm.Canonical)

	cluster := archgraph.NewClusterSystem()
	cluster.AddSubsystem(archgraph.NewLeafSystem(ringGraph()))
	cluster.AddSubsystem(archgraph.NewLeafSystem(ringGraph()))
	tm, err = mapping.MapSystem(mapping.TaskAllocation{1, 0, 5, 4}, cluster, oracle, archgraph.AutomProcessors)
	require.NoError(t, err)
	assert.Equal(t, mapping.TaskAllocation{0, 1, 4, 5}, tm.Canonical)
}

func TestMapClusterOutOfRange(t *testing.T) {
	cluster := archgraph.NewClusterSystem()
	g, err := archgraph.NewGraph([]int{0, 0})
	require.NoError(t, err)
	cluster.AddSubsystem(archgraph.NewLeafSystem(g))

	oracle := archgraph.OracleFunc(func(cg archgraph.ColoredGraph) (perm.PermutationSet, error) {
		return perm.NewSet(), nil
	})
	_, err = mapping.MapCluster(mapping.TaskAllocation{0, 7}, cluster, oracle, archgraph.AutomProcessors)
	assert.ErrorIs(t, err, mapping.ErrProcessorOutOfRange)
}
