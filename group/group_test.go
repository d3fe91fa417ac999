package group_test

import (
	"testing"

	"github.com/goens/mpsym/group"
	"github.com/goens/mpsym/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ring4(t *testing.T) perm.PermutationSet {
	t.Helper()
	g, err := perm.FromCycles(4, [][]int{{1, 2, 3, 4}})
	require.NoError(t, err)
	return perm.NewSet(g)
}

func TestOrderAndContains(t *testing.T) {
	gp, err := group.New(4, ring4(t))
	require.NoError(t, err)
	assert.Equal(t, "4", gp.Order().String())

	member, err := perm.FromCycles(4, [][]int{{1, 3}, {2, 4}})
	require.NoError(t, err)
	assert.True(t, gp.Contains(member))

	notMember, err := perm.FromCycles(4, [][]int{{1, 2}})
	require.NoError(t, err)
	assert.False(t, gp.Contains(notMember))
}

func TestOrbitUnderCyclicGroup(t *testing.T) {
	gp, err := group.New(4, ring4(t))
	require.NoError(t, err)
	orbit := gp.Orbit(1)
	assert.Equal(t, 4, orbit.Len())
}

func TestForEachEnumeratesFullOrder(t *testing.T) {
	gp, err := group.New(4, ring4(t))
	require.NoError(t, err)
	count := 0
	gp.ForEach(func(perm.Permutation) bool {
		count++
		return true
	})
	assert.Equal(t, 4, count)
}

func TestTrivialGroup(t *testing.T) {
	gp, err := group.Trivial(3)
	require.NoError(t, err)
	assert.Equal(t, "1", gp.Order().String())
	count := 0
	gp.ForEach(func(perm.Permutation) bool { count++; return true })
	assert.Equal(t, 1, count)
}
