package mapping_test

import (
	"fmt"

	"github.com/goens/mpsym/group"
	"github.com/goens/mpsym/mapping"
	"github.com/goens/mpsym/perm"
)

// ExampleMap canonicalizes task placements on a ring of four identical
// processors. Rotating or reflecting a placement around the ring does not
// change its communication behavior, so all such variants share one
// canonical representative.
func ExampleMap() {
	rotate, _ := perm.FromCycles(4, [][]int{{1, 2, 3, 4}})
	reflect, _ := perm.FromCycles(4, [][]int{{1, 2}, {3, 4}})
	ring, _ := group.New(4, perm.NewSet(rotate, reflect))

	cache := mapping.NewTaskOrbits()
	for _, alloc := range []mapping.TaskAllocation{
		{0, 1, 2, 3},
		{1, 2, 3, 0},
		{3, 2, 1, 0},
	} {
		tm, _ := mapping.Map(alloc, ring, 0, mapping.WithOrbitCache(cache))
		fmt.Println(alloc, "->", tm.Canonical)
	}
	fmt.Println("equivalent placements seen:", cache.Size(mapping.TaskAllocation{0, 1, 2, 3}))
	// Output:
	// [0 1 2 3] -> [0 1 2 3]
	// [1 2 3 0] -> [0 1 2 3]
	// [3 2 1 0] -> [0 1 2 3]
	// equivalent placements seen: 3
}
