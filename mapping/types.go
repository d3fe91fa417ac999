package mapping

import (
	"strconv"
	"strings"

	"github.com/goens/mpsym/perm"
)

// TaskAllocation is a finite sequence of processor indices, one per task,
// using the same zero-based processor numbering as archgraph.Graph.
type TaskAllocation []int

// Clone returns an independent copy of a.
func (a TaskAllocation) Clone() TaskAllocation {
	out := make(TaskAllocation, len(a))
	copy(out, a)
	return out
}

// key returns a value comparable with ==, suitable for use as a map key,
// representing a's contents (TaskOrbits' cache key).
func (a TaskAllocation) key() string {
	var b strings.Builder
	for _, v := range a {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String()
}

// compareLex returns -1, 0, or 1 as a is lexicographically less than,
// equal to, or greater than b. Equal-length inputs are assumed, as every
// allocation compared here is derived from the same original allocation.
func compareLex(a, b TaskAllocation) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// comparePermImage breaks ties between two transversal representatives by
// their image vectors, preferring the lexicographically smaller one.
func comparePermImage(a, b perm.Permutation) int {
	ia, ib := a.Image(), b.Image()
	n := len(ia)
	if len(ib) < n {
		n = len(ib)
	}
	for i := 0; i < n; i++ {
		if ia[i] != ib[i] {
			if ia[i] < ib[i] {
				return -1
			}
			return 1
		}
	}
	if len(ia) != len(ib) {
		if len(ia) < len(ib) {
			return -1
		}
		return 1
	}
	return 0
}

// TaskMapping pairs an allocation with the canonical representative of
// its orbit under an architecture's automorphism group.
type TaskMapping struct {
	Original  TaskAllocation
	Canonical TaskAllocation
}

// applyAt returns the image of alloc under p, acting on processor
// sub-range [offset, offset+p.Degree()): out_j = π[a_j - offset + 1] - 1
// + offset, with the permutation's 1-based points shifted onto the
// sub-range.
func applyAt(p perm.Permutation, offset int, alloc TaskAllocation) (TaskAllocation, error) {
	out := make(TaskAllocation, len(alloc))
	for j, a := range alloc {
		point := a - offset + 1
		img, err := p.Apply(point)
		if err != nil {
			return nil, err
		}
		out[j] = img - 1 + offset
	}
	return out, nil
}
