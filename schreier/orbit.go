package schreier

import "github.com/goens/mpsym/perm"

// Orbit is the set of points reached from a base point under a generating
// set, as computed by ComputeOrbit.
type Orbit struct {
	points map[int]struct{}
	order  []int
}

// Len returns the orbit size.
func (o Orbit) Len() int { return len(o.points) }

// Contains reports whether point is in the orbit.
func (o Orbit) Contains(point int) bool {
	_, ok := o.points[point]
	return ok
}

// Points returns the orbit's points in discovery order.
func (o Orbit) Points() []int {
	out := make([]int, len(o.order))
	copy(out, o.order)
	return out
}

// ComputeOrbit runs the standard orbit-closure BFS: starting from base,
// repeatedly apply every generator to every discovered point until no new
// point is found. It returns both the resulting Orbit and the Structure
// (transversal tree) built along the way, since the two are always needed
// together by BSGS construction.
func ComputeOrbit(base, degree int, gens perm.PermutationSet) (Orbit, *Structure) {
	structure := NewStructure(base, degree)
	queue := []int{base}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < gens.Len(); i++ {
			g := gens.At(i)
			img, err := g.Apply(cur)
			if err != nil {
				continue
			}
			if !structure.Contains(img) {
				structure.extend(img, cur, g)
				queue = append(queue, img)
			}
		}
	}
	order := structure.Points()
	points := make(map[int]struct{}, len(order))
	for _, p := range order {
		points[p] = struct{}{}
	}
	return Orbit{points: points, order: order}, structure
}
