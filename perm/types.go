// Package perm implements Permutation and PermutationSet: dense
// permutations of {1, ..., n} and the finite generator sets strong
// generating sets are built from.
//
// Permutations of different degree compose under implicit identity
// extension: a point beyond a permutation's degree is treated as fixed
// rather than rejected. This lets Compose, Equal, and Stabilizes operate
// uniformly across the varying degrees that appear while a base is being
// extended.
package perm

import "fmt"

// Permutation is an immutable bijection of {1, ..., n} represented as a
// dense image vector: image[i-1] holds the image of point i.
type Permutation struct {
	image []int
}

// Degree returns n, the size of the domain {1, ..., n}.
func (p Permutation) Degree() int { return len(p.image) }

// Identity returns the identity permutation of degree n. Degree 0 is
// allowed: the empty permutation is absorbing under composition, since
// every point beyond a permutation's degree is an implicit fixed point.
func Identity(n int) (Permutation, error) {
	if n < 0 {
		return Permutation{}, ErrBadDegree
	}
	img := make([]int, n)
	for i := range img {
		img[i] = i + 1
	}
	return Permutation{image: img}, nil
}

// FromImage builds a Permutation from a 1-indexed image vector: image[i-1]
// is the image of point i. It validates that image is a bijection of
// {1, ..., len(image)}.
func FromImage(image []int) (Permutation, error) {
	n := len(image)
	if n == 0 {
		return Permutation{}, ErrBadDegree
	}
	seen := make([]bool, n+1)
	for _, v := range image {
		if v < 1 || v > n || seen[v] {
			return Permutation{}, ErrBadImage
		}
		seen[v] = true
	}
	img := make([]int, n)
	copy(img, image)
	return Permutation{image: img}, nil
}

// FromCycles builds a Permutation of degree n from a list of cycles, each
// given as a slice of 1-indexed points. Cycles compose right-to-left: the
// last cycle in cycles is applied first.
func FromCycles(n int, cycles [][]int) (Permutation, error) {
	id, err := Identity(n)
	if err != nil {
		return Permutation{}, err
	}
	result := id
	for i := len(cycles) - 1; i >= 0; i-- {
		cp, err := cycleToPerm(n, cycles[i])
		if err != nil {
			return Permutation{}, err
		}
		result = Compose(cp, result)
	}
	return result, nil
}

func cycleToPerm(n int, cycle []int) (Permutation, error) {
	id, err := Identity(n)
	if err != nil {
		return Permutation{}, err
	}
	if len(cycle) == 0 {
		return id, nil
	}
	seen := make(map[int]bool, len(cycle))
	for _, pt := range cycle {
		if pt < 1 || pt > n || seen[pt] {
			return Permutation{}, ErrBadCycle
		}
		seen[pt] = true
	}
	img := id.image
	for i, pt := range cycle {
		next := cycle[(i+1)%len(cycle)]
		img[pt-1] = next
	}
	return Permutation{image: img}, nil
}

// extendedApply returns p(x), treating x as fixed if it exceeds p.Degree().
func extendedApply(p Permutation, x int) int {
	if x <= p.Degree() {
		return p.image[x-1]
	}
	return x
}

// Compose returns a∘b, i.e. the permutation x ↦ a(b(x)). The result's
// degree is max(a.Degree(), b.Degree()); points beyond a permutation's own
// degree are treated as fixed (implicit identity extension).
func Compose(a, b Permutation) Permutation {
	n := a.Degree()
	if b.Degree() > n {
		n = b.Degree()
	}
	img := make([]int, n)
	for i := 1; i <= n; i++ {
		img[i-1] = extendedApply(a, extendedApply(b, i))
	}
	return Permutation{image: img}
}

// Apply returns p(x). ErrBadPoint is returned for x < 1; points beyond
// Degree() are fixed points by the identity-extension convention.
func (p Permutation) Apply(x int) (int, error) {
	if x < 1 {
		return 0, ErrBadPoint
	}
	return extendedApply(p, x), nil
}

// Inverse returns p⁻¹.
func (p Permutation) Inverse() Permutation {
	img := make([]int, p.Degree())
	for i, v := range p.image {
		img[v-1] = i + 1
	}
	return Permutation{image: img}
}

// IsIdentity reports whether p fixes every point in its domain.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.image {
		if v != i+1 {
			return false
		}
	}
	return true
}

// Stabilizes reports whether p fixes point.
func (p Permutation) Stabilizes(point int) bool {
	return extendedApply(p, point) == point
}

// StabilizesAll reports whether p fixes every point in points.
func (p Permutation) StabilizesAll(points ...int) bool {
	for _, pt := range points {
		if !p.Stabilizes(pt) {
			return false
		}
	}
	return true
}

// Extend returns a copy of p with its degree raised to n, fixing every new
// point. n must be >= p.Degree().
func (p Permutation) Extend(n int) (Permutation, error) {
	if n < p.Degree() {
		return Permutation{}, ErrBadDegree
	}
	img := make([]int, n)
	copy(img, p.image)
	for i := p.Degree(); i < n; i++ {
		img[i] = i + 1
	}
	return Permutation{image: img}, nil
}

// Equal reports whether p and q represent the same bijection, comparing
// under extension to the larger of the two degrees.
func (p Permutation) Equal(q Permutation) bool {
	n := p.Degree()
	if q.Degree() > n {
		n = q.Degree()
	}
	for i := 1; i <= n; i++ {
		if extendedApply(p, i) != extendedApply(q, i) {
			return false
		}
	}
	return true
}

// Image returns a copy of the underlying 1-indexed image vector.
func (p Permutation) Image() []int {
	out := make([]int, len(p.image))
	copy(out, p.image)
	return out
}

func (p Permutation) String() string {
	return fmt.Sprintf("perm%v", p.image)
}
