// Package perm: sentinel errors for permutation construction and composition.
//
// Error policy: only sentinel variables are exported; callers branch
// with errors.Is, never string comparison. Context is attached with
// fmt.Errorf("%w", ...) at the call site, never baked into the sentinel
// message itself.
package perm

import "errors"

var (
	// ErrBadDegree indicates a negative degree was requested, or an image
	// construction was given no points to act on.
	ErrBadDegree = errors.New("perm: invalid degree")

	// ErrBadImage indicates an image slice is not a permutation of
	// {1, ..., n}: wrong length, a repeated value, or a value outside range.
	ErrBadImage = errors.New("perm: image is not a valid permutation of 1..n")

	// ErrBadPoint indicates a point passed to Apply is below 1. Points
	// above the permutation's degree are fixed points, not errors.
	ErrBadPoint = errors.New("perm: point out of domain")

	// ErrBadCycle indicates a cycle entry repeats a point or references a
	// point outside {1, ..., n}.
	ErrBadCycle = errors.New("perm: invalid cycle")

	// ErrEmptySet indicates an operation requiring at least one generator
	// was given an empty PermutationSet.
	ErrEmptySet = errors.New("perm: generator set is empty")
)
