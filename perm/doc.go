// Package perm — see types.go and set.go. Degree-extension semantics are
// the one subtlety worth internalizing: a permutation of degree 3 composed
// with one of degree 5 behaves as if the first were padded with fixed
// points 4 and 5.
package perm
