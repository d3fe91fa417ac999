// Package group implements a permutation-group facade over a BSGS that
// answers membership, order, and orbit queries, and enumerates elements.
package group

import "errors"

// ErrBadDegree indicates a non-positive degree was requested.
var ErrBadDegree = errors.New("group: degree must be positive")
