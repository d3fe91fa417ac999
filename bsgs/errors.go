// Package bsgs implements the base and strong generating set and both
// the deterministic and randomized Schreier-Sims constructions.
package bsgs

import "errors"

var (
	// ErrBadDegree indicates a non-positive degree was requested.
	ErrBadDegree = errors.New("bsgs: degree must be positive")

	// ErrKnownOrderMismatch indicates the randomized construction's result
	// never matched the caller-supplied known order within its retry
	// budget, and the deterministic fallback also failed to confirm it —
	// this should only happen if the supplied order itself is wrong.
	ErrKnownOrderMismatch = errors.New("bsgs: constructed group order never matched known order")
)
