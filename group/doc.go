// Package group — see group.go. A Group is a thin facade over a bsgs.BSGS:
// it owns the original generating set (for Orbit, which wants the actual
// generators rather than the base's strong generating set) and delegates
// membership and order queries to the chain.
package group
