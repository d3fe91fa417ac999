// Package mpsym is a symmetry-aware task-mapping kernel for heterogeneous
// many-core architectures.
//
// Given an architecture graph (typed processors connected by typed
// channels) and a task-to-processor allocation, mpsym decides whether two
// allocations are equivalent under the architecture's automorphism group
// and computes a canonical representative of each equivalence class,
// letting a mapping tool deduplicate functionally identical placements.
//
// Everything is organized under seven subpackages:
//
//	perm/      — permutations of {1..n} and generator sets
//	schreier/  — transversal trees, orbits, lazy Schreier generators
//	bsgs/      — base and strong generating sets; deterministic and
//	             Monte-Carlo Schreier-Sims construction
//	group/     — permutation-group facade: order, membership, orbits,
//	             element enumeration
//	archgraph/ — architecture graphs, vertex colorings for an external
//	             isomorphism oracle, leaf/cluster systems, JSON dump
//	mapping/   — canonical task allocations and the orbit cache
//	errkind/   — cross-cutting error taxonomy
//
// Typical flow: build an archgraph.Graph, obtain its automorphism group
// through an archgraph.Oracle (a nauty/bliss-style binding supplied by the
// caller), then canonicalize allocations with mapping.Map or
// mapping.MapSystem:
//
//	sys := archgraph.NewLeafSystem(g)
//	tm, err := mapping.MapSystem(alloc, sys, oracle, archgraph.AutomTotal)
//
// The core is single-threaded by contract; a constructed group may be
// shared across goroutines for read-only queries only.
package mpsym
