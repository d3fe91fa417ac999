// Package archgraph holds the architecture-graph data model, its
// translation into a vertex-colored graph consumable by an external
// isomorphism oracle, and the System/LeafSystem/ClusterSystem contract.
package archgraph

import "errors"

var (
	// ErrBadProcessorCount indicates a non-positive processor count.
	ErrBadProcessorCount = errors.New("archgraph: processor count must be positive")

	// ErrProcessorOutOfRange indicates a channel endpoint or a processor
	// type assignment referenced a processor index outside the graph.
	ErrProcessorOutOfRange = errors.New("archgraph: processor index out of range")

	// ErrNegativeChannelType indicates a channel was given a negative type
	// id; types are encoded as non-negative integers and shifted by one
	// internally when building layered colorings.
	ErrNegativeChannelType = errors.New("archgraph: channel type must be non-negative")

	// ErrOracleVertexMismatch indicates the oracle returned automorphism
	// generators whose degree does not match the colored graph it was
	// given — an invariant violation, never a caller mistake.
	ErrOracleVertexMismatch = errors.New("archgraph: oracle result degree does not match graph order")

	// ErrOracleMovesAuxiliaryVertex indicates a returned automorphism maps
	// one of the n processor vertices of the first layer onto an auxiliary
	// (layer) vertex, so it cannot be restricted to a permutation of the
	// processors.
	ErrOracleMovesAuxiliaryVertex = errors.New("archgraph: oracle automorphism inconsistent with layer structure")

	// ErrNoSubsystems indicates a ClusterSystem operation requires at
	// least one subsystem, but none has been added yet.
	ErrNoSubsystems = errors.New("archgraph: cluster has no subsystems")

	// ErrUnknownAutomorphismKind indicates a kind value outside
	// {AutomProcessors, AutomChannels, AutomTotal}.
	ErrUnknownAutomorphismKind = errors.New("archgraph: unknown automorphism kind")

	// ErrLabelOutOfRange indicates ToDump was given fewer type labels
	// than the graph's highest type id requires.
	ErrLabelOutOfRange = errors.New("archgraph: type id has no corresponding label")

	// ErrMalformedDump indicates FromDump was given a Dump whose
	// processor/channel keys or type labels are not internally
	// consistent (non-integer key, id out of range, unknown label).
	ErrMalformedDump = errors.New("archgraph: malformed dump")
)
