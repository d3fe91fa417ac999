// Package mapping implements task-allocation canonicalization: mapping a
// task-to-processor allocation under an architecture's automorphism group,
// with an exact (brute-force) and an approximate (coset-greedy) strategy,
// plus the orbit cache that lets a caller recognize an allocation
// equivalent to one already seen without recomputing its canonical form.
package mapping

import "errors"

var (
	// ErrEmptyAllocation indicates Map was given a zero-length
	// TaskAllocation; a mapping of no tasks is not a meaningful request.
	ErrEmptyAllocation = errors.New("mapping: allocation is empty")

	// ErrProcessorOutOfRange indicates an allocation entry falls outside
	// [offset, offset+degree), the processor sub-range the group acts on.
	ErrProcessorOutOfRange = errors.New("mapping: allocation references a processor outside [offset, offset+degree)")
)
