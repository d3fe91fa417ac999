package mapping

// TaskOrbits caches, for each canonical allocation seen so far, the set of
// original allocations observed to map to it, answering "have I already
// seen an equivalent allocation?" without recomputing its canonical form.
type TaskOrbits struct {
	canonical map[string]TaskAllocation
	originals map[string]map[string]TaskAllocation
}

// NewTaskOrbits returns an empty cache.
func NewTaskOrbits() *TaskOrbits {
	return &TaskOrbits{
		canonical: make(map[string]TaskAllocation),
		originals: make(map[string]map[string]TaskAllocation),
	}
}

// Insert records tm.Original as having mapped to tm.Canonical. It returns
// tm.Canonical and whether this is the first time this canonical class
// has been observed at all.
func (o *TaskOrbits) Insert(tm TaskMapping) (canonical TaskAllocation, wasNewCanonical bool) {
	key := tm.Canonical.key()
	bucket, seenCanonical := o.originals[key]
	if !seenCanonical {
		bucket = make(map[string]TaskAllocation)
		o.originals[key] = bucket
		o.canonical[key] = tm.Canonical.Clone()
	}
	bucket[tm.Original.key()] = tm.Original.Clone()
	return o.canonical[key], !seenCanonical
}

// Seen reports whether canonical has already been recorded by a prior
// Insert.
func (o *TaskOrbits) Seen(canonical TaskAllocation) bool {
	_, ok := o.originals[canonical.key()]
	return ok
}

// Originals returns every original allocation recorded under canonical, or
// nil if canonical has not been seen.
func (o *TaskOrbits) Originals(canonical TaskAllocation) []TaskAllocation {
	bucket, ok := o.originals[canonical.key()]
	if !ok {
		return nil
	}
	out := make([]TaskAllocation, 0, len(bucket))
	for _, a := range bucket {
		out = append(out, a)
	}
	return out
}

// Size returns the number of distinct original allocations recorded under
// canonical.
func (o *TaskOrbits) Size(canonical TaskAllocation) int {
	return len(o.originals[canonical.key()])
}
