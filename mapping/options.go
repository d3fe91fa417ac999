package mapping

// Method selects the canonicalization strategy Map uses.
type Method int

const (
	// MethodExact enumerates every group element via group.Group.ForEach
	// and tracks the running lexicographic minimum image: O(|G|·t), exact
	// by construction.
	MethodExact Method = iota

	// MethodApprox walks the BSGS base level by level, greedily choosing
	// at each level the transversal representative that minimizes the
	// resulting allocation so far, with ties broken by the representative's
	// own image vector. Faster, but only guaranteed to find the true
	// minimum when the group's action is sufficiently transitive.
	MethodApprox
)

// Options configures Map, following this module's functional-options
// idiom (bsgs.Options, group.Options).
type Options struct {
	Method        Method
	UseOrbitCache bool
	OrbitCache    *TaskOrbits
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the exact strategy with no orbit cache.
func DefaultOptions() Options {
	return Options{Method: MethodExact}
}

// WithMethod selects the canonicalization strategy.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithOrbitCache records every mapping this call produces into cache.
func WithOrbitCache(cache *TaskOrbits) Option {
	return func(o *Options) {
		o.UseOrbitCache = cache != nil
		o.OrbitCache = cache
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
