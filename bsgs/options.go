package bsgs

import "github.com/hashicorp/go-hclog"

// Options configures a Schreier-Sims construction.
type Options struct {
	logger hclog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration default: a null logger.
func DefaultOptions() Options {
	return Options{logger: hclog.NewNullLogger()}
}

// WithLogger attaches a logger that traces base extensions and strong
// generator insertions.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RandomOptions configures the randomized (product-replacement) Schreier-
// Sims construction.
type RandomOptions struct {
	Options

	// W is the number of consecutive non-improving draws required before
	// the product-replacement loop considers the strong generating set
	// complete.
	W int

	// Retries bounds how many times the known-order variant restarts the
	// whole construction before falling back to the deterministic
	// algorithm.
	Retries int

	// Seed makes the product-replacement draws reproducible.
	Seed int64
}

// RandomOption configures RandomOptions.
type RandomOption func(*RandomOptions)

// DefaultRandomOptions returns conservative defaults: W=10, Retries=10,
// Seed=1.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Options: DefaultOptions(),
		W:       10,
		Retries: 10,
		Seed:    1,
	}
}

// WithRandomLogger attaches a trace logger.
func WithRandomLogger(l hclog.Logger) RandomOption {
	return func(o *RandomOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithW overrides the non-improving-draw threshold.
func WithW(w int) RandomOption {
	return func(o *RandomOptions) {
		if w > 0 {
			o.W = w
		}
	}
}

// WithRetries overrides the known-order retry budget.
func WithRetries(r int) RandomOption {
	return func(o *RandomOptions) {
		if r > 0 {
			o.Retries = r
		}
	}
}

// WithSeed overrides the RNG seed.
func WithSeed(seed int64) RandomOption {
	return func(o *RandomOptions) { o.Seed = seed }
}

func resolveRandomOptions(opts []RandomOption) RandomOptions {
	cfg := DefaultRandomOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
