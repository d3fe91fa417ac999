package group

import "github.com/hashicorp/go-hclog"

// Options configures Group construction.
type Options struct {
	logger    hclog.Logger
	randomize bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns deterministic construction with a null logger.
func DefaultOptions() Options {
	return Options{logger: hclog.NewNullLogger()}
}

// WithLogger attaches a trace logger, forwarded to the underlying bsgs
// construction.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRandomizedConstruction uses the Monte-Carlo Schreier-Sims
// construction instead of the deterministic one.
func WithRandomizedConstruction() Option {
	return func(o *Options) { o.randomize = true }
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
