package archgraph

import "github.com/hashicorp/go-hclog"

// Options configures automorphism computation, following the
// functional-options idiom used throughout this module (bsgs.Options,
// group.Options).
type Options struct {
	logger hclog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a null logger.
func DefaultOptions() Options {
	return Options{logger: hclog.NewNullLogger()}
}

// WithLogger attaches a logger tracing coloring construction and
// generator projection.
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
