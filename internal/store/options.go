package store

import "go.uber.org/zap"

// Option configures a store or binding
type Option func(*options)

type options struct {
	log     *zap.Logger
	changes *Changes
}

// WithLogger sets the logger used for load and mutation events
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithChanges sets the feed that receives a Change after every successful mutation
func WithChanges(c *Changes) Option {
	return func(o *options) {
		o.changes = c
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
