package app

import "go.uber.org/zap"

// Option is a functional option for configuring App initialization
type Option func(*appOptions)

type appOptions struct {
	logger *zap.Logger
}

// WithLogger sets the logger instead of building one from config
func WithLogger(logger *zap.Logger) Option {
	return func(o *appOptions) {
		o.logger = logger
	}
}
