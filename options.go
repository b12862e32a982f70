package hcube

import "go.uber.org/zap"

// Option configures orbit reduction.
type Option func(*config)

type config struct {
	logger   *zap.Logger
	progress func(done, total int)
}

func defaultConfig() *config {
	return &config{
		logger: zap.NewNop(),
	}
}

// WithLogger sets the logger used to report enumeration progress.
// If not set, or set to nil, nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProgress registers a callback invoked every ProgressInterval raw
// indices. The last call always reports done == total.
func WithProgress(fn func(done, total int)) Option {
	return func(c *config) {
		c.progress = fn
	}
}
