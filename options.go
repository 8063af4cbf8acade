package layergo

import (
	"context"

	"github.com/hupe1980/layergo/internal/simd"
)

type options struct {
	logger         *Logger
	genericKernels bool
}

// Option configures package-wide engine behavior.
type Option func(*options)

// WithLogger sets the logger used to report precondition violations and
// kernel selection. A nil logger restores the default, which discards output.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithGenericKernels forces the portable float32 kernels regardless of the
// detected CPU features or the LAYERGO_SIMD environment variable.
func WithGenericKernels() Option {
	return func(o *options) {
		o.genericKernels = true
	}
}

// Configure applies opts to the engine. It is meant to be called once during
// program start-up, before layers are shared between goroutines.
func Configure(opts ...Option) {
	o := options{
		logger: logger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	engineLogger.Store(o.logger)

	if o.genericKernels {
		simd.SetKernels(simd.Generic)
	}

	o.logger.LogKernels(context.Background())
}
