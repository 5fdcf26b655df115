package cksum

import (
	"github.com/chronos-tachyon/assert"
)

// Option represents a configuration option for SumStream, Sum, or New.
type Option func(*options)

type options struct {
	kernel  Kernel
	tracers []Tracer
}

func (o *options) reset() {
	*o = options{
		kernel:  AutoKernel,
		tracers: nil,
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithKernel forces a specific Kernel instead of probing the processor.
// AutoKernel restores the default behavior.
func WithKernel(kernel Kernel) Option {
	assert.Assertf(kernel.IsValid(), "invalid Kernel %d", uint(kernel))
	return func(o *options) { o.kernel = kernel }
}

// WithTracers specifies the list of Tracer instances which will receive
// Events as the stream is consumed.  Completely replaces any previous
// list.
func WithTracers(tracers ...Tracer) Option {
	for _, tr := range tracers {
		assert.NotNil(&tr)
	}
	if len(tracers) == 0 {
		tracers = nil
	} else {
		tmp := make([]Tracer, len(tracers))
		copy(tmp, tracers)
		tracers = tmp
	}
	return func(o *options) { o.tracers = tracers }
}
