package cksum

import (
	"bytes"
	"io"
	"sync"
)

var gKernelOnce sync.Once
var gKernel Kernel

// pickKernel chooses the process-wide kernel from the capability probe.
// The first caller decides; every later caller observes the same choice.
func pickKernel() Kernel {
	gKernelOnce.Do(func() {
		gKernel = bestKernel(Probe())
	})
	return gKernel
}

// SumStream reads src to EOF and returns the POSIX cksum checksum and the
// number of bytes consumed.  Errors from src are returned unchanged; a
// stream longer than 2^64-1 bytes fails with LengthOverflowError.
func SumStream(src io.Reader, opts ...Option) (Checksum32, uint64, error) {
	if src == nil {
		return 0, 0, InvalidArgumentError{Problem: "nil byte source"}
	}
	var o options
	o.reset()
	o.apply(opts)
	kernel := o.kernel
	if kernel == AutoKernel {
		kernel = pickKernel()
	}
	d := driver{kernel: kernel, tracers: o.tracers}
	return d.run(src)
}

// Sum computes the POSIX cksum checksum of an in-memory byte slice.
func Sum(p []byte, opts ...Option) (Checksum32, uint64, error) {
	return SumStream(bytes.NewReader(p), opts...)
}
