package cksum

import (
	"fmt"
	"strings"
)

// Capability is a set of acceleration families usable on this processor.
type Capability uint8

const (
	// CapCLMUL128 indicates 128-bit carryless multiply (PCLMULQDQ+AVX).
	CapCLMUL128 Capability = 1 << iota

	// CapVCLMUL256 indicates 256-bit vector carryless multiply.
	CapVCLMUL256

	// CapVCLMUL512 indicates 512-bit vector carryless multiply.
	CapVCLMUL512

	// CapPMULL indicates the ARM polynomial multiply extension.
	CapPMULL
)

// Has returns true if every family in f is present in c.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// String returns the string representation of this Capability set.
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	parts := make([]string, 0, 4)
	if c.Has(CapCLMUL128) {
		parts = append(parts, "clmul128")
	}
	if c.Has(CapVCLMUL256) {
		parts = append(parts, "vclmul256")
	}
	if c.Has(CapVCLMUL512) {
		parts = append(parts, "vclmul512")
	}
	if c.Has(CapPMULL) {
		parts = append(parts, "pmull")
	}
	return strings.Join(parts, "+")
}

// Probe reports which acceleration families the current processor
// supports.
func Probe() Capability {
	return archCapabilities()
}

// bestKernel maps a capability set to the preferred kernel; first match
// wins.  PMULL machines run the 128-bit fold engine.  The scalar choice
// between slice-by-8 and chorba is fixed at build time, not probed.
func bestKernel(caps Capability) Kernel {
	switch {
	case caps.Has(CapVCLMUL512):
		return CLMUL512Kernel
	case caps.Has(CapVCLMUL256):
		return CLMUL256Kernel
	case caps.Has(CapCLMUL128):
		return CLMUL128Kernel
	case caps.Has(CapPMULL):
		return CLMUL128Kernel
	default:
		return scalarKernel
	}
}

var _ fmt.Stringer = Capability(0)
