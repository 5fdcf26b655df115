// +build amd64

package cksum

import (
	"golang.org/x/sys/cpu"
)

func archCapabilities() Capability {
	var caps Capability
	if cpu.X86.HasPCLMULQDQ && cpu.X86.HasAVX {
		caps |= CapCLMUL128
	}
	// Processors do not advertise VPCLMULQDQ unless the AVX512 form is
	// supported, and it implies the AVX2 form works too.
	if cpu.X86.HasAVX512VPCLMULQDQ && cpu.X86.HasAVX2 {
		caps |= CapVCLMUL256
	}
	if cpu.X86.HasAVX512VPCLMULQDQ && cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		caps |= CapVCLMUL512
	}
	return caps
}
