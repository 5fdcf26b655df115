// +build arm64

package cksum

import (
	"golang.org/x/sys/cpu"
)

func archCapabilities() Capability {
	var caps Capability
	if cpu.ARM64.HasPMULL {
		caps |= CapPMULL
	}
	return caps
}
