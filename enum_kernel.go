package cksum

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// Kernel identifies one of the CRC computation engines.
//
// Every kernel produces the same checksum for the same input; they differ
// only in how many bytes they advance per step.
type Kernel byte

const (
	// AutoKernel requests that the kernel be chosen at first use from the
	// processor's capabilities.
	AutoKernel Kernel = iota

	// Slice8Kernel is the table-driven reference engine, eight bytes per
	// step.
	Slice8Kernel

	// ChorbaKernel is the SIMD-free shift-and-XOR block engine.
	ChorbaKernel

	// CLMUL128Kernel is the 128-bit carryless-multiply fold engine.
	CLMUL128Kernel

	// CLMUL256Kernel is the 256-bit fold engine with chorba pre-reduction.
	CLMUL256Kernel

	// CLMUL512Kernel is the 512-bit fold engine with chorba pre-reduction.
	CLMUL512Kernel
)

var kernelData = []enumhelper.EnumData{
	{GoName: "AutoKernel", Name: "auto"},
	{GoName: "Slice8Kernel", Name: "slice8"},
	{GoName: "ChorbaKernel", Name: "chorba"},
	{GoName: "CLMUL128Kernel", Name: "clmul128"},
	{GoName: "CLMUL256Kernel", Name: "clmul256"},
	{GoName: "CLMUL512Kernel", Name: "clmul512"},
}

// IsValid returns true if k is a valid Kernel constant.
func (k Kernel) IsValid() bool {
	return k <= CLMUL512Kernel
}

// GoString returns the Go string representation of this Kernel constant.
func (k Kernel) GoString() string {
	return enumhelper.DereferenceEnumData("Kernel", kernelData, uint(k)).GoName
}

// String returns the string representation of this Kernel constant.
func (k Kernel) String() string {
	return enumhelper.DereferenceEnumData("Kernel", kernelData, uint(k)).Name
}

// MarshalJSON returns the JSON representation of this Kernel constant.
func (k Kernel) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("Kernel", kernelData, uint(k))
}

// Parse parses a string representation of a Kernel constant.
func (k *Kernel) Parse(str string) error {
	value, err := enumhelper.ParseEnum("Kernel", kernelData, str)
	*k = Kernel(value)
	return err
}

var _ fmt.GoStringer = Kernel(0)
var _ fmt.Stringer = Kernel(0)
