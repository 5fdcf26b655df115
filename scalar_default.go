// +build !cksum_chorba

package cksum

// scalarKernel is the fallback on hardware with no carryless multiply.
// Build with -tags cksum_chorba to use the chorba engine instead.
const scalarKernel = Slice8Kernel
