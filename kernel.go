package cksum

import (
	"github.com/chronos-tachyon/assert"
)

// update folds one block into the running CRC.  For all kernels and all
// block boundaries, the result equals the byte-at-a-time table update over
// the same bytes.  The fold kernels use p as scratch space; callers must
// not rely on the block's contents afterward.
func (k Kernel) update(crc uint32, p []byte) uint32 {
	switch k {
	case Slice8Kernel:
		return slice8Update(crc, p)
	case ChorbaKernel:
		return chorbaUpdate(crc, p)
	case CLMUL128Kernel:
		return fold128Update(crc, p)
	case CLMUL256Kernel:
		return fold256Update(crc, p)
	case CLMUL512Kernel:
		return fold512Update(crc, p)
	}
	assert.Raisef("Kernel %#v not implemented", k)
	return 0
}

// blockSize is the read granularity each kernel was tuned for: the scalar
// engines read 1 MiB at a time, the 128-bit fold engine 64 KiB, and the
// wide fold engines 2 MiB.  Each block is one flat buffer; there is no
// double buffering.
func (k Kernel) blockSize() int {
	switch k {
	case CLMUL128Kernel:
		return 1 << 16
	case CLMUL256Kernel, CLMUL512Kernel:
		return 2 << 20
	default:
		return 1 << 20
	}
}
