package cksum

import (
	"sync"

	"github.com/chronos-tachyon/assert"
)

var bitBufferPool = sync.Pool{
	New: func() interface{} {
		return new([bitBufferQwords]uint64)
	},
}

// takeBitBuffer returns a chorba bit-buffer which may hold stale lanes
// from a previous stream; chorbaBigUpdate never reads a lane it has not
// written or cleared first.
func takeBitBuffer() *[bitBufferQwords]uint64 {
	return bitBufferPool.Get().(*[bitBufferQwords]uint64)
}

func giveBitBuffer(bb *[bitBufferQwords]uint64) {
	assert.NotNil(&bb)
	bitBufferPool.Put(bb)
}

func newBlockPool(size int) *sync.Pool {
	return &sync.Pool{
		New: func() interface{} {
			ptr := new([]byte)
			*ptr = make([]byte, size)
			return ptr
		},
	}
}

var blockPool64K = newBlockPool(1 << 16)
var blockPool1M = newBlockPool(1 << 20)
var blockPool2M = newBlockPool(2 << 20)

func blockPool(size int) *sync.Pool {
	switch size {
	case 1 << 16:
		return blockPool64K
	case 1 << 20:
		return blockPool1M
	case 2 << 20:
		return blockPool2M
	}
	assert.Raisef("no block pool of size %d", size)
	return nil
}

func takeBlock(size int) *[]byte {
	return blockPool(size).Get().(*[]byte)
}

func giveBlock(size int, ptr *[]byte) {
	assert.NotNil(&ptr)
	blockPool(size).Put(ptr)
}
