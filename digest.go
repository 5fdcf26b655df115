package cksum

import (
	"encoding/binary"
	"hash"
)

// Size of the digest in bytes.
const Size = 4

// Digest is a streaming POSIX cksum state.  It buffers written bytes into
// kernel-sized blocks; Sum32 finalizes a snapshot (length fold plus
// complement) without disturbing the running state, so callers may keep
// writing afterward.
type Digest struct {
	kernel Kernel
	buf    []byte
	n      int
	crc    uint32
	length uint64
}

// New returns a new streaming digest.
func New(opts ...Option) *Digest {
	var o options
	o.reset()
	o.apply(opts)
	kernel := o.kernel
	if kernel == AutoKernel {
		kernel = pickKernel()
	}
	return &Digest{
		kernel: kernel,
		buf:    make([]byte, kernel.blockSize()),
	}
}

// Size fulfills hash.Hash.
func (d *Digest) Size() int { return Size }

// BlockSize fulfills hash.Hash.
func (d *Digest) BlockSize() int { return len(d.buf) }

// Reset fulfills hash.Hash.
func (d *Digest) Reset() {
	d.n = 0
	d.crc = 0
	d.length = 0
}

// Write fulfills hash.Hash.  It fails with LengthOverflowError once the
// cumulative length no longer fits in 64 bits.
func (d *Digest) Write(p []byte) (int, error) {
	length := d.length + uint64(len(p))
	if length < d.length {
		return 0, LengthOverflowError{Length: d.length}
	}
	d.length = length
	total := len(p)
	for len(p) > 0 {
		n := copy(d.buf[d.n:], p)
		d.n += n
		p = p[n:]
		if d.n == len(d.buf) {
			d.crc = d.kernel.update(d.crc, d.buf)
			d.n = 0
		}
	}
	return total, nil
}

// Sum32 fulfills hash.Hash32.
func (d *Digest) Sum32() uint32 {
	crc := d.crc
	if d.n > 0 {
		// The kernels scribble on their block, so finish the pending
		// bytes through the table instead.
		crc = updateBytewise(crc, d.buf[:d.n])
	}
	return uint32(finalize(crc, d.length))
}

// Sum fulfills hash.Hash.
func (d *Digest) Sum(p []byte) []byte {
	var tmp [Size]byte
	binary.BigEndian.PutUint32(tmp[:], d.Sum32())
	return append(p, tmp[:]...)
}

var _ hash.Hash32 = (*Digest)(nil)
