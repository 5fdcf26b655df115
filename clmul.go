package cksum

import (
	"encoding/binary"
)

// The fold kernels are written against three lane widths sharing one set
// of primitives: byteswap within each 16-byte sublane, XOR, and a carryless
// multiply of the low or high 64 bits of each sublane by a constant.  The
// primitives here are portable Go; they are the behavioral model that a
// hardware realization (PCLMULQDQ, VPCLMULQDQ, PMULL) must match.

// vec128 is one 16-byte sublane in polynomial order: hi holds bytes 0-7 of
// the input block as a big-endian value, lo holds bytes 8-15.
type vec128 struct {
	hi, lo uint64
}

// foldPair holds the fold constants for one distance d:
// k0 = x^d mod G, k1 = x^(d+64) mod G.
type foldPair struct {
	k0, k1 uint64
}

// clmul64 multiplies a and b in GF(2), without carries, producing the full
// 128-bit product.
func clmul64(a, b uint64) (hi, lo uint64) {
	for i := uint(0); b != 0; i, b = i+1, b>>1 {
		if b&1 != 0 {
			lo ^= a << i
			if i != 0 {
				hi ^= a >> (64 - i)
			}
		}
	}
	return hi, lo
}

func loadVec128(p []byte) vec128 {
	return vec128{
		hi: binary.BigEndian.Uint64(p[0:8]),
		lo: binary.BigEndian.Uint64(p[8:16]),
	}
}

func (v vec128) store(p []byte) {
	binary.BigEndian.PutUint64(p[0:8], v.hi)
	binary.BigEndian.PutUint64(p[8:16], v.lo)
}

func (v vec128) xor(o vec128) vec128 {
	return vec128{v.hi ^ o.hi, v.lo ^ o.lo}
}

// fold advances v by the distance encoded in k and absorbs the next block:
// clmul(v.lo, k0) XOR clmul(v.hi, k1) XOR t.
func (v vec128) fold(k foldPair, t vec128) vec128 {
	hi0, lo0 := clmul64(v.lo, k.k0)
	hi1, lo1 := clmul64(v.hi, k.k1)
	return vec128{hi0 ^ hi1 ^ t.hi, lo0 ^ lo1 ^ t.lo}
}

// vec256 is a 32-byte lane: two independent 16-byte sublanes.

type vec256 [2]vec128

func loadVec256(p []byte) vec256 {
	return vec256{loadVec128(p), loadVec128(p[16:])}
}

func (v vec256) store(p []byte) {
	v[0].store(p)
	v[1].store(p[16:])
}

func (v vec256) xor(o vec256) vec256 {
	return vec256{v[0].xor(o[0]), v[1].xor(o[1])}
}

func (v vec256) fold(k foldPair, t vec256) vec256 {
	return vec256{v[0].fold(k, t[0]), v[1].fold(k, t[1])}
}

// vec512 is a 64-byte lane: four independent 16-byte sublanes.

type vec512 [4]vec128

func loadVec512(p []byte) vec512 {
	return vec512{loadVec128(p), loadVec128(p[16:]), loadVec128(p[32:]), loadVec128(p[48:])}
}

func (v vec512) store(p []byte) {
	v[0].store(p)
	v[1].store(p[16:])
	v[2].store(p[32:])
	v[3].store(p[48:])
}

func (v vec512) xor(o vec512) vec512 {
	return vec512{v[0].xor(o[0]), v[1].xor(o[1]), v[2].xor(o[2]), v[3].xor(o[3])}
}

func (v vec512) fold(k foldPair, t vec512) vec512 {
	return vec512{v[0].fold(k, t[0]), v[1].fold(k, t[1]), v[2].fold(k, t[2]), v[3].fold(k, t[3])}
}
