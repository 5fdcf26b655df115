package cksum

// Constants from the Intel whitepaper "Fast CRC Computation for Generic
// Polynomials Using PCLMULQDQ Instruction":
//   x^128 mod G = 0xE8A45605       x^(128+64) mod G = 0xC5B9CD4C
//   x^512 mod G = 0xE6228B11       x^(512+64) mod G = 0x8833794C
var (
	fold128Single = foldPair{0xE8A45605, 0xC5B9CD4C}
	fold128Four   = foldPair{0xE6228B11, 0x8833794C}
)

// fold128Update folds p through four 128-bit lanes, 64 bytes per step,
// reduces 2→1 lane at a time, and finishes the last 0-31 bytes through the
// table.  The block is scratch space: the reduction steps write partially
// folded lanes back into it.
func fold128Update(crc uint32, p []byte) uint32 {
	const lane = 16
	n := len(p)
	rem, idx := n, 0

	if rem >= 8*lane {
		var d [4]vec128
		for i := range d {
			d[i] = loadVec128(p[(idx+i)*lane:])
		}
		d[0].hi ^= uint64(crc) << 32
		crc = 0
		for rem >= 8*lane {
			idx += 4
			for i := range d {
				d[i] = d[i].fold(fold128Four, loadVec128(p[(idx+i)*lane:]))
			}
			rem -= 4 * lane
		}
		for i := range d {
			d[i].store(p[(idx+i)*lane:])
		}
	}

	if rem >= 2*lane {
		d := loadVec128(p[idx*lane:])
		d.hi ^= uint64(crc) << 32
		crc = 0
		for rem >= 2*lane {
			idx++
			d = d.fold(fold128Single, loadVec128(p[idx*lane:]))
			rem -= lane
		}
		d.store(p[idx*lane:])
	}

	return updateBytewise(crc, p[idx*lane:idx*lane+rem])
}
