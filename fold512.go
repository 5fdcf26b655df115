package cksum

// Fold constants for 64-byte lanes:
//   x^512 mod G = 0xE6228B11        x^(512+64) mod G = 0x8833794C
//   x^2048 mod G = 0x88FE2237       x^(2048+64) mod G = 0xCBCF3BCB
//   x^6144 mod G = 0x413686A0       x^(6144+64) mod G = 0x9DEF026A
var (
	fold512Single = foldPair{0xE6228B11, 0x8833794C}
	fold512Four   = foldPair{0x88FE2237, 0xCBCF3BCB}
	fold512Twelve = foldPair{0x413686A0, 0x9DEF026A}
)

const fold512ChorbaMin = 2048 + 256 + 64*8

// fold512Update is the 64-byte-lane fold engine; same shape as the 32-byte
// engine with the reach of every step doubled.
func fold512Update(crc uint32, p []byte) uint32 {
	const lane = 64
	n := len(p)
	rem, idx := n, 0

	if rem >= 8*lane {
		var d [4]vec512
		for i := range d {
			d[i] = loadVec512(p[(idx+i)*lane:])
		}
		d[0][0].hi ^= uint64(crc) << 32
		crc = 0

		for rem >= fold512ChorbaMin {
			var ch [8]vec512
			idx += 4
			for j := range ch {
				ch[j] = loadVec512(p[(idx+j)*lane:])
			}
			ch[6] = ch[6].xor(ch[0])
			ch[7] = ch[7].xor(ch[1])
			rem -= 8 * lane
			idx += 8

			for s := range chorbaFoldSchedule {
				k := fold512Four
				if s == 0 {
					k = fold512Twelve
				} else {
					idx += 4
				}
				for i := range d {
					t := loadVec512(p[(idx+i)*lane:])
					for j, mask := 0, chorbaFoldSchedule[s][i]; mask != 0; j, mask = j+1, mask>>1 {
						if mask&1 != 0 {
							t = t.xor(ch[j])
						}
					}
					d[i] = d[i].fold(k, t)
				}
				rem -= 4 * lane
			}
		}

		for rem >= 8*lane {
			idx += 4
			for i := range d {
				d[i] = d[i].fold(fold512Four, loadVec512(p[(idx+i)*lane:]))
			}
			rem -= 4 * lane
		}
		for i := range d {
			d[i].store(p[(idx+i)*lane:])
		}
	}

	if rem >= 2*lane {
		d := loadVec512(p[idx*lane:])
		d[0].hi ^= uint64(crc) << 32
		crc = 0
		for rem >= 2*lane {
			idx++
			d = d.fold(fold512Single, loadVec512(p[idx*lane:]))
			rem -= lane
		}
		d.store(p[idx*lane:])
	}

	return updateBytewise(crc, p[idx*lane:idx*lane+rem])
}
