package cksum

// Fold constants for 32-byte lanes:
//   x^256 mod G = 0x75BE46B7        x^(256+64) mod G = 0x569700E5
//   x^1024 mod G = 0x567FDDEB       x^(1024+64) mod G = 0x10BD4D7C
//   x^3072 mod G = 0x3CD4B4ED       x^(3072+64) mod G = 0x1D97B060
var (
	fold256Single = foldPair{0x75BE46B7, 0x569700E5}
	fold256Four   = foldPair{0x567FDDEB, 0x10BD4D7C}
	fold256Twelve = foldPair{0x3CD4B4ED, 0x1D97B060}
)

// Minimum bytes remaining for one pass of the chorba-augmented loop: eight
// chorba lanes plus eight fold steps of four lanes, plus lookahead.
const fold256ChorbaMin = 1024 + 128 + 32*8

// fold256Update is the 32-byte-lane fold engine.  The main loop keeps four
// lanes in flight and skips eight further lanes per iteration, propagating
// the skipped lanes by chorba XOR injection instead of multiplication.
func fold256Update(crc uint32, p []byte) uint32 {
	const lane = 32
	n := len(p)
	rem, idx := n, 0

	if rem >= 4*lane {
		var d [4]vec256
		for i := range d {
			d[i] = loadVec256(p[(idx+i)*lane:])
		}
		d[0][0].hi ^= uint64(crc) << 32
		crc = 0

		for rem >= fold256ChorbaMin {
			var ch [8]vec256
			idx += 4
			for j := range ch {
				ch[j] = loadVec256(p[(idx+j)*lane:])
			}
			ch[6] = ch[6].xor(ch[0])
			ch[7] = ch[7].xor(ch[1])
			rem -= 8 * lane
			idx += 8

			for s := range chorbaFoldSchedule {
				k := fold256Four
				if s == 0 {
					k = fold256Twelve
				} else {
					idx += 4
				}
				for i := range d {
					t := loadVec256(p[(idx+i)*lane:])
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
				d[i] = d[i].fold(fold256Four, loadVec256(p[(idx+i)*lane:]))
			}
			rem -= 4 * lane
		}
		for i := range d {
			d[i].store(p[(idx+i)*lane:])
		}
	}

	if rem >= 2*lane {
		d := loadVec256(p[idx*lane:])
		d[0].hi ^= uint64(crc) << 32
		crc = 0
		for rem >= 2*lane {
			idx++
			d = d.fold(fold256Single, loadVec256(p[idx*lane:]))
			rem -= lane
		}
		d.store(p[idx*lane:])
	}

	return updateBytewise(crc, p[idx*lane:idx*lane+rem])
}
