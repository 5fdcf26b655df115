package cksum

import (
	"encoding/binary"
)

// slice8Update consumes p eight bytes per iteration using the precomputed
// tables, then finishes the last 0-7 bytes one at a time.  This is the
// reference kernel: every other kernel must agree with it bit for bit.
func slice8Update(crc uint32, p []byte) uint32 {
	for len(p) >= 8 {
		crc ^= binary.BigEndian.Uint32(p[0:4])
		second := binary.BigEndian.Uint32(p[4:8])
		crc = crctab[7][byte(crc>>24)] ^
			crctab[6][byte(crc>>16)] ^
			crctab[5][byte(crc>>8)] ^
			crctab[4][byte(crc)] ^
			crctab[3][byte(second>>24)] ^
			crctab[2][byte(second>>16)] ^
			crctab[1][byte(second>>8)] ^
			crctab[0][byte(second)]
		p = p[8:]
	}
	return updateBytewise(crc, p)
}
