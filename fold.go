package cksum

// chorbaFoldSchedule drives the chorba-augmented inner loop of the wide
// fold kernels.  Each iteration loads eight chorba lanes and runs eight
// fold steps of four lanes each; entry [s][i] is a bitmask over the eight
// chorba lanes whose deferred contributions are XORed into fold target i
// of step s.  The pattern is machine generated; changing any entry breaks
// equivalence with the scalar kernel, which kernel_test.go checks at every
// transition boundary.
var chorbaFoldSchedule = [8][4]uint8{
	{0x04, 0x09, 0x13, 0x26},
	{0x4C, 0x98, 0x30, 0x60},
	{0xC1, 0x82, 0x04, 0x08},
	{0x11, 0x23, 0x47, 0x8E},
	{0x1D, 0x3B, 0x76, 0xED},
	{0xDB, 0xB6, 0x6D, 0xDB},
	{0xB7, 0x6E, 0xDC, 0xB8},
	{0x70, 0xE0, 0xC0, 0x80},
}
