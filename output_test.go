package cksum

import (
	"testing"
)

func TestFormatLine(t *testing.T) {
	if actual := FormatLine(0x48AA78A2, 3, ""); actual != "1219131554 3" {
		t.Errorf("FormatLine = %q", actual)
	}
	if actual := FormatLine(0x48AA78A2, 3, "abc.txt"); actual != "1219131554 3 abc.txt" {
		t.Errorf("FormatLine = %q", actual)
	}
}

func TestFormatTagged(t *testing.T) {
	if actual := FormatTagged(0xFFFFFFFF, 0, "empty.bin"); actual != "CRC32 (empty.bin) = 4294967295 0" {
		t.Errorf("FormatTagged = %q", actual)
	}
}

func TestChecksumBytes(t *testing.T) {
	digest := Checksum32(0x01020304).Bytes()
	if digest != [4]byte{1, 2, 3, 4} {
		t.Errorf("Bytes = %x", digest)
	}
}

func TestCapabilityString(t *testing.T) {
	if actual := Capability(0).String(); actual != "none" {
		t.Errorf("String = %q", actual)
	}
	if actual := (CapCLMUL128 | CapVCLMUL512).String(); actual != "clmul128+vclmul512" {
		t.Errorf("String = %q", actual)
	}
}

func TestBestKernelOrdering(t *testing.T) {
	type testRow struct {
		caps   Capability
		expect Kernel
	}

	var testData = [...]testRow{
		{CapVCLMUL512 | CapVCLMUL256 | CapCLMUL128, CLMUL512Kernel},
		{CapVCLMUL256 | CapCLMUL128, CLMUL256Kernel},
		{CapCLMUL128, CLMUL128Kernel},
		{CapPMULL, CLMUL128Kernel},
		{0, scalarKernel},
	}

	for _, row := range testData {
		if actual := bestKernel(row.caps); actual != row.expect {
			t.Errorf("bestKernel(%v) = %v, expected %v", row.caps, actual, row.expect)
		}
	}
}
