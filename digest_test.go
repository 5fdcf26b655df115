package cksum

import (
	"testing"
)

func TestDigestChunkedWrites(t *testing.T) {
	data := testPattern(300000, 11)
	expect, _, err := Sum(data)
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}

	for _, chunk := range [...]int{1, 3, 8, 127, 1000, 65536} {
		d := New()
		for i := 0; i < len(data); i += chunk {
			j := i + chunk
			if j > len(data) {
				j = len(data)
			}
			if _, err := d.Write(data[i:j]); err != nil {
				t.Fatalf("chunk %d: Write failed: %v", chunk, err)
			}
		}
		if actual := Checksum32(d.Sum32()); actual != expect {
			t.Errorf("chunk %d: Sum32 = %v, expected %v", chunk, actual.GoString(), expect.GoString())
		}
	}
}

func TestDigestSnapshot(t *testing.T) {
	data := testPattern(10000, 13)
	d := New(WithKernel(ChorbaKernel))
	if _, err := d.Write(data[:4000]); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Sum32 must be a snapshot: calling it twice, or writing after it,
	// must not disturb the running state.
	first := d.Sum32()
	second := d.Sum32()
	if first != second {
		t.Errorf("Sum32 moved: %#08x then %#08x", first, second)
	}
	partial, _, err := Sum(data[:4000], WithKernel(ChorbaKernel))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if Checksum32(first) != partial {
		t.Errorf("snapshot = %#08x, expected %v", first, partial.GoString())
	}

	if _, err := d.Write(data[4000:]); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	full, _, err := Sum(data, WithKernel(ChorbaKernel))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if Checksum32(d.Sum32()) != full {
		t.Errorf("final = %#08x, expected %v", d.Sum32(), full.GoString())
	}

	d.Reset()
	if d.Sum32() != 0xFFFFFFFF {
		t.Errorf("after Reset: %#08x", d.Sum32())
	}
}

func TestDigestSumAppends(t *testing.T) {
	d := New(WithKernel(Slice8Kernel))
	if _, err := d.Write([]byte("abc")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := d.Sum([]byte{0xAA})
	if len(out) != 5 || out[0] != 0xAA {
		t.Fatalf("Sum = %x", out)
	}
	if out[1] != 0x48 || out[2] != 0xAA || out[3] != 0x78 || out[4] != 0xA2 {
		t.Errorf("Sum = %x, expected aa48aa78a2", out)
	}
}
