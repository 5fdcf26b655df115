package cksum

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReferenceVectors(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		want   Checksum32
		length uint64
	}

	var testData = [...]testRow{
		{"empty", "", 0xFFFFFFFF, 0},
		{"zero-byte", "\x00", 0xFB3EE248, 1},
		{"a", "a", 0x48C279FE, 1},
		{"abc", "abc", 0x48AA78A2, 3},
		{"digits", "123456789", 0x377A6011, 9},
		{"pangram", "The quick brown fox jumps over the lazy dog", 0x7BAB9CE8, 43},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			for _, kernel := range testKernels {
				csum, length, err := SumStream(strings.NewReader(row.input), WithKernel(kernel))
				if err != nil {
					t.Errorf("%v: SumStream failed: %v", kernel, err)
					continue
				}
				if csum != row.want || length != row.length {
					t.Errorf("%v: got (%v, %d), expected (%v, %d)", kernel, csum.GoString(), length, row.want.GoString(), row.length)
				}
			}
		})
	}
}

func TestMiBOfZeros(t *testing.T) {
	const expect = Checksum32(0xB3EE248F)
	data := make([]byte, 1048576)
	for _, kernel := range testKernels {
		csum, length, err := Sum(data, WithKernel(kernel))
		if err != nil {
			t.Errorf("%v: Sum failed: %v", kernel, err)
			continue
		}
		if csum != expect || length != 1048576 {
			t.Errorf("%v: got (%v, %d), expected (%v, 1048576)", kernel, csum, length, expect)
		}
	}
}

// Folding the length octets must be exactly equivalent to extending the
// data with those octets and complementing.
func TestLengthFoldIsExtension(t *testing.T) {
	for _, size := range [...]int{1, 255, 256, 300, 65536, 70000} {
		data := testPattern(size, uint64(size))
		crc := updateBytewise(0, data)

		var lengthBytes []byte
		for length := uint64(size); length != 0; length >>= 8 {
			lengthBytes = append(lengthBytes, byte(length))
		}
		expect := Checksum32(^updateBytewise(crc, lengthBytes))

		actual := finalize(crc, uint64(size))
		if actual != expect {
			t.Errorf("size %d: finalize = %v, extension says %v", size, actual.GoString(), expect.GoString())
		}
	}
}

// type failingReader {{{

type failingReader struct {
	data []byte
	err  error
}

func (fr *failingReader) Read(p []byte) (int, error) {
	if len(fr.data) == 0 {
		return 0, fr.err
	}
	n := copy(p, fr.data)
	fr.data = fr.data[n:]
	return n, nil
}

var _ io.Reader = (*failingReader)(nil)

// }}}

func TestSourceErrorPropagates(t *testing.T) {
	errBroken := errors.New("broken pipe")
	for _, prefix := range [...]int{0, 100, 65536} {
		src := &failingReader{data: testPattern(prefix, 9), err: errBroken}
		_, _, err := SumStream(src)
		if err != errBroken {
			t.Errorf("prefix %d: err = %v, expected %v", prefix, err, errBroken)
		}
	}
}

func TestNilSource(t *testing.T) {
	_, _, err := SumStream(nil)
	var invalid InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Errorf("err = %v, expected InvalidArgumentError", err)
	}
}

func TestEOFOnlySource(t *testing.T) {
	csum, length, err := SumStream(eofReader{})
	if err != nil {
		t.Fatalf("SumStream failed: %v", err)
	}
	if csum != 0xFFFFFFFF || length != 0 {
		t.Errorf("got (%v, %d), expected (4294967295, 0)", csum, length)
	}
}

func TestLengthOverflow(t *testing.T) {
	d := driver{kernel: Slice8Kernel}
	d.length = ^uint64(0) - 3
	_, _, err := d.run(bytes.NewReader(make([]byte, 16)))
	var overflow LengthOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("err = %v, expected LengthOverflowError", err)
	}
	if overflow.Length != ^uint64(0)-3 {
		t.Errorf("overflow.Length = %d", overflow.Length)
	}
	if d.state != errorDriverState {
		t.Errorf("state = %v, expected %v", d.state, errorDriverState)
	}
}

func TestTracerEvents(t *testing.T) {
	var types []EventType
	tracer := TracerFunc(func(event Event) {
		types = append(types, event.Type)
	})
	csum, _, err := SumStream(strings.NewReader("abc"), WithKernel(Slice8Kernel), WithTracers(tracer))
	if err != nil {
		t.Fatalf("SumStream failed: %v", err)
	}
	if csum != 0x48AA78A2 {
		t.Errorf("checksum = %v", csum.GoString())
	}
	expect := []EventType{KernelSelectEvent, BufferPrimeEvent, BlockFoldEvent, StreamSumEvent}
	if len(types) != len(expect) {
		t.Fatalf("saw %d events, expected %d: %v", len(types), len(expect), types)
	}
	for i, eventType := range expect {
		if types[i] != eventType {
			t.Errorf("event %d: %v, expected %v", i, types[i], eventType)
		}
	}
}
