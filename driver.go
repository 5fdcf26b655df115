package cksum

import (
	"io"
)

// driver is the per-stream state machine: it pulls blocks from the byte
// source, feeds them to one kernel, tracks the total length, and performs
// the POSIX post-processing.
type driver struct {
	kernel  Kernel
	tracers []Tracer
	state   driverState
	crc     uint32
	length  uint64
}

func (d *driver) emit(event Event) {
	for _, tr := range d.tracers {
		tr.OnEvent(event)
	}
}

func (d *driver) fail(err error) (Checksum32, uint64, error) {
	d.state = errorDriverState
	d.emit(Event{Type: StreamErrorEvent, Kernel: d.kernel, LengthTotal: d.length, Err: err})
	return 0, 0, err
}

func (d *driver) run(src io.Reader) (Checksum32, uint64, error) {
	blockSize := d.kernel.blockSize()
	ptr := takeBlock(blockSize)
	defer giveBlock(blockSize, ptr)
	buf := *ptr

	d.state = idleDriverState
	d.emit(Event{Type: KernelSelectEvent, Kernel: d.kernel})

	for {
		n, err := io.ReadFull(src, buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return d.fail(err)
		}
		if n > 0 {
			length := d.length + uint64(n)
			if length < d.length {
				return d.fail(LengthOverflowError{Length: d.length})
			}
			d.length = length
			if d.state == idleDriverState {
				d.state = primedDriverState
				d.emit(Event{Type: BufferPrimeEvent, Kernel: d.kernel, BlockBytes: uint64(n)})
			}
			if n < len(buf) {
				d.state = drainingDriverState
			} else {
				d.state = foldingDriverState
			}
			d.crc = d.kernel.update(d.crc, buf[:n])
			d.emit(Event{Type: BlockFoldEvent, Kernel: d.kernel, BlockBytes: uint64(n), LengthTotal: d.length})
		}
		if err != nil {
			break
		}
	}

	d.state = doneDriverState
	csum := finalize(d.crc, d.length)
	d.emit(Event{Type: StreamSumEvent, Kernel: d.kernel, LengthTotal: d.length, Checksum: csum})
	return csum, d.length, nil
}

// finalize folds the byte length into the CRC, least significant octet
// first with trailing zero octets omitted per POSIX, then complements.
func finalize(crc uint32, length uint64) Checksum32 {
	for ; length != 0; length >>= 8 {
		crc = updateByte(crc, byte(length))
	}
	return Checksum32(^crc)
}
