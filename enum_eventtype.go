package cksum

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// EventType indicates the type of an Event.
type EventType byte

const (
	// KernelSelectEvent indicates that a kernel was chosen for a stream.
	KernelSelectEvent EventType = iota

	// BufferPrimeEvent indicates that the stream's block buffer was
	// filled for the first time.
	BufferPrimeEvent

	// BlockFoldEvent indicates that one block was folded into the
	// running CRC.
	BlockFoldEvent

	// StreamSumEvent indicates that EOF was reached and the final
	// checksum was produced.
	StreamSumEvent

	// StreamErrorEvent indicates that the stream failed and its partial
	// state was discarded.
	StreamErrorEvent
)

var eventTypeData = []enumhelper.EnumData{
	{GoName: "KernelSelectEvent", Name: "kernel-select"},
	{GoName: "BufferPrimeEvent", Name: "buffer-prime"},
	{GoName: "BlockFoldEvent", Name: "block-fold"},
	{GoName: "StreamSumEvent", Name: "stream-sum"},
	{GoName: "StreamErrorEvent", Name: "stream-error"},
}

// GoString returns the Go string representation of this EventType constant.
func (e EventType) GoString() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).GoName
}

// String returns the string representation of this EventType constant.
func (e EventType) String() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).Name
}

// MarshalJSON returns the JSON representation of this EventType constant.
func (e EventType) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("EventType", eventTypeData, uint(e))
}

var _ fmt.GoStringer = EventType(0)
var _ fmt.Stringer = EventType(0)
