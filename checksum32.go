package cksum

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Checksum32 is a lightweight wrapper around uint32 that is used for the
// final POSIX checksum.  It stringifies to the decimal format that cksum
// prints.
type Checksum32 uint32

// GoString returns the Go string representation of this Checksum32 value.
func (csum Checksum32) GoString() string {
	return fmt.Sprintf("Checksum32(%#08x)", uint32(csum))
}

// String returns the decimal string representation of this Checksum32
// value.
func (csum Checksum32) String() string {
	return strconv.FormatUint(uint64(csum), 10)
}

// Bytes returns the big-endian wire encoding of this Checksum32 value.
func (csum Checksum32) Bytes() [4]byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(csum))
	return tmp
}

// MarshalJSON returns the JSON representation of this Checksum32 value.
func (csum Checksum32) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%#08x", uint32(csum)))
}

// UnmarshalJSON parses the JSON representation of a Checksum32 value.
func (csum *Checksum32) UnmarshalJSON(raw []byte) error {
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return err
	}
	str = strings.TrimPrefix(str, "0x")
	u64, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return err
	}
	*csum = Checksum32(u64)
	return nil
}

var _ fmt.GoStringer = Checksum32(0)
var _ fmt.Stringer = Checksum32(0)
var _ json.Marshaler = Checksum32(0)
var _ json.Unmarshaler = (*Checksum32)(nil)
