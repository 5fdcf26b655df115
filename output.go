package cksum

import (
	"fmt"
)

// FormatLine renders the POSIX output line: the decimal checksum, the byte
// length, and the file name when there is one.  The caller appends its own
// line delimiter.
func FormatLine(csum Checksum32, length uint64, name string) string {
	if name == "" {
		return fmt.Sprintf("%s %d", csum, length)
	}
	return fmt.Sprintf("%s %d %s", csum, length, name)
}

// FormatTagged renders a BSD-style tagged line.
func FormatTagged(csum Checksum32, length uint64, name string) string {
	return fmt.Sprintf("CRC32 (%s) = %s %d", name, csum, length)
}
