package cksum

import (
	"fmt"
)

// LengthOverflowError is returned when the cumulative byte length of a
// stream no longer fits in a 64-bit counter.
type LengthOverflowError struct {
	Length uint64
}

// Error fulfills the error interface.
func (err LengthOverflowError) Error() string {
	return fmt.Sprintf("stream length overflows a 64-bit byte counter after %d bytes", err.Length)
}

var _ error = LengthOverflowError{}

// InvalidArgumentError is returned when a caller passes an argument that
// can never be valid, such as a nil byte source.
type InvalidArgumentError struct {
	Problem string
}

// Error fulfills the error interface.
func (err InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", err.Problem)
}

var _ error = InvalidArgumentError{}
