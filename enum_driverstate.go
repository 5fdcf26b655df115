package cksum

import (
	"github.com/chronos-tachyon/enumhelper"
)

type driverState byte

const (
	// idleDriverState: no bytes have been read from the source yet.
	idleDriverState driverState = iota

	// primedDriverState: the block buffer has been filled for the first
	// time and the kernel is about to run.
	primedDriverState

	// foldingDriverState: full blocks are flowing through the kernel.
	foldingDriverState

	// drainingDriverState: the final short block is being consumed.
	drainingDriverState

	// doneDriverState: EOF was reached and the length fold may run.
	doneDriverState

	// errorDriverState: the source failed or the length counter
	// overflowed; partial state is discarded.
	errorDriverState
)

var driverStateData = []enumhelper.EnumData{
	{GoName: "idleDriverState", Name: "idle"},
	{GoName: "primedDriverState", Name: "primed"},
	{GoName: "foldingDriverState", Name: "folding"},
	{GoName: "drainingDriverState", Name: "draining"},
	{GoName: "doneDriverState", Name: "done"},
	{GoName: "errorDriverState", Name: "error"},
}

func (s driverState) GoString() string {
	return enumhelper.DereferenceEnumData("driverState", driverStateData, uint(s)).GoName
}

func (s driverState) String() string {
	return enumhelper.DereferenceEnumData("driverState", driverStateData, uint(s)).Name
}

func (s driverState) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("driverState", driverStateData, uint(s))
}
