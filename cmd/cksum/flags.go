package main

import (
	"io"

	"github.com/chronos-tachyon/cksum"
	getopt "github.com/pborman/getopt/v2"
	progressbar "github.com/schollz/progressbar/v2"
)

// type AlgorithmFlag {{{

// AlgorithmFlag implements getopt.Value for cksum.Kernel.
type AlgorithmFlag struct {
	Value cksum.Kernel
}

// Set fulfills getopt.Value.
func (flag *AlgorithmFlag) Set(str string, opt getopt.Option) error {
	if str == "crc" {
		flag.Value = cksum.AutoKernel
		return nil
	}
	return flag.Value.Parse(str)
}

// String fulfills getopt.Value.
func (flag AlgorithmFlag) String() string {
	if flag.Value == cksum.AutoKernel {
		return "crc"
	}
	return flag.Value.String()
}

var _ getopt.Value = (*AlgorithmFlag)(nil)

// }}}

// type meteredReader {{{

// meteredReader advances a progress bar as bytes flow through it.
type meteredReader struct {
	r   io.Reader
	bar *progressbar.ProgressBar
}

// Read fulfills io.Reader.
func (mr *meteredReader) Read(p []byte) (int, error) {
	n, err := mr.r.Read(p)
	if n > 0 {
		_ = mr.bar.Add(n)
	}
	return n, err
}

var _ io.Reader = (*meteredReader)(nil)

// }}}
