package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/chronos-tachyon/cksum"
	"github.com/hashicorp/go-multierror"
	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	progressbar "github.com/schollz/progressbar/v2"
)

var (
	flagVersion   = false
	flagDebug     = false
	flagTrace     = false
	flagLogStderr = false

	flagRaw      = false
	flagTagged   = false
	flagZero     = false
	flagProgress = false

	flagAlgorithm = AlgorithmFlag{cksum.AutoKernel}
)

func init() {
	getopt.SetParameters("[<file>...]")

	getopt.FlagLong(&flagVersion, "version", 'V', "print version and exit")

	getopt.FlagLong(&flagDebug, "verbose", 'v', "enable debug logging")
	getopt.FlagLong(&flagTrace, "debug", 'D', "enable debug and trace logging")
	getopt.FlagLong(&flagLogStderr, "log-stderr", 'L', "log JSON to stderr")

	getopt.FlagLong(&flagRaw, "raw", 'r', "emit the digest as four raw bytes, most significant first")
	getopt.FlagLong(&flagTagged, "tag", 't', "emit a BSD-style tagged line")
	getopt.FlagLong(&flagZero, "zero", 'z', "end each output line with NUL, not newline")
	getopt.FlagLong(&flagProgress, "progress", 'P', "display a progress bar for regular files")
	getopt.FlagLong(&flagAlgorithm, "algorithm", 'a', "checksum kernel; one of crc, slice8, chorba, clmul128, clmul256, or clmul512")
}

func main() {
	getopt.Parse()

	if flagVersion {
		fmt.Println(strings.TrimSpace(version))
		os.Exit(0)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Second
	zerolog.DurationFieldInteger = false
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if flagTrace {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	switch {
	case flagLogStderr:
		// do nothing

	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	args := getopt.Args()
	if flagRaw && len(args) > 1 {
		log.Logger.Fatal().
			Msg("the --raw option is only supported with a single input")
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	log.Logger.Debug().
		Stringer("capabilities", cksum.Probe()).
		Msg("hardware support")

	delim := byte('\n')
	if flagZero {
		delim = 0
	}

	var errs *multierror.Error
	for _, path := range args {
		err := sumFile(path, delim)
		if err != nil {
			log.Logger.Error().
				Str("filename", path).
				Err(err).
				Msg("cksum failed")
			errs = multierror.Append(errs, err)
		}
	}
	if errs.ErrorOrNil() != nil {
		os.Exit(1)
	}
}

func sumFile(path string, delim byte) error {
	var src io.Reader
	name := path
	if path == "-" {
		src = os.Stdin
		name = ""
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		src = f
		if flagProgress {
			if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
				bar := progressbar.NewOptions64(fi.Size(),
					progressbar.OptionSetBytes64(fi.Size()),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetPredictTime(true))
				bar.RenderBlank()
				src = &meteredReader{r: src, bar: bar}
				defer fmt.Fprintf(os.Stderr, "\n")
			}
		}
	}

	csum, length, err := cksum.SumStream(src,
		cksum.WithKernel(flagAlgorithm.Value),
		cksum.WithTracers(cksum.Log(log.Logger)))
	if err != nil {
		return err
	}

	switch {
	case flagRaw:
		digest := csum.Bytes()
		_, err = os.Stdout.Write(digest[:])
	case flagTagged:
		_, err = fmt.Fprintf(os.Stdout, "%s%c", cksum.FormatTagged(csum, length, name), delim)
	default:
		_, err = fmt.Fprintf(os.Stdout, "%s%c", cksum.FormatLine(csum, length, name), delim)
	}
	return err
}
