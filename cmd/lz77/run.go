package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/jssonx/lz77"
	"github.com/jssonx/lz77/internal/cliflag"
)

func run(args []string, stdout io.Writer, log *logrus.Logger) int {
	fs := pflag.NewFlagSet("lz77", pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // we print our own usage on failure

	encode := fs.Bool("encode", false, "compress <in> into <out>")
	decode := fs.Bool("decode", false, "decompress <in> into <out>")
	maxOutput := fs.Int("max-output", 0, "bound on decompressed size, decode only; 0 = unbounded")

	if err := fs.Parse(cliflag.NormalizeSingleDash(args)); err != nil {
		printUsage()
		return 1
	}

	positional := fs.Args()

	switch {
	case *encode && !*decode && len(positional) == 2:
		return doEncode(log, stdout, positional[0], positional[1])
	case *decode && !*encode && len(positional) == 2:
		return doDecode(log, stdout, positional[0], positional[1], *maxOutput)
	default:
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage for compression:   lz77 -encode <input file> <output file>")
	fmt.Fprintln(os.Stderr, "Usage for decompression: lz77 -decode <input file> <output file>")
}

func doEncode(log *logrus.Logger, stdout io.Writer, inPath, outPath string) int {
	start := time.Now()

	raw, err := os.ReadFile(inPath)
	if err != nil {
		log.WithField("stage", "input").Error(errors.Wrap(err, "read input file"))
		return 1
	}

	compressed := lz77.Encode(raw)

	if err := os.WriteFile(outPath, compressed, 0o644); err != nil {
		log.WithField("stage", "output").Error(errors.Wrap(err, "write output file"))
		return 1
	}

	elapsed := time.Since(start).Seconds()

	ratio := 0.0
	if len(compressed) > 0 {
		ratio = float64(len(raw)) / float64(len(compressed))
	}

	fmt.Fprintf(stdout, "raw_size=%d\n", len(raw))
	fmt.Fprintf(stdout, "compressed_size=%d\n", len(compressed))
	fmt.Fprintf(stdout, "ratio=%.2f\n", ratio)
	fmt.Fprintf(stdout, "mb_per_sec=%.2f\n", throughputMBps(len(raw), elapsed))

	return 0
}

func doDecode(log *logrus.Logger, stdout io.Writer, inPath, outPath string, maxOutput int) int {
	start := time.Now()

	compressed, err := os.ReadFile(inPath)
	if err != nil {
		log.WithField("stage", "input").Error(errors.Wrap(err, "read input file"))
		return 1
	}

	var opts *lz77.DecodeOptions
	if maxOutput > 0 {
		opts = &lz77.DecodeOptions{MaxOutputSize: maxOutput}
	}

	raw, err := lz77.Decode(compressed, opts)
	if err != nil {
		log.WithField("stage", "decode").Error(errors.Wrap(err, "decode stream"))
		return 1
	}

	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		log.WithField("stage", "output").Error(errors.Wrap(err, "write output file"))
		return 1
	}

	elapsed := time.Since(start).Seconds()

	fmt.Fprintf(stdout, "compressed_size=%d\n", len(compressed))
	fmt.Fprintf(stdout, "raw_size=%d\n", len(raw))
	fmt.Fprintf(stdout, "mb_per_sec=%.2f\n", throughputMBps(len(raw), elapsed))

	return 0
}

func throughputMBps(bytesDone int, elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return float64(bytesDone) / (1024 * 1024) / elapsedSeconds
}
