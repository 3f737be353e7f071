// Command lz77gen writes synthetic corpus files for exercising the lz77
// codec's round-trip and compression-ratio properties: a file of N
// pseudo-random bytes, or N copies of a single byte.
//
// Usage:
//
//	lz77gen -kind random -size 1000000 -out random.bin
//	lz77gen -kind repeat -size 1000000 -byte 65 -out repeat_As.bin
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jssonx/lz77/internal/cliflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr *os.File) int {
	fs := pflag.NewFlagSet("lz77gen", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	kind := fs.String("kind", "random", `corpus kind: "random" or "repeat"`)
	size := fs.Int("size", 1_000_000, "file size in bytes")
	repeatByte := fs.Uint8("byte", 'A', `byte value to repeat, kind="repeat" only`)
	out := fs.String("out", "", "output file path (required)")

	if err := fs.Parse(cliflag.NormalizeSingleDash(args)); err != nil {
		return 1
	}

	if *out == "" || *size < 0 {
		fs.Usage()
		return 1
	}

	var data []byte
	switch *kind {
	case "random":
		data = randomBytes(*size)
	case "repeat":
		data = repeatedBytes(*size, *repeatByte)
	default:
		fmt.Fprintf(stderr, "lz77gen: unknown -kind %q (want \"random\" or \"repeat\")\n", *kind)
		return 1
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(stderr, errors.Wrap(err, "write corpus file"))
		return 1
	}

	return 0
}

// randomBytes returns n pseudo-random bytes. math/rand/v2 is used rather
// than crypto/rand: this output is test fixture data, not a security
// boundary, and no ecosystem RNG library appears anywhere in this
// dependency family.
func randomBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rand.IntN(256))
	}
	return data
}

// repeatedBytes returns n copies of b.
func repeatedBytes(n int, b uint8) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = b
	}
	return data
}
