// Command lz77 compresses or decompresses a file using the lz77 codec.
//
// Usage:
//
//	lz77 -encode <in> <out>
//	lz77 -decode <in> <out>
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	os.Exit(run(os.Args[1:], os.Stdout, log))
}
