//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/markkurossi/sha256"
	"github.com/markkurossi/text/superscript"
)

// maxBlockSamples limits the per-block rows in the verbose report so
// that large inputs do not drown the table.
const maxBlockSamples = 16

var verbose = false

func main() {
	hexInput := flag.Bool("x", false, "treat arguments as hex-encoded data")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	verbose = *fVerbose

	if *hexInput {
		arg := strings.ReplaceAll(strings.Join(flag.Args(), ""), " ", "")
		data, err := hex.DecodeString(arg)
		if err != nil {
			fmt.Printf("Arguments do not form a valid hex string: %s\n", err)
			os.Exit(1)
		}
		sum("-", data, nil)
		return
	}

	if len(flag.Args()) == 0 {
		timing := NewTiming()
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Printf("Failed to read standard input: %s\n", err)
			os.Exit(1)
		}
		timing.Sample("Read", []string{FileSize(len(data)).String()})
		sum("-", data, timing)
		return
	}

	for _, arg := range flag.Args() {
		timing := NewTiming()
		data, err := os.ReadFile(arg)
		if err != nil {
			fmt.Printf("Failed to read input file '%s': %s\n", arg, err)
			os.Exit(1)
		}
		timing.Sample("Read", []string{FileSize(len(data)).String()})
		sum(arg, data, timing)
	}
}

// sum hashes data and prints the digest line. In verbose mode it runs
// the pipeline stages one by one and renders the timing report.
func sum(name string, data []byte, timing *Timing) {
	if !verbose {
		fmt.Printf("%s  %s\n", sha256.Sum(data), name)
		return
	}
	if timing == nil {
		timing = NewTiming()
	}

	padded := sha256.Pad(data)
	blocks := sha256.Blocks(padded)
	timing.Sample("Pad", []string{FileSize(len(padded)).String()})

	blockEnds := make([]time.Time, 0, len(blocks))
	state := sha256.InitialState()
	for _, block := range blocks {
		state = sha256.Compress(state, sha256.Schedule(block))
		blockEnds = append(blockEnds, time.Now())
	}
	sample := timing.Sample("Compress", []string{
		fmt.Sprintf("%d blocks", len(blocks)),
	})
	if len(blocks) <= maxBlockSamples {
		for idx, end := range blockEnds {
			sample.SubSample("block"+superscript.Itoa(idx), end)
		}
	}

	fmt.Printf("%s  %s\n", sha256.StateDigest(state), name)
	timing.Print(FileSize(len(data)))
}
