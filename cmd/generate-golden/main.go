// Command generate-golden regenerates sequence/testdata/fib_golden.txt,
// the reference values the sequence package checks its fast-doubling
// implementation against. The oracle is deliberately naive: an iterative
// big.Int addition loop sharing no code with the sequence package.
//
// Usage:
//
//	go run ./cmd/generate-golden [-out path]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
)

// goldenIndices lists the term indices written to the golden file: a dense
// prefix, the uint64 boundary and a few big-number points.
var goldenIndices = buildIndices()

func buildIndices() []uint64 {
	indices := make([]uint64, 0, 29)
	for n := uint64(0); n <= 20; n++ {
		indices = append(indices, n)
	}
	return append(indices, 50, 92, 93, 94, 100, 200, 500, 1000)
}

// fibBig computes F(n) by iterated addition.
func fibBig(n uint64) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

// writeGolden emits one "index value" line per golden index.
func writeGolden(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, n := range goldenIndices {
		fmt.Fprintf(bw, "%d %s\n", n, fibBig(n).String())
	}
	return bw.Flush()
}

func main() {
	out := flag.String("out", "sequence/testdata/fib_golden.txt", "output path for the golden file")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}

	if err := writeGolden(f); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d terms to %s\n", len(goldenIndices), *out)
}
