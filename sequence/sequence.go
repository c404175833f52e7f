// Package sequence generates Fibonacci numbers: bounded prefixes of the
// sequence in uint64 arithmetic, and exact or modular single terms in
// big.Int arithmetic.
package sequence

import "github.com/agbru/calckit"

// Fibonacci returns the first n terms of the Fibonacci sequence:
// term 0 = 0, term 1 = 1, and every later term is the sum of the two
// preceding ones.
//
// The generator advances a single running pair, so the call costs O(n) time
// and O(1) auxiliary state beyond the result slice. n == 0 yields an empty
// slice and n == 1 yields [0], neither an error; a negative n fails with
// calckit.ErrInvalidArgument before any allocation.
//
// Terms are uint64 values. Indexes above MaxUint64Term wrap modulo 2^64
// exactly as the additive recurrence does, so the recurrence holds for
// every window of the returned slice; use Term for exact values past that
// point.
func Fibonacci(n int) ([]uint64, error) {
	if n < 0 {
		return nil, calckit.InvalidArgumentf("sequence.Fibonacci", "n must be non-negative, got %d", n)
	}
	terms := make([]uint64, n)
	a, b := uint64(0), uint64(1)
	for k := range terms {
		terms[k] = a
		a, b = b, a+b
	}
	return terms, nil
}
