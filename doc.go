// Package calckit is a small computational utility library. The actual
// operations live in the subpackages:
//
//   - calc: a stateful arithmetic accumulator with result memory
//   - sequence: bounded Fibonacci generation and exact term computation
//   - aggregate: fused sum/min/max reduction over float64 slices
//   - textutil: code-point string reversal and word-frequency counting
//   - stats: descriptive statistics over an immutable dataset
//
// The root package defines the error taxonomy those packages share. Every
// precondition failure is an InvalidArgumentError matching the
// ErrInvalidArgument sentinel. Operations validate their inputs before any
// computation or state mutation, so a failed call never leaves an instance
// in a partial state: Accumulators and Datasets remain valid and reusable
// after an error.
//
// All operations are synchronous and complete in time proportional to their
// input. None of them block, perform I/O, or start goroutines. Instances
// holding state (calc.Accumulator, stats.Dataset construction) require
// external synchronization when shared across goroutines; a constructed
// stats.Dataset is read-only and safe for concurrent readers.
package calckit
