// Package calc provides a stateful arithmetic accumulator. Every successful
// operation overwrites the accumulator's memory with its result, so the
// memory always holds the outcome of the most recent call (last write wins,
// no history).
package calc

import "github.com/agbru/calckit"

// Accumulator performs basic arithmetic and remembers the most recent
// result. The zero value is ready to use and reads memory 0.
//
// Operands follow IEEE-754 semantics: overflow to ±Inf and NaN propagation
// are valid results, not failures. The only error condition is a zero
// divisor in Divide.
//
// An Accumulator is not safe for concurrent use; callers sharing one across
// goroutines must serialize access externally.
type Accumulator struct {
	memory float64
}

// Add returns a+b and stores the sum in memory.
func (c *Accumulator) Add(a, b float64) float64 {
	c.memory = a + b
	return c.memory
}

// Subtract returns a-b and stores the difference in memory.
func (c *Accumulator) Subtract(a, b float64) float64 {
	c.memory = a - b
	return c.memory
}

// Multiply returns a*b and stores the product in memory.
func (c *Accumulator) Multiply(a, b float64) float64 {
	c.memory = a * b
	return c.memory
}

// Divide returns a/b and stores the quotient in memory. A zero divisor
// (including negative zero) fails with calckit.ErrInvalidArgument before
// memory is touched, leaving the accumulator as it was.
//
// Parameters:
//   - a: The dividend.
//   - b: The divisor.
//
// Returns:
//   - float64: The quotient a/b, or 0 on error.
//   - error: An InvalidArgumentError if b is zero.
func (c *Accumulator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, calckit.NewInvalidArgument("calc.Divide", "division by zero")
	}
	c.memory = a / b
	return c.memory, nil
}

// Memory returns the most recently stored result, or 0 if no operation has
// run since construction or the last ClearMemory.
func (c *Accumulator) Memory() float64 {
	return c.memory
}

// ClearMemory resets memory to 0.
func (c *Accumulator) ClearMemory() {
	c.memory = 0
}
