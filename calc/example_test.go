package calc

import "fmt"

// ExampleAccumulator demonstrates the result memory: every operation
// overwrites it, and reads never change it.
func ExampleAccumulator() {
	var c Accumulator

	fmt.Println(c.Add(5, 3))
	fmt.Println(c.Multiply(10, 4))
	fmt.Println(c.Memory())

	c.ClearMemory()
	fmt.Println(c.Memory())
	// Output:
	// 8
	// 40
	// 40
	// 0
}

// ExampleAccumulator_Divide shows that a zero divisor is rejected without
// touching the stored result.
func ExampleAccumulator_Divide() {
	var c Accumulator
	c.Add(2, 2)

	if _, err := c.Divide(1, 0); err != nil {
		fmt.Println(err)
	}
	fmt.Println(c.Memory())
	// Output:
	// calc.Divide: division by zero
	// 4
}
