package textutil

import "fmt"

func ExampleReverse() {
	fmt.Println(Reverse("Hello, World!"))
	fmt.Println(Reverse("日本語"))
	// Output:
	// !dlroW ,olleH
	// 語本日
}

func ExampleWordFrequency() {
	freq := WordFrequency("the quick brown fox jumps over the lazy dog the fox")

	// The map is unordered; look tokens up directly.
	fmt.Println(freq["the"], freq["fox"], freq["dog"])
	fmt.Println(len(freq))
	// Output:
	// 3 2 1
	// 8
}
