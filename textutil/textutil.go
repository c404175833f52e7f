// Package textutil provides small text analytics: code-point string
// reversal and whitespace-token frequency counting.
package textutil

import "strings"

// Reverse returns s with its code points in reverse order. The reversal
// operates on runes, never bytes, so multi-byte characters survive intact.
// The empty string reverses to itself, and applying Reverse twice returns
// the original string.
//
// Bytes that are not valid UTF-8 decode to U+FFFD during rune iteration,
// as with any rune-wise transform.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// WordFrequency counts the whitespace-delimited tokens of s. A token is a
// maximal run of non-whitespace characters, with runs of one or more
// Unicode White_Space characters acting as a single delimiter. There is no
// case folding and no punctuation stripping: "Dog", "dog" and "dog." are
// three distinct tokens.
//
// The returned map is never nil; empty or all-whitespace input yields an
// empty map. Iteration order carries no meaning. Ranked display is the
// caller's presentation concern, not a property of the count.
func WordFrequency(s string) map[string]int {
	freq := make(map[string]int)
	for _, token := range strings.Fields(s) {
		freq[token]++
	}
	return freq
}
