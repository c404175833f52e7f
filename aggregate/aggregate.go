// Package aggregate reduces float64 collections to summary values.
package aggregate

import "github.com/agbru/calckit"

// Summary holds the three reductions computed by Summarize.
type Summary struct {
	// Sum is the linear accumulation of all values.
	Sum float64
	// Min is the smallest value seen.
	Min float64
	// Max is the largest value seen.
	Max float64
}

// Summarize computes sum, minimum, and maximum over values in a single
// fused pass seeded from the first element. An empty slice fails with
// calckit.ErrInvalidArgument, since min and max are undefined without
// elements.
//
// Only values are reported, never positions, so duplicate extrema are
// indistinguishable from a single occurrence.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, calckit.NewInvalidArgument("aggregate.Summarize", "values must not be empty")
	}
	s := Summary{Sum: values[0], Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s, nil
}
