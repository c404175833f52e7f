package aggregate

import (
	"errors"
	"math"
	"testing"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/agbru/calckit"
)

// almostEqual compares floats with a tolerance wide enough to absorb
// summation-order differences between implementations.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		values   []float64
		expected Summary
	}{
		{
			name:     "single element",
			values:   []float64{42},
			expected: Summary{Sum: 42, Min: 42, Max: 42},
		},
		{
			name:     "mixed fractions",
			values:   []float64{1.5, 2.7, 3.2, 4.8, 5.1},
			expected: Summary{Sum: 17.3, Min: 1.5, Max: 5.1},
		},
		{
			name:     "negative values",
			values:   []float64{-3, -1, -7, -2},
			expected: Summary{Sum: -13, Min: -7, Max: -1},
		},
		{
			name:     "all equal",
			values:   []float64{4, 4, 4},
			expected: Summary{Sum: 12, Min: 4, Max: 4},
		},
		{
			name:     "extrema at the ends",
			values:   []float64{-10, 0, 10},
			expected: Summary{Sum: 0, Min: -10, Max: 10},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Summarize(tt.values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got.Sum, tt.expected.Sum) {
				t.Errorf("Sum = %g, want %g", got.Sum, tt.expected.Sum)
			}
			if got.Min != tt.expected.Min {
				t.Errorf("Min = %g, want %g", got.Min, tt.expected.Min)
			}
			if got.Max != tt.expected.Max {
				t.Errorf("Max = %g, want %g", got.Max, tt.expected.Max)
			}
		})
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	t.Parallel()
	got, err := Summarize(nil)
	if err == nil {
		t.Fatal("expected an error for empty input, got nil")
	}
	if !errors.Is(err, calckit.ErrInvalidArgument) {
		t.Errorf("error should match ErrInvalidArgument, got %v", err)
	}
	if got != (Summary{}) {
		t.Errorf("expected zero Summary on error, got %+v", got)
	}

	if _, err := Summarize([]float64{}); !errors.Is(err, calckit.ErrInvalidArgument) {
		t.Errorf("empty non-nil slice should fail the same way, got %v", err)
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	values := []float64{5, 1, 9, 3}
	if _, err := Summarize(values); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{5, 1, 9, 3}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("input mutated at %d: %v", i, values)
		}
	}
}

// TestSummarize_AgainstOracles cross-checks the fused pass against two
// independent implementations.
func TestSummarize_AgainstOracles(t *testing.T) {
	t.Parallel()
	datasets := [][]float64{
		{1.5, 2.7, 3.2, 4.8, 5.1},
		{10, 12, 15, 17, 18, 20, 22, 100},
		{-0.5, 0.25, -0.125},
		{3.14159, 2.71828, 1.41421, 1.61803, 0.57721},
		{1e12, -1e12, 42},
	}

	for _, values := range datasets {
		got, err := Summarize(values)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantSum, err := mstats.Sum(values)
		if err != nil {
			t.Fatalf("oracle Sum failed: %v", err)
		}
		wantMin, err := mstats.Min(values)
		if err != nil {
			t.Fatalf("oracle Min failed: %v", err)
		}
		wantMax, err := mstats.Max(values)
		if err != nil {
			t.Fatalf("oracle Max failed: %v", err)
		}

		if !almostEqual(got.Sum, wantSum) {
			t.Errorf("Sum = %g, oracle says %g (values %v)", got.Sum, wantSum, values)
		}
		if got.Min != wantMin {
			t.Errorf("Min = %g, oracle says %g (values %v)", got.Min, wantMin, values)
		}
		if got.Max != wantMax {
			t.Errorf("Max = %g, oracle says %g (values %v)", got.Max, wantMax, values)
		}

		// Second oracle: gonum agrees too.
		if !almostEqual(got.Sum, floats.Sum(values)) {
			t.Errorf("Sum = %g, gonum says %g", got.Sum, floats.Sum(values))
		}
		if got.Min != floats.Min(values) || got.Max != floats.Max(values) {
			t.Errorf("extrema (%g, %g) disagree with gonum (%g, %g)",
				got.Min, got.Max, floats.Min(values), floats.Max(values))
		}
	}
}

func TestSummarize_BoundsEveryElement(t *testing.T) {
	t.Parallel()
	values := []float64{7.5, -2.25, 3, 3, 19, -2.25}
	got, err := Summarize(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range values {
		if v < got.Min {
			t.Errorf("element %g below reported Min %g", v, got.Min)
		}
		if v > got.Max {
			t.Errorf("element %g above reported Max %g", v, got.Max)
		}
	}
}
