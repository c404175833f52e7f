package stats

import (
	"errors"
	"math"
	"reflect"
	"testing"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/agbru/calckit"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// anchor is the dataset used throughout: mean 26.75, median 17.5, and a
// single extreme value at 100.
var anchor = []float64{10, 12, 15, 17, 18, 20, 22, 100}

func mustDataset(t *testing.T, values []float64) *Dataset {
	t.Helper()
	d, err := New(values)
	if err != nil {
		t.Fatalf("New(%v) failed: %v", values, err)
	}
	return d
}

func TestNew_EmptyInput(t *testing.T) {
	t.Parallel()
	for _, values := range [][]float64{nil, {}} {
		d, err := New(values)
		if err == nil {
			t.Fatalf("New(%v) should fail", values)
		}
		if !errors.Is(err, calckit.ErrInvalidArgument) {
			t.Errorf("error should match ErrInvalidArgument, got %v", err)
		}
		if d != nil {
			t.Errorf("expected nil Dataset on error, got %+v", d)
		}
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()
	values := []float64{3, 1, 2}
	d := mustDataset(t, values)

	values[0] = 999
	if got := d.Values(); got[0] != 3 {
		t.Errorf("mutating the input reached the dataset: %v", got)
	}
}

func TestMean(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"anchor dataset", anchor, 26.75},
		{"single element", []float64{7}, 7},
		{"one through five", []float64{1, 2, 3, 4, 5}, 3},
		{"negatives cancel", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := mustDataset(t, tt.values)
			if got := d.Mean(); !almostEqual(got, tt.expected) {
				t.Errorf("Mean() = %g, want %g", got, tt.expected)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"even count averages middles", anchor, 17.5},
		{"odd count takes middle", []float64{5, 1, 3}, 3},
		{"single element", []float64{42}, 42},
		{"two elements", []float64{10, 20}, 15},
		{"unsorted input", []float64{9, 2, 7, 4, 6}, 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := mustDataset(t, tt.values)
			if got := d.Median(); !almostEqual(got, tt.expected) {
				t.Errorf("Median() = %g, want %g", got, tt.expected)
			}
		})
	}
}

func TestMedian_DoesNotReorderDataset(t *testing.T) {
	t.Parallel()
	values := []float64{9, 2, 7, 4, 6}
	d := mustDataset(t, values)

	before := d.Values()
	_ = d.Median()
	after := d.Values()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("Median reordered the dataset: before %v, after %v", before, after)
	}
	if !reflect.DeepEqual(after, values) {
		t.Errorf("stored order diverged from construction order: %v", after)
	}
}

func TestStdDev(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"anchor dataset", anchor, 27.931836674304108},
		{"constant dataset", []float64{4, 4, 4, 4}, 0},
		{"single element", []float64{13}, 0},
		{"one through five", []float64{1, 2, 3, 4, 5}, math.Sqrt2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := mustDataset(t, tt.values)
			if got := d.StdDev(); !almostEqual(got, tt.expected) {
				t.Errorf("StdDev() = %g, want %g", got, tt.expected)
			}
		})
	}
}

func TestFilterOutliers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		values   []float64
		k        float64
		expected []float64
	}{
		{
			name:     "two sigma drops the extreme value",
			values:   anchor,
			k:        2.0,
			expected: []float64{10, 12, 15, 17, 18, 20, 22},
		},
		{
			name:     "large k keeps everything",
			values:   anchor,
			k:        1000,
			expected: anchor,
		},
		{
			name:     "k zero keeps only the mean itself",
			values:   []float64{5, 10, 15},
			k:        0,
			expected: []float64{10},
		},
		{
			name:     "k zero on a constant dataset keeps all",
			values:   []float64{3, 3, 3},
			k:        0,
			expected: []float64{3, 3, 3},
		},
		{
			name:     "order is preserved",
			values:   []float64{22, 100, 10, 18},
			k:        2.0,
			expected: []float64{22, 100, 10, 18},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := mustDataset(t, tt.values)
			got, err := d.FilterOutliers(tt.k)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("FilterOutliers(%g) = %v, want %v", tt.k, got, tt.expected)
			}
		})
	}
}

func TestFilterOutliers_NegativeK(t *testing.T) {
	t.Parallel()
	d := mustDataset(t, anchor)
	got, err := d.FilterOutliers(-0.5)
	if err == nil {
		t.Fatal("expected an error for negative k, got nil")
	}
	if !errors.Is(err, calckit.ErrInvalidArgument) {
		t.Errorf("error should match ErrInvalidArgument, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result on error, got %v", got)
	}

	// The dataset stays fully usable after the failed call.
	if mean := d.Mean(); !almostEqual(mean, 26.75) {
		t.Errorf("Mean() after failed filter = %g, want 26.75", mean)
	}
}

func TestDataset_PureAfterConstruction(t *testing.T) {
	t.Parallel()
	d := mustDataset(t, anchor)

	wantMean := d.Mean()
	wantMedian := d.Median()
	wantStdDev := d.StdDev()
	wantFiltered, err := d.FilterOutliers(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Interleave every operation in a different order and expect identical
	// results each round.
	for round := 0; round < 3; round++ {
		if got, _ := d.FilterOutliers(2); !reflect.DeepEqual(got, wantFiltered) {
			t.Fatalf("round %d: FilterOutliers diverged: %v", round, got)
		}
		if got := d.StdDev(); got != wantStdDev {
			t.Fatalf("round %d: StdDev diverged: %g", round, got)
		}
		if got := d.Median(); got != wantMedian {
			t.Fatalf("round %d: Median diverged: %g", round, got)
		}
		if got := d.Mean(); got != wantMean {
			t.Fatalf("round %d: Mean diverged: %g", round, got)
		}
	}
}

// TestDataset_AgainstOracles cross-checks every statistic against two
// independent implementations.
func TestDataset_AgainstOracles(t *testing.T) {
	t.Parallel()
	datasets := [][]float64{
		anchor,
		{1, 2, 3, 4, 5},
		{2.5},
		{-4, -8, 15, 16, 23, 42},
		{0.001, 0.002, 0.003, 1000},
	}

	for _, values := range datasets {
		d := mustDataset(t, values)

		wantMean, err := mstats.Mean(values)
		if err != nil {
			t.Fatalf("oracle Mean failed: %v", err)
		}
		wantMedian, err := mstats.Median(values)
		if err != nil {
			t.Fatalf("oracle Median failed: %v", err)
		}
		wantStdDev, err := mstats.StandardDeviationPopulation(values)
		if err != nil {
			t.Fatalf("oracle StdDev failed: %v", err)
		}

		if got := d.Mean(); !almostEqual(got, wantMean) {
			t.Errorf("Mean = %g, oracle says %g (values %v)", got, wantMean, values)
		}
		if got := d.Median(); !almostEqual(got, wantMedian) {
			t.Errorf("Median = %g, oracle says %g (values %v)", got, wantMedian, values)
		}
		if got := d.StdDev(); !almostEqual(got, wantStdDev) {
			t.Errorf("StdDev = %g, oracle says %g (values %v)", got, wantStdDev, values)
		}

		// Second oracle: gonum agrees too.
		if got := d.Mean(); !almostEqual(got, stat.Mean(values, nil)) {
			t.Errorf("Mean = %g, gonum says %g", got, stat.Mean(values, nil))
		}
		if got := d.StdDev(); !almostEqual(got, stat.PopStdDev(values, nil)) {
			t.Errorf("StdDev = %g, gonum says %g", got, stat.PopStdDev(values, nil))
		}
	}
}
