// Package stats computes descriptive statistics over an immutable dataset:
// arithmetic mean, median, population standard deviation, and outlier
// filtering.
package stats

import (
	"math"
	"sort"

	"github.com/agbru/calckit"
)

// Dataset wraps an ordered sequence of float64 values, copied at
// construction and never mutated afterwards. Every method is read-only:
// calls may be made in any order, any number of times, with identical
// results, and a constructed Dataset is safe for concurrent readers.
type Dataset struct {
	values []float64
}

// New constructs a Dataset from values, copying the slice so later caller
// mutations cannot reach the stored data. An empty or nil input fails with
// calckit.ErrInvalidArgument, since none of the statistics are defined
// over nothing.
func New(values []float64) (*Dataset, error) {
	if len(values) == 0 {
		return nil, calckit.NewInvalidArgument("stats.New", "dataset must not be empty")
	}
	owned := make([]float64, len(values))
	copy(owned, values)
	return &Dataset{values: owned}, nil
}

// Len returns the number of values in the dataset.
func (d *Dataset) Len() int { return len(d.values) }

// Values returns a copy of the stored values in their original order.
func (d *Dataset) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)
	return out
}

// Mean returns the arithmetic mean, Σx / n.
func (d *Dataset) Mean() float64 {
	sum := 0.0
	for _, v := range d.values {
		sum += v
	}
	return sum / float64(len(d.values))
}

// Median returns the middle value of the dataset sorted ascending, or the
// average of the two middle values when the count is even. The sort
// happens on a copy; the stored order is observably unchanged for
// subsequent calls.
func (d *Dataset) Median() float64 {
	sorted := make([]float64, len(d.values))
	copy(sorted, d.values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// StdDev returns the population standard deviation,
// sqrt(Σ(xᵢ−mean)² / n). The dataset is treated as the complete population
// of interest, so no Bessel correction applies.
func (d *Dataset) StdDev() float64 {
	mean := d.Mean()
	sumSquares := 0.0
	for _, v := range d.values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(d.values)))
}

// FilterOutliers returns the values lying within k standard deviations of
// the mean, |x − mean| ≤ k·σ, preserving their original relative order. A
// negative k fails with calckit.ErrInvalidArgument before anything is
// computed.
func (d *Dataset) FilterOutliers(k float64) ([]float64, error) {
	if k < 0 {
		return nil, calckit.InvalidArgumentf("stats.FilterOutliers", "k must be non-negative, got %g", k)
	}
	mean := d.Mean()
	stdDev := d.StdDev()
	filtered := make([]float64, 0, len(d.values))
	for _, v := range d.values {
		if math.Abs(v-mean) <= k*stdDev {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}
