package stats

import "fmt"

func ExampleDataset() {
	d, err := New([]float64{10, 12, 15, 17, 18, 20, 22, 100})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("mean:   %.2f\n", d.Mean())
	fmt.Printf("median: %.2f\n", d.Median())
	fmt.Printf("stddev: %.2f\n", d.StdDev())

	filtered, err := d.FilterOutliers(2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("within 2 sigma:", filtered)
	// Output:
	// mean:   26.75
	// median: 17.50
	// stddev: 27.93
	// within 2 sigma: [10 12 15 17 18 20 22]
}

func ExampleDataset_FilterOutliers() {
	d, err := New([]float64{1, 2, 3})
	if err != nil {
		fmt.Println(err)
		return
	}

	if _, err := d.FilterOutliers(-1); err != nil {
		fmt.Println(err)
	}
	// The failed call left the dataset untouched.
	fmt.Println(d.Values())
	// Output:
	// stats.FilterOutliers: k must be non-negative, got -1
	// [1 2 3]
}
