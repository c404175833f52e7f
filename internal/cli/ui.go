//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// TruncationLimit is the digit threshold from which a big integer result
	// is truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// SliceDisplayLimit is the element threshold from which a sequence is
	// truncated in standard output.
	SliceDisplayLimit = 16
	// SliceDisplayHead and SliceDisplayTail specify how many elements of a
	// truncated sequence are shown at each end.
	SliceDisplayHead = 8
	SliceDisplayTail = 4
	// SpinnerRefreshRate defines the refresh frequency of the busy spinner.
	SpinnerRefreshRate = 200 * time.Millisecond
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of long-running commands from a specific
// spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// runWithSpinner runs f while a spinner with the given message animates on
// out. The spinner is always stopped before the function's error is
// returned, so the next write to out starts on a clean line.
func runWithSpinner(out io.Writer, message string, f func() error) error {
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(" " + message)
	sp.Start()
	defer sp.Stop()
	return f()
}
