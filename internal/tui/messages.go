package tui

import (
	"time"

	"github.com/agbru/calckit/internal/metrics"
)

// TickMsg drives periodic redraws and runtime sampling.
type TickMsg time.Time

// SampleMsg carries a point-in-time runtime reading for the session panel.
type SampleMsg struct {
	Totals     metrics.Totals
	Heap       metrics.MemorySnapshot
	Goroutines int
}

// CommandDoneMsg reports a finished command line: its rendered output and
// whether it asked to leave the workbench.
type CommandDoneMsg struct {
	Output string
	Quit   bool
}

// ContextCanceledMsg reports that the parent context was canceled, either by
// a signal or by the caller.
type ContextCanceledMsg struct {
	Err error
}
