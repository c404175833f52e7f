package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/calckit/internal/format"
)

// HeaderModel renders the top bar: title, version, elapsed session time and
// the run status of the command line.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	busy      bool
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetBusy toggles the running indicator.
func (h *HeaderModel) SetBusy(busy bool) {
	h.busy = busy
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
	h.busy = false
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "CalcKit Workbench"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := versionStyle.Render(" | ")

	var duration time.Duration
	if !h.endTime.IsZero() {
		duration = h.endTime.Sub(h.startTime)
	} else {
		duration = time.Since(h.startTime)
	}
	elapsed := elapsedStyle.Render(fmt.Sprintf("Session: %s", format.FormatExecutionDuration(duration)))

	var status string
	switch {
	case !h.endTime.IsZero():
		status = statusDoneStyle.Render("DONE")
	case h.busy:
		status = statusBusyStyle.Render("RUNNING")
	default:
		status = statusReadyStyle.Render("READY")
	}

	leftPart := title + pipe + elapsed
	leftLen := lipgloss.Width(leftPart)
	rightLen := lipgloss.Width(status)

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	gap := innerWidth - leftLen - rightLen
	if gap < 0 {
		gap = 0
	}

	row := leftPart + spaces(gap) + status

	return headerStyle.Width(h.width).Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
