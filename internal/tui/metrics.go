package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/calckit/internal/format"
)

// MetricsModel is the session panel: running operation totals from the
// recorder next to runtime memory figures, with a heap-pressure sparkline
// fed one sample per tick.
type MetricsModel struct {
	ops         uint64
	failures    uint64
	heapAlloc   uint64
	heapSys     uint64
	numGC       uint32
	goroutines  int
	heapHistory *RingBuffer
	width       int
	height      int
}

// NewMetricsModel creates a new session panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		heapHistory: NewRingBuffer(32),
	}
}

// SetSize updates dimensions and fits the heap history to the panel width.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	if spark := w - 6; spark > 0 {
		m.heapHistory.Resize(spark)
	}
}

// Update absorbs one runtime sample.
func (m *MetricsModel) Update(msg SampleMsg) {
	m.ops = msg.Totals.Operations
	m.failures = msg.Totals.Failures
	m.heapAlloc = msg.Heap.HeapAlloc
	m.heapSys = msg.Heap.HeapSys
	m.numGC = msg.Heap.NumGC
	m.goroutines = msg.Goroutines
	if msg.Heap.HeapSys > 0 {
		m.heapHistory.Push(float64(msg.Heap.HeapAlloc) / float64(msg.Heap.HeapSys) * 100)
	}
}

// View renders the session panel.
func (m MetricsModel) View() string {
	var rows strings.Builder

	rows.WriteString(panelTitleStyle.Render("SESSION"))
	rows.WriteString("\n")
	rows.WriteString(metricRow("Ops:", fmt.Sprintf("%d (%d failed)", m.ops, m.failures)))
	rows.WriteString("\n")
	rows.WriteString(metricRow("Heap:", format.FormatBytes(m.heapAlloc)+" / "+format.FormatBytes(m.heapSys)))
	rows.WriteString("\n")
	rows.WriteString(metricRow("GC:", fmt.Sprintf("%d", m.numGC)))
	rows.WriteString("\n")
	rows.WriteString(metricRow("Goroutines:", fmt.Sprintf("%d", m.goroutines)))
	rows.WriteString("\n  ")
	rows.WriteString(heapSparklineStyle.Render(RenderSparkline(m.heapHistory.Slice())))

	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(rows.String())
}

// metricRow formats one label/value line of a side panel.
func metricRow(label, value string) string {
	return fmt.Sprintf("  %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
}
