package tui

import (
	"strings"
	"testing"

	"github.com/agbru/calckit/internal/metrics"
)

func TestMetricsModel_Update(t *testing.T) {
	m := NewMetricsModel()

	msg := SampleMsg{
		Totals: metrics.Totals{Operations: 7, Failures: 2},
		Heap: metrics.MemorySnapshot{
			HeapAlloc: 1024 * 1024 * 50,
			HeapSys:   1024 * 1024 * 100,
			NumGC:     10,
		},
		Goroutines: 8,
	}
	m.Update(msg)

	if m.ops != 7 {
		t.Errorf("expected ops 7, got %d", m.ops)
	}
	if m.failures != 2 {
		t.Errorf("expected failures 2, got %d", m.failures)
	}
	if m.heapAlloc != msg.Heap.HeapAlloc {
		t.Errorf("expected heapAlloc %d, got %d", msg.Heap.HeapAlloc, m.heapAlloc)
	}
	if m.heapSys != msg.Heap.HeapSys {
		t.Errorf("expected heapSys %d, got %d", msg.Heap.HeapSys, m.heapSys)
	}
	if m.numGC != msg.Heap.NumGC {
		t.Errorf("expected numGC %d, got %d", msg.Heap.NumGC, m.numGC)
	}
	if m.goroutines != msg.Goroutines {
		t.Errorf("expected goroutines %d, got %d", msg.Goroutines, m.goroutines)
	}
}

func TestMetricsModel_Update_PushesHeapPressure(t *testing.T) {
	m := NewMetricsModel()

	m.Update(SampleMsg{
		Heap: metrics.MemorySnapshot{
			HeapAlloc: 1024 * 1024 * 50,
			HeapSys:   1024 * 1024 * 100,
		},
	})

	if m.heapHistory.Len() != 1 {
		t.Fatalf("expected one history sample, got %d", m.heapHistory.Len())
	}
	if got := m.heapHistory.Last(); got != 50 {
		t.Errorf("expected 50%% heap pressure, got %f", got)
	}
}

func TestMetricsModel_Update_SkipsZeroHeapSys(t *testing.T) {
	m := NewMetricsModel()

	m.Update(SampleMsg{Heap: metrics.MemorySnapshot{HeapAlloc: 1024}})

	if m.heapHistory.Len() != 0 {
		t.Errorf("expected no history sample for zero HeapSys, got %d", m.heapHistory.Len())
	}
}

func TestMetricsModel_View(t *testing.T) {
	m := NewMetricsModel()
	m.SetSize(40, 9)

	m.Update(SampleMsg{
		Totals: metrics.Totals{Operations: 3, Failures: 1},
		Heap: metrics.MemorySnapshot{
			HeapAlloc: 1024 * 1024 * 50,
			HeapSys:   1024 * 1024 * 100,
			NumGC:     10,
		},
		Goroutines: 8,
	})

	view := m.View()
	if !strings.Contains(view, "SESSION") {
		t.Error("expected view to contain 'SESSION' title")
	}
	if !strings.Contains(view, "Ops:") {
		t.Error("expected view to contain 'Ops:' label")
	}
	if !strings.Contains(view, "3 (1 failed)") {
		t.Error("expected view to contain the operation counts")
	}
	if !strings.Contains(view, "Heap:") {
		t.Error("expected view to contain 'Heap:' label")
	}
	if !strings.Contains(view, "GC:") {
		t.Error("expected view to contain 'GC:' label")
	}
	if !strings.Contains(view, "Goroutines:") {
		t.Error("expected view to contain 'Goroutines:' label")
	}
	if !strings.Contains(view, "▄") {
		t.Error("expected view to contain the 50%% sparkline block")
	}
}

func TestMetricsModel_SetSize(t *testing.T) {
	m := NewMetricsModel()
	m.SetSize(40, 9)

	if m.width != 40 {
		t.Errorf("expected width 40, got %d", m.width)
	}
	if m.height != 9 {
		t.Errorf("expected height 9, got %d", m.height)
	}
	if got := m.heapHistory.Cap(); got != 34 {
		t.Errorf("expected history resized to 34, got %d", got)
	}
}

func TestMetricsModel_SetSize_TooNarrowKeepsHistory(t *testing.T) {
	m := NewMetricsModel()
	before := m.heapHistory.Cap()

	m.SetSize(4, 9)

	if got := m.heapHistory.Cap(); got != before {
		t.Errorf("expected history capacity unchanged at %d, got %d", before, got)
	}
}

func TestMetricRow(t *testing.T) {
	row := metricRow("Heap:", "50.0 MB")
	if !strings.Contains(row, "Heap:") {
		t.Error("expected row to contain label")
	}
	if !strings.Contains(row, "50.0 MB") {
		t.Error("expected row to contain value")
	}
}
