package tui

import (
	"strings"

	"github.com/agbru/calckit/internal/format"
	"github.com/agbru/calckit/stats"
)

// DatasetModel is the dataset panel: a sparkline of the values loaded by the
// stats command next to their descriptive statistics. It holds a copy of the
// figures, so the panel stays valid even while a command is replacing the
// dataset.
type DatasetModel struct {
	values []float64
	mean   float64
	median float64
	stdDev float64
	count  int
	width  int
	height int
}

// NewDatasetModel creates an empty dataset panel.
func NewDatasetModel() DatasetModel {
	return DatasetModel{}
}

// SetSize updates dimensions.
func (m *DatasetModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetDataset loads the panel from a dataset. A nil dataset empties it.
func (m *DatasetModel) SetDataset(d *stats.Dataset) {
	if d == nil {
		m.values = nil
		m.count = 0
		return
	}
	m.values = d.Values()
	m.count = d.Len()
	m.mean = d.Mean()
	m.median = d.Median()
	m.stdDev = d.StdDev()
}

// View renders the dataset panel.
func (m DatasetModel) View() string {
	var rows strings.Builder

	rows.WriteString(panelTitleStyle.Render("DATASET"))
	rows.WriteString("\n")

	if m.count == 0 {
		rows.WriteString(hintStyle.Render("  No dataset loaded."))
		rows.WriteString("\n")
		rows.WriteString(hintStyle.Render("  Load one with: stats <v1> <v2> ..."))
	} else {
		plot := Resample(m.values, max(m.width-6, 1))
		rows.WriteString("  ")
		rows.WriteString(datasetSparklineStyle.Render(RenderSparkline(ScalePercent(plot))))
		rows.WriteString("\n")
		rows.WriteString(metricRow("Values:", format.FormatCount(m.count)))
		rows.WriteString("\n")
		rows.WriteString(metricRow("Mean:", format.FormatFloat(m.mean)))
		rows.WriteString("\n")
		rows.WriteString(metricRow("Median:", format.FormatFloat(m.median)))
		rows.WriteString("\n")
		rows.WriteString(metricRow("Std dev:", format.FormatFloat(m.stdDev)))
	}

	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(rows.String())
}
