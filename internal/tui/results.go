package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// ResultsModel is the scrolling results pane. Command output accumulates as
// blocks; the viewport tails the newest block and rewraps everything when
// the terminal is resized.
type ResultsModel struct {
	vp     viewport.Model
	blocks []string
	width  int
	height int
}

// NewResultsModel creates a results pane with a welcome block.
func NewResultsModel() ResultsModel {
	m := ResultsModel{vp: viewport.New(0, 0)}
	m.blocks = []string{
		hintStyle.Render("Welcome to the CalcKit workbench.\nType a command below, or help for the full list."),
	}
	return m
}

// SetSize updates dimensions and rewraps the content.
func (m *ResultsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.vp.Width = max(w-2, 1)
	m.vp.Height = max(h-3, 1)
	m.refresh(false)
}

// Append adds one output block and tails the viewport to it.
func (m *ResultsModel) Append(block string) {
	block = strings.TrimRight(block, "\n")
	if block == "" {
		return
	}
	m.blocks = append(m.blocks, block)
	m.refresh(true)
}

// Clear empties the pane.
func (m *ResultsModel) Clear() {
	m.blocks = nil
	m.refresh(false)
}

// ScrollUp moves the view half a page towards older output.
func (m *ResultsModel) ScrollUp() {
	m.vp.HalfViewUp()
}

// ScrollDown moves the view half a page towards newer output.
func (m *ResultsModel) ScrollDown() {
	m.vp.HalfViewDown()
}

// refresh rebuilds the viewport content. Long lines wrap to the viewport
// width; when tail is set, or the view already sat at the bottom, the
// viewport follows the newest output.
func (m *ResultsModel) refresh(tail bool) {
	atBottom := m.vp.AtBottom()
	content := strings.Join(m.blocks, "\n")
	if m.vp.Width > 0 && content != "" {
		content = lipgloss.NewStyle().Width(m.vp.Width).Render(content)
	}
	m.vp.SetContent(content)
	if tail || atBottom {
		m.vp.GotoBottom()
	}
}

// View renders the results pane.
func (m ResultsModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render("RESULTS"),
		m.vp.View(),
	)
	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(body)
}
