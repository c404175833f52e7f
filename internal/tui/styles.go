package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/calckit/internal/ui"
)

// Style variables for the workbench.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle            lipgloss.Style
	panelTitleStyle       lipgloss.Style
	headerStyle           lipgloss.Style
	titleStyle            lipgloss.Style
	versionStyle          lipgloss.Style
	elapsedStyle          lipgloss.Style
	promptStyle           lipgloss.Style
	placeholderStyle      lipgloss.Style
	commandEchoStyle      lipgloss.Style
	hintStyle             lipgloss.Style
	metricLabelStyle      lipgloss.Style
	metricValueStyle      lipgloss.Style
	heapSparklineStyle    lipgloss.Style
	datasetSparklineStyle lipgloss.Style
	busyStyle             lipgloss.Style
	statusReadyStyle      lipgloss.Style
	statusBusyStyle       lipgloss.Style
	statusDoneStyle       lipgloss.Style
	footerKeyStyle        lipgloss.Style
	footerDescStyle       lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all workbench styles from the current ui theme.
// Called at package init, again from Run() after InitTheme has been invoked,
// and from the theme command when the palette changes mid-session.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Bg).
		Foreground(t.Text)

	panelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Bg).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	promptStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)

	placeholderStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	commandEchoStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	hintStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	heapSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	datasetSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	busyStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusReadyStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusBusyStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
