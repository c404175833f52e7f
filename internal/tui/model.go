// Package tui implements the full-screen interactive workbench: a bubbletea
// program with a scrolling results pane, live session and dataset panels,
// and a command line speaking the same grammar as the line-oriented session.
package tui

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/calckit/internal/config"
	apperrors "github.com/agbru/calckit/internal/errors"
	"github.com/agbru/calckit/internal/logging"
	"github.com/agbru/calckit/internal/metrics"
)

// Layout constants for the workbench.
const (
	headerHeight             = 1
	inputHeight              = 1
	minBodyHeight            = 6
	resultsPanelWidthPercent = 60
	metricsPanelHeight       = 9
	fullHelpHeight           = 3
)

// spinFrames animates the busy indicator on the input row.
var spinFrames = []string{"|", "/", "-", "\\"}

// ExecutionState holds the execution-related fields of a workbench session.
type ExecutionState struct {
	ctx       context.Context
	cancel    context.CancelFunc
	busy      bool
	busyStart time.Time
	exitCode  int
	quitting  bool
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width     int
	height    int
	helpLines int
}

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	h := l.height - headerHeight - inputHeight - l.helpLines
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// resultsWidth returns the width allocated to the results panel.
func (l LayoutManager) resultsWidth() int {
	return l.width * resultsPanelWidthPercent / 100
}

// rightWidth returns the width allocated to the right column
// (session metrics + dataset).
func (l LayoutManager) rightWidth() int {
	return l.width - l.resultsWidth()
}

// metricsHeight returns the height allocated to the session panel.
func (l LayoutManager) metricsHeight() int {
	body := l.bodyHeight()
	h := metricsPanelHeight
	if h > body/2 {
		h = body / 2
	}
	return h
}

// datasetHeight returns the height allocated to the dataset panel.
func (l LayoutManager) datasetHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model for the workbench.
type Model struct {
	header  HeaderModel
	results ResultsModel
	metrics MetricsModel
	dataset DatasetModel
	input   textinput.Model
	help    help.Model

	keymap KeyMap

	ExecutionState
	LayoutManager

	session   *session
	recorder  *metrics.Recorder
	collector *metrics.MemoryCollector
	config    config.AppConfig

	history []string
	histIdx int
}

// NewModel creates a new workbench model.
func NewModel(parentCtx context.Context, cfg config.AppConfig, recorder *metrics.Recorder, logger logging.Logger, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	input := textinput.New()
	input.Placeholder = "type a command, help lists them"
	input.CharLimit = 256
	input.Focus()

	m := Model{
		header:  NewHeaderModel(version),
		results: NewResultsModel(),
		metrics: NewMetricsModel(),
		dataset: NewDatasetModel(),
		input:   input,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		LayoutManager: LayoutManager{helpLines: 1},
		session:       newSession(cfg, recorder, logger),
		recorder:      recorder,
		collector:     metrics.NewMemoryCollector(),
		config:        cfg,
	}
	m.applyInputStyles()
	return m
}

// applyInputStyles pushes the current theme onto the components that capture
// styles by value. Called again after every command, so a theme switch from
// the command line restyles the prompt and the help bar too.
func (m *Model) applyInputStyles() {
	m.input.Prompt = "calc> "
	m.input.PromptStyle = promptStyle
	m.input.PlaceholderStyle = placeholderStyle

	m.help.Styles.ShortKey = footerKeyStyle
	m.help.Styles.ShortDesc = footerDescStyle
	m.help.Styles.ShortSeparator = footerDescStyle
	m.help.Styles.FullKey = footerKeyStyle
	m.help.Styles.FullDesc = footerDescStyle
	m.help.Styles.FullSeparator = footerDescStyle
	m.help.Styles.Ellipsis = footerDescStyle
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case CommandDoneMsg:
		m.busy = false
		m.header.SetBusy(false)
		if msg.Output != "" {
			m.results.Append(msg.Output)
		}
		m.dataset.SetDataset(m.session.dataset)
		// A theme command rebuilds the package styles; recapture them.
		m.applyInputStyles()
		if msg.Quit {
			m.quitting = true
			m.header.SetDone()
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(sampleCmd(m.recorder, m.collector), tickCmd())

	case SampleMsg:
		m.metrics.Update(msg)
		return m, nil

	case ContextCanceledMsg:
		if m.quitting {
			return m, tea.Quit
		}
		m.quitting = true
		m.exitCode = apperrors.ExitCodeFromError(msg.Err)
		m.header.SetDone()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		m.header.SetDone()
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		if m.busy {
			return m, nil
		}
		raw := m.input.Value()
		if raw == "" {
			return m, nil
		}
		m.results.Append(commandEchoStyle.Render("calc> " + raw))
		m.history = append(m.history, raw)
		m.histIdx = len(m.history)
		m.input.Reset()
		m.busy = true
		m.busyStart = time.Now()
		m.header.SetBusy(true)
		return m, evalCmd(m.ctx, m.session, raw)

	case key.Matches(msg, m.keymap.HistoryPrev):
		if m.histIdx > 0 {
			m.histIdx--
			m.input.SetValue(m.history[m.histIdx])
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keymap.HistoryNext):
		if m.histIdx < len(m.history) {
			m.histIdx++
			if m.histIdx == len(m.history) {
				m.input.SetValue("")
			} else {
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}
		}
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.results.ScrollUp()
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.results.ScrollDown()
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		m.results.Clear()
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		if m.help.ShowAll {
			m.helpLines = fullHelpHeight
		} else {
			m.helpLines = 1
		}
		m.layoutPanels()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the entire workbench.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()

	// Right column: session metrics on top, dataset on bottom
	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.dataset.View())

	// Main body: results on left, right column on right
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.results.View(), rightCol)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.inputView(), m.help.View(m.keymap))
}

// inputView renders the command line, replaced by a busy indicator while a
// command runs.
func (m Model) inputView() string {
	if m.busy {
		elapsed := time.Since(m.busyStart)
		frame := spinFrames[int(elapsed.Milliseconds()/100)%len(spinFrames)]
		return busyStyle.Render(fmt.Sprintf(" %s Running... %v", frame, elapsed.Round(100*time.Millisecond)))
	}
	return m.input.View()
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	m.results.SetSize(m.resultsWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.dataset.SetSize(m.rightWidth(), m.datasetHeight())
	m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 2
}

// Run is the public entry point for the workbench mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, recorder *metrics.Recorder, logger logging.Logger, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	recorder.SessionStarted()
	defer recorder.SessionEnded()

	// The alternate screen owns the terminal while the program runs, so all
	// logging happens on either side of it.
	logger.Info("workbench session started")

	model := NewModel(ctx, cfg, recorder, logger, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		logger.Error("workbench terminated abnormally", err)
		return apperrors.ExitErrorGeneric
	}
	logger.Info("workbench session ended")

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// evalCmd returns a tea.Cmd that runs one command line on the session
// engine. Commands run off the UI goroutine; the result comes back as a
// single CommandDoneMsg.
func evalCmd(ctx context.Context, s *session, input string) tea.Cmd {
	return func() tea.Msg {
		output, quit := s.eval(ctx, input)
		return CommandDoneMsg{Output: output, Quit: quit}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleCmd reads the session counters and runtime memory statistics and
// returns them as a SampleMsg.
func sampleCmd(recorder *metrics.Recorder, collector *metrics.MemoryCollector) tea.Cmd {
	return func() tea.Msg {
		return SampleMsg{
			Totals:     recorder.Totals(),
			Heap:       collector.Snapshot(),
			Goroutines: runtime.NumGoroutine(),
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCanceledMsg{Err: ctx.Err()}
	}
}
