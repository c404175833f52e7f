package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is one named set of ANSI escape codes. Every field holds the escape
// sequence for a category of output; the "none" theme leaves all of them
// empty, so rendering degrades to plain text.
type Theme struct {
	Name      string
	Primary   string // main accent
	Secondary string // de-emphasized elements
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

// themes holds the built-in themes in display order. The first entry is the
// default and the fallback for unknown names.
var themes = []Theme{
	{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // bright blue
		Secondary: "\033[38;5;245m", // grey
		Success:   "\033[38;5;82m",  // bright green
		Warning:   "\033[38;5;220m", // yellow
		Error:     "\033[38;5;196m", // red
		Info:      "\033[38;5;141m", // purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	},
	{
		// Darker tones for light terminal backgrounds.
		Name:      "light",
		Primary:   "\033[38;5;27m",  // dark blue
		Secondary: "\033[38;5;240m", // dark grey
		Success:   "\033[38;5;28m",  // dark green
		Warning:   "\033[38;5;130m", // orange
		Error:     "\033[38;5;124m", // dark red
		Info:      "\033[38;5;54m",  // dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	},
	{
		// Orange-dominant scheme matching the workbench palette.
		Name:      "orange",
		Primary:   "\033[38;5;208m", // orange
		Secondary: "\033[38;5;245m", // grey
		Success:   "\033[38;5;82m",  // bright green
		Warning:   "\033[38;5;214m", // light orange
		Error:     "\033[38;5;196m", // red
		Info:      "\033[38;5;69m",  // blue
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	},

	// The zero escape codes of "none" disable color entirely.
	{Name: "none"},
}

var (
	themeMutex   sync.RWMutex
	currentTheme = themes[0]
)

// themeByName looks a theme up in the registry.
func themeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ValidThemes returns the recognized theme names in display order. The
// result is a copy, so callers may reorder it freely.
func ValidThemes() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// IsValidTheme reports whether name identifies a known theme.
func IsValidTheme(name string) bool {
	_, ok := themeByName(name)
	return ok
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme wholesale. It exists so tests
// can restore the theme they found.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates the named theme. Unknown names fall back to the
// default dark theme.
//
// Parameters:
//   - name: The name of the theme to activate.
func SetTheme(name string) {
	t, ok := themeByName(name)
	if !ok {
		t = themes[0]
	}
	SetCurrentTheme(t)
}

// InitTheme picks the startup theme. An explicit noColor flag or any
// non-empty NO_COLOR in the environment (per no-color.org) disables colors;
// otherwise the default dark theme applies.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	if noColor {
		SetTheme("none")
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetTheme("none")
		return
	}
	SetTheme("dark")
}

// TUITheme defines lipgloss-compatible colors for the TUI workbench.
// Each field is a lipgloss.TerminalColor suitable for use with
// lipgloss.Style.Foreground() and Background().
type TUITheme struct {
	Bg      lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

var (
	// workbenchPalette is the orange-dominant default for the workbench.
	workbenchPalette = TUITheme{
		Bg:      lipgloss.Color("#000000"),
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
		Info:    lipgloss.Color("#4488FF"),
	}

	// plainPalette renders every element with the terminal's own colors.
	plainPalette = TUITheme{
		Bg:      lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the workbench palette matching the active
// theme: plain when colors are disabled, the orange palette otherwise.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == "none" {
		return plainPalette
	}
	return workbenchPalette
}
