// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySequence], [DisplayQuietValue].
//
//   - Print* functions write informational text to an [io.Writer], such as
//     banners and configuration summaries.
//     Examples: [PrintBanner], [PrintSessionConfig].
//
// Pure string formatting lives in the internal/format package.

package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/agbru/calckit/internal/config"
	"github.com/agbru/calckit/internal/ui"
)

// bannerWidth is the inner width of the welcome banner box.
const bannerWidth = 58

// PrintBanner displays a boxed welcome banner with the given title.
//
// Parameters:
//   - out: The writer for standard output.
//   - title: The text displayed inside the box.
func PrintBanner(out io.Writer, title string) {
	top := "╔" + strings.Repeat("═", bannerWidth) + "╗"
	bottom := "╚" + strings.Repeat("═", bannerWidth) + "╝"

	pad := bannerWidth - utf8.RuneCountInString(title) - 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(out, "\n%s%s%s\n", ui.ColorPrimary(), top, ui.ColorReset())
	fmt.Fprintf(out, "%s║%s  %s%s%s%s%s║%s\n",
		ui.ColorPrimary(), ui.ColorReset(),
		ui.ColorBold(), title, ui.ColorReset(),
		strings.Repeat(" ", pad),
		ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(out, "%s%s%s\n\n", ui.ColorPrimary(), bottom, ui.ColorReset())
}

// PrintSessionConfig displays the resolved configuration for the current
// session: the selected mode, its time limit and the host environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintSessionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Session Configuration ---\n")
	fmt.Fprintf(out, "Mode: %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), modeName(cfg), ui.ColorReset(),
		ui.ColorWarning(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, %s%s%s.\n",
		ui.ColorInfo(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorInfo(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Theme: %s%s%s.\n",
		ui.ColorInfo(), cfg.Theme, ui.ColorReset())
}

// modeName returns the human-readable name of the selected mode.
func modeName(cfg config.AppConfig) string {
	switch {
	case cfg.REPL:
		return "interactive session"
	case cfg.TUI:
		return "TUI workbench"
	case cfg.Bench:
		return "benchmark"
	default:
		return "demo run"
	}
}

// DisplayQuietValue outputs a bare value for scripting, with no labels or
// colors.
//
// Parameters:
//   - out: The output writer.
//   - value: The value to print on its own line.
func DisplayQuietValue(out io.Writer, value string) {
	fmt.Fprintln(out, value)
}
