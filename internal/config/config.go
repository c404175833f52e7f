// Package config defines the application configuration and the three-level
// resolution chain used to populate it:
//
//  1. CLI flags (highest priority)
//  2. Environment variables (CALCKIT_* prefix)
//  3. Built-in defaults
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/calckit/internal/errors"
	"github.com/agbru/calckit/internal/ui"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "CALCKIT_"

// Default values applied before flags and environment overrides.
const (
	// DefaultTimeout bounds benchmark runs.
	DefaultTimeout = 5 * time.Minute
	// DefaultBenchSize is the largest input size the benchmark probes use.
	DefaultBenchSize = 100000
	// DefaultTheme is the color scheme assumed on dark terminals.
	DefaultTheme = "dark"
)

// AppConfig holds the runtime configuration for a calckit invocation.
type AppConfig struct {
	// REPL selects the interactive line-oriented session.
	REPL bool
	// TUI selects the full-screen workbench.
	TUI bool
	// Bench selects the benchmark mode.
	Bench bool
	// Completion, when non-empty, names the shell to emit a completion
	// script for and suppresses every other mode.
	Completion string

	// Theme names the color scheme: dark, light, orange or none.
	Theme string
	// NoColor disables all color output regardless of theme.
	NoColor bool
	// Quiet reduces output to bare results.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// Details appends metrics and memory statistics after a run.
	Details bool

	// Timeout bounds benchmark runs, standalone or inside a session.
	Timeout time.Duration
	// BenchSize is the largest input size benchmark probes are built from.
	BenchSize int
	// BenchWorkers caps concurrent benchmark probes. Zero selects an
	// adaptive value based on the host CPU count.
	BenchWorkers int
}

// supportedShells lists the shells GenerateCompletion can target.
var supportedShells = []string{"bash", "zsh", "fish", "powershell"}

// SupportedShells returns the completion shell names. The result is a copy.
func SupportedShells() []string {
	out := make([]string, len(supportedShells))
	copy(out, supportedShells)
	return out
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags that were not set explicitly,
// and validates the result.
//
// Parameters:
//   - programName: The name used in usage output, typically os.Args[0].
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: Destination for usage and parse error messages.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, a *ConfigError when
//     validation fails, or the raw parse error otherwise.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Theme:     DefaultTheme,
		Timeout:   DefaultTimeout,
		BenchSize: DefaultBenchSize,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	registerFlags(fs, &cfg)
	fs.Usage = func() { printUsage(fs, programName, errWriter) }

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg); err != nil {
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// registerFlags binds every flag to its AppConfig field. Short aliases share
// the destination with their long form, so either spelling works.
func registerFlags(fs *flag.FlagSet, cfg *AppConfig) {
	fs.BoolVar(&cfg.REPL, "repl", false, "start an interactive calculator session")
	fs.BoolVar(&cfg.REPL, "i", false, "shorthand for -repl")
	fs.BoolVar(&cfg.TUI, "tui", false, "start the full-screen workbench")
	fs.BoolVar(&cfg.Bench, "bench", false, "run benchmark probes over every operation")
	fs.StringVar(&cfg.Completion, "completion", "", "emit a completion script for the given shell (bash|zsh|fish|powershell)")

	fs.StringVar(&cfg.Theme, "theme", DefaultTheme, "color scheme (dark|light|orange|none)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print bare results only")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.Details, "details", false, "append metrics and memory statistics")
	fs.BoolVar(&cfg.Details, "d", false, "shorthand for -details")

	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "time limit for benchmark runs")
	fs.IntVar(&cfg.BenchSize, "bench-size", DefaultBenchSize, "largest input size for benchmark probes")
	fs.IntVar(&cfg.BenchWorkers, "bench-workers", 0, "concurrent benchmark probes (0 = adaptive)")
}

// printUsage writes the full usage text, including the environment variable
// resolution chain.
func printUsage(fs *flag.FlagSet, programName string, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options]\n\n", programName)
	fmt.Fprintf(w, "calckit is a calculation toolkit: an accumulator calculator, sequence\n")
	fmt.Fprintf(w, "generation, aggregation, text utilities and descriptive statistics,\n")
	fmt.Fprintf(w, "exposed through a demo run (default), a REPL, a TUI workbench and a\n")
	fmt.Fprintf(w, "benchmark mode.\n\nOptions:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  Every flag can be preset via a %s* variable, for example\n", EnvPrefix)
	fmt.Fprintf(w, "  %sTHEME=light or %sTIMEOUT=30s. Explicit flags win.\n", EnvPrefix, EnvPrefix)
}

// Validate checks cross-field constraints. It returns a ConfigError naming
// the offending parameter so the caller can exit with the config error code.
func Validate(cfg AppConfig) error {
	modes := 0
	for _, set := range []bool{cfg.REPL, cfg.TUI, cfg.Bench} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("choose at most one of -repl, -tui and -bench")
	}
	if cfg.Completion != "" && !isSupportedShell(cfg.Completion) {
		return apperrors.NewConfigError("unsupported completion shell %q (expected bash, zsh, fish or powershell)", cfg.Completion)
	}
	if !ui.IsValidTheme(cfg.Theme) {
		return apperrors.NewConfigError("unknown theme %q (expected dark, light, orange or none)", cfg.Theme)
	}
	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("cannot combine -quiet with -verbose")
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %v", cfg.Timeout)
	}
	if cfg.BenchSize < 1 {
		return apperrors.NewConfigError("bench-size must be at least 1, got %d", cfg.BenchSize)
	}
	if cfg.BenchWorkers < 0 {
		return apperrors.NewConfigError("bench-workers cannot be negative, got %d", cfg.BenchWorkers)
	}
	return nil
}

func isSupportedShell(name string) bool {
	for _, s := range supportedShells {
		if s == name {
			return true
		}
	}
	return false
}
