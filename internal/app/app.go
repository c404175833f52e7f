package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/calckit/internal/bench"
	"github.com/agbru/calckit/internal/cli"
	"github.com/agbru/calckit/internal/config"
	apperrors "github.com/agbru/calckit/internal/errors"
	"github.com/agbru/calckit/internal/logging"
	"github.com/agbru/calckit/internal/metrics"
	"github.com/agbru/calckit/internal/tui"
	"github.com/agbru/calckit/internal/ui"
	"github.com/rs/zerolog"
)

// Application represents the calckit application instance.
type Application struct {
	Config    config.AppConfig
	Recorder  *metrics.Recorder
	Logger    logging.Logger
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRecorder sets a custom metrics recorder for the application.
func WithRecorder(r *metrics.Recorder) AppOption {
	return func(a *Application) { a.Recorder = r }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets a custom input stream for the interactive session.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Recorder == nil {
		app.Recorder = metrics.NewRecorder()
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "calckit")
	}

	programName := "calckit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = config.ApplyAdaptiveDefaults(cfg)

	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	configureLogLevel(a.Config)
	a.initTheme()

	// Mirror the recorder into the global OTel meter for the lifetime of
	// the run.
	if reg, err := metrics.RegisterOTelBridge(a.Recorder); err != nil {
		a.Logger.Error("otel bridge registration failed", err)
	} else {
		defer func() { _ = reg.Unregister() }()
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	if a.Config.REPL {
		return a.runREPL(out)
	}
	if a.Config.Bench {
		return a.runBench(ctx, out)
	}
	return a.runDemo(ctx, out)
}

// configureLogLevel maps the verbosity flags onto the global zerolog level.
func configureLogLevel(cfg config.AppConfig) {
	switch {
	case cfg.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case cfg.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// initTheme resolves the active color theme. InitTheme owns the -no-color
// flag and the NO_COLOR environment variable; the named theme applies only
// when colors survived that resolution.
func (a *Application) initTheme() {
	ui.InitTheme(a.Config.NoColor)
	if ui.GetCurrentTheme().Name != "none" {
		ui.SetTheme(a.Config.Theme)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive workbench. No session timeout here: like
// the line-oriented session, the workbench applies Config.Timeout per
// command, not to its own lifetime.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, a.Recorder, a.Logger, Version)
}

// runREPL starts the line-oriented interactive session.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.replConfig(), a.Recorder, a.Logger)
	if a.In != nil {
		repl.SetInput(a.In)
	}
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// replConfig projects the application configuration onto the session.
func (a *Application) replConfig() cli.REPLConfig {
	return cli.REPLConfig{
		Timeout:      a.Config.Timeout,
		Verbose:      a.Config.Verbose,
		BenchSize:    a.Config.BenchSize,
		BenchWorkers: a.Config.BenchWorkers,
	}
}

// runBench executes the benchmark probes under the configured timeout.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintSessionConfig(a.Config, out)
	}

	cfg := bench.Config{Size: a.Config.BenchSize, Workers: a.Config.BenchWorkers}
	if err := cli.RunBenchWithSpinner(ctx, cfg, a.Config.Timeout, a.Recorder, a.Logger, out); err != nil {
		a.Logger.Error("benchmark run failed", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFromError(err)
	}

	if a.Config.Details {
		a.printDetails(out)
	}
	return apperrors.ExitSuccess
}

// printDetails appends the metrics exposition and a memory snapshot, for
// the -details flag.
func (a *Application) printDetails(out io.Writer) {
	fmt.Fprintf(out, "\n--- Session Metrics ---\n")
	if err := a.Recorder.Render(out); err != nil {
		a.Logger.Error("metrics rendering failed", err)
	}
	cli.DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
