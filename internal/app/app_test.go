package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/agbru/calckit/internal/config"
	apperrors "github.com/agbru/calckit/internal/errors"
	"github.com/agbru/calckit/internal/logging"
	"github.com/agbru/calckit/internal/metrics"
	"github.com/rs/zerolog"
)

// mustContain fails the test for every want missing from output.
func mustContain(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, output)
		}
	}
}

// runApp builds an application from args and runs it against buffers.
func runApp(t *testing.T, opts []AppOption, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var errBuf bytes.Buffer
	application, err := New(append([]string{"calckit"}, args...), &errBuf, opts...)
	if err != nil {
		t.Fatalf("New(%v) error = %v", args, err)
	}

	var out bytes.Buffer
	code = application.Run(context.Background(), &out)
	return out.String(), errBuf.String(), code
}

func TestNew_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	application, err := New([]string{"calckit"}, &errBuf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if application.Config.Theme != config.DefaultTheme {
		t.Errorf("Theme = %q, want %q", application.Config.Theme, config.DefaultTheme)
	}
	if application.Config.Timeout != config.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", application.Config.Timeout, config.DefaultTimeout)
	}
	if application.Config.BenchSize != config.DefaultBenchSize {
		t.Errorf("BenchSize = %d, want %d", application.Config.BenchSize, config.DefaultBenchSize)
	}
	if application.Config.BenchWorkers < 1 {
		t.Errorf("BenchWorkers = %d, want an adaptive value >= 1", application.Config.BenchWorkers)
	}
	if application.Recorder == nil {
		t.Error("Recorder not initialized")
	}
	if application.Logger == nil {
		t.Error("Logger not initialized")
	}
}

func TestNew_EmptyArgs(t *testing.T) {
	application, err := New(nil, io.Discard)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if application.Config.Theme != config.DefaultTheme {
		t.Errorf("Theme = %q, want default", application.Config.Theme)
	}
}

func TestNew_Help(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"calckit", "--help"}, &errBuf)
	if err == nil {
		t.Fatal("expected a help error")
	}
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false, want true", err)
	}
	mustContain(t, errBuf.String(), "Usage:", "-repl", "Environment:")
}

func TestNew_ConfigConflict(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"calckit", "-repl", "-tui"}, &errBuf)
	if err == nil {
		t.Fatal("expected a config error")
	}
	if IsHelpError(err) {
		t.Error("conflict reported as help error")
	}
	if got := apperrors.ExitCodeFromError(err); got != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", got, apperrors.ExitErrorConfig)
	}
}

func TestNew_UnknownFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"calckit", "-definitely-not-a-flag"}, &errBuf)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if IsHelpError(err) {
		t.Error("parse error reported as help error")
	}
	if got := apperrors.ExitCodeFromError(err); got != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", got, apperrors.ExitErrorGeneric)
	}
}

func TestNew_Options(t *testing.T) {
	rec := metrics.NewRecorder()
	logger := logging.NewLogger(io.Discard, "app-test")
	in := strings.NewReader("")

	application, err := New([]string{"calckit"}, io.Discard,
		WithRecorder(rec), WithLogger(logger), WithInput(in))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if application.Recorder != rec {
		t.Error("WithRecorder not applied")
	}
	if application.Logger != logger {
		t.Error("WithLogger not applied")
	}
	if application.In != in {
		t.Error("WithInput not applied")
	}
}

func TestIsHelpError(t *testing.T) {
	if !IsHelpError(flag.ErrHelp) {
		t.Error("IsHelpError(flag.ErrHelp) = false")
	}
	if IsHelpError(errors.New("boom")) {
		t.Error("IsHelpError(generic) = true")
	}
	if IsHelpError(nil) {
		t.Error("IsHelpError(nil) = true")
	}
}

func TestConfigureLogLevel(t *testing.T) {
	configureLogLevel(config.AppConfig{Verbose: true})
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("verbose level = %v, want debug", zerolog.GlobalLevel())
	}
	configureLogLevel(config.AppConfig{Quiet: true})
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Errorf("quiet level = %v, want error", zerolog.GlobalLevel())
	}
	configureLogLevel(config.AppConfig{})
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("default level = %v, want info", zerolog.GlobalLevel())
	}
}

func TestRun_Completion(t *testing.T) {
	output, _, code := runApp(t, nil, "-completion", "bash")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	mustContain(t, output, "_calckit_completions", "complete -F")
}

func TestRun_REPLSession(t *testing.T) {
	in := strings.NewReader("add 2 3\nexit\n")
	output, _, code := runApp(t, []AppOption{WithInput(in)}, "-repl", "-theme", "none")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	mustContain(t, output, "Interactive Mode", "2 + 3 = 5", "Goodbye!")
}

func TestRun_BenchMode(t *testing.T) {
	output, _, code := runApp(t, nil,
		"-bench", "-bench-size", "64", "-bench-workers", "2", "-no-color")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	mustContain(t, output,
		"--- Session Configuration ---",
		"Mode: benchmark",
		"--- Benchmark Summary ---",
		"calc.Add",
		"stats.Dataset",
		"(fastest)",
	)
}

func TestRun_BenchQuiet(t *testing.T) {
	output, _, code := runApp(t, nil, "-bench", "-bench-size", "32", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if strings.Contains(output, "Session Configuration") {
		t.Error("quiet bench still prints the session configuration")
	}
	mustContain(t, output, "--- Benchmark Summary ---")
}

func TestRun_BenchDetails(t *testing.T) {
	output, _, code := runApp(t, nil,
		"-bench", "-bench-size", "32", "-details", "-no-color")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	mustContain(t, output,
		"--- Session Metrics ---",
		"calckit_operations_total",
		"Memory Stats:",
		"Heap in use:",
	)
}
