package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/calckit/aggregate"
	"github.com/agbru/calckit/calc"
	"github.com/agbru/calckit/internal/bench"
	"github.com/agbru/calckit/internal/cli"
	"github.com/agbru/calckit/internal/config"
	apperrors "github.com/agbru/calckit/internal/errors"
	"github.com/agbru/calckit/internal/format"
	"github.com/agbru/calckit/internal/logging"
	"github.com/agbru/calckit/internal/metrics"
	"github.com/agbru/calckit/internal/ui"
	"github.com/agbru/calckit/sequence"
	"github.com/agbru/calckit/stats"
	"github.com/agbru/calckit/textutil"
)

// frequencyDisplayLimit caps the rows shown by the freq command.
const frequencyDisplayLimit = 10

// session is the command engine behind the workbench input line. It speaks
// the same grammar as the line-oriented session and owns the same state: a
// persistent accumulator and the most recently loaded dataset. Commands run
// one at a time from a bubbletea command, so no locking is needed.
type session struct {
	acc      *calc.Accumulator
	dataset  *stats.Dataset
	recorder *metrics.Recorder
	logger   logging.Logger
	timeout  time.Duration
	verbose  bool
	benchCfg bench.Config
}

// newSession creates the engine from the application configuration.
func newSession(cfg config.AppConfig, recorder *metrics.Recorder, logger logging.Logger) *session {
	return &session{
		acc:      new(calc.Accumulator),
		recorder: recorder,
		logger:   logger,
		timeout:  cfg.Timeout,
		verbose:  cfg.Verbose,
		benchCfg: bench.Config{Size: cfg.BenchSize, Workers: cfg.BenchWorkers},
	}
}

// eval executes one command line and returns its rendered output. The
// second return value reports whether the command asked to leave the
// workbench.
func (s *session) eval(ctx context.Context, input string) (string, bool) {
	var out bytes.Buffer
	quit := s.dispatch(ctx, &out, strings.TrimSpace(input))
	return out.String(), quit
}

// observe records one executed operation and returns its duration.
func (s *session) observe(op string, start time.Time, err error) time.Duration {
	d := time.Since(start)
	s.recorder.Observe(op, d, err)
	return d
}

// fail prints an operation error in the session's error color.
func (s *session) fail(out io.Writer, err error) {
	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
}

// dispatch parses and executes a command line. Returns true when the
// command asked to quit.
func (s *session) dispatch(ctx context.Context, out io.Writer, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	// Raw remainder, preserving inner whitespace for the text commands.
	rest := strings.TrimSpace(input[len(parts[0]):])

	switch cmd {
	case "add", "+":
		s.evalArith(out, "add", "+", args)
	case "sub", "-":
		s.evalArith(out, "sub", "-", args)
	case "mul", "*":
		s.evalArith(out, "mul", "*", args)
	case "div", "/":
		s.evalArith(out, "div", "/", args)
	case "mem", "m":
		fmt.Fprintf(out, "Memory: %s%s%s\n",
			ui.ColorBold(), format.FormatFloat(s.acc.Memory()), ui.ColorReset())
	case "clear", "cls":
		s.acc.ClearMemory()
		fmt.Fprintf(out, "%sMemory cleared.%s\n", ui.ColorSuccess(), ui.ColorReset())
	case "fib", "f":
		s.evalFib(out, args)
	case "term", "t":
		s.evalTerm(out, args)
	case "agg":
		s.evalAggregate(out, args)
	case "stats", "st":
		s.evalStats(out, args)
	case "outliers", "ol":
		s.evalOutliers(out, args)
	case "reverse", "rev":
		s.evalReverse(out, rest)
	case "freq":
		s.evalFrequency(out, rest)
	case "bench":
		s.evalBench(ctx, out)
	case "metrics", "met":
		if err := s.recorder.Render(out); err != nil {
			s.fail(out, err)
		}
	case "theme":
		s.evalTheme(out, args)
	case "verbose":
		s.verbose = !s.verbose
		status := "disabled"
		if s.verbose {
			status = "enabled"
		}
		fmt.Fprintf(out, "Full value display: %s%s%s\n", ui.ColorSuccess(), status, ui.ColorReset())
	case "status":
		s.evalStatus(out)
	case "help", "h", "?":
		s.printHelp(out)
	case "exit", "quit", "q":
		fmt.Fprintf(out, "%sGoodbye!%s\n", ui.ColorSuccess(), ui.ColorReset())
		return true
	default:
		// A bare number is a shortcut for "term <n>".
		if _, err := strconv.ParseUint(cmd, 10, 64); err == nil {
			s.evalTerm(out, []string{cmd})
		} else {
			fmt.Fprintf(out, "%sUnknown command: %s%s\n", ui.ColorError(), cmd, ui.ColorReset())
			fmt.Fprintf(out, "Type %shelp%s to see available commands.\n", ui.ColorWarning(), ui.ColorReset())
		}
	}

	return false
}

// printHelp displays available commands and the workbench keys.
func (s *session) printHelp(out io.Writer) {
	fmt.Fprintf(out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  %sadd|sub|mul|div <a> <b>%s - Arithmetic; the result lands in memory\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %smem%s / %sclear%s           - Show or reset the accumulator memory\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sfib <n>%s                 - Generate the first n Fibonacci terms\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sterm <n> [m]%s            - Exact F(n), optionally reduced mod m\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sagg <v1> <v2> ...%s       - Sum, min and max of the values\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sstats <v1> <v2> ...%s     - Mean, median and std dev; fills the dataset panel\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %soutliers <k>%s            - Filter the loaded dataset to mean ± k·σ\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sreverse <text>%s          - Reverse text by code points\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sfreq <text>%s             - Count word occurrences\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sbench%s                   - Run the operation benchmark probes\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %smetrics%s                 - Dump session metrics\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %stheme <name>%s            - Switch color theme (%s)\n", ui.ColorWarning(), ui.ColorReset(), strings.Join(ui.ValidThemes(), ", "))
	fmt.Fprintf(out, "  %sverbose%s                 - Toggle full value display\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sstatus%s                  - Display current configuration\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %shelp%s                    - Display this help\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "  %sexit%s / %squit%s             - Leave the workbench\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(out, "%sKeys:%s pgup/pgdn scroll results, up/down recall history, ctrl+l clear, f1 help, esc quit\n",
		ui.ColorBold(), ui.ColorReset())
}

// parseFloats converts each argument to a float64.
func (s *session) parseFloats(out io.Writer, args []string) ([]float64, bool) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(out, "%sInvalid number: %s%s\n", ui.ColorError(), arg, ui.ColorReset())
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// evalArith handles the four arithmetic commands. Every successful
// operation overwrites the accumulator memory with its result.
func (s *session) evalArith(out io.Writer, op, symbol string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(out, "%sUsage: %s <a> <b>%s\n", ui.ColorError(), op, ui.ColorReset())
		return
	}
	operands, ok := s.parseFloats(out, args)
	if !ok {
		return
	}
	a, b := operands[0], operands[1]

	start := time.Now()
	var result float64
	var err error
	switch op {
	case "add":
		result = s.acc.Add(a, b)
	case "sub":
		result = s.acc.Subtract(a, b)
	case "mul":
		result = s.acc.Multiply(a, b)
	case "div":
		result, err = s.acc.Divide(a, b)
	}
	s.observe(op, start, err)

	if err != nil {
		s.fail(out, err)
		return
	}
	fmt.Fprintf(out, "%s %s %s = %s%s%s\n",
		format.FormatFloat(a), symbol, format.FormatFloat(b),
		ui.ColorBold(), format.FormatFloat(result), ui.ColorReset())
}

// evalFib handles the "fib" command.
func (s *session) evalFib(out io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(out, "%sUsage: fib <n>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(out, "%sInvalid value: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	start := time.Now()
	terms, err := sequence.Fibonacci(n)
	s.observe("fib", start, err)
	if err != nil {
		s.fail(out, err)
		return
	}
	cli.DisplaySequence(out, terms, false)
}

// evalTerm handles the "term" command: an exact Fibonacci term, with an
// optional second argument reducing it modulo m. The workbench computes
// inline; the busy indicator in the input row covers long calculations.
func (s *session) evalTerm(out io.Writer, args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintf(out, "%sUsage: term <n> [modulus]%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(out, "%sInvalid value: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	var modulus *big.Int
	if len(args) == 2 {
		m, ok := new(big.Int).SetString(args[1], 10)
		if !ok {
			fmt.Fprintf(out, "%sInvalid modulus: %s%s\n", ui.ColorError(), args[1], ui.ColorReset())
			return
		}
		modulus = m
	}

	var value *big.Int
	start := time.Now()
	if modulus != nil {
		value, err = sequence.TermMod(n, modulus)
	} else {
		value = sequence.Term(n)
	}
	duration := s.observe("term", start, err)

	if err != nil {
		s.fail(out, err)
		return
	}
	cli.DisplayBigTerm(out, n, modulus, value, duration, s.verbose, false)
}

// evalAggregate handles the "agg" command.
func (s *session) evalAggregate(out io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(out, "%sUsage: agg <v1> <v2> ...%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	values, ok := s.parseFloats(out, args)
	if !ok {
		return
	}

	start := time.Now()
	summary, err := aggregate.Summarize(values)
	s.observe("agg", start, err)
	if err != nil {
		s.fail(out, err)
		return
	}
	cli.DisplaySummary(out, summary, len(values), false)
}

// evalStats handles the "stats" command. With arguments it loads a new
// dataset; without arguments it re-displays the loaded one.
func (s *session) evalStats(out io.Writer, args []string) {
	if len(args) == 0 {
		if s.dataset == nil {
			fmt.Fprintf(out, "%sUsage: stats <v1> <v2> ...%s\n", ui.ColorError(), ui.ColorReset())
			return
		}
		cli.DisplayStats(out, s.dataset, false)
		return
	}

	values, ok := s.parseFloats(out, args)
	if !ok {
		return
	}

	start := time.Now()
	dataset, err := stats.New(values)
	s.observe("stats", start, err)
	if err != nil {
		s.fail(out, err)
		return
	}
	s.dataset = dataset
	cli.DisplayStats(out, dataset, false)
}

// evalOutliers handles the "outliers" command against the loaded dataset.
func (s *session) evalOutliers(out io.Writer, args []string) {
	if s.dataset == nil {
		fmt.Fprintf(out, "%sNo dataset loaded. Run 'stats <values>' first.%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	if len(args) != 1 {
		fmt.Fprintf(out, "%sUsage: outliers <k>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	k, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(out, "%sInvalid tolerance: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	start := time.Now()
	kept, err := s.dataset.FilterOutliers(k)
	s.observe("outliers", start, err)
	if err != nil {
		s.fail(out, err)
		return
	}
	cli.DisplayFiltered(out, kept, s.dataset.Len(), k, false)
}

// evalReverse handles the "reverse" command over the raw remainder of the
// line, so inner whitespace survives.
func (s *session) evalReverse(out io.Writer, text string) {
	if text == "" {
		fmt.Fprintf(out, "%sUsage: reverse <text>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	start := time.Now()
	reversed := textutil.Reverse(text)
	s.observe("reverse", start, nil)
	cli.DisplayReversed(out, reversed, false)
}

// evalFrequency handles the "freq" command over the raw remainder of the
// line.
func (s *session) evalFrequency(out io.Writer, text string) {
	if text == "" {
		fmt.Fprintf(out, "%sUsage: freq <text>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	start := time.Now()
	freqs := textutil.WordFrequency(text)
	s.observe("freq", start, nil)
	cli.DisplayFrequencies(out, freqs, frequencyDisplayLimit, false)
}

// evalBench runs the benchmark probes under the session timeout. No spinner
// here: the report lands in the results pane when the run finishes.
func (s *session) evalBench(ctx context.Context, out io.Writer) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	results, err := bench.Run(ctx, s.benchCfg, s.recorder, s.logger)
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError{Operation: "bench", Limit: s.timeout}
	}
	s.observe("bench", start, err)
	if err != nil {
		s.fail(out, err)
		return
	}
	bench.WriteReport(out, results)
}

// evalTheme switches the color theme and rebuilds the workbench styles so
// the new palette applies to the panels immediately.
func (s *session) evalTheme(out io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(out, "%sUsage: theme <name>%s\n", ui.ColorError(), ui.ColorReset())
		fmt.Fprintf(out, "Available themes: %s\n", strings.Join(ui.ValidThemes(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	if !ui.IsValidTheme(name) {
		fmt.Fprintf(out, "%sUnknown theme: %s%s\n", ui.ColorError(), name, ui.ColorReset())
		fmt.Fprintf(out, "Available themes: %s\n", strings.Join(ui.ValidThemes(), ", "))
		return
	}

	ui.SetTheme(name)
	initTUIStyles()
	fmt.Fprintf(out, "Theme changed to: %s%s%s\n", ui.ColorSuccess(), name, ui.ColorReset())
}

// evalStatus displays the current session configuration.
func (s *session) evalStatus(out io.Writer) {
	fmt.Fprintf(out, "%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Timeout:        %s%s%s\n", ui.ColorInfo(), s.timeout, ui.ColorReset())
	verboseStatus := "no"
	if s.verbose {
		verboseStatus = "yes"
	}
	fmt.Fprintf(out, "  Verbose:        %s%s%s\n", ui.ColorInfo(), verboseStatus, ui.ColorReset())
	fmt.Fprintf(out, "  Bench size:     %s%s%s\n", ui.ColorInfo(), format.FormatCount(s.benchCfg.Size), ui.ColorReset())
	fmt.Fprintf(out, "  Bench workers:  %s%d%s\n", ui.ColorInfo(), s.benchCfg.Workers, ui.ColorReset())
	fmt.Fprintf(out, "  Memory:         %s%s%s\n", ui.ColorInfo(), format.FormatFloat(s.acc.Memory()), ui.ColorReset())
	if s.dataset != nil {
		fmt.Fprintf(out, "  Dataset:        %s%d values%s\n", ui.ColorInfo(), s.dataset.Len(), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "  Dataset:        %snone%s\n", ui.ColorInfo(), ui.ColorReset())
	}
}
