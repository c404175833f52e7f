// Package cli provides the interactive session (Read-Eval-Print Loop) and
// the terminal presentation layer for calculator, sequence, text and
// statistics operations.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/calckit/aggregate"
	"github.com/agbru/calckit/calc"
	"github.com/agbru/calckit/internal/bench"
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

// REPLConfig holds configuration for the interactive session.
type REPLConfig struct {
	// Timeout is the maximum duration for a benchmark run.
	Timeout time.Duration
	// Verbose displays full values instead of truncating large ones.
	Verbose bool
	// BenchSize is the workload size passed to benchmark probes.
	BenchSize int
	// BenchWorkers is the number of concurrent benchmark probes.
	BenchWorkers int
}

// REPL represents an interactive calculator session. It owns a persistent
// accumulator whose memory survives across commands, and retains the most
// recently loaded dataset for follow-up statistics commands.
type REPL struct {
	config   REPLConfig
	acc      *calc.Accumulator
	dataset  *stats.Dataset
	recorder *metrics.Recorder
	logger   logging.Logger
	in       io.Reader
	out      io.Writer
}

// NewREPL creates a new interactive session.
//
// Parameters:
//   - config: Session configuration.
//   - recorder: Destination for per-command operation metrics.
//   - logger: Destination for diagnostic logging.
//
// Returns:
//   - *REPL: A new session reading from stdin and writing to stdout.
func NewREPL(config REPLConfig, recorder *metrics.Recorder, logger logging.Logger) *REPL {
	return &REPL{
		config:   config,
		acc:      new(calc.Accumulator),
		recorder: recorder,
		logger:   logger,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user input
// and processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.recorder.SessionStarted()
	defer r.recorder.SessionEnded()
	r.logger.Info("interactive session started")

	PrintBanner(r.out, "🧮 CalcKit - Interactive Mode")
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorSuccess()+"calc> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sadd|sub|mul|div <a> <b>%s - Arithmetic; the result lands in memory\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smem%s / %sclear%s           - Show or reset the accumulator memory\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfib <n>%s                 - Generate the first n Fibonacci terms\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sterm <n> [m]%s            - Exact F(n), optionally reduced mod m\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sagg <v1> <v2> ...%s       - Sum, min and max of the values\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstats <v1> <v2> ...%s     - Mean, median and std dev; loads the dataset\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %soutliers <k>%s            - Filter the loaded dataset to mean ± k·σ\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sreverse <text>%s          - Reverse text by code points\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfreq <text>%s             - Count word occurrences\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbench%s                   - Run the operation benchmark probes\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smetrics%s                 - Dump session metrics\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stheme <name>%s            - Switch color theme (%s)\n", ui.ColorWarning(), ui.ColorReset(), strings.Join(ui.ValidThemes(), ", "))
	fmt.Fprintf(r.out, "  %sverbose%s                 - Toggle full value display\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s                  - Display current configuration\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s                    - Display this help\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s             - Leave the session\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
}

// observe records one executed operation and returns its duration.
func (r *REPL) observe(op string, start time.Time, err error) time.Duration {
	d := time.Since(start)
	r.recorder.Observe(op, d, err)
	return d
}

// fail prints an operation error in the session's error color.
func (r *REPL) fail(err error) {
	fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the session should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	// Raw remainder, preserving inner whitespace for the text commands.
	rest := strings.TrimSpace(input[len(parts[0]):])

	r.logger.Debug("command dispatched", logging.String("cmd", cmd))

	switch cmd {
	case "add", "+":
		r.cmdArith("add", "+", args)
	case "sub", "-":
		r.cmdArith("sub", "-", args)
	case "mul", "*":
		r.cmdArith("mul", "*", args)
	case "div", "/":
		r.cmdArith("div", "/", args)
	case "mem", "m":
		r.cmdMemory()
	case "clear", "cls":
		r.cmdClear()
	case "fib", "f":
		r.cmdFib(args)
	case "term", "t":
		r.cmdTerm(args)
	case "agg":
		r.cmdAggregate(args)
	case "stats", "st":
		r.cmdStats(args)
	case "outliers", "ol":
		r.cmdOutliers(args)
	case "reverse", "rev":
		r.cmdReverse(rest)
	case "freq":
		r.cmdFrequency(rest)
	case "bench":
		r.cmdBench()
	case "metrics", "met":
		r.cmdMetrics()
	case "theme":
		r.cmdTheme(args)
	case "verbose":
		r.cmdVerbose()
	case "status":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorSuccess(), ui.ColorReset())
		return false
	default:
		// A bare number is a shortcut for "term <n>".
		if _, err := strconv.ParseUint(cmd, 10, 64); err == nil {
			r.cmdTerm([]string{cmd})
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorError(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorWarning(), ui.ColorReset())
		}
	}

	return true
}

// parseFloats converts each argument to a float64.
func (r *REPL) parseFloats(args []string) ([]float64, bool) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid number: %s%s\n", ui.ColorError(), arg, ui.ColorReset())
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// cmdArith handles the four arithmetic commands. Every successful
// operation overwrites the accumulator memory with its result.
func (r *REPL) cmdArith(op, symbol string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: %s <a> <b>%s\n", ui.ColorError(), op, ui.ColorReset())
		return
	}
	operands, ok := r.parseFloats(args)
	if !ok {
		return
	}
	a, b := operands[0], operands[1]

	start := time.Now()
	var result float64
	var err error
	switch op {
	case "add":
		result = r.acc.Add(a, b)
	case "sub":
		result = r.acc.Subtract(a, b)
	case "mul":
		result = r.acc.Multiply(a, b)
	case "div":
		result, err = r.acc.Divide(a, b)
	}
	r.observe(op, start, err)

	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintf(r.out, "%s %s %s = %s%s%s\n",
		format.FormatFloat(a), symbol, format.FormatFloat(b),
		ui.ColorBold(), format.FormatFloat(result), ui.ColorReset())
}

// cmdMemory shows the accumulator memory.
func (r *REPL) cmdMemory() {
	fmt.Fprintf(r.out, "Memory: %s%s%s\n",
		ui.ColorBold(), format.FormatFloat(r.acc.Memory()), ui.ColorReset())
}

// cmdClear resets the accumulator memory.
func (r *REPL) cmdClear() {
	r.acc.ClearMemory()
	fmt.Fprintf(r.out, "%sMemory cleared.%s\n", ui.ColorSuccess(), ui.ColorReset())
}

// cmdFib handles the "fib" command.
func (r *REPL) cmdFib(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: fib <n>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	// Negative values parse fine and surface the generator's own error.
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	start := time.Now()
	terms, err := sequence.Fibonacci(n)
	r.observe("fib", start, err)
	if err != nil {
		r.fail(err)
		return
	}
	DisplaySequence(r.out, terms, false)
}

// cmdTerm handles the "term" command: an exact Fibonacci term, with an
// optional second argument reducing it modulo m.
func (r *REPL) cmdTerm(args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintf(r.out, "%sUsage: term <n> [modulus]%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	var modulus *big.Int
	if len(args) == 2 {
		m, ok := new(big.Int).SetString(args[1], 10)
		if !ok {
			fmt.Fprintf(r.out, "%sInvalid modulus: %s%s\n", ui.ColorError(), args[1], ui.ColorReset())
			return
		}
		modulus = m
	}

	var value *big.Int
	start := time.Now()
	err = runWithSpinner(r.out, fmt.Sprintf("Computing F(%d)...", n), func() error {
		if modulus != nil {
			var modErr error
			value, modErr = sequence.TermMod(n, modulus)
			return modErr
		}
		value = sequence.Term(n)
		return nil
	})
	duration := r.observe("term", start, err)

	if err != nil {
		r.fail(err)
		return
	}
	DisplayBigTerm(r.out, n, modulus, value, duration, r.config.Verbose, false)
}

// cmdAggregate handles the "agg" command.
func (r *REPL) cmdAggregate(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: agg <v1> <v2> ...%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	values, ok := r.parseFloats(args)
	if !ok {
		return
	}

	start := time.Now()
	summary, err := aggregate.Summarize(values)
	r.observe("agg", start, err)
	if err != nil {
		r.fail(err)
		return
	}
	DisplaySummary(r.out, summary, len(values), false)
}

// cmdStats handles the "stats" command. With arguments it loads a new
// dataset; without arguments it re-displays the loaded one.
func (r *REPL) cmdStats(args []string) {
	if len(args) == 0 {
		if r.dataset == nil {
			fmt.Fprintf(r.out, "%sUsage: stats <v1> <v2> ...%s\n", ui.ColorError(), ui.ColorReset())
			return
		}
		DisplayStats(r.out, r.dataset, false)
		return
	}

	values, ok := r.parseFloats(args)
	if !ok {
		return
	}

	start := time.Now()
	dataset, err := stats.New(values)
	r.observe("stats", start, err)
	if err != nil {
		r.fail(err)
		return
	}
	r.dataset = dataset
	DisplayStats(r.out, dataset, false)
}

// cmdOutliers handles the "outliers" command against the loaded dataset.
func (r *REPL) cmdOutliers(args []string) {
	if r.dataset == nil {
		fmt.Fprintf(r.out, "%sNo dataset loaded. Run 'stats <values>' first.%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: outliers <k>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	// Negative tolerances parse fine and surface the filter's own error.
	k, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid tolerance: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	start := time.Now()
	kept, err := r.dataset.FilterOutliers(k)
	r.observe("outliers", start, err)
	if err != nil {
		r.fail(err)
		return
	}
	DisplayFiltered(r.out, kept, r.dataset.Len(), k, false)
}

// cmdReverse handles the "reverse" command over the raw remainder of the
// line, so inner whitespace survives.
func (r *REPL) cmdReverse(text string) {
	if text == "" {
		fmt.Fprintf(r.out, "%sUsage: reverse <text>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	start := time.Now()
	reversed := textutil.Reverse(text)
	r.observe("reverse", start, nil)
	DisplayReversed(r.out, reversed, false)
}

// cmdFrequency handles the "freq" command over the raw remainder of the
// line.
func (r *REPL) cmdFrequency(text string) {
	if text == "" {
		fmt.Fprintf(r.out, "%sUsage: freq <text>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	start := time.Now()
	freqs := textutil.WordFrequency(text)
	r.observe("freq", start, nil)
	DisplayFrequencies(r.out, freqs, frequencyDisplayLimit, false)
}

// cmdBench runs the benchmark probes under the session timeout.
func (r *REPL) cmdBench() {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	cfg := bench.Config{Size: r.config.BenchSize, Workers: r.config.BenchWorkers}

	start := time.Now()
	err := RunBenchWithSpinner(ctx, cfg, r.config.Timeout, r.recorder, r.logger, r.out)
	r.observe("bench", start, err)
	if err != nil {
		r.fail(err)
	}
}

// cmdMetrics dumps the session metrics in text exposition format.
func (r *REPL) cmdMetrics() {
	if err := r.recorder.Render(r.out); err != nil {
		r.fail(err)
	}
}

// cmdTheme switches the color theme.
func (r *REPL) cmdTheme(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: theme <name>%s\n", ui.ColorError(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available themes: %s\n", strings.Join(ui.ValidThemes(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	if !ui.IsValidTheme(name) {
		fmt.Fprintf(r.out, "%sUnknown theme: %s%s\n", ui.ColorError(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available themes: %s\n", strings.Join(ui.ValidThemes(), ", "))
		return
	}

	ui.SetTheme(name)
	fmt.Fprintf(r.out, "Theme changed to: %s%s%s\n", ui.ColorSuccess(), name, ui.ColorReset())
}

// cmdVerbose toggles full value display.
func (r *REPL) cmdVerbose() {
	r.config.Verbose = !r.config.Verbose
	status := "disabled"
	if r.config.Verbose {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Full value display: %s%s%s\n", ui.ColorSuccess(), status, ui.ColorReset())
}

// cmdStatus displays the current session configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:        %s%s%s\n", ui.ColorInfo(), r.config.Timeout, ui.ColorReset())
	verboseStatus := "no"
	if r.config.Verbose {
		verboseStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Verbose:        %s%s%s\n", ui.ColorInfo(), verboseStatus, ui.ColorReset())
	fmt.Fprintf(r.out, "  Bench size:     %s%s%s\n", ui.ColorInfo(), format.FormatCount(r.config.BenchSize), ui.ColorReset())
	fmt.Fprintf(r.out, "  Bench workers:  %s%d%s\n", ui.ColorInfo(), r.config.BenchWorkers, ui.ColorReset())
	fmt.Fprintf(r.out, "  Memory:         %s%s%s\n", ui.ColorInfo(), format.FormatFloat(r.acc.Memory()), ui.ColorReset())
	if r.dataset != nil {
		fmt.Fprintf(r.out, "  Dataset:        %s%d values%s\n", ui.ColorInfo(), r.dataset.Len(), ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "  Dataset:        %snone%s\n", ui.ColorInfo(), ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}
