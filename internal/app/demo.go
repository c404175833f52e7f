package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/calckit/aggregate"
	"github.com/agbru/calckit/calc"
	"github.com/agbru/calckit/internal/cli"
	apperrors "github.com/agbru/calckit/internal/errors"
	"github.com/agbru/calckit/internal/format"
	"github.com/agbru/calckit/internal/logging"
	"github.com/agbru/calckit/internal/ui"
	"github.com/agbru/calckit/sequence"
	"github.com/agbru/calckit/stats"
	"github.com/agbru/calckit/textutil"
)

// runDemo walks every library package through a fixed script: accumulator
// arithmetic, sequence generation, aggregation, the text utilities and
// descriptive statistics. It is the default mode when no mode flag is given.
func (a *Application) runDemo(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintBanner(out, "🧮 CalcKit - Library Demo")
		cli.PrintSessionConfig(a.Config, out)
	}

	sections := []struct {
		name string
		run  func(io.Writer) error
	}{
		{"calculator", a.demoCalculator},
		{"fibonacci", a.demoFibonacci},
		{"aggregation", a.demoAggregation},
		{"reverse", a.demoReverse},
		{"frequency", a.demoFrequency},
		{"statistics", a.demoStatistics},
	}

	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitCodeFromError(err)
		}
		a.Logger.Debug("demo section", logging.String("section", section.name))
		if err := section.run(out); err != nil {
			a.Logger.Error("demo section failed", err, logging.String("section", section.name))
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitCodeFromError(err)
		}
	}

	if a.Config.Details {
		a.printDetails(out)
	}
	return apperrors.ExitSuccess
}

// printSection writes a demo section header.
func printSection(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s=== %s ===%s\n", ui.ColorPrimary(), title, ui.ColorReset())
}

// printOperation writes one arithmetic result line.
func printOperation(out io.Writer, expr string, result float64) {
	fmt.Fprintf(out, "  %s = %s%s%s\n",
		expr, ui.ColorBold(), format.FormatFloat(result), ui.ColorReset())
}

// printMemory writes the accumulator memory line.
func printMemory(out io.Writer, acc *calc.Accumulator) {
	fmt.Fprintf(out, "  Memory: %s%s%s\n",
		ui.ColorInfo(), format.FormatFloat(acc.Memory()), ui.ColorReset())
}

// demoCalculator walks the accumulator through the four operations, showing
// how each result lands in memory and what a rejected call leaves behind.
func (a *Application) demoCalculator(out io.Writer) error {
	acc := new(calc.Accumulator)
	quiet := a.Config.Quiet

	if !quiet {
		printSection(out, "Calculator")
	}

	steps := []struct {
		expr string
		op   string
		run  func() (float64, error)
	}{
		{"5 + 3", "add", func() (float64, error) { return acc.Add(5, 3), nil }},
		{"10 * 4", "mul", func() (float64, error) { return acc.Multiply(10, 4), nil }},
		{"9 - 2.5", "sub", func() (float64, error) { return acc.Subtract(9, 2.5), nil }},
		{"10 / 4", "div", func() (float64, error) { return acc.Divide(10, 4) }},
	}
	for _, step := range steps {
		start := time.Now()
		result, err := step.run()
		a.Recorder.Observe(step.op, time.Since(start), err)
		if err != nil {
			return err
		}
		if quiet {
			cli.DisplayQuietValue(out, format.FormatFloat(result))
			continue
		}
		printOperation(out, step.expr, result)
		printMemory(out, acc)
	}

	if quiet {
		return nil
	}

	// A rejected division reports its error and leaves memory untouched.
	start := time.Now()
	_, err := acc.Divide(1, 0)
	a.Recorder.Observe("div", time.Since(start), err)
	fmt.Fprintf(out, "  1 / 0 = %sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	printMemory(out, acc)

	acc.ClearMemory()
	fmt.Fprintf(out, "  %sMemory cleared.%s\n", ui.ColorSuccess(), ui.ColorReset())
	printMemory(out, acc)
	return nil
}

// demoFibonacci generates the first fifteen sequence terms.
func (a *Application) demoFibonacci(out io.Writer) error {
	if !a.Config.Quiet {
		printSection(out, "Fibonacci")
	}

	start := time.Now()
	terms, err := sequence.Fibonacci(15)
	a.Recorder.Observe("fib", time.Since(start), err)
	if err != nil {
		return err
	}
	cli.DisplaySequence(out, terms, a.Config.Quiet)
	return nil
}

// demoAggregation summarizes a small collection of readings.
func (a *Application) demoAggregation(out io.Writer) error {
	values := []float64{1.5, 2.7, 3.2, 4.8, 5.1}

	if !a.Config.Quiet {
		printSection(out, "Aggregation")
		fmt.Fprintf(out, "  Input: %v\n", values)
	}

	start := time.Now()
	summary, err := aggregate.Summarize(values)
	a.Recorder.Observe("agg", time.Since(start), err)
	if err != nil {
		return err
	}
	cli.DisplaySummary(out, summary, len(values), a.Config.Quiet)
	return nil
}

// demoReverse reverses a short text by code points.
func (a *Application) demoReverse(out io.Writer) error {
	const text = "Hello, World!"

	if !a.Config.Quiet {
		printSection(out, "String Reversal")
		fmt.Fprintf(out, "  Original: %q\n", text)
	}

	start := time.Now()
	reversed := textutil.Reverse(text)
	a.Recorder.Observe("reverse", time.Since(start), nil)
	cli.DisplayReversed(out, reversed, a.Config.Quiet)
	return nil
}

// demoFrequency counts word occurrences in a sentence, most frequent first.
func (a *Application) demoFrequency(out io.Writer) error {
	const text = "the quick brown fox jumps over the lazy dog the fox"

	if !a.Config.Quiet {
		printSection(out, "Word Frequency")
		fmt.Fprintf(out, "  Text: %q\n", text)
	}

	start := time.Now()
	freqs := textutil.WordFrequency(text)
	a.Recorder.Observe("freq", time.Since(start), nil)
	cli.DisplayFrequencies(out, freqs, 0, a.Config.Quiet)
	return nil
}

// demoStatistics analyzes a dataset and filters its outlier.
func (a *Application) demoStatistics(out io.Writer) error {
	data := []float64{10, 12, 15, 17, 18, 20, 22, 100} // 100 is the outlier

	if !a.Config.Quiet {
		printSection(out, "Statistics")
		fmt.Fprintf(out, "  Data: %v\n", data)
	}

	start := time.Now()
	dataset, err := stats.New(data)
	a.Recorder.Observe("stats", time.Since(start), err)
	if err != nil {
		return err
	}
	cli.DisplayStats(out, dataset, a.Config.Quiet)

	start = time.Now()
	kept, err := dataset.FilterOutliers(2.0)
	a.Recorder.Observe("outliers", time.Since(start), err)
	if err != nil {
		return err
	}
	cli.DisplayFiltered(out, kept, dataset.Len(), 2.0, a.Config.Quiet)
	return nil
}
