package cli

import (
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/agbru/calckit/aggregate"
	"github.com/agbru/calckit/internal/format"
	"github.com/agbru/calckit/internal/metrics"
	"github.com/agbru/calckit/internal/ui"
	"github.com/agbru/calckit/sequence"
	"github.com/agbru/calckit/stats"
)

// DisplaySequence shows the leading terms of a generated sequence.
// Long slices are elided in the middle so the output stays one screen tall.
//
// Parameters:
//   - out: The output writer.
//   - terms: The generated terms, in order.
//   - quiet: When true, print the bare terms space-separated for scripting.
func DisplaySequence(out io.Writer, terms []uint64, quiet bool) {
	if quiet {
		DisplayQuietValue(out, formatUintSlice(terms))
		return
	}

	fmt.Fprintf(out, "%sFibonacci sequence%s (%s terms):\n",
		ui.ColorPrimary(), ui.ColorReset(), format.FormatCount(len(terms)))

	if len(terms) <= SliceDisplayLimit {
		fmt.Fprintf(out, "  [%s]\n", formatUintSlice(terms))
	} else {
		fmt.Fprintf(out, "  [%s ... %s]  %s(showing %d of %s terms)%s\n",
			formatUintSlice(terms[:SliceDisplayHead]),
			formatUintSlice(terms[len(terms)-SliceDisplayTail:]),
			ui.ColorInfo(), SliceDisplayHead+SliceDisplayTail,
			format.FormatCount(len(terms)), ui.ColorReset())
	}

	if len(terms) > sequence.MaxUint64Term+1 {
		fmt.Fprintf(out, "  %sNote: terms past index %d wrap modulo 2^64; use 'term' for exact values.%s\n",
			ui.ColorWarning(), sequence.MaxUint64Term, ui.ColorReset())
	}
}

// formatUintSlice joins terms with single spaces.
func formatUintSlice(terms []uint64) string {
	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", t)
	}
	return b.String()
}

// DisplayBigTerm shows a single exact or modular Fibonacci term together
// with its calculation time and size. Values longer than [TruncationLimit]
// digits are shown edge-truncated unless verbose is set.
//
// Parameters:
//   - out: The output writer.
//   - n: The term index.
//   - modulus: The modulus applied to the term, or nil for an exact value.
//   - value: The computed term.
//   - duration: The calculation duration.
//   - verbose: When true, always print the full value.
//   - quiet: When true, print the bare value for scripting.
func DisplayBigTerm(out io.Writer, n uint64, modulus, value *big.Int, duration time.Duration, verbose, quiet bool) {
	if quiet {
		DisplayQuietValue(out, value.String())
		return
	}

	label := fmt.Sprintf("F(%d)", n)
	if modulus != nil {
		label = fmt.Sprintf("F(%d) mod %s", n, modulus.String())
	}

	fmt.Fprintf(out, "%sCalculation time:%s %s%s%s\n",
		ui.ColorInfo(), ui.ColorReset(),
		ui.ColorWarning(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "%sResult binary size:%s %s bits\n",
		ui.ColorInfo(), ui.ColorReset(), format.FormatCount(value.BitLen()))

	digits := value.String()
	fmt.Fprintf(out, "%sNumber of digits:%s %s\n",
		ui.ColorInfo(), ui.ColorReset(), format.FormatCount(len(digits)))

	if verbose || len(digits) <= TruncationLimit {
		fmt.Fprintf(out, "%s%s%s = %s\n",
			ui.ColorBold(), label, ui.ColorReset(), format.FormatNumberString(digits))
		return
	}

	fmt.Fprintf(out, "%s%s%s = %s...(truncated)...%s\n",
		ui.ColorBold(), label, ui.ColorReset(),
		digits[:DisplayEdges], digits[len(digits)-DisplayEdges:])
	fmt.Fprintf(out, "%sTip: use --verbose (or 'verbose' in the session) to display the full value.%s\n",
		ui.ColorInfo(), ui.ColorReset())
}

// DisplaySummary shows the sum, minimum and maximum of an aggregated
// collection.
//
// Parameters:
//   - out: The output writer.
//   - s: The computed summary.
//   - count: The number of aggregated values.
//   - quiet: When true, print "sum min max" space-separated for scripting.
func DisplaySummary(out io.Writer, s aggregate.Summary, count int, quiet bool) {
	if quiet {
		DisplayQuietValue(out, fmt.Sprintf("%s %s %s",
			format.FormatFloat(s.Sum), format.FormatFloat(s.Min), format.FormatFloat(s.Max)))
		return
	}

	fmt.Fprintf(out, "%sAggregated %s values:%s\n",
		ui.ColorPrimary(), format.FormatCount(count), ui.ColorReset())
	fmt.Fprintf(out, "  Sum: %s%s%s\n", ui.ColorBold(), format.FormatFloat(s.Sum), ui.ColorReset())
	fmt.Fprintf(out, "  Min: %s%s%s\n", ui.ColorBold(), format.FormatFloat(s.Min), ui.ColorReset())
	fmt.Fprintf(out, "  Max: %s%s%s\n", ui.ColorBold(), format.FormatFloat(s.Max), ui.ColorReset())
}

// DisplayStats shows the descriptive statistics of a dataset.
//
// Parameters:
//   - out: The output writer.
//   - d: The dataset under analysis.
//   - quiet: When true, print "mean median stddev" space-separated.
func DisplayStats(out io.Writer, d *stats.Dataset, quiet bool) {
	mean := d.Mean()
	median := d.Median()
	stdDev := d.StdDev()

	if quiet {
		DisplayQuietValue(out, fmt.Sprintf("%s %s %s",
			format.FormatFloat(mean), format.FormatFloat(median), format.FormatFloat(stdDev)))
		return
	}

	fmt.Fprintf(out, "%sDataset of %s values:%s\n",
		ui.ColorPrimary(), format.FormatCount(d.Len()), ui.ColorReset())
	fmt.Fprintf(out, "  Mean:    %s%s%s\n", ui.ColorBold(), format.FormatFloat(mean), ui.ColorReset())
	fmt.Fprintf(out, "  Median:  %s%s%s\n", ui.ColorBold(), format.FormatFloat(median), ui.ColorReset())
	fmt.Fprintf(out, "  Std dev: %s%s%s\n", ui.ColorBold(), format.FormatFloat(stdDev), ui.ColorReset())
}

// DisplayFiltered shows the values retained by an outlier filter.
//
// Parameters:
//   - out: The output writer.
//   - kept: The retained values, in their original order.
//   - total: The size of the dataset before filtering.
//   - k: The tolerance in standard deviations.
//   - quiet: When true, print the bare retained values space-separated.
func DisplayFiltered(out io.Writer, kept []float64, total int, k float64, quiet bool) {
	if quiet {
		DisplayQuietValue(out, formatFloatSlice(kept))
		return
	}

	fmt.Fprintf(out, "%sKept %d of %d values%s within %s%gσ%s of the mean:\n",
		ui.ColorPrimary(), len(kept), total, ui.ColorReset(),
		ui.ColorWarning(), k, ui.ColorReset())
	fmt.Fprintf(out, "  [%s]\n", formatFloatSlice(kept))
}

// formatFloatSlice joins values with single spaces, trimming float noise.
func formatFloatSlice(values []float64) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(format.FormatFloat(v))
	}
	return b.String()
}

// wordCount pairs a word with its number of occurrences.
type wordCount struct {
	word  string
	count int
}

// sortedFrequencies orders a frequency table by descending count, breaking
// ties alphabetically so the output is deterministic.
func sortedFrequencies(freqs map[string]int) []wordCount {
	entries := make([]wordCount, 0, len(freqs))
	for w, c := range freqs {
		entries = append(entries, wordCount{word: w, count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})
	return entries
}

// DisplayFrequencies shows a word frequency table, most frequent first.
// At most limit rows are printed; zero or negative means no limit.
//
// Parameters:
//   - out: The output writer.
//   - freqs: The word to occurrence-count table.
//   - limit: The maximum number of rows, or <= 0 for all.
//   - quiet: When true, print tab-separated "word<TAB>count" lines.
func DisplayFrequencies(out io.Writer, freqs map[string]int, limit int, quiet bool) {
	entries := sortedFrequencies(freqs)
	shown := entries
	if limit > 0 && len(entries) > limit {
		shown = entries[:limit]
	}

	if quiet {
		for _, e := range shown {
			fmt.Fprintf(out, "%s\t%d\n", e.word, e.count)
		}
		return
	}

	fmt.Fprintf(out, "%s%s distinct words:%s\n",
		ui.ColorPrimary(), format.FormatCount(len(entries)), ui.ColorReset())

	maxWordLen := 0
	for _, e := range shown {
		if len(e.word) > maxWordLen {
			maxWordLen = len(e.word)
		}
	}
	for _, e := range shown {
		fmt.Fprintf(out, "  %s%s%s%s  %d\n",
			ui.ColorBold(), e.word, ui.ColorReset(),
			padRight("", maxWordLen-len(e.word)), e.count)
	}
	if len(shown) < len(entries) {
		fmt.Fprintf(out, "  %s... and %d more%s\n",
			ui.ColorInfo(), len(entries)-len(shown), ui.ColorReset())
	}
}

// DisplayReversed shows a reversed string next to nothing but itself; the
// quotes make leading and trailing whitespace visible.
//
// Parameters:
//   - out: The output writer.
//   - reversed: The code-point reversed text.
//   - quiet: When true, print the bare reversed text.
func DisplayReversed(out io.Writer, reversed string, quiet bool) {
	if quiet {
		DisplayQuietValue(out, reversed)
		return
	}
	fmt.Fprintf(out, "%sReversed:%s %q\n", ui.ColorPrimary(), ui.ColorReset(), reversed)
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Heap from OS:    %s\n", format.FormatBytes(snap.HeapSys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	if snap.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
