package bench

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/agbru/calckit/internal/format"
	"github.com/agbru/calckit/internal/ui"
)

// WriteReport formats and prints the benchmark results table. The fastest
// successful probe is highlighted.
//
// Parameters:
//   - out: The writer for the report.
//   - results: The probe results, printed in the given order.
func WriteReport(out io.Writer, results []ProbeResult) {
	fmt.Fprintf(out, "\n--- Benchmark Summary ---\n")

	fastest := fastestProbe(results)

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sProbe%s\t│ %sTime%s\t│ %sHeap Growth%s\t│ %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s┼%s┼%s\n",
		strings.Repeat("─", 24), strings.Repeat("─", 12),
		strings.Repeat("─", 13), strings.Repeat("─", 12))

	for _, res := range results {
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorError(), ui.ColorReset())
		heapStr := "-"
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				durationStr = "< 1µs"
			}
			heapStr = format.FormatBytes(res.HeapGrowth)
		}

		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorSuccess(), ui.ColorReset())
		}

		highlight := ""
		if res.Name == fastest {
			highlight = fmt.Sprintf(" %s(fastest)%s", ui.ColorSuccess(), ui.ColorReset())
		}

		fmt.Fprintf(tw, "  %s%s%s\t│ %s%s%s\t│ %s\t│ %s%s\n",
			ui.ColorInfo(), res.Name, ui.ColorReset(),
			ui.ColorWarning(), durationStr, ui.ColorReset(),
			heapStr, status, highlight)
	}
	tw.Flush()
}

// fastestProbe returns the name of the quickest successful probe, or ""
// when every probe failed.
func fastestProbe(results []ProbeResult) string {
	name := ""
	best := time.Duration(0)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if name == "" || res.Duration < best {
			name = res.Name
			best = res.Duration
		}
	}
	return name
}
