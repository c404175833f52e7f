// Package format provides display formatting helpers shared by the CLI,
// the TUI, and the benchmark reporter.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatNumberString inserts comma separators every three digits, counting
// from the right. A leading minus sign is preserved. The input is expected
// to be a plain decimal string, such as the output of big.Int.String.
//
// Parameters:
//   - s: The decimal string to group.
//
// Returns:
//   - string: The input with thousands separators inserted.
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3 + 1)
	if neg {
		b.WriteByte('-')
	}
	first := true
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		first = false
	}
	for i := lead; i < n; i += 3 {
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
		first = false
	}
	return b.String()
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return FormatNumberString(strconv.Itoa(n))
}

// FormatFloat renders a float64 with the shortest decimal representation
// that round-trips. Whole values print without a fractional part, so 8.0
// renders as "8" and 17.3 stays "17.3".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatBytes renders a byte count using binary units with one decimal of
// precision above the KB threshold.
func FormatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
