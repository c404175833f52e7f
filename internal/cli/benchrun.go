package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/agbru/calckit/internal/bench"
	apperrors "github.com/agbru/calckit/internal/errors"
	"github.com/agbru/calckit/internal/logging"
	"github.com/agbru/calckit/internal/metrics"
)

// RunBenchWithSpinner executes the benchmark probes behind a spinner and
// writes the report to out. A deadline overrun is translated into a
// TimeoutError carrying limit, so callers can map it onto the timeout
// exit code.
//
// Parameters:
//   - ctx: The context bounding the run, already carrying the deadline
//     derived from limit.
//   - cfg: The probe configuration.
//   - limit: The configured time budget, reported on timeout.
//   - recorder: Destination for per-probe operation metrics.
//   - logger: Destination for diagnostic logging.
//   - out: The output writer for the spinner and the report.
//
// Returns:
//   - error: nil on success, a TimeoutError when the budget was exceeded,
//     or the run error otherwise.
func RunBenchWithSpinner(ctx context.Context, cfg bench.Config, limit time.Duration, recorder *metrics.Recorder, logger logging.Logger, out io.Writer) error {
	var results []bench.ProbeResult
	err := runWithSpinner(out, "Running benchmark probes...", func() error {
		var runErr error
		results, runErr = bench.Run(ctx, cfg, recorder, logger)
		return runErr
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.TimeoutError{Operation: "bench", Limit: limit}
		}
		return err
	}
	bench.WriteReport(out, results)
	return nil
}
