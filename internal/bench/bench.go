// Package bench runs timing probes over every library operation and
// reports per-probe durations and allocation pressure. Probes run
// concurrently under an errgroup; a probe failure is recorded in its
// result rather than aborting the run.
package bench

import (
	"context"
	"math/big"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/calckit/aggregate"
	"github.com/agbru/calckit/calc"
	apperrors "github.com/agbru/calckit/internal/errors"
	"github.com/agbru/calckit/internal/logging"
	"github.com/agbru/calckit/internal/metrics"
	"github.com/agbru/calckit/sequence"
	"github.com/agbru/calckit/stats"
	"github.com/agbru/calckit/textutil"
)

// ctxCheckInterval is how many loop iterations a probe runs between
// context checks.
const ctxCheckInterval = 1024

// Config holds the benchmark workload parameters.
type Config struct {
	// Size scales each probe's workload: loop iterations, element counts
	// and term indexes. Must be at least 1.
	Size int
	// Workers caps the number of concurrently running probes.
	// Zero means no limit.
	Workers int
}

// ProbeResult is the outcome of a single probe.
type ProbeResult struct {
	// Name identifies the operation the probe exercised.
	Name string
	// Duration is the measured time, excluding workload construction.
	Duration time.Duration
	// HeapGrowth is the heap allocation increase over the probe, in bytes.
	HeapGrowth uint64
	// Err is non-nil when the probe failed or was interrupted.
	Err error
}

// probe pairs an operation name with a workload function.
type probe struct {
	name string
	run  func(ctx context.Context, size int) error
}

// probes returns the full probe suite in display order.
func probes() []probe {
	return []probe{
		{name: "calc.Add", run: probeAdd},
		{name: "calc.Divide", run: probeDivide},
		{name: "sequence.Fibonacci", run: probeFibonacci},
		{name: "sequence.Term", run: probeTerm},
		{name: "sequence.TermMod", run: probeTermMod},
		{name: "aggregate.Summarize", run: probeSummarize},
		{name: "textutil.Reverse", run: probeReverse},
		{name: "textutil.WordFrequency", run: probeWordFrequency},
		{name: "stats.Dataset", run: probeStats},
	}
}

// Run executes every probe with the given workload size, recording each
// outcome into rec. The per-probe errors land in the returned results;
// the returned error is non-nil only when ctx expired before the run
// finished.
//
// Parameters:
//   - ctx: The context bounding the whole run.
//   - cfg: The workload parameters.
//   - rec: Destination for per-probe operation metrics.
//   - logger: Destination for diagnostic logging.
//
// Returns:
//   - []ProbeResult: One result per probe, in suite order.
//   - error: The context error if the run was interrupted.
func Run(ctx context.Context, cfg Config, rec *metrics.Recorder, logger logging.Logger) ([]ProbeResult, error) {
	suite := probes()
	results := make([]ProbeResult, len(suite))
	collector := metrics.NewMemoryCollector()

	logger.Info("benchmark run started",
		logging.Int("probes", len(suite)),
		logging.Int("size", cfg.Size),
		logging.Int("workers", cfg.Workers))

	g, probeCtx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for i, p := range suite {
		idx, pb := i, p
		g.Go(func() error {
			if err := probeCtx.Err(); err != nil {
				results[idx] = ProbeResult{Name: pb.name, Err: err}
				return nil
			}

			before := collector.Snapshot()
			start := time.Now()
			err := pb.run(probeCtx, cfg.Size)
			duration := time.Since(start)
			after := collector.Snapshot()

			rec.Observe(pb.name, duration, err)
			logger.Debug("probe finished",
				logging.String("probe", pb.name),
				logging.Err(err))

			results[idx] = ProbeResult{
				Name:       pb.name,
				Duration:   duration,
				HeapGrowth: after.HeapGrowth(before),
				Err:        err,
			}
			return nil
		})
	}

	g.Wait()

	// The derived context is always canceled once Wait returns; only the
	// parent tells us whether the run itself was cut short.
	if err := ctx.Err(); err != nil {
		return results, apperrors.WrapError(err, "benchmark interrupted")
	}
	return results, nil
}

// checkEvery returns ctx.Err() on the interval boundary, nil otherwise.
func checkEvery(ctx context.Context, i int) error {
	if i%ctxCheckInterval == 0 {
		return ctx.Err()
	}
	return nil
}

func probeAdd(ctx context.Context, size int) error {
	acc := new(calc.Accumulator)
	for i := 0; i < size; i++ {
		if err := checkEvery(ctx, i); err != nil {
			return err
		}
		acc.Add(float64(i), 2.5)
	}
	return nil
}

func probeDivide(ctx context.Context, size int) error {
	acc := new(calc.Accumulator)
	for i := 0; i < size; i++ {
		if err := checkEvery(ctx, i); err != nil {
			return err
		}
		if _, err := acc.Divide(float64(i), 3); err != nil {
			return err
		}
	}
	return nil
}

func probeFibonacci(ctx context.Context, size int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := sequence.Fibonacci(size)
	return err
}

func probeTerm(ctx context.Context, size int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_ = sequence.Term(uint64(size))
	return nil
}

func probeTermMod(ctx context.Context, size int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := sequence.TermMod(uint64(size), big.NewInt(1_000_000_007))
	return err
}

func probeSummarize(ctx context.Context, size int) error {
	values := benchValues(size)
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := aggregate.Summarize(values)
	return err
}

func probeReverse(ctx context.Context, size int) error {
	text := benchText(size)
	if err := ctx.Err(); err != nil {
		return err
	}
	_ = textutil.Reverse(text)
	return nil
}

func probeWordFrequency(ctx context.Context, size int) error {
	text := benchText(size)
	if err := ctx.Err(); err != nil {
		return err
	}
	_ = textutil.WordFrequency(text)
	return nil
}

func probeStats(ctx context.Context, size int) error {
	values := benchValues(size)
	if err := ctx.Err(); err != nil {
		return err
	}
	dataset, err := stats.New(values)
	if err != nil {
		return err
	}
	_ = dataset.Mean()
	_ = dataset.Median()
	_ = dataset.StdDev()
	_, err = dataset.FilterOutliers(2)
	return err
}

// benchValues builds a deterministic workload of size floats. The modulus
// is prime so the values do not settle into a short cycle aligned with
// common sizes.
func benchValues(size int) []float64 {
	values := make([]float64, size)
	for i := range values {
		values[i] = float64(i%997) * 0.5
	}
	return values
}

// benchText builds a deterministic workload of size whitespace-separated
// words, including multi-byte runes so code-point handling is exercised.
func benchText(size int) string {
	words := []string{"alpha", "beta", "gamma", "delta", "épsilon"}
	var b strings.Builder
	for i := 0; i < size; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(words[i%len(words)])
	}
	return b.String()
}
