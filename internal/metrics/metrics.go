// Package metrics records operation counters for every calckit mode and
// renders them in the Prometheus text exposition format. An optional bridge
// exposes the same running totals through the global OpenTelemetry meter
// provider. All collectors live in a private registry, so concurrent
// recorders never collide.
package metrics

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// Recorder counts operations, failures and durations across a session.
// The zero value is not usable; construct one with NewRecorder.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	sessions   prometheus.Gauge

	totalOps  atomic.Uint64
	totalErrs atomic.Uint64
}

// Totals is a point-in-time reading of the recorder's counters.
type Totals struct {
	// Operations is the number of completed operations, failed or not.
	Operations uint64
	// Failures is the number of operations that returned an error.
	Failures uint64
}

// NewRecorder creates a Recorder with its own registry. Go runtime metrics
// are registered alongside the application counters so a rendered report
// includes heap and goroutine figures.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.operations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calckit_operations_total",
		Help: "Completed operations by name.",
	}, []string{"op"})
	r.failures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calckit_errors_total",
		Help: "Operations that returned an error, by name.",
	}, []string{"op"})
	r.durations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calckit_operation_duration_seconds",
		Help:    "Wall-clock duration of operations by name.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"op"})
	r.sessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "calckit_session_active",
		Help: "Interactive sessions currently running.",
	})

	r.registry.MustRegister(
		r.operations,
		r.failures,
		r.durations,
		r.sessions,
		collectors.NewGoCollector(),
	)
	return r
}

// Observe records one completed operation. The duration feeds the latency
// histogram; a non-nil err additionally increments the failure counter.
// Safe for concurrent use.
func (r *Recorder) Observe(op string, d time.Duration, err error) {
	r.operations.WithLabelValues(op).Inc()
	r.durations.WithLabelValues(op).Observe(d.Seconds())
	r.totalOps.Add(1)
	if err != nil {
		r.failures.WithLabelValues(op).Inc()
		r.totalErrs.Add(1)
	}
}

// SessionStarted marks an interactive session as active.
func (r *Recorder) SessionStarted() { r.sessions.Inc() }

// SessionEnded marks an interactive session as finished.
func (r *Recorder) SessionEnded() { r.sessions.Dec() }

// Totals returns the running operation and failure counts.
func (r *Recorder) Totals() Totals {
	return Totals{
		Operations: r.totalOps.Load(),
		Failures:   r.totalErrs.Load(),
	}
}

// Render writes every metric family of the recorder's registry to w in the
// Prometheus text exposition format.
//
// Parameters:
//   - w: Destination for the rendered report.
//
// Returns:
//   - error: The first gathering or encoding failure, or nil.
func (r *Recorder) Render(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("rendering %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
