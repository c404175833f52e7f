package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this instrumentation scope to the meter provider.
const meterName = "github.com/agbru/calckit"

// RegisterOTelBridge exposes the recorder's running totals through the
// global OpenTelemetry meter provider as observable counters. With no SDK
// installed the global provider is a no-op, so the bridge costs nothing
// until a host application wires a real provider.
//
// Parameters:
//   - r: The recorder whose totals are observed on each collection cycle.
//
// Returns:
//   - metric.Registration: Handle to unregister the callback.
//   - error: Instrument creation or callback registration failure.
func RegisterOTelBridge(r *Recorder) (metric.Registration, error) {
	meter := otel.Meter(meterName)

	operations, err := meter.Int64ObservableCounter("calckit.operations",
		metric.WithDescription("Completed operations across all modes."))
	if err != nil {
		return nil, fmt.Errorf("creating operations counter: %w", err)
	}
	failures, err := meter.Int64ObservableCounter("calckit.errors",
		metric.WithDescription("Operations that returned an error."))
	if err != nil {
		return nil, fmt.Errorf("creating errors counter: %w", err)
	}

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		totals := r.Totals()
		o.ObserveInt64(operations, int64(totals.Operations))
		o.ObserveInt64(failures, int64(totals.Failures))
		return nil
	}, operations, failures)
	if err != nil {
		return nil, fmt.Errorf("registering observer callback: %w", err)
	}
	return reg, nil
}
