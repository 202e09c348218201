// Package telemetry provides hierarchical timing collection for ledger
// operations. Collectors travel through the context so instrumentation can
// be enabled per invocation without changing function signatures; when no
// collector is present, timers are no-ops.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "loader.read")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr, nil)
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/ledger/output"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey int

const (
	collectorKey contextKey = iota
	rootTimerKey
)

// Collector collects timing data for a run.
type Collector interface {
	// Start begins timing an operation. End the returned timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w. Styles may be nil for
	// unstyled output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a timer nested under this one.
	Child(name string) Timer
}

// WithCollector returns a context carrying the collector.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from the context, or a no-op collector
// when none is present.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// WithRootTimer returns a context carrying a timer under which subsequent
// StartTimer calls nest.
func WithRootTimer(ctx context.Context, timer Timer) context.Context {
	return context.WithValue(ctx, rootTimerKey, timer)
}

// StartTimer starts a timer nested under the context's root timer when one
// is set, falling back to the context's collector. Without either, the
// returned timer does nothing.
func StartTimer(ctx context.Context, name string) Timer {
	if timer, ok := ctx.Value(rootTimerKey).(Timer); ok {
		return timer.Child(name)
	}
	return FromContext(ctx).Start(name)
}
