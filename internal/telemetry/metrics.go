// Package telemetry provides OpenTelemetry instrumentation for the change
// feed pipeline, exported in Prometheus format.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PollMetricsMeterName is the name used for the poll metrics meter.
const PollMetricsMeterName = "github.com/PawVamp/SteamDatabaseBackend/poller"

// PollMetrics holds the OpenTelemetry instruments for the poll loop.
type PollMetrics struct {
	pollDuration     metric.Float64Histogram
	changesProcessed metric.Int64Counter
	dispatchedChunks metric.Int64Counter
}

// NewPollMetrics creates a new PollMetrics instance with the given meter
// provider. If provider is nil, it returns nil (no-op metrics).
func NewPollMetrics(provider metric.MeterProvider) (*PollMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(PollMetricsMeterName)

	pollDuration, err := meter.Float64Histogram(
		"steamdb_poll_duration_seconds",
		metric.WithDescription("Duration of change feed polls in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2.5, 5, 10, 30, 60),
	)
	if err != nil {
		return nil, err
	}

	changesProcessed, err := meter.Int64Counter(
		"steamdb_changes_processed_total",
		metric.WithDescription("Number of product changes processed from the feed"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, err
	}

	dispatchedChunks, err := meter.Int64Counter(
		"steamdb_dispatched_chunks_total",
		metric.WithDescription("Number of token acquisition chunks submitted"),
		metric.WithUnit("{chunk}"),
	)
	if err != nil {
		return nil, err
	}

	return &PollMetrics{
		pollDuration:     pollDuration,
		changesProcessed: changesProcessed,
		dispatchedChunks: dispatchedChunks,
	}, nil
}

// RecordPoll records one completed poll.
func (m *PollMetrics) RecordPoll(ctx context.Context, duration time.Duration, success bool) {
	if m == nil || m.pollDuration == nil {
		return
	}
	m.pollDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(attribute.Bool("success", success)))
}

// RecordChanges records the number of app and package changes in one
// response.
func (m *PollMetrics) RecordChanges(ctx context.Context, apps, packages int64) {
	if m == nil || m.changesProcessed == nil {
		return
	}
	m.changesProcessed.Add(ctx, apps,
		metric.WithAttributes(attribute.String("kind", "app")))
	m.changesProcessed.Add(ctx, packages,
		metric.WithAttributes(attribute.String("kind", "package")))
}

// RecordDispatchedChunks records submitted token acquisition chunks.
func (m *PollMetrics) RecordDispatchedChunks(ctx context.Context, kind string, count int64) {
	if m == nil || m.dispatchedChunks == nil {
		return
	}
	m.dispatchedChunks.Add(ctx, count,
		metric.WithAttributes(attribute.String("kind", kind)))
}
