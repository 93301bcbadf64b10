package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"

	"github.com/sprintertech/bridge-orchestrator/chains"
)

type TrackerMetrics struct {
	opts metric.MeasurementOption

	activeGauge       metric.Int64ObservableGauge
	activeCount       *atomic.Int64
	finishedCounter   metric.Int64Counter
	durationHistogram metric.Float64Histogram
	rollbackCounter   metric.Int64Counter
	depthHistogram    metric.Int64Histogram
}

// NewTrackerMetrics initializes metrics of confirmation tracking
func NewTrackerMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*TrackerMetrics, error) {
	activeCount := atomic.NewInt64(0)
	activeGauge, err := meter.Int64ObservableGauge(
		"orchestrator.ActiveTrackings",
		metric.WithInt64Callback(func(context context.Context, result metric.Int64Observer) error {
			result.Observe(activeCount.Load(), opts)
			return nil
		}),
		metric.WithDescription("Number of transactions currently tracked"),
	)
	if err != nil {
		return nil, err
	}
	finishedCounter, err := meter.Int64Counter(
		"orchestrator.FinishedTrackings",
		metric.WithDescription("Number of trackings that reached a terminal state"),
	)
	if err != nil {
		return nil, err
	}
	durationHistogram, err := meter.Float64Histogram(
		"orchestrator.TrackingDuration",
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	rollbackCounter, err := meter.Int64Counter(
		"orchestrator.ConfirmationRollbacks",
		metric.WithDescription("Number of observed confirmation rollbacks"),
	)
	if err != nil {
		return nil, err
	}
	depthHistogram, err := meter.Int64Histogram("orchestrator.RollbackDepth")
	if err != nil {
		return nil, err
	}

	return &TrackerMetrics{
		opts:              opts,
		activeGauge:       activeGauge,
		activeCount:       activeCount,
		finishedCounter:   finishedCounter,
		durationHistogram: durationHistogram,
		rollbackCounter:   rollbackCounter,
		depthHistogram:    depthHistogram,
	}, nil
}

func (m *TrackerMetrics) TrackingStarted(network chains.ChainID) {
	m.activeCount.Inc()
}

func (m *TrackerMetrics) TrackingFinished(network chains.ChainID, state string, duration time.Duration) {
	m.activeCount.Dec()

	attributes := metric.WithAttributes(
		attribute.Int64("chainID", int64(network)),
		attribute.String("state", state),
	)
	m.finishedCounter.Add(context.Background(), 1, m.opts, attributes)
	m.durationHistogram.Record(context.Background(), duration.Seconds(), m.opts, attributes)
}

func (m *TrackerMetrics) Rollback(network chains.ChainID, depth uint64) {
	attributes := metric.WithAttributes(attribute.Int64("chainID", int64(network)))
	m.rollbackCounter.Add(context.Background(), 1, m.opts, attributes)
	m.depthHistogram.Record(context.Background(), int64(depth), m.opts, attributes)
}

// Active returns the number of trackings started and not yet finished
func (m *TrackerMetrics) Active() int64 {
	return m.activeCount.Load()
}
