package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type BridgeMetrics struct {
	opts metric.MeasurementOption

	attemptCounter    metric.Int64Counter
	executionCounter  metric.Int64Counter
	attemptsHistogram metric.Int64Histogram
	durationHistogram metric.Float64Histogram
}

// NewBridgeMetrics initializes metrics of bridge executions
func NewBridgeMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*BridgeMetrics, error) {
	attemptCounter, err := meter.Int64Counter(
		"orchestrator.BridgeAttempts",
		metric.WithDescription("Number of bridge submissions sent to protocol adapters"),
	)
	if err != nil {
		return nil, err
	}
	executionCounter, err := meter.Int64Counter(
		"orchestrator.BridgeExecutions",
		metric.WithDescription("Number of finished bridge executions by outcome"),
	)
	if err != nil {
		return nil, err
	}
	attemptsHistogram, err := meter.Int64Histogram(
		"orchestrator.BridgeAttemptsPerExecution",
		metric.WithDescription("Attempts needed per bridge execution"),
	)
	if err != nil {
		return nil, err
	}
	durationHistogram, err := meter.Float64Histogram(
		"orchestrator.BridgeDuration",
		metric.WithDescription("Seconds from bridge initiation to a terminal state"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &BridgeMetrics{
		opts:              opts,
		attemptCounter:    attemptCounter,
		executionCounter:  executionCounter,
		attemptsHistogram: attemptsHistogram,
		durationHistogram: durationHistogram,
	}, nil
}

func (m *BridgeMetrics) BridgeAttempt(protocolID string) {
	m.attemptCounter.Add(
		context.Background(),
		1,
		m.opts,
		metric.WithAttributes(attribute.String("protocol", protocolID)),
	)
}

func (m *BridgeMetrics) BridgeFinished(protocolID string, state string, attempts int, duration time.Duration) {
	attributes := metric.WithAttributes(
		attribute.String("protocol", protocolID),
		attribute.String("state", state),
	)
	m.executionCounter.Add(context.Background(), 1, m.opts, attributes)
	m.attemptsHistogram.Record(context.Background(), int64(attempts), m.opts, attributes)
	m.durationHistogram.Record(context.Background(), duration.Seconds(), m.opts, attributes)
}
