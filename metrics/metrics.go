package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type OrchestratorMetrics struct {
	*HostMetrics
	*BridgeMetrics
	*TrackerMetrics
}

// NewOrchestratorMetrics creates an instance of metrics for every
// orchestrator component tagged with the deployment attributes
func NewOrchestratorMetrics(ctx context.Context, meter metric.Meter, env, id, version string) (*OrchestratorMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("orchestrator", id),
		attribute.String("version", version),
	)

	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}
	bridgeMetrics, err := NewBridgeMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}
	trackerMetrics, err := NewTrackerMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	return &OrchestratorMetrics{
		HostMetrics:    hostMetrics,
		BridgeMetrics:  bridgeMetrics,
		TrackerMetrics: trackerMetrics,
	}, nil
}
