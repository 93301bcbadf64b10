package protocol

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// CapabilityEstimator estimates legs from the configured fee structure of
// the protocol
type CapabilityEstimator struct {
	registry *Registry
}

func NewCapabilityEstimator(registry *Registry) *CapabilityEstimator {
	return &CapabilityEstimator{
		registry: registry,
	}
}

func (e *CapabilityEstimator) Estimate(ctx context.Context, leg Leg) (Quote, error) {
	c, ok := e.registry.Capability(leg.Protocol)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrUnknownProtocol, leg.Protocol)
	}
	if !c.Supports(leg.From) || !c.Supports(leg.To) {
		return Quote{}, fmt.Errorf("%w: %s %s->%s", ErrUnsupportedRoute, leg.Protocol, leg.From, leg.To)
	}

	return Quote{
		Fee:        c.Fee.Amount(leg.Amount),
		Time:       c.AverageTime,
		Confidence: c.Reliability,
	}, nil
}

// AdapterEstimator asks the protocol adapter for a live quote and falls
// back to the capability estimate when the adapter is missing or fails
type AdapterEstimator struct {
	registry *Registry
	fallback *CapabilityEstimator
}

func NewAdapterEstimator(registry *Registry) *AdapterEstimator {
	return &AdapterEstimator{
		registry: registry,
		fallback: NewCapabilityEstimator(registry),
	}
}

func (e *AdapterEstimator) Estimate(ctx context.Context, leg Leg) (Quote, error) {
	adapter, err := e.registry.Adapter(leg.Protocol)
	if err != nil {
		return e.fallback.Estimate(ctx, leg)
	}

	q, err := adapter.CalculateRoute(ctx, leg.From, leg.To, leg.Amount, leg.Token)
	if err != nil || q == nil {
		log.Warn().Str("protocol", leg.Protocol).Msgf("Live quote failed, using configured fees: %v", err)
		return e.fallback.Estimate(ctx, leg)
	}

	quote := *q
	if quote.Confidence == 0 {
		if c, ok := e.registry.Capability(leg.Protocol); ok {
			quote.Confidence = c.Reliability
		}
	}
	return quote, nil
}
