package route_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/config"
	"github.com/sprintertech/bridge-orchestrator/protocol"
	mock_protocol "github.com/sprintertech/bridge-orchestrator/protocol/mock"
	"github.com/sprintertech/bridge-orchestrator/route"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type healthFunc func(id string) bool

func (f healthFunc) Healthy(id string) bool {
	return f(id)
}

func newRegistry(configs ...config.ProtocolConfig) *protocol.Registry {
	registry := protocol.NewRegistry()
	for _, c := range configs {
		capability, err := protocol.NewCapability(c)
		if err != nil {
			panic(err)
		}
		_ = registry.Register(capability, nil)
	}
	return registry
}

func protocolConfig(id string, averageTime uint64, baseFee float64, reliability float64, ids ...uint64) config.ProtocolConfig {
	return config.ProtocolConfig{
		Id:            id,
		Chains:        ids,
		TrustModel:    "committee",
		AverageTime:   averageTime,
		BaseFee:       baseFee,
		Reliability:   reliability,
		SecurityScore: 0.8,
	}
}

type CalculatorTestSuite struct {
	suite.Suite

	registry   *protocol.Registry
	calculator *route.Calculator
	amount     *big.Int
}

func TestRunCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}

func (s *CalculatorTestSuite) SetupTest() {
	s.amount = big.NewInt(1_000_000)
	s.registry = newRegistry(
		protocolConfig("fast", 100, 30, 0.90, 1, 10, 137),
		protocolConfig("medium", 200, 20, 0.95, 1, 10, 8453),
		protocolConfig("slow", 300, 10, 0.99, 1, 10),
	)
	s.calculator = route.NewCalculator(
		s.registry,
		protocol.NewCapabilityEstimator(s.registry),
		route.WithIntermediaries(chains.Ethereum),
	)
}

func (s *CalculatorTestSuite) Test_GetAllPossibleRoutes_DirectPath() {
	pairs := [][2]chains.ChainID{
		{chains.Ethereum, chains.Optimism},
		{chains.Optimism, chains.Ethereum},
		{chains.Ethereum, chains.Polygon},
		{chains.Optimism, chains.Base},
	}

	for _, pair := range pairs {
		routes, err := s.calculator.GetAllPossibleRoutes(context.Background(), pair[0], pair[1], "USDC", s.amount, nil)
		s.Nil(err)

		direct := 0
		for _, r := range routes {
			if r.Direct() {
				s.Equal([]chains.ChainID{pair[0], pair[1]}, r.Path)
				direct++
			}
		}
		s.GreaterOrEqual(direct, 1)
	}
}

func (s *CalculatorTestSuite) Test_GetAllPossibleRoutes_ScoresWithinBounds() {
	routes, err := s.calculator.GetAllPossibleRoutes(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)
	s.Nil(err)
	s.Len(routes, 3)

	optimal, err := s.calculator.CalculateOptimalRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)
	s.Nil(err)

	for _, r := range routes {
		s.GreaterOrEqual(r.Score, float64(0))
		s.LessOrEqual(r.Score, float64(1))
		s.GreaterOrEqual(optimal.Score, r.Score)
	}
}

func (s *CalculatorTestSuite) Test_FindFastestRoute() {
	r, err := s.calculator.FindFastestRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount)

	s.Nil(err)
	s.Equal("fast", r.ProtocolID)
	s.Equal(100*time.Second, r.EstimatedTime)
}

func (s *CalculatorTestSuite) Test_FindCheapestRoute() {
	r, err := s.calculator.FindCheapestRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount)

	s.Nil(err)
	s.Equal("slow", r.ProtocolID)
	s.Equal(float64(10), r.EstimatedFee)
}

func (s *CalculatorTestSuite) Test_FindFastestRoute_ExplicitCriteria() {
	criteria := route.Criteria{Speed: 1, Cost: 0, Reliability: 0}

	r, err := s.calculator.CalculateOptimalRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, &criteria)

	s.Nil(err)
	s.Equal(100*time.Second, r.EstimatedTime)
}

func (s *CalculatorTestSuite) Test_NoRouteFound() {
	_, err := s.calculator.CalculateOptimalRoute(context.Background(), chains.Avalanche, chains.BSC, "USDC", s.amount, nil)

	s.True(errors.Is(err, route.ErrNoRouteFound))
	var routeErr *route.RouteError
	s.True(errors.As(err, &routeErr))
	s.Equal(chains.Avalanche, routeErr.From)
	s.Equal(chains.BSC, routeErr.To)
}

func (s *CalculatorTestSuite) Test_InvalidRequest() {
	_, err := s.calculator.CalculateOptimalRoute(context.Background(), chains.Ethereum, chains.Ethereum, "USDC", s.amount, nil)
	s.True(errors.Is(err, route.ErrInvalidRequest))

	_, err = s.calculator.CalculateOptimalRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", big.NewInt(0), nil)
	s.True(errors.Is(err, route.ErrInvalidRequest))
}

func (s *CalculatorTestSuite) Test_AmountNotSupported() {
	c := protocolConfig("across", 100, 1, 0.9, 1, 10)
	c.MinAmount = "5000000"
	registry := newRegistry(c)
	calculator := route.NewCalculator(registry, protocol.NewCapabilityEstimator(registry))

	_, err := calculator.CalculateOptimalRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)

	s.True(errors.Is(err, route.ErrAmountNotSupported))
}

func (s *CalculatorTestSuite) Test_TokenNotSupported() {
	c := protocolConfig("across", 100, 1, 0.9, 1, 10)
	c.Tokens = []string{"WETH"}
	registry := newRegistry(c)
	calculator := route.NewCalculator(registry, protocol.NewCapabilityEstimator(registry))

	_, err := calculator.CalculateOptimalRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)

	s.True(errors.Is(err, route.ErrNoRouteFound))
}

func (s *CalculatorTestSuite) Test_TwoHopRoutes() {
	registry := newRegistry(
		protocolConfig("x", 100, 10, 0.9, 1, 137, 10),
		protocolConfig("y", 100, 10, 0.9, 137, 10),
	)
	calculator := route.NewCalculator(
		registry,
		protocol.NewCapabilityEstimator(registry),
		route.WithIntermediaries(chains.Polygon),
	)

	routes, err := calculator.GetAllPossibleRoutes(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)

	s.Nil(err)
	s.Len(routes, 2)
	s.Equal("x", routes[0].ProtocolID)
	s.Equal("x+y", routes[1].ProtocolID)
	s.Equal(2, routes[1].Hops)
	s.Equal([]chains.ChainID{chains.Ethereum, chains.Polygon, chains.Optimism}, routes[1].Path)
	s.Equal(float64(20), routes[1].EstimatedFee)
	s.Equal(200*time.Second, routes[1].EstimatedTime)
	s.InDelta(0.81, routes[1].Confidence, 1e-9)
	s.Less(routes[1].Score, routes[0].Score)
}

func (s *CalculatorTestSuite) Test_TwoHopRoutes_OnlyViaIntermediary() {
	registry := newRegistry(
		protocolConfig("x", 100, 10, 0.9, 1, 137),
		protocolConfig("y", 100, 10, 0.9, 137, 10),
	)

	calculator := route.NewCalculator(registry, protocol.NewCapabilityEstimator(registry), route.WithIntermediaries(chains.Polygon))
	r, err := calculator.CalculateOptimalRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)
	s.Nil(err)
	s.Equal("x+y", r.ProtocolID)

	calculator = route.NewCalculator(registry, protocol.NewCapabilityEstimator(registry))
	_, err = calculator.CalculateOptimalRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)
	s.True(errors.Is(err, route.ErrNoRouteFound))
}

func (s *CalculatorTestSuite) Test_UnhealthyProtocolSkipped() {
	calculator := route.NewCalculator(
		s.registry,
		protocol.NewCapabilityEstimator(s.registry),
		route.WithHealthChecker(healthFunc(func(id string) bool {
			return id != "fast"
		})),
	)

	routes, err := calculator.GetAllPossibleRoutes(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)

	s.Nil(err)
	s.Len(routes, 2)
	for _, r := range routes {
		s.NotEqual("fast", r.ProtocolID)
	}
}

func (s *CalculatorTestSuite) Test_FailingEstimatorDropsCandidate() {
	ctrl := gomock.NewController(s.T())
	estimator := mock_protocol.NewMockCostEstimator(ctrl)
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(protocol.Quote{}, errors.New("error"))
	calculator := route.NewCalculator(
		s.registry,
		protocol.NewCapabilityEstimator(s.registry),
		route.WithEstimator("fast", estimator),
	)

	routes, err := calculator.GetAllPossibleRoutes(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)

	s.Nil(err)
	s.Len(routes, 2)
}

func (s *CalculatorTestSuite) Test_Cache() {
	_, err := s.calculator.GetAllPossibleRoutes(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)
	s.Nil(err)
	_, err = s.calculator.GetAllPossibleRoutes(context.Background(), chains.Ethereum, chains.Optimism, "usdc", big.NewInt(1_000_000), nil)
	s.Nil(err)
	s.Equal(int64(1), s.calculator.CalculationCount())

	_, err = s.calculator.FindFastestRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount)
	s.Nil(err)
	s.Equal(int64(2), s.calculator.CalculationCount())
}

func (s *CalculatorTestSuite) Test_Cache_Expired() {
	calculator := route.NewCalculator(
		s.registry,
		protocol.NewCapabilityEstimator(s.registry),
		route.WithCacheTTL(50*time.Millisecond),
	)

	_, _ = calculator.GetAllPossibleRoutes(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)
	time.Sleep(100 * time.Millisecond)
	_, _ = calculator.GetAllPossibleRoutes(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)

	s.Equal(int64(2), calculator.CalculationCount())
}

func (s *CalculatorTestSuite) Test_GetRouteComparison() {
	comparison, err := s.calculator.GetRouteComparison(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount, nil)

	s.Nil(err)
	s.Equal("fast", comparison.Fastest.ProtocolID)
	s.Equal("slow", comparison.Cheapest.ProtocolID)
	s.Len(comparison.Routes, 3)
	s.True(comparison.Routes[0].IsOptimal)
	s.Equal(comparison.Optimal.ID(), comparison.Routes[0].ID())
	s.Equal(float64(0), comparison.Routes[0].FeeDelta)

	fastest, cheapest := 0, 0
	for _, r := range comparison.Routes {
		if r.IsFastest {
			fastest++
			s.Equal("fast", r.ProtocolID)
		}
		if r.IsCheapest {
			cheapest++
			s.Equal("slow", r.ProtocolID)
		}
		s.Equal(r.EstimatedFee-comparison.Optimal.EstimatedFee, r.FeeDelta)
	}
	s.Equal(1, fastest)
	s.Equal(1, cheapest)
}

func Test_Criteria_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		criteria route.Criteria
		want     route.Criteria
	}{
		{
			name:     "zero weights use defaults",
			criteria: route.Criteria{},
			want:     route.DefaultCriteria,
		},
		{
			name:     "weights scaled to one",
			criteria: route.Criteria{Cost: 2, Speed: 2},
			want:     route.Criteria{Cost: 0.5, Speed: 0.5},
		},
		{
			name:     "negative weights ignored",
			criteria: route.Criteria{Cost: -1, Speed: 1},
			want:     route.Criteria{Speed: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.criteria.Normalize()
			if got != tc.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
