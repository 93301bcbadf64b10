package bridge_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/sprintertech/bridge-orchestrator/bridge"
	mock_bridge "github.com/sprintertech/bridge-orchestrator/bridge/mock"
	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/config"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ValuePolicyTestSuite struct {
	suite.Suite

	pricer *mock_bridge.MockTokenPricer
	policy *bridge.ValuePolicy
}

func TestRunValuePolicyTestSuite(t *testing.T) {
	suite.Run(t, new(ValuePolicyTestSuite))
}

func (s *ValuePolicyTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.pricer = mock_bridge.NewMockTokenPricer(ctrl)

	tokens, err := config.NewTokenStore([]config.RawTokenConfig{
		{Symbol: "USDC", Chain: 1, Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Decimals: 6},
	})
	s.Nil(err)
	s.policy = bridge.NewValuePolicy(tokens, s.pricer, map[chains.ChainID]map[uint64]uint64{
		chains.Ethereum: {
			1000:  2,
			10000: 6,
		},
	})
}

func (s *ValuePolicyTestSuite) Test_NoBuckets() {
	_, err := s.policy.Confirmations(context.Background(), chains.Polygon, "USDC", big.NewInt(1))

	s.NotNil(err)
}

func (s *ValuePolicyTestSuite) Test_UnknownToken() {
	_, err := s.policy.Confirmations(context.Background(), chains.Ethereum, "WETH", big.NewInt(1))

	s.NotNil(err)
}

func (s *ValuePolicyTestSuite) Test_PriceFailure() {
	s.pricer.EXPECT().TokenPrice(gomock.Any(), "USDC").Return(0.0, errors.New("error"))

	_, err := s.policy.Confirmations(context.Background(), chains.Ethereum, "USDC", big.NewInt(1))

	s.NotNil(err)
}

func (s *ValuePolicyTestSuite) Test_Buckets() {
	tests := []struct {
		name     string
		amount   *big.Int
		expected uint64
	}{
		{name: "small transfer", amount: big.NewInt(500_000_000), expected: 2},
		{name: "medium transfer", amount: big.NewInt(5_000_000_000), expected: 6},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.pricer.EXPECT().TokenPrice(gomock.Any(), "USDC").Return(1.0, nil)

			confirmations, err := s.policy.Confirmations(context.Background(), chains.Ethereum, "USDC", tt.amount)

			s.Nil(err)
			s.Equal(tt.expected, confirmations)
		})
	}
}

func (s *ValuePolicyTestSuite) Test_ValueExceedsBuckets() {
	s.pricer.EXPECT().TokenPrice(gomock.Any(), "USDC").Return(1.0, nil)

	_, err := s.policy.Confirmations(context.Background(), chains.Ethereum, "USDC", big.NewInt(50_000_000_000))

	s.NotNil(err)
}
