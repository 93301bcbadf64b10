package chains_test

import (
	"testing"
	"time"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/stretchr/testify/suite"
)

type ChainsTestSuite struct {
	suite.Suite
}

func TestRunChainsTestSuite(t *testing.T) {
	suite.Run(t, new(ChainsTestSuite))
}

func (s *ChainsTestSuite) Test_ParseChainID_Numeric() {
	id, err := chains.ParseChainID("42161")

	s.Nil(err)
	s.Equal(chains.Arbitrum, id)
}

func (s *ChainsTestSuite) Test_ParseChainID_Name() {
	id, err := chains.ParseChainID("Ethereum")

	s.Nil(err)
	s.Equal(chains.Ethereum, id)
}

func (s *ChainsTestSuite) Test_ParseChainID_Invalid() {
	_, err := chains.ParseChainID("")
	s.NotNil(err)

	_, err = chains.ParseChainID("0")
	s.NotNil(err)

	_, err = chains.ParseChainID("unknown")
	s.NotNil(err)
}

func (s *ChainsTestSuite) Test_Timeout_DefaultBlocks() {
	n, ok := chains.KnownNetwork(chains.Ethereum)

	s.True(ok)
	s.Equal(150*12*time.Second, n.Timeout(0))
	s.Equal(10*12*time.Second, n.Timeout(10))
}

func (s *ChainsTestSuite) Test_String() {
	s.Equal("polygon", chains.Polygon.String())
	s.Equal("999", chains.ChainID(999).String())
}
