package price_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sprintertech/bridge-orchestrator/price"
	"github.com/stretchr/testify/suite"
	"go.uber.org/atomic"
)

type CoinmarketcapAPITestSuite struct {
	suite.Suite
	api        *price.CoinmarketcapAPI
	testServer *httptest.Server
	requests   *atomic.Int64
}

func TestRunCoinmarketcapAPITestSuite(t *testing.T) {
	suite.Run(t, new(CoinmarketcapAPITestSuite))
}

func (s *CoinmarketcapAPITestSuite) SetupTest() {
	s.requests = atomic.NewInt64(0)
	s.testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Inc()
		if r.Header.Get("X-CMC_PRO_API_KEY") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path == "/v1/cryptocurrency/quotes/latest" && r.URL.Query().Get("symbol") == "USDC" {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"status":{"error_code":0},"data":{"USDC":{"quote":{"USD":{"price":0.9998}}}}}`)
			return
		}
		if r.URL.Query().Get("symbol") == "MISSING" {
			_, _ = io.WriteString(w, `{"status":{"error_code":0},"data":{}}`)
			return
		}

		w.WriteHeader(http.StatusBadRequest)
	}))

	s.api = price.NewCoinmarketcapAPI(s.testServer.URL, "test-api-key")
}

func (s *CoinmarketcapAPITestSuite) TearDownTest() {
	s.testServer.Close()
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_Success() {
	price, err := s.api.TokenPrice(context.Background(), "usdc")

	s.Nil(err)
	s.Equal(0.9998, price)
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_Cached() {
	_, err := s.api.TokenPrice(context.Background(), "USDC")
	s.Nil(err)
	_, err = s.api.TokenPrice(context.Background(), "USDC")
	s.Nil(err)

	s.Equal(int64(1), s.requests.Load())
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_InvalidSymbol() {
	price, err := s.api.TokenPrice(context.Background(), "INVALID")

	s.NotNil(err)
	s.Equal(float64(0), price)
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_MissingData() {
	_, err := s.api.TokenPrice(context.Background(), "MISSING")

	s.NotNil(err)
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_APIError() {
	s.testServer.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"status": {"error_code": 500, "error_message": "Internal Server Error"}}`)
	})

	price, err := s.api.TokenPrice(context.Background(), "BTC")

	s.NotNil(err)
	s.Contains(err.Error(), "HTTP request failed with status code 500")
	s.Equal(float64(0), price)
}
