package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/atomic"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/protocol"
)

const (
	MAX_CONSECUTIVE_FAILURES = 3
)

type QuoteResponse struct {
	Fee        float64 `json:"fee"`
	Time       uint64  `json:"time"`
	Confidence float64 `json:"confidence"`
}

type TransferRequest struct {
	TransactionID string `json:"transactionId"`
	FromChain     uint64 `json:"fromChain"`
	ToChain       uint64 `json:"toChain"`
	Token         string `json:"token"`
	Amount        string `json:"amount"`
	Recipient     string `json:"recipient"`
}

type TransferResponse struct {
	TxHash        string `json:"txHash"`
	EstimatedTime uint64 `json:"estimatedTime"`
	TrackingURL   string `json:"trackingUrl"`
	Status        string `json:"status"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// RestAdapter integrates a protocol exposing a quote/transfer/status HTTP API
type RestAdapter struct {
	url    string
	apiKey string
	chains []chains.ChainID

	Client   *http.Client
	failures *atomic.Int64
}

func NewRestAdapter(url string, apiKey string, supportedChains []chains.ChainID) *RestAdapter {
	return &RestAdapter{
		url:    url,
		apiKey: apiKey,
		chains: supportedChains,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		failures: atomic.NewInt64(0),
	}
}

func (a *RestAdapter) SupportedChains() []chains.ChainID {
	return a.chains
}

// Healthy reports false after MAX_CONSECUTIVE_FAILURES failed requests in a row
func (a *RestAdapter) Healthy() bool {
	return a.failures.Load() < MAX_CONSECUTIVE_FAILURES
}

func (a *RestAdapter) CalculateRoute(
	ctx context.Context,
	from, to chains.ChainID,
	amount *big.Int,
	token string,
) (*protocol.Quote, error) {
	query := url.Values{}
	query.Set("from", fmt.Sprint(uint64(from)))
	query.Set("to", fmt.Sprint(uint64(to)))
	query.Set("amount", amount.String())
	query.Set("token", token)

	q := new(QuoteResponse)
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("%s/quote?%s", a.url, query.Encode()), nil, q)
	if err != nil {
		return nil, err
	}

	return &protocol.Quote{
		Fee: q.Fee,
		// nolint:gosec
		Time:       time.Duration(q.Time) * time.Second,
		Confidence: q.Confidence,
	}, nil
}

func (a *RestAdapter) Bridge(
	ctx context.Context,
	params *protocol.BridgeParams,
	onStatus protocol.StatusCallback,
) (*protocol.Receipt, error) {
	body, err := json.Marshal(TransferRequest{
		TransactionID: params.TransactionID,
		FromChain:     uint64(params.FromChain),
		ToChain:       uint64(params.ToChain),
		Token:         params.Token,
		Amount:        params.Amount.String(),
		Recipient:     params.Recipient.Hex(),
	})
	if err != nil {
		return nil, err
	}

	t := new(TransferResponse)
	err = a.do(ctx, http.MethodPost, fmt.Sprintf("%s/transfers", a.url), body, t)
	if err != nil {
		return nil, err
	}
	if len(common.FromHex(t.TxHash)) != common.HashLength {
		return nil, fmt.Errorf("invalid transaction hash %s", t.TxHash)
	}

	if onStatus != nil {
		status := protocol.Status(t.Status)
		if status == "" {
			status = protocol.StatusSubmitted
		}
		onStatus(protocol.StatusUpdate{
			TransactionID: params.TransactionID,
			Status:        status,
			Message:       t.TrackingURL,
		})
	}

	return &protocol.Receipt{
		TxHash: common.HexToHash(t.TxHash),
		// nolint:gosec
		EstimatedTime: time.Duration(t.EstimatedTime) * time.Second,
		TrackingURL:   t.TrackingURL,
	}, nil
}

func (a *RestAdapter) GetTransactionStatus(ctx context.Context, txHash common.Hash) (protocol.Status, error) {
	s := new(StatusResponse)
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("%s/transfers/%s", a.url, txHash.Hex()), nil, s)
	if err != nil {
		return protocol.StatusUnknown, err
	}

	switch status := protocol.Status(s.Status); status {
	case protocol.StatusPending,
		protocol.StatusSubmitted,
		protocol.StatusConfirming,
		protocol.StatusCompleted,
		protocol.StatusFailed:
		return status, nil
	default:
		return protocol.StatusUnknown, nil
	}
}

func (a *RestAdapter) do(ctx context.Context, method string, url string, body []byte, result interface{}) error {
	err := a.request(ctx, method, url, body, result)
	if err != nil {
		a.failures.Inc()
		return err
	}

	a.failures.Store(0)
	return nil
}

func (a *RestAdapter) request(ctx context.Context, method string, url string, body []byte, result interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Add("x-api-key", a.apiKey)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}
