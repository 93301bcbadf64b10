package evm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/sprintertech/bridge-orchestrator/chains"
)

var ErrRequestTimeout = errors.New("rpc request timed out")

type LimiterState struct {
	Limit  float64 `json:"limit"`
	Burst  int     `json:"burst"`
	Tokens float64 `json:"tokens"`
}

// Client is an EVM RPC provider. Every call waits on the rate limiter and
// runs with a bounded timeout.
type Client struct {
	client  *ethclient.Client
	chainID chains.ChainID
	timeout time.Duration
	limiter *rate.Limiter
}

func NewEVMClient(ctx context.Context, config *EVMConfig) (*Client, error) {
	c, err := ethclient.DialContext(ctx, config.GeneralChainConfig.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed dialing %s: %w", config.GeneralChainConfig.Name, err)
	}

	return NewClient(c, config.Network.ID, config.RequestTimeout, config.RequestsPerSecond, config.RequestBurst), nil
}

func NewClient(c *ethclient.Client, chainID chains.ChainID, timeout time.Duration, rps float64, burst int) *Client {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst <= 0 {
		burst = 1
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		client:  c,
		chainID: chainID,
		timeout: timeout,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *Client) ChainID() chains.ChainID {
	return c.chainID
}

// LatestBlock returns the current chain head
func (c *Client) LatestBlock(ctx context.Context) (uint64, error) {
	ctx, cancel, err := c.prepare(ctx)
	if err != nil {
		return 0, err
	}
	defer cancel()

	head, err := c.client.BlockNumber(ctx)
	return head, c.wrap(ctx, err)
}

func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel, err := c.prepare(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	receipt, err := c.client.TransactionReceipt(ctx, hash)
	return receipt, c.wrap(ctx, err)
}

func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	ctx, cancel, err := c.prepare(ctx)
	if err != nil {
		return nil, false, err
	}
	defer cancel()

	tx, pending, err := c.client.TransactionByHash(ctx, hash)
	return tx, pending, c.wrap(ctx, err)
}

// HealthCheck verifies the endpoint answers and serves the configured chain
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel, err := c.prepare(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	id, err := c.client.ChainID(ctx)
	if err != nil {
		return c.wrap(ctx, err)
	}
	if id.Uint64() != uint64(c.chainID) {
		return fmt.Errorf("endpoint serves chain %s, expected %d", id, c.chainID)
	}
	return nil
}

func (c *Client) LimiterState() LimiterState {
	return LimiterState{
		Limit:  float64(c.limiter.Limit()),
		Burst:  c.limiter.Burst(),
		Tokens: c.limiter.Tokens(),
	}
}

func (c *Client) Close() {
	c.client.Close()
}

func (c *Client) prepare(ctx context.Context) (context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	if err := c.limiter.Wait(ctx); err != nil {
		cancel()
		log.Debug().Uint64("chain", uint64(c.chainID)).Msgf("Rate limiter wait aborted: %s", err)
		return nil, nil, fmt.Errorf("%w: %s", ErrRequestTimeout, err)
	}
	return ctx, cancel, nil
}

func (c *Client) wrap(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrRequestTimeout, err)
	}
	return err
}
