package protocol

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/bridge-orchestrator/chains"
)

var (
	ErrUnknownProtocol  = errors.New("unknown protocol")
	ErrNoAdapter        = errors.New("protocol has no adapter configured")
	ErrUnsupportedRoute = errors.New("protocol does not support route")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusSubmitted  Status = "submitted"
	StatusConfirming Status = "confirming"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusUnknown    Status = "unknown"
)

// Quote is the estimated cost of moving a token over a single leg. Fee is
// denominated in the token's base units.
type Quote struct {
	Fee        float64       `json:"fee"`
	Time       time.Duration `json:"time"`
	Confidence float64       `json:"confidence"`
}

type BridgeParams struct {
	TransactionID string
	FromChain     chains.ChainID
	ToChain       chains.ChainID
	Token         string
	Amount        *big.Int
	Recipient     common.Address
	Nonce         *uint64
}

type Receipt struct {
	TxHash        common.Hash   `json:"txHash"`
	EstimatedTime time.Duration `json:"estimatedTime"`
	TrackingURL   string        `json:"trackingUrl"`
}

type StatusUpdate struct {
	TransactionID string `json:"transactionId"`
	Status        Status `json:"status"`
	Message       string `json:"message"`
}

type StatusCallback func(update StatusUpdate)

// Adapter integrates a single bridge protocol
type Adapter interface {
	SupportedChains() []chains.ChainID
	CalculateRoute(ctx context.Context, from, to chains.ChainID, amount *big.Int, token string) (*Quote, error)
	Bridge(ctx context.Context, params *BridgeParams, onStatus StatusCallback) (*Receipt, error)
	GetTransactionStatus(ctx context.Context, txHash common.Hash) (Status, error)
}

// HealthReporter is implemented by adapters that track their own availability
type HealthReporter interface {
	Healthy() bool
}

// Leg is a single protocol hop of a route
type Leg struct {
	Protocol string         `json:"protocol"`
	From     chains.ChainID `json:"from"`
	To       chains.ChainID `json:"to"`
	Token    string         `json:"token"`
	Amount   *big.Int       `json:"amount"`
}

// CostEstimator estimates the cost of a leg
type CostEstimator interface {
	Estimate(ctx context.Context, leg Leg) (Quote, error)
}
