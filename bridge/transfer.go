package bridge

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/protocol"
	"github.com/sprintertech/bridge-orchestrator/route"
	"github.com/sprintertech/bridge-orchestrator/tracker"
)

const AUTO = "auto"

type State string

const (
	StateInitiated  State = "initiated"
	StateSubmitted  State = "submitted"
	StateConfirming State = "confirming"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	StateCancelled  State = "cancelled"
)

func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

type Params struct {
	Protocol  string         `json:"protocol"`
	FromChain chains.ChainID `json:"fromChain"`
	ToChain   chains.ChainID `json:"toChain"`
	Token     string         `json:"token"`
	Amount    *big.Int       `json:"amount"`
	Recipient string         `json:"recipient"`
	// Zero uses the value based policy or the network default
	Confirmations uint64  `json:"confirmations"`
	Nonce         *uint64 `json:"nonce,omitempty"`
}

// Transfer is the lifecycle record of a single ExecuteBridge call
type Transfer struct {
	TransactionID string          `json:"transactionId"`
	Protocol      string          `json:"protocol"`
	FromChain     chains.ChainID  `json:"fromChain"`
	ToChain       chains.ChainID  `json:"toChain"`
	Token         string          `json:"token"`
	Amount        *big.Int        `json:"amount"`
	Recipient     common.Address  `json:"recipient"`
	Attempt       int             `json:"attempt"`
	TxHash        common.Hash     `json:"txHash"`
	TrackingID    string          `json:"trackingId,omitempty"`
	TrackingURL   string          `json:"trackingUrl,omitempty"`
	State         State           `json:"state"`
	LastError     string          `json:"lastError,omitempty"`
	LastStatus    protocol.Status `json:"lastStatus,omitempty"`
	ReorgAffected bool            `json:"reorgAffected"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	CompletedAt   time.Time       `json:"completedAt,omitempty"`
}

type Result struct {
	TransactionID string        `json:"transactionId"`
	Protocol      string        `json:"protocol"`
	TxHash        common.Hash   `json:"txHash"`
	TrackingID    string        `json:"trackingId,omitempty"`
	TrackingURL   string        `json:"trackingUrl,omitempty"`
	EstimatedTime time.Duration `json:"estimatedTime"`
	Attempts      int           `json:"attempts"`
	State         State         `json:"state"`
}

type RankedRoute struct {
	route.Route
	Reliability float64 `json:"reliability"`
	FinalScore  float64 `json:"finalScore"`
}

type RouteQuote struct {
	Best         RankedRoute   `json:"best"`
	Alternatives []RankedRoute `json:"alternatives"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type Source string

const (
	SourceTracker  Source = "tracker"
	SourceProtocol Source = "protocol"
	SourceHistory  Source = "history"
)

type TransactionStatus struct {
	Transfer       Transfer        `json:"transfer"`
	Source         Source          `json:"source"`
	Tracking       *tracker.Status `json:"tracking,omitempty"`
	ProtocolStatus protocol.Status `json:"protocolStatus,omitempty"`
}

type HistoryFilter struct {
	State    State
	Protocol string
	Chain    chains.ChainID
	Limit    int
}

type ProtocolStats struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"successRate"`
	Reliability float64 `json:"reliability"`
}

type Stats struct {
	Total           int                      `json:"total"`
	Completed       int                      `json:"completed"`
	Failed          int                      `json:"failed"`
	Cancelled       int                      `json:"cancelled"`
	InProgress      int                      `json:"inProgress"`
	SuccessRate     float64                  `json:"successRate"`
	AverageDuration time.Duration            `json:"averageDuration"`
	Protocols       map[string]ProtocolStats `json:"protocols"`
}
