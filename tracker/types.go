package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/sprintertech/bridge-orchestrator/chains"
)

var (
	ErrInvalidTransactionHash = errors.New("invalid transaction hash")
	ErrDuplicateTracking      = errors.New("transaction already tracked")
	ErrTrackingLimitExceeded  = errors.New("tracking limit exceeded")
	ErrUnsupportedNetwork     = errors.New("unsupported network")
	ErrNotTracked             = errors.New("transaction not tracked")
)

// ChainClient is the RPC provider of a single network
type ChainClient interface {
	LatestBlock(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
}

type State string

const (
	StatePending    State = "PENDING"
	StateConfirming State = "CONFIRMING"
	StateConfirmed  State = "CONFIRMED"
	StateFailed     State = "FAILED"
	StateDropped    State = "DROPPED"
	StateTimeout    State = "TIMEOUT"
	StateRollback   State = "ROLLBACK"
	StateCancelled  State = "CANCELLED"
)

// Terminal reports whether the record stops being polled in this state.
// ROLLBACK is only observed on rollback events and never stored.
func (s State) Terminal() bool {
	switch s {
	case StateConfirmed, StateFailed, StateDropped, StateTimeout, StateCancelled:
		return true
	default:
		return false
	}
}

type EventType string

const (
	EventTrackingStarted      EventType = "tracking_started"
	EventConfirmationUpdate   EventType = "confirmation_update"
	EventThresholdReached     EventType = "threshold_reached"
	EventConfirmationRollback EventType = "confirmation_rollback"
	EventMajorReorg           EventType = "major_reorg"
	EventReorgSuspected       EventType = "reorg_suspected"
	EventConfirmed            EventType = "confirmed"
	EventFailed               EventType = "failed"
	EventDropped              EventType = "dropped"
	EventTimeout              EventType = "timeout"
	EventCancelled            EventType = "cancelled"
)

var terminalEvents = map[State]EventType{
	StateConfirmed: EventConfirmed,
	StateFailed:    EventFailed,
	StateDropped:   EventDropped,
	StateTimeout:   EventTimeout,
	StateCancelled: EventCancelled,
}

type Event struct {
	Type          EventType      `json:"type"`
	TrackingID    string         `json:"trackingId"`
	TxHash        common.Hash    `json:"txHash"`
	Network       chains.ChainID `json:"network"`
	State         State          `json:"state"`
	Confirmations uint64         `json:"confirmations"`
	Target        uint64         `json:"target"`
	Depth         uint64         `json:"depth,omitempty"`
	Threshold     string         `json:"threshold,omitempty"`
	Head          uint64         `json:"head,omitempty"`
	Reason        string         `json:"reason,omitempty"`
	Time          time.Time      `json:"time"`
}

type EventHandler func(event Event)

type SecurityFlags struct {
	MEVDetected   bool `json:"mevDetected"`
	GasAnomaly    bool `json:"gasAnomaly"`
	ReorgAffected bool `json:"reorgAffected"`
}

type ThresholdsReached struct {
	Fast  bool `json:"fast"`
	Safe  bool `json:"safe"`
	Final bool `json:"final"`
}

type Snapshot struct {
	Confirmations uint64    `json:"confirmations"`
	Head          uint64    `json:"head"`
	State         State     `json:"state"`
	Time          time.Time `json:"time"`
}

// Options configures tracking of a single transaction. Zero values use the
// network defaults.
type Options struct {
	Network       chains.ChainID
	Confirmations uint64
	TimeoutBlocks uint64
}

// Status is a read-only view of a tracking record
type Status struct {
	TrackingID             string            `json:"trackingId"`
	TxHash                 common.Hash       `json:"txHash"`
	Network                chains.ChainID    `json:"network"`
	State                  State             `json:"state"`
	Confirmations          uint64            `json:"confirmations"`
	TargetConfirmations    uint64            `json:"targetConfirmations"`
	Progress               float64           `json:"progress"`
	EstimatedTimeRemaining time.Duration     `json:"estimatedTimeRemaining"`
	BlockNumber            uint64            `json:"blockNumber"`
	StartTime              time.Time         `json:"startTime"`
	EndTime                time.Time         `json:"endTime,omitempty"`
	Timeout                time.Duration     `json:"timeout"`
	Thresholds             ThresholdsReached `json:"thresholds"`
	SecurityFlags          SecurityFlags     `json:"securityFlags"`
	RollbackCount          int               `json:"rollbackCount"`
	FetchFailures          int               `json:"fetchFailures"`
	History                []Snapshot        `json:"history"`
}

type ThresholdHits struct {
	Fast  int64 `json:"fast"`
	Safe  int64 `json:"safe"`
	Final int64 `json:"final"`
}

type Analytics struct {
	Active                  int           `json:"active"`
	Completed               int           `json:"completed"`
	States                  map[State]int `json:"states"`
	TotalTracked            int64         `json:"totalTracked"`
	SuccessRate             float64       `json:"successRate"`
	ThresholdHits           ThresholdHits `json:"thresholdHits"`
	Rollbacks               int64         `json:"rollbacks"`
	MajorReorgs             int64         `json:"majorReorgs"`
	ReorgSuspicions         int64         `json:"reorgSuspicions"`
	AverageConfirmationTime time.Duration `json:"averageConfirmationTime"`
}

// Metrics records tracking outcomes
type Metrics interface {
	TrackingStarted(network chains.ChainID)
	TrackingFinished(network chains.ChainID, state string, duration time.Duration)
	Rollback(network chains.ChainID, depth uint64)
}

type noopMetrics struct{}

func (noopMetrics) TrackingStarted(chains.ChainID) {}
func (noopMetrics) TrackingFinished(chains.ChainID, string, time.Duration) {}
func (noopMetrics) Rollback(chains.ChainID, uint64) {}
