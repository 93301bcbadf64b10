package tracker

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/bridge-orchestrator/chains"
)

type record struct {
	trackingID string
	hash       common.Hash
	network    chains.Network

	target        uint64
	confirmations uint64
	state         State
	blockNumber   uint64
	lastHead      uint64

	startTime time.Time
	endTime   time.Time
	timeout   time.Duration

	thresholds      ThresholdsReached
	flags           SecurityFlags
	securityChecked bool

	rollbacks     int
	fetchFailures int
	misses        int

	history *history
}

func (r *record) snapshot(now time.Time) {
	r.history.add(Snapshot{
		Confirmations: r.confirmations,
		Head:          r.lastHead,
		State:         r.state,
		Time:          now,
	})
}

func (r *record) status() Status {
	progress := float64(r.confirmations) / float64(r.target) * 100
	var eta time.Duration
	if !r.state.Terminal() && r.confirmations < r.target {
		// nolint:gosec
		eta = time.Duration(r.target-r.confirmations) * r.network.AverageBlockTime
	}

	return Status{
		TrackingID:             r.trackingID,
		TxHash:                 r.hash,
		Network:                r.network.ID,
		State:                  r.state,
		Confirmations:          r.confirmations,
		TargetConfirmations:    r.target,
		Progress:               min(progress, 100),
		EstimatedTimeRemaining: eta,
		BlockNumber:            r.blockNumber,
		StartTime:              r.startTime,
		EndTime:                r.endTime,
		Timeout:                r.timeout,
		Thresholds:             r.thresholds,
		SecurityFlags:          r.flags,
		RollbackCount:          r.rollbacks,
		FetchFailures:          r.fetchFailures,
		History:                r.history.snapshots(),
	}
}

func progressState(confirmations uint64) State {
	if confirmations == 0 {
		return StatePending
	}
	return StateConfirming
}
