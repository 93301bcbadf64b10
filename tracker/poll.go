package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/sprintertech/bridge-orchestrator/chains"
)

type observation struct {
	receipt *types.Receipt
	tx      *types.Transaction
	err     error
}

type pollItem struct {
	record *record
	needTx bool
}

// Poll runs a single cycle for the network. Expired records time out, and
// on a new head every active record is recomputed in bounded batches.
func (t *Tracker) Poll(ctx context.Context, networkID chains.ChainID) error {
	n, ok := t.networks[networkID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedNetwork, networkID)
	}

	t.sweep(ctx, networkID)

	head, err := t.latestBlock(ctx, n)
	if err != nil {
		return fmt.Errorf("failed fetching head: %w", err)
	}

	var events []Event
	var items []pollItem
	t.lock.Lock()
	last, seen := t.heads[networkID]
	t.heads[networkID] = head
	if seen && head < last {
		t.majorReorgs.Inc()
		for _, r := range t.active {
			if r.network.ID != networkID || r.blockNumber <= head {
				continue
			}
			r.flags.ReorgAffected = true
			e := t.event(r, EventMajorReorg)
			e.Head = head
			e.Depth = last - head
			events = append(events, e)
		}
		log.Warn().Uint64("chain", uint64(networkID)).Msgf("Chain head decreased from %d to %d", last, head)
	}
	if !seen || head != last {
		for _, r := range t.active {
			if r.network.ID != networkID {
				continue
			}
			items = append(items, pollItem{
				record: r,
				needTx: !r.securityChecked,
			})
		}
	}
	t.lock.Unlock()

	t.emit(events)

	p := pool.New().WithMaxGoroutines(t.config.BatchSize)
	for _, item := range items {
		p.Go(func() {
			t.refresh(ctx, n, item, head)
		})
	}
	p.Wait()
	return nil
}

// sweep times out records of the network that exceeded their timeout.
// A zero timeout never expires.
func (t *Tracker) sweep(ctx context.Context, networkID chains.ChainID) {
	now := t.clock.Now()

	var events []Event
	var statuses []Status
	t.lock.Lock()
	for _, r := range t.active {
		if r.network.ID != networkID || r.timeout == 0 || now.Sub(r.startTime) <= r.timeout {
			continue
		}
		events = append(events, t.terminate(r, StateTimeout, fmt.Sprintf("not confirmed within %s", r.timeout)))
		statuses = append(statuses, r.status())
		t.complete(r)
	}
	t.lock.Unlock()

	t.emit(events)
	for _, s := range statuses {
		t.persist(ctx, s)
	}
}

func (t *Tracker) refresh(ctx context.Context, n *network, item pollItem, head uint64) {
	obs := t.lookup(ctx, n, item.record.hash, item.needTx)

	t.lock.Lock()
	before := item.record.state.Terminal()
	events := t.apply(item.record, obs, head)
	finished := !before && item.record.state.Terminal()
	var status Status
	if finished {
		status = item.record.status()
		t.complete(item.record)
	}
	t.lock.Unlock()

	t.emit(events)
	if finished {
		t.persist(ctx, status)
	}
}

// lookup fetches the receipt and, when missing or needed by the security
// policy, the transaction itself
func (t *Tracker) lookup(ctx context.Context, n *network, hash common.Hash, needTx bool) observation {
	var receipt *types.Receipt
	err := t.retry(ctx, func(ctx context.Context) error {
		var err error
		receipt, err = n.client.TransactionReceipt(ctx, hash)
		return err
	})
	if err != nil && !errors.Is(err, ethereum.NotFound) {
		return observation{err: err}
	}
	if err != nil {
		receipt = nil
	}

	obs := observation{receipt: receipt}
	if receipt != nil && !needTx {
		return obs
	}

	var tx *types.Transaction
	err = t.retry(ctx, func(ctx context.Context) error {
		var err error
		tx, _, err = n.client.TransactionByHash(ctx, hash)
		return err
	})
	switch {
	case err == nil:
		obs.tx = tx
	case errors.Is(err, ethereum.NotFound):
	case receipt == nil:
		return observation{err: err}
	}
	return obs
}

// apply updates the record from the observation. Caller holds the lock.
func (t *Tracker) apply(r *record, obs observation, head uint64) []Event {
	if r.state.Terminal() {
		return nil
	}

	if obs.err != nil {
		r.fetchFailures++
		log.Debug().Str("trackingID", r.trackingID).Msgf("Failed fetching %s: %s", r.hash.Hex(), obs.err)
		if t.config.MaxFetchFailures > 0 && r.fetchFailures >= t.config.MaxFetchFailures {
			return []Event{t.terminate(r, StateFailed, "persistent fetch failures")}
		}
		return nil
	}
	r.fetchFailures = 0
	r.lastHead = head

	if obs.receipt == nil {
		return t.applyMissing(r, obs, head)
	}
	r.misses = 0

	if obs.receipt.BlockNumber != nil {
		r.blockNumber = obs.receipt.BlockNumber.Uint64()
	}
	if obs.receipt.Status == types.ReceiptStatusFailed {
		return []Event{t.terminate(r, StateFailed, "transaction reverted")}
	}

	if !r.securityChecked && t.policy != nil {
		flags := t.policy.Evaluate(obs.tx, obs.receipt)
		r.flags.GasAnomaly = flags.GasAnomaly
		r.flags.MEVDetected = flags.MEVDetected
		r.securityChecked = true
	}

	var confirmations uint64
	if head >= r.blockNumber {
		confirmations = head - r.blockNumber + 1
	}

	now := t.clock.Now()
	if confirmations < r.confirmations {
		depth := r.confirmations - confirmations
		r.confirmations = confirmations
		r.state = progressState(confirmations)
		r.flags.ReorgAffected = true
		r.rollbacks++
		r.snapshot(now)
		t.rollbacks.Inc()
		t.metrics.Rollback(r.network.ID, depth)

		e := t.event(r, EventConfirmationRollback)
		e.State = StateRollback
		e.Depth = depth
		return []Event{e}
	}

	var events []Event
	if confirmations != r.confirmations {
		r.confirmations = confirmations
		r.state = progressState(confirmations)
		events = append(events, t.event(r, EventConfirmationUpdate))
	}
	events = append(events, t.thresholds(r)...)

	if r.confirmations >= r.target {
		return append(events, t.terminate(r, StateConfirmed, ""))
	}

	r.state = progressState(r.confirmations)
	r.snapshot(now)
	return events
}

func (t *Tracker) applyMissing(r *record, obs observation, head uint64) []Event {
	if r.confirmations > 0 {
		depth := r.confirmations
		r.confirmations = 0
		r.blockNumber = 0
		r.state = StatePending
		r.flags.ReorgAffected = true
		r.rollbacks++
		r.snapshot(t.clock.Now())
		t.reorgSuspicions.Inc()
		t.rollbacks.Inc()
		t.metrics.Rollback(r.network.ID, depth)

		e := t.event(r, EventReorgSuspected)
		e.Depth = depth
		e.Reason = "receipt disappeared"
		return []Event{e}
	}

	if obs.tx != nil {
		r.misses = 0
		return nil
	}

	r.misses++
	if r.misses >= t.config.DropAfterMisses {
		return []Event{t.terminate(r, StateDropped, "transaction not found")}
	}
	return nil
}

func (t *Tracker) thresholds(r *record) []Event {
	var events []Event
	check := func(name string, threshold uint64, reached *bool) bool {
		if *reached || threshold == 0 || r.confirmations < threshold {
			return false
		}
		*reached = true
		e := t.event(r, EventThresholdReached)
		e.Threshold = name
		events = append(events, e)
		return true
	}

	th := r.network.Thresholds
	if check("fast", th.Fast, &r.thresholds.Fast) {
		t.fastHits.Inc()
	}
	if check("safe", th.Safe, &r.thresholds.Safe) {
		t.safeHits.Inc()
	}
	if check("final", th.Final, &r.thresholds.Final) {
		t.finalHits.Inc()
	}
	return events
}

// terminate moves the record into a terminal state. Caller holds the lock.
func (t *Tracker) terminate(r *record, state State, reason string) Event {
	now := t.clock.Now()
	r.state = state
	r.endTime = now
	r.snapshot(now)

	duration := now.Sub(r.startTime)
	if state != StateCancelled {
		t.finished.Inc()
	}
	if state == StateConfirmed {
		t.confirmed.Inc()
		t.confirmationTime.Add(duration)
	}
	t.metrics.TrackingFinished(r.network.ID, string(state), duration)

	e := t.event(r, terminalEvents[state])
	e.Reason = reason
	return e
}

func (t *Tracker) latestBlock(ctx context.Context, n *network) (uint64, error) {
	var head uint64
	err := t.retry(ctx, func(ctx context.Context) error {
		var err error
		head, err = n.client.LatestBlock(ctx)
		return err
	})
	return head, err
}

// retry calls fn up to FetchRetries additional times, each call bounded by
// the request timeout. Not found results are not retried.
func (t *Tracker) retry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for i := 0; i <= t.config.FetchRetries; i++ {
		callCtx, cancel := context.WithTimeout(ctx, t.config.RequestTimeout)
		err = fn(callCtx)
		cancel()
		if err == nil || errors.Is(err, ethereum.NotFound) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
