package bridge

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/bridge-orchestrator/protocol"
	"github.com/sprintertech/bridge-orchestrator/route"
	"github.com/sprintertech/bridge-orchestrator/tracker"
)

// ExecuteBridge submits the transfer through the requested protocol, or the
// best direct route for AUTO, retrying retryable failures with exponential
// backoff. Submitted transactions are handed to the confirmation tracker.
func (o *Orchestrator) ExecuteBridge(ctx context.Context, params Params) (*Result, error) {
	o.closingLock.Lock()
	if o.closing {
		o.closingLock.Unlock()
		return nil, ErrShuttingDown
	}
	o.inflight.Add(1)
	o.closingLock.Unlock()
	defer o.inflight.Done()

	if params.Protocol == "" {
		params.Protocol = AUTO
	}
	if err := o.validateParams(params); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	unregister := context.AfterFunc(o.stopCtx, cancel)
	defer unregister()

	now := o.clock.Now()
	t := &Transfer{
		TransactionID: uuid.NewString(),
		Protocol:      params.Protocol,
		FromChain:     params.FromChain,
		ToChain:       params.ToChain,
		Token:         strings.ToUpper(params.Token),
		Amount:        params.Amount,
		Recipient:     common.HexToAddress(params.Recipient),
		State:         StateInitiated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	o.lock.Lock()
	o.index(t)
	c := *t
	o.lock.Unlock()
	o.persist(ctx, c)
	o.executions.Inc()

	logger := log.With().Str("transactionID", t.TransactionID).Logger()
	logger.Info().Msgf("Executing bridge %s -> %s of %s %s via %s", params.FromChain, params.ToChain, params.Amount, t.Token, params.Protocol)

	b := o.backoff()
	var lastErr error
	var protocolID string
	attempts := 0
	for attempt := 1; attempt <= int(o.config.MaxRetries)+1; attempt++ {
		if attempt > 1 {
			delay := b.NextBackOff()
			logger.Debug().Msgf("Retrying bridge in %s", delay)
			select {
			case <-o.clock.After(delay):
			case <-ctx.Done():
				return nil, o.cancelled(t.TransactionID, protocolID, attempts, ctx.Err())
			}
			if params.Protocol == AUTO {
				o.routeCache.Delete(routeKey(params.FromChain, params.ToChain, params.Token, params.Amount))
			}
		}

		attempts = attempt
		var receipt *protocol.Receipt
		var err error
		receipt, protocolID, err = o.attempt(ctx, t, params, attempt)
		if err == nil {
			return o.submitted(ctx, t.TransactionID, params, protocolID, receipt, attempts), nil
		}

		lastErr = err
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			o.finish(t.TransactionID, StateFailed, err, attempts)
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, o.cancelled(t.TransactionID, protocolID, attempts, err)
		}
		if !retryable(err) {
			logger.Warn().Msgf("Bridge attempt %d failed permanently: %s", attempt, err)
			break
		}
		logger.Warn().Msgf("Bridge attempt %d failed: %s", attempt, err)
	}

	o.finish(t.TransactionID, StateFailed, lastErr, attempts)
	return nil, &ExecutionError{
		TransactionID: t.TransactionID,
		Protocol:      protocolID,
		Attempts:      attempts,
		Err:           lastErr,
	}
}

func (o *Orchestrator) attempt(ctx context.Context, t *Transfer, params Params, attempt int) (*protocol.Receipt, string, error) {
	protocolID := params.Protocol
	if protocolID == AUTO {
		id, err := o.resolve(ctx, params)
		if err != nil {
			return nil, "", err
		}
		protocolID = id
	}

	adapter, err := o.registry.Adapter(protocolID)
	if err != nil {
		return nil, protocolID, err
	}

	bp := &protocol.BridgeParams{
		TransactionID: t.TransactionID,
		FromChain:     params.FromChain,
		ToChain:       params.ToChain,
		Token:         strings.ToUpper(params.Token),
		Amount:        params.Amount,
		Recipient:     common.HexToAddress(params.Recipient),
		Nonce:         params.Nonce,
	}
	if err := o.validate(ctx, bp); err != nil {
		return nil, protocolID, err
	}

	o.update(ctx, t.TransactionID, func(t *Transfer) {
		t.Protocol = protocolID
		t.Attempt = attempt
	})
	o.metrics.BridgeAttempt(protocolID)

	attemptCtx, cancel := context.WithTimeout(ctx, o.config.AttemptTimeout)
	defer cancel()
	receipt, err := adapter.Bridge(attemptCtx, bp, o.onStatus(t.TransactionID))
	if err != nil {
		return nil, protocolID, classify(attemptCtx, err)
	}
	if receipt == nil {
		return nil, protocolID, fmt.Errorf("%w: empty receipt", ErrProtocolExecution)
	}
	return receipt, protocolID, nil
}

// resolve picks the best ranked route executable by a single adapter
func (o *Orchestrator) resolve(ctx context.Context, params Params) (string, error) {
	quote, err := o.GetBridgeRoute(ctx, params.FromChain, params.ToChain, params.Token, params.Amount)
	if err != nil {
		return "", err
	}

	for _, r := range append([]RankedRoute{quote.Best}, quote.Alternatives...) {
		if r.Direct() {
			return r.ProtocolID, nil
		}
	}
	return "", &route.RouteError{
		Err:    fmt.Errorf("%w: no direct route", route.ErrNoRouteFound),
		From:   params.FromChain,
		To:     params.ToChain,
		Token:  params.Token,
		Amount: params.Amount,
	}
}

func (o *Orchestrator) validate(ctx context.Context, bp *protocol.BridgeParams) error {
	if o.transactionValidator != nil {
		res, err := o.transactionValidator.ValidateTransaction(ctx, bp)
		if err != nil {
			return fmt.Errorf("transaction validation unavailable: %w", err)
		}
		if !res.Valid {
			return &ValidationError{Field: "transaction", Reason: strings.Join(res.Errors, "; ")}
		}
	}

	if o.nonceValidator != nil {
		res, err := o.nonceValidator.ValidateNonce(ctx, bp)
		if err != nil {
			return fmt.Errorf("nonce validation unavailable: %w", err)
		}
		if !res.Valid {
			return &ValidationError{Field: "nonce", Reason: fmt.Sprintf("expected nonce %d", res.Expected)}
		}
	}
	return nil
}

func (o *Orchestrator) validateParams(params Params) error {
	if err := o.validateRequest(params.FromChain, params.ToChain, params.Token, params.Amount); err != nil {
		return err
	}
	if !common.IsHexAddress(params.Recipient) {
		return &ValidationError{Field: "recipient", Reason: "invalid address"}
	}
	if common.HexToAddress(params.Recipient) == (common.Address{}) {
		return &ValidationError{Field: "recipient", Reason: "zero address"}
	}
	return nil
}

// submitted records the receipt and starts confirmation tracking. Tracking
// failures are logged and leave the transfer in the submitted state.
func (o *Orchestrator) submitted(
	ctx context.Context,
	id string,
	params Params,
	protocolID string,
	receipt *protocol.Receipt,
	attempts int,
) *Result {
	c := o.update(ctx, id, func(t *Transfer) {
		t.State = StateSubmitted
		t.TxHash = receipt.TxHash
		t.TrackingURL = receipt.TrackingURL
		t.LastError = ""
		o.hashes.Add(receipt.TxHash.Hex(), id)
	})

	log.Info().Str("transactionID", id).Msgf("Bridge submitted via %s with tx %s", protocolID, receipt.TxHash.Hex())

	confirmations := params.Confirmations
	if confirmations == 0 && o.confirmations != nil {
		var err error
		confirmations, err = o.confirmations.Confirmations(ctx, params.FromChain, params.Token, params.Amount)
		if err != nil {
			log.Debug().Str("transactionID", id).Msgf("Using network default confirmations: %s", err)
			confirmations = 0
		}
	}

	status, err := o.tracker.TrackConfirmations(ctx, receipt.TxHash.Hex(), tracker.Options{
		Network:       params.FromChain,
		Confirmations: confirmations,
	})
	if err != nil {
		log.Warn().Str("transactionID", id).Msgf("Failed starting confirmation tracking: %s", err)
	} else {
		c = o.update(ctx, id, func(t *Transfer) {
			t.TrackingID = status.TrackingID
		})
	}

	return &Result{
		TransactionID: id,
		Protocol:      protocolID,
		TxHash:        receipt.TxHash,
		TrackingID:    c.TrackingID,
		TrackingURL:   receipt.TrackingURL,
		EstimatedTime: receipt.EstimatedTime,
		Attempts:      attempts,
		State:         c.State,
	}
}

// onStatus records adapter progress reports on the transfer
func (o *Orchestrator) onStatus(id string) protocol.StatusCallback {
	return func(update protocol.StatusUpdate) {
		o.update(context.Background(), id, func(t *Transfer) {
			t.LastStatus = update.Status
		})
	}
}

func (o *Orchestrator) cancelled(id, protocolID string, attempts int, err error) error {
	o.finish(id, StateCancelled, err, attempts)
	return &ExecutionError{
		TransactionID: id,
		Protocol:      protocolID,
		Attempts:      attempts,
		Err:           fmt.Errorf("%w: %w", ErrCancelled, err),
	}
}

// finish moves the transfer into a terminal state
func (o *Orchestrator) finish(id string, state State, err error, attempts int) {
	var finished bool
	t := o.update(context.Background(), id, func(t *Transfer) {
		if t.State.Terminal() {
			return
		}
		finished = true
		t.State = state
		t.CompletedAt = o.clock.Now()
		if err != nil {
			t.LastError = err.Error()
		}
		if attempts > 0 {
			t.Attempt = attempts
		}
	})
	if !finished {
		return
	}

	if state != StateCancelled {
		o.reliability.record(t.Protocol, state == StateCompleted)
	}
	o.metrics.BridgeFinished(t.Protocol, string(state), t.Attempt, t.CompletedAt.Sub(t.CreatedAt))
	log.Info().Str("transactionID", id).Msgf("Bridge %s", state)
}

// backoff waits BaseDelay * 2^(n-1) after the nth failed attempt
func (o *Orchestrator) backoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.config.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = math.MaxInt64
	b.MaxElapsedTime = 0
	b.Clock = o.clock
	b.Reset()
	return b
}
