package bridge_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/bridge-orchestrator/bridge"
	mock_bridge "github.com/sprintertech/bridge-orchestrator/bridge/mock"
	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/config"
	"github.com/sprintertech/bridge-orchestrator/protocol"
	mock_protocol "github.com/sprintertech/bridge-orchestrator/protocol/mock"
	"github.com/sprintertech/bridge-orchestrator/route"
	"github.com/sprintertech/bridge-orchestrator/store/memory"
	"github.com/sprintertech/bridge-orchestrator/tracker"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const recipient = "0x000000000000000000000000000000000000dEaD"

func protocolConfig(id string, averageTime uint64, baseFee float64, reliability float64) config.ProtocolConfig {
	return config.ProtocolConfig{
		Id:            id,
		Chains:        []uint64{1, 10},
		TrustModel:    "committee",
		AverageTime:   averageTime,
		BaseFee:       baseFee,
		Reliability:   reliability,
		SecurityScore: 0.8,
	}
}

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	registry   *protocol.Registry
	calculator *route.Calculator
	tracker    *mock_bridge.MockTracker
	adapters   map[string]*mock_protocol.MockAdapter
	store      *memory.MemoryStore
	handler    tracker.EventHandler
	amount     *big.Int
	config     bridge.Config
}

func TestRunOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.amount = big.NewInt(1_000_000)
	s.registry = protocol.NewRegistry()
	s.adapters = make(map[string]*mock_protocol.MockAdapter)
	for _, c := range []config.ProtocolConfig{
		protocolConfig("fast", 100, 30, 0.90),
		protocolConfig("medium", 200, 20, 0.95),
		protocolConfig("slow", 300, 10, 0.99),
	} {
		capability, err := protocol.NewCapability(c)
		s.Nil(err)
		adapter := mock_protocol.NewMockAdapter(s.ctrl)
		adapter.EXPECT().SupportedChains().Return([]chains.ChainID{chains.Ethereum, chains.Optimism}).AnyTimes()
		s.Nil(s.registry.Register(capability, adapter))
		s.adapters[c.Id] = adapter
	}
	s.calculator = route.NewCalculator(s.registry, protocol.NewCapabilityEstimator(s.registry))

	s.tracker = mock_bridge.NewMockTracker(s.ctrl)
	s.tracker.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(handler tracker.EventHandler) int {
		s.handler = handler
		return 1
	}).AnyTimes()
	s.tracker.EXPECT().Unsubscribe(1).AnyTimes()

	s.store = memory.NewMemoryStore()
	s.config = bridge.Config{
		MaxRetries:     3,
		BaseDelay:      time.Millisecond,
		AttemptTimeout: time.Second,
		RouteCacheTTL:  time.Minute,
	}
}

func (s *OrchestratorTestSuite) orchestrator(opts ...bridge.Option) *bridge.Orchestrator {
	opts = append([]bridge.Option{bridge.WithStore(s.store)}, opts...)
	return bridge.NewOrchestrator(s.calculator, s.registry, s.tracker, s.config, opts...)
}

func (s *OrchestratorTestSuite) params(protocolID string) bridge.Params {
	return bridge.Params{
		Protocol:  protocolID,
		FromChain: chains.Ethereum,
		ToChain:   chains.Optimism,
		Token:     "usdc",
		Amount:    s.amount,
		Recipient: recipient,
	}
}

func receipt(n int64) *protocol.Receipt {
	return &protocol.Receipt{
		TxHash:        common.BigToHash(big.NewInt(n)),
		EstimatedTime: time.Minute,
		TrackingURL:   fmt.Sprintf("https://scan.io/tx/%d", n),
	}
}

func (s *OrchestratorTestSuite) expectTracking(hash common.Hash) {
	s.tracker.EXPECT().TrackConfirmations(gomock.Any(), hash.Hex(), gomock.Any()).Return(&tracker.Status{
		TrackingID: "tracking",
		TxHash:     hash,
		State:      tracker.StatePending,
	}, nil)
}

func (s *OrchestratorTestSuite) Test_GetBridgeRoute_Cached() {
	o := s.orchestrator()

	first, err := o.GetBridgeRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount)
	s.Nil(err)
	second, err := o.GetBridgeRoute(context.Background(), chains.Ethereum, chains.Optimism, "usdc", s.amount)
	s.Nil(err)

	s.Equal(first, second)
	s.Equal(int64(1), s.calculator.CalculationCount())
	s.Len(first.Alternatives, 2)
	for _, alternative := range first.Alternatives {
		s.GreaterOrEqual(first.Best.FinalScore, alternative.FinalScore)
	}
}

func (s *OrchestratorTestSuite) Test_GetBridgeRoute_BlendsReliability() {
	o := s.orchestrator()

	quote, err := o.GetBridgeRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount)

	s.Nil(err)
	best := quote.Best
	capability, _ := s.registry.Capability(best.ProtocolID)
	s.Equal(capability.Reliability, best.Reliability)
	s.InDelta(0.6*best.Score+0.25*best.Reliability+0.15*best.SecurityScore, best.FinalScore, 1e-9)
}

func (s *OrchestratorTestSuite) Test_GetBridgeRoute_InvalidRequest() {
	o := s.orchestrator()

	_, err := o.GetBridgeRoute(context.Background(), chains.Ethereum, chains.Ethereum, "USDC", s.amount)

	var validationErr *bridge.ValidationError
	s.True(errors.As(err, &validationErr))
	s.Equal(int64(0), s.calculator.CalculationCount())
}

func (s *OrchestratorTestSuite) Test_GetBridgeRoute_NoRoute() {
	o := s.orchestrator()

	_, err := o.GetBridgeRoute(context.Background(), chains.Ethereum, chains.Arbitrum, "USDC", s.amount)

	s.True(errors.Is(err, route.ErrNoRouteFound))
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_AlwaysFailing() {
	o := s.orchestrator()
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("execution reverted")).Times(4)

	start := time.Now()
	_, err := o.ExecuteBridge(context.Background(), s.params("fast"))

	var executionErr *bridge.ExecutionError
	s.True(errors.As(err, &executionErr))
	s.Equal(4, executionErr.Attempts)
	s.Equal("fast", executionErr.Protocol)
	s.True(errors.Is(err, bridge.ErrProtocolExecution))
	s.GreaterOrEqual(time.Since(start), 7*time.Millisecond)

	history := o.GetBridgeHistory(bridge.HistoryFilter{})
	s.Len(history, 1)
	s.Equal(bridge.StateFailed, history[0].State)
	s.Equal(executionErr.TransactionID, history[0].TransactionID)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_RetriesUntilSuccess() {
	o := s.orchestrator()
	r := receipt(1)
	gomock.InOrder(
		s.adapters["slow"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc unavailable")),
		s.adapters["slow"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil),
	)
	s.expectTracking(r.TxHash)

	result, err := o.ExecuteBridge(context.Background(), s.params("slow"))

	s.Nil(err)
	s.Equal(2, result.Attempts)
	s.Equal("slow", result.Protocol)
	s.Equal(r.TxHash, result.TxHash)
	s.Equal("tracking", result.TrackingID)
	s.Equal(bridge.StateSubmitted, result.State)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_AutoSelectsBestRoute() {
	o := s.orchestrator()
	quote, err := o.GetBridgeRoute(context.Background(), chains.Ethereum, chains.Optimism, "USDC", s.amount)
	s.Nil(err)

	r := receipt(2)
	for _, adapter := range s.adapters {
		adapter.EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil).AnyTimes()
	}
	s.expectTracking(r.TxHash)

	result, err := o.ExecuteBridge(context.Background(), s.params(bridge.AUTO))

	s.Nil(err)
	s.Equal(quote.Best.ProtocolID, result.Protocol)
	s.Equal(1, result.Attempts)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_PassesParamsToAdapter() {
	o := s.orchestrator()
	nonce := uint64(7)
	params := s.params("fast")
	params.Nonce = &nonce
	r := receipt(3)
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, p *protocol.BridgeParams, onStatus protocol.StatusCallback) (*protocol.Receipt, error) {
			s.Equal("USDC", p.Token)
			s.Equal(common.HexToAddress(recipient), p.Recipient)
			s.Equal(&nonce, p.Nonce)
			s.NotEmpty(p.TransactionID)
			onStatus(protocol.StatusUpdate{TransactionID: p.TransactionID, Status: protocol.StatusSubmitted})
			return r, nil
		})
	s.expectTracking(r.TxHash)

	result, err := o.ExecuteBridge(context.Background(), params)

	s.Nil(err)
	history := o.GetBridgeHistory(bridge.HistoryFilter{})
	s.Equal(result.TransactionID, history[0].TransactionID)
	s.Equal(protocol.StatusSubmitted, history[0].LastStatus)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_UnknownProtocol() {
	o := s.orchestrator()

	_, err := o.ExecuteBridge(context.Background(), s.params("wormhole"))

	var executionErr *bridge.ExecutionError
	s.True(errors.As(err, &executionErr))
	s.Equal(1, executionErr.Attempts)
	s.True(errors.Is(err, protocol.ErrUnknownProtocol))
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_InvalidParams() {
	o := s.orchestrator()

	tests := []struct {
		name   string
		modify func(p *bridge.Params)
	}{
		{name: "invalid recipient", modify: func(p *bridge.Params) { p.Recipient = "invalid" }},
		{name: "zero recipient", modify: func(p *bridge.Params) { p.Recipient = common.Address{}.Hex() }},
		{name: "zero amount", modify: func(p *bridge.Params) { p.Amount = big.NewInt(0) }},
		{name: "missing token", modify: func(p *bridge.Params) { p.Token = "" }},
		{name: "same chain", modify: func(p *bridge.Params) { p.ToChain = p.FromChain }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			params := s.params("fast")
			tt.modify(&params)

			_, err := o.ExecuteBridge(context.Background(), params)

			var validationErr *bridge.ValidationError
			s.True(errors.As(err, &validationErr))
		})
	}
	s.Len(o.GetBridgeHistory(bridge.HistoryFilter{}), 0)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_UnsupportedToken() {
	tokens := mock_bridge.NewMockTokenSupport(s.ctrl)
	tokens.EXPECT().Supports(chains.Ethereum, "usdc").Return(false)
	o := s.orchestrator(bridge.WithTokens(tokens))

	_, err := o.ExecuteBridge(context.Background(), s.params("fast"))

	var validationErr *bridge.ValidationError
	s.True(errors.As(err, &validationErr))
	s.Equal("token", validationErr.Field)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_TransactionValidatorRejects() {
	transactions := mock_bridge.NewMockTransactionValidator(s.ctrl)
	transactions.EXPECT().ValidateTransaction(gomock.Any(), gomock.Any()).Return(bridge.ValidationResult{
		Valid:  false,
		Errors: []string{"insufficient balance"},
	}, nil)
	o := s.orchestrator(bridge.WithValidators(transactions, nil))

	_, err := o.ExecuteBridge(context.Background(), s.params("fast"))

	var validationErr *bridge.ValidationError
	s.True(errors.As(err, &validationErr))
	s.Equal("insufficient balance", validationErr.Reason)
	history := o.GetBridgeHistory(bridge.HistoryFilter{})
	s.Equal(bridge.StateFailed, history[0].State)
	s.Equal(1, history[0].Attempt)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_NonceValidatorRejects() {
	transactions := mock_bridge.NewMockTransactionValidator(s.ctrl)
	transactions.EXPECT().ValidateTransaction(gomock.Any(), gomock.Any()).Return(bridge.ValidationResult{Valid: true}, nil)
	nonces := mock_bridge.NewMockNonceValidator(s.ctrl)
	nonces.EXPECT().ValidateNonce(gomock.Any(), gomock.Any()).Return(bridge.NonceResult{Valid: false, Expected: 5}, nil)
	o := s.orchestrator(bridge.WithValidators(transactions, nonces))

	_, err := o.ExecuteBridge(context.Background(), s.params("fast"))

	var validationErr *bridge.ValidationError
	s.True(errors.As(err, &validationErr))
	s.Equal("nonce", validationErr.Field)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_ValidatorUnavailableRetries() {
	transactions := mock_bridge.NewMockTransactionValidator(s.ctrl)
	r := receipt(4)
	gomock.InOrder(
		transactions.EXPECT().ValidateTransaction(gomock.Any(), gomock.Any()).Return(bridge.ValidationResult{}, errors.New("timeout")),
		transactions.EXPECT().ValidateTransaction(gomock.Any(), gomock.Any()).Return(bridge.ValidationResult{Valid: true}, nil),
	)
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
	s.expectTracking(r.TxHash)
	o := s.orchestrator(bridge.WithValidators(transactions, nil))

	result, err := o.ExecuteBridge(context.Background(), s.params("fast"))

	s.Nil(err)
	s.Equal(2, result.Attempts)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_ConfirmationPolicy() {
	policy := mock_bridge.NewMockConfirmationPolicy(s.ctrl)
	policy.EXPECT().Confirmations(gomock.Any(), chains.Ethereum, "usdc", s.amount).Return(uint64(6), nil)
	o := s.orchestrator(bridge.WithConfirmationPolicy(policy))
	r := receipt(5)
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
	s.tracker.EXPECT().TrackConfirmations(gomock.Any(), r.TxHash.Hex(), tracker.Options{
		Network:       chains.Ethereum,
		Confirmations: 6,
	}).Return(&tracker.Status{TrackingID: "tracking"}, nil)

	_, err := o.ExecuteBridge(context.Background(), s.params("fast"))

	s.Nil(err)
}

func (s *OrchestratorTestSuite) Test_ExecuteBridge_ExplicitConfirmations() {
	policy := mock_bridge.NewMockConfirmationPolicy(s.ctrl)
	o := s.orchestrator(bridge.WithConfirmationPolicy(policy))
	r := receipt(6)
	params := s.params("fast")
	params.Confirmations = 3
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
	s.tracker.EXPECT().TrackConfirmations(gomock.Any(), r.TxHash.Hex(), tracker.Options{
		Network:       chains.Ethereum,
		Confirmations: 3,
	}).Return(&tracker.Status{TrackingID: "tracking"}, nil)

	_, err := o.ExecuteBridge(context.Background(), params)

	s.Nil(err)
}

func (s *OrchestratorTestSuite) Test_History_KeepsInFlightTransfers() {
	s.config.MaxHistory = 1
	o := s.orchestrator()
	first, second, third := receipt(30), receipt(31), receipt(32)
	gomock.InOrder(
		s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(first, nil),
		s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(second, nil),
		s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(third, nil),
	)
	s.expectTracking(first.TxHash)
	s.expectTracking(second.TxHash)
	s.expectTracking(third.TxHash)

	firstResult, err := o.ExecuteBridge(context.Background(), s.params("fast"))
	s.Nil(err)
	secondResult, err := o.ExecuteBridge(context.Background(), s.params("fast"))
	s.Nil(err)
	s.Len(o.GetBridgeHistory(bridge.HistoryFilter{}), 2)

	s.handler(tracker.Event{Type: tracker.EventConfirmed, TxHash: first.TxHash, TrackingID: "tracking"})
	history := o.GetBridgeHistory(bridge.HistoryFilter{})
	s.Len(history, 2)
	s.Equal(firstResult.TransactionID, history[1].TransactionID)
	s.Equal(bridge.StateCompleted, history[1].State)

	thirdResult, err := o.ExecuteBridge(context.Background(), s.params("fast"))
	s.Nil(err)
	history = o.GetBridgeHistory(bridge.HistoryFilter{})
	s.Len(history, 2)
	s.Equal(thirdResult.TransactionID, history[0].TransactionID)
	s.Equal(secondResult.TransactionID, history[1].TransactionID)
}

func (s *OrchestratorTestSuite) Test_TrackerEvents_CompleteTransfer() {
	o := s.orchestrator()
	r := receipt(7)
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
	s.expectTracking(r.TxHash)
	result, err := o.ExecuteBridge(context.Background(), s.params("fast"))
	s.Nil(err)

	s.handler(tracker.Event{Type: tracker.EventConfirmationUpdate, TxHash: r.TxHash, TrackingID: "tracking"})
	s.Equal(bridge.StateConfirming, o.GetBridgeHistory(bridge.HistoryFilter{})[0].State)

	s.handler(tracker.Event{Type: tracker.EventConfirmed, TxHash: r.TxHash, TrackingID: "tracking"})
	history := o.GetBridgeHistory(bridge.HistoryFilter{})
	s.Equal(bridge.StateCompleted, history[0].State)
	s.False(history[0].CompletedAt.IsZero())

	s.handler(tracker.Event{Type: tracker.EventFailed, TxHash: r.TxHash, Reason: "late"})
	s.Equal(bridge.StateCompleted, o.GetBridgeHistory(bridge.HistoryFilter{})[0].State)

	stats := o.GetBridgeStats()
	s.Equal(1, stats.Total)
	s.Equal(1, stats.Completed)
	s.Equal(1.0, stats.SuccessRate)
	s.Equal(1, stats.Protocols["fast"].Completed)
	s.Equal(1.0, stats.Protocols["fast"].Reliability)

	s.tracker.EXPECT().GetConfirmationStatus(r.TxHash.Hex()).Return(nil, tracker.ErrNotTracked)
	s.adapters["fast"].EXPECT().GetTransactionStatus(gomock.Any(), r.TxHash).Return(protocol.StatusUnknown, errors.New("not indexed"))
	status, err := o.GetTransactionStatus(context.Background(), result.TransactionID)
	s.Nil(err)
	s.Equal(bridge.SourceHistory, status.Source)
	s.Equal(bridge.StateCompleted, status.Transfer.State)
}

func (s *OrchestratorTestSuite) Test_TrackerEvents_DroppedFailsTransfer() {
	o := s.orchestrator()
	r := receipt(8)
	s.adapters["medium"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
	s.expectTracking(r.TxHash)
	_, err := o.ExecuteBridge(context.Background(), s.params("medium"))
	s.Nil(err)

	s.handler(tracker.Event{Type: tracker.EventReorgSuspected, TxHash: r.TxHash})
	s.handler(tracker.Event{Type: tracker.EventDropped, TxHash: r.TxHash, Reason: "not found"})

	history := o.GetBridgeHistory(bridge.HistoryFilter{})
	s.Equal(bridge.StateFailed, history[0].State)
	s.True(history[0].ReorgAffected)
	s.Contains(history[0].LastError, "dropped")
	s.Equal(0.0, o.GetBridgeStats().Protocols["medium"].Reliability)
}

func (s *OrchestratorTestSuite) Test_TrackerEvents_UnknownHashIgnored() {
	o := s.orchestrator()

	s.handler(tracker.Event{Type: tracker.EventConfirmed, TxHash: common.HexToHash("0x01")})

	s.Len(o.GetBridgeHistory(bridge.HistoryFilter{}), 0)
}

func (s *OrchestratorTestSuite) Test_GetTransactionStatus_Sources() {
	o := s.orchestrator()
	r := receipt(9)
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
	s.expectTracking(r.TxHash)
	result, err := o.ExecuteBridge(context.Background(), s.params("fast"))
	s.Nil(err)

	s.tracker.EXPECT().GetConfirmationStatus(r.TxHash.Hex()).Return(&tracker.Status{State: tracker.StateConfirming}, nil)
	status, err := o.GetTransactionStatus(context.Background(), result.TransactionID)
	s.Nil(err)
	s.Equal(bridge.SourceTracker, status.Source)
	s.Equal(tracker.StateConfirming, status.Tracking.State)

	s.tracker.EXPECT().GetConfirmationStatus(r.TxHash.Hex()).Return(nil, tracker.ErrNotTracked)
	s.adapters["fast"].EXPECT().GetTransactionStatus(gomock.Any(), r.TxHash).Return(protocol.StatusCompleted, nil)
	status, err = o.GetTransactionStatus(context.Background(), result.TransactionID)
	s.Nil(err)
	s.Equal(bridge.SourceProtocol, status.Source)
	s.Equal(protocol.StatusCompleted, status.ProtocolStatus)
}

func (s *OrchestratorTestSuite) Test_GetTransactionStatus_NotFound() {
	o := s.orchestrator()

	_, err := o.GetTransactionStatus(context.Background(), "missing")

	s.True(errors.Is(err, bridge.ErrNotFound))
}

func (s *OrchestratorTestSuite) Test_Load_RestoresPersistedTransfers() {
	o := s.orchestrator()
	r := receipt(10)
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
	s.expectTracking(r.TxHash)
	result, err := o.ExecuteBridge(context.Background(), s.params("fast"))
	s.Nil(err)

	restarted := s.orchestrator()
	s.Nil(restarted.Load(context.Background()))

	history := restarted.GetBridgeHistory(bridge.HistoryFilter{})
	s.Len(history, 1)
	s.Equal(result.TransactionID, history[0].TransactionID)
	s.Equal(r.TxHash, history[0].TxHash)

	s.handler(tracker.Event{Type: tracker.EventConfirmed, TxHash: r.TxHash})
	s.Equal(bridge.StateCompleted, restarted.GetBridgeHistory(bridge.HistoryFilter{})[0].State)
}

func (s *OrchestratorTestSuite) Test_GetBridgeHistory_Filters() {
	o := s.orchestrator()
	for i, id := range []string{"fast", "slow", "fast"} {
		r := receipt(int64(20 + i))
		s.adapters[id].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
		s.expectTracking(r.TxHash)
		_, err := o.ExecuteBridge(context.Background(), s.params(id))
		s.Nil(err)
	}
	s.handler(tracker.Event{Type: tracker.EventConfirmed, TxHash: receipt(20).TxHash})

	s.Len(o.GetBridgeHistory(bridge.HistoryFilter{}), 3)
	s.Len(o.GetBridgeHistory(bridge.HistoryFilter{Protocol: "fast"}), 2)
	s.Len(o.GetBridgeHistory(bridge.HistoryFilter{State: bridge.StateCompleted}), 1)
	s.Len(o.GetBridgeHistory(bridge.HistoryFilter{Chain: chains.Polygon}), 0)

	limited := o.GetBridgeHistory(bridge.HistoryFilter{Limit: 1})
	s.Len(limited, 1)
	s.Equal(receipt(22).TxHash, limited[0].TxHash)

	stats := o.GetBridgeStats()
	s.Equal(3, stats.Total)
	s.Equal(2, stats.InProgress)
	s.Equal(int64(3), o.ExecutionCount())
}

func (s *OrchestratorTestSuite) Test_Shutdown_RejectsNewBridges() {
	o := s.orchestrator()

	s.Nil(o.Shutdown(context.Background()))
	_, err := o.ExecuteBridge(context.Background(), s.params("fast"))

	s.True(errors.Is(err, bridge.ErrShuttingDown))
}

func (s *OrchestratorTestSuite) Test_Shutdown_CancelsInflightBridges() {
	o := s.orchestrator()
	started := make(chan struct{})
	s.adapters["fast"].EXPECT().Bridge(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, p *protocol.BridgeParams, onStatus protocol.StatusCallback) (*protocol.Receipt, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	errs := make(chan error, 1)
	go func() {
		_, err := o.ExecuteBridge(context.Background(), s.params("fast"))
		errs <- err
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := o.Shutdown(ctx)

	s.True(errors.Is(err, context.DeadlineExceeded))
	s.True(errors.Is(<-errs, bridge.ErrCancelled))
	s.Equal(bridge.StateCancelled, o.GetBridgeHistory(bridge.HistoryFilter{})[0].State)
}
