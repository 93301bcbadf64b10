package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/groupcache/lru"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	"github.com/sprintertech/bridge-orchestrator/cache"
	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/config"
	"github.com/sprintertech/bridge-orchestrator/protocol"
	"github.com/sprintertech/bridge-orchestrator/route"
	"github.com/sprintertech/bridge-orchestrator/store"
	"github.com/sprintertech/bridge-orchestrator/tracker"
)

const (
	BRIDGE_PREFIX      = "bridge:"
	MAX_HISTORY        = 1000
	HASH_INDEX_SIZE    = 10000
	ROUTE_WEIGHT       = 0.6
	RELIABILITY_WEIGHT = 0.25
	SECURITY_WEIGHT    = 0.15
)

type RouteFinder interface {
	GetAllPossibleRoutes(
		ctx context.Context,
		from, to chains.ChainID,
		token string,
		amount *big.Int,
		criteria *route.Criteria,
	) ([]route.Route, error)
}

type AdapterRegistry interface {
	Adapter(id string) (protocol.Adapter, error)
	Capability(id string) (protocol.Capability, bool)
}

type Tracker interface {
	TrackConfirmations(ctx context.Context, txHash string, opts tracker.Options) (*tracker.Status, error)
	GetConfirmationStatus(txHash string) (*tracker.Status, error)
	Subscribe(handler tracker.EventHandler) int
	Unsubscribe(id int)
}

type ConfirmationPolicy interface {
	Confirmations(ctx context.Context, chainID chains.ChainID, token string, amount *big.Int) (uint64, error)
}

type TokenSupport interface {
	Supports(chainID chains.ChainID, symbol string) bool
}

type ValidationResult struct {
	Valid  bool
	Errors []string
}

type NonceResult struct {
	Valid    bool
	Expected uint64
}

type TransactionValidator interface {
	ValidateTransaction(ctx context.Context, params *protocol.BridgeParams) (ValidationResult, error)
}

type NonceValidator interface {
	ValidateNonce(ctx context.Context, params *protocol.BridgeParams) (NonceResult, error)
}

type Metrics interface {
	BridgeAttempt(protocolID string)
	BridgeFinished(protocolID string, state string, attempts int, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) BridgeAttempt(string) {}
func (noopMetrics) BridgeFinished(string, string, int, time.Duration) {}

type Config struct {
	MaxRetries     uint
	BaseDelay      time.Duration
	AttemptTimeout time.Duration
	RouteCacheTTL  time.Duration
	MaxHistory     int
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:     3,
		BaseDelay:      time.Second,
		AttemptTimeout: 2 * time.Minute,
		RouteCacheTTL:  5 * time.Minute,
		MaxHistory:     MAX_HISTORY,
	}
}

func NewConfig(c config.BridgeConfig) Config {
	// nolint:gosec
	return Config{
		MaxRetries:     c.MaxRetries,
		BaseDelay:      time.Duration(c.BaseDelay) * time.Millisecond,
		AttemptTimeout: time.Duration(c.AttemptTimeout) * time.Second,
		RouteCacheTTL:  time.Duration(c.RouteCacheTTL) * time.Second,
		MaxHistory:     MAX_HISTORY,
	}
}

type Option func(*Orchestrator)

func WithClock(c clock.Clock) Option {
	return func(o *Orchestrator) {
		o.clock = c
	}
}

func WithStore(s store.Store) Option {
	return func(o *Orchestrator) {
		o.store = s
	}
}

func WithValidators(transactions TransactionValidator, nonces NonceValidator) Option {
	return func(o *Orchestrator) {
		o.transactionValidator = transactions
		o.nonceValidator = nonces
	}
}

func WithConfirmationPolicy(p ConfirmationPolicy) Option {
	return func(o *Orchestrator) {
		o.confirmations = p
	}
}

func WithTokens(t TokenSupport) Option {
	return func(o *Orchestrator) {
		o.tokens = t
	}
}

func WithMetrics(m Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// Orchestrator selects routes, executes bridges through protocol adapters
// with retries and follows submitted transactions to completion through
// the confirmation tracker.
type Orchestrator struct {
	routes   RouteFinder
	registry AdapterRegistry
	tracker  Tracker
	config   Config

	clock                clock.Clock
	store                store.Store
	confirmations        ConfirmationPolicy
	tokens               TokenSupport
	transactionValidator TransactionValidator
	nonceValidator       NonceValidator
	metrics              Metrics

	routeCache  *cache.ResultCache[*RouteQuote]
	reliability *reliability

	lock      sync.RWMutex
	transfers map[string]*Transfer
	history   []string
	hashes    *lru.Cache

	closingLock sync.Mutex
	closing     bool
	inflight    sync.WaitGroup
	stopCtx     context.Context
	stop        context.CancelFunc

	subscription int
	executions   *atomic.Int64
}

func NewOrchestrator(
	routes RouteFinder,
	registry AdapterRegistry,
	t Tracker,
	c Config,
	opts ...Option,
) *Orchestrator {
	if c.MaxHistory <= 0 {
		c.MaxHistory = MAX_HISTORY
	}
	if c.RouteCacheTTL <= 0 {
		c.RouteCacheTTL = DefaultConfig().RouteCacheTTL
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = DefaultConfig().AttemptTimeout
	}

	stopCtx, stop := context.WithCancel(context.Background())
	o := &Orchestrator{
		routes:      routes,
		registry:    registry,
		tracker:     t,
		config:      c,
		clock:       clock.New(),
		metrics:     noopMetrics{},
		routeCache:  cache.NewResultCache[*RouteQuote](c.RouteCacheTTL, 0),
		reliability: newReliability(RELIABILITY_WINDOW),
		transfers:   make(map[string]*Transfer),
		hashes:      lru.New(HASH_INDEX_SIZE),
		stopCtx:     stopCtx,
		stop:        stop,
		executions:  atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(o)
	}

	o.subscription = t.Subscribe(o.handleEvent)
	return o
}

// Start runs route cache expiry until ctx is done
func (o *Orchestrator) Start(ctx context.Context) {
	o.routeCache.Start(ctx)
}

// Load restores persisted transfers into the in-memory history
func (o *Orchestrator) Load(ctx context.Context) error {
	if o.store == nil {
		return nil
	}

	entries, err := o.store.List(ctx, BRIDGE_PREFIX)
	if err != nil {
		return err
	}

	transfers := make([]*Transfer, 0, len(entries))
	for _, e := range entries {
		t := &Transfer{}
		if err := json.Unmarshal(e.Value, t); err != nil {
			log.Warn().Str("key", e.Key).Msgf("Failed decoding persisted transfer: %s", err)
			continue
		}
		transfers = append(transfers, t)
	}
	sortByCreation(transfers)

	o.lock.Lock()
	defer o.lock.Unlock()
	for _, t := range transfers {
		if _, ok := o.transfers[t.TransactionID]; ok {
			continue
		}
		o.index(t)
	}
	log.Info().Msgf("Restored %d persisted transfers", len(o.history))
	return nil
}

// GetBridgeRoute ranks candidate routes by blending route score with
// observed protocol reliability and security
func (o *Orchestrator) GetBridgeRoute(
	ctx context.Context,
	from, to chains.ChainID,
	token string,
	amount *big.Int,
) (*RouteQuote, error) {
	if err := o.validateRequest(from, to, token, amount); err != nil {
		return nil, err
	}

	key := routeKey(from, to, token, amount)
	if quote, ok := o.routeCache.Get(key); ok {
		return quote, nil
	}

	routes, err := o.routes.GetAllPossibleRoutes(ctx, from, to, token, amount, nil)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, &route.RouteError{Err: route.ErrNoRouteFound, From: from, To: to, Token: token, Amount: amount}
	}

	ranked := make([]RankedRoute, len(routes))
	for i, r := range routes {
		rel := o.routeReliability(r)
		ranked[i] = RankedRoute{
			Route:       r,
			Reliability: rel,
			FinalScore:  clamp(ROUTE_WEIGHT*r.Score + RELIABILITY_WEIGHT*rel + SECURITY_WEIGHT*r.SecurityScore),
		}
	}
	rankRoutes(ranked)

	quote := &RouteQuote{
		Best:         ranked[0],
		Alternatives: ranked[1:],
		CreatedAt:    o.clock.Now(),
	}
	o.routeCache.Set(key, quote)
	return quote, nil
}

// GetTransactionStatus prefers live tracker status, then the protocol
// adapter and finally the persisted transfer record
func (o *Orchestrator) GetTransactionStatus(ctx context.Context, transactionID string) (*TransactionStatus, error) {
	t, err := o.transfer(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if t.TxHash != (Transfer{}).TxHash {
		tracking, err := o.tracker.GetConfirmationStatus(t.TxHash.Hex())
		if err == nil {
			return &TransactionStatus{Transfer: *t, Source: SourceTracker, Tracking: tracking}, nil
		}

		adapter, err := o.registry.Adapter(t.Protocol)
		if err == nil {
			status, err := adapter.GetTransactionStatus(ctx, t.TxHash)
			if err == nil {
				return &TransactionStatus{Transfer: *t, Source: SourceProtocol, ProtocolStatus: status}, nil
			}
			log.Debug().Str("transactionID", transactionID).Msgf("Protocol status lookup failed: %s", err)
		}
	}

	return &TransactionStatus{Transfer: *t, Source: SourceHistory}, nil
}

// Shutdown stops accepting bridges and waits for in-flight executions.
// Executions still running when ctx is done are cancelled.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	o.closingLock.Lock()
	o.closing = true
	o.closingLock.Unlock()

	done := make(chan struct{})
	go func() {
		o.inflight.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		log.Warn().Msgf("Shutdown grace period elapsed, cancelling in-flight bridges")
		o.stop()
		<-done
		err = ctx.Err()
	}

	o.stop()
	o.tracker.Unsubscribe(o.subscription)
	return err
}

func (o *Orchestrator) validateRequest(from, to chains.ChainID, token string, amount *big.Int) error {
	switch {
	case from == 0:
		return &ValidationError{Field: "fromChain", Reason: "required"}
	case to == 0:
		return &ValidationError{Field: "toChain", Reason: "required"}
	case from == to:
		return &ValidationError{Field: "toChain", Reason: "must differ from source chain"}
	case strings.TrimSpace(token) == "":
		return &ValidationError{Field: "token", Reason: "required"}
	case amount == nil || amount.Sign() <= 0:
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	if o.tokens != nil {
		if !o.tokens.Supports(from, token) {
			return &ValidationError{Field: "token", Reason: fmt.Sprintf("%s not supported on %s", token, from)}
		}
		if !o.tokens.Supports(to, token) {
			return &ValidationError{Field: "token", Reason: fmt.Sprintf("%s not supported on %s", token, to)}
		}
	}
	return nil
}

func (o *Orchestrator) routeReliability(r route.Route) float64 {
	rel := 1.0
	for _, id := range r.Protocols {
		prior := 0.0
		if c, ok := o.registry.Capability(id); ok {
			prior = c.Reliability
		}
		rel *= o.reliability.ratio(id, prior)
	}
	return rel
}

// transfer returns a copy of the in-memory record or loads it from the store
func (o *Orchestrator) transfer(ctx context.Context, transactionID string) (*Transfer, error) {
	o.lock.RLock()
	t, ok := o.transfers[transactionID]
	if ok {
		c := *t
		o.lock.RUnlock()
		return &c, nil
	}
	o.lock.RUnlock()

	if o.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, transactionID)
	}
	loaded := &Transfer{}
	err := store.GetJSON(ctx, o.store, BRIDGE_PREFIX+transactionID, loaded)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, transactionID)
	}
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

// index adds the transfer to the bounded history, evicting the oldest
// finished transfers. Caller holds the lock.
func (o *Orchestrator) index(t *Transfer) {
	o.transfers[t.TransactionID] = t
	o.history = append(o.history, t.TransactionID)
	if t.TxHash != (Transfer{}).TxHash {
		o.hashes.Add(t.TxHash.Hex(), t.TransactionID)
	}

	// in-flight transfers stay indexed until their outcome is recorded
	excess := len(o.history) - o.config.MaxHistory
	if excess <= 0 {
		return
	}
	kept := make([]string, 0, len(o.history))
	for _, id := range o.history {
		if excess > 0 {
			if existing, ok := o.transfers[id]; !ok || existing.State.Terminal() {
				delete(o.transfers, id)
				excess--
				continue
			}
		}
		kept = append(kept, id)
	}
	o.history = kept
}

// update mutates the transfer under lock and persists a copy
func (o *Orchestrator) update(ctx context.Context, id string, f func(t *Transfer)) Transfer {
	o.lock.Lock()
	t, ok := o.transfers[id]
	if !ok {
		o.lock.Unlock()
		return Transfer{}
	}
	f(t)
	t.UpdatedAt = o.clock.Now()
	c := *t
	o.lock.Unlock()

	o.persist(ctx, c)
	return c
}

func (o *Orchestrator) persist(ctx context.Context, t Transfer) {
	if o.store == nil {
		return
	}
	err := store.PutJSON(ctx, o.store, BRIDGE_PREFIX+t.TransactionID, t)
	if err != nil {
		log.Warn().Str("transactionID", t.TransactionID).Msgf("Failed persisting transfer: %s", err)
	}
}

func routeKey(from, to chains.ChainID, token string, amount *big.Int) string {
	return fmt.Sprintf("%d|%d|%s|%s", from, to, strings.ToUpper(token), amount)
}

func clamp(v float64) float64 {
	return max(0, min(1, v))
}
