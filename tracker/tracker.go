package tracker

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/config"
	"github.com/sprintertech/bridge-orchestrator/store"
)

const (
	TRACKING_PREFIX = "tracking:"
)

type Chain struct {
	Network chains.Network
	Client  ChainClient
}

type Config struct {
	MaxConcurrent      int
	BatchSize          int
	FetchRetries       int
	MaxFetchFailures   int
	DropAfterMisses    int
	MaxCompleted       uint64
	CompletedRetention time.Duration
	RequestTimeout     time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxConcurrent:      1000,
		BatchSize:          20,
		FetchRetries:       3,
		DropAfterMisses:    3,
		MaxCompleted:       1000,
		CompletedRetention: time.Hour,
		RequestTimeout:     10 * time.Second,
	}
}

func NewConfig(c config.TrackingConfig) Config {
	// nolint:gosec
	return Config{
		MaxConcurrent:      c.MaxConcurrent,
		BatchSize:          c.BatchSize,
		FetchRetries:       c.FetchRetries,
		MaxFetchFailures:   c.MaxFetchFailures,
		DropAfterMisses:    c.DropAfterMisses,
		MaxCompleted:       uint64(c.MaxCompleted),
		CompletedRetention: time.Duration(c.CompletedRetention) * time.Minute,
		RequestTimeout:     10 * time.Second,
	}
}

type Option func(*Tracker)

func WithClock(c clock.Clock) Option {
	return func(t *Tracker) {
		t.clock = c
	}
}

func WithStore(s store.Store) Option {
	return func(t *Tracker) {
		t.store = s
	}
}

func WithSecurityPolicy(p SecurityPolicy) Option {
	return func(t *Tracker) {
		t.policy = p
	}
}

func WithMetrics(m Metrics) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}

type network struct {
	network chains.Network
	client  ChainClient
}

type subscription struct {
	id      int
	handler EventHandler
}

// Tracker follows confirmation depth of submitted transactions per network
// until they are final or definitively failed
type Tracker struct {
	networks map[chains.ChainID]*network
	config   Config
	clock    clock.Clock
	store    store.Store
	policy   SecurityPolicy
	metrics  Metrics

	lock      sync.Mutex
	active    map[common.Hash]*record
	reserved  map[common.Hash]struct{}
	heads     map[chains.ChainID]uint64
	completed *ttlcache.Cache[common.Hash, *record]

	subLock       sync.RWMutex
	subscriptions []subscription
	nextSub       int

	totalTracked     *atomic.Int64
	finished         *atomic.Int64
	confirmed        *atomic.Int64
	confirmationTime *atomic.Duration
	rollbacks        *atomic.Int64
	majorReorgs      *atomic.Int64
	reorgSuspicions  *atomic.Int64
	fastHits         *atomic.Int64
	safeHits         *atomic.Int64
	finalHits        *atomic.Int64
}

func NewTracker(chainList []Chain, c Config, opts ...Option) *Tracker {
	defaults := DefaultConfig()
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = defaults.MaxConcurrent
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaults.BatchSize
	}
	if c.FetchRetries < 0 {
		c.FetchRetries = 0
	}
	if c.DropAfterMisses <= 0 {
		c.DropAfterMisses = 1
	}
	if c.MaxCompleted == 0 {
		c.MaxCompleted = defaults.MaxCompleted
	}
	if c.CompletedRetention <= 0 {
		c.CompletedRetention = defaults.CompletedRetention
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaults.RequestTimeout
	}

	networks := make(map[chains.ChainID]*network)
	for _, ch := range chainList {
		networks[ch.Network.ID] = &network{
			network: ch.Network,
			client:  ch.Client,
		}
	}

	t := &Tracker{
		networks: networks,
		config:   c,
		clock:    clock.New(),
		policy:   NewGasPolicy(500),
		metrics:  noopMetrics{},
		active:   make(map[common.Hash]*record),
		reserved: make(map[common.Hash]struct{}),
		heads:    make(map[chains.ChainID]uint64),
		completed: ttlcache.New(
			ttlcache.WithTTL[common.Hash, *record](c.CompletedRetention),
			ttlcache.WithCapacity[common.Hash, *record](c.MaxCompleted),
			ttlcache.WithDisableTouchOnHit[common.Hash, *record](),
		),
		totalTracked:     atomic.NewInt64(0),
		finished:         atomic.NewInt64(0),
		confirmed:        atomic.NewInt64(0),
		confirmationTime: atomic.NewDuration(0),
		rollbacks:        atomic.NewInt64(0),
		majorReorgs:      atomic.NewInt64(0),
		reorgSuspicions:  atomic.NewInt64(0),
		fastHits:         atomic.NewInt64(0),
		safeHits:         atomic.NewInt64(0),
		finalHits:        atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start polls every network on its own interval until ctx is done
func (t *Tracker) Start(ctx context.Context) {
	go t.completed.Start()
	go func() {
		<-ctx.Done()
		t.completed.Stop()
	}()

	for _, n := range t.networks {
		go t.run(ctx, n)
	}
}

func (t *Tracker) run(ctx context.Context, n *network) {
	ticker := t.clock.Ticker(n.network.PollInterval)
	defer ticker.Stop()

	log.Info().Msgf("Tracking confirmations on %s every %s", n.network.ID, n.network.PollInterval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := t.Poll(ctx, n.network.ID)
			if err != nil {
				log.Warn().Uint64("chain", uint64(n.network.ID)).Msgf("Poll cycle skipped: %s", err)
			}
		}
	}
}

// Networks returns the ids of tracked networks
func (t *Tracker) Networks() []chains.ChainID {
	ids := make([]chains.ChainID, 0, len(t.networks))
	for id := range t.networks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TrackConfirmations starts tracking the transaction and performs the
// initial lookup. Terminal outcomes are reported through the returned
// status, not as errors.
func (t *Tracker) TrackConfirmations(ctx context.Context, txHash string, opts Options) (*Status, error) {
	hash, err := parseHash(txHash)
	if err != nil {
		return nil, err
	}
	n, ok := t.networks[opts.Network]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, opts.Network)
	}

	t.lock.Lock()
	_, active := t.active[hash]
	_, reserved := t.reserved[hash]
	if active || reserved {
		t.lock.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTracking, hash.Hex())
	}
	if len(t.active)+len(t.reserved) >= t.config.MaxConcurrent {
		t.lock.Unlock()
		return nil, ErrTrackingLimitExceeded
	}
	t.reserved[hash] = struct{}{}
	t.lock.Unlock()

	target := opts.Confirmations
	if target == 0 {
		target = max(n.network.DefaultConfirmations, 1)
	}
	r := &record{
		trackingID: uuid.NewString(),
		hash:       hash,
		network:    n.network,
		target:     target,
		state:      StatePending,
		startTime:  t.clock.Now(),
		timeout:    n.network.Timeout(opts.TimeoutBlocks),
		history:    newHistory(HISTORY_SIZE),
	}
	t.totalTracked.Inc()
	t.metrics.TrackingStarted(n.network.ID)

	var obs observation
	head, err := t.latestBlock(ctx, n)
	if err != nil {
		obs.err = err
	} else {
		obs = t.lookup(ctx, n, hash, true)
	}

	t.lock.Lock()
	delete(t.reserved, hash)
	t.active[hash] = r
	events := []Event{t.event(r, EventTrackingStarted)}
	events = append(events, t.apply(r, obs, head)...)
	status := r.status()
	finished := r.state.Terminal()
	if finished {
		t.complete(r)
	}
	t.lock.Unlock()

	log.Debug().Str("trackingID", r.trackingID).Msgf("Started tracking %s on %s", hash.Hex(), n.network.ID)
	t.emit(events)
	if finished {
		t.persist(ctx, status)
	}
	return &status, nil
}

// StopTracking cancels tracking of an active transaction. Stopping a
// finished transaction is a no-op.
func (t *Tracker) StopTracking(ctx context.Context, txHash string) error {
	hash, err := parseHash(txHash)
	if err != nil {
		return err
	}

	t.lock.Lock()
	r, ok := t.active[hash]
	if !ok {
		done := t.completed.Get(hash) != nil
		t.lock.Unlock()
		if done {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrNotTracked, hash.Hex())
	}

	event := t.terminate(r, StateCancelled, "tracking stopped")
	status := r.status()
	t.complete(r)
	t.lock.Unlock()

	t.emit([]Event{event})
	t.persist(ctx, status)
	return nil
}

func (t *Tracker) GetConfirmationStatus(txHash string) (*Status, error) {
	hash, err := parseHash(txHash)
	if err != nil {
		return nil, err
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	r, ok := t.active[hash]
	if !ok {
		item := t.completed.Get(hash)
		if item == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotTracked, hash.Hex())
		}
		r = item.Value()
	}

	status := r.status()
	return &status, nil
}

func (t *Tracker) GetAnalytics() Analytics {
	t.lock.Lock()
	states := make(map[State]int)
	for _, r := range t.active {
		states[r.state]++
	}
	completed := t.completed.Items()
	for _, item := range completed {
		states[item.Value().state]++
	}
	active := len(t.active)
	t.lock.Unlock()

	analytics := Analytics{
		Active:       active,
		Completed:    len(completed),
		States:       states,
		TotalTracked: t.totalTracked.Load(),
		ThresholdHits: ThresholdHits{
			Fast:  t.fastHits.Load(),
			Safe:  t.safeHits.Load(),
			Final: t.finalHits.Load(),
		},
		Rollbacks:       t.rollbacks.Load(),
		MajorReorgs:     t.majorReorgs.Load(),
		ReorgSuspicions: t.reorgSuspicions.Load(),
	}
	if finished := t.finished.Load(); finished > 0 {
		analytics.SuccessRate = float64(t.confirmed.Load()) / float64(finished)
	}
	if confirmed := t.confirmed.Load(); confirmed > 0 {
		analytics.AverageConfirmationTime = t.confirmationTime.Load() / time.Duration(confirmed)
	}
	return analytics
}

// Subscribe registers a handler for tracking events. Handlers are invoked
// sequentially outside of tracker locks.
func (t *Tracker) Subscribe(handler EventHandler) int {
	t.subLock.Lock()
	defer t.subLock.Unlock()

	t.nextSub++
	t.subscriptions = append(t.subscriptions, subscription{
		id:      t.nextSub,
		handler: handler,
	})
	return t.nextSub
}

func (t *Tracker) Unsubscribe(id int) {
	t.subLock.Lock()
	defer t.subLock.Unlock()

	t.subscriptions = slices.DeleteFunc(t.subscriptions, func(s subscription) bool {
		return s.id == id
	})
}

func (t *Tracker) emit(events []Event) {
	if len(events) == 0 {
		return
	}

	t.subLock.RLock()
	subscriptions := slices.Clone(t.subscriptions)
	t.subLock.RUnlock()

	for _, e := range events {
		for _, s := range subscriptions {
			t.dispatch(s.handler, e)
		}
	}
}

func (t *Tracker) dispatch(handler EventHandler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("event", string(e.Type)).Msgf("Event handler panicked: %v", r)
		}
	}()

	handler(e)
}

// complete moves the record to the completed set. Caller holds the lock.
func (t *Tracker) complete(r *record) {
	delete(t.active, r.hash)
	t.completed.Set(r.hash, r, ttlcache.DefaultTTL)
}

func (t *Tracker) persist(ctx context.Context, status Status) {
	if t.store == nil {
		return
	}

	err := store.PutJSON(ctx, t.store, TRACKING_PREFIX+status.TrackingID, status)
	if err != nil {
		log.Warn().Str("trackingID", status.TrackingID).Msgf("Failed persisting tracking record: %s", err)
	}
}

func (t *Tracker) event(r *record, eventType EventType) Event {
	return Event{
		Type:          eventType,
		TrackingID:    r.trackingID,
		TxHash:        r.hash,
		Network:       r.network.ID,
		State:         r.state,
		Confirmations: r.confirmations,
		Target:        r.target,
		Head:          r.lastHead,
		Time:          t.clock.Now(),
	}
}

func parseHash(txHash string) (common.Hash, error) {
	b, err := hexutil.Decode(txHash)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrInvalidTransactionHash, txHash)
	}
	return common.BytesToHash(b), nil
}
