package route

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/atomic"

	"github.com/sprintertech/bridge-orchestrator/cache"
	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/protocol"
)

const (
	ROUTE_CACHE_TTL = time.Minute * 2
)

type CapabilitySource interface {
	Capabilities() []protocol.Capability
}

type HealthChecker interface {
	Healthy(id string) bool
}

type Option func(*Calculator)

// WithEstimator overrides the cost estimator of a single protocol
func WithEstimator(protocolID string, estimator protocol.CostEstimator) Option {
	return func(c *Calculator) {
		c.estimators[protocolID] = estimator
	}
}

func WithIntermediaries(ids ...chains.ChainID) Option {
	return func(c *Calculator) {
		c.intermediaries = ids
	}
}

func WithCriteria(criteria Criteria) Option {
	return func(c *Calculator) {
		c.criteria = criteria.Normalize()
	}
}

func WithHealthChecker(health HealthChecker) Option {
	return func(c *Calculator) {
		c.health = health
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Calculator) {
		c.cache = cache.NewResultCache[[]Route](ttl, 0)
	}
}

// Calculator enumerates candidate routes between chains and scores them
type Calculator struct {
	capabilities   CapabilitySource
	health         HealthChecker
	estimator      protocol.CostEstimator
	estimators     map[string]protocol.CostEstimator
	intermediaries []chains.ChainID
	criteria       Criteria

	cache        *cache.ResultCache[[]Route]
	calculations *atomic.Int64
}

func NewCalculator(
	capabilities CapabilitySource,
	estimator protocol.CostEstimator,
	opts ...Option,
) *Calculator {
	c := &Calculator{
		capabilities: capabilities,
		estimator:    estimator,
		estimators:   make(map[string]protocol.CostEstimator),
		criteria:     DefaultCriteria,
		cache:        cache.NewResultCache[[]Route](ROUTE_CACHE_TTL, 0),
		calculations: atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start evicts expired routes in the background until ctx is done
func (c *Calculator) Start(ctx context.Context) {
	c.cache.Start(ctx)
}

// CalculationCount returns how many times routes were computed instead of
// served from cache
func (c *Calculator) CalculationCount() int64 {
	return c.calculations.Load()
}

func (c *Calculator) CalculateOptimalRoute(
	ctx context.Context,
	from, to chains.ChainID,
	token string,
	amount *big.Int,
	criteria *Criteria,
) (*Route, error) {
	routes, err := c.GetAllPossibleRoutes(ctx, from, to, token, amount, criteria)
	if err != nil {
		return nil, err
	}

	r := routes[0]
	return &r, nil
}

func (c *Calculator) FindFastestRoute(ctx context.Context, from, to chains.ChainID, token string, amount *big.Int) (*Route, error) {
	criteria := FastestCriteria
	return c.CalculateOptimalRoute(ctx, from, to, token, amount, &criteria)
}

func (c *Calculator) FindCheapestRoute(ctx context.Context, from, to chains.ChainID, token string, amount *big.Int) (*Route, error) {
	criteria := CheapestCriteria
	return c.CalculateOptimalRoute(ctx, from, to, token, amount, &criteria)
}

// GetAllPossibleRoutes returns every viable route ordered from best to
// worst under criteria. Nil criteria uses the calculator defaults.
func (c *Calculator) GetAllPossibleRoutes(
	ctx context.Context,
	from, to chains.ChainID,
	token string,
	amount *big.Int,
	criteria *Criteria,
) ([]Route, error) {
	if from == 0 || to == 0 || from == to || token == "" || amount == nil || amount.Sign() <= 0 {
		return nil, c.routeError(ErrInvalidRequest, from, to, token, amount)
	}

	weights := c.criteria
	if criteria != nil {
		weights = criteria.Normalize()
	}

	key := cacheKey(from, to, token, amount, weights)
	if routes, ok := c.cache.Get(key); ok {
		return append([]Route(nil), routes...), nil
	}

	c.calculations.Inc()
	candidates, err := c.enumerate(from, to, token, amount)
	if err != nil {
		return nil, c.routeError(err, from, to, token, amount)
	}

	routes := c.estimate(ctx, candidates)
	if len(routes) == 0 {
		return nil, c.routeError(ErrNoRouteFound, from, to, token, amount)
	}

	score(routes, weights)
	rank(routes)

	c.cache.Set(key, routes)
	log.Debug().Msgf("Calculated %d routes %s -> %s for %s %s", len(routes), from, to, amount, token)
	return append([]Route(nil), routes...), nil
}

// GetRouteComparison annotates every candidate against the optimal route
func (c *Calculator) GetRouteComparison(
	ctx context.Context,
	from, to chains.ChainID,
	token string,
	amount *big.Int,
	criteria *Criteria,
) (*Comparison, error) {
	routes, err := c.GetAllPossibleRoutes(ctx, from, to, token, amount, criteria)
	if err != nil {
		return nil, err
	}
	fastest, err := c.FindFastestRoute(ctx, from, to, token, amount)
	if err != nil {
		return nil, err
	}
	cheapest, err := c.FindCheapestRoute(ctx, from, to, token, amount)
	if err != nil {
		return nil, err
	}

	optimal := routes[0]
	annotated := make([]AnnotatedRoute, len(routes))
	for i, r := range routes {
		annotated[i] = AnnotatedRoute{
			Route:      r,
			IsOptimal:  i == 0,
			IsFastest:  r.ID() == fastest.ID(),
			IsCheapest: r.ID() == cheapest.ID(),
			FeeDelta:   r.EstimatedFee - optimal.EstimatedFee,
			TimeDelta:  r.EstimatedTime - optimal.EstimatedTime,
		}
	}

	return &Comparison{
		Optimal:  optimal,
		Fastest:  *fastest,
		Cheapest: *cheapest,
		Routes:   annotated,
	}, nil
}

type candidate struct {
	capabilities []protocol.Capability
	legs         []protocol.Leg
}

func (c *Calculator) enumerate(from, to chains.ChainID, token string, amount *big.Int) ([]candidate, error) {
	var healthy []protocol.Capability
	for _, p := range c.capabilities.Capabilities() {
		if c.health != nil && !c.health.Healthy(p.ID) {
			log.Debug().Str("protocol", p.ID).Msgf("Skipping unhealthy protocol")
			continue
		}
		healthy = append(healthy, p)
	}

	supported := false
	var candidates []candidate
	for _, p := range healthy {
		if !supportsLeg(p, from, to, token) {
			continue
		}
		supported = true
		if !p.Accepts(amount) {
			continue
		}
		candidates = append(candidates, candidate{
			capabilities: []protocol.Capability{p},
			legs:         []protocol.Leg{leg(p.ID, from, to, token, amount)},
		})
	}

	if len(candidates) < 2 {
		for _, via := range c.intermediaries {
			if via == from || via == to {
				continue
			}

			for _, first := range healthy {
				if !supportsLeg(first, from, via, token) {
					continue
				}
				for _, second := range healthy {
					if second.ID == first.ID || !supportsLeg(second, via, to, token) {
						continue
					}
					supported = true
					if !first.Accepts(amount) || !second.Accepts(amount) {
						continue
					}
					candidates = append(candidates, candidate{
						capabilities: []protocol.Capability{first, second},
						legs: []protocol.Leg{
							leg(first.ID, from, via, token, amount),
							leg(second.ID, via, to, token, amount),
						},
					})
				}
			}
		}
	}

	if len(candidates) == 0 {
		if supported {
			return nil, ErrAmountNotSupported
		}
		return nil, ErrNoRouteFound
	}
	return candidates, nil
}

// estimate prices every candidate concurrently. Candidates failing
// estimation are dropped.
func (c *Calculator) estimate(ctx context.Context, candidates []candidate) []Route {
	estimated := iter.Map(candidates, func(cd *candidate) *Route {
		r := &Route{
			Hops:          len(cd.legs),
			Legs:          cd.legs,
			Confidence:    1,
			SecurityScore: 1,
			Bonus:         1,
		}
		models := make([]string, 0, len(cd.legs))
		for i, l := range cd.legs {
			q, err := c.estimatorFor(l.Protocol).Estimate(ctx, l)
			if err != nil {
				log.Debug().Str("protocol", l.Protocol).Msgf("Dropping candidate, estimation failed: %s", err)
				return nil
			}

			p := cd.capabilities[i]
			r.Protocols = append(r.Protocols, l.Protocol)
			r.Path = append(r.Path, l.From)
			r.EstimatedFee += q.Fee
			r.EstimatedTime += q.Time
			r.Confidence *= clamp(q.Confidence)
			r.SecurityScore = min(r.SecurityScore, p.SecurityScore)
			r.Bonus = min(r.Bonus, p.Bonus)
			models = append(models, string(p.TrustModel))
		}
		r.Path = append(r.Path, cd.legs[len(cd.legs)-1].To)
		r.ProtocolID = strings.Join(r.Protocols, "+")
		r.SecurityModel = strings.Join(models, "+")
		return r
	})

	routes := make([]Route, 0, len(estimated))
	for _, r := range estimated {
		if r != nil {
			routes = append(routes, *r)
		}
	}
	return routes
}

func (c *Calculator) estimatorFor(protocolID string) protocol.CostEstimator {
	if e, ok := c.estimators[protocolID]; ok {
		return e
	}
	return c.estimator
}

func (c *Calculator) routeError(err error, from, to chains.ChainID, token string, amount *big.Int) error {
	return &RouteError{
		Err:    err,
		From:   from,
		To:     to,
		Token:  token,
		Amount: amount,
	}
}

func supportsLeg(p protocol.Capability, from, to chains.ChainID, token string) bool {
	return p.Supports(from) && p.Supports(to) && p.SupportsToken(token)
}

func leg(id string, from, to chains.ChainID, token string, amount *big.Int) protocol.Leg {
	return protocol.Leg{
		Protocol: id,
		From:     from,
		To:       to,
		Token:    token,
		Amount:   amount,
	}
}

func cacheKey(from, to chains.ChainID, token string, amount *big.Int, criteria Criteria) string {
	return fmt.Sprintf("%d|%d|%s|%s|%s", from, to, strings.ToUpper(token), amount, criteria)
}
