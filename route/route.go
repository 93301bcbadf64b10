package route

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/protocol"
)

var (
	ErrNoRouteFound       = errors.New("no route found")
	ErrAmountNotSupported = errors.New("amount not supported")
	ErrInvalidRequest     = errors.New("invalid route request")
)

// RouteError carries the request that failed route calculation
type RouteError struct {
	Err    error
	From   chains.ChainID
	To     chains.ChainID
	Token  string
	Amount *big.Int
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%s: %s -> %s %s %s", e.Err, e.From, e.To, e.Amount, e.Token)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

type Route struct {
	ProtocolID    string           `json:"protocolId"`
	Protocols     []string         `json:"protocols"`
	Path          []chains.ChainID `json:"path"`
	Hops          int              `json:"hops"`
	Legs          []protocol.Leg   `json:"legs"`
	EstimatedFee  float64          `json:"estimatedFee"`
	EstimatedTime time.Duration    `json:"estimatedTime"`
	Confidence    float64          `json:"confidence"`
	SecurityModel string           `json:"securityModel"`
	SecurityScore float64          `json:"securityScore"`
	Bonus         float64          `json:"bonus"`
	Score         float64          `json:"score"`
}

// ID identifies the route by its protocols and visited chains
func (r Route) ID() string {
	path := make([]string, len(r.Path))
	for i, id := range r.Path {
		path[i] = fmt.Sprint(uint64(id))
	}
	return fmt.Sprintf("%s:%s", r.ProtocolID, strings.Join(path, "-"))
}

// Direct reports whether the route is a single protocol hop
func (r Route) Direct() bool {
	return r.Hops == 1
}

type AnnotatedRoute struct {
	Route
	IsOptimal  bool          `json:"isOptimal"`
	IsFastest  bool          `json:"isFastest"`
	IsCheapest bool          `json:"isCheapest"`
	FeeDelta   float64       `json:"feeDelta"`
	TimeDelta  time.Duration `json:"timeDelta"`
}

type Comparison struct {
	Optimal  Route            `json:"optimal"`
	Fastest  Route            `json:"fastest"`
	Cheapest Route            `json:"cheapest"`
	Routes   []AnnotatedRoute `json:"routes"`
}
