package protocol

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/config"
)

type TrustModel string

const (
	TrustNative      TrustModel = "native"
	TrustLightClient TrustModel = "light-client"
	TrustOptimistic  TrustModel = "optimistic"
	TrustGuardian    TrustModel = "guardian"
	TrustCommittee   TrustModel = "committee"
)

// DefaultBonus is the score adjustment granted for the maturity of the
// trust model
func DefaultBonus(tm TrustModel) float64 {
	switch tm {
	case TrustNative:
		return 0.05
	case TrustLightClient:
		return 0.04
	case TrustOptimistic:
		return 0.02
	case TrustGuardian, TrustCommittee:
		return 0.01
	default:
		return 0
	}
}

type Fee struct {
	Base float64 `json:"base"`
	Bps  float64 `json:"bps"`
}

// Amount calculates the fee for the amount in token base units
func (f Fee) Amount(amount *big.Int) float64 {
	value, _ := new(big.Float).SetInt(amount).Float64()
	return f.Base + value*f.Bps/10_000
}

// Capability describes what a protocol supports and its static
// characteristics
type Capability struct {
	ID            string
	Chains        map[chains.ChainID]struct{}
	Tokens        map[string]struct{}
	TrustModel    TrustModel
	AverageTime   time.Duration
	Fee           Fee
	MinAmount     *big.Int
	Reliability   float64
	Bonus         float64
	SecurityScore float64
}

func NewCapability(c config.ProtocolConfig) (Capability, error) {
	minAmount := big.NewInt(0)
	if c.MinAmount != "" {
		_, ok := minAmount.SetString(c.MinAmount, 10)
		if !ok {
			return Capability{}, fmt.Errorf("invalid min amount %s for protocol %s", c.MinAmount, c.Id)
		}
	}

	chainSet := make(map[chains.ChainID]struct{})
	for _, id := range c.Chains {
		chainSet[chains.ChainID(id)] = struct{}{}
	}
	tokens := make(map[string]struct{})
	for _, t := range c.Tokens {
		tokens[strings.ToUpper(t)] = struct{}{}
	}

	tm := TrustModel(strings.ToLower(c.TrustModel))
	bonus := DefaultBonus(tm)
	if c.Bonus != nil {
		bonus = *c.Bonus
	}

	return Capability{
		ID:     c.Id,
		Chains: chainSet,
		Tokens: tokens,
		// nolint:gosec
		AverageTime: time.Duration(c.AverageTime) * time.Second,
		TrustModel:  tm,
		Fee: Fee{
			Base: c.BaseFee,
			Bps:  c.FeeBps,
		},
		MinAmount:     minAmount,
		Reliability:   c.Reliability,
		Bonus:         bonus,
		SecurityScore: c.SecurityScore,
	}, nil
}

func (c Capability) Supports(chainID chains.ChainID) bool {
	_, ok := c.Chains[chainID]
	return ok
}

// SupportsToken reports token support. A protocol without a token list
// supports every token.
func (c Capability) SupportsToken(symbol string) bool {
	if len(c.Tokens) == 0 {
		return true
	}
	_, ok := c.Tokens[strings.ToUpper(symbol)]
	return ok
}

// Accepts reports whether amount is above the protocol minimum
func (c Capability) Accepts(amount *big.Int) bool {
	if c.MinAmount == nil {
		return true
	}
	return amount.Cmp(c.MinAmount) >= 0
}

func (c Capability) SupportedChains() []chains.ChainID {
	ids := make([]chains.ChainID, 0, len(c.Chains))
	for id := range c.Chains {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
