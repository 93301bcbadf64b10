package bridge

import (
	"context"
	"fmt"
	"maps"
	"math/big"
	"slices"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/config"
)

type TokenPricer interface {
	TokenPrice(ctx context.Context, symbol string) (float64, error)
}

// ValuePolicy selects required confirmations from the USD value of a
// transfer. Buckets map an upper value bound to confirmations.
type ValuePolicy struct {
	tokens        config.TokenStore
	pricer        TokenPricer
	confirmations map[chains.ChainID]map[uint64]uint64
}

func NewValuePolicy(
	tokens config.TokenStore,
	pricer TokenPricer,
	confirmations map[chains.ChainID]map[uint64]uint64,
) *ValuePolicy {
	return &ValuePolicy{
		tokens:        tokens,
		pricer:        pricer,
		confirmations: confirmations,
	}
}

// Confirmations calculates the minimal confirmations to wait for based on
// the transfer value
func (p *ValuePolicy) Confirmations(ctx context.Context, chainID chains.ChainID, token string, amount *big.Int) (uint64, error) {
	buckets, ok := p.confirmations[chainID]
	if !ok || len(buckets) == 0 {
		return 0, fmt.Errorf("no confirmation buckets for chain %s", chainID)
	}

	c, err := p.tokens.ConfigBySymbol(chainID, token)
	if err != nil {
		return 0, err
	}

	price, err := p.pricer.TokenPrice(ctx, token)
	if err != nil {
		return 0, err
	}

	value := new(big.Int)
	value, _ = new(big.Float).Quo(
		new(big.Float).Mul(big.NewFloat(price), new(big.Float).SetInt(amount)),
		new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(c.Decimals)), nil)),
	).Int(value)

	bounds := slices.Collect(maps.Keys(buckets))
	slices.Sort(bounds)
	for _, bound := range bounds {
		if value.Cmp(new(big.Int).SetUint64(bound)) < 0 {
			return buckets[bound], nil
		}
	}

	return 0, fmt.Errorf("transfer value %s exceeds confirmation buckets", value)
}
