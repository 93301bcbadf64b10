package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/chains/evm"
	"github.com/sprintertech/bridge-orchestrator/observability"
	"github.com/sprintertech/bridge-orchestrator/route"
)

// PrintRoutes writes the route comparison of the transfer to out without
// connecting to any chain
func PrintRoutes(ctx context.Context, out io.Writer, from, to, token, amount string) error {
	configuration, err := loadConfig()
	if err != nil {
		return err
	}
	observability.ConfigureLogger(configuration.OrchestratorConfig.LogLevel, io.Discard)

	fromID, err := chains.ParseChainID(from)
	if err != nil {
		return fmt.Errorf("%w: source chain: %s", route.ErrInvalidRequest, err)
	}
	toID, err := chains.ParseChainID(to)
	if err != nil {
		return fmt.Errorf("%w: destination chain: %s", route.ErrInvalidRequest, err)
	}
	value, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return fmt.Errorf("%w: amount %s", route.ErrInvalidRequest, amount)
	}

	intermediaries := make([]chains.ChainID, 0)
	for _, chainConfig := range configuration.ChainConfigs {
		if chainConfig["type"] != "evm" {
			continue
		}
		config, err := evm.NewEVMConfig(chainConfig)
		if err != nil {
			return err
		}
		intermediaries = append(intermediaries, config.Network.ID)
	}

	registry, err := newRegistry(configuration.ProtocolConfigs)
	if err != nil {
		return err
	}
	calculator := newCalculator(configuration.OrchestratorConfig.Routing, registry, intermediaries)

	comparison, err := calculator.GetRouteComparison(ctx, fromID, toID, token, value, nil)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(comparison)
}
