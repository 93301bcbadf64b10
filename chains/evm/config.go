// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/config/chain"
)

const (
	TIMEOUT_MULTIPLIER     = 5
	DEFAULT_TIMEOUT_BLOCKS = 600
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig
	Network            chains.Network

	// usd bucket -> confirmations
	ConfirmationsByValue map[uint64]uint64

	RequestTimeout    time.Duration
	RequestsPerSecond float64
	RequestBurst      int
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	ConfirmationsByValue     map[uint64]uint64 `mapstructure:"confirmationsByValue"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config. Unset network parameters are taken from the known
// network table.
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &c,
	})
	if err != nil {
		return nil, err
	}
	err = decoder.Decode(chainConfig)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	id := chains.ChainID(*c.Id)
	// nolint:gosec
	network := chains.Network{
		ID:                   id,
		Name:                 c.Name,
		AverageBlockTime:     time.Duration(c.Blocktime) * time.Millisecond,
		PollInterval:         time.Duration(c.PollInterval) * time.Millisecond,
		Thresholds:           chains.Thresholds(c.Thresholds),
		DefaultConfirmations: c.DefaultConfirmations,
		TimeoutBlocks:        c.TimeoutBlocks,
	}
	if known, ok := chains.KnownNetwork(id); ok {
		known.Name = c.Name
		err = mergo.Merge(&network, known)
		if err != nil {
			return nil, err
		}
	}
	if network.AverageBlockTime == 0 {
		return nil, fmt.Errorf("blocktime required for unknown chain %d", id)
	}
	if network.PollInterval == 0 {
		network.PollInterval = network.AverageBlockTime
	}
	if network.DefaultConfirmations == 0 {
		network.DefaultConfirmations = network.Thresholds.Safe
	}
	// unknown chains without a timeout wait a multiple of their deepest
	// confirmation requirement
	if network.TimeoutBlocks == 0 {
		network.TimeoutBlocks = TIMEOUT_MULTIPLIER * max(network.Thresholds.Final, network.DefaultConfirmations)
	}
	if network.TimeoutBlocks == 0 {
		network.TimeoutBlocks = DEFAULT_TIMEOUT_BLOCKS
	}

	c.ParseFlags()
	config := &EVMConfig{
		GeneralChainConfig:   c.GeneralChainConfig,
		Network:              network,
		ConfirmationsByValue: c.ConfirmationsByValue,

		// nolint:gosec
		RequestTimeout:    time.Duration(c.RequestTimeout) * time.Second,
		RequestsPerSecond: c.RequestsPerSecond,
		RequestBurst:      c.RequestBurst,
	}

	return config, nil
}
