// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/sprintertech/bridge-orchestrator/config"
)

type ThresholdsConfig struct {
	Fast  uint64 `mapstructure:"fast"`
	Safe  uint64 `mapstructure:"safe"`
	Final uint64 `mapstructure:"final"`
}

type GeneralChainConfig struct {
	Name     string  `mapstructure:"name"`
	Id       *uint64 `mapstructure:"id"`
	Endpoint string  `mapstructure:"endpoint"`
	Type     string  `mapstructure:"type"`
	// milliseconds, zero falls back to the known network value
	Blocktime            uint64           `mapstructure:"blocktime"`
	PollInterval         uint64           `mapstructure:"pollInterval"`
	Thresholds           ThresholdsConfig `mapstructure:"thresholds"`
	DefaultConfirmations uint64           `mapstructure:"defaultConfirmations"`
	TimeoutBlocks        uint64           `mapstructure:"timeoutBlocks"`
	// seconds
	RequestTimeout    uint64  `mapstructure:"requestTimeout" default:"10"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond" default:"25"`
	RequestBurst      int     `mapstructure:"requestBurst" default:"10"`
	StorePath         string  `mapstructure:"storePath"`
}

func (c *GeneralChainConfig) Validate() error {
	// viper defaults to 0 for not specified ints
	if c.Id == nil {
		return fmt.Errorf("required field chain.Id empty for chain %s", c.Name)
	}
	if *c.Id == 0 {
		return fmt.Errorf("chain.Id must be positive for chain %s", c.Name)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", *c.Id)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	t := c.Thresholds
	if (t.Fast != 0 && t.Safe != 0 && t.Fast > t.Safe) || (t.Safe != 0 && t.Final != 0 && t.Safe > t.Final) {
		return fmt.Errorf("thresholds must be ordered fast <= safe <= final for chain %v", *c.Id)
	}
	return nil
}

func (c *GeneralChainConfig) ParseFlags() {
	storePath := viper.GetString(config.StoreFlagName)
	if storePath != "" {
		c.StorePath = storePath
	}
}
