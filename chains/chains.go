package chains

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ChainID is the EIP-155 identifier of a chain.
type ChainID uint64

const (
	Ethereum  ChainID = 1
	Optimism  ChainID = 10
	BSC       ChainID = 56
	Polygon   ChainID = 137
	Base      ChainID = 8453
	Arbitrum  ChainID = 42161
	Avalanche ChainID = 43114
)

func (id ChainID) String() string {
	if n, ok := knownNetworks[id]; ok {
		return n.Name
	}
	return strconv.FormatUint(uint64(id), 10)
}

// ParseChainID accepts either a numeric chain id or a known network name.
func ParseChainID(s string) (ChainID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty chain id")
	}

	if id, err := strconv.ParseUint(s, 10, 64); err == nil {
		if id == 0 {
			return 0, fmt.Errorf("chain id must be positive")
		}
		return ChainID(id), nil
	}

	for id, n := range knownNetworks {
		if strings.EqualFold(n.Name, s) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown chain %s", s)
}

// Thresholds are the confirmation depths at which a transaction is
// considered fast, safe and final on a network.
type Thresholds struct {
	Fast  uint64 `mapstructure:"fast" json:"fast"`
	Safe  uint64 `mapstructure:"safe" json:"safe"`
	Final uint64 `mapstructure:"final" json:"final"`
}

// Network holds the block production parameters the tracker relies on.
type Network struct {
	ID                   ChainID
	Name                 string
	AverageBlockTime     time.Duration
	PollInterval         time.Duration
	Thresholds           Thresholds
	DefaultConfirmations uint64
	TimeoutBlocks        uint64
}

// Timeout returns the wall clock budget for the given amount of blocks.
func (n Network) Timeout(blocks uint64) time.Duration {
	if blocks == 0 {
		blocks = n.TimeoutBlocks
	}
	// nolint:gosec
	return time.Duration(blocks) * n.AverageBlockTime
}

var knownNetworks = map[ChainID]Network{
	Ethereum: {
		ID:                   Ethereum,
		Name:                 "ethereum",
		AverageBlockTime:     12 * time.Second,
		PollInterval:         12 * time.Second,
		Thresholds:           Thresholds{Fast: 3, Safe: 12, Final: 32},
		DefaultConfirmations: 12,
		TimeoutBlocks:        150,
	},
	Optimism: {
		ID:                   Optimism,
		Name:                 "optimism",
		AverageBlockTime:     2 * time.Second,
		PollInterval:         4 * time.Second,
		Thresholds:           Thresholds{Fast: 1, Safe: 10, Final: 50},
		DefaultConfirmations: 10,
		TimeoutBlocks:        900,
	},
	BSC: {
		ID:                   BSC,
		Name:                 "bsc",
		AverageBlockTime:     3 * time.Second,
		PollInterval:         3 * time.Second,
		Thresholds:           Thresholds{Fast: 3, Safe: 15, Final: 50},
		DefaultConfirmations: 15,
		TimeoutBlocks:        600,
	},
	Polygon: {
		ID:                   Polygon,
		Name:                 "polygon",
		AverageBlockTime:     2 * time.Second,
		PollInterval:         4 * time.Second,
		Thresholds:           Thresholds{Fast: 10, Safe: 64, Final: 128},
		DefaultConfirmations: 64,
		TimeoutBlocks:        900,
	},
	Base: {
		ID:                   Base,
		Name:                 "base",
		AverageBlockTime:     2 * time.Second,
		PollInterval:         4 * time.Second,
		Thresholds:           Thresholds{Fast: 1, Safe: 10, Final: 50},
		DefaultConfirmations: 10,
		TimeoutBlocks:        900,
	},
	Arbitrum: {
		ID:                   Arbitrum,
		Name:                 "arbitrum",
		AverageBlockTime:     250 * time.Millisecond,
		PollInterval:         2 * time.Second,
		Thresholds:           Thresholds{Fast: 1, Safe: 20, Final: 100},
		DefaultConfirmations: 20,
		TimeoutBlocks:        7200,
	},
	Avalanche: {
		ID:                   Avalanche,
		Name:                 "avalanche",
		AverageBlockTime:     2 * time.Second,
		PollInterval:         2 * time.Second,
		Thresholds:           Thresholds{Fast: 1, Safe: 3, Final: 10},
		DefaultConfirmations: 3,
		TimeoutBlocks:        900,
	},
}

// KnownNetwork returns the built-in parameters for a chain.
func KnownNetwork(id ChainID) (Network, bool) {
	n, ok := knownNetworks[id]
	return n, ok
}
