package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/bridge-orchestrator/chains"
)

type TokenConfig struct {
	Address  common.Address
	Decimals uint8
}

type TokenStore struct {
	Tokens map[chains.ChainID]map[string]TokenConfig
}

// NewTokenStore indexes raw token entries by chain and upper-cased symbol
func NewTokenStore(raw []RawTokenConfig) (TokenStore, error) {
	tokens := make(map[chains.ChainID]map[string]TokenConfig)
	for _, t := range raw {
		if t.Symbol == "" || t.Chain == 0 {
			return TokenStore{}, fmt.Errorf("token entry requires symbol and chain")
		}
		if t.Address != "" && !common.IsHexAddress(t.Address) {
			return TokenStore{}, fmt.Errorf("invalid address %s for token %s", t.Address, t.Symbol)
		}

		id := chains.ChainID(t.Chain)
		if _, ok := tokens[id]; !ok {
			tokens[id] = make(map[string]TokenConfig)
		}
		tokens[id][strings.ToUpper(t.Symbol)] = TokenConfig{
			Address:  common.HexToAddress(t.Address),
			Decimals: t.Decimals,
		}
	}
	return TokenStore{Tokens: tokens}, nil
}

func (s *TokenStore) ConfigByAddress(chainID chains.ChainID, address common.Address) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}

func (s *TokenStore) ConfigBySymbol(chainID chains.ChainID, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[strings.ToUpper(symbol)]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// Supports reports whether the token is configured on the chain. An empty
// store supports every token.
func (s *TokenStore) Supports(chainID chains.ChainID, symbol string) bool {
	if len(s.Tokens) == 0 {
		return true
	}
	_, err := s.ConfigBySymbol(chainID, symbol)
	return err == nil
}
