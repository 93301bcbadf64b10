// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName = "config"
	StoreFlagName  = "store"
	EnvPrefix      = "BO"
)

// BindFlags binds the persistent flags shared by all commands
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, ".", "Path to JSON/YAML configuration file or `env` to read from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(StoreFlagName, "", "Path to the embedded store directory")
	_ = viper.BindPFlag(StoreFlagName, rootCMD.PersistentFlags().Lookup(StoreFlagName))
}

type StoreConfig struct {
	Type      string `mapstructure:"type" default:"memory"`
	Path      string `mapstructure:"path" default:"./data"`
	RedisAddr string `mapstructure:"redisAddr" default:"localhost:6379"`
	RedisDB   int    `mapstructure:"redisDB"`
}

type BridgeConfig struct {
	MaxRetries uint `mapstructure:"maxRetries" default:"3"`
	// milliseconds
	BaseDelay uint64 `mapstructure:"baseDelay" default:"1000"`
	// seconds
	AttemptTimeout uint64 `mapstructure:"attemptTimeout" default:"120"`
	RouteCacheTTL  uint64 `mapstructure:"routeCacheTTL" default:"300"`
	ShutdownGrace  uint64 `mapstructure:"shutdownGrace" default:"30"`
}

type WeightsConfig struct {
	Cost        float64 `mapstructure:"cost" default:"0.35"`
	Speed       float64 `mapstructure:"speed" default:"0.40"`
	Reliability float64 `mapstructure:"reliability" default:"0.25"`
}

type RoutingConfig struct {
	// seconds
	CacheTTL       uint64        `mapstructure:"cacheTTL" default:"120"`
	Intermediaries []uint64      `mapstructure:"intermediaries"`
	Weights        WeightsConfig `mapstructure:"weights"`
	UseLiveQuotes  bool          `mapstructure:"useLiveQuotes"`
}

type TrackingConfig struct {
	MaxConcurrent    int    `mapstructure:"maxConcurrent" default:"1000"`
	BatchSize        int    `mapstructure:"batchSize" default:"20"`
	FetchRetries     int    `mapstructure:"fetchRetries" default:"3"`
	MaxFetchFailures int    `mapstructure:"maxFetchFailures"`
	DropAfterMisses  int    `mapstructure:"dropAfterMisses" default:"3"`
	MaxCompleted     int    `mapstructure:"maxCompleted" default:"1000"`
	// minutes
	CompletedRetention uint64  `mapstructure:"completedRetention" default:"60"`
	MaxGasPriceGwei    float64 `mapstructure:"maxGasPriceGwei" default:"500"`
}

type CoinmarketcapConfig struct {
	Url    string `mapstructure:"url" default:"https://pro-api.coinmarketcap.com"`
	ApiKey string `mapstructure:"apiKey"`
}

type OrchestratorConfig struct {
	Id                        string              `mapstructure:"id" default:"bridge-orchestrator"`
	Env                       string              `mapstructure:"env" default:"dev"`
	LogLevel                  string              `mapstructure:"logLevel" default:"info"`
	ApiAddr                   string              `mapstructure:"apiAddr" default:":8080"`
	HealthPort                uint16              `mapstructure:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string              `mapstructure:"openTelemetryCollectorURL"`
	Store                     StoreConfig         `mapstructure:"store"`
	Bridge                    BridgeConfig        `mapstructure:"bridge"`
	Routing                   RoutingConfig       `mapstructure:"routing"`
	Tracking                  TrackingConfig      `mapstructure:"tracking"`
	CoinmarketcapConfig       CoinmarketcapConfig `mapstructure:"coinmarketcap"`
}

type AdapterConfig struct {
	Type   string `mapstructure:"type" json:"type"`
	Url    string `mapstructure:"url" json:"url"`
	ApiKey string `mapstructure:"apiKey" json:"apiKey"`
}

type ProtocolConfig struct {
	Id         string   `mapstructure:"id" json:"id"`
	Chains     []uint64 `mapstructure:"chains" json:"chains"`
	Tokens     []string `mapstructure:"tokens" json:"tokens"`
	TrustModel string   `mapstructure:"trustModel" json:"trustModel"`
	// seconds
	AverageTime   uint64        `mapstructure:"averageTime" json:"averageTime"`
	BaseFee       float64       `mapstructure:"baseFee" json:"baseFee"`
	FeeBps        float64       `mapstructure:"feeBps" json:"feeBps"`
	MinAmount     string        `mapstructure:"minAmount" json:"minAmount"`
	Reliability   float64       `mapstructure:"reliability" json:"reliability"`
	Bonus         *float64      `mapstructure:"bonus" json:"bonus"`
	SecurityScore float64       `mapstructure:"securityScore" json:"securityScore"`
	Adapter       AdapterConfig `mapstructure:"adapter" json:"adapter"`
}

func (c *ProtocolConfig) Validate() error {
	if c.Id == "" {
		return fmt.Errorf("required field protocol.Id empty")
	}
	if len(c.Chains) < 2 {
		return fmt.Errorf("protocol %s must support at least two chains", c.Id)
	}
	if c.Reliability < 0 || c.Reliability > 1 {
		return fmt.Errorf("protocol %s reliability must be within [0,1]", c.Id)
	}
	if c.SecurityScore < 0 || c.SecurityScore > 1 {
		return fmt.Errorf("protocol %s security score must be within [0,1]", c.Id)
	}
	return nil
}

type RawTokenConfig struct {
	Symbol   string `mapstructure:"symbol" json:"symbol"`
	Chain    uint64 `mapstructure:"chain" json:"chain"`
	Address  string `mapstructure:"address" json:"address"`
	Decimals uint8  `mapstructure:"decimals" json:"decimals"`
}

type RawConfig struct {
	OrchestratorConfig OrchestratorConfig       `mapstructure:"orchestrator" json:"orchestrator"`
	ChainConfigs       []map[string]interface{} `mapstructure:"chains" json:"chains"`
	ProtocolConfigs    []ProtocolConfig         `mapstructure:"protocols" json:"protocols"`
	TokenConfigs       []RawTokenConfig         `mapstructure:"tokens" json:"tokens"`
}

type Config struct {
	OrchestratorConfig OrchestratorConfig
	ChainConfigs       []map[string]interface{}
	ProtocolConfigs    []ProtocolConfig
	TokenStore         TokenStore
}

// GetConfigFromFile reads configuration from the JSON/YAML file at path
func GetConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	var raw RawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed decoding config: %w", err)
	}
	return processConfig(raw)
}

// GetConfigFromENV reads orchestrator settings from prefixed environment
// variables. Chains, protocols and tokens are JSON encoded in
// BO_CHAINS, BO_PROTOCOLS and BO_TOKENS.
func GetConfigFromENV() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var raw RawConfig
	bindOrchestratorEnv(v)
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed decoding env config: %w", err)
	}

	if err := unmarshalEnv("CHAINS", &raw.ChainConfigs); err != nil {
		return nil, err
	}
	if err := unmarshalEnv("PROTOCOLS", &raw.ProtocolConfigs); err != nil {
		return nil, err
	}
	if err := unmarshalEnv("TOKENS", &raw.TokenConfigs); err != nil {
		return nil, err
	}
	return processConfig(raw)
}

func bindOrchestratorEnv(v *viper.Viper) {
	keys := []string{
		"id", "env", "logLevel", "apiAddr", "healthPort", "openTelemetryCollectorURL",
		"store.type", "store.path", "store.redisAddr", "store.redisDB",
		"bridge.maxRetries", "bridge.baseDelay", "bridge.attemptTimeout", "bridge.routeCacheTTL", "bridge.shutdownGrace",
		"routing.cacheTTL", "routing.useLiveQuotes",
		"tracking.maxConcurrent", "tracking.batchSize", "tracking.fetchRetries", "tracking.maxFetchFailures",
		"tracking.dropAfterMisses", "tracking.maxCompleted", "tracking.completedRetention", "tracking.maxGasPriceGwei",
		"coinmarketcap.url", "coinmarketcap.apiKey",
	}
	for _, k := range keys {
		_ = v.BindEnv("orchestrator."+k, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(k, ".", "_")))
	}
}

func unmarshalEnv(name string, target interface{}) error {
	raw := os.Getenv(EnvPrefix + "_" + name)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("failed decoding %s_%s: %w", EnvPrefix, name, err)
	}
	return nil
}

func processConfig(raw RawConfig) (*Config, error) {
	if err := defaults.Set(&raw.OrchestratorConfig); err != nil {
		return nil, err
	}
	if err := raw.OrchestratorConfig.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for i := range raw.ProtocolConfigs {
		p := &raw.ProtocolConfigs[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[p.Id]; ok {
			return nil, fmt.Errorf("duplicate protocol %s", p.Id)
		}
		seen[p.Id] = struct{}{}
	}

	tokens, err := NewTokenStore(raw.TokenConfigs)
	if err != nil {
		return nil, err
	}

	return &Config{
		OrchestratorConfig: raw.OrchestratorConfig,
		ChainConfigs:       raw.ChainConfigs,
		ProtocolConfigs:    raw.ProtocolConfigs,
		TokenStore:         tokens,
	}, nil
}

func (c *OrchestratorConfig) Validate() error {
	w := c.Routing.Weights
	if w.Cost < 0 || w.Speed < 0 || w.Reliability < 0 {
		return fmt.Errorf("routing weights must not be negative")
	}
	switch c.Store.Type {
	case "memory", "leveldb", "redis":
	default:
		return fmt.Errorf("store type '%s' not recognized", c.Store.Type)
	}
	if c.Tracking.BatchSize <= 0 {
		return fmt.Errorf("tracking batch size must be positive")
	}
	if c.Tracking.MaxConcurrent <= 0 {
		return fmt.Errorf("tracking concurrency limit must be positive")
	}
	return nil
}
