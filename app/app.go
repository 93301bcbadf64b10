// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/sprintertech/bridge-orchestrator/api"
	"github.com/sprintertech/bridge-orchestrator/api/handlers"
	"github.com/sprintertech/bridge-orchestrator/bridge"
	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/chains/evm"
	"github.com/sprintertech/bridge-orchestrator/config"
	"github.com/sprintertech/bridge-orchestrator/health"
	"github.com/sprintertech/bridge-orchestrator/metrics"
	"github.com/sprintertech/bridge-orchestrator/observability"
	"github.com/sprintertech/bridge-orchestrator/price"
	"github.com/sprintertech/bridge-orchestrator/protocol"
	"github.com/sprintertech/bridge-orchestrator/protocol/rest"
	"github.com/sprintertech/bridge-orchestrator/route"
	"github.com/sprintertech/bridge-orchestrator/store"
	"github.com/sprintertech/bridge-orchestrator/store/lvldb"
	"github.com/sprintertech/bridge-orchestrator/store/memory"
	"github.com/sprintertech/bridge-orchestrator/store/redis"
	"github.com/sprintertech/bridge-orchestrator/tracker"
)

var Version string

func Run() error {
	configuration, err := loadConfig()
	panicOnError(err)

	observability.ConfigureLogger(configuration.OrchestratorConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	mp, err := observability.InitMetricProvider(context.Background(), configuration.OrchestratorConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orchestratorMetrics, err := metrics.NewOrchestratorMetrics(
		ctx,
		mp.Meter("orchestrator-metric-provider"),
		configuration.OrchestratorConfig.Env,
		configuration.OrchestratorConfig.Id,
		Version)
	panicOnError(err)

	db, err := newStore(configuration.OrchestratorConfig)
	panicOnError(err)
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Msgf("Error closing store: %v", err)
		}
	}()

	trackedChains := make([]tracker.Chain, 0)
	healthChecks := make(map[string]health.Checker)
	intermediaries := make([]chains.ChainID, 0)
	confirmationsPerChain := make(map[chains.ChainID]map[uint64]uint64)
	chainConfirmations := make(map[chains.ChainID]handlers.ChainConfirmations)
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				config, err := evm.NewEVMConfig(chainConfig)
				panicOnError(err)

				client, err := evm.NewEVMClient(ctx, config)
				panicOnError(err)
				defer client.Close()

				log.Info().Uint64("chain", *config.GeneralChainConfig.Id).Msgf("Registering EVM chain %s", config.GeneralChainConfig.Name)

				trackedChains = append(trackedChains, tracker.Chain{
					Network: config.Network,
					Client:  client,
				})
				healthChecks[config.GeneralChainConfig.Name] = client
				intermediaries = append(intermediaries, config.Network.ID)
				if len(config.ConfirmationsByValue) > 0 {
					confirmationsPerChain[config.Network.ID] = config.ConfirmationsByValue
				}
				chainConfirmations[config.Network.ID] = handlers.ChainConfirmations{
					Thresholds:           config.Network.Thresholds,
					DefaultConfirmations: config.Network.DefaultConfirmations,
					ByValue:              config.ConfirmationsByValue,
				}
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	registry, err := newRegistry(configuration.ProtocolConfigs)
	panicOnError(err)

	calculator := newCalculator(configuration.OrchestratorConfig.Routing, registry, intermediaries)
	calculator.Start(ctx)

	confirmationTracker := tracker.NewTracker(
		trackedChains,
		tracker.NewConfig(configuration.OrchestratorConfig.Tracking),
		tracker.WithStore(db),
		tracker.WithMetrics(orchestratorMetrics),
		tracker.WithSecurityPolicy(tracker.NewGasPolicy(configuration.OrchestratorConfig.Tracking.MaxGasPriceGwei)),
	)
	confirmationTracker.Start(ctx)

	priceAPI := price.NewCoinmarketcapAPI(
		configuration.OrchestratorConfig.CoinmarketcapConfig.Url,
		configuration.OrchestratorConfig.CoinmarketcapConfig.ApiKey)
	valuePolicy := bridge.NewValuePolicy(configuration.TokenStore, priceAPI, confirmationsPerChain)

	orchestrator := bridge.NewOrchestrator(
		calculator,
		registry,
		confirmationTracker,
		bridge.NewConfig(configuration.OrchestratorConfig.Bridge),
		bridge.WithStore(db),
		bridge.WithTokens(&configuration.TokenStore),
		bridge.WithConfirmationPolicy(valuePolicy),
		bridge.WithMetrics(orchestratorMetrics),
	)
	err = orchestrator.Load(ctx)
	panicOnError(err)
	orchestrator.Start(ctx)

	go health.StartHealthEndpoint(configuration.OrchestratorConfig.HealthPort, healthChecks)

	router := api.NewRouter(
		handlers.NewRouteHandler(orchestrator, calculator),
		handlers.NewBridgeHandler(orchestrator),
		handlers.NewTrackingHandler(confirmationTracker),
		handlers.NewConfirmationsHandler(chainConfirmations),
	)
	serverCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()
	go api.Serve(serverCtx, configuration.OrchestratorConfig.ApiAddr, router)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started orchestrator: %s. Version: v%s", configuration.OrchestratorConfig.Id, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)

	stopServer()
	// nolint:gosec
	shutdownCtx, cancelShutdown := context.WithTimeout(
		context.Background(),
		time.Duration(configuration.OrchestratorConfig.Bridge.ShutdownGrace)*time.Second)
	defer cancelShutdown()
	if err := orchestrator.Shutdown(shutdownCtx); err != nil {
		log.Warn().Msgf("In-flight bridges cancelled on shutdown: %s", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	configFlag := viper.GetString(config.ConfigFlagName)
	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV()
	}
	return config.GetConfigFromFile(configFlag)
}

func newStore(c config.OrchestratorConfig) (store.Store, error) {
	switch c.Store.Type {
	case "leveldb":
		path := c.Store.Path
		if flagPath := viper.GetString(config.StoreFlagName); flagPath != "" {
			path = flagPath
		}
		db, err := lvldb.NewLvlDB(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case "redis":
		return redis.NewRedisStore(c.Store.RedisAddr, c.Store.RedisDB, c.Id), nil
	default:
		return memory.NewMemoryStore(), nil
	}
}

// newRegistry registers every configured protocol. Protocols without an
// adapter are only used for route estimation.
func newRegistry(protocolConfigs []config.ProtocolConfig) (*protocol.Registry, error) {
	registry := protocol.NewRegistry()
	for _, protocolConfig := range protocolConfigs {
		capability, err := protocol.NewCapability(protocolConfig)
		if err != nil {
			return nil, err
		}

		var adapter protocol.Adapter
		switch protocolConfig.Adapter.Type {
		case "rest":
			supportedChains := make([]chains.ChainID, len(protocolConfig.Chains))
			for i, id := range protocolConfig.Chains {
				supportedChains[i] = chains.ChainID(id)
			}
			adapter = rest.NewRestAdapter(protocolConfig.Adapter.Url, protocolConfig.Adapter.ApiKey, supportedChains)
		case "":
		default:
			return nil, fmt.Errorf("adapter type '%s' not recognized", protocolConfig.Adapter.Type)
		}

		err = registry.Register(capability, adapter)
		if err != nil {
			return nil, err
		}
		log.Info().Str("protocol", capability.ID).Msgf("Registered protocol")
	}
	return registry, nil
}

func newCalculator(c config.RoutingConfig, registry *protocol.Registry, chainIDs []chains.ChainID) *route.Calculator {
	var estimator protocol.CostEstimator = protocol.NewCapabilityEstimator(registry)
	if c.UseLiveQuotes {
		estimator = protocol.NewAdapterEstimator(registry)
	}

	intermediaries := chainIDs
	if len(c.Intermediaries) > 0 {
		intermediaries = make([]chains.ChainID, len(c.Intermediaries))
		for i, id := range c.Intermediaries {
			intermediaries[i] = chains.ChainID(id)
		}
	}

	// nolint:gosec
	return route.NewCalculator(
		registry,
		estimator,
		route.WithIntermediaries(intermediaries...),
		route.WithCriteria(route.Criteria{
			Cost:        c.Weights.Cost,
			Speed:       c.Weights.Speed,
			Reliability: c.Weights.Reliability,
		}),
		route.WithHealthChecker(registry),
		route.WithCacheTTL(time.Duration(c.CacheTTL)*time.Second),
	)
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
