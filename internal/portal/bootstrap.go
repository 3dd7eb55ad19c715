package portal

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/cache"
	"github.com/degenerous-dao/potentials-staking/internal/config"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
	"github.com/degenerous-dao/potentials-staking/internal/providers/ethereum"
	"github.com/degenerous-dao/potentials-staking/internal/providers/hyperindex"
)

// Dependencies are the adapters the portal is built on
type Dependencies struct {
	Dialer     adapter.EthClientDialer
	HTTPClient adapter.HTTPClient
	JSON       adapter.JSON
	Clock      adapter.Clock
}

// DefaultDependencies returns the real adapters for cfg
func DefaultDependencies(cfg config.PortalConfig) Dependencies {
	return Dependencies{
		Dialer:     adapter.NewEthClientDialer(),
		HTTPClient: adapter.NewHTTPClient(cfg.Indexer.HTTPTimeout),
		JSON:       adapter.NewJSON(),
		Clock:      adapter.NewClock(),
	}
}

// Open dials the RPC endpoint, checks it serves the configured chain and builds the service.
// The caller owns the returned client and must close it.
func Open(ctx context.Context, cfg config.PortalConfig, deps Dependencies) (Service, adapter.EthClient, error) {
	ethClient, err := deps.Dialer.Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial RPC endpoint: %w", err)
	}

	if err := ethereum.VerifyChainID(ctx, ethClient, cfg.Chain.Chain()); err != nil {
		ethClient.Close()
		return nil, nil, err
	}

	potentialsAddress := common.HexToAddress(cfg.Chain.PotentialsAddress)
	stakingAddress := common.HexToAddress(cfg.Chain.StakingAddress)
	multicallAddress := common.HexToAddress(cfg.Chain.MulticallAddress)

	transactor := ethereum.NewTransactor(ethClient, ethereum.TransactorConfig{
		PollInterval:   cfg.Transaction.PollInterval,
		ConfirmTimeout: cfg.Transaction.ConfirmTimeout,
	})
	potentials := ethereum.NewPotentialsClient(
		ethereum.PotentialsConfig{Address: potentialsAddress, BatchDelay: cfg.Scan.BatchDelay},
		ethClient,
		ethereum.NewMulticaller(ethClient, multicallAddress),
		transactor,
		deps.Clock,
	)
	staking := ethereum.NewStakingClient(stakingAddress, ethClient, transactor)
	indexer := hyperindex.NewClient(hyperindex.Config{
		Endpoint:     cfg.Indexer.GraphQLEndpoint,
		WeeklyPoints: cfg.Points.WeeklyEmission,
	}, deps.HTTPClient, deps.JSON, deps.Clock)

	svc := NewService(Config{
		Settings: SettingsFromConfig(cfg),
		Cache:    cache.Config{TTL: cfg.Cache.TTL},
	}, potentials, staking, indexer, deps.Clock)

	logger.InfoCtx(ctx, "Portal ready",
		zap.String("chain", string(cfg.Chain.Chain())),
		zap.String("potentials", potentialsAddress.Hex()),
		zap.String("staking", stakingAddress.Hex()),
		zap.String("indexer", cfg.Indexer.GraphQLEndpoint),
	)

	return svc, ethClient, nil
}

// SettingsFromConfig extracts the public settings from cfg
func SettingsFromConfig(cfg config.PortalConfig) Settings {
	return Settings{
		ChainID:           cfg.Chain.ChainID,
		Chain:             string(cfg.Chain.Chain()),
		PotentialsAddress: domain.NormalizeAddress(cfg.Chain.PotentialsAddress),
		StakingAddress:    domain.NormalizeAddress(cfg.Chain.StakingAddress),
		MulticallAddress:  domain.NormalizeAddress(cfg.Chain.MulticallAddress),
		GraphQLEndpoint:   cfg.Indexer.GraphQLEndpoint,
		WeeklyEmission:    cfg.Points.WeeklyEmission,
		TotalSupply:       cfg.Scan.TotalSupply,
		BatchSize:         cfg.Scan.BatchSize,
	}
}
