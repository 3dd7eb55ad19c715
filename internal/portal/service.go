package portal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/cache"
	"github.com/degenerous-dao/potentials-staking/internal/contracts"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
	"github.com/degenerous-dao/potentials-staking/internal/metrics"
	"github.com/degenerous-dao/potentials-staking/internal/providers/ethereum"
	"github.com/degenerous-dao/potentials-staking/internal/providers/hyperindex"
	"github.com/degenerous-dao/potentials-staking/internal/wallet"
)

// Service is the staking portal shared by the HTTP API and stakectl
//
//go:generate mockgen -source=service.go -destination=../mocks/portal_service.go -package=mocks -mock_names=Service=MockPortalService
type Service interface {
	// Settings returns the public chain and scan settings
	Settings() Settings

	// GetGlobalStats returns the network-wide staking totals
	GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error)

	// GetUserStaking returns the indexer snapshot of address with its tokens mapped for display
	GetUserStaking(ctx context.Context, address string) (*UserStaking, error)

	// GetOwnedTokens discovers the Potentials held by address
	GetOwnedTokens(ctx context.Context, address string, totalSupply, batchSize int) (domain.OwnedTokenSet, error)

	// IsApproved reports whether the staking contract may move every Potential of address
	IsApproved(ctx context.Context, address string) (bool, error)

	// IsStakingPaused reports whether the staking contract is paused
	IsStakingPaused(ctx context.Context) (bool, error)

	// GetStakeInfo returns the on-chain stake record of tokenID
	GetStakeInfo(ctx context.Context, tokenID uint64) (*domain.StakeInfo, error)

	// GetTokenOwner returns the checksummed holder of tokenID. Staked tokens are held by the staking contract.
	GetTokenOwner(ctx context.Context, tokenID uint64) (string, error)

	// Approve grants or revokes the staking contract as operator for the signer
	Approve(ctx context.Context, signer ethereum.Signer, approved bool) (*types.Receipt, error)

	// Stake stakes tokenIDs for the signer with the lock month code at the same index
	Stake(ctx context.Context, signer ethereum.Signer, tokenIDs []uint64, months []uint8) (*types.Receipt, error)

	// Unstake unstakes tokenIDs for the signer
	Unstake(ctx context.Context, signer ethereum.Signer, tokenIDs []uint64) (*types.Receipt, error)

	// BindSession purges every cached read on each session event until the returned func is called
	BindSession(session *wallet.Session) func()
}

// Settings are the values the UI needs to talk to the contracts itself
type Settings struct {
	ChainID           int64   `json:"chain_id"`
	Chain             string  `json:"chain"`
	PotentialsAddress string  `json:"potentials_address"`
	StakingAddress    string  `json:"staking_address"`
	MulticallAddress  string  `json:"multicall_address"`
	GraphQLEndpoint   string  `json:"graphql_endpoint"`
	WeeklyEmission    float64 `json:"weekly_emission"`
	TotalSupply       int     `json:"total_supply"`
	BatchSize         int     `json:"batch_size"`
}

// UserStaking is the indexer snapshot of a user plus its tokens in display shape
type UserStaking struct {
	*domain.UserStakingData
	Tokens []domain.TokenState `json:"tokens"`
}

// Config holds the portal settings
type Config struct {
	Settings Settings
	Cache    cache.Config
}

type service struct {
	config     Config
	potentials ethereum.PotentialsClient
	staking    ethereum.StakingClient
	indexer    hyperindex.Client
	clock      adapter.Clock

	users     *cache.QueryCache[*UserStaking]
	owned     *cache.QueryCache[domain.OwnedTokenSet]
	flags     *cache.QueryCache[bool]
	stats     *cache.QueryCache[*domain.GlobalStats]
	stakeInfo *cache.QueryCache[*domain.StakeInfo]
	owners    *cache.QueryCache[string]
}

// NewService creates the portal service
func NewService(config Config, potentials ethereum.PotentialsClient, staking ethereum.StakingClient, indexer hyperindex.Client, clock adapter.Clock) Service {
	return &service{
		config:     config,
		potentials: potentials,
		staking:    staking,
		indexer:    indexer,
		clock:      clock,
		users:      cache.New[*UserStaking](config.Cache, clock),
		owned:      cache.New[domain.OwnedTokenSet](config.Cache, clock),
		flags:      cache.New[bool](config.Cache, clock),
		stats:      cache.New[*domain.GlobalStats](config.Cache, clock),
		stakeInfo:  cache.New[*domain.StakeInfo](config.Cache, clock),
		owners:     cache.New[string](config.Cache, clock),
	}
}

func (s *service) Settings() Settings {
	return s.config.Settings
}

func (s *service) GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	return cached(ctx, s.stats, "stats", globalStatsKey, func(ctx context.Context) (*domain.GlobalStats, error) {
		stats, err := s.indexer.GetGlobalStats(ctx)
		metrics.IndexerQueries.WithLabelValues("GetGlobalStats", metrics.Status(err)).Inc()
		return stats, err
	})
}

func (s *service) GetUserStaking(ctx context.Context, address string) (*UserStaking, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	staking, err := cached(ctx, s.users, "user_staking", userKey(address, "staking", address), func(ctx context.Context) (*UserStaking, error) {
		data, err := s.indexer.GetUserStakingData(ctx, address)
		metrics.IndexerQueries.WithLabelValues("GetUserData", metrics.Status(err)).Inc()
		if err != nil {
			return nil, err
		}

		tokens, err := domain.ToTokenStates(data.StakedNFTs)
		if err != nil {
			return nil, fmt.Errorf("failed to map staked tokens: %w", err)
		}

		return &UserStaking{UserStakingData: data, Tokens: tokens}, nil
	})
	if err != nil {
		return nil, err
	}

	// points keep accruing while the indexer row sits in the cache
	rate := domain.PointsRate(s.config.Settings.WeeklyEmission)
	return &UserStaking{
		UserStakingData: staking.UserStakingData.AccrueAt(s.clock.Now(), rate),
		Tokens:          staking.Tokens,
	}, nil
}

func (s *service) GetOwnedTokens(ctx context.Context, address string, totalSupply, batchSize int) (domain.OwnedTokenSet, error) {
	if err := validateAddress(address); err != nil {
		return domain.OwnedTokenSet{}, err
	}

	key := userKey(address, "owned", fmt.Sprintf("%d:%d", totalSupply, batchSize))
	return cached(ctx, s.owned, "owned_tokens", key, func(ctx context.Context) (domain.OwnedTokenSet, error) {
		start := s.clock.Now()
		set, err := s.potentials.GetOwnedTokenSet(ctx, address, totalSupply, batchSize)
		metrics.OwnershipScans.WithLabelValues(metrics.Status(err)).Inc()
		metrics.OwnershipScanDuration.Observe(s.clock.Since(start).Seconds())
		if err != nil {
			return domain.OwnedTokenSet{}, err
		}

		metrics.OwnedTokens.Observe(float64(len(set.IDs)))
		logger.DebugCtx(ctx, "Ownership scan finished",
			zap.String("owner", address),
			zap.Int("totalSupply", totalSupply),
			zap.Int("owned", len(set.IDs)),
		)
		return set, nil
	})
}

func (s *service) IsApproved(ctx context.Context, address string) (bool, error) {
	if err := validateAddress(address); err != nil {
		return false, err
	}

	return cached(ctx, s.flags, "approval", userKey(address, "approval", ""), func(ctx context.Context) (bool, error) {
		return s.potentials.IsApprovedForAll(ctx, address, s.staking.Address().Hex())
	})
}

func (s *service) IsStakingPaused(ctx context.Context) (bool, error) {
	return cached(ctx, s.flags, "paused", pausedKey, s.staking.IsPaused)
}

func (s *service) GetStakeInfo(ctx context.Context, tokenID uint64) (*domain.StakeInfo, error) {
	return cached(ctx, s.stakeInfo, "stake_info", tokenKey(tokenID), func(ctx context.Context) (*domain.StakeInfo, error) {
		return s.staking.GetStakeInfo(ctx, tokenID)
	})
}

func (s *service) GetTokenOwner(ctx context.Context, tokenID uint64) (string, error) {
	return cached(ctx, s.owners, "owner_of", ownerKey(tokenID), func(ctx context.Context) (string, error) {
		return s.potentials.OwnerOf(ctx, tokenID)
	})
}

func (s *service) Approve(ctx context.Context, signer ethereum.Signer, approved bool) (*types.Receipt, error) {
	if signer == nil {
		return nil, domain.ErrWalletNotConnected
	}

	receipt, err := s.potentials.SetApprovalForAll(ctx, signer, s.staking.Address().Hex(), approved)
	s.afterWrite(ctx, contracts.MethodSetApprovalForAll, signer.Address(), nil, receipt, err)
	return receipt, err
}

func (s *service) Stake(ctx context.Context, signer ethereum.Signer, tokenIDs []uint64, months []uint8) (*types.Receipt, error) {
	if signer == nil {
		return nil, domain.ErrWalletNotConnected
	}

	receipt, err := s.staking.StakeTokens(ctx, signer, tokenIDs, months)
	if receipt == nil && isInputError(err) {
		return nil, err
	}
	s.afterWrite(ctx, contracts.MethodStake, signer.Address(), tokenIDs, receipt, err)
	return receipt, err
}

func (s *service) Unstake(ctx context.Context, signer ethereum.Signer, tokenIDs []uint64) (*types.Receipt, error) {
	if signer == nil {
		return nil, domain.ErrWalletNotConnected
	}

	receipt, err := s.staking.UnstakeTokens(ctx, signer, tokenIDs)
	if receipt == nil && isInputError(err) {
		return nil, err
	}
	s.afterWrite(ctx, contracts.MethodUnstake, signer.Address(), tokenIDs, receipt, err)
	return receipt, err
}

func (s *service) BindSession(session *wallet.Session) func() {
	return session.Subscribe(func(event wallet.Event) {
		s.purge()
		logger.Debug("Portal cache purged on session change",
			zap.String("event", string(event.Type)),
			zap.String("address", event.State.Address),
		)
	})
}

// afterWrite records the outcome of a write and drops every cached read it may have changed
func (s *service) afterWrite(ctx context.Context, method string, sender common.Address, tokenIDs []uint64, receipt *types.Receipt, err error) {
	status := metrics.StatusSuccess
	switch {
	case errors.Is(err, domain.ErrTransactionReverted):
		status = metrics.StatusReverted
	case err != nil:
		status = metrics.StatusError
	}
	metrics.TransactionsSent.WithLabelValues(method, status).Inc()
	if receipt != nil {
		metrics.GasUsed.WithLabelValues(method).Observe(float64(receipt.GasUsed))
	}

	dropped := s.invalidateUser(sender.Hex())
	for _, tokenID := range tokenIDs {
		dropped += s.stakeInfo.Invalidate(tokenKey(tokenID))
		dropped += s.owners.Invalidate(ownerKey(tokenID))
	}
	dropped += s.stats.Invalidate(globalStatsKey)
	dropped += s.flags.Invalidate(pausedKey)

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("sender", sender.Hex()),
		zap.String("status", status),
		zap.Int("invalidated", dropped),
	}
	if receipt != nil {
		fields = append(fields, zap.String("txHash", receipt.TxHash.Hex()), zap.Stringer("block", receipt.BlockNumber))
	}
	logger.InfoCtx(ctx, "Contract write finished", fields...)
}

func (s *service) invalidateUser(address string) int {
	prefix := userPrefix(address)
	return s.users.Invalidate(prefix) + s.owned.Invalidate(prefix) + s.flags.Invalidate(prefix)
}

func (s *service) purge() {
	s.users.Purge()
	s.owned.Purge()
	s.flags.Purge()
	s.stats.Purge()
	s.stakeInfo.Purge()
	s.owners.Purge()
}

// cached reads key through c and counts whether fetch had to run
func cached[V any](ctx context.Context, c *cache.QueryCache[V], query, key string, fetch cache.FetchFunc[V]) (V, error) {
	fetched := false
	value, err := c.Get(ctx, key, func(ctx context.Context) (V, error) {
		fetched = true
		return fetch(ctx)
	})

	result := "hit"
	switch {
	case err != nil:
		result = "error"
	case fetched:
		result = "miss"
	}
	metrics.CacheLookups.WithLabelValues(query, result).Inc()

	return value, err
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrNoTokensSelected) ||
		errors.Is(err, domain.ErrLengthMismatch) ||
		errors.Is(err, domain.ErrInvalidArgument)
}

func validateAddress(address string) error {
	if !common.IsHexAddress(address) {
		return fmt.Errorf("%w: invalid address %q", domain.ErrInvalidArgument, address)
	}
	return nil
}

const (
	globalStatsKey = "stats:global"
	pausedKey      = "staking:paused"
)

// userPrefix is shared by every key derived from one account, in any letter case
func userPrefix(address string) string {
	return "user:" + strings.ToLower(address) + ":"
}

// userKey keeps the caller's spelling of the address after the prefix.
// The indexer receives the address verbatim.
func userKey(address, kind, suffix string) string {
	return userPrefix(address) + kind + ":" + suffix
}

func tokenKey(tokenID uint64) string {
	return "token:" + strconv.FormatUint(tokenID, 10) + ":stake"
}

func ownerKey(tokenID uint64) string {
	return "token:" + strconv.FormatUint(tokenID, 10) + ":owner"
}
