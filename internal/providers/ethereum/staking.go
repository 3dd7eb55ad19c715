package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/contracts"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
)

// StakingClient reads and writes the staking contract
//
//go:generate mockgen -source=staking.go -destination=../../mocks/staking_client.go -package=mocks -mock_names=StakingClient=MockStakingClient
type StakingClient interface {
	// Address returns the staking contract address
	Address() common.Address

	// IsPaused reports whether staking is currently paused
	IsPaused(ctx context.Context) (bool, error)

	// GetStakeInfo returns the stake record of tokenID
	GetStakeInfo(ctx context.Context, tokenID uint64) (*domain.StakeInfo, error)

	// StakeTokens stakes tokenIDs with the lock month code at the same index and waits for the receipt
	StakeTokens(ctx context.Context, signer Signer, tokenIDs []uint64, months []uint8) (*types.Receipt, error)

	// UnstakeTokens unstakes tokenIDs and waits for the receipt
	UnstakeTokens(ctx context.Context, signer Signer, tokenIDs []uint64) (*types.Receipt, error)
}

type stakingClient struct {
	address    common.Address
	client     adapter.EthClient
	transactor Transactor
}

// NewStakingClient creates a StakingClient for the contract at address
func NewStakingClient(address common.Address, client adapter.EthClient, transactor Transactor) StakingClient {
	return &stakingClient{
		address:    address,
		client:     client,
		transactor: transactor,
	}
}

func (c *stakingClient) Address() common.Address {
	return c.address
}

func (c *stakingClient) IsPaused(ctx context.Context) (bool, error) {
	values, err := callView(ctx, c.client, c.address, contracts.StakingABI, contracts.MethodIsStakingPaused)
	if err != nil {
		return false, err
	}

	paused, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected isStakingPaused result type %T", values[0])
	}
	return paused, nil
}

func (c *stakingClient) GetStakeInfo(ctx context.Context, tokenID uint64) (*domain.StakeInfo, error) {
	values, err := callView(ctx, c.client, c.address, contracts.StakingABI, contracts.MethodGetStakeInfo, new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, err
	}
	if len(values) != 4 {
		return nil, fmt.Errorf("unexpected getStakeInfo output count: %d", len(values))
	}

	// uint40 values decode as *big.Int
	startTime := *abi.ConvertType(values[0], new(*big.Int)).(**big.Int)
	unlockTime := *abi.ConvertType(values[1], new(*big.Int)).(**big.Int)
	lockMonths := *abi.ConvertType(values[2], new(uint8)).(*uint8)
	owner := *abi.ConvertType(values[3], new(common.Address)).(*common.Address)

	return &domain.StakeInfo{
		TokenID:    tokenID,
		StartTime:  time.Unix(startTime.Int64(), 0).UTC(),
		UnlockTime: time.Unix(unlockTime.Int64(), 0).UTC(),
		LockMonths: lockMonths,
		Owner:      owner.Hex(),
	}, nil
}

func (c *stakingClient) StakeTokens(ctx context.Context, signer Signer, tokenIDs []uint64, months []uint8) (*types.Receipt, error) {
	if len(tokenIDs) == 0 {
		return nil, domain.ErrNoTokensSelected
	}
	if len(tokenIDs) != len(months) {
		return nil, fmt.Errorf("%w: %d token ids, %d lock months", domain.ErrLengthMismatch, len(tokenIDs), len(months))
	}

	return c.transactor.Transact(ctx, signer, c.address, contracts.StakingABI, contracts.MethodStake, toBigInts(tokenIDs), months)
}

func (c *stakingClient) UnstakeTokens(ctx context.Context, signer Signer, tokenIDs []uint64) (*types.Receipt, error) {
	if len(tokenIDs) == 0 {
		return nil, domain.ErrNoTokensSelected
	}

	return c.transactor.Transact(ctx, signer, c.address, contracts.StakingABI, contracts.MethodUnstake, toBigInts(tokenIDs))
}
