package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/contracts"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
)

// PotentialsClient reads and approves tokens of the Potentials collection
//
//go:generate mockgen -source=potentials.go -destination=../../mocks/potentials_client.go -package=mocks -mock_names=PotentialsClient=MockPotentialsClient
type PotentialsClient interface {
	// IsApprovedForAll reports whether operator may transfer every token of owner
	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)

	// OwnerOf returns the checksummed owner of tokenID
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)

	// GetOwnedTokenIDs scans token ids 1..totalSupply in batches of batchSize and
	// returns the ids currently owned by owner in ascending order
	GetOwnedTokenIDs(ctx context.Context, owner string, totalSupply, batchSize int) ([]uint64, error)

	// GetOwnedTokenSet is GetOwnedTokenIDs with a set view for membership checks
	GetOwnedTokenSet(ctx context.Context, owner string, totalSupply, batchSize int) (domain.OwnedTokenSet, error)

	// SetApprovalForAll grants or revokes operator and waits for the receipt
	SetApprovalForAll(ctx context.Context, signer Signer, operator string, approved bool) (*types.Receipt, error)
}

// PotentialsConfig holds the Potentials client settings
type PotentialsConfig struct {
	Address    common.Address
	BatchDelay time.Duration
}

type potentialsClient struct {
	config      PotentialsConfig
	client      adapter.EthClient
	multicaller Multicaller
	transactor  Transactor
	clock       adapter.Clock
}

// NewPotentialsClient creates a PotentialsClient
func NewPotentialsClient(config PotentialsConfig, client adapter.EthClient, multicaller Multicaller, transactor Transactor, clock adapter.Clock) PotentialsClient {
	return &potentialsClient{
		config:      config,
		client:      client,
		multicaller: multicaller,
		transactor:  transactor,
		clock:       clock,
	}
}

func (c *potentialsClient) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	ownerAddr, err := parseAddress("owner", owner)
	if err != nil {
		return false, err
	}
	operatorAddr, err := parseAddress("operator", operator)
	if err != nil {
		return false, err
	}

	values, err := callView(ctx, c.client, c.config.Address, contracts.PotentialsABI, contracts.MethodIsApprovedForAll, ownerAddr, operatorAddr)
	if err != nil {
		return false, err
	}

	approved, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected isApprovedForAll result type %T", values[0])
	}
	return approved, nil
}

func (c *potentialsClient) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	values, err := callView(ctx, c.client, c.config.Address, contracts.PotentialsABI, contracts.MethodOwnerOf, new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}

	owner, ok := values[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("unexpected ownerOf result type %T", values[0])
	}
	return owner.Hex(), nil
}

func (c *potentialsClient) GetOwnedTokenIDs(ctx context.Context, owner string, totalSupply, batchSize int) ([]uint64, error) {
	if _, err := parseAddress("owner", owner); err != nil {
		return nil, err
	}
	if totalSupply < 0 {
		return nil, fmt.Errorf("%w: total supply must not be negative: %d", domain.ErrInvalidArgument, totalSupply)
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive: %d", domain.ErrInvalidArgument, batchSize)
	}

	mine := []uint64{}
	for start := 1; start <= totalSupply; {
		// clamp before adding so a huge batch size cannot overflow
		end := start + min(batchSize, totalSupply-start+1) - 1

		ids, err := c.ownedInRange(ctx, owner, uint64(start), uint64(end))
		if err != nil {
			return nil, fmt.Errorf("failed to scan tokens %d-%d: %w", start, end, err)
		}
		mine = append(mine, ids...)

		logger.DebugCtx(ctx, "Scanned token batch",
			zap.String("owner", owner),
			zap.Int("from", start),
			zap.Int("to", end),
			zap.Int("owned", len(ids)))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(c.config.BatchDelay):
		}

		if end == totalSupply {
			break
		}
		start = end + 1
	}

	return mine, nil
}

// ownedInRange resolves ownerOf for ids from..to in one multicall and keeps the ids held by owner.
// Sub-calls that revert, such as for unminted ids, are skipped.
func (c *potentialsClient) ownedInRange(ctx context.Context, owner string, from, to uint64) ([]uint64, error) {
	calls := make([]Call3, 0, to-from+1)
	for id := from; id <= to; id++ {
		data, err := contracts.PotentialsABI.Pack(contracts.MethodOwnerOf, new(big.Int).SetUint64(id))
		if err != nil {
			return nil, fmt.Errorf("failed to pack ownerOf: %w", err)
		}
		calls = append(calls, Call3{
			Target:       c.config.Address,
			AllowFailure: true,
			CallData:     data,
		})
	}

	results, err := c.multicaller.Aggregate3(ctx, calls)
	if err != nil {
		return nil, err
	}

	var owned []uint64
	for i, result := range results {
		if !result.Success {
			continue
		}
		values, err := contracts.PotentialsABI.Unpack(contracts.MethodOwnerOf, result.ReturnData)
		if err != nil || len(values) == 0 {
			continue
		}
		addr, ok := values[0].(common.Address)
		if !ok {
			continue
		}
		if domain.SameAddress(addr.Hex(), owner) {
			owned = append(owned, from+uint64(i))
		}
	}

	return owned, nil
}

func (c *potentialsClient) GetOwnedTokenSet(ctx context.Context, owner string, totalSupply, batchSize int) (domain.OwnedTokenSet, error) {
	ids, err := c.GetOwnedTokenIDs(ctx, owner, totalSupply, batchSize)
	if err != nil {
		return domain.OwnedTokenSet{}, err
	}
	return domain.NewOwnedTokenSet(ids), nil
}

func (c *potentialsClient) SetApprovalForAll(ctx context.Context, signer Signer, operator string, approved bool) (*types.Receipt, error) {
	operatorAddr, err := parseAddress("operator", operator)
	if err != nil {
		return nil, err
	}
	return c.transactor.Transact(ctx, signer, c.config.Address, contracts.PotentialsABI, contracts.MethodSetApprovalForAll, operatorAddr, approved)
}
