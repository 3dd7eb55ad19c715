package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
)

// callView packs method with args, executes an eth_call against contract at the latest block
// and returns the unpacked outputs
func callView(ctx context.Context, client adapter.EthClient, contract common.Address, parsed abi.ABI, method string, args ...any) ([]any, error) {
	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	result, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	values, err := parsed.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("empty result for %s", method)
	}

	return values, nil
}

// parseAddress validates a hex address argument
func parseAddress(name, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s is not a valid address: %q", domain.ErrInvalidArgument, name, value)
	}
	return common.HexToAddress(value), nil
}

func toBigInts(ids []uint64) []*big.Int {
	out := make([]*big.Int, len(ids))
	for i, id := range ids {
		out[i] = new(big.Int).SetUint64(id)
	}
	return out
}

// VerifyChainID checks that the node behind client serves the expected chain
func VerifyChainID(ctx context.Context, client adapter.EthClient, expected domain.Chain) error {
	actual, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain id: %w", err)
	}
	if actual.Int64() != expected.ID() {
		return fmt.Errorf("rpc serves chain %s, expected %d", actual.String(), expected.ID())
	}
	return nil
}
