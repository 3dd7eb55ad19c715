package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/contracts"
)

// Call3 is one sub-call of a Multicall3 aggregate3 batch
type Call3 struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

// Result3 is the outcome of one aggregate3 sub-call
type Result3 struct {
	Success    bool
	ReturnData []byte
}

// Multicaller batches read calls into a single eth_call
//
//go:generate mockgen -source=multicall.go -destination=../../mocks/multicaller.go -package=mocks -mock_names=Multicaller=MockMulticaller
type Multicaller interface {
	// Aggregate3 executes calls in one request. Results are index aligned with calls.
	Aggregate3(ctx context.Context, calls []Call3) ([]Result3, error)
}

type multicaller struct {
	client  adapter.EthClient
	address common.Address
}

// NewMulticaller creates a Multicaller bound to the Multicall3 deployment at address
func NewMulticaller(client adapter.EthClient, address common.Address) Multicaller {
	return &multicaller{client: client, address: address}
}

func (m *multicaller) Aggregate3(ctx context.Context, calls []Call3) ([]Result3, error) {
	if len(calls) == 0 {
		return []Result3{}, nil
	}

	data, err := contracts.Multicall3ABI.Pack(contracts.MethodAggregate3, calls)
	if err != nil {
		return nil, fmt.Errorf("failed to pack aggregate3: %w", err)
	}

	out, err := m.client.CallContract(ctx, ethereum.CallMsg{
		To:   &m.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call multicall: %w", err)
	}

	values, err := contracts.Multicall3ABI.Unpack(contracts.MethodAggregate3, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack aggregate3: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected aggregate3 output count: %d", len(values))
	}

	results := *abi.ConvertType(values[0], new([]Result3)).(*[]Result3)
	if len(results) != len(calls) {
		return nil, fmt.Errorf("aggregate3 returned %d results for %d calls", len(results), len(calls))
	}

	return results, nil
}
