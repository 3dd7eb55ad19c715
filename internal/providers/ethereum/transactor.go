package ethereum

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
)

// Signer authorizes state-changing calls on behalf of one account
//
//go:generate mockgen -source=transactor.go -destination=../../mocks/transactor.go -package=mocks -mock_names=Signer=MockSigner,Transactor=MockTransactor
type Signer interface {
	// Address returns the sending account
	Address() common.Address

	// TransactOpts returns fresh transaction options bound to ctx
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

// Transactor sends contract transactions and waits until they are mined
type Transactor interface {
	// Transact calls method on contract and blocks until the receipt is available.
	// A mined transaction with a failed status returns domain.ErrTransactionReverted.
	Transact(ctx context.Context, signer Signer, contract common.Address, parsed abi.ABI, method string, args ...any) (*types.Receipt, error)
}

// TransactorConfig controls receipt polling
type TransactorConfig struct {
	// PollInterval is the delay between receipt lookups
	PollInterval time.Duration

	// ConfirmTimeout bounds the wait for a receipt, 0 waits until ctx is done
	ConfirmTimeout time.Duration
}

type transactor struct {
	client adapter.EthClient
	config TransactorConfig
}

// NewTransactor creates a Transactor backed by client
func NewTransactor(client adapter.EthClient, config TransactorConfig) Transactor {
	if config.PollInterval <= 0 {
		config.PollInterval = 2 * time.Second
	}
	return &transactor{client: client, config: config}
}

func (t *transactor) Transact(ctx context.Context, signer Signer, contract common.Address, parsed abi.ABI, method string, args ...any) (*types.Receipt, error) {
	if signer == nil {
		return nil, domain.ErrWalletNotConnected
	}

	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get transact opts: %w", err)
	}
	opts.Context = ctx

	bound := bind.NewBoundContract(contract, parsed, t.client, t.client, t.client)
	tx, err := bound.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", method, err)
	}

	logger.InfoCtx(ctx, "Transaction sent",
		zap.String("method", method),
		zap.String("contract", contract.Hex()),
		zap.String("from", signer.Address().Hex()),
		zap.String("tx_hash", tx.Hash().Hex()))

	receipt, err := t.waitMined(ctx, tx)
	if err != nil {
		return nil, err
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, fmt.Errorf("%w: %s %s", domain.ErrTransactionReverted, method, tx.Hash().Hex())
	}

	logger.InfoCtx(ctx, "Transaction mined",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Stringer("block_number", receipt.BlockNumber),
		zap.Uint64("gas_used", receipt.GasUsed))

	return receipt, nil
}

// waitMined polls for the receipt of tx at a constant interval until it appears or ctx ends.
// Only a not-found receipt is retried, any other RPC error ends the wait.
func (t *transactor) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if t.config.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.ConfirmTimeout)
		defer cancel()
	}

	var receipt *types.Receipt
	operation := func() error {
		r, err := t.client.TransactionReceipt(ctx, tx.Hash())
		if errors.Is(err, ethereum.NotFound) {
			logger.DebugCtx(ctx, "Receipt not available yet", zap.String("tx_hash", tx.Hash().Hex()))
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(t.config.PollInterval), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", tx.Hash().Hex(), err)
	}

	return receipt, nil
}
