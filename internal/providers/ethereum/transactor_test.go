package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degenerous-dao/potentials-staking/internal/contracts"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/mocks"
	ethprovider "github.com/degenerous-dao/potentials-staking/internal/providers/ethereum"
)

func setupTransactorTest(t *testing.T, config ethprovider.TransactorConfig) (*gomock.Controller, *mocks.MockEthClient, ethprovider.Transactor) {
	ctrl := gomock.NewController(t)
	ethClient := mocks.NewMockEthClient(ctrl)
	return ctrl, ethClient, ethprovider.NewTransactor(ethClient, config)
}

func TestTransactor_Transact_WaitsForReceipt(t *testing.T) {
	ctrl, ethClient, transactor := setupTransactorTest(t, ethprovider.TransactorConfig{PollInterval: time.Millisecond})
	defer ctrl.Finish()

	ctx := context.Background()
	signer := newTestSigner(t, true)

	var sent *types.Transaction
	ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, tx *types.Transaction) error {
		sent = tx
		return nil
	})
	gomock.InOrder(
		ethClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, ethereum.NotFound).Times(2),
		ethClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: hash, BlockNumber: big.NewInt(100)}, nil
		}),
	)

	receipt, err := transactor.Transact(ctx, signer, stakingAddr, contracts.StakingABI, contracts.MethodStake,
		[]*big.Int{big.NewInt(1), big.NewInt(2)}, []uint8{3, 6})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash(), receipt.TxHash)
	assert.Equal(t, stakingAddr, *sent.To())
	assert.Equal(t, contracts.StakingABI.Methods[contracts.MethodStake].ID, sent.Data()[:4])

	from, err := types.Sender(types.LatestSignerForChainID(signer.chainID), sent)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), from)
}

func TestTransactor_Transact_DynamicFee(t *testing.T) {
	ctrl, ethClient, transactor := setupTransactorTest(t, ethprovider.TransactorConfig{PollInterval: time.Millisecond})
	defer ctrl.Finish()

	signer := newTestSigner(t, false)

	ethClient.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{BaseFee: big.NewInt(10_000_000_000)}, nil).AnyTimes()
	ethClient.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(1_000_000_000), nil).AnyTimes()
	ethClient.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(11_000_000_000), nil).AnyTimes()
	ethClient.EXPECT().PendingCodeAt(gomock.Any(), stakingAddr).Return([]byte{0x60, 0x80}, nil).AnyTimes()
	ethClient.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(90_000), nil).AnyTimes()
	ethClient.EXPECT().PendingNonceAt(gomock.Any(), signer.Address()).Return(uint64(4), nil).AnyTimes()

	var sent *types.Transaction
	ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, tx *types.Transaction) error {
		sent = tx
		return nil
	})
	ethClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil)

	_, err := transactor.Transact(context.Background(), signer, stakingAddr, contracts.StakingABI, contracts.MethodUnstake, []*big.Int{big.NewInt(9)})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, uint64(4), sent.Nonce())
	assert.Equal(t, uint64(90_000), sent.Gas())
	assert.Equal(t, contracts.StakingABI.Methods[contracts.MethodUnstake].ID, sent.Data()[:4])
}

func TestTransactor_Transact_Reverted(t *testing.T) {
	ctrl, ethClient, transactor := setupTransactorTest(t, ethprovider.TransactorConfig{PollInterval: time.Millisecond})
	defer ctrl.Finish()

	ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	ethClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(1)}, nil)

	receipt, err := transactor.Transact(context.Background(), newTestSigner(t, true), potentialsAddr, contracts.PotentialsABI,
		contracts.MethodSetApprovalForAll, stakingAddr, true)

	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusFailed, receipt.Status)
}

func TestTransactor_Transact_ConfirmTimeout(t *testing.T) {
	ctrl, ethClient, transactor := setupTransactorTest(t, ethprovider.TransactorConfig{
		PollInterval:   time.Millisecond,
		ConfirmTimeout: 20 * time.Millisecond,
	})
	defer ctrl.Finish()

	ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	ethClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, ethereum.NotFound).AnyTimes()

	_, err := transactor.Transact(context.Background(), newTestSigner(t, true), stakingAddr, contracts.StakingABI,
		contracts.MethodUnstake, []*big.Int{big.NewInt(1)})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTransactor_Transact_ReceiptRPCError(t *testing.T) {
	tests := []struct {
		name       string
		notFounds  int
		receiptErr error
	}{
		{
			name:       "fails on first lookup",
			receiptErr: errors.New("429 Too Many Requests"),
		},
		{
			name:       "fails after the receipt was pending",
			notFounds:  2,
			receiptErr: errors.New("connection reset by peer"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, ethClient, transactor := setupTransactorTest(t, ethprovider.TransactorConfig{
				PollInterval:   time.Millisecond,
				ConfirmTimeout: time.Minute,
			})
			defer ctrl.Finish()

			ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
			gomock.InOrder(
				ethClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, ethereum.NotFound).Times(tt.notFounds),
				ethClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, tt.receiptErr).Times(1),
			)

			receipt, err := transactor.Transact(context.Background(), newTestSigner(t, true), stakingAddr, contracts.StakingABI,
				contracts.MethodUnstake, []*big.Int{big.NewInt(1)})

			assert.Nil(t, receipt)
			assert.ErrorIs(t, err, tt.receiptErr)
			assert.NotErrorIs(t, err, context.DeadlineExceeded)
		})
	}
}

func TestTransactor_Transact_NoSigner(t *testing.T) {
	ctrl, _, transactor := setupTransactorTest(t, ethprovider.TransactorConfig{})
	defer ctrl.Finish()

	_, err := transactor.Transact(context.Background(), nil, stakingAddr, contracts.StakingABI, contracts.MethodUnstake, []*big.Int{big.NewInt(1)})

	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
}

func TestVerifyChainID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ethClient := mocks.NewMockEthClient(ctrl)

	ethClient.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(11155111), nil).Times(2)

	assert.NoError(t, ethprovider.VerifyChainID(context.Background(), ethClient, domain.ChainEthereumSepolia))
	assert.Error(t, ethprovider.VerifyChainID(context.Background(), ethClient, domain.ChainEthereumMainnet))
}
