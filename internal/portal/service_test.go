package portal_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degenerous-dao/potentials-staking/internal/cache"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
	"github.com/degenerous-dao/potentials-staking/internal/mocks"
	"github.com/degenerous-dao/potentials-staking/internal/portal"
	"github.com/degenerous-dao/potentials-staking/internal/wallet"
)

const (
	USER_ADDRESS    = "0x457ee5f723C7606c12a7264b52e285906F91eEA6"
	STAKING_ADDRESS = "0x2222222222222222222222222222222222222222"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testServiceMocks struct {
	ctrl       *gomock.Controller
	potentials *mocks.MockPotentialsClient
	staking    *mocks.MockStakingClient
	indexer    *mocks.MockHyperIndexClient
	clock      *mocks.MockClock
	now        time.Time
	service    portal.Service
}

func setupTest(t *testing.T) *testServiceMocks {
	ctrl := gomock.NewController(t)
	tm := &testServiceMocks{
		ctrl:       ctrl,
		potentials: mocks.NewMockPotentialsClient(ctrl),
		staking:    mocks.NewMockStakingClient(ctrl),
		indexer:    mocks.NewMockHyperIndexClient(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		now:        time.Unix(1_700_000_000, 0),
	}

	tm.clock.EXPECT().Now().DoAndReturn(func() time.Time { return tm.now }).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).DoAndReturn(func(t time.Time) time.Duration { return tm.now.Sub(t) }).AnyTimes()
	tm.staking.EXPECT().Address().Return(common.HexToAddress(STAKING_ADDRESS)).AnyTimes()

	tm.service = portal.NewService(portal.Config{
		Settings: portal.Settings{ChainID: 11155111, TotalSupply: 1000, BatchSize: 100},
		Cache:    cache.Config{TTL: time.Minute},
	}, tm.potentials, tm.staking, tm.indexer, tm.clock)

	return tm
}

func (tm *testServiceMocks) signer(address string) *mocks.MockSigner {
	signer := mocks.NewMockSigner(tm.ctrl)
	signer.EXPECT().Address().Return(common.HexToAddress(address)).AnyTimes()
	return signer
}

func userData() *domain.UserStakingData {
	return &domain.UserStakingData{
		StakedNFTs: []domain.RawStakedNFT{
			{TokenID: "7", VotingPower: "1500", LockMonths: 3, StakedAt: "1699990000", UnlockTime: "1707766000", IsStaked: true},
			{TokenID: "42", VotingPower: "1000", LockMonths: 1, StakedAt: "1699000000", UnlockTime: "1701592000", IsStaked: true},
		},
		TotalVotingPower:  big.NewInt(2500),
		GlobalVotingPower: big.NewInt(10000),
		AccumulatedPoints: 10,
		LastUpdateTime:    1_699_999_000,
		CurrentPoints:     12,
		PointsPerSecond:   0.5,
		StakedNFTCount:    2,
	}
}

func receipt(status uint64) *types.Receipt {
	return &types.Receipt{
		Status:      status,
		TxHash:      common.HexToHash("0xabc"),
		BlockNumber: big.NewInt(100),
		GasUsed:     84_000,
	}
}

func TestService_GetUserStaking(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()

	tm.indexer.EXPECT().
		GetUserStakingData(gomock.Any(), USER_ADDRESS).
		Return(userData(), nil).
		Times(1)

	result, err := tm.service.GetUserStaking(ctx, USER_ADDRESS)
	require.NoError(t, err)
	require.Len(t, result.Tokens, 2)
	assert.Equal(t, uint64(7), result.Tokens[0].TokenID)
	assert.Equal(t, big.NewInt(1500), result.Tokens[0].VotingPower)
	assert.Equal(t, 3, result.Tokens[0].LockMonths)
	assert.Equal(t, time.Unix(1699990000, 0).UTC(), result.Tokens[0].StakedAt)
	assert.False(t, result.Tokens[0].Selected)
	assert.Equal(t, uint64(42), result.Tokens[1].TokenID)
	assert.Equal(t, big.NewInt(2500), result.TotalVotingPower)

	// a quarter of the network voting power, 1000s after the indexer snapshot
	pps := domain.PointsRate(domain.DEFAULT_WEEKLY_POINTS) / 4
	assert.InDelta(t, pps, result.PointsPerSecond, 1e-12)
	assert.InDelta(t, 10+pps*1000, result.CurrentPoints, 1e-6)

	// within TTL the indexer is not asked again but points keep accruing
	tm.now = tm.now.Add(30 * time.Second)
	again, err := tm.service.GetUserStaking(ctx, USER_ADDRESS)
	require.NoError(t, err)
	assert.Equal(t, result.Tokens, again.Tokens)
	assert.InDelta(t, 10+pps*1030, again.CurrentPoints, 1e-6)
	assert.InDelta(t, pps*30, again.CurrentPoints-result.CurrentPoints, 1e-6)

	// the first result is not changed by the later read
	assert.InDelta(t, 10+pps*1000, result.CurrentPoints, 1e-6)
}

func TestService_GetUserStaking_Errors(t *testing.T) {
	tests := []struct {
		name    string
		address string
		setup   func(tm *testServiceMocks)
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid address never reaches the indexer",
			address: "alice",
			setup:   func(tm *testServiceMocks) {},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "indexer failure",
			address: USER_ADDRESS,
			setup: func(tm *testServiceMocks) {
				tm.indexer.EXPECT().
					GetUserStakingData(gomock.Any(), USER_ADDRESS).
					Return(nil, &domain.RequestError{StatusCode: 502, StatusText: "Bad Gateway"})
			},
			wantErr: domain.ErrGraphQLRequest,
			wantMsg: "Bad Gateway",
		},
		{
			name:    "malformed token row",
			address: USER_ADDRESS,
			setup: func(tm *testServiceMocks) {
				data := userData()
				data.StakedNFTs[1].TokenID = "forty-two"
				tm.indexer.EXPECT().GetUserStakingData(gomock.Any(), USER_ADDRESS).Return(data, nil)
			},
			wantErr: domain.ErrInvalidArgument,
			wantMsg: "failed to map staked tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			tt.setup(tm)

			result, err := tm.service.GetUserStaking(context.Background(), tt.address)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestService_GetOwnedTokens(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()

	tm.potentials.EXPECT().
		GetOwnedTokenSet(gomock.Any(), USER_ADDRESS, 300, 50).
		Return(domain.NewOwnedTokenSet([]uint64{3, 150, 299}), nil).
		Times(1)
	tm.potentials.EXPECT().
		GetOwnedTokenSet(gomock.Any(), USER_ADDRESS, 300, 100).
		Return(domain.NewOwnedTokenSet([]uint64{3, 150, 299}), nil).
		Times(1)

	set, err := tm.service.GetOwnedTokens(ctx, USER_ADDRESS, 300, 50)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 150, 299}, set.IDs)

	// cached per scan shape
	_, err = tm.service.GetOwnedTokens(ctx, USER_ADDRESS, 300, 50)
	require.NoError(t, err)
	_, err = tm.service.GetOwnedTokens(ctx, USER_ADDRESS, 300, 100)
	require.NoError(t, err)
}

func TestService_GetOwnedTokens_InvalidAddress(t *testing.T) {
	tm := setupTest(t)

	_, err := tm.service.GetOwnedTokens(context.Background(), "0x1234", 10, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestService_IsApproved(t *testing.T) {
	tm := setupTest(t)

	tm.potentials.EXPECT().
		IsApprovedForAll(gomock.Any(), USER_ADDRESS, common.HexToAddress(STAKING_ADDRESS).Hex()).
		Return(true, nil).
		Times(1)

	approved, err := tm.service.IsApproved(context.Background(), USER_ADDRESS)
	require.NoError(t, err)
	assert.True(t, approved)

	approved, err = tm.service.IsApproved(context.Background(), USER_ADDRESS)
	require.NoError(t, err)
	assert.True(t, approved)
}

func TestService_IsStakingPausedAndStakeInfo(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()
	info := &domain.StakeInfo{TokenID: 7, LockMonths: 3, Owner: USER_ADDRESS}

	tm.staking.EXPECT().IsPaused(gomock.Any()).Return(false, nil).Times(1)
	tm.staking.EXPECT().GetStakeInfo(gomock.Any(), uint64(7)).Return(info, nil).Times(1)

	for range 2 {
		paused, err := tm.service.IsStakingPaused(ctx)
		require.NoError(t, err)
		assert.False(t, paused)

		got, err := tm.service.GetStakeInfo(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, info, got)
	}
}

func TestService_GetTokenOwner(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()

	gomock.InOrder(
		tm.potentials.EXPECT().OwnerOf(gomock.Any(), uint64(7)).Return(USER_ADDRESS, nil),
		tm.potentials.EXPECT().OwnerOf(gomock.Any(), uint64(7)).Return(STAKING_ADDRESS, nil),
	)

	for range 2 {
		owner, err := tm.service.GetTokenOwner(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, USER_ADDRESS, owner)
	}

	// staking token 7 moves it to the staking contract
	signer := tm.signer(USER_ADDRESS)
	tm.staking.EXPECT().
		StakeTokens(gomock.Any(), signer, []uint64{7}, []uint8{1}).
		Return(receipt(types.ReceiptStatusSuccessful), nil)
	_, err := tm.service.Stake(ctx, signer, []uint64{7}, []uint8{1})
	require.NoError(t, err)

	owner, err := tm.service.GetTokenOwner(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, STAKING_ADDRESS, owner)
}

func TestService_GetGlobalStats_ErrorAfterTTL(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()
	stats := &domain.GlobalStats{TotalVotingPower: big.NewInt(99), TotalStakedNFTs: 4}
	indexerErr := errors.New("connection refused")

	gomock.InOrder(
		tm.indexer.EXPECT().GetGlobalStats(gomock.Any()).Return(stats, nil),
		tm.indexer.EXPECT().GetGlobalStats(gomock.Any()).Return(nil, indexerErr),
		tm.indexer.EXPECT().GetGlobalStats(gomock.Any()).Return(stats, nil),
	)

	got, err := tm.service.GetGlobalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	// the expired snapshot is not served when the refetch fails
	tm.now = tm.now.Add(2 * time.Minute)
	got, err = tm.service.GetGlobalStats(ctx)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, indexerErr)

	// a failed refetch is not cached either
	got, err = tm.service.GetGlobalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestService_StakeInvalidatesUserReads(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()
	// prime with a lower-case spelling, the signer reports the checksummed one
	lower := "0x457ee5f723c7606c12a7264b52e285906f91eea6"

	tm.indexer.EXPECT().GetUserStakingData(gomock.Any(), lower).Return(userData(), nil).Times(2)
	tm.staking.EXPECT().GetStakeInfo(gomock.Any(), uint64(7)).Return(&domain.StakeInfo{TokenID: 7}, nil).Times(2)
	tm.staking.EXPECT().GetStakeInfo(gomock.Any(), uint64(8)).Return(&domain.StakeInfo{TokenID: 8}, nil).Times(1)
	tm.indexer.EXPECT().GetGlobalStats(gomock.Any()).Return(&domain.GlobalStats{TotalVotingPower: big.NewInt(1)}, nil).Times(2)

	_, err := tm.service.GetUserStaking(ctx, lower)
	require.NoError(t, err)
	_, err = tm.service.GetStakeInfo(ctx, 7)
	require.NoError(t, err)
	_, err = tm.service.GetStakeInfo(ctx, 8)
	require.NoError(t, err)
	_, err = tm.service.GetGlobalStats(ctx)
	require.NoError(t, err)

	signer := tm.signer(USER_ADDRESS)
	tm.staking.EXPECT().
		StakeTokens(gomock.Any(), signer, []uint64{7}, []uint8{3}).
		Return(receipt(types.ReceiptStatusSuccessful), nil)

	rcpt, err := tm.service.Stake(ctx, signer, []uint64{7}, []uint8{3})
	require.NoError(t, err)
	assert.Equal(t, uint64(84_000), rcpt.GasUsed)

	_, err = tm.service.GetUserStaking(ctx, lower)
	require.NoError(t, err)
	_, err = tm.service.GetStakeInfo(ctx, 7)
	require.NoError(t, err)
	// token 8 was not part of the write
	_, err = tm.service.GetStakeInfo(ctx, 8)
	require.NoError(t, err)
	_, err = tm.service.GetGlobalStats(ctx)
	require.NoError(t, err)
}

func TestService_WriteFailures(t *testing.T) {
	tests := []struct {
		name          string
		run           func(tm *testServiceMocks, signer *mocks.MockSigner) (*types.Receipt, error)
		wantErr       error
		wantReceipt   bool
		wantRefetched bool
	}{
		{
			name: "empty stake is rejected without invalidation",
			run: func(tm *testServiceMocks, signer *mocks.MockSigner) (*types.Receipt, error) {
				tm.staking.EXPECT().StakeTokens(gomock.Any(), signer, nil, nil).Return(nil, domain.ErrNoTokensSelected)
				return tm.service.Stake(context.Background(), signer, nil, nil)
			},
			wantErr: domain.ErrNoTokensSelected,
		},
		{
			name: "mismatched stake is rejected without invalidation",
			run: func(tm *testServiceMocks, signer *mocks.MockSigner) (*types.Receipt, error) {
				tm.staking.EXPECT().StakeTokens(gomock.Any(), signer, []uint64{1, 2}, []uint8{1}).Return(nil, fmt.Errorf("%w: 2 token ids, 1 lock months", domain.ErrLengthMismatch))
				return tm.service.Stake(context.Background(), signer, []uint64{1, 2}, []uint8{1})
			},
			wantErr: domain.ErrLengthMismatch,
		},
		{
			name: "reverted unstake still invalidates",
			run: func(tm *testServiceMocks, signer *mocks.MockSigner) (*types.Receipt, error) {
				tm.staking.EXPECT().UnstakeTokens(gomock.Any(), signer, []uint64{7}).Return(receipt(types.ReceiptStatusFailed), domain.ErrTransactionReverted)
				return tm.service.Unstake(context.Background(), signer, []uint64{7})
			},
			wantErr:       domain.ErrTransactionReverted,
			wantReceipt:   true,
			wantRefetched: true,
		},
		{
			name: "failed approval invalidates",
			run: func(tm *testServiceMocks, signer *mocks.MockSigner) (*types.Receipt, error) {
				tm.potentials.EXPECT().SetApprovalForAll(gomock.Any(), signer, common.HexToAddress(STAKING_ADDRESS).Hex(), true).Return(nil, errors.New("insufficient funds"))
				return tm.service.Approve(context.Background(), signer, true)
			},
			wantErr:       errors.New("insufficient funds"),
			wantRefetched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			ctx := context.Background()

			fetches := 1
			if tt.wantRefetched {
				fetches = 2
			}
			tm.indexer.EXPECT().GetUserStakingData(gomock.Any(), USER_ADDRESS).Return(userData(), nil).Times(fetches)
			_, err := tm.service.GetUserStaking(ctx, USER_ADDRESS)
			require.NoError(t, err)

			rcpt, err := tt.run(tm, tm.signer(USER_ADDRESS))
			require.Error(t, err)
			if errors.Is(tt.wantErr, domain.ErrNoTokensSelected) || errors.Is(tt.wantErr, domain.ErrLengthMismatch) || errors.Is(tt.wantErr, domain.ErrTransactionReverted) {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
			assert.Equal(t, tt.wantReceipt, rcpt != nil)

			_, err = tm.service.GetUserStaking(ctx, USER_ADDRESS)
			require.NoError(t, err)
		})
	}
}

func TestService_WritesRequireSigner(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()

	_, err := tm.service.Approve(ctx, nil, true)
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	_, err = tm.service.Stake(ctx, nil, []uint64{1}, []uint8{1})
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	_, err = tm.service.Unstake(ctx, nil, []uint64{1})
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
}

func TestService_BindSession(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()
	session := wallet.NewSession()

	tm.indexer.EXPECT().GetGlobalStats(gomock.Any()).Return(&domain.GlobalStats{TotalVotingPower: big.NewInt(1)}, nil).Times(2)

	unbind := tm.service.BindSession(session)

	_, err := tm.service.GetGlobalStats(ctx)
	require.NoError(t, err)

	// a reset drops every cached read
	session.Disconnect()
	_, err = tm.service.GetGlobalStats(ctx)
	require.NoError(t, err)

	// once unbound, session events leave the cache alone
	unbind()
	session.Disconnect()
	_, err = tm.service.GetGlobalStats(ctx)
	require.NoError(t, err)
}
