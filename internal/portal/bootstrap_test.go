package portal_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/config"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/mocks"
	"github.com/degenerous-dao/potentials-staking/internal/portal"
)

func portalConfig() config.PortalConfig {
	return config.PortalConfig{
		Chain: config.ChainConfig{
			RPCURL:            "https://sepolia.example.org/rpc",
			ChainID:           11155111,
			PotentialsAddress: "0x1111111111111111111111111111111111111111",
			StakingAddress:    STAKING_ADDRESS,
			MulticallAddress:  domain.MULTICALL3_ADDRESS,
		},
		Indexer: config.IndexerConfig{GraphQLEndpoint: "https://indexer.example.org/v1/graphql", HTTPTimeout: time.Second},
		Points:  config.PointsConfig{WeeklyEmission: domain.DEFAULT_WEEKLY_POINTS},
		Scan:    config.ScanConfig{TotalSupply: 1000, BatchSize: 100, BatchDelay: domain.DEFAULT_BATCH_DELAY},
		Transaction: config.TransactionConfig{
			PollInterval:   time.Second,
			ConfirmTimeout: time.Minute,
		},
		Cache: config.CacheConfig{TTL: time.Second},
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(dialer *mocks.MockEthClientDialer, client *mocks.MockEthClient)
		wantErr string
	}{
		{
			name: "serves the configured chain",
			setup: func(dialer *mocks.MockEthClientDialer, client *mocks.MockEthClient) {
				dialer.EXPECT().Dial(gomock.Any(), "https://sepolia.example.org/rpc").Return(client, nil)
				client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(11155111), nil)
			},
		},
		{
			name: "dial failure",
			setup: func(dialer *mocks.MockEthClientDialer, client *mocks.MockEthClient) {
				dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(nil, errors.New("no route to host"))
			},
			wantErr: "failed to dial RPC endpoint: no route to host",
		},
		{
			name: "wrong chain closes the client",
			setup: func(dialer *mocks.MockEthClientDialer, client *mocks.MockEthClient) {
				dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(client, nil)
				client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
				client.EXPECT().Close()
			},
			wantErr: "rpc serves chain 1, expected 11155111",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dialer := mocks.NewMockEthClientDialer(ctrl)
			client := mocks.NewMockEthClient(ctrl)
			tt.setup(dialer, client)

			cfg := portalConfig()
			deps := portal.DefaultDependencies(cfg)
			deps.Dialer = dialer

			svc, ethClient, err := portal.Open(context.Background(), cfg, deps)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, svc)
				assert.Nil(t, ethClient)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, svc)
			assert.Equal(t, adapter.EthClient(client), ethClient)
			assert.Equal(t, "0x2222222222222222222222222222222222222222", svc.Settings().StakingAddress)
		})
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := portalConfig()
	cfg.Chain.PotentialsAddress = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	cfg.Chain.MulticallAddress = strings.ToLower(domain.MULTICALL3_ADDRESS)

	settings := portal.SettingsFromConfig(cfg)
	assert.Equal(t, int64(11155111), settings.ChainID)
	assert.Equal(t, string(domain.ChainEthereumSepolia), settings.Chain)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", settings.PotentialsAddress)
	assert.Equal(t, domain.MULTICALL3_ADDRESS, settings.MulticallAddress)
	assert.Equal(t, "https://indexer.example.org/v1/graphql", settings.GraphQLEndpoint)
	assert.Equal(t, 1000, settings.TotalSupply)
	assert.Equal(t, 100, settings.BatchSize)
}
