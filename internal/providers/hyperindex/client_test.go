package hyperindex_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
	"github.com/degenerous-dao/potentials-staking/internal/mocks"
	"github.com/degenerous-dao/potentials-staking/internal/providers/hyperindex"
)

const (
	HYPERINDEX_URL = "https://indexer.hyperindex.xyz/abc123/v1/graphql"
	USER_ADDRESS   = "0x457ee5f723C7606c12a7264b52e285906F91eEA6"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

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

type testClientMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	clock      *mocks.MockClock
	client     hyperindex.Client
}

func setupTest(t *testing.T) *testClientMocks {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	clock := mocks.NewMockClock(ctrl)

	return &testClientMocks{
		ctrl:       ctrl,
		httpClient: httpClient,
		clock:      clock,
		client: hyperindex.NewClient(
			hyperindex.Config{Endpoint: HYPERINDEX_URL},
			httpClient,
			adapter.NewJSON(),
			clock,
		),
	}
}

// respond answers a Post with status 200 and body, recording the decoded request
func respond(t *testing.T, body string, captured *hyperindex.GraphQLRequest) func(context.Context, string, map[string]string, io.Reader) (*adapter.HTTPResponse, error) {
	return func(ctx context.Context, url string, headers map[string]string, reqBody io.Reader) (*adapter.HTTPResponse, error) {
		if captured != nil {
			raw, err := io.ReadAll(reqBody)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, captured))
		}
		return &adapter.HTTPResponse{StatusCode: 200, StatusText: "OK", Body: []byte(body)}, nil
	}
}

func TestClient_QueryGraphQL_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		statusText string
	}{
		{name: "bad gateway", statusCode: 502, statusText: "Bad Gateway"},
		{name: "unauthorized", statusCode: 401, statusText: "Unauthorized"},
		{name: "redirect", statusCode: 301, statusText: "Moved Permanently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			defer tm.ctrl.Finish()

			tm.httpClient.EXPECT().
				Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).
				Return(&adapter.HTTPResponse{StatusCode: tt.statusCode, StatusText: tt.statusText, Body: []byte("upstream")}, nil).
				Times(1)

			var out map[string]any
			err := tm.client.QueryGraphQL(context.Background(), `query GetGlobalStats { GlobalState { totalStakedNFTs } }`, nil, &out)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrGraphQLRequest)
			assert.Equal(t, "GraphQL request failed: "+tt.statusText, err.Error())

			var reqErr *domain.RequestError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tt.statusCode, reqErr.StatusCode)
			assert.Equal(t, "upstream", reqErr.Body)
			assert.Nil(t, out)
		})
	}
}

func TestClient_QueryGraphQL_ErrorsPayload(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedMessage string
		expectedCount   int
	}{
		{
			name:            "errors without data",
			body:            `{"errors":[{"message":"field \"User\" not found"}]}`,
			expectedMessage: `GraphQL errors: [{"message":"field \"User\" not found"}]`,
			expectedCount:   1,
		},
		{
			name:            "errors alongside partial data",
			body:            `{"data":{"GlobalState":[{"totalVotingPower":"10","totalStakedNFTs":1}]},"errors":[{"message":"a"},{"message":"b","extensions":{"code":"timeout"}}]}`,
			expectedMessage: `GraphQL errors: [{"message":"a"},{"message":"b","extensions":{"code":"timeout"}}]`,
			expectedCount:   2,
		},
		{
			name:            "empty errors array",
			body:            `{"data":{},"errors":[]}`,
			expectedMessage: `GraphQL errors: []`,
			expectedCount:   0,
		},
		{
			name:            "non-standard errors value",
			body:            `{"errors":"rate limited"}`,
			expectedMessage: `GraphQL errors: "rate limited"`,
			expectedCount:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			defer tm.ctrl.Finish()

			tm.httpClient.EXPECT().
				Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).
				DoAndReturn(respond(t, tt.body, nil))

			var out struct {
				GlobalState []domain.RawGlobalState `json:"GlobalState"`
			}
			err := tm.client.QueryGraphQL(context.Background(), `query GetGlobalStats { GlobalState { totalVotingPower totalStakedNFTs } }`, nil, &out)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrGraphQLResponse)
			assert.Equal(t, tt.expectedMessage, err.Error())

			var gqlErr *domain.GraphQLError
			require.True(t, errors.As(err, &gqlErr))
			assert.Len(t, gqlErr.Errors, tt.expectedCount)

			// no partial data
			assert.Nil(t, out.GlobalState)
		})
	}
}

func TestClient_QueryGraphQL_SendsOperationAndVariables(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	var captured hyperindex.GraphQLRequest
	tm.httpClient.EXPECT().
		Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).
		DoAndReturn(respond(t, `{"data":{"User":[]}}`, &captured))

	var out map[string]any
	err := tm.client.QueryGraphQL(context.Background(), `query Lookup($user: String!) { User(where: {id: {_eq: $user}}) { id } }`, map[string]any{"user": "0xabc"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Lookup", captured.OperationName)
	assert.Equal(t, map[string]any{"user": "0xabc"}, captured.Variables)
	assert.Equal(t, map[string]any{"User": []any{}}, out)
}

func TestClient_QueryGraphQL_MalformedQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "syntax error", query: `query { User(`},
		{name: "empty document", query: ``},
		{name: "two operations", query: `query A { x } query B { y }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no Post expectation: the request must not reach the network
			tm := setupTest(t)
			defer tm.ctrl.Finish()

			err := tm.client.QueryGraphQL(context.Background(), tt.query, nil, nil)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestClient_QueryGraphQL_TransportError(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	transportErr := errors.New("dial tcp: connection refused")
	tm.httpClient.EXPECT().Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).Return(nil, transportErr)

	err := tm.client.QueryGraphQL(context.Background(), `query GetGlobalStats { GlobalState { totalStakedNFTs } }`, nil, nil)

	assert.ErrorIs(t, err, transportErr)
}

func TestClient_GetUserStakingData_MissingRows(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no user row",
			body: `{"data":{"User":[],"StakedNFT":[],"GlobalState":[{"totalVotingPower":"1000","totalStakedNFTs":4}]}}`,
		},
		{
			name: "no global state row",
			body: `{"data":{"User":[{"totalVotingPower":"10","accumulatedPoints":"5","stakedNFTCount":1,"lastUpdateTime":"1700000000"}],"StakedNFT":[{"tokenId":"1","votingPower":"10","lockMonths":3,"stakedAt":"1700000000","unlockTime":"1707776000","isStaked":true}],"GlobalState":[]}}`,
		},
		{
			name: "neither row",
			body: `{"data":{"User":[],"StakedNFT":[],"GlobalState":[]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			defer tm.ctrl.Finish()

			tm.httpClient.EXPECT().
				Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).
				DoAndReturn(respond(t, tt.body, nil))

			data, err := tm.client.GetUserStakingData(context.Background(), USER_ADDRESS)

			require.NoError(t, err)
			assert.Equal(t, domain.EmptyUserStakingData(), data)
			assert.Equal(t, 0, data.TotalVotingPower.Sign())
			assert.Empty(t, data.StakedNFTs)
		})
	}
}

func TestClient_GetUserStakingData(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	lastUpdate := int64(1_700_000_000)
	now := time.Unix(lastUpdate+3600, 0)
	body := `{"data":{
		"User":[{"totalVotingPower":"250","accumulatedPoints":"1200.5","stakedNFTCount":2,"lastUpdateTime":"1700000000"}],
		"StakedNFT":[
			{"tokenId":"7","votingPower":"100","lockMonths":3,"stakedAt":"1699990000","unlockTime":"1707766000","isStaked":true},
			{"tokenId":"42","votingPower":"150","lockMonths":6,"stakedAt":"1699995000","unlockTime":"1715547000","isStaked":true}
		],
		"GlobalState":[{"totalVotingPower":"1000","totalStakedNFTs":9}]
	}}`

	var captured hyperindex.GraphQLRequest
	tm.httpClient.EXPECT().
		Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).
		DoAndReturn(respond(t, body, &captured))
	tm.clock.EXPECT().Now().Return(now)

	data, err := tm.client.GetUserStakingData(context.Background(), USER_ADDRESS)

	require.NoError(t, err)
	assert.Equal(t, "GetUserData", captured.OperationName)
	assert.Equal(t, map[string]any{"user": USER_ADDRESS}, captured.Variables)

	rate := domain.PointsRate(domain.DEFAULT_WEEKLY_POINTS)
	assert.Equal(t, big.NewInt(250), data.TotalVotingPower)
	assert.Equal(t, 2, data.StakedNFTCount)
	assert.Len(t, data.StakedNFTs, 2)
	assert.Equal(t, "42", data.StakedNFTs[1].TokenID)
	assert.InDelta(t, 1200.5, data.AccumulatedPoints, 1e-9)
	assert.InDelta(t, rate/4, data.PointsPerSecond, 1e-12)
	assert.InDelta(t, 1200.5+rate/4*3600, data.CurrentPoints, 1e-6)
	assert.Equal(t, lastUpdate, data.LastUpdateTime)
	assert.Equal(t, big.NewInt(1000), data.GlobalVotingPower)
}

func TestClient_GetUserStakingData_ClockBehindIndexer(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	body := `{"data":{
		"User":[{"totalVotingPower":"1","accumulatedPoints":null,"stakedNFTCount":1,"lastUpdateTime":"1700000000"}],
		"StakedNFT":[],
		"GlobalState":[{"totalVotingPower":"2","totalStakedNFTs":2}]
	}}`

	tm.httpClient.EXPECT().Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).DoAndReturn(respond(t, body, nil))
	tm.clock.EXPECT().Now().Return(time.Unix(1_699_999_000, 0))

	data, err := tm.client.GetUserStakingData(context.Background(), USER_ADDRESS)

	require.NoError(t, err)
	assert.Equal(t, 0.0, data.AccumulatedPoints)
	assert.Equal(t, 0.0, data.CurrentPoints)
	assert.Greater(t, data.PointsPerSecond, 0.0)
}

func TestClient_GetUserStakingData_WeeklyEmissionOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	client := hyperindex.NewClient(hyperindex.Config{Endpoint: HYPERINDEX_URL, WeeklyPoints: 604_800}, httpClient, adapter.NewJSON(), clock)

	body := `{"data":{
		"User":[{"totalVotingPower":"1","accumulatedPoints":"0","stakedNFTCount":1,"lastUpdateTime":"100"}],
		"StakedNFT":[],
		"GlobalState":[{"totalVotingPower":"1","totalStakedNFTs":1}]
	}}`
	httpClient.EXPECT().Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).DoAndReturn(respond(t, body, nil))
	clock.EXPECT().Now().Return(time.Unix(110, 0))

	data, err := client.GetUserStakingData(context.Background(), USER_ADDRESS)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, data.PointsPerSecond, 1e-12)
	assert.InDelta(t, 10.0, data.CurrentPoints, 1e-9)
}

func TestClient_GetUserStakingData_InvalidNumbers(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	body := `{"data":{
		"User":[{"totalVotingPower":"lots","accumulatedPoints":"0","stakedNFTCount":1,"lastUpdateTime":"100"}],
		"StakedNFT":[],
		"GlobalState":[{"totalVotingPower":"1","totalStakedNFTs":1}]
	}}`
	tm.httpClient.EXPECT().Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).DoAndReturn(respond(t, body, nil))

	_, err := tm.client.GetUserStakingData(context.Background(), USER_ADDRESS)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestClient_GetGlobalStats(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected *domain.GlobalStats
	}{
		{
			name:     "row present",
			body:     `{"data":{"GlobalState":[{"totalVotingPower":"123456789012345678901234567890","totalStakedNFTs":321}]}}`,
			expected: &domain.GlobalStats{TotalVotingPower: mustBig("123456789012345678901234567890"), TotalStakedNFTs: 321},
		},
		{
			name:     "empty voting power",
			body:     `{"data":{"GlobalState":[{"totalVotingPower":"","totalStakedNFTs":0}]}}`,
			expected: &domain.GlobalStats{TotalVotingPower: big.NewInt(0)},
		},
		{
			name:     "no row",
			body:     `{"data":{"GlobalState":[]}}`,
			expected: &domain.GlobalStats{TotalVotingPower: big.NewInt(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			defer tm.ctrl.Finish()

			var captured hyperindex.GraphQLRequest
			tm.httpClient.EXPECT().
				Post(gomock.Any(), HYPERINDEX_URL, jsonHeaders, gomock.Any()).
				DoAndReturn(respond(t, tt.body, &captured))

			stats, err := tm.client.GetGlobalStats(context.Background())

			require.NoError(t, err)
			assert.Equal(t, "GetGlobalStats", captured.OperationName)
			assert.Nil(t, captured.Variables)
			assert.Equal(t, 0, tt.expected.TotalVotingPower.Cmp(stats.TotalVotingPower))
			assert.Equal(t, tt.expected.TotalStakedNFTs, stats.TotalStakedNFTs)
		})
	}
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return n
}
