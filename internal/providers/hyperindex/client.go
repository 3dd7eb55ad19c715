package hyperindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
)

const (
	getUserDataQuery = `query GetUserData($user: String!) {
  User(where: { id: { _eq: $user } }) {
    totalVotingPower
    accumulatedPoints
    stakedNFTCount
    lastUpdateTime
  }
  StakedNFT(where: { user: { _eq: $user } }) {
    tokenId
    votingPower
    lockMonths
    stakedAt
    unlockTime
    isStaked
  }
  GlobalState {
    totalVotingPower
    totalStakedNFTs
  }
}`

	getGlobalStatsQuery = `query GetGlobalStats {
  GlobalState {
    totalVotingPower
    totalStakedNFTs
  }
}`
)

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

// GraphQLResponse represents a GraphQL response before data is decoded
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

type userDataResult struct {
	User        []domain.RawUser        `json:"User"`
	StakedNFT   []domain.RawStakedNFT   `json:"StakedNFT"`
	GlobalState []domain.RawGlobalState `json:"GlobalState"`
}

type globalStatsResult struct {
	GlobalState []domain.RawGlobalState `json:"GlobalState"`
}

// Client defines the interface for HyperIndex client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/hyperindex_client.go -package=mocks -mock_names=Client=MockHyperIndexClient
type Client interface {
	// QueryGraphQL posts query with variables and decodes the data field into out
	QueryGraphQL(ctx context.Context, query string, variables map[string]any, out any) error

	// GetUserStakingData returns the staking snapshot of user with points extrapolated to now
	GetUserStakingData(ctx context.Context, user string) (*domain.UserStakingData, error)

	// GetGlobalStats returns the network-wide staking totals
	GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error)
}

// Config holds HyperIndex client settings
type Config struct {
	Endpoint string

	// WeeklyPoints is the network-wide weekly emission used for accrual, 0 uses the default
	WeeklyPoints float64
}

// HyperIndexClient implements Client against an HyperIndex GraphQL endpoint
type HyperIndexClient struct {
	config     Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
	clock      adapter.Clock
}

// NewClient creates a new HyperIndex client
func NewClient(config Config, httpClient adapter.HTTPClient, json adapter.JSON, clock adapter.Clock) Client {
	return &HyperIndexClient{
		config:     config,
		httpClient: httpClient,
		json:       json,
		clock:      clock,
	}
}

// QueryGraphQL sends a single POST request. There are no retries.
func (c *HyperIndexClient) QueryGraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	operationName, err := parseOperationName(query)
	if err != nil {
		return err
	}

	requestBody, err := c.json.Marshal(GraphQLRequest{
		Query:         query,
		Variables:     variables,
		OperationName: operationName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	resp, err := c.httpClient.Post(ctx, c.config.Endpoint, headers, bytes.NewReader(requestBody))
	if err != nil {
		return fmt.Errorf("failed to call HyperIndex GraphQL API: %w", err)
	}

	if !resp.OK() {
		logger.WarnCtx(ctx, "GraphQL request failed",
			zap.String("operation", operationName),
			zap.Int("status", resp.StatusCode))
		return &domain.RequestError{
			StatusCode: resp.StatusCode,
			StatusText: resp.StatusText,
			Body:       string(resp.Body),
		}
	}

	var response GraphQLResponse
	if err := c.json.Unmarshal(resp.Body, &response); err != nil {
		return fmt.Errorf("failed to unmarshal GraphQL response: %w", err)
	}

	if hasValue(response.Errors) {
		return c.graphQLError(response.Errors)
	}

	if out == nil || !hasValue(response.Data) {
		return nil
	}
	if err := c.json.Unmarshal(response.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal GraphQL data: %w", err)
	}

	return nil
}

func (c *HyperIndexClient) graphQLError(raw json.RawMessage) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		compact.Reset()
		compact.Write(raw)
	}

	var list gqlerror.List
	if err := c.json.Unmarshal(raw, &list); err != nil {
		// non-standard errors payloads still surface their serialized form
		list = gqlerror.List{gqlerror.Errorf("%s", compact.String())}
	}

	return &domain.GraphQLError{
		Errors: list,
		Raw:    compact.String(),
	}
}

// GetUserStakingData runs GetUserData and extrapolates points to the current time.
// A missing User or GlobalState row yields the zero snapshot.
func (c *HyperIndexClient) GetUserStakingData(ctx context.Context, user string) (*domain.UserStakingData, error) {
	var result userDataResult
	if err := c.QueryGraphQL(ctx, getUserDataQuery, map[string]any{"user": user}, &result); err != nil {
		return nil, err
	}

	if len(result.User) == 0 || len(result.GlobalState) == 0 {
		logger.DebugCtx(ctx, "No indexer rows for user", zap.String("user", user))
		return domain.EmptyUserStakingData(), nil
	}

	row := result.User[0]
	globalState := result.GlobalState[0]

	userVP, err := domain.ParseBigInt(row.TotalVotingPower)
	if err != nil {
		return nil, fmt.Errorf("user total voting power: %w", err)
	}
	globalVP, err := domain.ParseBigInt(globalState.TotalVotingPower)
	if err != nil {
		return nil, fmt.Errorf("global total voting power: %w", err)
	}
	lastUpdate, err := domain.ParseUnixSeconds(row.LastUpdateTime)
	if err != nil {
		return nil, fmt.Errorf("user last update time: %w", err)
	}
	accumulated, err := domain.ParseFloat(row.AccumulatedPoints)
	if err != nil {
		return nil, fmt.Errorf("user accumulated points: %w", err)
	}

	stakedNFTs := result.StakedNFT
	if stakedNFTs == nil {
		stakedNFTs = []domain.RawStakedNFT{}
	}

	data := &domain.UserStakingData{
		StakedNFTs:        stakedNFTs,
		TotalVotingPower:  userVP,
		GlobalVotingPower: globalVP,
		AccumulatedPoints: accumulated,
		LastUpdateTime:    lastUpdate,
		StakedNFTCount:    row.StakedNFTCount,
	}
	return data.AccrueAt(c.clock.Now(), domain.PointsRate(c.config.WeeklyPoints)), nil
}

// GetGlobalStats runs GetGlobalStats; no row yields zero totals
func (c *HyperIndexClient) GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	var result globalStatsResult
	if err := c.QueryGraphQL(ctx, getGlobalStatsQuery, nil, &result); err != nil {
		return nil, err
	}

	if len(result.GlobalState) == 0 {
		return &domain.GlobalStats{TotalVotingPower: big.NewInt(0)}, nil
	}

	globalState := result.GlobalState[0]
	totalVP, err := domain.ParseBigInt(globalState.TotalVotingPower)
	if err != nil {
		return nil, fmt.Errorf("global total voting power: %w", err)
	}

	return &domain.GlobalStats{
		TotalVotingPower: totalVP,
		TotalStakedNFTs:  globalState.TotalStakedNFTs,
	}, nil
}

// parseOperationName parses query and returns the name of its single operation
func parseOperationName(query string) (string, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "query", Input: query})
	if err != nil {
		return "", fmt.Errorf("%w: malformed GraphQL query: %s", domain.ErrInvalidArgument, err.Error())
	}
	if len(doc.Operations) == 0 {
		return "", fmt.Errorf("%w: GraphQL query has no operation", domain.ErrInvalidArgument)
	}
	if len(doc.Operations) > 1 {
		return "", fmt.Errorf("%w: GraphQL query has %d operations", domain.ErrInvalidArgument, len(doc.Operations))
	}
	return doc.Operations[0].Name, nil
}

func hasValue(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
