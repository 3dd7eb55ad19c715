package dto

import (
	"math/big"
	"time"

	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/portal"
)

// GlobalStatsResponse represents network-wide staking totals.
// Big numbers are rendered as decimal strings.
type GlobalStatsResponse struct {
	TotalVotingPower string `json:"total_voting_power"`
	TotalStakedNFTs  int    `json:"total_staked_nfts"`
}

// TokenResponse represents a staked token in display shape
type TokenResponse struct {
	TokenID     uint64    `json:"token_id"`
	VotingPower string    `json:"voting_power"`
	LockMonths  int       `json:"lock_months"`
	StakedAt    time.Time `json:"staked_at"`
	UnlockTime  time.Time `json:"unlock_time"`
	IsStaked    bool      `json:"is_staked"`
	Selected    bool      `json:"selected"`
}

// UserStakingResponse represents the staking snapshot of one address
type UserStakingResponse struct {
	Address           string                `json:"address"`
	StakedNFTs        []domain.RawStakedNFT `json:"staked_nfts"`
	Tokens            []TokenResponse       `json:"tokens"`
	TotalVotingPower  string                `json:"total_voting_power"`
	AccumulatedPoints float64               `json:"accumulated_points"`
	CurrentPoints     float64               `json:"current_points"`
	PointsPerSecond   float64               `json:"points_per_second"`
	StakedNFTCount    int                   `json:"staked_nft_count"`
}

// OwnedTokensResponse represents the result of one ownership scan
type OwnedTokensResponse struct {
	Address     string   `json:"address"`
	TotalSupply int      `json:"total_supply"`
	BatchSize   int      `json:"batch_size"`
	TokenIDs    []uint64 `json:"token_ids"`
}

// ApprovalResponse represents the operator approval of an address
type ApprovalResponse struct {
	Address  string `json:"address"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

// PausedResponse represents the staking pause flag
type PausedResponse struct {
	Paused bool `json:"paused"`
}

// StakeInfoResponse represents the on-chain stake record of a token
type StakeInfoResponse struct {
	TokenID    uint64    `json:"token_id"`
	StartTime  time.Time `json:"start_time"`
	UnlockTime time.Time `json:"unlock_time"`
	LockMonths uint8     `json:"lock_months"`
	Owner      string    `json:"owner"`
	Staked     bool      `json:"staked"`
}

// TokenOwnerResponse represents the current holder of a token
type TokenOwnerResponse struct {
	TokenID uint64 `json:"token_id"`
	Owner   string `json:"owner"`
	// InStaking is set when the staking contract holds the token
	InStaking bool `json:"in_staking"`
}

// MapGlobalStats maps domain stats to the response
func MapGlobalStats(stats *domain.GlobalStats) GlobalStatsResponse {
	return GlobalStatsResponse{
		TotalVotingPower: bigString(stats.TotalVotingPower),
		TotalStakedNFTs:  stats.TotalStakedNFTs,
	}
}

// MapUserStaking maps a portal snapshot to the response
func MapUserStaking(address string, staking *portal.UserStaking) UserStakingResponse {
	tokens := make([]TokenResponse, 0, len(staking.Tokens))
	for _, token := range staking.Tokens {
		tokens = append(tokens, TokenResponse{
			TokenID:     token.TokenID,
			VotingPower: bigString(token.VotingPower),
			LockMonths:  token.LockMonths,
			StakedAt:    token.StakedAt,
			UnlockTime:  token.UnlockTime,
			IsStaked:    token.IsStaked,
			Selected:    token.Selected,
		})
	}

	stakedNFTs := staking.StakedNFTs
	if stakedNFTs == nil {
		stakedNFTs = []domain.RawStakedNFT{}
	}

	return UserStakingResponse{
		Address:           address,
		StakedNFTs:        stakedNFTs,
		Tokens:            tokens,
		TotalVotingPower:  bigString(staking.TotalVotingPower),
		AccumulatedPoints: staking.AccumulatedPoints,
		CurrentPoints:     staking.CurrentPoints,
		PointsPerSecond:   staking.PointsPerSecond,
		StakedNFTCount:    staking.StakedNFTCount,
	}
}

// MapStakeInfo maps an on-chain stake record to the response
func MapStakeInfo(info *domain.StakeInfo) StakeInfoResponse {
	return StakeInfoResponse{
		TokenID:    info.TokenID,
		StartTime:  info.StartTime,
		UnlockTime: info.UnlockTime,
		LockMonths: info.LockMonths,
		Owner:      info.Owner,
		Staked:     info.Staked(),
	}
}

// MapTokenOwner flags owners equal to stakingAddress in any letter case
func MapTokenOwner(tokenID uint64, owner, stakingAddress string) TokenOwnerResponse {
	return TokenOwnerResponse{
		TokenID:   tokenID,
		Owner:     owner,
		InStaking: stakingAddress != "" && domain.SameAddress(owner, stakingAddress),
	}
}

func bigString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}
