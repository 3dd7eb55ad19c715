package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// ChainFromID builds the CAIP-2 chain identifier for an EVM chain id
func ChainFromID(chainID int64) Chain {
	return Chain(fmt.Sprintf("eip155:%d", chainID))
}

// ID returns the numeric EVM chain id, or 0 when the chain is not an eip155 chain
func (c Chain) ID() int64 {
	namespace, reference, ok := strings.Cut(string(c), ":")
	if !ok || namespace != "eip155" {
		return 0
	}
	id, err := strconv.ParseInt(reference, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// RawStakedNFT is a staked token row as returned by the indexer.
// Numeric fields arrive as decimal strings.
type RawStakedNFT struct {
	TokenID     string `json:"tokenId"`
	VotingPower string `json:"votingPower"`
	LockMonths  int    `json:"lockMonths"`
	StakedAt    string `json:"stakedAt"`
	UnlockTime  string `json:"unlockTime"`
	IsStaked    bool   `json:"isStaked"`
}

// RawUser is the per-user aggregate row from the indexer
type RawUser struct {
	TotalVotingPower  string  `json:"totalVotingPower"`
	AccumulatedPoints *string `json:"accumulatedPoints"`
	StakedNFTCount    int     `json:"stakedNFTCount"`
	LastUpdateTime    string  `json:"lastUpdateTime"`
}

// RawGlobalState is the network-wide aggregate row from the indexer
type RawGlobalState struct {
	TotalVotingPower string `json:"totalVotingPower"`
	TotalStakedNFTs  int    `json:"totalStakedNFTs"`
}

// UserStakingData is the normalized per-user staking snapshot.
// CurrentPoints and PointsPerSecond are extrapolated at read time, see AccrueAt.
type UserStakingData struct {
	StakedNFTs        []RawStakedNFT `json:"staked_nfts"`
	TotalVotingPower  *big.Int       `json:"total_voting_power"`
	GlobalVotingPower *big.Int       `json:"-"`
	AccumulatedPoints float64        `json:"accumulated_points"`
	LastUpdateTime    int64          `json:"last_update_time"`
	CurrentPoints     float64        `json:"current_points"`
	PointsPerSecond   float64        `json:"points_per_second"`
	StakedNFTCount    int            `json:"staked_nft_count"`
}

// EmptyUserStakingData returns the zero-valued snapshot used when the indexer has no rows
func EmptyUserStakingData() *UserStakingData {
	return &UserStakingData{
		StakedNFTs:       []RawStakedNFT{},
		TotalVotingPower: big.NewInt(0),
	}
}

// GlobalStats holds network-wide staking totals
type GlobalStats struct {
	TotalVotingPower *big.Int `json:"total_voting_power"`
	TotalStakedNFTs  int      `json:"total_staked_nfts"`
}

// TokenState is the token shape consumed by the portal UI
type TokenState struct {
	TokenID     uint64    `json:"token_id"`
	VotingPower *big.Int  `json:"voting_power"`
	LockMonths  int       `json:"lock_months"`
	StakedAt    time.Time `json:"staked_at"`
	UnlockTime  time.Time `json:"unlock_time"`
	IsStaked    bool      `json:"is_staked"`
	Selected    bool      `json:"selected"`
}

// StakeInfo is the normalized result of the staking contract's getStakeInfo
type StakeInfo struct {
	TokenID    uint64    `json:"token_id"`
	StartTime  time.Time `json:"start_time"`
	UnlockTime time.Time `json:"unlock_time"`
	LockMonths uint8     `json:"lock_months"`
	Owner      string    `json:"owner"`
}

// Staked reports whether the token is currently held by the staking contract
func (s *StakeInfo) Staked() bool {
	return s.Owner != "" && s.Owner != ETHEREUM_ZERO_ADDRESS
}

// OwnedTokenSet is the result of one ownership discovery pass, ids in ascending scan order
type OwnedTokenSet struct {
	IDs []uint64 `json:"ids"`
}

// NewOwnedTokenSet wraps ids; nil becomes an empty list
func NewOwnedTokenSet(ids []uint64) OwnedTokenSet {
	if ids == nil {
		ids = []uint64{}
	}
	return OwnedTokenSet{IDs: ids}
}

// NormalizeAddress returns the EIP-55 checksummed form of a hex address
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// SameAddress compares two hex addresses case-insensitively
func SameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ShortAddress renders an address the way the portal header shows it: 0x1234…abcd
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
