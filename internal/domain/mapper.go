package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// ParseBigInt parses an indexer decimal string; an empty string is zero
func ParseBigInt(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return big.NewInt(0), nil
	}
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("%w: not a decimal integer: %q", ErrInvalidArgument, value)
	}
	return n, nil
}

// ParseUnixSeconds parses an indexer timestamp string in seconds; an empty string is zero
func ParseUnixSeconds(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	sec, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not a unix timestamp: %q", ErrInvalidArgument, value)
	}
	return sec, nil
}

// ParseFloat parses an indexer decimal string into a float; nil or empty is zero
func ParseFloat(value *string) (float64, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number: %q", ErrInvalidArgument, *value)
	}
	return f, nil
}

// ToTokenState converts an indexer row into the UI token shape
func ToTokenState(raw RawStakedNFT) (TokenState, error) {
	tokenID, err := strconv.ParseUint(strings.TrimSpace(raw.TokenID), 10, 64)
	if err != nil {
		return TokenState{}, fmt.Errorf("%w: invalid token id %q", ErrInvalidArgument, raw.TokenID)
	}

	votingPower, err := ParseBigInt(raw.VotingPower)
	if err != nil {
		return TokenState{}, fmt.Errorf("token %d voting power: %w", tokenID, err)
	}

	stakedAt, err := ParseUnixSeconds(raw.StakedAt)
	if err != nil {
		return TokenState{}, fmt.Errorf("token %d staked at: %w", tokenID, err)
	}

	unlockTime, err := ParseUnixSeconds(raw.UnlockTime)
	if err != nil {
		return TokenState{}, fmt.Errorf("token %d unlock time: %w", tokenID, err)
	}

	return TokenState{
		TokenID:     tokenID,
		VotingPower: votingPower,
		LockMonths:  raw.LockMonths,
		StakedAt:    time.Unix(stakedAt, 0).UTC(),
		UnlockTime:  time.Unix(unlockTime, 0).UTC(),
		IsStaked:    raw.IsStaked,
	}, nil
}

// ToTokenStates converts a list of indexer rows, failing on the first malformed row
func ToTokenStates(raws []RawStakedNFT) ([]TokenState, error) {
	states := make([]TokenState, 0, len(raws))
	for _, raw := range raws {
		state, err := ToTokenState(raw)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}
