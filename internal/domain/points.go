package domain

import (
	"math/big"
	"time"
)

// PointsRate converts a weekly emission into a per-second network-wide rate
func PointsRate(weeklyPoints float64) float64 {
	if weeklyPoints <= 0 {
		weeklyPoints = DEFAULT_WEEKLY_POINTS
	}
	return weeklyPoints / SECONDS_PER_WEEK
}

// Accrual is the result of extrapolating a user's points from the last indexer snapshot
type Accrual struct {
	PointsPerSecond float64
	CurrentPoints   float64
}

// AccruePoints extrapolates points linearly:
//
//	pps     = userVP / globalVP * rate   (0 when globalVP is not positive)
//	current = accumulated + pps * max(elapsedSeconds, 0)
func AccruePoints(accumulated float64, userVP, globalVP *big.Int, rate float64, elapsedSeconds int64) Accrual {
	share := VotingShare(userVP, globalVP)
	pps := share * rate
	elapsed := max(elapsedSeconds, 0)

	return Accrual{
		PointsPerSecond: pps,
		CurrentPoints:   accumulated + pps*float64(elapsed),
	}
}

// AccrueAt returns a copy of d with CurrentPoints and PointsPerSecond extrapolated to now.
// d is not modified.
func (d *UserStakingData) AccrueAt(now time.Time, rate float64) *UserStakingData {
	accrual := AccruePoints(d.AccumulatedPoints, d.TotalVotingPower, d.GlobalVotingPower, rate, now.Unix()-d.LastUpdateTime)

	accrued := *d
	accrued.CurrentPoints = accrual.CurrentPoints
	accrued.PointsPerSecond = accrual.PointsPerSecond
	return &accrued
}

// VotingShare returns userVP / globalVP as a float, or 0 when either side is unusable
func VotingShare(userVP, globalVP *big.Int) float64 {
	if userVP == nil || globalVP == nil || globalVP.Sign() <= 0 || userVP.Sign() <= 0 {
		return 0
	}
	share, _ := new(big.Rat).SetFrac(userVP, globalVP).Float64()
	return share
}
