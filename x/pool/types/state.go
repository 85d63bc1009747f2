package types

import (
	"cosmossdk.io/math"
)

// Reward is the pool-wide accumulator.
type Reward struct {
	TotalDeposit         math.Int       `json:"total_deposit"`
	LastUpdateTime       uint64         `json:"last_update_time"`
	RewardPerTokenStored math.LegacyDec `json:"reward_per_token_stored"`
}

func NewReward(lastUpdateTime uint64) Reward {
	return Reward{
		TotalDeposit:         math.ZeroInt(),
		LastUpdateTime:       lastUpdateTime,
		RewardPerTokenStored: math.LegacyZeroDec(),
	}
}

// Staker is a single account's principal and settled reward.
type Staker struct {
	Amount             math.Int       `json:"amount"`
	Reward             math.Int       `json:"reward"`
	RewardPerTokenPaid math.LegacyDec `json:"reward_per_token_paid"`
}

// NewStaker returns the value of an account that never staked.
func NewStaker() Staker {
	return Staker{
		Amount:             math.ZeroInt(),
		Reward:             math.ZeroInt(),
		RewardPerTokenPaid: math.LegacyZeroDec(),
	}
}

func (s Staker) IsEmpty() bool {
	return s.Amount.IsZero() && s.Reward.IsZero() && s.RewardPerTokenPaid.IsZero()
}
