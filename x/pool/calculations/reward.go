package calculations

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/types"
)

// ApplicableRewardTime clamps now into the distribution window. Before start
// nothing accrues and after finish accrual stops.
func ApplicableRewardTime(window gwtypes.TimeRange, now uint64) uint64 {
	return window.Clamp(now)
}

// RewardPerToken is the reward earned by one unit of principal between the
// last update and at. Callers guarantee at >= reward.LastUpdateTime.
func RewardPerToken(rate math.LegacyDec, reward types.Reward, at uint64) math.LegacyDec {
	if reward.TotalDeposit.IsZero() {
		return math.LegacyZeroDec()
	}
	elapsed := math.NewIntFromUint64(at - reward.LastUpdateTime)
	emitted := rate.MulInt(elapsed).TruncateInt()
	return math.LegacyNewDecFromInt(emitted).QuoInt(reward.TotalDeposit)
}

// storedAsOf returns the accumulator value at the clamped time without
// mutating the pool.
func storedAsOf(cfg types.Config, reward types.Reward, now uint64) (math.LegacyDec, uint64, error) {
	at := ApplicableRewardTime(cfg.DistributionTime, now)
	if at < reward.LastUpdateTime {
		return math.LegacyDec{}, 0, errorsmod.Wrapf(types.ErrTemporalInversion, "at %d, last update %d", at, reward.LastUpdateTime)
	}
	return reward.RewardPerTokenStored.Add(RewardPerToken(cfg.RewardRate, reward, at)), at, nil
}

// Settle advances the accumulator to now. Settling twice at the same time, or
// at any time after the distribution finished, changes nothing.
func Settle(cfg types.Config, reward types.Reward, now uint64) (types.Reward, error) {
	stored, at, err := storedAsOf(cfg, reward, now)
	if err != nil {
		return reward, err
	}
	reward.RewardPerTokenStored = stored
	reward.LastUpdateTime = at
	return reward, nil
}

// Owed is the reward an account could claim if the pool were settled at at.
func Owed(cfg types.Config, reward types.Reward, staker types.Staker, at uint64) (math.Int, error) {
	stored, _, err := storedAsOf(cfg, reward, at)
	if err != nil {
		return math.Int{}, err
	}
	accrued := stored.Sub(staker.RewardPerTokenPaid).MulInt(staker.Amount).TruncateInt()
	return staker.Reward.Add(accrued), nil
}

// Checkpoint folds the account's accrued reward into Reward and marks it paid
// up to the pool's stored accumulator. The pool must already be settled.
func Checkpoint(cfg types.Config, reward types.Reward, staker types.Staker) (types.Staker, error) {
	owed, err := Owed(cfg, reward, staker, reward.LastUpdateTime)
	if err != nil {
		return staker, err
	}
	staker.Reward = owed
	staker.RewardPerTokenPaid = reward.RewardPerTokenStored
	return staker, nil
}
