package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// DistributionStrategy releases a fraction of purchased tokens over time.
// ReleaseAmountAt returns the fraction released at t and whether the strategy
// is fulfilled. CheckReleaseTime reports whether t is still before the
// strategy starts releasing.
type DistributionStrategy interface {
	ReleaseAmountAt(t uint64) (math.LegacyDec, bool)
	CheckReleaseTime(t uint64) bool
	Validate() error
}

// LockupStrategy releases ReleaseAmount at once at ReleaseTime.
type LockupStrategy struct {
	ReleaseTime   uint64         `json:"release_time"`
	ReleaseAmount math.LegacyDec `json:"release_amount"`
}

func (s LockupStrategy) ReleaseAmountAt(t uint64) (math.LegacyDec, bool) {
	if t < s.ReleaseTime {
		return math.LegacyZeroDec(), false
	}
	return s.ReleaseAmount, true
}

func (s LockupStrategy) CheckReleaseTime(t uint64) bool {
	return t <= s.ReleaseTime
}

func (s LockupStrategy) Validate() error {
	return validateReleaseAmount(s.ReleaseAmount)
}

// VestingStrategy releases ReleaseAmount linearly between ReleaseStartTime and
// ReleaseFinishTime.
type VestingStrategy struct {
	ReleaseStartTime  uint64         `json:"release_start_time"`
	ReleaseFinishTime uint64         `json:"release_finish_time"`
	ReleaseAmount     math.LegacyDec `json:"release_amount"`
}

func (s VestingStrategy) ReleaseAmountAt(t uint64) (math.LegacyDec, bool) {
	if t <= s.ReleaseStartTime {
		return math.LegacyZeroDec(), false
	}
	if t >= s.ReleaseFinishTime {
		return s.ReleaseAmount, true
	}
	elapsed := math.NewIntFromUint64(t - s.ReleaseStartTime)
	period := math.NewIntFromUint64(s.ReleaseFinishTime - s.ReleaseStartTime)
	return s.ReleaseAmount.MulInt(elapsed).QuoInt(period), false
}

func (s VestingStrategy) CheckReleaseTime(t uint64) bool {
	return t <= s.ReleaseStartTime
}

func (s VestingStrategy) Validate() error {
	if s.ReleaseStartTime >= s.ReleaseFinishTime {
		return errorsmod.Wrapf(ErrInvalidStrategy, "vesting start %d must be before finish %d", s.ReleaseStartTime, s.ReleaseFinishTime)
	}
	return validateReleaseAmount(s.ReleaseAmount)
}

func validateReleaseAmount(amount math.LegacyDec) error {
	if amount.IsNil() || amount.IsNegative() || amount.GT(math.LegacyOneDec()) {
		return errorsmod.Wrapf(ErrInvalidStrategy, "release amount %s must be within [0, 1]", amount)
	}
	return nil
}

// DistributionStrategyConfig is the stored form of a DistributionStrategy.
// Exactly one field is set.
type DistributionStrategyConfig struct {
	Lockup  *LockupStrategy  `json:"lockup,omitempty"`
	Vesting *VestingStrategy `json:"vesting,omitempty"`
}

func NewDistributionStrategyConfig(strategy DistributionStrategy) DistributionStrategyConfig {
	switch s := strategy.(type) {
	case LockupStrategy:
		return DistributionStrategyConfig{Lockup: &s}
	case VestingStrategy:
		return DistributionStrategyConfig{Vesting: &s}
	default:
		panic(fmt.Sprintf("unknown distribution strategy %T", strategy))
	}
}

func (c DistributionStrategyConfig) Unpack() (DistributionStrategy, error) {
	var strategy DistributionStrategy
	switch {
	case c.Lockup != nil && c.Vesting != nil:
		return nil, errorsmod.Wrap(ErrInvalidStrategy, "both lockup and vesting are set")
	case c.Lockup != nil:
		strategy = *c.Lockup
	case c.Vesting != nil:
		strategy = *c.Vesting
	default:
		return nil, errorsmod.Wrap(ErrInvalidStrategy, "empty distribution strategy")
	}
	if err := strategy.Validate(); err != nil {
		return nil, err
	}
	return strategy, nil
}

// UnpackDistributionStrategies unpacks every config in order.
func UnpackDistributionStrategies(configs []DistributionStrategyConfig) ([]DistributionStrategy, error) {
	strategies := make([]DistributionStrategy, 0, len(configs))
	for i, c := range configs {
		s, err := c.Unpack()
		if err != nil {
			return nil, errorsmod.Wrapf(err, "distribution strategy %d", i)
		}
		strategies = append(strategies, s)
	}
	return strategies, nil
}
