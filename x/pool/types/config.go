package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
)

// Config holds the pool's windows, denominations and emission rate.
type Config struct {
	Owner              string                     `json:"owner"`
	ShareDenom         string                     `json:"share_denom"`
	RewardDenom        string                     `json:"reward_denom"`
	DepositTime        gwtypes.TimeRanges         `json:"deposit_time"`
	WithdrawTime       gwtypes.TimeRanges         `json:"withdraw_time"`
	ClaimTime          gwtypes.TimeRanges         `json:"claim_time"`
	DistributionTime   gwtypes.TimeRange          `json:"distribution_time"`
	RewardRate         math.LegacyDec             `json:"reward_rate"`
	DepositCapStrategy *gwtypes.CapStrategyConfig `json:"deposit_cap_strategy,omitempty"`
}

// NewConfig lays out a pool the way a fresh instantiation does: deposits open
// during the distribution period, principal locked while rewards flow, and
// claims allowed from start+cliff onwards.
func NewConfig(owner, shareDenom, rewardDenom string, start, period, cliff uint64, rewardAmount math.Int) Config {
	finish := start + period
	rate := math.LegacyZeroDec()
	if period > 0 {
		rate = math.LegacyNewDecFromInt(rewardAmount).QuoInt(math.NewIntFromUint64(period))
	}
	return Config{
		Owner:            owner,
		ShareDenom:       shareDenom,
		RewardDenom:      rewardDenom,
		DepositTime:      gwtypes.TimeRanges{gwtypes.NewTimeRange(start, finish, false)},
		WithdrawTime:     gwtypes.TimeRanges{gwtypes.NewTimeRange(start, finish, true)},
		ClaimTime:        gwtypes.TimeRanges{gwtypes.NewTimeRange(start+cliff, gwtypes.OpenEnded, false)},
		DistributionTime: gwtypes.NewTimeRange(start, finish, false),
		RewardRate:       rate,
	}
}

func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid owner address: %s", err)
	}
	if err := sdk.ValidateDenom(c.ShareDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "share denom: %s", err)
	}
	if err := sdk.ValidateDenom(c.RewardDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "reward denom: %s", err)
	}
	for name, ranges := range map[string]gwtypes.TimeRanges{
		"deposit":  c.DepositTime,
		"withdraw": c.WithdrawTime,
		"claim":    c.ClaimTime,
	} {
		if err := ranges.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "%s time: %s", name, err)
		}
	}
	if err := c.DistributionTime.Validate(); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "distribution time: %s", err)
	}
	if c.RewardRate.IsNil() || c.RewardRate.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidConfig, "reward rate must be non-negative")
	}
	if c.DepositCapStrategy != nil {
		if _, err := c.DepositCapStrategy.Unpack(); err != nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "deposit cap strategy: %s", err)
		}
	}
	return nil
}

func (c Config) CheckDepositTime(now uint64) error {
	if !c.DepositTime.IsInRange(now) {
		return errorsmod.Wrapf(ErrInvalidDepositTime, "now %d, allowed %s", now, c.DepositTime)
	}
	return nil
}

func (c Config) CheckWithdrawTime(now uint64) error {
	if !c.WithdrawTime.IsInRange(now) {
		return errorsmod.Wrapf(ErrInvalidWithdrawTime, "now %d, allowed %s", now, c.WithdrawTime)
	}
	return nil
}

func (c Config) CheckClaimTime(now uint64) error {
	if !c.ClaimTime.IsInRange(now) {
		return errorsmod.Wrapf(ErrInvalidClaimTime, "now %d, allowed %s", now, c.ClaimTime)
	}
	return nil
}
