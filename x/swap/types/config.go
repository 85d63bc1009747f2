package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
)

// Config describes a sale: the window, the fixed price in input units per
// output unit, the pool size and how purchased tokens are released.
type Config struct {
	Owner                  string                               `json:"owner"`
	Beneficiary            string                               `json:"beneficiary"`
	Start                  uint64                               `json:"start"`
	Finish                 uint64                               `json:"finish"`
	Price                  math.LegacyDec                       `json:"price"`
	Amount                 math.Int                             `json:"amount"`
	InputDenom             string                               `json:"input_denom"`
	OutputDenom            string                               `json:"output_denom"`
	DepositCapStrategy     *gwtypes.CapStrategyConfig           `json:"deposit_cap_strategy,omitempty"`
	DistributionStrategies []gwtypes.DistributionStrategyConfig `json:"distribution_strategies"`
	WhitelistEnabled       bool                                 `json:"whitelist_enabled"`
}

func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(c.Beneficiary); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid beneficiary address: %s", err)
	}
	if c.Start > c.Finish {
		return errorsmod.Wrapf(ErrInvalidConfig, "start %d is after finish %d", c.Start, c.Finish)
	}
	if c.Price.IsNil() || !c.Price.IsPositive() {
		return errorsmod.Wrap(ErrInvalidConfig, "price must be positive")
	}
	if c.Amount.IsNil() || c.Amount.IsNegative() {
		return errorsmod.Wrap(ErrInvalidConfig, "pool size must be non-negative")
	}
	if err := sdk.ValidateDenom(c.InputDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "input denom: %s", err)
	}
	if err := sdk.ValidateDenom(c.OutputDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "output denom: %s", err)
	}
	if c.DepositCapStrategy != nil {
		if _, err := c.DepositCapStrategy.Unpack(); err != nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "deposit cap strategy: %s", err)
		}
	}
	if _, err := gwtypes.UnpackDistributionStrategies(c.DistributionStrategies); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "%s", err)
	}
	return nil
}

// CheckSaleTime fails unless start <= now <= finish.
func (c Config) CheckSaleTime(now uint64) error {
	if now < c.Start {
		return errorsmod.Wrapf(ErrSwapNotStarted, "starts at %d", c.Start)
	}
	if c.Finish < now {
		return errorsmod.Wrapf(ErrSwapFinished, "finished at %d", c.Finish)
	}
	return nil
}
