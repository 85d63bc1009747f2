package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
)

func validateAddress(address, field string) error {
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s address (%s)", field, err)
	}
	return nil
}

// MsgDeposit buys output tokens with the attached Funds.
type MsgDeposit struct {
	Sender string
	Funds  sdk.Coins
}

type MsgDepositResponse struct {
	SwappedIn  math.Int
	SwappedOut math.Int
}

func (msg *MsgDeposit) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if err := msg.Funds.Validate(); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "%s", err)
	}
	return nil
}

// MsgWithdraw returns Amount of purchased output tokens for a refund priced on
// the virtual liquidity curve.
type MsgWithdraw struct {
	Sender string
	Amount math.Int
}

type MsgWithdrawResponse struct {
	Refund  sdk.Coin
	Penalty sdk.Coin
}

func (msg *MsgWithdraw) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return errorsmod.Wrapf(ErrInvalidAmount, "amount must be positive, got %s", msg.Amount)
	}
	return nil
}

type MsgClaim struct {
	Sender string
}

type MsgClaimResponse struct {
	Amount math.Int
}

func (msg *MsgClaim) ValidateBasic() error {
	return validateAddress(msg.Sender, "sender")
}

// MsgEarn sweeps the sale proceeds to the beneficiary.
type MsgEarn struct {
	Sender string
}

type MsgEarnResponse struct {
	Amount sdk.Coin
}

func (msg *MsgEarn) ValidateBasic() error {
	return validateAddress(msg.Sender, "sender")
}

type MsgWhitelist struct {
	Sender     string
	Candidates []string
	Whitelist  bool
}

type MsgWhitelistResponse struct{}

func (msg *MsgWhitelist) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	for _, c := range msg.Candidates {
		if err := validateAddress(c, "candidate"); err != nil {
			return err
		}
	}
	return nil
}

// MsgUpdateConfig changes the set fields. DepositCapStrategy replaces the
// current strategy, and ClearDepositCapStrategy removes it.
type MsgUpdateConfig struct {
	Sender                  string
	Owner                   string
	Beneficiary             string
	DepositCapStrategy      *gwtypes.CapStrategyConfig
	ClearDepositCapStrategy bool
	WhitelistEnabled        *bool
}

type MsgUpdateConfigResponse struct{}

func (msg *MsgUpdateConfig) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if msg.Owner != "" {
		if err := validateAddress(msg.Owner, "owner"); err != nil {
			return err
		}
	}
	if msg.Beneficiary != "" {
		if err := validateAddress(msg.Beneficiary, "beneficiary"); err != nil {
			return err
		}
	}
	if msg.DepositCapStrategy != nil {
		if msg.ClearDepositCapStrategy {
			return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "cannot both set and clear the deposit cap strategy")
		}
		if _, err := msg.DepositCapStrategy.Unpack(); err != nil {
			return err
		}
	}
	return nil
}

// MsgUpdateState overrides the virtual liquidity.
type MsgUpdateState struct {
	Sender     string
	XLiquidity *math.Int
	YLiquidity *math.Int
}

type MsgUpdateStateResponse struct{}

func (msg *MsgUpdateState) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	for _, v := range []*math.Int{msg.XLiquidity, msg.YLiquidity} {
		if v != nil && (v.IsNil() || v.IsNegative()) {
			return errorsmod.Wrapf(ErrInvalidAmount, "liquidity must be non-negative")
		}
	}
	return nil
}
