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

func validatePositive(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrapf(ErrInvalidAmount, "amount must be positive, got %s", amount)
	}
	return nil
}

// MsgUpdate settles the accumulator and, when Target is set, checkpoints that
// account.
type MsgUpdate struct {
	Sender string
	Target string
}

type MsgUpdateResponse struct {
	Reward Reward
}

func (msg *MsgUpdate) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if msg.Target != "" {
		return validateAddress(msg.Target, "target")
	}
	return nil
}

type MsgDeposit struct {
	Sender string
	Amount math.Int
}

type MsgDepositResponse struct {
	Staker Staker
}

func (msg *MsgDeposit) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	return validatePositive(msg.Amount)
}

type MsgWithdraw struct {
	Sender string
	Amount math.Int
}

type MsgWithdrawResponse struct {
	Staker Staker
}

func (msg *MsgWithdraw) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	return validatePositive(msg.Amount)
}

// MsgClaim pays the sender's settled reward to Target, or to the sender when
// Target is empty.
type MsgClaim struct {
	Sender string
	Target string
}

type MsgClaimResponse struct {
	Amount math.Int
}

func (msg *MsgClaim) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if msg.Target != "" {
		return validateAddress(msg.Target, "target")
	}
	return nil
}

type MsgTransferInternal struct {
	Owner     string
	Recipient string
	Amount    math.Int
}

type MsgTransferInternalResponse struct{}

func (msg *MsgTransferInternal) ValidateBasic() error {
	if err := validateAddress(msg.Owner, "owner"); err != nil {
		return err
	}
	if err := validateAddress(msg.Recipient, "recipient"); err != nil {
		return err
	}
	if msg.Owner == msg.Recipient {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "owner and recipient are the same account")
	}
	return validatePositive(msg.Amount)
}

// MsgAdjustReward spreads Amount of additional reward over the rest of the
// distribution period, or takes it away when Remove is set.
type MsgAdjustReward struct {
	Sender string
	Amount math.Int
	Remove bool
}

type MsgAdjustRewardResponse struct {
	RewardRate math.LegacyDec
}

func (msg *MsgAdjustReward) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	return validatePositive(msg.Amount)
}

// MsgUpdateConfig replaces the set fields. Windows are replaced wholesale.
type MsgUpdateConfig struct {
	Sender             string
	Owner              string
	ShareDenom         string
	RewardDenom        string
	DepositTime        gwtypes.TimeRanges
	WithdrawTime       gwtypes.TimeRanges
	ClaimTime          gwtypes.TimeRanges
	DepositCapStrategy *gwtypes.CapStrategyConfig
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
	for _, ranges := range []gwtypes.TimeRanges{msg.DepositTime, msg.WithdrawTime, msg.ClaimTime} {
		if err := ranges.Validate(); err != nil {
			return err
		}
	}
	if msg.DepositCapStrategy != nil {
		if _, err := msg.DepositCapStrategy.Unpack(); err != nil {
			return err
		}
	}
	return nil
}
